package main

import (
	"errors"
	"log"

	"github.com/spf13/pflag"

	"chosenoffset.com/isovist/internal/core/visibility"
	"chosenoffset.com/isovist/internal/demo"
	ebitenrender "chosenoffset.com/isovist/internal/render/ebiten"
	"chosenoffset.com/isovist/internal/world/scene"
)

func main() {
	scenePath := pflag.StringP("scene", "s", "", "scene file (.json or .toml); the built-in demo when empty")
	split := pflag.Bool("split", false, "split walls where they cross each other")
	pflag.Parse()

	s := scene.Demo(500, 500)
	if *scenePath != "" {
		var err error
		s, err = scene.Load(*scenePath)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
	}

	var opts []visibility.Option
	if *split {
		opts = append(opts, visibility.WithSplitCrossings())
	}
	eng, err := visibility.New(opts...)
	if err != nil {
		log.Fatal(err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g, err := demo.New(s, eng, renderer, inputMgr)
	if err != nil {
		log.Fatalf("Failed to start demo: %v", err)
	}

	engine.SetWindowSize(s.Width, s.Height)
	engine.SetWindowTitle("isovist - " + s.Name)
	engine.SetWindowResizable(true)

	log.Println("Click to move the observer. Space follows the cursor, W toggles walls, S saves a PNG, R resets.")
	if err := engine.RunGame(g); err != nil && !errors.Is(err, demo.ErrQuit) {
		log.Fatal(err)
	}
}
