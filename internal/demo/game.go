// Package demo is the interactive visibility viewer: it draws what an
// observer sees and lets the user move the observer with the mouse.
package demo

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"chosenoffset.com/isovist/internal/core/visibility"
	"chosenoffset.com/isovist/internal/export"
	"chosenoffset.com/isovist/internal/render"
	"chosenoffset.com/isovist/internal/world/scene"
)

// ErrQuit is returned from Update when the user closes the viewer.
var ErrQuit = errors.New("demo: quit")

// Game holds the viewer state.
type Game struct {
	Scene    *scene.Scene
	Engine   *visibility.Engine
	Renderer render.Renderer
	InputMgr render.InputManager

	// SnapshotDir is where the S key writes PNG files.
	SnapshotDir string

	walls     []visibility.Segment
	observer  visibility.Point
	polygon   *visibility.Polygon
	region    [][]visibility.Point
	showWalls bool
	following bool
	snapshots int
	status    string
}

// New creates a viewer for s and computes the initial polygon.
func New(s *scene.Scene, eng *visibility.Engine, r render.Renderer, in render.InputManager) (*Game, error) {
	g := &Game{
		Scene:       s,
		Engine:      eng,
		Renderer:    r,
		InputMgr:    in,
		SnapshotDir: ".",
		walls:       s.Walls(),
		showWalls:   true,
	}
	if err := g.MoveObserver(s.Observer); err != nil {
		return nil, err
	}
	log.Printf("Loaded scene %q: %d walls", s.Name, len(g.walls))
	return g, nil
}

// Observer returns the current observer position.
func (g *Game) Observer() visibility.Point {
	return g.observer
}

// Polygon returns the current visibility polygon.
func (g *Game) Polygon() *visibility.Polygon {
	return g.polygon
}

// MoveObserver places the observer at p and recomputes what it sees.
func (g *Game) MoveObserver(p visibility.Point) error {
	poly, err := g.Engine.Compute(g.walls, p)
	if err != nil {
		return fmt.Errorf("failed to compute visibility from %v: %w", p, err)
	}
	g.observer = p
	g.polygon = poly
	g.region = render.ClipToViewport(poly, float64(g.Scene.Width), float64(g.Scene.Height))
	g.status = fmt.Sprintf("(%.0f, %.0f)  %d vertices", p.X, p.Y, poly.Len())
	return nil
}

// Update handles input.
func (g *Game) Update() error {
	in := g.InputMgr

	if in.IsKeyJustPressed(render.KeyEscape) {
		return ErrQuit
	}
	if in.IsKeyJustPressed(render.KeyW) {
		g.showWalls = !g.showWalls
	}
	if in.IsKeyJustPressed(render.KeySpace) {
		g.following = !g.following
	}
	if in.IsKeyJustPressed(render.KeyR) {
		g.following = false
		g.move(g.Scene.Observer)
	}
	if in.IsKeyJustPressed(render.KeyS) {
		if path, err := g.Snapshot(); err != nil {
			log.Printf("Warning: snapshot failed: %v", err)
		} else {
			log.Printf("Saved %s", path)
		}
	}

	if g.following || in.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := in.GetCursorPosition()
		if p := visibility.Pt(float64(x), float64(y)); p != g.observer {
			g.move(p)
		}
	}
	return nil
}

func (g *Game) move(p visibility.Point) {
	if err := g.MoveObserver(p); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// Snapshot writes the current view to a numbered PNG file.
func (g *Game) Snapshot() (string, error) {
	g.snapshots++
	path := filepath.Join(g.SnapshotDir, fmt.Sprintf("isovist-%03d.png", g.snapshots))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	frame := &export.Frame{
		Width:    g.Scene.Width,
		Height:   g.Scene.Height,
		Walls:    g.walls,
		Observer: g.observer,
		Polygon:  g.polygon,
	}
	if err := export.WritePNG(f, frame); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, f.Close()
}

// Draw renders the region, the walls and the observer.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(export.Background)

	for _, contour := range g.region {
		g.Renderer.FillPolygon(screen, contour, export.RegionColor)
	}

	if g.showWalls {
		for _, s := range g.walls {
			g.Renderer.StrokeLine(screen,
				float32(s.A.X), float32(s.A.Y),
				float32(s.B.X), float32(s.B.Y),
				1, export.WallColor)
		}
	}

	g.Renderer.FillCircle(screen,
		float32(g.observer.X),
		float32(g.observer.Y),
		export.ObserverRadius,
		export.ObserverColor)

	g.Renderer.DrawText(screen, g.status, 8, 8, export.WallColor, 1)
}

// Layout returns the scene size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Scene.Width, g.Scene.Height
}
