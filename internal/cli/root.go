// Package cli implements the isovist command line tool.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"chosenoffset.com/isovist/internal/core/visibility"
	"chosenoffset.com/isovist/internal/world/scene"
)

// NewRoot builds the isovist command tree.
func NewRoot() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "isovist",
		Short: "Compute visibility polygons among line segment walls.",
		Long: `isovist computes the region visible from an observer among opaque line
segment walls. Scenes are read from JSON or TOML files; without --scene the
built-in demo layout is used.`,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
				visibility.SetLogger(slog.New(h))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine debug output to stderr")

	root.AddCommand(newComputeCmd(), newRenderCmd())
	return root
}

// sceneFlags are the inputs shared by every subcommand.
type sceneFlags struct {
	scene     string
	epsilon   float64
	split     bool
	observers []float64
}

func (f *sceneFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.scene, "scene", "s", "", "scene file (.json or .toml); the built-in demo when empty")
	fs.Float64Var(&f.epsilon, "epsilon", visibility.DefaultEpsilon, "tolerance for approximate comparisons")
	fs.BoolVar(&f.split, "split", false, "split walls where they cross each other")
	fs.Float64SliceVarP(&f.observers, "observer", "o", nil, "observer position as x,y; repeat pairs for several observers")
}

// load reads the scene and builds an engine.
func (f *sceneFlags) load() (*scene.Scene, *visibility.Engine, error) {
	s := scene.Demo(500, 500)
	if f.scene != "" {
		var err error
		if s, err = scene.Load(f.scene); err != nil {
			return nil, nil, err
		}
	}

	opts := []visibility.Option{visibility.WithEpsilon(f.epsilon)}
	if f.split {
		opts = append(opts, visibility.WithSplitCrossings())
	}
	eng, err := visibility.New(opts...)
	if err != nil {
		return nil, nil, err
	}
	return s, eng, nil
}

// observerPoints turns --observer values into points, falling back to the
// scene's own observer.
func (f *sceneFlags) observerPoints(s *scene.Scene) ([]visibility.Point, error) {
	if len(f.observers) == 0 {
		return []visibility.Point{s.Observer}, nil
	}
	if len(f.observers)%2 != 0 {
		return nil, fmt.Errorf("--observer needs x,y pairs, got %d values", len(f.observers))
	}
	pts := make([]visibility.Point, 0, len(f.observers)/2)
	for i := 0; i < len(f.observers); i += 2 {
		pts = append(pts, visibility.Pt(f.observers[i], f.observers[i+1]))
	}
	return pts, nil
}
