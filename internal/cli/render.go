package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"chosenoffset.com/isovist/internal/export"
)

func newRenderCmd() *cobra.Command {
	var (
		flags sceneFlags
		out   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a visibility polygon to an SVG or PNG file.",
		Long: `render draws the scene, the observer and the region it sees. The output
format follows the extension of --out.`,
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			write := export.WriteSVG
			switch strings.ToLower(filepath.Ext(out)) {
			case ".svg":
			case ".png":
				write = export.WritePNG
			default:
				return fmt.Errorf("unsupported output file %q: want .svg or .png", out)
			}

			s, eng, err := flags.load()
			if err != nil {
				return err
			}
			observers, err := flags.observerPoints(s)
			if err != nil {
				return err
			}
			if len(observers) != 1 {
				return fmt.Errorf("render takes exactly one observer, got %d", len(observers))
			}

			walls := s.Walls()
			poly, err := eng.Compute(walls, observers[0])
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer f.Close()

			frame := &export.Frame{
				Width:    s.Width,
				Height:   s.Height,
				Walls:    walls,
				Observer: observers[0],
				Polygon:  poly,
			}
			if err := write(f, frame); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d vertices)\n", out, poly.Len())
			return nil
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&out, "out", "isovist.svg", "output file (.svg or .png)")
	return cmd
}
