package cli

import (
	"encoding/json"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"chosenoffset.com/isovist/internal/core/visibility"
)

// Result is one computed polygon as printed by the compute command.
type Result struct {
	Observer visibility.Point    `json:"observer"`
	Polygon  *visibility.Polygon `json:"polygon"`
}

func newComputeCmd() *cobra.Command {
	var (
		flags sceneFlags
		dump  bool
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Print visibility polygons as JSON.",
		Long: `compute prints one visibility polygon per observer. Each polygon lists its
vertices counter-clockwise and, per edge, the index of the wall it lies on
(-1 for open edges). Several observers are computed in parallel.`,
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, eng, err := flags.load()
			if err != nil {
				return err
			}
			observers, err := flags.observerPoints(s)
			if err != nil {
				return err
			}

			polys, err := eng.ComputeAll(cmd.Context(), s.Walls(), observers)
			if err != nil {
				return err
			}
			results := make([]Result, len(polys))
			for i, p := range polys {
				results[i] = Result{Observer: observers[i], Polygon: p}
			}

			if dump {
				spew.Fdump(cmd.OutOrStdout(), results)
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&dump, "dump", false, "print a Go-syntax dump instead of JSON")
	return cmd
}
