// Command isovist computes and draws visibility polygons from the command line.
package main

import (
	"os"

	"chosenoffset.com/isovist/internal/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
