package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/they4kman/heromaze/hero"
	"github.com/they4kman/heromaze/maze"
)

func newPrintCmd(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the maze as ASCII art, with its solution marked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, seed, err := buildMaze(options.config)
			if err != nil {
				return err
			}
			path := maze.SolvePath(grid)

			fmt.Fprint(cmd.OutOrStdout(), grid.Render(path))
			fmt.Fprintf(cmd.OutOrStdout(), "seed: %d, path: %d hops\n", seed, path.Hops())
			return nil
		},
	}
}

// buildMaze loads the configured snapshot, or generates a maze from the
// configured seed
func buildMaze(config hero.Config) (*maze.Grid, int64, error) {
	if config.Snapshot != nil {
		grid, err := config.Snapshot.Grid()
		return grid, config.Snapshot.Seed, err
	}

	rng, seed := maze.NewRand(config.Seed)
	grid := maze.NewGrid(config.Cols, config.Rows)
	maze.Generate(grid, rng)
	return grid, seed, nil
}
