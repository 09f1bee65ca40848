package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/heromaze/maze"
)

func newExportCmd(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the maze to a YAML snapshot file",
		Long: `Write the maze to a YAML snapshot file, which can be loaded again with
	heromaze --snapshot <file>`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, seed, err := buildMaze(options.config)
			if err != nil {
				return err
			}

			serialized, err := maze.TakeSnapshot(grid, seed).Serialize()
			if err != nil {
				return err
			}
			if err := ioutil.WriteFile(args[0], []byte(serialized), 0666); err != nil {
				return fmt.Errorf("writing snapshot: %w", err)
			}

			logrus.WithFields(logrus.Fields{
				"path": args[0],
				"seed": seed,
			}).Info("Exported maze")
			return nil
		},
	}
}
