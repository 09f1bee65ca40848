package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/heromaze/hero"
)

// WindowRunner shows the animation for a fully resolved configuration
type WindowRunner func(config hero.Config) error

type rootOptions struct {
	// Resolved before any command runs
	config hero.Config

	// Targets of the bound flags. Only read back through the flag set.
	flagged hero.Config

	configPath   string
	snapshotPath string
	logLevel     logLevelValue
}

func NewRootCmd(runWindow WindowRunner) *cobra.Command {
	options := &rootOptions{
		flagged:  hero.NewConfig(),
		logLevel: logLevelValue(logrus.InfoLevel),
	}

	rootCmd := &cobra.Command{
		Use:   "heromaze",
		Short: "Animate a dot patrolling the shortest route through a random maze",
		Long: `heromaze generates a perfect maze by recursive backtracking, finds the
shortest route from its top-left to its bottom-right corner, and animates a
glowing dot patrolling that route forever.

Run with no arguments to open the animation window
	heromaze

Press R to regenerate the maze, S to save a snapshot, Escape to quit.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetLevel(logrus.Level(options.logLevel))
			logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			return options.load(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(options.config)
		},
	}

	// Define our root --help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.PersistentFlags().Bool("help", false, "Help for this command")

	flags := rootCmd.PersistentFlags()
	hero.BindFlags(flags, &options.flagged)
	flags.StringVar(&options.snapshotPath, "snapshot", "", "Load the maze from a snapshot file instead of generating one")
	flags.StringVar(&options.configPath, "config", "", "YAML file to read settings from")
	flags.Var(&options.logLevel, "log-level", "Logging level: trace, debug, info, warn, error, fatal or panic")

	rootCmd.AddCommand(newPrintCmd(options), newExportCmd(options))
	return rootCmd
}

func Execute(runWindow WindowRunner) {
	if err := NewRootCmd(runWindow).Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// load resolves the configuration from its layers. A snapshot, when given,
// decides the grid size over every other layer.
func (options *rootOptions) load(flags *pflag.FlagSet) error {
	config, err := hero.LoadLayered(options.configPath, flags)
	if err != nil {
		return err
	}

	if options.snapshotPath != "" {
		snapshot, err := hero.LoadSnapshotFile(options.snapshotPath)
		if err != nil {
			return err
		}
		config.Snapshot = snapshot
		config.Cols, config.Rows = snapshot.Cols, snapshot.Rows
	}

	if err := config.Validate(); err != nil {
		return err
	}

	options.config = config
	logrus.WithFields(logrus.Fields{
		"cols": config.Cols,
		"rows": config.Rows,
		"seed": config.Seed,
	}).Debug("Configuration loaded")
	return nil
}

type logLevelValue logrus.Level

func (levelVal *logLevelValue) String() string {
	return logrus.Level(*levelVal).String()
}

func (levelVal *logLevelValue) Set(value string) error {
	level, err := logrus.ParseLevel(value)
	if err != nil {
		return fmt.Errorf("invalid log level")
	}
	*levelVal = logLevelValue(level)
	return nil
}

func (levelVal *logLevelValue) Type() string {
	return "logrus.Level"
}
