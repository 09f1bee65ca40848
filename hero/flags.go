package hero

import (
	"fmt"

	"github.com/spf13/pflag"
)

// BindFlags defines a flag for each command-line setting of config on
// flags. The flags default to config's current values and write into it.
func BindFlags(flags *pflag.FlagSet, config *Config) {
	flags.IntVarP(&config.Cols, "cols", "c", config.Cols, "Width of the maze, in cells")
	flags.IntVarP(&config.Rows, "rows", "r", config.Rows, "Height of the maze, in cells")
	flags.Float64VarP(&config.Width, "width", "w", config.Width, "Initial window width, in pixels")
	flags.Float64VarP(&config.Height, "height", "h", config.Height, "Initial window height, in pixels")
	flags.Int64VarP(&config.Seed, "seed", "s", config.Seed, "Seed for maze generation (0 picks one from the clock)")
	flags.Float64Var(&config.Speed, "speed", config.Speed, "Fraction of the remaining distance the dot covers each frame")
	flags.StringVar(&config.Caption, "caption", config.Caption, "Text drawn in the bottom-left corner of the window")
	flags.StringVar(&config.SnapshotDir, "snapshot-dir", config.SnapshotDir, "Directory where snapshots are saved")
}

// LoadLayered builds a Config from, lowest precedence first: the defaults,
// the YAML file at path (skipped when empty), the environment and envFiles,
// and finally those flags among flags that were set on the command line.
// Only flags defined by BindFlags are applied; flags left unset never
// override a lower layer.
func LoadLayered(path string, flags *pflag.FlagSet, envFiles ...string) (Config, error) {
	config := NewConfig()

	if path != "" {
		if err := LoadConfigFile(path, &config); err != nil {
			return config, err
		}
	}
	if err := LoadEnv(&config, envFiles...); err != nil {
		return config, err
	}

	overlay := pflag.NewFlagSet("overlay", pflag.ContinueOnError)
	BindFlags(overlay, &config)

	var err error
	flags.Visit(func(flag *pflag.Flag) {
		if err != nil || overlay.Lookup(flag.Name) == nil {
			return
		}
		if setErr := overlay.Set(flag.Name, flag.Value.String()); setErr != nil {
			err = fmt.Errorf("%w: --%s: %v", ErrInvalidConfig, flag.Name, setErr)
		}
	})
	return config, err
}
