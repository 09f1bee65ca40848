package hero

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/heromaze/maze"
	"gopkg.in/yaml.v2"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const envPrefix = "HEROMAZE_"

type Config struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`

	// Initial window size, in pixels
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Seed for maze generation; 0 picks one from the clock
	Seed int64 `yaml:"seed"`

	Speed          float64       `yaml:"speed"`
	Tolerance      float64       `yaml:"tolerance"`
	ResizeDebounce time.Duration `yaml:"resize_debounce"`

	// Text drawn in the bottom-left corner of the window, if any
	Caption string `yaml:"caption"`

	// Path to directory where snapshots of mazes should be saved
	SnapshotDir string `yaml:"snapshot_dir"`

	// Snapshot to load the maze from, in place of generating one
	Snapshot *maze.Snapshot `yaml:"-"`
}

func NewConfig() Config {
	return Config{
		Cols:           DefaultCols,
		Rows:           DefaultRows,
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Speed:          DefaultSpeed,
		Tolerance:      DefaultTolerance,
		ResizeDebounce: DefaultResizeDebounce,
	}
}

func (config Config) Validate() error {
	if config.Cols < 1 || config.Rows < 1 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, config.Cols, config.Rows)
	}
	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %vx%v", ErrInvalidConfig, config.Width, config.Height)
	}
	if config.Speed <= 0 || config.Speed > 1 {
		return fmt.Errorf("%w: speed must be within (0, 1], got %v", ErrInvalidConfig, config.Speed)
	}
	if config.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive, got %v", ErrInvalidConfig, config.Tolerance)
	}
	if config.ResizeDebounce < 0 {
		return fmt.Errorf("%w: resize debounce must not be negative, got %v", ErrInvalidConfig, config.ResizeDebounce)
	}
	return nil
}

// LoadConfigFile overlays the settings found in a YAML file onto config
func LoadConfigFile(path string, config *Config) error {
	in, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.UnmarshalStrict(in, config); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

// LoadEnv overlays HEROMAZE_* environment variables onto config, after
// loading any of the given .env files (or ".env" when none are given)
func LoadEnv(config *Config, files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		logrus.WithError(err).Debug("No .env file loaded")
	}

	var err error
	if config.Cols, err = envInt("COLS", config.Cols); err != nil {
		return err
	}
	if config.Rows, err = envInt("ROWS", config.Rows); err != nil {
		return err
	}
	if config.Width, err = envFloat("WIDTH", config.Width); err != nil {
		return err
	}
	if config.Height, err = envFloat("HEIGHT", config.Height); err != nil {
		return err
	}
	if config.Speed, err = envFloat("SPEED", config.Speed); err != nil {
		return err
	}
	if config.Tolerance, err = envFloat("TOLERANCE", config.Tolerance); err != nil {
		return err
	}

	if value, exists := os.LookupEnv(envPrefix + "SEED"); exists {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED must be an integer: %v", ErrInvalidConfig, envPrefix, err)
		}
		config.Seed = seed
	}
	if value, exists := os.LookupEnv(envPrefix + "RESIZE_DEBOUNCE"); exists {
		debounce, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %sRESIZE_DEBOUNCE: %v", ErrInvalidConfig, envPrefix, err)
		}
		config.ResizeDebounce = debounce
	}
	if value, exists := os.LookupEnv(envPrefix + "CAPTION"); exists {
		config.Caption = value
	}
	if value, exists := os.LookupEnv(envPrefix + "SNAPSHOT_DIR"); exists {
		config.SnapshotDir = value
	}
	return nil
}

func envInt(key string, fallback int) (int, error) {
	value, exists := os.LookupEnv(envPrefix + key)
	if !exists {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s%s must be an integer: %v", ErrInvalidConfig, envPrefix, key, err)
	}
	return parsed, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	value, exists := os.LookupEnv(envPrefix + key)
	if !exists {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s%s must be a number: %v", ErrInvalidConfig, envPrefix, key, err)
	}
	return parsed, nil
}
