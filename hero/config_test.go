package hero

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, NewConfig().Validate())

	cases := map[string]func(*Config){
		"no columns":        func(config *Config) { config.Cols = 0 },
		"negative rows":     func(config *Config) { config.Rows = -3 },
		"zero width":        func(config *Config) { config.Width = 0 },
		"zero speed":        func(config *Config) { config.Speed = 0 },
		"speed above one":   func(config *Config) { config.Speed = 1.5 },
		"zero tolerance":    func(config *Config) { config.Tolerance = 0 },
		"negative debounce": func(config *Config) { config.ResizeDebounce = -time.Second },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			config := NewConfig()
			mutate(&config)
			assert.ErrorIs(t, config.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("overlays defaults", func(t *testing.T) {
		path := filepath.Join(dir, "heromaze.yaml")
		require.NoError(t, ioutil.WriteFile(path, []byte("cols: 11\nseed: 77\nresize_debounce: 300ms\ncaption: game developer\n"), 0666))

		config := NewConfig()
		require.NoError(t, LoadConfigFile(path, &config))

		assert.Equal(t, 11, config.Cols)
		assert.Equal(t, DefaultRows, config.Rows)
		assert.Equal(t, int64(77), config.Seed)
		assert.Equal(t, 300*time.Millisecond, config.ResizeDebounce)
		assert.Equal(t, "game developer", config.Caption)
		assert.Equal(t, DefaultSpeed, config.Speed)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		path := filepath.Join(dir, "typo.yaml")
		require.NoError(t, ioutil.WriteFile(path, []byte("colz: 11\n"), 0666))

		config := NewConfig()
		assert.ErrorIs(t, LoadConfigFile(path, &config), ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		config := NewConfig()
		err := LoadConfigFile(filepath.Join(dir, "missing.yaml"), &config)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadEnv(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Run("variables overlay config", func(t *testing.T) {
		t.Setenv("HEROMAZE_COLS", "31")
		t.Setenv("HEROMAZE_SPEED", "0.2")
		t.Setenv("HEROMAZE_SEED", "9000000000")
		t.Setenv("HEROMAZE_RESIZE_DEBOUNCE", "1s")
		t.Setenv("HEROMAZE_CAPTION", "hello")

		config := NewConfig()
		require.NoError(t, LoadEnv(&config, missing))

		assert.Equal(t, 31, config.Cols)
		assert.Equal(t, DefaultRows, config.Rows)
		assert.Equal(t, 0.2, config.Speed)
		assert.Equal(t, int64(9000000000), config.Seed)
		assert.Equal(t, time.Second, config.ResizeDebounce)
		assert.Equal(t, "hello", config.Caption)
	})

	t.Run("malformed numbers are rejected", func(t *testing.T) {
		t.Setenv("HEROMAZE_ROWS", "many")

		config := NewConfig()
		assert.ErrorIs(t, LoadEnv(&config, missing), ErrInvalidConfig)
	})

	t.Run("reads .env files", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, ioutil.WriteFile(envFile, []byte("HEROMAZE_SNAPSHOT_DIR=/tmp/mazes\n"), 0666))
		t.Cleanup(func() { os.Unsetenv("HEROMAZE_SNAPSHOT_DIR") })

		config := NewConfig()
		require.NoError(t, LoadEnv(&config, envFile))

		assert.Equal(t, "/tmp/mazes", config.SnapshotDir)
	})
}
