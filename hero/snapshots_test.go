package hero

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/heromaze/maze"
)

func TestSaveSnapshot(t *testing.T) {
	grid := maze.New(5, 4, 321)
	snapshot := maze.TakeSnapshot(grid, 321)
	savedAt := time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC)

	t.Run("creates the directory and round trips", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "snapshots")

		path, err := SaveSnapshot(dir, snapshot, savedAt)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "20240309_143005_5x4_321.yaml"), path)

		loaded, err := LoadSnapshotFile(path)
		require.NoError(t, err)
		assert.Equal(t, snapshot, loaded)

		restored, err := loaded.Grid()
		require.NoError(t, err)
		assert.Equal(t, grid.String(), restored.String())
	})

	t.Run("refuses a file in place of a directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, ioutil.WriteFile(file, nil, 0666))

		_, err := SaveSnapshot(file, snapshot, savedAt)
		assert.Error(t, err)
	})
}

func TestLoadSnapshotFileMissing(t *testing.T) {
	_, err := LoadSnapshotFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
