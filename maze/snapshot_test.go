package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestoresMaze(t *testing.T) {
	grid := New(9, 6, 2024)

	serialized, err := TakeSnapshot(grid, 2024).Serialize()
	require.NoError(t, err)

	snapshot, err := LoadSnapshot(serialized)
	require.NoError(t, err)
	assert.Equal(t, int64(2024), snapshot.Seed)

	restored, err := snapshot.Grid()
	require.NoError(t, err)
	assert.Equal(t, grid.String(), restored.String())
	assert.True(t, restored.AllVisited())
	assert.Equal(t, SolvePath(grid), SolvePath(restored))
}

func TestSnapshotEncoding(t *testing.T) {
	grid := NewGrid(2, 1)
	grid.CarvePassage(Point{0, 0}, Right)

	snapshot := TakeSnapshot(grid, 1)
	// top|bottom|left = d, top|right|bottom = 7
	assert.Equal(t, []string{"d7"}, snapshot.Walls)
}

func TestSnapshotRejectsInvalidInput(t *testing.T) {
	cases := map[string]*Snapshot{
		"empty grid":      {Cols: 0, Rows: 0},
		"missing row":     {Cols: 2, Rows: 2, Walls: []string{"d7"}},
		"short row":       {Cols: 2, Rows: 1, Walls: []string{"d"}},
		"non hex digit":   {Cols: 2, Rows: 1, Walls: []string{"dz"}},
		"mismatched wall": {Cols: 2, Rows: 1, Walls: []string{"df"}},
	}

	for name, snapshot := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := snapshot.Grid()
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}

func TestLoadSnapshotRejectsBadYAML(t *testing.T) {
	_, err := LoadSnapshot("seed: [unterminated")
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}
