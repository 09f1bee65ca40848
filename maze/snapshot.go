package maze

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v2"
	"strconv"
	"strings"
)

var ErrInvalidSnapshot = errors.New("invalid maze snapshot")

const (
	wallTop = 1 << iota
	wallRight
	wallBottom
	wallLeft
)

// Snapshot is the serializable form of a generated maze. Each row of Walls
// holds one hex digit per cell: the bitmask of its standing walls.
type Snapshot struct {
	Seed  int64    `yaml:"seed"`
	Cols  int      `yaml:"cols"`
	Rows  int      `yaml:"rows"`
	Walls []string `yaml:"walls"`
}

// TakeSnapshot records the walls of grid, along with the seed it was built from
func TakeSnapshot(grid *Grid, seed int64) *Snapshot {
	snapshot := &Snapshot{
		Seed:  seed,
		Cols:  grid.cols,
		Rows:  grid.rows,
		Walls: make([]string, grid.rows),
	}

	for y, row := range grid.cells {
		var encoded strings.Builder
		for _, cell := range row {
			encoded.WriteString(strconv.FormatInt(int64(cell.wallMask()), 16))
		}
		snapshot.Walls[y] = encoded.String()
	}

	return snapshot
}

func (snapshot *Snapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("serializing snapshot: %w", err)
	}
	return string(out), nil
}

// Grid rebuilds the maze recorded by the snapshot. Every cell of the result is
// marked visited, as though it were freshly generated.
func (snapshot *Snapshot) Grid() (*Grid, error) {
	if snapshot.Cols < 1 || snapshot.Rows < 1 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrInvalidSnapshot, snapshot.Cols, snapshot.Rows)
	}
	if len(snapshot.Walls) != snapshot.Rows {
		return nil, fmt.Errorf("%w: expected %d rows, found %d", ErrInvalidSnapshot, snapshot.Rows, len(snapshot.Walls))
	}

	grid := NewGrid(snapshot.Cols, snapshot.Rows)
	for y, row := range snapshot.Walls {
		if len(row) != snapshot.Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidSnapshot, y, len(row), snapshot.Cols)
		}
		for x, c := range row {
			mask, err := strconv.ParseUint(string(c), 16, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: cell (%d, %d): %q is not a hex digit", ErrInvalidSnapshot, x, y, c)
			}
			cell := &grid.cells[y][x]
			cell.setWallMask(int(mask))
			cell.visited = true
		}
	}

	if !grid.Consistent() {
		return nil, fmt.Errorf("%w: neighbouring cells disagree on shared walls", ErrInvalidSnapshot)
	}

	return grid, nil
}

func LoadSnapshot(in string) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &snapshot, nil
}

func (cell *Cell) wallMask() int {
	mask := 0
	if cell.Top {
		mask |= wallTop
	}
	if cell.Right {
		mask |= wallRight
	}
	if cell.Bottom {
		mask |= wallBottom
	}
	if cell.Left {
		mask |= wallLeft
	}
	return mask
}

func (cell *Cell) setWallMask(mask int) {
	cell.Top = mask&wallTop != 0
	cell.Right = mask&wallRight != 0
	cell.Bottom = mask&wallBottom != 0
	cell.Left = mask&wallLeft != 0
}
