package hero

import (
	"github.com/faiface/pixel"
	"github.com/they4kman/heromaze/maze"
)

type Segment struct {
	A, B pixel.Vec
}

// WallSegments returns a line segment for each standing wall side of every
// cell. Walls shared by two cells are emitted once per side.
func WallSegments(grid *maze.Grid, layout Layout) []Segment {
	if layout.Empty() {
		return nil
	}

	segments := make([]Segment, 0, grid.NumCells()*2)
	size := layout.CellSize

	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			p := maze.Point{X: x, Y: y}
			cell := grid.CellAt(p)

			topLeft := layout.CellOrigin(p)
			topRight := topLeft.Add(pixel.V(size, 0))
			bottomRight := topLeft.Add(pixel.V(size, size))
			bottomLeft := topLeft.Add(pixel.V(0, size))

			if cell.Top {
				segments = append(segments, Segment{topLeft, topRight})
			}
			if cell.Right {
				segments = append(segments, Segment{topRight, bottomRight})
			}
			if cell.Bottom {
				segments = append(segments, Segment{bottomRight, bottomLeft})
			}
			if cell.Left {
				segments = append(segments, Segment{bottomLeft, topLeft})
			}
		}
	}

	return segments
}
