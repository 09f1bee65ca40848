package hero

import (
	"github.com/faiface/pixel"
	"github.com/they4kman/heromaze/maze"
)

// Layout places a cols x rows grid of square cells in the centre of a
// viewport. All positions are in pixels, measured from the top-left corner.
type Layout struct {
	Cols, Rows    int
	Width, Height float64

	CellSize         float64
	OffsetX, OffsetY float64
}

// ComputeLayout picks the largest square cell size that fits the viewport.
// A viewport or grid without area yields an empty layout.
func ComputeLayout(cols, rows int, width, height float64) Layout {
	layout := Layout{Cols: cols, Rows: rows, Width: width, Height: height}
	if cols < 1 || rows < 1 || width <= 0 || height <= 0 {
		return layout
	}

	cellWidth := width / float64(cols)
	cellHeight := height / float64(rows)
	if cellWidth < cellHeight {
		layout.CellSize = cellWidth
	} else {
		layout.CellSize = cellHeight
	}

	layout.OffsetX = (width - layout.CellSize*float64(cols)) / 2
	layout.OffsetY = (height - layout.CellSize*float64(rows)) / 2
	return layout
}

func (layout Layout) Empty() bool {
	return layout.CellSize <= 0
}

// CellOrigin returns the top-left corner of the cell at p
func (layout Layout) CellOrigin(p maze.Point) pixel.Vec {
	return pixel.V(
		layout.OffsetX+float64(p.X)*layout.CellSize,
		layout.OffsetY+float64(p.Y)*layout.CellSize,
	)
}

// CellCenter returns the centre of the cell at p
func (layout Layout) CellCenter(p maze.Point) pixel.Vec {
	half := layout.CellSize / 2
	return layout.CellOrigin(p).Add(pixel.V(half, half))
}

// ToScreen flips a top-left-origin position into the bottom-left-origin
// coordinates pixel draws with, for a viewport viewportHeight pixels tall
func ToScreen(v pixel.Vec, viewportHeight float64) pixel.Vec {
	return pixel.V(v.X, viewportHeight-v.Y)
}

// Bounds returns the area covered by the grid, in top-left-origin coordinates
func (layout Layout) Bounds() pixel.Rect {
	origin := pixel.V(layout.OffsetX, layout.OffsetY)
	size := pixel.V(layout.CellSize*float64(layout.Cols), layout.CellSize*float64(layout.Rows))
	return pixel.Rect{Min: origin, Max: origin.Add(size)}
}
