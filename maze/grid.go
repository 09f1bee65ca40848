package maze

import (
	"fmt"
	"strings"
)

type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// Directions lists every direction in the order neighbours are inspected
var Directions = []Direction{Top, Right, Bottom, Left}

var directionDeltas = map[Direction]Point{
	Top:    {0, -1},
	Right:  {1, 0},
	Bottom: {0, 1},
	Left:   {-1, 0},
}

func (dir Direction) Delta() Point {
	return directionDeltas[dir]
}

func (dir Direction) Opposite() Direction {
	return (dir + 2) % 4
}

func (dir Direction) String() string {
	switch dir {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(dir))
}

type Point struct {
	X, Y int
}

func (point Point) Add(other Point) Point {
	return Point{point.X + other.X, point.Y + other.Y}
}

func (point Point) String() string {
	return fmt.Sprintf("(%d, %d)", point.X, point.Y)
}

type Cell struct {
	Top, Right, Bottom, Left bool

	visited bool
}

// HasWall returns whether a wall is present on the given side
func (cell *Cell) HasWall(dir Direction) bool {
	switch dir {
	case Top:
		return cell.Top
	case Right:
		return cell.Right
	case Bottom:
		return cell.Bottom
	case Left:
		return cell.Left
	}
	return true
}

func (cell *Cell) setWall(dir Direction, present bool) {
	switch dir {
	case Top:
		cell.Top = present
	case Right:
		cell.Right = present
	case Bottom:
		cell.Bottom = present
	case Left:
		cell.Left = present
	}
}

func (cell *Cell) Visited() bool {
	return cell.visited
}

// Neighbor is an unvisited cell adjacent to another, along with the side of
// the origin cell which joins them. The neighbour's joining side is Dir.Opposite().
type Neighbor struct {
	Point
	Dir Direction
}

type Grid struct {
	cols, rows int // in number of cells
	cells      [][]Cell
}

// NewGrid returns a cols x rows grid with every wall standing and no cell visited
func NewGrid(cols, rows int) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	grid := &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([][]Cell, rows),
	}
	for y := 0; y < rows; y++ {
		row := make([]Cell, cols)
		for x := range row {
			row[x] = Cell{Top: true, Right: true, Bottom: true, Left: true}
		}
		grid.cells[y] = row
	}
	return grid
}

func (grid *Grid) Cols() int {
	return grid.cols
}

func (grid *Grid) Rows() int {
	return grid.rows
}

func (grid *Grid) NumCells() int {
	return grid.cols * grid.rows
}

func (grid *Grid) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < grid.cols && p.Y < grid.rows
}

// CellAt returns the cell at p, or nil when p lies outside the grid
func (grid *Grid) CellAt(p Point) *Cell {
	if grid.Contains(p) {
		return &grid.cells[p.Y][p.X]
	}
	return nil
}

// Neighbors returns the in-bounds, unvisited cells adjacent to p
func (grid *Grid) Neighbors(p Point) []Neighbor {
	neighbors := make([]Neighbor, 0, len(Directions))
	for _, dir := range Directions {
		next := p.Add(dir.Delta())
		cell := grid.CellAt(next)
		if cell == nil || cell.visited {
			continue
		}
		neighbors = append(neighbors, Neighbor{Point: next, Dir: dir})
	}
	return neighbors
}

// CarvePassage knocks down the wall on side dir of p together with the
// matching wall of the neighbouring cell. It reports false if there is no
// neighbour on that side.
func (grid *Grid) CarvePassage(p Point, dir Direction) bool {
	cell := grid.CellAt(p)
	neighbor := grid.CellAt(p.Add(dir.Delta()))
	if cell == nil || neighbor == nil {
		return false
	}
	cell.setWall(dir, false)
	neighbor.setWall(dir.Opposite(), false)
	return true
}

// IsOpen returns whether one can step from p towards dir without crossing a wall
func (grid *Grid) IsOpen(p Point, dir Direction) bool {
	cell := grid.CellAt(p)
	if cell == nil || !grid.Contains(p.Add(dir.Delta())) {
		return false
	}
	return !cell.HasWall(dir)
}

// Passages counts the wall pairs removed between adjacent cells
func (grid *Grid) Passages() int {
	count := 0
	for y := 0; y < grid.rows; y++ {
		for x := 0; x < grid.cols; x++ {
			p := Point{x, y}
			// Right and Bottom only, so each shared wall is counted once
			if grid.IsOpen(p, Right) {
				count++
			}
			if grid.IsOpen(p, Bottom) {
				count++
			}
		}
	}
	return count
}

// Consistent reports whether every pair of adjacent cells agrees on the
// wall between them
func (grid *Grid) Consistent() bool {
	for y := 0; y < grid.rows; y++ {
		for x := 0; x < grid.cols; x++ {
			cell := &grid.cells[y][x]
			if x+1 < grid.cols && cell.Right != grid.cells[y][x+1].Left {
				return false
			}
			if y+1 < grid.rows && cell.Bottom != grid.cells[y+1][x].Top {
				return false
			}
		}
	}
	return true
}

// AllVisited reports whether generation reached every cell
func (grid *Grid) AllVisited() bool {
	for y := 0; y < grid.rows; y++ {
		for x := 0; x < grid.cols; x++ {
			if !grid.cells[y][x].visited {
				return false
			}
		}
	}
	return true
}

func (grid *Grid) markVisited(p Point) {
	grid.cells[p.Y][p.X].visited = true
}

func (grid *Grid) String() string {
	return grid.Render(nil)
}

// Render draws the grid as ASCII art, marking any cells on path with a '*'
func (grid *Grid) Render(path Path) string {
	if grid.NumCells() == 0 {
		return ""
	}

	onPath := make(map[Point]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	var out strings.Builder

	out.WriteString("+")
	for x := 0; x < grid.cols; x++ {
		if grid.cells[0][x].Top {
			out.WriteString("---+")
		} else {
			out.WriteString("   +")
		}
	}
	out.WriteString("\n")

	for y := 0; y < grid.rows; y++ {
		row := grid.cells[y]

		if row[0].Left {
			out.WriteString("|")
		} else {
			out.WriteString(" ")
		}
		for x, cell := range row {
			if _, marked := onPath[Point{x, y}]; marked {
				out.WriteString(" * ")
			} else {
				out.WriteString("   ")
			}
			if cell.Right {
				out.WriteString("|")
			} else {
				out.WriteString(" ")
			}
		}
		out.WriteString("\n")

		out.WriteString("+")
		for _, cell := range row {
			if cell.Bottom {
				out.WriteString("---+")
			} else {
				out.WriteString("   +")
			}
		}
		out.WriteString("\n")
	}

	return out.String()
}
