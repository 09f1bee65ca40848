package maze

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/heromaze/util/collections"
)

// Path is an ordered walk through the maze, one grid step at a time
type Path []Point

// Hops returns the number of steps taken along the path
func (path Path) Hops() int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}

// Valid reports whether every consecutive pair of points is a single open
// step in grid
func (path Path) Valid(grid *Grid) bool {
	if len(path) == 0 {
		return false
	}
	if !grid.Contains(path[0]) {
		return false
	}
	for i := 1; i < len(path); i++ {
		dir, isStep := stepDirection(path[i-1], path[i])
		if !isStep || !grid.IsOpen(path[i-1], dir) {
			return false
		}
	}
	return true
}

func stepDirection(from, to Point) (Direction, bool) {
	for _, dir := range Directions {
		if from.Add(dir.Delta()) == to {
			return dir, true
		}
	}
	return Top, false
}

type frontierEntry struct {
	point Point
	path  Path
}

// ShortestPath finds a minimum-hop route from start to end by breadth-first
// search. If end cannot be reached, the path holding only start is returned,
// so the result is never empty.
func ShortestPath(grid *Grid, start, end Point) Path {
	var frontier deque.Deque
	visited := collections.NewSet(start)

	frontier.PushBack(frontierEntry{point: start, path: Path{start}})

	for frontier.Len() > 0 {
		entry := frontier.PopFront().(frontierEntry)
		if entry.point == end {
			return entry.path
		}

		for _, dir := range Directions {
			next := entry.point.Add(dir.Delta())
			if !grid.Contains(next) || visited.Contains(next) {
				continue
			}
			if !grid.IsOpen(entry.point, dir) {
				continue
			}

			visited.Add(next)

			// Copy, so sibling branches never share a backing array
			extended := make(Path, len(entry.path), len(entry.path)+1)
			copy(extended, entry.path)
			extended = append(extended, next)

			frontier.PushBack(frontierEntry{point: next, path: extended})
		}
	}

	return Path{start}
}

// SolvePath returns the shortest path from the top-left to the bottom-right cell
func SolvePath(grid *Grid) Path {
	return ShortestPath(grid, Point{0, 0}, Point{grid.Cols() - 1, grid.Rows() - 1})
}

// Distance returns the number of hops between start and end, or -1 if end is
// unreachable
func Distance(grid *Grid, start, end Point) int {
	if !grid.Contains(start) || !grid.Contains(end) {
		return -1
	}

	var frontier deque.Deque
	distances := map[Point]int{start: 0}
	frontier.PushBack(start)

	for frontier.Len() > 0 {
		point := frontier.PopFront().(Point)
		if point == end {
			return distances[point]
		}
		for _, dir := range Directions {
			next := point.Add(dir.Delta())
			if _, seen := distances[next]; seen || !grid.IsOpen(point, dir) {
				continue
			}
			distances[next] = distances[point] + 1
			frontier.PushBack(next)
		}
	}

	return -1
}
