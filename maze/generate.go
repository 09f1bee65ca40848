package maze

import (
	"math/rand"
	"time"
)

// Shuffle permutes items in place with a Fisher-Yates shuffle driven by rng
func Shuffle[T any](items []T, rng *rand.Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Generate carves a perfect maze into grid by randomized depth-first
// traversal from the top-left cell, using an explicit stack in place of
// recursion.
func Generate(grid *Grid, rng *rand.Rand) {
	if grid.NumCells() == 0 {
		return
	}

	start := Point{0, 0}
	grid.markVisited(start)
	stack := []Point{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		neighbors := grid.Neighbors(current)
		if len(neighbors) == 0 {
			continue
		}
		Shuffle(neighbors, rng)

		next := neighbors[0]
		grid.CarvePassage(current, next.Dir)
		grid.markVisited(next.Point)

		stack = append(stack, current, next.Point)
	}
}

// NewRand returns a random source for seed, or a time-seeded one if seed is 0.
// The seed actually used is returned alongside.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// New generates a cols x rows maze from seed
func New(cols, rows int, seed int64) *Grid {
	grid := NewGrid(cols, rows)
	rng, _ := NewRand(seed)
	Generate(grid, rng)
	return grid
}
