package hero

import (
	"testing"

	"github.com/faiface/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/they4kman/heromaze/maze"
)

func TestComputeLayout(t *testing.T) {
	t.Run("height bound viewport", func(t *testing.T) {
		layout := ComputeLayout(25, 19, 800, 600)

		assert.InDelta(t, 600.0/19, layout.CellSize, 1e-9)
		assert.InDelta(t, (800-layout.CellSize*25)/2, layout.OffsetX, 1e-9)
		assert.InDelta(t, 0, layout.OffsetY, 1e-9)
	})

	t.Run("width bound viewport", func(t *testing.T) {
		layout := ComputeLayout(10, 10, 200, 500)

		assert.Equal(t, 20.0, layout.CellSize)
		assert.Equal(t, 0.0, layout.OffsetX)
		assert.Equal(t, 150.0, layout.OffsetY)
	})

	t.Run("same viewport gives same layout", func(t *testing.T) {
		assert.Equal(t, ComputeLayout(25, 19, 1280, 720), ComputeLayout(25, 19, 1280, 720))
	})

	t.Run("viewport without area is empty", func(t *testing.T) {
		assert.True(t, ComputeLayout(25, 19, 0, 600).Empty())
		assert.True(t, ComputeLayout(25, 19, 800, -1).Empty())
		assert.True(t, ComputeLayout(0, 19, 800, 600).Empty())
		assert.False(t, ComputeLayout(25, 19, 800, 600).Empty())
	})
}

func TestLayoutPositions(t *testing.T) {
	layout := ComputeLayout(2, 1, 300, 100)

	assert.Equal(t, 100.0, layout.CellSize)
	assert.Equal(t, pixel.V(50, 0), layout.CellOrigin(maze.Point{X: 0, Y: 0}))
	assert.Equal(t, pixel.V(200, 50), layout.CellCenter(maze.Point{X: 1, Y: 0}))
	assert.Equal(t, pixel.V(200, 75), ToScreen(pixel.V(200, 25), layout.Height))
	assert.Equal(t, pixel.V(200, 275), ToScreen(pixel.V(200, 25), 300))
	assert.Equal(t, pixel.R(50, 0, 250, 100), layout.Bounds())
}
