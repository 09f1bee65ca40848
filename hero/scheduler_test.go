package hero

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameQueue(t *testing.T) {
	t.Run("runs callbacks in request order", func(t *testing.T) {
		queue := NewFrameQueue()
		var order []int
		queue.RequestFrame(func() { order = append(order, 1) })
		queue.RequestFrame(func() { order = append(order, 2) })

		assert.Equal(t, 2, queue.Pending())
		assert.Equal(t, 2, queue.RunFrame())
		assert.Equal(t, []int{1, 2}, order)
		assert.Zero(t, queue.Pending())
	})

	t.Run("requests made during a frame wait for the next", func(t *testing.T) {
		queue := NewFrameQueue()
		runs := 0
		var loop func()
		loop = func() {
			runs++
			queue.RequestFrame(loop)
		}
		queue.RequestFrame(loop)

		queue.RunFrame()
		assert.Equal(t, 1, runs)
		queue.RunFrame()
		assert.Equal(t, 2, runs)
		assert.Equal(t, 1, queue.Pending())
	})

	t.Run("cancelled callbacks never run", func(t *testing.T) {
		queue := NewFrameQueue()
		ran := false
		handle := queue.RequestFrame(func() { ran = true })

		queue.CancelFrame(handle)

		assert.Zero(t, queue.Pending())
		assert.Zero(t, queue.RunFrame())
		assert.False(t, ran)
	})

	t.Run("a callback can cancel a later one in the same frame", func(t *testing.T) {
		queue := NewFrameQueue()
		ran := false
		var second FrameHandle
		queue.RequestFrame(func() { queue.CancelFrame(second) })
		second = queue.RequestFrame(func() { ran = true })

		assert.Equal(t, 1, queue.RunFrame())
		assert.False(t, ran)
	})

	t.Run("cancelling an unknown handle is harmless", func(t *testing.T) {
		queue := NewFrameQueue()
		queue.CancelFrame(0)
		queue.CancelFrame(42)

		ran := false
		queue.RequestFrame(func() { ran = true })
		queue.RunFrame()
		assert.True(t, ran)
	})

	t.Run("cancelling a handle before it is issued has no effect", func(t *testing.T) {
		queue := NewFrameQueue()
		queue.CancelFrame(2)

		var firstRan, secondRan bool
		queue.RequestFrame(func() { firstRan = true })
		queue.RequestFrame(func() { secondRan = true })

		assert.Equal(t, 2, queue.Pending())
		assert.Equal(t, 2, queue.RunFrame())
		assert.True(t, firstRan)
		assert.True(t, secondRan)
	})
}
