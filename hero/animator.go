package hero

import (
	"math"

	"github.com/faiface/pixel"
	"github.com/they4kman/heromaze/maze"
)

// Animator patrols a dot along a path. Each step eases the dot a fixed
// fraction of the way towards the current path point; once it arrives, the
// next point becomes the target, wrapping back to the start after the last.
type Animator struct {
	Speed     float64
	Tolerance float64

	path  maze.Path
	index int
	dot   pixel.Vec
}

func NewAnimator(path maze.Path, speed, tolerance float64) *Animator {
	return &Animator{
		Speed:     speed,
		Tolerance: tolerance,
		path:      path,
	}
}

func (animator *Animator) Path() maze.Path {
	return animator.path
}

func (animator *Animator) Index() int {
	return animator.index
}

func (animator *Animator) Dot() pixel.Vec {
	return animator.dot
}

// Target returns the pixel position the dot is heading for
func (animator *Animator) Target(layout Layout) pixel.Vec {
	if len(animator.path) == 0 {
		return animator.dot
	}
	return layout.CellCenter(animator.path[animator.index])
}

// Snap moves the dot directly onto its current target, keeping the index
func (animator *Animator) Snap(layout Layout) {
	animator.dot = animator.Target(layout)
}

// Step advances the animation by one frame, and reports whether the dot
// arrived at its target and moved on to the next path point
func (animator *Animator) Step(layout Layout) bool {
	if len(animator.path) == 0 || layout.Empty() {
		return false
	}

	target := animator.Target(layout)
	animator.dot = pixel.Lerp(animator.dot, target, animator.Speed)

	if math.Abs(animator.dot.X-target.X) < animator.Tolerance && math.Abs(animator.dot.Y-target.Y) < animator.Tolerance {
		animator.index = (animator.index + 1) % len(animator.path)
		return true
	}
	return false
}
