package hero

import (
	"time"

	"github.com/faiface/pixel"
)

// Debouncer holds back viewport size changes until the size has stopped
// changing for Delay
type Debouncer struct {
	Delay time.Duration

	latest    pixel.Vec
	changedAt time.Time
	pending   bool
}

func NewDebouncer(delay time.Duration, initial pixel.Vec) *Debouncer {
	return &Debouncer{Delay: delay, latest: initial}
}

// Observe records the viewport size seen at now
func (debouncer *Debouncer) Observe(size pixel.Vec, now time.Time) {
	if size == debouncer.latest {
		return
	}
	debouncer.latest = size
	debouncer.changedAt = now
	debouncer.pending = true
}

// Ready returns the settled size once, after it has held steady for Delay
func (debouncer *Debouncer) Ready(now time.Time) (pixel.Vec, bool) {
	if !debouncer.pending || now.Sub(debouncer.changedAt) < debouncer.Delay {
		return pixel.ZV, false
	}
	debouncer.pending = false
	return debouncer.latest, true
}
