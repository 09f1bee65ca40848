package hero

import "github.com/they4kman/heromaze/util/collections"

type FrameHandle uint64

// FrameScheduler runs callbacks on the host's next redraw
type FrameScheduler interface {
	// RequestFrame queues callback to run once, on the next frame
	RequestFrame(callback func()) FrameHandle

	// CancelFrame drops a queued callback, if it has not yet run
	CancelFrame(handle FrameHandle)
}

type queuedFrame struct {
	handle   FrameHandle
	callback func()
}

// FrameQueue is a FrameScheduler driven by calling RunFrame once per redraw.
// It is meant to be used from a single goroutine.
type FrameQueue struct {
	lastHandle FrameHandle
	pending    []queuedFrame
	cancelled  collections.Set[FrameHandle]
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{cancelled: collections.NewSet[FrameHandle]()}
}

func (queue *FrameQueue) RequestFrame(callback func()) FrameHandle {
	queue.lastHandle++
	queue.pending = append(queue.pending, queuedFrame{handle: queue.lastHandle, callback: callback})
	return queue.lastHandle
}

// CancelFrame ignores handles the queue has not issued
func (queue *FrameQueue) CancelFrame(handle FrameHandle) {
	if handle != 0 && handle <= queue.lastHandle {
		queue.cancelled.Add(handle)
	}
}

// RunFrame runs the callbacks queued before this call. Callbacks requested
// while it runs wait for the following frame. It returns how many ran.
func (queue *FrameQueue) RunFrame() int {
	frames := queue.pending
	queue.pending = nil

	ran := 0
	for _, frame := range frames {
		if queue.cancelled.Contains(frame.handle) {
			continue
		}
		frame.callback()
		ran++
	}

	// Only cancellations of callbacks still waiting need remembering
	stillCancelled := collections.NewSet[FrameHandle]()
	for _, frame := range queue.pending {
		if queue.cancelled.Contains(frame.handle) {
			stillCancelled.Add(frame.handle)
		}
	}
	queue.cancelled = stillCancelled
	return ran
}

// Pending returns the number of callbacks waiting for the next frame
func (queue *FrameQueue) Pending() int {
	count := 0
	for _, frame := range queue.pending {
		if !queue.cancelled.Contains(frame.handle) {
			count++
		}
	}
	return count
}
