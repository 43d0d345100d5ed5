package loop

import (
	"sync"
	"time"
)

// FrameID identifies a pending frame request.
type FrameID uint64

// FrameRequester schedules a callback for the next display refresh, in the
// manner of requestAnimationFrame. The callback receives the refresh timestamp
// measured from an arbitrary fixed origin.
type FrameRequester interface {
	RequestFrame(fn func(now time.Duration)) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a FrameRequester advanced explicitly by the owner of the
// display loop (an ebiten Draw, a paint event, a test).
type FrameQueue struct {
	mu      sync.Mutex
	next    FrameID
	pending map[FrameID]func(time.Duration)
	order   []FrameID
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameID]func(time.Duration))}
}

// RequestFrame queues fn for the next Advance.
func (q *FrameQueue) RequestFrame(fn func(now time.Duration)) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	id := q.next
	q.pending[id] = fn
	q.order = append(q.order, id)
	return id
}

// CancelFrame drops a queued callback. Unknown or already fired ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.pending, id)
}

// Pending reports how many callbacks wait for the next Advance.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Advance fires every callback queued before the call, in request order.
// Callbacks requested while advancing wait for the following Advance. It
// returns the number of callbacks fired.
func (q *FrameQueue) Advance(now time.Duration) int {
	q.mu.Lock()
	order := q.order
	q.order = nil
	fns := make([]func(time.Duration), 0, len(order))
	for _, id := range order {
		if fn, ok := q.pending[id]; ok {
			fns = append(fns, fn)
			delete(q.pending, id)
		}
	}
	q.mu.Unlock()

	for _, fn := range fns {
		fn(now)
	}
	return len(fns)
}

// Clock converts wall time into frame timestamps relative to its creation.
type Clock struct {
	origin time.Time
}

// NewClock starts a clock at the current instant.
func NewClock() Clock { return Clock{origin: time.Now()} }

// Now returns the time elapsed since the clock started.
func (c Clock) Now() time.Duration { return time.Since(c.origin) }
