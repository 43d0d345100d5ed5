package ui

import (
	"sync"
	"time"
)

type stopper interface {
	Stop() bool
}

// Debouncer delays a call until no newer call has been requested for the
// configured delay. Only the most recent function runs.
type Debouncer struct {
	delay time.Duration
	after func(time.Duration, func()) stopper

	mu      sync.Mutex
	pending stopper
}

// NewDebouncer returns a debouncer. A non-positive delay runs calls
// immediately.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay: delay,
		after: func(d time.Duration, fn func()) stopper { return time.AfterFunc(d, fn) },
	}
}

// Do schedules fn, replacing any call still waiting. fn runs on its own
// goroutine unless the delay is zero.
func (d *Debouncer) Do(fn func()) {
	if d.delay <= 0 {
		fn()
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
	}
	d.pending = d.after(d.delay, fn)
}

// Stop cancels the waiting call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}
