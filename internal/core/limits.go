package core

import "time"

// Tick interval limits.
const (
	MinInterval  = 10 * time.Millisecond
	MaxInterval  = 2 * time.Second
	IntervalStep = 10 * time.Millisecond
)

// Grid shape limits for user-requested sizes.
const (
	MinGrid = 1
	MaxGrid = 200
)

// ClampInterval limits d to [MinInterval, MaxInterval].
func ClampInterval(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	if d > MaxInterval {
		return MaxInterval
	}
	return d
}
