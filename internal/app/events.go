package app

import (
	"time"

	"gridlife/internal/core"
)

// Event is an input event consumed by Game.ProcessInput. The set is closed.
type Event interface {
	event()
}

// RunToggled starts or pauses generation stepping.
type RunToggled struct{}

// IntervalChanged sets the time between generations.
type IntervalChanged struct {
	Interval time.Duration
}

// GridResized requests a new row and column count.
type GridResized struct {
	Size core.GridSize
}

// PointerClicked toggles the cell under Point, if any.
type PointerClicked struct {
	Point core.Point
}

// ViewportResized reports a new drawable area in device pixels.
type ViewportResized struct {
	Size core.ViewportSize
}

// StepRequested advances exactly one generation, running or not.
type StepRequested struct{}

// Cleared kills every cell.
type Cleared struct{}

// Seeded fills the board randomly from Seed.
type Seeded struct {
	Seed int64
}

func (RunToggled) event()      {}
func (IntervalChanged) event() {}
func (GridResized) event()     {}
func (PointerClicked) event()  {}
func (ViewportResized) event() {}
func (StepRequested) event()   {}
func (Cleared) event()         {}
func (Seeded) event()          {}
