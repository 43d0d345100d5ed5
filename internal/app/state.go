package app

import (
	"time"

	"gridlife/internal/board"
	"gridlife/internal/core"
)

// State is the application state owned by the scheduler.
type State struct {
	Board    *board.Board
	Viewport core.ViewportSize
	// Grid is the requested shape. The board is empty while it has no rows
	// or columns.
	Grid       core.GridSize
	Border     float64
	Density    float64
	Running    bool
	Interval   time.Duration
	Generation uint64

	// tick accumulates simulated time towards the next generation.
	tick time.Duration
}

// NewState returns a paused state with an all-dead board.
func NewState(cfg *Config, viewport core.ViewportSize) *State {
	size := core.GridSize{Rows: cfg.Rows, Columns: cfg.Columns}
	return &State{
		Board:    board.New(viewport, cfg.Border, size),
		Viewport: viewport,
		Grid:     size,
		Border:   cfg.Border,
		Density:  cfg.Density,
		Interval: core.ClampInterval(cfg.Interval),
	}
}
