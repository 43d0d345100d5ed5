package app

import (
	"time"

	"gridlife/internal/core"
	"gridlife/internal/ui"
)

// PanelWidth is the width of the control panel beside the board.
const PanelWidth = 200

// Settings returns the initial panel values for cfg.
func (c *Config) Settings() ui.Settings {
	return ui.Settings{
		Interval:    c.Interval,
		Grid:        core.GridSize{Rows: c.Rows, Columns: c.Columns},
		Seed:        c.Seed,
		ResizeDelay: c.ResizeDelay,
		Width:       PanelWidth,
	}
}

// Callbacks turns panel requests into scheduler input. quit may be nil.
func Callbacks(s *Scheduler, quit func()) ui.Callbacks {
	return ui.Callbacks{
		OnRunToggle:      func() { s.RegisterInput(RunToggled{}) },
		OnIntervalChange: func(d time.Duration) { s.RegisterInput(IntervalChanged{Interval: d}) },
		OnGridResize:     func(size core.GridSize) { s.RegisterInput(GridResized{Size: size}) },
		OnStep:           func() { s.RegisterInput(StepRequested{}) },
		OnClear:          func() { s.RegisterInput(Cleared{}) },
		OnSeed:           func(seed int64) { s.RegisterInput(Seeded{Seed: seed}) },
		OnQuit:           quit,
	}
}

// Status summarises st for the panel.
func Status(st *State) ui.Status {
	return ui.Status{Generation: st.Generation, Population: st.Board.Population()}
}
