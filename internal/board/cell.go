package board

import (
	"gridlife/internal/core"
	"gridlife/internal/layout"
)

// State is the liveness of a single cell.
type State uint8

const (
	Dead State = iota
	Alive
)

func (s State) String() string {
	if s == Alive {
		return "ALIVE"
	}
	return "DEAD"
}

var (
	// Foreground is the colour of live cells.
	Foreground = core.Black
	// Background is the colour of dead cells and of cells created by a resize.
	Background = core.White
)

// ColorFor returns the fixed colour of a cell state.
func ColorFor(s State) core.Color {
	if s == Alive {
		return Foreground
	}
	return Background
}

// Cell is one grid position together with its pixel rectangle.
type Cell struct {
	Point  core.Point
	Height float64
	Width  float64
	Color  core.Color
	State  State
}

// Alive reports whether the cell is live.
func (c Cell) Alive() bool { return c.State == Alive }

// Rect returns the cell rectangle.
func (c Cell) Rect() layout.Rect {
	return layout.Rect{Min: c.Point, Width: c.Width, Height: c.Height}
}

// Contains reports whether p lies inside the cell rectangle, edges included.
func (c Cell) Contains(p core.Point) bool { return c.Rect().Contains(p) }

// Toggle flips the cell state and recomputes its colour. Geometry is untouched.
func Toggle(c Cell) Cell {
	if c.State == Alive {
		c.State = Dead
	} else {
		c.State = Alive
	}
	c.Color = ColorFor(c.State)
	return c
}

// nextState applies the B3/S23 transition table.
func nextState(s State, aliveNeighbors int) State {
	switch s {
	case Alive:
		if aliveNeighbors == 2 || aliveNeighbors == 3 {
			return Alive
		}
		return Dead
	default:
		if aliveNeighbors == 3 {
			return Alive
		}
		return Dead
	}
}
