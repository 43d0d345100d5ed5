// Package app holds the Game of Life application state and the reducer that
// the frame scheduler drives.
package app

import (
	"fmt"
	"time"

	"github.com/juju/loggo"

	"gridlife/internal/board"
	"gridlife/internal/core"
	"gridlife/internal/loop"
	"gridlife/internal/render"
)

var logger = loggo.GetLogger("gridlife.app")

// Scheduler is the frame scheduler specialised to the application.
type Scheduler = loop.Scheduler[*State, Event]

// Game folds input events into the state, steps generations and draws the
// board through a renderer.
type Game struct {
	renderer render.Renderer
}

// NewGame returns a Game drawing through r. A nil renderer skips drawing.
func NewGame(r render.Renderer) *Game {
	return &Game{renderer: r}
}

// New builds the initial state and a stopped scheduler for it.
func New(cfg *Config, viewport core.ViewportSize, r render.Renderer, frames loop.FrameRequester) *Scheduler {
	g := NewGame(r)
	st := NewState(cfg, viewport)
	logger.Infof("board %dx%d in %dx%d viewport, interval %v", cfg.Rows, cfg.Columns, viewport.Width, viewport.Height, st.Interval)
	return loop.New(loop.Options[*State, Event]{
		State:        st,
		TimeStep:     cfg.TimeStep,
		Frames:       frames,
		ProcessInput: g.ProcessInput,
		Update:       g.Update,
		Render:       g.Render,
	})
}

// ProcessInput applies events in order. An event outside the closed set is
// a programming error and panics.
func (g *Game) ProcessInput(st *State, events []Event) *State {
	for _, e := range events {
		st = g.apply(st, e)
	}
	return st
}

func (g *Game) apply(st *State, e Event) *State {
	switch e := e.(type) {
	case RunToggled:
		st.Running = !st.Running
		logger.Debugf("running: %v", st.Running)
	case IntervalChanged:
		st.Interval = core.ClampInterval(e.Interval)
	case GridResized:
		st.Grid = e.Size
		st.Board = board.Resize(st.Board, st.Viewport, st.Border, st.Grid)
	case ViewportResized:
		st.Viewport = e.Size
		st.Board = board.Resize(st.Board, st.Viewport, st.Border, st.Grid)
	case PointerClicked:
		if hit, ok := board.DetectCollision(st.Board, e.Point); ok {
			st.Board.Toggle(hit.Row, hit.Column)
		}
	case StepRequested:
		st.Board.Step()
		st.Generation++
	case Cleared:
		st.Board.Clear()
		st.Generation = 0
	case Seeded:
		st.Board.Seed(core.NewRNG(e.Seed), st.Density)
		st.Generation = 0
		logger.Debugf("seeded %d live cells from %d", st.Board.Population(), e.Seed)
	default:
		panic(fmt.Sprintf("app: unknown event %T", e))
	}
	return st
}

// Update advances the tick accumulator by one step, capped at one interval,
// and steps one generation for every whole interval while running.
func (g *Game) Update(st *State, step time.Duration) *State {
	if step > st.Interval {
		step = st.Interval
	}
	st.tick += step
	for st.tick >= st.Interval {
		st.tick -= st.Interval
		if st.Running {
			st.Board.Step()
			st.Generation++
		}
	}
	return st
}

// Render redraws the whole board.
func (g *Game) Render(st *State, _ time.Duration) *State {
	if g.renderer != nil {
		render.Frame(g.renderer, st.Board)
	}
	return st
}
