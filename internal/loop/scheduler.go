// Package loop runs a fixed-timestep frame loop that separates input
// handling, simulation stepping and rendering.
package loop

import (
	"sync"
	"time"

	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("gridlife.loop")

// DefaultTimeStep is the simulation step used when none is configured.
const DefaultTimeStep = time.Second / 60

// Options configures a Scheduler.
type Options[T, E any] struct {
	// State is the initial application state. The scheduler owns it from
	// then on.
	State T
	// TimeStep is the fixed simulation increment.
	TimeStep time.Duration
	// Frames delivers display refreshes.
	Frames FrameRequester

	// ProcessInput folds the events buffered since the previous frame into the
	// state. It runs exactly once per frame, possibly with no events.
	ProcessInput func(state T, events []E) T
	// Update advances the state by one TimeStep.
	Update func(state T, step time.Duration) T
	// Render draws the settled state once per frame.
	Render func(state T, now time.Duration) T
}

// Scheduler drives an application state through buffered input, fixed-step
// updates and one render per display refresh.
type Scheduler[T, E any] struct {
	step         time.Duration
	frames       FrameRequester
	processInput func(T, []E) T
	update       func(T, time.Duration) T
	render       func(T, time.Duration) T

	// Touched only from frame callbacks.
	state       T
	accumulator time.Duration
	last        time.Duration
	rendered    uint64
	updated     uint64

	inputMu sync.Mutex
	input   []E

	runMu   sync.Mutex
	running bool
	inFrame bool
	frameID FrameID
}

// New returns a stopped scheduler. Missing callbacks are treated as identity
// functions.
func New[T, E any](opts Options[T, E]) *Scheduler[T, E] {
	step := opts.TimeStep
	if step <= 0 {
		step = DefaultTimeStep
	}
	s := &Scheduler[T, E]{
		step:         step,
		frames:       opts.Frames,
		processInput: opts.ProcessInput,
		update:       opts.Update,
		render:       opts.Render,
		state:        opts.State,
	}
	if s.processInput == nil {
		s.processInput = func(st T, _ []E) T { return st }
	}
	if s.update == nil {
		s.update = func(st T, _ time.Duration) T { return st }
	}
	if s.render == nil {
		s.render = func(st T, _ time.Duration) T { return st }
	}
	return s
}

// TimeStep returns the fixed simulation increment.
func (s *Scheduler[T, E]) TimeStep() time.Duration { return s.step }

// Start begins requesting frames. Starting a running scheduler is a no-op.
func (s *Scheduler[T, E]) Start() {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.running {
		return
	}
	s.running = true
	if !s.inFrame {
		// A frame in flight reschedules itself when it finishes.
		s.frameID = s.frames.RequestFrame(s.frame)
	}
	logger.Debugf("scheduler started (step %v)", s.step)
}

// Stop cancels the pending frame. A frame already executing completes but does
// not schedule another.
func (s *Scheduler[T, E]) Stop() {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	s.frames.CancelFrame(s.frameID)
	logger.Debugf("scheduler stopped after %d frames", s.rendered)
}

// Running reports whether frames are being scheduled.
func (s *Scheduler[T, E]) Running() bool {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return s.running
}

// RegisterInput appends an event to the buffer consumed by the next frame. It
// is safe to call from any goroutine, including from inside callbacks.
func (s *Scheduler[T, E]) RegisterInput(e E) {
	s.inputMu.Lock()
	s.input = append(s.input, e)
	s.inputMu.Unlock()
}

// State returns the application state. It must only be called between frames
// or from the goroutine that drives them.
func (s *Scheduler[T, E]) State() T { return s.state }

// Counts returns the number of frames rendered and update steps applied.
func (s *Scheduler[T, E]) Counts() (frames, updates uint64) {
	return s.rendered, s.updated
}

func (s *Scheduler[T, E]) drain() []E {
	s.inputMu.Lock()
	events := s.input
	s.input = nil
	s.inputMu.Unlock()
	return events
}

func (s *Scheduler[T, E]) frame(now time.Duration) {
	s.runMu.Lock()
	s.inFrame = true
	s.runMu.Unlock()

	elapsed := now - s.last
	if elapsed > s.step {
		elapsed = s.step
	}
	if elapsed < 0 {
		elapsed = 0
	}
	s.last = now
	s.accumulator += elapsed

	s.state = s.processInput(s.state, s.drain())

	steps := 0
	for s.accumulator >= s.step {
		s.accumulator -= s.step
		s.state = s.update(s.state, s.step)
		steps++
	}
	s.updated += uint64(steps)

	s.state = s.render(s.state, now)
	s.rendered++
	logger.Tracef("frame at %v: %d updates, %v carried", now, steps, s.accumulator)

	s.runMu.Lock()
	s.inFrame = false
	if s.running {
		s.frameID = s.frames.RequestFrame(s.frame)
	}
	s.runMu.Unlock()
}
