// Package ui implements the control panel: run, step, clear and seed buttons,
// steppers for the tick interval and grid shape, and keyboard bindings.
package ui

import (
	"image"
	"strconv"
	"time"

	"github.com/juju/loggo"

	"gridlife/internal/core"
)

var logger = loggo.GetLogger("gridlife.ui")

// Callbacks receive user requests. Nil callbacks are skipped.
type Callbacks struct {
	OnRunToggle      func()
	OnIntervalChange func(time.Duration)
	OnGridResize     func(core.GridSize)
	OnStep           func()
	OnClear          func()
	OnSeed           func(seed int64)
	OnQuit           func()
}

// Settings are the initial values shown by the controls.
type Settings struct {
	Interval    time.Duration
	Grid        core.GridSize
	Seed        int64
	ResizeDelay time.Duration
	// Width of the panel in pixels.
	Width int
}

// Stepper keys.
const (
	KeyInterval = "interval"
	KeyRows     = "rows"
	KeyColumns  = "columns"
)

// Stepper is an integer value adjusted by -/+ buttons within bounds.
type Stepper struct {
	Key   string
	Label string
	Unit  string
	Value int
	Step  int
	Min   int
	Max   int

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func (s *Stepper) target(direction int) int {
	step := s.Step
	if step <= 0 {
		step = 1
	}
	return s.Value + direction*step
}

// CanAdjust reports whether moving in direction stays within bounds.
func (s *Stepper) CanAdjust(direction int) bool {
	switch {
	case direction < 0:
		return s.target(direction) >= s.Min
	case direction > 0:
		return s.target(direction) <= s.Max
	}
	return false
}

// Adjust moves the value one step, clamped to bounds. It reports whether the
// value changed.
func (s *Stepper) Adjust(direction int) bool {
	if direction == 0 {
		return false
	}
	target := s.target(direction)
	if target < s.Min {
		target = s.Min
	}
	if target > s.Max {
		target = s.Max
	}
	if target == s.Value {
		return false
	}
	s.Value = target
	return true
}

// Text formats the value with its unit.
func (s *Stepper) Text() string {
	if s.Unit == "" {
		return strconv.Itoa(s.Value)
	}
	return strconv.Itoa(s.Value) + " " + s.Unit
}

// Button keys.
const (
	ButtonRun   = "run"
	ButtonStep  = "step"
	ButtonClear = "clear"
	ButtonSeed  = "seed"
)

// Button is a clickable panel action.
type Button struct {
	Key  string
	Rect image.Rectangle
}

// Controls is the display-independent state of the control panel. Positions
// passed to Click are relative to the panel's top-left corner.
type Controls struct {
	cb       Callbacks
	running  bool
	seed     int64
	width    int
	steppers []Stepper
	buttons  []Button
	resize   *Debouncer
	status   Status
}

// Status is the read-only information shown under the controls.
type Status struct {
	Generation uint64
	Population int
	FPS        float64
}

// NewControls lays out a panel of the given settings.
func NewControls(s Settings, cb Callbacks) *Controls {
	grid := s.Grid.Clamp(core.MinGrid, core.MaxGrid)
	c := &Controls{
		cb:     cb,
		seed:   s.Seed,
		width:  s.Width,
		resize: NewDebouncer(s.ResizeDelay),
		steppers: []Stepper{
			{
				Key:   KeyInterval,
				Label: "Interval",
				Unit:  "ms",
				Value: int(core.ClampInterval(s.Interval) / time.Millisecond),
				Step:  int(core.IntervalStep / time.Millisecond),
				Min:   int(core.MinInterval / time.Millisecond),
				Max:   int(core.MaxInterval / time.Millisecond),
			},
			{Key: KeyRows, Label: "Rows", Value: grid.Rows, Step: 1, Min: core.MinGrid, Max: core.MaxGrid},
			{Key: KeyColumns, Label: "Columns", Value: grid.Columns, Step: 1, Min: core.MinGrid, Max: core.MaxGrid},
		},
		buttons: []Button{{Key: ButtonRun}, {Key: ButtonStep}, {Key: ButtonClear}, {Key: ButtonSeed}},
	}
	c.layout()
	return c
}

// Running reports whether the run button shows the running state.
func (c *Controls) Running() bool { return c.running }

// Stepper returns the stepper for key, or nil.
func (c *Controls) Stepper(key string) *Stepper {
	for i := range c.steppers {
		if c.steppers[i].Key == key {
			return &c.steppers[i]
		}
	}
	return nil
}

// Grid returns the grid shape currently selected.
func (c *Controls) Grid() core.GridSize {
	return core.GridSize{Rows: c.Stepper(KeyRows).Value, Columns: c.Stepper(KeyColumns).Value}
}

// Interval returns the tick interval currently selected.
func (c *Controls) Interval() time.Duration {
	return time.Duration(c.Stepper(KeyInterval).Value) * time.Millisecond
}

// SetStatus updates the status lines.
func (c *Controls) SetStatus(s Status) { c.status = s }

// Status returns the last status set.
func (c *Controls) Status() Status { return c.status }

// Label returns the caption of a button.
func (c *Controls) Label(key string) string {
	switch key {
	case ButtonRun:
		if c.running {
			return "pause"
		}
		return "start"
	case ButtonStep:
		return "step"
	case ButtonClear:
		return "clear"
	case ButtonSeed:
		return "seed"
	}
	return key
}

// Close cancels a pending debounced resize.
func (c *Controls) Close() { c.resize.Stop() }

// Click handles a press at panel position x, y. It reports whether the
// press hit a control.
func (c *Controls) Click(x, y int) bool {
	for _, b := range c.buttons {
		if pointInRect(x, y, b.Rect) {
			c.press(b.Key)
			return true
		}
	}
	for i := range c.steppers {
		s := &c.steppers[i]
		if pointInRect(x, y, s.minusRect) {
			c.adjust(s, -1)
			return true
		}
		if pointInRect(x, y, s.plusRect) {
			c.adjust(s, 1)
			return true
		}
	}
	return false
}

// Apply performs a keyboard action.
func (c *Controls) Apply(a Action) {
	switch a {
	case ActionToggleRun:
		c.press(ButtonRun)
	case ActionStep:
		c.press(ButtonStep)
	case ActionClear:
		c.press(ButtonClear)
	case ActionSeed:
		c.press(ButtonSeed)
	case ActionIntervalUp:
		c.adjust(c.Stepper(KeyInterval), 1)
	case ActionIntervalDown:
		c.adjust(c.Stepper(KeyInterval), -1)
	case ActionQuit:
		call(c.cb.OnQuit)
	}
}

func (c *Controls) press(key string) {
	switch key {
	case ButtonRun:
		c.running = !c.running
		call(c.cb.OnRunToggle)
	case ButtonStep:
		call(c.cb.OnStep)
	case ButtonClear:
		call(c.cb.OnClear)
	case ButtonSeed:
		seed := c.seed
		c.seed++
		if c.cb.OnSeed != nil {
			c.cb.OnSeed(seed)
		}
	}
}

func (c *Controls) adjust(s *Stepper, direction int) {
	if !s.Adjust(direction) {
		return
	}
	switch s.Key {
	case KeyInterval:
		if c.cb.OnIntervalChange != nil {
			c.cb.OnIntervalChange(c.Interval())
		}
	case KeyRows, KeyColumns:
		size := c.Grid()
		logger.Tracef("grid %dx%d pending", size.Rows, size.Columns)
		if c.cb.OnGridResize != nil {
			fn := c.cb.OnGridResize
			c.resize.Do(func() { fn(size) })
		}
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

func (c *Controls) layout() {
	if c.width <= 0 {
		return
	}
	// Two buttons per row.
	bw := (c.width - 2*panelPadding - buttonGap) / 2
	for i := range c.buttons {
		col, row := i%2, i/2
		x := panelPadding + col*(bw+buttonGap)
		y := controlsTop + row*(buttonHeight+buttonGap)
		c.buttons[i].Rect = image.Rect(x, y, x+bw, y+buttonHeight)
	}
	rows := (len(c.buttons) + 1) / 2
	first := controlsTop + rows*(buttonHeight+buttonGap) + buttonGap
	for i := range c.steppers {
		top := first + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(c.width-panelPadding-buttonSize, buttonY, c.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		c.steppers[i].top = top
		c.steppers[i].minusRect = minusRect
		c.steppers[i].plusRect = plusRect
	}
}

// statusTop is the first baseline below the steppers.
func (c *Controls) statusTop() int {
	rows := (len(c.buttons) + 1) / 2
	return controlsTop + rows*(buttonHeight+buttonGap) + buttonGap + len(c.steppers)*lineHeight + infoSpacing
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonHeight   = 28
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 20
	controlsTop    = panelPadding + headerBaseline + 14
)
