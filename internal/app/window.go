//go:build ebiten

package app

import (
	"image"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridlife/internal/core"
	"gridlife/internal/loop"
	"gridlife/internal/render"
	"gridlife/internal/ui"
)

// Window adapts the scheduler to the ebiten.Game interface. Every ebiten
// Draw is one display refresh.
type Window struct {
	sched    *Scheduler
	frames   *loop.FrameQueue
	clock    loop.Clock
	renderer *render.Ebiten
	controls *ui.Controls
	panel    *ui.Panel
	viewport core.ViewportSize
	quit     atomic.Bool
}

// NewWindow builds the application for cfg and starts its scheduler.
func NewWindow(cfg *Config) *Window {
	w := &Window{
		frames:   loop.NewFrameQueue(),
		clock:    loop.NewClock(),
		renderer: render.NewEbiten(),
	}
	w.viewport = core.ViewportSize{Width: cfg.Width, Height: cfg.Height}
	w.sched = New(cfg, w.viewport, w.renderer, w.frames)
	w.controls = ui.NewControls(cfg.Settings(), Callbacks(w.sched, func() { w.quit.Store(true) }))
	w.panel = ui.NewPanel(w.controls)
	w.sched.Start()
	return w
}

// Update handles input.
func (w *Window) Update() error {
	if w.quit.Load() {
		return ebiten.Termination
	}
	if !w.panel.Update(w.viewport.Width) && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.sched.RegisterInput(PointerClicked{Point: core.Point{X: float64(x), Y: float64(y)}})
	}
	if w.quit.Load() {
		return ebiten.Termination
	}
	return nil
}

// Draw advances the frame loop onto the board area and draws the panel.
func (w *Window) Draw(screen *ebiten.Image) {
	area := image.Rect(0, 0, w.viewport.Width, w.viewport.Height)
	w.renderer.SetTarget(screen.SubImage(area).(*ebiten.Image))
	w.frames.Advance(w.clock.Now())

	st := Status(w.sched.State())
	st.FPS = ebiten.ActualFPS()
	w.controls.SetStatus(st)
	w.panel.Draw(screen, w.viewport.Width)
}

// Layout works in device pixels. The board gets everything left of the panel.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	full := core.ViewportFromClient(outsideWidth, outsideHeight, ebiten.DeviceScaleFactor())
	board := core.ViewportSize{Width: full.Width - w.panel.Width(), Height: full.Height}
	if board.Width < 0 {
		board.Width = 0
	}
	if board != w.viewport {
		logger.Debugf("viewport %dx%d", board.Width, board.Height)
		w.viewport = board
		w.sched.RegisterInput(ViewportResized{Size: board})
	}
	return full.Width, full.Height
}

// Close stops the scheduler and any pending resize.
func (w *Window) Close() {
	w.controls.Close()
	w.sched.Stop()
}
