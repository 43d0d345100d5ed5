//go:build sdl

package render

import (
	"github.com/veandco/go-sdl2/sdl"

	"gridlife/internal/board"
	"gridlife/internal/core"
)

// SDL draws cells as filled rectangles on an SDL renderer.
type SDL struct {
	r   *sdl.Renderer
	err error
}

// NewSDL wraps an SDL renderer.
func NewSDL(r *sdl.Renderer) *SDL { return &SDL{r: r} }

// Err returns the first SDL error seen since the last call.
func (s *SDL) Err() error {
	err := s.err
	s.err = nil
	return err
}

func (s *SDL) check(err error) {
	if err != nil && s.err == nil {
		logger.Warningf("sdl: %v", err)
		s.err = err
	}
}

func (s *SDL) setColor(c core.Color) {
	rgba := c.RGBA8()
	s.check(s.r.SetDrawColor(rgba.R, rgba.G, rgba.B, rgba.A))
}

// Viewport restricts drawing to the given area.
func (s *SDL) Viewport(v core.ViewportSize) {
	s.check(s.r.SetViewport(&sdl.Rect{W: int32(v.Width), H: int32(v.Height)}))
}

// Clear fills the render target.
func (s *SDL) Clear(c core.Color) {
	s.setColor(c)
	s.check(s.r.Clear())
}

// DrawCell fills the cell rectangle snapped to whole pixels.
func (s *SDL) DrawCell(c board.Cell) {
	b := cellBounds(c)
	if b.Empty() {
		return
	}
	s.setColor(c.Color)
	s.check(s.r.FillRect(&sdl.Rect{
		X: int32(b.Min.X),
		Y: int32(b.Min.Y),
		W: int32(b.Dx()),
		H: int32(b.Dy()),
	}))
}

// Flush presents the frame.
func (s *SDL) Flush() { s.r.Present() }
