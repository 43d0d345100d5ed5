// Package render draws boards through interchangeable back ends.
package render

import (
	"github.com/juju/loggo"

	"gridlife/internal/board"
	"gridlife/internal/core"
)

var logger = loggo.GetLogger("gridlife.render")

// Renderer is a drawing back end. Cells drawn between Clear and Flush belong to
// one frame.
type Renderer interface {
	board.CellDrawer
	// Viewport sets the drawable area in device pixels.
	Viewport(v core.ViewportSize)
	// Clear fills the whole viewport and starts a new frame.
	Clear(c core.Color)
	// Flush submits the frame.
	Flush()
}

// Frame redraws b completely: viewport, gutter fill, every cell.
func Frame(r Renderer, b *board.Board) {
	r.Viewport(b.Viewport())
	r.Clear(core.Gutter)
	board.Draw(b, r)
	r.Flush()
}
