package render

import (
	"image"
	"image/png"
	"io"

	"gopkg.in/errgo.v1"

	"gridlife/internal/board"
	"gridlife/internal/core"
)

// Image rasterises frames into memory. It needs no display and backs the
// headless tools.
type Image struct {
	img *image.NRGBA
}

// NewImage returns a renderer with an empty canvas.
func NewImage() *Image {
	return &Image{img: image.NewNRGBA(image.Rectangle{})}
}

// Viewport resizes the canvas when the size changes.
func (r *Image) Viewport(v core.ViewportSize) {
	if v.Empty() {
		r.img = image.NewNRGBA(image.Rectangle{})
		return
	}
	if r.img.Rect.Dx() == v.Width && r.img.Rect.Dy() == v.Height {
		return
	}
	r.img = image.NewNRGBA(image.Rect(0, 0, v.Width, v.Height))
}

// Clear fills the canvas.
func (r *Image) Clear(c core.Color) {
	fillRGBA(r.img.Pix, r.img.Stride, r.img.Rect, c.RGBA8())
}

// DrawCell fills the cell rectangle, clipped to the canvas.
func (r *Image) DrawCell(c board.Cell) {
	rect := cellBounds(c).Intersect(r.img.Rect)
	if rect.Empty() {
		return
	}
	fillRGBA(r.img.Pix, r.img.Stride, rect, c.Color.RGBA8())
}

// Flush is a no-op; drawing is immediate.
func (r *Image) Flush() {}

// Image returns the canvas. It is reused by later frames of the same size.
func (r *Image) Image() *image.NRGBA { return r.img }

// WritePNG encodes the canvas.
func (r *Image) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return errgo.Notef(err, "encode frame")
	}
	return nil
}
