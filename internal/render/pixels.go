package render

import (
	"image"
	"image/color"
	"math"

	"gridlife/internal/board"
)

// cellBounds snaps a cell to whole pixels. Edges are rounded independently so
// adjacent cells never overlap.
func cellBounds(c board.Cell) image.Rectangle {
	x0 := int(math.Round(c.Point.X))
	y0 := int(math.Round(c.Point.Y))
	x1 := int(math.Round(c.Point.X + c.Width))
	y1 := int(math.Round(c.Point.Y + c.Height))
	return image.Rect(x0, y0, x1, y1)
}

// fillRGBA paints rect into an 8-bit RGBA pixel buffer with the given stride.
// The rectangle must already be clipped to the buffer.
func fillRGBA(buf []byte, stride int, rect image.Rectangle, col color.NRGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		base := y*stride + rect.Min.X*4
		for x := rect.Min.X; x < rect.Max.X; x++ {
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
			base += 4
		}
	}
}
