package core

import "image/color"

// Color is a straight-alpha RGBA colour with components in [0, 1].
type Color [4]float32

var (
	// White is the colour of dead cells.
	White = Color{1, 1, 1, 1}
	// Black is the colour of live cells.
	Black = Color{0, 0, 0, 1}
	// Gutter fills the border between cells.
	Gutter = Color{0.82, 0.82, 0.85, 1}
)

// RGBA8 converts the colour into 8-bit straight-alpha channels, clamping out-of-range values.
func (c Color) RGBA8() color.NRGBA {
	return color.NRGBA{R: channel(c[0]), G: channel(c[1]), B: channel(c[2]), A: channel(c[3])}
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
