// Package layout maps a grid shape onto pixel rectangles inside a viewport.
//
// A uniform gutter of border pixels surrounds the grid and separates adjacent
// cells. All functions are pure and require rows and columns of at least one.
package layout

import "gridlife/internal/core"

// CellDimensions returns the height and width of a single cell when rows by
// columns cells share the viewport. The border is removed once for the outer
// edge and once per cell.
func CellDimensions(viewport core.ViewportSize, border float64, rows, columns int) (height, width float64) {
	height = (float64(viewport.Height)-border)/float64(rows) - border
	width = (float64(viewport.Width)-border)/float64(columns) - border
	return height, width
}

// CellPosition returns the top-left pixel origin of the cell at row, column.
func CellPosition(border float64, row, column int, height, width float64) core.Point {
	return core.Point{
		X: border*float64(column+1) + float64(column)*width,
		Y: border*float64(row+1) + float64(row)*height,
	}
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	Min    core.Point
	Width  float64
	Height float64
}

// Max returns the bottom-right corner.
func (r Rect) Max() core.Point {
	return core.Point{X: r.Min.X + r.Width, Y: r.Min.Y + r.Height}
}

// Contains reports whether p lies inside r. Both edges are inclusive.
func (r Rect) Contains(p core.Point) bool {
	max := r.Max()
	return r.Min.X <= p.X && max.X >= p.X && r.Min.Y <= p.Y && max.Y >= p.Y
}
