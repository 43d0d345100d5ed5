package board

import "gridlife/internal/core"

// Collision identifies the cell under a screen point.
type Collision struct {
	Cell   Cell
	Row    int
	Column int
}

// DetectCollision scans rows in order, and columns in order within a row, and
// returns the first cell whose rectangle contains p. The boolean is false when
// p falls outside every cell.
func DetectCollision(b *Board, p core.Point) (Collision, bool) {
	for r, row := range b.Cells {
		for c, cell := range row {
			if cell.Contains(p) {
				return Collision{Cell: cell, Row: r, Column: c}, true
			}
		}
	}
	return Collision{}, false
}
