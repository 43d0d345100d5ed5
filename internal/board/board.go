// Package board holds the Game of Life grid, its generation rule and the
// geometry of every cell inside the viewport.
package board

import (
	"github.com/juju/loggo"

	"gridlife/internal/core"
	"gridlife/internal/layout"
)

var logger = loggo.GetLogger("gridlife.board")

// Grid is a row-major, rectangular array of cells.
type Grid [][]Cell

// Size returns the row and column count of the grid.
func (g Grid) Size() core.GridSize {
	if len(g) == 0 {
		return core.GridSize{}
	}
	return core.GridSize{Rows: len(g), Columns: len(g[0])}
}

// At returns the cell at row, column and whether that position exists.
func (g Grid) At(row, column int) (Cell, bool) {
	if row < 0 || row >= len(g) || column < 0 || column >= len(g[row]) {
		return Cell{}, false
	}
	return g[row][column], true
}

func (g Grid) alive(row, column int) int {
	if c, ok := g.At(row, column); ok && c.State == Alive {
		return 1
	}
	return 0
}

// Step computes the next generation into a newly allocated grid.
func Step(g Grid) Grid {
	next := make(Grid, len(g))
	for r := range g {
		next[r] = make([]Cell, len(g[r]))
	}
	stepInto(next, g)
	return next
}

// stepInto writes the generation following src into dst. The two grids must have
// the same shape and must not share row storage.
func stepInto(dst, src Grid) {
	for r, row := range src {
		for c, cell := range row {
			n := src.alive(r-1, c-1) + src.alive(r-1, c) + src.alive(r-1, c+1) +
				src.alive(r, c-1) + src.alive(r, c+1) +
				src.alive(r+1, c-1) + src.alive(r+1, c) + src.alive(r+1, c+1)
			cell.State = nextState(cell.State, n)
			cell.Color = ColorFor(cell.State)
			dst[r][c] = cell
		}
	}
}

// Board is a grid laid out inside a viewport.
type Board struct {
	Height float64
	Width  float64
	Border float64
	Cells  Grid

	spare Grid
}

// New creates a board of dead cells.
func New(viewport core.ViewportSize, border float64, size core.GridSize) *Board {
	return Resize(&Board{}, viewport, border, size)
}

// Resize returns a new board laid out for the given viewport and grid size.
// State and colour are carried over for every coordinate present in both the
// old and the new grid; new coordinates start dead. A non-positive row or
// column count yields an empty grid.
func Resize(b *Board, viewport core.ViewportSize, border float64, size core.GridSize) *Board {
	nb := &Board{
		Height: float64(viewport.Height),
		Width:  float64(viewport.Width),
		Border: border,
	}
	if size.Empty() {
		logger.Debugf("resize to empty grid %dx%d", size.Rows, size.Columns)
		return nb
	}
	var old Grid
	if b != nil {
		old = b.Cells
	}
	h, w := layout.CellDimensions(viewport, border, size.Rows, size.Columns)
	nb.Cells = make(Grid, size.Rows)
	for r := range nb.Cells {
		row := make([]Cell, size.Columns)
		for c := range row {
			cell := Cell{
				Point:  layout.CellPosition(border, r, c, h, w),
				Height: h,
				Width:  w,
				Color:  Background,
				State:  Dead,
			}
			if prev, ok := old.At(r, c); ok {
				cell.State = prev.State
				cell.Color = prev.Color
			}
			row[c] = cell
		}
		nb.Cells[r] = row
	}
	logger.Debugf("resized to %dx%d in %vx%v viewport (cell %.2fx%.2f)", size.Rows, size.Columns, viewport.Width, viewport.Height, w, h)
	return nb
}

// Viewport returns the viewport the board was laid out for.
func (b *Board) Viewport() core.ViewportSize {
	return core.ViewportSize{Width: int(b.Width), Height: int(b.Height)}
}

// Size returns the grid shape.
func (b *Board) Size() core.GridSize { return b.Cells.Size() }

// Step advances the board by one generation, reusing a second buffer.
func (b *Board) Step() {
	if b.spare == nil || b.spare.Size() != b.Cells.Size() {
		b.spare = make(Grid, len(b.Cells))
		for r := range b.Cells {
			b.spare[r] = make([]Cell, len(b.Cells[r]))
		}
	}
	stepInto(b.spare, b.Cells)
	b.Cells, b.spare = b.spare, b.Cells
}

// Toggle flips the cell at row, column. It reports false if the position does
// not exist.
func (b *Board) Toggle(row, column int) bool {
	cell, ok := b.Cells.At(row, column)
	if !ok {
		return false
	}
	b.Cells[row][column] = Toggle(cell)
	return true
}

// Clear kills every cell.
func (b *Board) Clear() {
	for _, row := range b.Cells {
		for c := range row {
			row[c].State = Dead
			row[c].Color = Background
		}
	}
}

// Seed sets every cell live with probability density.
func (b *Board) Seed(rng *core.RNG, density float64) {
	for _, row := range b.Cells {
		for c := range row {
			row[c].State = Dead
			if rng.Chance(density) {
				row[c].State = Alive
			}
			row[c].Color = ColorFor(row[c].State)
		}
	}
}

// Population counts live cells.
func (b *Board) Population() int {
	n := 0
	for _, row := range b.Cells {
		for _, cell := range row {
			if cell.State == Alive {
				n++
			}
		}
	}
	return n
}

// CellDrawer receives every cell of a board once per frame.
type CellDrawer interface {
	DrawCell(c Cell)
}

// Draw hands every cell to d in row-major order.
func Draw(b *Board, d CellDrawer) {
	for _, row := range b.Cells {
		for _, cell := range row {
			d.DrawCell(cell)
		}
	}
}
