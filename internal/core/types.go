package core

// Point is a screen position in device pixels.
type Point struct {
	X float64
	Y float64
}

// ViewportSize describes the drawable area in device pixels.
type ViewportSize struct {
	Width  int
	Height int
}

// ViewportFromClient scales a client-area size by the device pixel ratio,
// truncating to whole pixels.
func ViewportFromClient(width, height int, ratio float64) ViewportSize {
	if ratio <= 0 {
		ratio = 1
	}
	return ViewportSize{
		Width:  int(float64(width) * ratio),
		Height: int(float64(height) * ratio),
	}
}

// Empty reports whether the viewport has no drawable area.
func (v ViewportSize) Empty() bool { return v.Width <= 0 || v.Height <= 0 }

// GridSize is the requested row and column count of a board.
type GridSize struct {
	Rows    int
	Columns int
}

// Empty reports whether the grid holds no cells.
func (g GridSize) Empty() bool { return g.Rows <= 0 || g.Columns <= 0 }

// Clamp limits both dimensions to [lo, hi].
func (g GridSize) Clamp(lo, hi int) GridSize {
	return GridSize{Rows: clampInt(g.Rows, lo, hi), Columns: clampInt(g.Columns, lo, hi)}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
