package board

import (
	"testing"

	"gridlife/internal/core"
)

func newTestBoard(rows, cols int, alive ...[2]int) *Board {
	b := New(core.ViewportSize{Width: cols * 10, Height: rows * 10}, 0, core.GridSize{Rows: rows, Columns: cols})
	for _, rc := range alive {
		b.Toggle(rc[0], rc[1])
	}
	return b
}

func aliveSet(g Grid) map[[2]int]bool {
	set := map[[2]int]bool{}
	for r, row := range g {
		for c, cell := range row {
			if cell.Alive() {
				set[[2]int{r, c}] = true
			}
		}
	}
	return set
}

func expectAlive(t *testing.T, g Grid, want ...[2]int) {
	t.Helper()
	got := aliveSet(g)
	if len(got) != len(want) {
		t.Fatalf("alive cells = %v, expected %v", got, want)
	}
	for _, rc := range want {
		if !got[rc] {
			t.Fatalf("cell %v should be alive; alive set %v", rc, got)
		}
	}
}

func TestStepAllDeadStaysDead(t *testing.T) {
	b := newTestBoard(6, 7)
	next := Step(b.Cells)
	expectAlive(t, next)
}

func TestStepUnderpopulation(t *testing.T) {
	b := newTestBoard(5, 5, [2]int{2, 2})
	expectAlive(t, Step(b.Cells))
}

func TestStepBlockIsStill(t *testing.T) {
	block := [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	b := newTestBoard(4, 4, block...)
	next := Step(b.Cells)
	expectAlive(t, next, block...)
	expectAlive(t, Step(next), block...)
}

func TestStepBlinkerOscillates(t *testing.T) {
	b := newTestBoard(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	b.Step()
	expectAlive(t, b.Cells, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	b.Step()
	expectAlive(t, b.Cells, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
}

func TestStepDoesNotWrap(t *testing.T) {
	// A vertical blinker against the right edge would gain a neighbour from the
	// left edge on a torus.
	b := newTestBoard(3, 4, [2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3})
	expectAlive(t, Step(b.Cells), [2]int{1, 2}, [2]int{1, 3})
}

func TestStepLeavesSourceUntouched(t *testing.T) {
	b := newTestBoard(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	before := aliveSet(b.Cells)
	_ = Step(b.Cells)
	after := aliveSet(b.Cells)
	if len(before) != len(after) {
		t.Fatalf("Step mutated its input: before %v after %v", before, after)
	}
	for k := range before {
		if !after[k] {
			t.Fatalf("Step mutated its input at %v", k)
		}
	}
}

func TestStepRefreshesColor(t *testing.T) {
	b := newTestBoard(5, 5, [2]int{2, 2})
	next := Step(b.Cells)
	if next[2][2].Color != Background {
		t.Fatalf("dead cell colour = %v, expected background", next[2][2].Color)
	}
	b = newTestBoard(4, 4, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1})
	next = Step(b.Cells)
	if !next[2][2].Alive() || next[2][2].Color != Foreground {
		t.Fatalf("born cell = %+v, expected alive with foreground colour", next[2][2])
	}
}

func TestBoardStepMatchesStep(t *testing.T) {
	glider := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	a := newTestBoard(8, 8, glider...)
	b := newTestBoard(8, 8, glider...)
	g := a.Cells
	for i := 0; i < 12; i++ {
		g = Step(g)
		b.Step()
	}
	want := aliveSet(g)
	got := aliveSet(b.Cells)
	if len(want) != 5 || len(got) != len(want) {
		t.Fatalf("after 12 steps: double-buffered %v, allocating %v", got, want)
	}
	for k := range want {
		if !got[k] {
			t.Fatalf("double-buffered step diverged at %v", k)
		}
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	b := newTestBoard(4, 4, [2]int{0, 0}, [2]int{1, 3}, [2]int{3, 3}, [2]int{2, 1})

	grown := Resize(b, core.ViewportSize{Width: 100, Height: 60}, 2, core.GridSize{Rows: 6, Columns: 5})
	if grown.Size() != (core.GridSize{Rows: 6, Columns: 5}) {
		t.Fatalf("grown size = %+v", grown.Size())
	}
	expectAlive(t, grown.Cells, [2]int{0, 0}, [2]int{1, 3}, [2]int{3, 3}, [2]int{2, 1})
	for r := 0; r < 6; r++ {
		for c := 0; c < 5; c++ {
			if r < 4 && c < 4 {
				continue
			}
			if cell := grown.Cells[r][c]; cell.Alive() || cell.Color != Background {
				t.Fatalf("new cell (%d,%d) = %+v, expected dead background", r, c, cell)
			}
		}
	}

	shrunk := Resize(grown, core.ViewportSize{Width: 100, Height: 60}, 2, core.GridSize{Rows: 2, Columns: 2})
	expectAlive(t, shrunk.Cells, [2]int{0, 0})
}

func TestResizeRecomputesGeometry(t *testing.T) {
	b := newTestBoard(2, 2, [2]int{1, 1})
	r := Resize(b, core.ViewportSize{Width: 44, Height: 24}, 4, core.GridSize{Rows: 2, Columns: 2})
	if r.Width != 44 || r.Height != 24 || r.Border != 4 {
		t.Fatalf("board dims = %vx%v border %v", r.Width, r.Height, r.Border)
	}
	cell := r.Cells[1][1]
	if cell.Width != 16 || cell.Height != 6 {
		t.Fatalf("cell size = %vx%v, expected 16x6", cell.Width, cell.Height)
	}
	if cell.Point != (core.Point{X: 24, Y: 14}) {
		t.Fatalf("cell origin = %+v, expected (24,14)", cell.Point)
	}
	if !cell.Alive() {
		t.Fatal("resize should keep the live cell")
	}
	if b.Cells[1][1].Width != 10 {
		t.Fatal("resize should not modify the source board")
	}
}

func TestResizeToEmptyGrid(t *testing.T) {
	b := newTestBoard(3, 3, [2]int{1, 1})
	for _, size := range []core.GridSize{{Rows: 0, Columns: 3}, {Rows: 3, Columns: 0}, {Rows: -1, Columns: -1}} {
		e := Resize(b, core.ViewportSize{Width: 30, Height: 30}, 1, size)
		if len(e.Cells) != 0 {
			t.Fatalf("size %+v: expected no cells, got %d rows", size, len(e.Cells))
		}
		e.Step()
		if _, ok := DetectCollision(e, core.Point{X: 5, Y: 5}); ok {
			t.Fatal("empty board should never collide")
		}
		n := 0
		Draw(e, drawerFunc(func(Cell) { n++ }))
		if n != 0 {
			t.Fatalf("empty board drew %d cells", n)
		}
	}
}

func TestDetectCollision(t *testing.T) {
	b := newTestBoard(3, 3)

	hit, ok := DetectCollision(b, core.Point{X: 5, Y: 5})
	if !ok || hit.Row != 0 || hit.Column != 0 {
		t.Fatalf("(5,5) -> %+v %v, expected row 0 column 0", hit, ok)
	}

	hit, ok = DetectCollision(b, core.Point{X: 25, Y: 15})
	if !ok || hit.Row != 1 || hit.Column != 2 {
		t.Fatalf("(25,15) -> %+v %v, expected row 1 column 2", hit, ok)
	}

	if _, ok := DetectCollision(b, core.Point{X: 35, Y: 5}); ok {
		t.Fatal("(35,5) is outside the grid")
	}
}

func TestDetectCollisionFirstMatchWins(t *testing.T) {
	b := newTestBoard(3, 3)
	// (10,10) sits on the shared corner of four cells.
	hit, ok := DetectCollision(b, core.Point{X: 10, Y: 10})
	if !ok || hit.Row != 0 || hit.Column != 0 {
		t.Fatalf("shared corner -> %+v, expected the first cell in row-major order", hit)
	}

	// Zero-sized cells still resolve to exactly one coordinate.
	degenerate := Resize(b, core.ViewportSize{Width: 3, Height: 3}, 1, core.GridSize{Rows: 2, Columns: 2})
	if w := degenerate.Cells[0][0].Width; w != 0 {
		t.Fatalf("expected zero-width cells, got %v", w)
	}
	hit, ok = DetectCollision(degenerate, core.Point{X: 2, Y: 2})
	if !ok || hit.Row != 1 || hit.Column != 1 {
		t.Fatalf("(2,2) on zero-sized cells -> %+v %v, expected row 1 column 1", hit, ok)
	}
	hit, ok = DetectCollision(degenerate, core.Point{X: 1, Y: 1})
	if !ok || hit.Row != 0 || hit.Column != 0 {
		t.Fatalf("(1,1) on zero-sized cells -> %+v %v, expected row 0 column 0", hit, ok)
	}
	if _, ok := DetectCollision(degenerate, core.Point{X: 1.5, Y: 1.5}); ok {
		t.Fatal("gutter between zero-sized cells should not collide")
	}
}

func TestCellContainsEdges(t *testing.T) {
	c := Cell{Point: core.Point{X: 10, Y: 20}, Width: 5, Height: 6}
	if max := c.Rect().Max(); max != (core.Point{X: 15, Y: 26}) {
		t.Fatalf("Rect().Max() = %+v", max)
	}
	for _, p := range []core.Point{{X: 10, Y: 20}, {X: 15, Y: 26}, {X: 15, Y: 20}, {X: 12, Y: 23}} {
		if !c.Contains(p) {
			t.Errorf("%+v should be inside %+v", p, c.Rect())
		}
	}
	for _, p := range []core.Point{{X: 9.99, Y: 20}, {X: 15.01, Y: 26}, {X: 12, Y: 26.5}} {
		if c.Contains(p) {
			t.Errorf("%+v should be outside %+v", p, c.Rect())
		}
	}
}

func TestToggle(t *testing.T) {
	c := Cell{Point: core.Point{X: 3, Y: 4}, Width: 5, Height: 6, Color: Background, State: Dead}
	on := Toggle(c)
	if on.State != Alive || on.Color != Foreground {
		t.Fatalf("toggle dead -> %+v", on)
	}
	if on.Point != c.Point || on.Width != c.Width || on.Height != c.Height {
		t.Fatal("toggle must not change geometry")
	}
	off := Toggle(on)
	if off != c {
		t.Fatalf("double toggle = %+v, expected %+v", off, c)
	}
}

func TestClearSeedPopulation(t *testing.T) {
	b := newTestBoard(10, 10, [2]int{1, 1})
	b.Seed(core.NewRNG(7), 1)
	if got := b.Population(); got != 100 {
		t.Fatalf("population after full seed = %d", got)
	}
	b.Seed(core.NewRNG(7), 0.5)
	first := aliveSet(b.Cells)
	b.Seed(core.NewRNG(7), 0.5)
	if second := aliveSet(b.Cells); len(second) != len(first) {
		t.Fatal("seeding with the same seed should be deterministic")
	}
	b.Clear()
	if b.Population() != 0 {
		t.Fatal("clear should kill every cell")
	}
	for _, row := range b.Cells {
		for _, cell := range row {
			if cell.Color != Background {
				t.Fatal("clear should reset colours")
			}
		}
	}
}

type drawerFunc func(Cell)

func (f drawerFunc) DrawCell(c Cell) { f(c) }

func TestDrawRowMajor(t *testing.T) {
	b := newTestBoard(2, 3)
	var order []core.Point
	Draw(b, drawerFunc(func(c Cell) { order = append(order, c.Point) }))
	if len(order) != 6 {
		t.Fatalf("drew %d cells, expected 6", len(order))
	}
	if order[1] != (core.Point{X: 10, Y: 0}) || order[3] != (core.Point{X: 0, Y: 10}) {
		t.Fatalf("draw order = %v", order)
	}
}
