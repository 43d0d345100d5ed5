package core

import (
	"image/color"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestClampInterval(t *testing.T) {
	c := qt.New(t)
	c.Assert(ClampInterval(0), qt.Equals, MinInterval)
	c.Assert(ClampInterval(-time.Second), qt.Equals, MinInterval)
	c.Assert(ClampInterval(150*time.Millisecond), qt.Equals, 150*time.Millisecond)
	c.Assert(ClampInterval(time.Minute), qt.Equals, MaxInterval)
}

func TestGridSize(t *testing.T) {
	c := qt.New(t)
	c.Assert(GridSize{}.Empty(), qt.IsTrue)
	c.Assert(GridSize{Rows: 3}.Empty(), qt.IsTrue)
	c.Assert(GridSize{Rows: 3, Columns: 1}.Empty(), qt.IsFalse)
	c.Assert(GridSize{Rows: -4, Columns: 900}.Clamp(MinGrid, MaxGrid), qt.Equals, GridSize{Rows: 1, Columns: 200})
}

func TestViewportFromClient(t *testing.T) {
	c := qt.New(t)
	c.Assert(ViewportFromClient(400, 300, 2), qt.Equals, ViewportSize{Width: 800, Height: 600})
	c.Assert(ViewportFromClient(401, 301, 1.5), qt.Equals, ViewportSize{Width: 601, Height: 451})
	c.Assert(ViewportFromClient(10, 20, 0), qt.Equals, ViewportSize{Width: 10, Height: 20})
	c.Assert(ViewportSize{Width: 0, Height: 5}.Empty(), qt.IsTrue)
}

func TestRGBA8(t *testing.T) {
	c := qt.New(t)
	c.Assert(White.RGBA8(), qt.Equals, color.NRGBA{255, 255, 255, 255})
	c.Assert(Black.RGBA8(), qt.Equals, color.NRGBA{0, 0, 0, 255})
	c.Assert(Color{-1, 2, 0.5, 1}.RGBA8(), qt.Equals, color.NRGBA{0, 255, 128, 255})
}

func TestRNG(t *testing.T) {
	c := qt.New(t)
	a, b := NewRNG(5), NewRNG(5)
	for i := 0; i < 100; i++ {
		c.Assert(a.Chance(0.5), qt.Equals, b.Chance(0.5))
	}
	r := NewRNG(1)
	for i := 0; i < 100; i++ {
		c.Assert(r.Chance(0), qt.IsFalse)
		c.Assert(r.Chance(1), qt.IsTrue)
	}
}
