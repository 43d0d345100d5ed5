package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"gridlife/internal/core"
	"gridlife/internal/render"
)

func TestRunEmptyBoardSettlesImmediately(t *testing.T) {
	c := qt.New(t)
	res, b := run(scenario{seed: 1, density: 0, size: core.GridSize{Rows: 8, Columns: 8}}, 50)
	c.Assert(res.initial, qt.Equals, 0)
	c.Assert(res.final, qt.Equals, 0)
	c.Assert(res.settled, qt.Equals, 1)
	c.Assert(b.Size(), qt.Equals, core.GridSize{Rows: 8, Columns: 8})
}

func TestRunFullBoardDiesOut(t *testing.T) {
	c := qt.New(t)
	// Only the four corners survive the first generation of a full board;
	// they die in the second and the empty board repeats in the third.
	res, _ := run(scenario{seed: 1, density: 1, size: core.GridSize{Rows: 6, Columns: 6}}, 50)
	c.Assert(res.initial, qt.Equals, 36)
	c.Assert(res.peak, qt.Equals, 36)
	c.Assert(res.final, qt.Equals, 0)
	c.Assert(res.settled, qt.Equals, 3)
	c.Assert(res.lifetime(), qt.Equals, 3)
}

func TestRunIsDeterministic(t *testing.T) {
	c := qt.New(t)
	sc := scenario{seed: 9, density: 0.35, size: core.GridSize{Rows: 24, Columns: 24}}
	a, ba := run(sc, 40)
	b, bb := run(sc, 40)
	c.Assert(a, qt.Equals, b)
	c.Assert(snapshot(ba), qt.Equals, snapshot(bb))
	c.Assert(a.peak >= a.initial, qt.IsTrue)
}

func TestRank(t *testing.T) {
	c := qt.New(t)
	all := []result{
		{scenario: scenario{seed: 1}, settled: 10, final: 3, steps: 100},
		{scenario: scenario{seed: 2}, settled: 0, final: 1, steps: 100},
		{scenario: scenario{seed: 3}, settled: 10, final: 7, steps: 100},
		{scenario: scenario{seed: 4}, settled: 50, final: 0, steps: 100},
	}
	rank(all)
	var order []int64
	for _, r := range all {
		order = append(order, r.scenario.seed)
	}
	c.Assert(order, qt.DeepEquals, []int64{2, 4, 3, 1})
}

func TestWriteFinal(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(c.TempDir(), "final.png")
	sc := scenario{seed: 3, density: 0.3, size: core.GridSize{Rows: 5, Columns: 7}}
	c.Assert(writeFinal(path, sc, 10), qt.IsNil)

	data, err := os.ReadFile(path)
	c.Assert(err, qt.IsNil)
	img, err := png.Decode(bytes.NewReader(data))
	c.Assert(err, qt.IsNil)
	c.Assert(img.Bounds().Dx(), qt.Equals, 7*cellPixels+1)
	c.Assert(img.Bounds().Dy(), qt.Equals, 5*cellPixels+1)

	_, b := run(sc, 10)
	want := render.NewImage()
	render.Frame(want, b)
	c.Assert(img.Bounds(), qt.Equals, want.Image().Bounds())

	err = writeFinal(filepath.Join(c.TempDir(), "missing", "final.png"), sc, 10)
	c.Assert(err, qt.ErrorMatches, `cannot create image: .*`)
}
