package main

import (
	"context"
	"testing"
	"testing/fstest"

	qt "github.com/frankban/quicktest"
	"gopkg.in/errgo.v1"

	"gridlife/internal/board"
	"gridlife/internal/core"
	"gridlife/internal/gfx"
)

func TestLoadRendererMissingSources(t *testing.T) {
	c := qt.New(t)
	// The loader fails before any GL call is made.
	var gl gfx.Context
	info, r, err := loadRenderer(context.Background(), gl, gfx.FSLoader{FS: fstest.MapFS{}})
	c.Assert(err, qt.ErrorMatches, `cannot load board program: .*`)
	c.Assert(errgo.Cause(err), qt.Equals, gfx.ErrSource)
	c.Assert(info, qt.IsNil)
	c.Assert(r, qt.IsNil)
}

func TestSurfaceWithoutRenderer(t *testing.T) {
	s := &surface{}
	s.Viewport(core.ViewportSize{Width: 10, Height: 10})
	s.Clear(core.Color{})
	s.DrawCell(board.Cell{})
	s.Flush()
}
