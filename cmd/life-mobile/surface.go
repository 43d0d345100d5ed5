package main

import (
	"context"

	"gopkg.in/errgo.v1"

	"gridlife/internal/board"
	"gridlife/internal/core"
	"gridlife/internal/gfx"
	"gridlife/internal/render"
)

// surface forwards to the GL renderer of the current draw context, if any.
type surface struct {
	gl *render.GL
}

func (s *surface) Viewport(v core.ViewportSize) {
	if s.gl != nil {
		s.gl.Viewport(v)
	}
}

func (s *surface) Clear(c core.Color) {
	if s.gl != nil {
		s.gl.Clear(c)
	}
}

func (s *surface) DrawCell(c board.Cell) {
	if s.gl != nil {
		s.gl.DrawCell(c)
	}
}

func (s *surface) Flush() {
	if s.gl != nil {
		s.gl.Flush()
	}
}

// loadRenderer builds the board program and its renderer on a fresh draw
// context. GL objects do not outlive their context, so this runs on every
// transition to visible.
func loadRenderer(ctx context.Context, gl gfx.Context, loader gfx.SourceLoader) (*gfx.ProgramInfo, *render.GL, error) {
	info, err := gfx.LoadProgram(ctx, gl, loader, gfx.BoardProgram)
	if err != nil {
		return nil, nil, errgo.WithCausef(err, errgo.Cause(err), "cannot load board program")
	}
	r, err := render.NewGL(gl, info)
	if err != nil {
		gl.DeleteProgram(info.Program)
		return nil, nil, errgo.WithCausef(err, errgo.Cause(err), "cannot create renderer")
	}
	return info, r, nil
}
