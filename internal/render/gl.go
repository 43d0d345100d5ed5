package render

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
	"gopkg.in/errgo.v1"

	"gridlife/internal/board"
	"gridlife/internal/core"
	"gridlife/internal/gfx"
)

const (
	positionSize    = 2
	colorSize       = 4
	verticesPerCell = 6
)

// GL draws cells as coloured triangle pairs with the board program. Cells
// are batched until Flush.
type GL struct {
	gl         gfx.Context
	info       *gfx.ProgramInfo
	position   *gfx.Attribute
	color      *gfx.Attribute
	resolution *gfx.Uniform

	positions []float32
	colors    []float32
}

// NewGL checks that info exposes the board shader interface.
func NewGL(ctx gfx.Context, info *gfx.ProgramInfo) (*GL, error) {
	r := &GL{
		gl:         ctx,
		info:       info,
		position:   info.Attributes[gfx.PositionAttribute],
		color:      info.Attributes[gfx.ColorAttribute],
		resolution: info.Uniforms[gfx.ResolutionUniform],
	}
	switch {
	case r.position == nil:
		return nil, errgo.WithCausef(nil, gfx.ErrLocation, "program has no %q attribute", gfx.PositionAttribute)
	case r.color == nil:
		return nil, errgo.WithCausef(nil, gfx.ErrLocation, "program has no %q attribute", gfx.ColorAttribute)
	case r.resolution == nil:
		return nil, errgo.WithCausef(nil, gfx.ErrLocation, "program has no %q uniform", gfx.ResolutionUniform)
	}
	for _, name := range []string{gfx.PositionBuffer, gfx.ColorBuffer} {
		if _, ok := info.Buffers[name]; !ok {
			return nil, errgo.WithCausef(nil, gfx.ErrBuffer, "program has no %q buffer", name)
		}
	}
	return r, nil
}

// Viewport sets the GL viewport and the resolution uniform.
func (r *GL) Viewport(v core.ViewportSize) {
	r.gl.Viewport(0, 0, v.Width, v.Height)
	r.info.Use(r.gl)
	r.resolution.Floats(float32(v.Width), float32(v.Height))
}

// Clear fills the framebuffer and drops any unflushed cells.
func (r *GL) Clear(c core.Color) {
	r.gl.ClearColor(c[0], c[1], c[2], c[3])
	r.gl.Clear(gfx.ColorBufferBit)
	r.positions = r.positions[:0]
	r.colors = r.colors[:0]
}

// DrawCell queues the two triangles covering c.
func (r *GL) DrawCell(c board.Cell) {
	x0, y0 := float32(c.Point.X), float32(c.Point.Y)
	x1, y1 := float32(c.Point.X+c.Width), float32(c.Point.Y+c.Height)
	r.positions = append(r.positions,
		x0, y0, x1, y0, x0, y1,
		x0, y1, x1, y0, x1, y1,
	)
	for i := 0; i < verticesPerCell; i++ {
		r.colors = append(r.colors, c.Color[0], c.Color[1], c.Color[2], c.Color[3])
	}
}

// Flush uploads the queued vertices and draws them in one call.
func (r *GL) Flush() {
	n := len(r.positions) / positionSize
	if n == 0 {
		return
	}
	r.upload(gfx.PositionBuffer, r.positions)
	r.position.Set(gfx.AttribOptions{Buffer: r.info.Buffers[gfx.PositionBuffer], Size: positionSize})
	r.upload(gfx.ColorBuffer, r.colors)
	r.color.Set(gfx.AttribOptions{Buffer: r.info.Buffers[gfx.ColorBuffer], Size: colorSize})
	r.gl.DrawArrays(gfx.Triangles, 0, n)
	logger.Tracef("drew %d vertices", n)
}

func (r *GL) upload(buffer string, data []float32) {
	r.gl.BindBuffer(gfx.ArrayBuffer, r.info.Buffers[buffer])
	r.gl.BufferData(gfx.ArrayBuffer, f32.Bytes(binary.LittleEndian, data...), gfx.DynamicDraw)
}
