//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"gridlife/internal/board"
	"gridlife/internal/core"
)

// maxBatchVertices keeps indices within uint16.
const maxBatchVertices = 1<<16 - 4

// Ebiten draws cells onto an ebiten image with batched DrawTriangles calls.
type Ebiten struct {
	target   *ebiten.Image
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewEbiten returns a renderer. Call SetTarget before every frame.
func NewEbiten() *Ebiten {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Ebiten{white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// SetTarget selects the image frames are drawn onto.
func (r *Ebiten) SetTarget(img *ebiten.Image) { r.target = img }

// Viewport is implied by the target image.
func (r *Ebiten) Viewport(core.ViewportSize) {}

// Clear fills the target.
func (r *Ebiten) Clear(c core.Color) {
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	if r.target != nil {
		r.target.Fill(c.RGBA8())
	}
}

// DrawCell queues a coloured quad.
func (r *Ebiten) DrawCell(c board.Cell) {
	if len(r.vertices)+4 > maxBatchVertices {
		r.Flush()
	}
	x0, y0 := float32(c.Point.X), float32(c.Point.Y)
	x1, y1 := float32(c.Point.X+c.Width), float32(c.Point.Y+c.Height)
	base := uint16(len(r.vertices))
	for _, p := range [4][2]float32{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   p[0],
			DstY:   p[1],
			SrcX:   1,
			SrcY:   1,
			ColorR: c.Color[0],
			ColorG: c.Color[1],
			ColorB: c.Color[2],
			ColorA: c.Color[3],
		})
	}
	r.indices = append(r.indices, base, base+1, base+2, base+2, base+1, base+3)
}

// Flush draws the queued quads.
func (r *Ebiten) Flush() {
	if r.target != nil && len(r.indices) > 0 {
		r.target.DrawTriangles(r.vertices, r.indices, r.white, &ebiten.DrawTrianglesOptions{})
	}
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}
