//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var keyRunes = []struct {
	key ebiten.Key
	r   rune
}{
	{ebiten.KeySpace, ' '},
	{ebiten.KeyN, 'n'},
	{ebiten.KeyC, 'c'},
	{ebiten.KeyS, 's'},
	{ebiten.KeyEqual, '='},
	{ebiten.KeyKPAdd, '+'},
	{ebiten.KeyMinus, '-'},
	{ebiten.KeyKPSubtract, '-'},
	{ebiten.KeyQ, 'q'},
	{ebiten.KeyEscape, KeyEscape},
}

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	infoColor       = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// Panel renders Controls to the right of the board and feeds it ebiten input.
type Panel struct {
	controls   *Controls
	panel      *ebiten.Image
	lastHeight int
	pixel      *ebiten.Image
}

// NewPanel constructs a panel for c.
func NewPanel(c *Controls) *Panel {
	p := &Panel{controls: c}
	if c.width > 0 {
		p.pixel = ebiten.NewImage(1, 1)
		p.pixel.Fill(color.White)
	}
	return p
}

// Width returns the panel width in pixels.
func (p *Panel) Width() int { return p.controls.width }

// Update dispatches key presses and, for a left click inside the panel, the
// click. It reports whether a click was consumed by the panel.
func (p *Panel) Update(offsetX int) bool {
	for _, k := range keyRunes {
		if inpututil.IsKeyJustPressed(k.key) {
			p.controls.Apply(KeyAction(k.r))
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return false
	}
	p.controls.Click(mx-offsetX, my)
	return true
}

// Draw paints the panel anchored at offsetX.
func (p *Panel) Draw(screen *ebiten.Image, offsetX int) {
	width := p.controls.width
	height := screen.Bounds().Dy()
	if width <= 0 || height <= 0 {
		return
	}
	if p.panel == nil || p.lastHeight != height {
		p.panel = ebiten.NewImage(width, height)
		p.lastHeight = height
	}
	p.panel.Fill(panelBackground)
	p.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(p.panel, op)
}

func (p *Panel) drawControls() {
	c := p.controls
	face := basicfont.Face7x13
	text.Draw(p.panel, "Game of Life", face, panelPadding, panelPadding+headerBaseline, titleColor)

	for _, b := range c.buttons {
		p.drawButton(b.Rect, c.Label(b.Key), true)
	}
	for i := range c.steppers {
		s := &c.steppers[i]
		labelY := s.top + labelBaseline
		text.Draw(p.panel, s.Label, face, panelPadding, labelY, labelColor)
		value := s.Text()
		bounds := text.BoundString(face, value)
		valueX := s.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(p.panel, value, face, valueX, labelY, labelColor)
		p.drawButton(s.minusRect, "-", s.CanAdjust(-1))
		p.drawButton(s.plusRect, "+", s.CanAdjust(1))
	}

	st := c.Status()
	y := c.statusTop()
	for _, line := range []string{
		fmt.Sprintf("generation %d", st.Generation),
		fmt.Sprintf("population %d", st.Population),
		fmt.Sprintf("%.0f fps", st.FPS),
	} {
		text.Draw(p.panel, line, face, panelPadding, y, infoColor)
		y += infoSpacing
	}
}

func (p *Panel) drawButton(rect image.Rectangle, label string, enabled bool) {
	if p.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	p.panel.DrawImage(p.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(p.panel, label, face, x, y, fg)
}
