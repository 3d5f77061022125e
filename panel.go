package dragview

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ClickContext carries click event data.
type ClickContext struct {
	Panel     *Panel
	PointerID int
	X, Y      float64
}

// Panel is a rectangular Container with press and click handling. Its
// translation is its top-left position in the same coordinate space the
// pointer events use.
type Panel struct {
	Name string

	// X and Y are the translation of the panel.
	X, Y          float64
	Width, Height float64
	Color         Color

	// OnClick fires when a press and release both land on the panel with no
	// cancel in between. It is driven by DefaultEventHandling, so a claimed
	// drag never clicks.
	OnClick func(ClickContext)

	pressed   bool
	pressID   int
	exclusive bool
	canceled  int
}

// NewPanel creates a white panel of the given size at the origin.
func NewPanel(name string, width, height float64) *Panel {
	return &Panel{
		Name:    name,
		Width:   width,
		Height:  height,
		Color:   Color{1, 1, 1, 1},
		pressID: NoPointer,
	}
}

// Bounds returns the panel's rectangle at its current translation.
func (p *Panel) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Translation implements Container.
func (p *Panel) Translation() (float64, float64) {
	return p.X, p.Y
}

// SetTranslation implements Container.
func (p *Panel) SetTranslation(x, y float64) {
	p.X = x
	p.Y = y
}

// RequestExclusiveGesture implements Container. The request lasts until the
// next gesture starts.
func (p *Panel) RequestExclusiveGesture() {
	p.exclusive = true
}

// ExclusiveRequested reports whether the current gesture asked ancestors to
// stop intercepting.
func (p *Panel) ExclusiveRequested() bool {
	return p.exclusive
}

// Pressed reports whether a press is in progress on the panel.
func (p *Panel) Pressed() bool {
	return p.pressed
}

// CancelCount returns how many cancel events reached the default handling.
func (p *Panel) CancelCount() int {
	return p.canceled
}

// DefaultEventHandling implements Container. A press that starts inside the
// panel is tracked until the matching up, which fires OnClick if the pointer
// is still inside. A cancel drops the press.
func (p *Panel) DefaultEventHandling(ev MotionEvent) bool {
	switch ev.Action {
	case ActionDown:
		p.exclusive = false
		p.pressed = false
		p.pressID = NoPointer
		if len(ev.Pointers) == 0 {
			return false
		}
		ptr := ev.Pointers[0]
		if p.Bounds().Contains(ptr.X, ptr.Y) {
			p.pressed = true
			p.pressID = ptr.ID
		}
		return p.pressed

	case ActionUp:
		if !p.pressed {
			return false
		}
		p.pressed = false
		idx := ev.FindPointerIndex(p.pressID)
		if idx < 0 {
			idx = ev.ActionIndex
		}
		if idx >= 0 && idx < len(ev.Pointers) {
			ptr := ev.Pointers[idx]
			if p.Bounds().Contains(ptr.X, ptr.Y) && p.OnClick != nil {
				p.OnClick(ClickContext{Panel: p, PointerID: ptr.ID, X: ptr.X, Y: ptr.Y})
			}
		}
		p.pressID = NoPointer
		return true

	case ActionCancel:
		p.canceled++
		wasPressed := p.pressed
		p.pressed = false
		p.pressID = NoPointer
		return wasPressed

	case ActionPointerUp:
		if ev.PointerID(ev.ActionIndex) == p.pressID {
			p.pressed = false
			p.pressID = NoPointer
		}
		return true

	default:
		return p.pressed
	}
}

// Draw renders the panel as a solid rectangle at its translation.
func (p *Panel) Draw(screen *ebiten.Image) {
	if p.Width <= 0 || p.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(p.Width, p.Height)
	op.GeoM.Translate(p.X, p.Y)
	op.ColorScale.ScaleWithColor(p.Color.toRGBA())
	screen.DrawImage(whitePixel(), &op)
}

var whitePixelImage *ebiten.Image

// whitePixel returns a shared 1x1 white image, created on first use.
func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}
