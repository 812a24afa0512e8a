package hexui

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ButtonID identifies a button within its ButtonManager. IDs are issued in
// increasing order and never reused.
type ButtonID int

// slideAnim holds the active position tweens for a button.
type slideAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Button is a text label rendered as a textured quad at a screen position.
type Button struct {
	label string
	pos   ScreenPos
	size  Size2
	mesh  *Mesh
	slide *slideAnim
}

// NewButton creates a button with text at BasicTextSize.
func NewButton(ctx Context, label string, pos ScreenPos) (*Button, error) {
	return NewButtonWithSize(ctx, label, BasicTextSize(ctx), pos)
}

// NewSmallButton creates a button with text at SmallTextSize.
func NewSmallButton(ctx Context, label string, pos ScreenPos) (*Button, error) {
	return NewButtonWithSize(ctx, label, SmallTextSize(ctx), pos)
}

// NewButtonWithSize rasterizes label at size pixels, uploads it and wraps it
// in a quad. The button's size is the size of the rasterized text.
func NewButtonWithSize(ctx Context, label string, size float64, pos ScreenPos) (*Button, error) {
	texSize, pix, err := TextToTexture(ctx.Font(), size, label)
	if err != nil {
		return nil, err
	}
	tex, err := LoadTextureRaw(ctx.Factory(), texSize, pix)
	if err != nil {
		return nil, err
	}
	return &Button{
		label: label,
		pos:   pos,
		size:  texSize,
		mesh:  NewQuadMesh(tex),
	}, nil
}

// Draw submits the button mesh with whatever MVP is currently set on ctx.
func (b *Button) Draw(ctx Context) {
	ctx.DrawMesh(b.mesh)
}

// Label returns the text the button was created with.
func (b *Button) Label() string { return b.label }

// Pos returns the bottom-left corner in screen pixels.
func (b *Button) Pos() ScreenPos { return b.pos }

// SetPos moves the button immediately, cancelling any slide in progress.
func (b *Button) SetPos(pos ScreenPos) {
	b.slide = nil
	b.pos = pos
}

// Size returns the rasterized label size in pixels.
func (b *Button) Size() Size2 { return b.size }

// Bounds returns the screen rectangle used for hit testing.
func (b *Button) Bounds() Rect {
	return Rect{X: b.pos.X, Y: b.pos.Y, W: b.size.W, H: b.size.H}
}

// Mesh returns the button's quad.
func (b *Button) Mesh() *Mesh { return b.mesh }

// SlideTo animates the button to pos over the given number of seconds. A nil
// easeFn means linear. A non-positive duration moves immediately.
func (b *Button) SlideTo(pos ScreenPos, seconds float32, easeFn ease.TweenFunc) {
	if seconds <= 0 {
		b.SetPos(pos)
		return
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	b.slide = &slideAnim{
		tweenX: gween.New(float32(b.pos.X), float32(pos.X), seconds, easeFn),
		tweenY: gween.New(float32(b.pos.Y), float32(pos.Y), seconds, easeFn),
	}
}

// Sliding reports whether a SlideTo animation is still running.
func (b *Button) Sliding() bool {
	return b.slide != nil
}

// update advances the slide animation by dt seconds.
func (b *Button) update(dt float32) {
	s := b.slide
	if s == nil {
		return
	}
	if !s.doneX {
		val, done := s.tweenX.Update(dt)
		b.pos.X = int(math.Round(float64(val)))
		s.doneX = done
	}
	if !s.doneY {
		val, done := s.tweenY.Update(dt)
		b.pos.Y = int(math.Round(float64(val)))
		s.doneY = done
	}
	if s.doneX && s.doneY {
		b.slide = nil
	}
}

// Dispose frees the mesh and its texture.
func (b *Button) Dispose() {
	b.slide = nil
	if b.mesh != nil {
		b.mesh.Dispose()
	}
}
