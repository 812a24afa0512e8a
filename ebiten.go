package hexui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Textures ---

// ebitenTexture is a Texture backed by an ebiten.Image.
type ebitenTexture struct {
	img  *ebiten.Image
	size Size2
}

func (t *ebitenTexture) Size() Size2 { return t.size }

func (t *ebitenTexture) Dispose() {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}

// ebitenFactory uploads textures as ebiten images.
type ebitenFactory struct{}

func (ebitenFactory) NewTexture(size Size2, pix []byte) (Texture, error) {
	img := ebiten.NewImage(size.W, size.H)
	img.WritePixels(pix)
	return &ebitenTexture{img: img, size: size}, nil
}

// --- Context ---

// EbitenContext implements Context on top of Ebitengine. Run creates one and
// feeds it every frame; create one directly only when driving ebiten.Game
// yourself, calling UpdateInput from Update and BeginFrame/EndFrame around
// drawing.
type EbitenContext struct {
	screen  *ebiten.Image
	win     Size2
	font    *Font
	factory ebitenFactory
	mvp     Mat4

	tracker  pointerTracker
	mouse    Pointer
	touchIDs []ebiten.TouchID
	touchID  ebiten.TouchID
	touching bool

	vertBuf  []ebiten.Vertex
	drawOpts ebiten.DrawTrianglesOptions
}

// NewEbitenContext creates a context that labels buttons with font.
func NewEbitenContext(font *Font) *EbitenContext {
	return &EbitenContext{font: font, mvp: Identity4}
}

func (c *EbitenContext) Mouse() Pointer   { return c.mouse }
func (c *EbitenContext) WinSize() Size2   { return c.win }
func (c *EbitenContext) Font() *Font      { return c.font }
func (c *EbitenContext) Factory() Factory { return c.factory }
func (c *EbitenContext) SetMVP(m Mat4)    { c.mvp = m }

// SetWinSize records the logical screen size. Run calls it from Layout.
func (c *EbitenContext) SetWinSize(size Size2) {
	c.win = size
}

// UpdateInput samples the first active touch, or the mouse when no finger
// is down.
func (c *EbitenContext) UpdateInput() {
	pos, pressed, ok := c.sampleTouch()
	if !ok {
		mx, my := ebiten.CursorPosition()
		pos = ScreenPos{X: mx, Y: my}
		pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}
	c.mouse = c.tracker.update(pos, pressed)
}

// sampleTouch follows a single touch from press to release. ok is false
// when no touch is being tracked this frame. A released touch reports the
// position it had on its last tick so the release is classified where the
// finger lifted.
func (c *EbitenContext) sampleTouch() (pos ScreenPos, pressed, ok bool) {
	if !c.touching {
		c.touchIDs = inpututil.AppendJustPressedTouchIDs(c.touchIDs[:0])
		if len(c.touchIDs) == 0 {
			return ScreenPos{}, false, false
		}
		c.touchID = c.touchIDs[0]
		c.touching = true
	}
	if inpututil.IsTouchJustReleased(c.touchID) {
		c.touching = false
		x, y := inpututil.TouchPositionInPreviousTick(c.touchID)
		return ScreenPos{X: x, Y: y}, false, true
	}
	x, y := ebiten.TouchPosition(c.touchID)
	return ScreenPos{X: x, Y: y}, true, true
}

// BeginFrame directs draws to screen and resets the MVP.
func (c *EbitenContext) BeginFrame(screen *ebiten.Image) {
	c.screen = screen
	c.mvp = Identity4
}

// EndFrame drops the screen reference.
func (c *EbitenContext) EndFrame() {
	c.screen = nil
}

// DrawMesh draws m with the current MVP. Meshes whose texture did not come
// from this context's factory, or was disposed, are skipped.
func (c *EbitenContext) DrawMesh(m *Mesh) {
	if c.screen == nil || m == nil {
		return
	}
	tex, ok := m.Texture().(*ebitenTexture)
	if !ok || tex.img == nil {
		return
	}
	c.vertBuf = projectVertices(m.Vertices(), c.vertBuf[:0], c.mvp, c.win, tex.size)
	c.screen.DrawTriangles(c.vertBuf, m.Indices(), tex.img, &c.drawOpts)
}

// projectVertices runs src through mvp into normalized device coordinates and
// maps those to ebiten's pixel space (origin top-left, Y down). UVs are
// scaled to texel coordinates of a texture of size tex.
func projectVertices(src []Vertex, dst []ebiten.Vertex, mvp Mat4, win, tex Size2) []ebiten.Vertex {
	w := float64(win.W)
	h := float64(win.H)
	tw := float32(tex.W)
	th := float32(tex.H)
	for i := range src {
		v := &src[i]
		nx, ny, _ := mvp.Apply(float64(v.Pos[0]), float64(v.Pos[1]), float64(v.Pos[2]))
		dst = append(dst, ebiten.Vertex{
			DstX:   float32((nx + 1) / 2 * w),
			DstY:   float32((1 - ny) / 2 * h),
			SrcX:   v.UV[0] * tw,
			SrcY:   v.UV[1] * th,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}
	return dst
}
