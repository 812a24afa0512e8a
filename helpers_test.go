package hexui

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !scalar.EqualWithinAbs(got, want, epsilon) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- Test doubles ---

type fakeTexture struct {
	size     Size2
	pix      []byte
	disposed int
}

func (t *fakeTexture) Size() Size2 { return t.size }
func (t *fakeTexture) Dispose()    { t.disposed++ }

type fakeFactory struct {
	created []*fakeTexture
	err     error
}

func (f *fakeFactory) NewTexture(size Size2, pix []byte) (Texture, error) {
	if f.err != nil {
		return nil, f.err
	}
	tex := &fakeTexture{size: size, pix: pix}
	f.created = append(f.created, tex)
	return tex, nil
}

// fakeContext records every MVP and draw call.
type fakeContext struct {
	mouse   Pointer
	win     Size2
	font    *Font
	factory *fakeFactory
	mvp     Mat4
	draws   []drawCall
}

type drawCall struct {
	mesh *Mesh
	mvp  Mat4
}

func (c *fakeContext) Mouse() Pointer   { return c.mouse }
func (c *fakeContext) WinSize() Size2   { return c.win }
func (c *fakeContext) Font() *Font      { return c.font }
func (c *fakeContext) Factory() Factory { return c.factory }
func (c *fakeContext) SetMVP(m Mat4)    { c.mvp = m }
func (c *fakeContext) DrawMesh(m *Mesh) { c.draws = append(c.draws, drawCall{mesh: m, mvp: c.mvp}) }

func newFakeContext(t *testing.T, w, h int) *fakeContext {
	t.Helper()
	return &fakeContext{
		win:     Size2{W: w, H: h},
		font:    testFont(t),
		factory: &fakeFactory{},
		mvp:     Identity4,
	}
}

func testFont(t *testing.T) *Font {
	t.Helper()
	f, err := DefaultFont()
	if err != nil {
		t.Fatalf("DefaultFont: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

// newSizedButton builds a button with a fixed size and a fake texture,
// bypassing text rasterization.
func newSizedButton(pos ScreenPos, size Size2) (*Button, *fakeTexture) {
	tex := &fakeTexture{size: size}
	return &Button{label: "test", pos: pos, size: size, mesh: NewQuadMesh(tex)}, tex
}

var errUpload = errors.New("upload failed")
