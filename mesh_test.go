package hexui

import (
	"slices"
	"testing"
)

func TestNewQuadMesh(t *testing.T) {
	tex := &fakeTexture{size: Size2{W: 50, H: 20}}
	m := NewQuadMesh(tex)

	want := []Vertex{
		{Pos: [3]float32{0, 0, 0}, UV: [2]float32{0, 1}},
		{Pos: [3]float32{0, 20, 0}, UV: [2]float32{0, 0}},
		{Pos: [3]float32{50, 0, 0}, UV: [2]float32{1, 1}},
		{Pos: [3]float32{50, 20, 0}, UV: [2]float32{1, 0}},
	}
	if !slices.Equal(m.Vertices(), want) {
		t.Errorf("vertices = %v, want %v", m.Vertices(), want)
	}
	if !slices.Equal(m.Indices(), []uint16{0, 1, 2, 1, 2, 3}) {
		t.Errorf("indices = %v", m.Indices())
	}
	if m.Texture() != tex {
		t.Error("Texture() should return the quad's texture")
	}
}

func TestNewQuadMeshIndicesNotShared(t *testing.T) {
	a := NewQuadMesh(&fakeTexture{size: Size2{W: 1, H: 1}})
	a.Indices()[0] = 9
	b := NewQuadMesh(&fakeTexture{size: Size2{W: 1, H: 1}})
	if b.Indices()[0] != 0 {
		t.Error("quads must not share an index slice")
	}
}

func TestNewMeshValidation(t *testing.T) {
	verts := make([]Vertex, 3)
	if _, err := NewMesh(verts, []uint16{0, 1, 2}, nil); err != nil {
		t.Errorf("valid mesh: %v", err)
	}
	if _, err := NewMesh(verts, []uint16{0, 1}, nil); err == nil {
		t.Error("expected error for index count not a multiple of 3")
	}
	if _, err := NewMesh(verts, []uint16{0, 1, 3}, nil); err == nil {
		t.Error("expected error for out of range index")
	}
}

func TestMeshDispose(t *testing.T) {
	tex := &fakeTexture{size: Size2{W: 1, H: 1}}
	m := NewQuadMesh(tex)
	m.Dispose()
	m.Dispose()

	if tex.disposed != 1 {
		t.Errorf("texture disposed %d times, want 1", tex.disposed)
	}
	if !m.IsDisposed() {
		t.Error("IsDisposed = false after Dispose")
	}
	if m.Texture() != nil {
		t.Error("Texture() should be nil after Dispose")
	}
}
