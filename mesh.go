package hexui

import "fmt"

// Vertex is one mesh vertex: model-space position and texture coordinate.
// UV (0,0) is the top-left of the texture.
type Vertex struct {
	Pos [3]float32
	UV  [2]float32
}

// Mesh is an indexed triangle list drawn with a single texture. The mesh owns
// its texture and frees it on Dispose.
type Mesh struct {
	vertices []Vertex
	indices  []uint16
	texture  Texture
	disposed bool
}

// NewMesh builds a mesh. Every index must address a vertex and the index
// count must be a multiple of three.
func NewMesh(vertices []Vertex, indices []uint16, tex Texture) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("hexui: mesh index count %d is not a multiple of 3", len(indices))
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf("hexui: mesh index %d at %d out of range (%d vertices)", idx, i, len(vertices))
		}
	}
	return &Mesh{vertices: vertices, indices: indices, texture: tex}, nil
}

// quadIndices are two triangles over bottom-left, top-left, bottom-right,
// top-right.
var quadIndices = []uint16{0, 1, 2, 1, 2, 3}

// NewQuadMesh builds a quad the size of tex with its local origin at the
// bottom-left corner, Y up.
func NewQuadMesh(tex Texture) *Mesh {
	size := tex.Size()
	w := float32(size.W)
	h := float32(size.H)
	vertices := []Vertex{
		{Pos: [3]float32{0, 0, 0}, UV: [2]float32{0, 1}},
		{Pos: [3]float32{0, h, 0}, UV: [2]float32{0, 0}},
		{Pos: [3]float32{w, 0, 0}, UV: [2]float32{1, 1}},
		{Pos: [3]float32{w, h, 0}, UV: [2]float32{1, 0}},
	}
	indices := make([]uint16, len(quadIndices))
	copy(indices, quadIndices)
	return &Mesh{vertices: vertices, indices: indices, texture: tex}
}

// Vertices returns the mesh vertices. The slice is shared; do not modify.
func (m *Mesh) Vertices() []Vertex { return m.vertices }

// Indices returns the triangle indices. The slice is shared; do not modify.
func (m *Mesh) Indices() []uint16 { return m.indices }

// Texture returns the texture, or nil once disposed.
func (m *Mesh) Texture() Texture {
	if m.disposed {
		return nil
	}
	return m.texture
}

// Dispose releases the texture. Calling it again is a no-op.
func (m *Mesh) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	if m.texture != nil {
		m.texture.Dispose()
	}
}

// IsDisposed reports whether Dispose has been called.
func (m *Mesh) IsDisposed() bool {
	return m.disposed
}
