package hexui

import (
	"fmt"
	"math"
)

const (
	hexVertsPerCell   = 7  // centre + six corners
	hexIndicesPerCell = 18 // six triangles fanned from the centre
)

// NewHexGridMesh builds one mesh covering cols x rows map cells in world
// units. fill scales each cell around its centre; 1 makes neighbours touch,
// smaller values leave a gap that reads as a grid line. Every vertex samples
// the centre of tex, so a 1x1 texture gives a solid fill.
func NewHexGridMesh(tex Texture, cols, rows int, fill float64) (*Mesh, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("hexui: invalid hex grid %dx%d", cols, rows)
	}
	if fill <= 0 || fill > 1 {
		return nil, fmt.Errorf("hexui: hex fill %v outside (0, 1]", fill)
	}
	cells := cols * rows
	if cells*hexVertsPerCell > math.MaxUint16+1 {
		return nil, fmt.Errorf("hexui: hex grid %dx%d exceeds %d vertices", cols, rows, math.MaxUint16+1)
	}

	vertices := make([]Vertex, 0, cells*hexVertsPerCell)
	indices := make([]uint16, 0, cells*hexIndicesPerCell)
	uv := [2]float32{0.5, 0.5}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := MapPosToWorldPos(MapPos{X: x, Y: y})
			base := uint16(len(vertices))
			vertices = append(vertices, Vertex{Pos: [3]float32{float32(c.X), float32(c.Y), 0}, UV: uv})
			for _, p := range HexCorners(c) {
				p.X = c.X + (p.X-c.X)*fill
				p.Y = c.Y + (p.Y-c.Y)*fill
				vertices = append(vertices, Vertex{Pos: [3]float32{float32(p.X), float32(p.Y), 0}, UV: uv})
			}
			for i := uint16(0); i < 6; i++ {
				indices = append(indices, base, base+1+i, base+1+(i+1)%6)
			}
		}
	}
	return NewMesh(vertices, indices, tex)
}
