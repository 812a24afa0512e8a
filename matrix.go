package hexui

// Mat4 is a 4x4 matrix stored in column-major order: element (row, col) is
// at index col*4+row.
//
//	| m[0]  m[4]  m[8]   m[12] |
//	| m[1]  m[5]  m[9]   m[13] |
//	| m[2]  m[6]  m[10]  m[14] |
//	| m[3]  m[7]  m[11]  m[15] |
type Mat4 [16]float64

// Identity4 is the 4x4 identity matrix.
var Identity4 = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Ortho returns an orthographic projection mapping the given box to
// normalized device coordinates [-1, 1] on every axis.
func Ortho(left, right, bottom, top, near, far float64) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	return Mat4{
		2 / rl, 0, 0, 0,
		0, 2 / tb, 0, 0,
		0, 0, -2 / fn, 0,
		-(right + left) / rl, -(top + bottom) / tb, -(far + near) / fn, 1,
	}
}

// Translation returns a matrix that moves points by (x, y, z).
func Translation(x, y, z float64) Mat4 {
	m := Identity4
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// ScreenProjectionMatrix maps window pixels (origin bottom-left, Y up) to
// normalized device coordinates. It is cheap and meant to be rebuilt every
// frame since the window may be resized between frames.
func ScreenProjectionMatrix(win Size2) Mat4 {
	return Ortho(0, float64(win.W), 0, float64(win.H), -1, 1)
}

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * o[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// Apply transforms the point (x, y, z, 1) and returns the result after the
// perspective divide.
func (m Mat4) Apply(x, y, z float64) (rx, ry, rz float64) {
	rx = m[0]*x + m[4]*y + m[8]*z + m[12]
	ry = m[1]*x + m[5]*y + m[9]*z + m[13]
	rz = m[2]*x + m[6]*y + m[10]*z + m[14]
	w := m[3]*x + m[7]*y + m[11]*z + m[15]
	if w != 0 && w != 1 {
		rx /= w
		ry /= w
		rz /= w
	}
	return
}

// Scale returns a matrix that scales along each axis.
func Scale(x, y, z float64) Mat4 {
	m := Identity4
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}
