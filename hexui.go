package hexui

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default label color.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA.
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

// ScreenPos is a position in window pixels. Widgets are placed with the origin
// at the bottom-left and Y increasing upward; pointer input arrives with the
// origin at the top-left.
type ScreenPos struct {
	X, Y int
}

// Size2 is a width and height in pixels.
type Size2 struct {
	W, H int
}

// Empty reports whether either dimension is zero or negative.
func (s Size2) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Rect is an axis-aligned pixel rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}
