package hexui

// DefaultTapTolerance is the largest per-axis pointer travel, in pixels,
// between press and release that still counts as a tap. Travel of exactly
// this many pixels is a swipe.
const DefaultTapTolerance = 20

// Pointer is a snapshot of the primary pointer (mouse or first touch) for the
// current frame, in input space (origin top-left, Y down).
type Pointer struct {
	Pos          ScreenPos // current position
	LastPressPos ScreenPos // position at the most recent press
	Pressed      bool      // button or finger is down
	JustPressed  bool      // went down this frame
	JustReleased bool      // went up this frame
}

// TapClassifier tells taps from swipes by comparing the release position to
// the press position.
type TapClassifier struct {
	// TolerancePx is the exclusive per-axis travel limit. Zero means
	// DefaultTapTolerance.
	TolerancePx int
}

func (c TapClassifier) tolerance() int {
	if c.TolerancePx <= 0 {
		return DefaultTapTolerance
	}
	return c.TolerancePx
}

// IsTap reports whether the pointer moved less than the tolerance on both
// axes since it was pressed.
func (c TapClassifier) IsTap(current, lastPress ScreenPos) bool {
	tol := c.tolerance()
	return absInt(current.X-lastPress.X) < tol && absInt(current.Y-lastPress.Y) < tol
}

// IsTap classifies with DefaultTapTolerance.
func IsTap(current, lastPress ScreenPos) bool {
	return TapClassifier{}.IsTap(current, lastPress)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// pointerTracker turns raw per-frame samples into Pointer snapshots.
type pointerTracker struct {
	state Pointer
}

// update records one frame's sample. A released pointer keeps the position
// it was released at so a tap can be classified on the release frame.
func (t *pointerTracker) update(pos ScreenPos, pressed bool) Pointer {
	p := &t.state
	p.JustPressed = false
	p.JustReleased = false

	switch {
	case pressed && !p.Pressed:
		p.Pressed = true
		p.JustPressed = true
		p.LastPressPos = pos
	case !pressed && p.Pressed:
		p.Pressed = false
		p.JustReleased = true
	}
	p.Pos = pos
	return *p
}
