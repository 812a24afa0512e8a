package hexui

import (
	"fmt"
	"slices"
)

// ButtonManager owns a set of buttons keyed by ButtonID.
//
// Buttons are drawn in the order they were added and hit-tested in reverse,
// so when buttons overlap the most recently added one is on top and wins.
type ButtonManager struct {
	buttons map[ButtonID]*Button
	order   []ButtonID // live ids, ascending
	nextID  ButtonID
}

// NewButtonManager creates an empty manager. The first id issued is 0.
func NewButtonManager() *ButtonManager {
	return &ButtonManager{buttons: make(map[ButtonID]*Button)}
}

// AddButton takes ownership of b and returns its id.
func (m *ButtonManager) AddButton(b *Button) ButtonID {
	id := m.nextID
	m.buttons[id] = b
	m.order = append(m.order, id)
	m.nextID++
	return id
}

// RemoveButton removes the button and frees its resources. It panics if id is
// not a live button: removing twice, or with an id from another manager, is a
// programming error.
func (m *ButtonManager) RemoveButton(id ButtonID) {
	b, ok := m.buttons[id]
	if !ok {
		panic(fmt.Sprintf("hexui: RemoveButton: no button with id %d", id))
	}
	delete(m.buttons, id)
	if i, found := slices.BinarySearch(m.order, id); found {
		m.order = slices.Delete(m.order, i, i+1)
	}
	b.Dispose()
}

// Button returns the button with the given id.
func (m *ButtonManager) Button(id ButtonID) (*Button, bool) {
	b, ok := m.buttons[id]
	return b, ok
}

// NextID returns the id the next AddButton will issue.
func (m *ButtonManager) NextID() ButtonID {
	return m.nextID
}

// Len returns the number of live buttons.
func (m *ButtonManager) Len() int {
	return len(m.buttons)
}

// IDs returns the live ids in ascending order.
func (m *ButtonManager) IDs() []ButtonID {
	return slices.Clone(m.order)
}

// HitTest returns the button under a pointer given in input space (origin
// top-left). winHeight flips the pointer into screen space before the
// inclusive bounds test.
func (m *ButtonManager) HitTest(pointer ScreenPos, winHeight int) (ButtonID, bool) {
	x := pointer.X
	y := winHeight - pointer.Y
	for i := len(m.order) - 1; i >= 0; i-- {
		id := m.order[i]
		if m.buttons[id].Bounds().Contains(x, y) {
			return id, true
		}
	}
	return 0, false
}

// ClickedButton hit-tests the context's current pointer position.
func (m *ButtonManager) ClickedButton(ctx Context) (ButtonID, bool) {
	return m.HitTest(ctx.Mouse().Pos, ctx.WinSize().H)
}

// TappedButton reports the button tapped this frame. It only fires on the
// frame the pointer is released, and only when the press-to-release travel
// classifies as a tap; swipes never hit buttons.
func (m *ButtonManager) TappedButton(ctx Context, c TapClassifier) (ButtonID, bool) {
	p := ctx.Mouse()
	if !p.JustReleased || !c.IsTap(p.Pos, p.LastPressPos) {
		return 0, false
	}
	return m.HitTest(p.Pos, ctx.WinSize().H)
}

// Update advances button slide animations by dt seconds.
func (m *ButtonManager) Update(dt float32) {
	for _, id := range m.order {
		m.buttons[id].update(dt)
	}
}

// Draw renders every button in screen space. The projection is built once
// per call; each button gets its own translation.
func (m *ButtonManager) Draw(ctx Context) {
	proj := ScreenProjectionMatrix(ctx.WinSize())
	for _, id := range m.order {
		b := m.buttons[id]
		pos := b.Pos()
		ctx.SetMVP(proj.Mul(Translation(float64(pos.X), float64(pos.Y), 0)))
		b.Draw(ctx)
	}
}

// Clear removes and frees every button. Issued ids stay retired.
func (m *ButtonManager) Clear() {
	for _, id := range m.order {
		m.buttons[id].Dispose()
		delete(m.buttons, id)
	}
	m.order = m.order[:0]
}
