package hexui

// Context is the per-frame window and rendering state the widget layer draws
// through. EbitenContext is the stock implementation; tests supply their own.
type Context interface {
	// Mouse returns the primary pointer state for this frame.
	Mouse() Pointer
	// WinSize returns the window size in pixels.
	WinSize() Size2
	// Font returns the font used for labels.
	Font() *Font
	// Factory returns the resource factory for texture uploads.
	Factory() Factory
	// SetMVP sets the model-view-projection matrix for subsequent draws.
	SetMVP(m Mat4)
	// DrawMesh draws m with the current MVP.
	DrawMesh(m *Mesh)
}
