// Package hexui is an on-screen button layer and hex-grid geometry kit for
// [Ebitengine].
//
// It covers button lifecycle, hit-testing, the screen-space orthographic
// projection used to place widgets, tap/swipe classification, and the
// offset-row transform from hex cells to world space.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop and hands every frame a [Context]:
//
//	type demo struct{ buttons *hexui.ButtonManager }
//
//	func (d *demo) Update(ctx hexui.Context) error {
//		if id, ok := d.buttons.TappedButton(ctx, hexui.TapClassifier{}); ok {
//			log.Printf("tapped %d", id)
//		}
//		return nil
//	}
//
//	func (d *demo) Draw(ctx hexui.Context) { d.buttons.Draw(ctx) }
//
//	hexui.Run(&demo{buttons: hexui.NewButtonManager()}, hexui.RunConfig{
//		Title: "Buttons", Width: 800, Height: 600,
//	})
//
// # Coordinates
//
// Button positions are pixels with the origin at the bottom-left of the
// window. Pointer input arrives with the origin at the top-left; the
// [ButtonManager] flips it using the window height before testing bounds.
//
// Hex cells are addressed by [MapPos] and placed in world space by
// [MapPosToWorldPos]. Even rows are shifted right by the inner radius.
//
// # Buttons
//
// A [Button] owns a textured quad holding its rasterized label. Add it to a
// [ButtonManager] to get an id; removing the id disposes the button. Ids are
// never reused. When buttons overlap, the most recently added one is drawn on
// top and wins hit tests.
//
// Buttons can glide to a new position with [Button.SlideTo], driven by
// [gween] tweens and advanced by [ButtonManager.Update].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package hexui
