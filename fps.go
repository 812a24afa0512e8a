package hexui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the overlay text is re-rendered.
const fpsRefresh = 0.5

// fpsOverlay draws the current FPS and TPS in the top-left corner.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
	fps     float64
	tps     float64
	dirty   bool
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 fits "FPS: 60.0\nTPS: 60.0".
	return &fpsOverlay{img: ebiten.NewImage(100, 32), elapsed: fpsRefresh}
}

// update is called once per tick. It samples the counters every fpsRefresh
// seconds and reports whether it did.
func (o *fpsOverlay) update(dt, fps, tps float64) bool {
	o.elapsed += dt
	if o.elapsed < fpsRefresh {
		return false
	}
	o.elapsed = 0
	o.fps, o.tps = fps, tps
	o.dirty = true
	return true
}

func (o *fpsOverlay) text() string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f", o.fps, o.tps)
}

// draw re-renders the text if a new sample arrived and blits it.
func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.dirty {
		o.dirty = false
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, o.text())
	}
	screen.DrawImage(o.img, nil)
}
