package hexui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// App is driven once per frame by Run.
type App interface {
	Update(ctx Context) error
	Draw(ctx Context)
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ClearColor Color
	// Font labels buttons. Nil loads DefaultFont.
	Font *Font
	// ShowFPS draws an FPS/TPS readout over the app.
	ShowFPS bool
}

// FrameDelta returns the fixed update step in seconds.
func FrameDelta() float32 {
	return float32(1.0 / float64(ebiten.TPS()))
}

// Run opens a resizable window and runs app until the window closes or
// Update returns an error.
func Run(app App, cfg RunConfig) error {
	font := cfg.Font
	if font == nil {
		var err error
		if font, err = DefaultFont(); err != nil {
			return err
		}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("hexui: invalid window size %dx%d", cfg.Width, cfg.Height)
	}

	ctx := NewEbitenContext(font)
	ctx.SetWinSize(Size2{W: cfg.Width, H: cfg.Height})

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{app: app, ctx: ctx, clear: cfg.ClearColor}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return ebiten.RunGame(g)
}

// game adapts App to ebiten.Game.
type game struct {
	app   App
	ctx   *EbitenContext
	clear Color
	fps   *fpsOverlay
}

func (g *game) Update() error {
	g.ctx.UpdateInput()
	if g.fps != nil {
		g.fps.update(float64(FrameDelta()), ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	return g.app.Update(g.ctx)
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.clear.A > 0 {
		screen.Fill(g.clear.toRGBA())
	}
	g.ctx.BeginFrame(screen)
	g.app.Draw(g.ctx)
	g.ctx.EndFrame()
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctx.SetWinSize(Size2{W: outsideWidth, H: outsideHeight})
	return outsideWidth, outsideHeight
}
