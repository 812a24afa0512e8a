package hexui

import (
	"errors"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestNewButtonWithSize(t *testing.T) {
	ctx := newFakeContext(t, 800, 600)
	b, err := NewButtonWithSize(ctx, "End turn", 24, ScreenPos{X: 5, Y: 7})
	if err != nil {
		t.Fatalf("NewButtonWithSize: %v", err)
	}

	wantSize, _, err := TextToTexture(ctx.font, 24, "End turn")
	if err != nil {
		t.Fatal(err)
	}
	if b.Size() != wantSize {
		t.Errorf("Size = %v, want %v", b.Size(), wantSize)
	}
	if b.Pos() != (ScreenPos{X: 5, Y: 7}) {
		t.Errorf("Pos = %v, want (5,7)", b.Pos())
	}
	if b.Label() != "End turn" {
		t.Errorf("Label = %q", b.Label())
	}
	if len(ctx.factory.created) != 1 {
		t.Fatalf("created %d textures, want 1", len(ctx.factory.created))
	}
	if got := ctx.factory.created[0].size; got != wantSize {
		t.Errorf("texture size = %v, want %v", got, wantSize)
	}
	if v := b.Mesh().Vertices()[3]; v.Pos[0] != float32(wantSize.W) || v.Pos[1] != float32(wantSize.H) {
		t.Errorf("quad top-right = %v, want %v", v.Pos, wantSize)
	}
}

func TestNewButtonUsesWindowRelativeSize(t *testing.T) {
	ctx := newFakeContext(t, 800, 560)
	basic, err := NewButton(ctx, "Go", ScreenPos{})
	if err != nil {
		t.Fatal(err)
	}
	small, err := NewSmallButton(ctx, "Go", ScreenPos{})
	if err != nil {
		t.Fatal(err)
	}

	wantBasic, _, _ := TextToTexture(ctx.font, 560.0/14, "Go")
	wantSmall, _, _ := TextToTexture(ctx.font, 560.0/28, "Go")
	if basic.Size() != wantBasic {
		t.Errorf("basic size = %v, want %v", basic.Size(), wantBasic)
	}
	if small.Size() != wantSmall {
		t.Errorf("small size = %v, want %v", small.Size(), wantSmall)
	}
}

func TestNewButtonErrors(t *testing.T) {
	ctx := newFakeContext(t, 800, 600)
	if _, err := NewButtonWithSize(ctx, "", 20, ScreenPos{}); !errors.Is(err, ErrEmptyLabel) {
		t.Errorf("empty label: err = %v", err)
	}

	ctx.factory.err = errUpload
	if _, err := NewButtonWithSize(ctx, "ok", 20, ScreenPos{}); !errors.Is(err, errUpload) {
		t.Errorf("upload failure: err = %v, want errUpload", err)
	}
}

func TestButtonDraw(t *testing.T) {
	ctx := newFakeContext(t, 100, 100)
	b, _ := newSizedButton(ScreenPos{}, Size2{W: 10, H: 10})
	mvp := Translation(1, 2, 3)
	ctx.SetMVP(mvp)

	b.Draw(ctx)

	if len(ctx.draws) != 1 {
		t.Fatalf("draws = %d, want 1", len(ctx.draws))
	}
	if ctx.draws[0].mesh != b.Mesh() {
		t.Error("drew the wrong mesh")
	}
	if ctx.draws[0].mvp != mvp {
		t.Error("Draw should use the MVP already set on the context")
	}
}

func TestButtonSetPosAndBounds(t *testing.T) {
	b, _ := newSizedButton(ScreenPos{X: 1, Y: 1}, Size2{W: 30, H: 12})
	b.SetPos(ScreenPos{X: 40, Y: 50})
	if b.Pos() != (ScreenPos{X: 40, Y: 50}) {
		t.Errorf("Pos = %v", b.Pos())
	}
	if got := b.Bounds(); got != (Rect{X: 40, Y: 50, W: 30, H: 12}) {
		t.Errorf("Bounds = %+v", got)
	}
}

func TestButtonSlideTo(t *testing.T) {
	b, _ := newSizedButton(ScreenPos{}, Size2{W: 10, H: 10})
	b.SlideTo(ScreenPos{X: 100, Y: 50}, 1, ease.Linear)
	if !b.Sliding() {
		t.Fatal("Sliding = false after SlideTo")
	}

	b.update(0.5)
	if b.Pos() != (ScreenPos{X: 50, Y: 25}) {
		t.Errorf("halfway Pos = %v, want (50,25)", b.Pos())
	}

	b.update(0.5)
	if b.Pos() != (ScreenPos{X: 100, Y: 50}) {
		t.Errorf("final Pos = %v, want (100,50)", b.Pos())
	}
	if b.Sliding() {
		t.Error("Sliding = true after the tween finished")
	}
}

func TestButtonSlideDefaults(t *testing.T) {
	b, _ := newSizedButton(ScreenPos{}, Size2{W: 10, H: 10})

	b.SlideTo(ScreenPos{X: 7, Y: 9}, 0, nil)
	if b.Sliding() || b.Pos() != (ScreenPos{X: 7, Y: 9}) {
		t.Errorf("zero duration should move immediately, Pos = %v", b.Pos())
	}

	b.SlideTo(ScreenPos{X: 17, Y: 9}, 1, nil)
	b.update(0.5)
	if b.Pos() != (ScreenPos{X: 12, Y: 9}) {
		t.Errorf("nil ease should be linear, Pos = %v", b.Pos())
	}
}

func TestButtonSetPosCancelsSlide(t *testing.T) {
	b, _ := newSizedButton(ScreenPos{}, Size2{W: 10, H: 10})
	b.SlideTo(ScreenPos{X: 100, Y: 100}, 1, ease.Linear)
	b.SetPos(ScreenPos{X: 3, Y: 4})
	b.update(1)
	if b.Pos() != (ScreenPos{X: 3, Y: 4}) {
		t.Errorf("Pos = %v, slide should have been cancelled", b.Pos())
	}
}

func TestButtonDispose(t *testing.T) {
	b, tex := newSizedButton(ScreenPos{}, Size2{W: 10, H: 10})
	b.Dispose()
	if tex.disposed != 1 {
		t.Errorf("texture disposed %d times, want 1", tex.disposed)
	}
	if !b.Mesh().IsDisposed() {
		t.Error("mesh not disposed")
	}
}
