package hexui

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyLabel is returned when asked to rasterize an empty string.
var ErrEmptyLabel = errors.New("hexui: empty label")

// DefaultLinesPerScreen is how many lines of basic-size text fit the window
// height.
const DefaultLinesPerScreen = 14.0

// Font is a parsed TrueType/OpenType font. Faces are created lazily per
// pixel size and cached.
type Font struct {
	src   *opentype.Font
	faces map[float64]font.Face
}

// LoadFont parses raw TTF/OTF data.
func LoadFont(ttfData []byte) (*Font, error) {
	src, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("hexui: failed to parse TTF data: %w", err)
	}
	return &Font{src: src, faces: make(map[float64]font.Face)}, nil
}

// DefaultFont loads Go Regular, bundled with golang.org/x/image.
func DefaultFont() (*Font, error) {
	return LoadFont(goregular.TTF)
}

// face returns the cached face for the given pixel size.
func (f *Font) face(size float64) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("hexui: failed to create face at size %v: %w", size, err)
	}
	f.faces[size] = face
	return face, nil
}

// Close releases every cached face.
func (f *Font) Close() error {
	var errs []error
	for size, face := range f.faces {
		if err := face.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(f.faces, size)
	}
	return errors.Join(errs...)
}

// TextToTexture rasterizes a single line of white text at the given pixel
// size. It returns the bitmap size and premultiplied RGBA pixels, row-major
// from the top row, len = W*H*4.
func TextToTexture(f *Font, size float64, label string) (Size2, []byte, error) {
	if label == "" {
		return Size2{}, nil, ErrEmptyLabel
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return Size2{}, nil, fmt.Errorf("hexui: invalid text size %v", size)
	}
	face, err := f.face(size)
	if err != nil {
		return Size2{}, nil, err
	}

	m := face.Metrics()
	left, right := inkSpan(face, label)
	w := right - left
	h := (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return Size2{}, nil, fmt.Errorf("%w: label %q measures %dx%d", ErrTextureSize, label, w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(-left), Y: m.Ascent},
	}
	d.DrawString(label)
	return Size2{W: w, H: h}, img.Pix, nil
}

// inkSpan returns the pixel columns, relative to the pen origin, covered by
// either the glyph ink or the advance of label.
func inkSpan(face font.Face, label string) (left, right int) {
	bounds, advance := font.BoundString(face, label)
	left = min(bounds.Min.X.Floor(), 0)
	right = max(bounds.Max.X.Ceil(), advance.Ceil())
	return left, right
}

// TextSizes scales label text with the window so buttons stay readable
// across display densities.
type TextSizes struct {
	LinesPerScreen float64 // 0 = DefaultLinesPerScreen
	SmallScale     float64 // 0 = 0.5
}

// Basic returns the full label size for the window.
func (t TextSizes) Basic(win Size2) float64 {
	lines := t.LinesPerScreen
	if lines <= 0 {
		lines = DefaultLinesPerScreen
	}
	return float64(win.H) / lines
}

// Small returns the reduced label size for the window.
func (t TextSizes) Small(win Size2) float64 {
	scale := t.SmallScale
	if scale <= 0 {
		scale = 0.5
	}
	return t.Basic(win) * scale
}

// BasicTextSize is the default full label size for the context's window.
func BasicTextSize(ctx Context) float64 {
	return TextSizes{}.Basic(ctx.WinSize())
}

// SmallTextSize is half of BasicTextSize.
func SmallTextSize(ctx Context) float64 {
	return TextSizes{}.Small(ctx.WinSize())
}
