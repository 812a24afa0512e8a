package hexui

import (
	"errors"
	"fmt"
)

// ErrTextureSize is returned when pixel data does not match the requested
// texture size.
var ErrTextureSize = errors.New("hexui: bad texture size")

// Texture is a GPU image owned by exactly one Mesh.
type Texture interface {
	Size() Size2
	// Dispose frees the GPU memory. The texture must not be used afterwards.
	Dispose()
}

// Factory creates GPU resources.
type Factory interface {
	// NewTexture uploads premultiplied RGBA pixels, row-major from the top.
	NewTexture(size Size2, pix []byte) (Texture, error)
}

// LoadTextureRaw validates pix against size and uploads it through f.
func LoadTextureRaw(f Factory, size Size2, pix []byte) (Texture, error) {
	if size.Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrTextureSize, size.W, size.H)
	}
	if want := size.W * size.H * 4; len(pix) != want {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrTextureSize, size.W, size.H, want, len(pix))
	}
	tex, err := f.NewTexture(size, pix)
	if err != nil {
		return nil, fmt.Errorf("hexui: upload texture: %w", err)
	}
	return tex, nil
}
