package ops

import (
	"testing"

	"github.com/uhussain11/TGA-Image-Processing/internal/ir"
)

func newImage(t *testing.T, w, h int, depth uint8) *ir.Image {
	t.Helper()
	return ir.New(ir.Header{DataTypeCode: 2, Width: uint16(w), Height: uint16(h), PixelDepth: depth})
}

// filled returns an image whose every pixel is px.
func filled(t *testing.T, w, h int, px ...byte) *ir.Image {
	t.Helper()
	img := newImage(t, w, h, uint8(len(px)*8))
	for i := range img.Pixels {
		img.Pixels[i] = px[i%len(px)]
	}
	return img
}

// pattern returns an image with varied bytes derived from seed.
func pattern(t *testing.T, w, h int, depth uint8, seed int) *ir.Image {
	t.Helper()
	img := newImage(t, w, h, depth)
	for i := range img.Pixels {
		img.Pixels[i] = byte((i*37 + seed*101) % 256)
	}
	return img
}

func pixelsEqual(t *testing.T, got, want *ir.Image) bool {
	t.Helper()
	if len(got.Pixels) != len(want.Pixels) {
		return false
	}
	for i := range got.Pixels {
		if got.Pixels[i] != want.Pixels[i] {
			return false
		}
	}
	return true
}

// mustOp returns a checker for an operator's results:
// mustOp(t)(Multiply(a, b)).
func mustOp(t *testing.T) func(*ir.Image, error) *ir.Image {
	t.Helper()
	return func(img *ir.Image, err error) *ir.Image {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return img
	}
}
