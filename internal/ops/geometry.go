package ops

import "github.com/uhussain11/TGA-Image-Processing/internal/ir"

// Rotate180 moves pixel (x, y) to (w-1-x, h-1-y), all channels included.
func Rotate180(img *ir.Image) (*ir.Image, error) {
	if err := checkInputs(img); err != nil {
		return nil, err
	}

	out := ir.Like(img)
	w, h, ch := img.Width(), img.Height(), img.Channels()
	for y := range h {
		for x := range w {
			src := img.Offset(x, y)
			dst := img.Offset(w-1-x, h-1-y)
			copy(out.Pixels[dst:dst+ch], img.Pixels[src:src+ch])
		}
	}
	return out, nil
}
