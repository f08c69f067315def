package ops

import (
	"github.com/uhussain11/TGA-Image-Processing/internal/color"
	"github.com/uhussain11/TGA-Image-Processing/internal/ir"
)

// AddToChannel adds n to one channel of every pixel, clamping to [0, 255].
// Other channels are copied unchanged.
func AddToChannel(img *ir.Image, c color.Channel, n int) (*ir.Image, error) {
	if err := checkInputs(img); err != nil {
		return nil, err
	}
	if err := checkChannel(c); err != nil {
		return nil, err
	}
	// Any |n| >= 255 already saturates; bounding it keeps p+n from overflowing.
	n = max(min(n, 255), -255)

	out := img.Clone()
	for i := c.Offset(); i < len(out.Pixels); i += img.Channels() {
		out.Pixels[i] = clampInt(int(img.Pixels[i]) + n)
	}
	return out, nil
}

// ScaleChannel multiplies one channel of every pixel by n, clamping to
// [0, 255] and truncating. Other channels are copied unchanged.
func ScaleChannel(img *ir.Image, c color.Channel, n float64) (*ir.Image, error) {
	if err := checkInputs(img); err != nil {
		return nil, err
	}
	if err := checkChannel(c); err != nil {
		return nil, err
	}
	factor := float32(n)

	out := img.Clone()
	for i := c.Offset(); i < len(out.Pixels); i += img.Channels() {
		out.Pixels[i] = clampFloat(float32(img.Pixels[i]) * factor)
	}
	return out, nil
}

// ExtractChannel keeps one channel and zeroes every other byte of each
// pixel, including alpha.
func ExtractChannel(img *ir.Image, c color.Channel) (*ir.Image, error) {
	if err := checkInputs(img); err != nil {
		return nil, err
	}
	if err := checkChannel(c); err != nil {
		return nil, err
	}

	out := ir.Like(img)
	for i := c.Offset(); i < len(out.Pixels); i += img.Channels() {
		out.Pixels[i] = img.Pixels[i]
	}
	return out, nil
}

// CombineChannels builds an image from byte 0 of red, byte 1 of green and
// byte 2 of blue. A fourth byte, if any, is left zero. The header comes from
// red.
func CombineChannels(red, green, blue *ir.Image) (*ir.Image, error) {
	if err := checkInputs(red, green, blue); err != nil {
		return nil, err
	}

	out := ir.Like(red)
	r, g, b := color.Red.Offset(), color.Green.Offset(), color.Blue.Offset()
	for i := 0; i < len(out.Pixels); i += red.Channels() {
		out.Pixels[i+r] = red.Pixels[i+r]
		out.Pixels[i+g] = green.Pixels[i+g]
		out.Pixels[i+b] = blue.Pixels[i+b]
	}
	return out, nil
}
