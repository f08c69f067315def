// Package raster converts between pipeline images and the standard library's
// image.Image, for PNG previews and for importing other formats.
package raster

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/uhussain11/TGA-Image-Processing/internal/ir"
	"github.com/uhussain11/TGA-Image-Processing/internal/tga"
)

const maxDimension = 1<<16 - 1

// ToNRGBA converts img (B,G,R[,A] bytes) to an NRGBA image with the first
// row at the top. 24-bit images are fully opaque.
func ToNRGBA(img *ir.Image) *image.NRGBA {
	w, h, ch := img.Width(), img.Height(), img.Channels()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			s := img.Offset(x, y)
			d := dst.PixOffset(x, y)
			dst.Pix[d+0] = img.Pixels[s+2]
			dst.Pix[d+1] = img.Pixels[s+1]
			dst.Pix[d+2] = img.Pixels[s+0]
			dst.Pix[d+3] = 255
			if ch == 4 {
				dst.Pix[d+3] = img.Pixels[s+3]
			}
		}
	}
	if !img.Header.TopLeftOrigin() {
		// TGA rows default to bottom-up.
		return imaging.FlipV(dst)
	}
	return dst
}

// FromImage builds an uncompressed, bottom-up TGA image from src. With
// withAlpha the result is 32-bit and keeps src's alpha; otherwise 24-bit.
func FromImage(src image.Image, withAlpha bool) (*ir.Image, error) {
	b := src.Bounds()
	if b.Dx() > maxDimension || b.Dy() > maxDimension {
		return nil, fmt.Errorf("%dx%d exceeds the TGA limit of %d pixels per side", b.Dx(), b.Dy(), maxDimension)
	}
	flipped := imaging.FlipV(src)

	h := ir.Header{
		DataTypeCode: tga.TypeTrueColor,
		Width:        uint16(b.Dx()),
		Height:       uint16(b.Dy()),
		PixelDepth:   24,
	}
	if withAlpha {
		h.PixelDepth = 32
		h.ImageDescriptor = 8 // alpha bits
	}

	img := ir.New(h)
	ch := img.Channels()
	for y := range img.Height() {
		for x := range img.Width() {
			s := flipped.PixOffset(x, y)
			d := img.Offset(x, y)
			img.Pixels[d+0] = flipped.Pix[s+2]
			img.Pixels[d+1] = flipped.Pix[s+1]
			img.Pixels[d+2] = flipped.Pix[s+0]
			if ch == 4 {
				img.Pixels[d+3] = flipped.Pix[s+3]
			}
		}
	}
	return img, nil
}

// Import opens any format imaging can decode and converts it to a TGA image.
func Import(path string, withAlpha bool) (*ir.Image, error) {
	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return FromImage(src, withAlpha)
}

// SavePreview writes img in the format implied by path's extension. When
// maxWidth is positive and smaller than the image, the preview is
// downscaled with Lanczos resampling, keeping the aspect ratio.
func SavePreview(img *ir.Image, path string, maxWidth int) error {
	var out image.Image = ToNRGBA(img)
	if maxWidth > 0 && img.Width() > maxWidth {
		out = imaging.Resize(out, maxWidth, 0, imaging.Lanczos)
	}
	if err := imaging.Save(out, path); err != nil {
		return fmt.Errorf("saving preview %s: %w", path, err)
	}
	return nil
}
