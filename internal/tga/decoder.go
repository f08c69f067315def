package tga

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/uhussain11/TGA-Image-Processing/internal/ir"
)

// TypeTrueColor is the data type code of uncompressed true-color images,
// the only variant this package decodes.
const TypeTrueColor = 2

var (
	// ErrIO wraps failures to open, read or write an image file.
	ErrIO = errors.New("tga: i/o error")
	// ErrTruncated is returned when a file holds fewer bytes than its header declares.
	ErrTruncated = errors.New("tga: truncated input")
	// ErrUnsupported is returned for color-mapped, compressed or non 24/32-bit images.
	ErrUnsupported = errors.New("tga: unsupported image")
)

// checkSupported rejects header variants outside uncompressed 24/32-bit true-color.
func checkSupported(h ir.Header) error {
	if h.ColorMapType != 0 {
		return fmt.Errorf("%w: color-mapped images are not supported", ErrUnsupported)
	}
	if h.DataTypeCode != TypeTrueColor {
		return fmt.Errorf("%w: data type %d (only uncompressed true-color, type %d)", ErrUnsupported, h.DataTypeCode, TypeTrueColor)
	}
	if err := h.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	return nil
}

// Decode reads a TGA image: header, image ID field, then exactly
// Header.Size() pixel bytes. Trailing data (e.g. a TGA 2.0 footer) is ignored.
func Decode(r io.Reader) (*ir.Image, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if err := checkSupported(h); err != nil {
		return nil, err
	}

	img := ir.New(h)
	if h.IDLength > 0 {
		img.ID = make([]byte, h.IDLength)
		if _, err := io.ReadFull(r, img.ID); err != nil {
			return nil, readErr(err, "image ID", int(h.IDLength))
		}
	}

	n, err := io.ReadFull(r, img.Pixels)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %s declares %d pixel bytes, got %d", ErrTruncated, h, len(img.Pixels), n)
		}
		return nil, fmt.Errorf("%w: reading pixels: %w", ErrIO, err)
	}
	return img, nil
}

func readErr(err error, what string, want int) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s shorter than %d bytes", ErrTruncated, what, want)
	}
	return fmt.Errorf("%w: reading %s: %w", ErrIO, what, err)
}

// DecodeFile opens and decodes the TGA file at path.
func DecodeFile(path string) (*ir.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	img, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}
