package tga

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/uhussain11/TGA-Image-Processing/internal/ir"
)

// HeaderSize is the on-disk size of the TGA header in bytes.
const HeaderSize = 18

// headerFields lists pointers to h's fields in on-disk order. binary.Read and
// binary.Write size each field from its Go type, so the encoding never
// depends on struct layout.
func headerFields(h *ir.Header) []any {
	return []any{
		&h.IDLength,
		&h.ColorMapType,
		&h.DataTypeCode,
		&h.ColorMapOrigin,
		&h.ColorMapLength,
		&h.ColorMapDepth,
		&h.XOrigin,
		&h.YOrigin,
		&h.Width,
		&h.Height,
		&h.PixelDepth,
		&h.ImageDescriptor,
	}
}

// ReadHeader reads the 18 header bytes field by field, little-endian.
func ReadHeader(r io.Reader) (ir.Header, error) {
	var h ir.Header
	for _, f := range headerFields(&h) {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return h, fmt.Errorf("%w: header shorter than %d bytes", ErrTruncated, HeaderSize)
			}
			return h, fmt.Errorf("%w: reading header: %w", ErrIO, err)
		}
	}
	return h, nil
}

// WriteHeader writes h field by field, little-endian.
func WriteHeader(w io.Writer, h ir.Header) error {
	for _, f := range headerFields(&h) {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return err
		}
	}
	return nil
}
