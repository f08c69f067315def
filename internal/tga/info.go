package tga

import (
	"fmt"
	"os"

	"github.com/uhussain11/TGA-Image-Processing/internal/ir"
)

// typeName returns a string for a TGA data type code.
func typeName(code uint8) string {
	switch code {
	case 0:
		return "No image data"
	case 1:
		return "Color-mapped"
	case 2:
		return "True-color"
	case 3:
		return "Grayscale"
	case 9:
		return "RLE color-mapped"
	case 10:
		return "RLE true-color"
	case 11:
		return "RLE grayscale"
	default:
		return fmt.Sprintf("Type(%d)", code)
	}
}

// ImageInfo contains metadata about a TGA file.
type ImageInfo struct {
	Header    ir.Header
	Type      string
	Channels  int
	DataSize  int   // pixel bytes declared by the header
	FileSize  int64 // bytes on disk
	Supported bool  // decodable by Decode
	TopDown   bool
}

// GetInfo reads the TGA header without decoding the pixel data.
func GetInfo(path string) (*ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	h, err := ReadHeader(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return &ImageInfo{
		Header:    h,
		Type:      typeName(h.DataTypeCode),
		Channels:  h.Channels(),
		DataSize:  h.Size(),
		FileSize:  st.Size(),
		Supported: checkSupported(h) == nil,
		TopDown:   h.TopLeftOrigin(),
	}, nil
}
