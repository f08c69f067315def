package ir

import (
	"errors"
	"fmt"
)

// ErrUnsupportedDepth is returned for pixel depths other than 24 or 32 bits.
var ErrUnsupportedDepth = errors.New("unsupported pixel depth")

// Header is the fixed 18-byte TGA header, fields in on-disk order.
type Header struct {
	IDLength        uint8
	ColorMapType    uint8
	DataTypeCode    uint8
	ColorMapOrigin  uint16
	ColorMapLength  uint16
	ColorMapDepth   uint8
	XOrigin         uint16
	YOrigin         uint16
	Width           uint16
	Height          uint16
	PixelDepth      uint8 // bits per pixel, 24 or 32
	ImageDescriptor uint8
}

// Channels returns the number of bytes per pixel.
func (h Header) Channels() int {
	return int(h.PixelDepth) / 8
}

// Size returns the number of pixel bytes the header describes.
func (h Header) Size() int {
	return int(h.Width) * int(h.Height) * h.Channels()
}

// Validate checks that the header describes an 8-bit-per-channel layout.
func (h Header) Validate() error {
	if h.PixelDepth != 24 && h.PixelDepth != 32 {
		return fmt.Errorf("%w: %d bits", ErrUnsupportedDepth, h.PixelDepth)
	}
	return nil
}

// SameGeometry reports whether two headers share width, height and channel count.
func (h Header) SameGeometry(o Header) bool {
	return h.Width == o.Width && h.Height == o.Height && h.Channels() == o.Channels()
}

// TopLeftOrigin reports whether rows are stored top to bottom (descriptor bit 5).
func (h Header) TopLeftOrigin() bool {
	return h.ImageDescriptor&0x20 != 0
}

func (h Header) String() string {
	return fmt.Sprintf("%dx%d@%dbpp", h.Width, h.Height, h.PixelDepth)
}

// Image is the intermediate representation passed between the codec and the
// operators. Pixels are interleaved bytes, Channels() per pixel, row-major,
// in file order (byte 0, 1, 2[, 3]).
type Image struct {
	Header Header
	ID     []byte // image ID field, len = Header.IDLength
	Pixels []byte // len = Header.Size()
}

// New allocates a zeroed image sized from h.
func New(h Header) *Image {
	return &Image{
		Header: h,
		Pixels: make([]byte, h.Size()),
	}
}

// Like allocates a zeroed image with the header and ID of src.
func Like(src *Image) *Image {
	img := New(src.Header)
	if len(src.ID) > 0 {
		img.ID = append([]byte(nil), src.ID...)
	}
	return img
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	c := Like(img)
	copy(c.Pixels, img.Pixels)
	return c
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return int(img.Header.Width) }

// Height returns the image height in pixels.
func (img *Image) Height() int { return int(img.Header.Height) }

// Channels returns the number of bytes per pixel.
func (img *Image) Channels() int { return img.Header.Channels() }

// Offset returns the index of the first byte of pixel (x, y).
func (img *Image) Offset(x, y int) int {
	return (y*img.Width() + x) * img.Channels()
}

// Check verifies the depth and that the pixel buffer matches the header size.
func (img *Image) Check() error {
	if err := img.Header.Validate(); err != nil {
		return err
	}
	if len(img.Pixels) != img.Header.Size() {
		return fmt.Errorf("pixel buffer is %d bytes, header %s declares %d", len(img.Pixels), img.Header, img.Header.Size())
	}
	return nil
}
