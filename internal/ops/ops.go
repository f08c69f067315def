// Package ops implements the pixel operators applied by the pipeline.
//
// Every operator is a pure function: inputs are never modified and the
// result is a freshly allocated image whose header (and image ID) is copied
// from the first, primary input.
package ops

import (
	"errors"
	"fmt"

	"github.com/uhussain11/TGA-Image-Processing/internal/color"
	"github.com/uhussain11/TGA-Image-Processing/internal/ir"
)

var (
	// ErrDimensionMismatch is returned when the inputs of a multi-image
	// operator differ in width, height or channel count.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrInvalidChannel is returned for a channel outside Red, Green and Blue.
	ErrInvalidChannel = errors.New("invalid channel")
)

// checkInputs validates every input and requires that they share the
// geometry of the first one.
func checkInputs(imgs ...*ir.Image) error {
	for _, img := range imgs {
		if err := img.Check(); err != nil {
			return err
		}
	}
	primary := imgs[0].Header
	for _, img := range imgs[1:] {
		if !primary.SameGeometry(img.Header) {
			return fmt.Errorf("%w: %s vs %s", ErrDimensionMismatch, primary, img.Header)
		}
	}
	return nil
}

func checkChannel(ch color.Channel) error {
	if !ch.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidChannel, ch)
	}
	return nil
}
