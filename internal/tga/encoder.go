package tga

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/uhussain11/TGA-Image-Processing/internal/ir"
)

// Encode writes img as header, image ID field, then pixel bytes.
func Encode(w io.Writer, img *ir.Image) error {
	if err := img.Check(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if len(img.ID) != int(img.Header.IDLength) {
		return fmt.Errorf("encode: image ID is %d bytes, header declares %d", len(img.ID), img.Header.IDLength)
	}

	if err := WriteHeader(w, img.Header); err != nil {
		return fmt.Errorf("%w: writing header: %w", ErrIO, err)
	}
	if _, err := w.Write(img.ID); err != nil {
		return fmt.Errorf("%w: writing image ID: %w", ErrIO, err)
	}
	if _, err := w.Write(img.Pixels); err != nil {
		return fmt.Errorf("%w: writing pixels: %w", ErrIO, err)
	}
	return nil
}

// EncodeFile encodes img into a temporary file next to path and renames it
// over path once every byte is on disk. A failed encode or write leaves any
// existing file at path untouched.
func EncodeFile(path string, img *ir.Image) (err error) {
	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(img.ID) + len(img.Pixels))
	if err := Encode(&buf, img); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if _, err = f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}
	if err = f.Chmod(0644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("%w: syncing %s: %w", ErrIO, path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrIO, path, err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
