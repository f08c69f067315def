package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/uhussain11/TGA-Image-Processing/internal/ir"
	"github.com/uhussain11/TGA-Image-Processing/internal/pipeline"
	"github.com/uhussain11/TGA-Image-Processing/internal/tga"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	// A nil slice makes cobra fall back to os.Args.
	rootCmd.SetArgs(append([]string{}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTGA(t *testing.T, path string, px ...byte) {
	t.Helper()
	img := ir.New(ir.Header{DataTypeCode: tga.TypeTrueColor, Width: 2, Height: 2, PixelDepth: uint8(len(px) * 8)})
	for i := range img.Pixels {
		img.Pixels[i] = px[i%len(px)]
	}
	if err := tga.EncodeFile(path, img); err != nil {
		t.Fatal(err)
	}
}

func TestCLI(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.tga")
	out := filepath.Join(dir, "out.tga")
	writeTGA(t, in, 100, 100, 100)

	t.Run("usage", func(t *testing.T) {
		text, err := execute(t)
		if err != nil {
			t.Fatalf("no args: %v", err)
		}
		if !strings.Contains(text, "Operations:") || !strings.Contains(text, "combine <greenFile> <blueFile>") {
			t.Errorf("usage text missing operations:\n%s", text)
		}
	})

	t.Run("pipeline", func(t *testing.T) {
		text, err := execute(t, out, in, "addred", "-30", "scalegreen", "2", "flip")
		if err != nil {
			t.Fatalf("pipeline: %v", err)
		}
		if !strings.Contains(text, "saving output to "+out) {
			t.Errorf("missing progress output:\n%s", text)
		}
		img, err := tga.DecodeFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(img.Pixels[:3], []byte{70, 200, 100}) {
			t.Errorf("pixel = %v, want [70 200 100]", img.Pixels[:3])
		}
	})

	t.Run("output named like a subcommand", func(t *testing.T) {
		t.Chdir(dir)
		if _, err := execute(t, "./preview", in, "flip"); err != nil {
			t.Fatalf("pipeline: %v", err)
		}
		img, err := tga.DecodeFile(filepath.Join(dir, "preview"))
		if err != nil {
			t.Fatalf("decoding output: %v", err)
		}
		if img.Width() != 2 || img.Height() != 2 {
			t.Errorf("unexpected output size %dx%d", img.Width(), img.Height())
		}

		text, err := execute(t)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(text, "write it as ./identify") {
			t.Errorf("help does not mention subcommand name clashes:\n%s", text)
		}
	})

	t.Run("invalid step", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.tga")
		_, err := execute(t, bad, in, "sharpen")
		if !errors.Is(err, pipeline.ErrInvalidStep) {
			t.Fatalf("expected ErrInvalidStep, got %v", err)
		}
		if _, statErr := os.Stat(bad); !os.IsNotExist(statErr) {
			t.Error("output written for an invalid pipeline")
		}
	})

	t.Run("invalid number", func(t *testing.T) {
		_, err := execute(t, filepath.Join(dir, "bad.tga"), in, "addblue", "x")
		if !errors.Is(err, pipeline.ErrInvalidNumber) {
			t.Fatalf("expected ErrInvalidNumber, got %v", err)
		}
	})

	t.Run("identify", func(t *testing.T) {
		text, err := execute(t, "identify", in)
		if err != nil {
			t.Fatalf("identify: %v", err)
		}
		if !strings.Contains(text, "Dimensions:  2 x 2") || !strings.Contains(text, "Supported:   yes") {
			t.Errorf("identify output:\n%s", text)
		}
	})

	t.Run("raw", func(t *testing.T) {
		raw := filepath.Join(dir, "pixels.raw")
		if _, err := execute(t, "raw", "-i", in, "-o", raw); err != nil {
			t.Fatalf("raw: %v", err)
		}
		data, err := os.ReadFile(raw)
		if err != nil || len(data) != 12 {
			t.Fatalf("raw output: %d bytes, %v", len(data), err)
		}
		meta, err := os.ReadFile(filepath.Join(dir, "pixels.json"))
		if err != nil || !strings.Contains(string(meta), `"format": "BGR8"`) {
			t.Errorf("sidecar: %s, %v", meta, err)
		}
	})

	t.Run("preview and encode", func(t *testing.T) {
		png := filepath.Join(dir, "preview.png")
		if _, err := execute(t, "preview", "-i", in, "-o", png); err != nil {
			t.Fatalf("preview: %v", err)
		}
		back := filepath.Join(dir, "back.tga")
		if _, err := execute(t, "encode", "-i", png, "-o", back); err != nil {
			t.Fatalf("encode: %v", err)
		}
		a, _ := os.ReadFile(in)
		b, _ := os.ReadFile(back)
		if !bytes.Equal(a, b) {
			t.Error("preview/encode round trip changed the file")
		}
	})
}
