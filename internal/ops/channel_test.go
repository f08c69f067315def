package ops

import (
	"bytes"
	"errors"
	"testing"

	"github.com/uhussain11/TGA-Image-Processing/internal/color"
)

func TestAddToChannelClamps(t *testing.T) {
	img := filled(t, 2, 2, 10, 128, 250)

	up := mustOp(t)(AddToChannel(img, color.Blue, 300))
	down := mustOp(t)(AddToChannel(img, color.Red, -300))
	for i := 0; i < len(img.Pixels); i += 3 {
		if got := up.Pixels[i : i+3]; !bytes.Equal(got, []byte{10, 128, 255}) {
			t.Fatalf("+300 on blue = %v", got)
		}
		if got := down.Pixels[i : i+3]; !bytes.Equal(got, []byte{0, 128, 250}) {
			t.Fatalf("-300 on red = %v", got)
		}
	}

	green := mustOp(t)(AddToChannel(img, color.Green, -28))
	if green.Pixels[1] != 100 || green.Pixels[0] != 10 || green.Pixels[2] != 250 {
		t.Errorf("-28 on green = %v", green.Pixels[:3])
	}
}

func TestAddToChannelExtremeAmount(t *testing.T) {
	img := filled(t, 1, 1, 1, 2, 3, 4)
	const maxInt = int(^uint(0) >> 1)
	out := mustOp(t)(AddToChannel(img, color.Red, maxInt))
	if !bytes.Equal(out.Pixels, []byte{255, 2, 3, 4}) {
		t.Errorf("max int add = %v", out.Pixels)
	}
	out = mustOp(t)(AddToChannel(img, color.Red, -maxInt-1))
	if !bytes.Equal(out.Pixels, []byte{0, 2, 3, 4}) {
		t.Errorf("min int add = %v", out.Pixels)
	}
}

func TestScaleChannel(t *testing.T) {
	img := filled(t, 2, 1, 100, 100, 100, 100)

	cases := []struct {
		c      color.Channel
		factor float64
		want   []byte
	}{
		{color.Red, 1.5, []byte{150, 100, 100, 100}},
		{color.Green, 0, []byte{100, 0, 100, 100}},
		{color.Blue, 3, []byte{100, 100, 255, 100}},
		{color.Blue, -2, []byte{100, 100, 0, 100}},
		{color.Red, 0.333, []byte{33, 100, 100, 100}},
	}
	for _, tc := range cases {
		out := mustOp(t)(ScaleChannel(img, tc.c, tc.factor))
		if !bytes.Equal(out.Pixels[:4], tc.want) {
			t.Errorf("scale %v by %g = %v, want %v", tc.c, tc.factor, out.Pixels[:4], tc.want)
		}
	}
}

func TestChannelArithmeticStaysInRange(t *testing.T) {
	img := pattern(t, 8, 8, 24, 9)
	for _, n := range []int{-1000, -255, -1, 0, 1, 77, 255, 1000} {
		for _, c := range color.Channels {
			out := mustOp(t)(AddToChannel(img, c, n))
			for i := range out.Pixels {
				want := int(img.Pixels[i])
				if i%3 == c.Offset() {
					want = min(max(want+n, 0), 255)
				}
				if int(out.Pixels[i]) != want {
					t.Fatalf("add %d to %v: byte %d = %d, want %d", n, c, i, out.Pixels[i], want)
				}
			}
		}
	}
}

func TestExtractChannel(t *testing.T) {
	img := filled(t, 2, 2, 11, 22, 33, 44)
	want := map[color.Channel][]byte{
		color.Red:   {11, 0, 0, 0},
		color.Green: {0, 22, 0, 0},
		color.Blue:  {0, 0, 33, 0},
	}
	for c, px := range want {
		out := mustOp(t)(ExtractChannel(img, c))
		for i := 0; i < len(out.Pixels); i += 4 {
			if !bytes.Equal(out.Pixels[i:i+4], px) {
				t.Fatalf("extract %v = %v, want %v", c, out.Pixels[i:i+4], px)
			}
		}
	}
}

func TestExtractTwiceIsBlack(t *testing.T) {
	img := pattern(t, 5, 4, 24, 2)
	red := mustOp(t)(ExtractChannel(img, color.Red))
	out := mustOp(t)(ExtractChannel(red, color.Green))
	if !bytes.Equal(out.Pixels, make([]byte, len(out.Pixels))) {
		t.Error("onlyred then onlygreen should be all zero")
	}
}

func TestCombineChannels(t *testing.T) {
	r := filled(t, 2, 2, 1, 2, 3, 4)
	g := filled(t, 2, 2, 5, 6, 7, 8)
	b := filled(t, 2, 2, 9, 10, 11, 12)

	out := mustOp(t)(CombineChannels(r, g, b))
	for i := 0; i < len(out.Pixels); i += 4 {
		if got := out.Pixels[i : i+4]; !bytes.Equal(got, []byte{1, 6, 11, 0}) {
			t.Fatalf("pixel %d = %v, want [1 6 11 0]", i/4, got)
		}
	}
	if out.Header != r.Header {
		t.Error("header not taken from the red input")
	}
}

func TestCombineRebuildsSplit(t *testing.T) {
	img := pattern(t, 6, 3, 24, 4)
	r := mustOp(t)(ExtractChannel(img, color.Red))
	g := mustOp(t)(ExtractChannel(img, color.Green))
	b := mustOp(t)(ExtractChannel(img, color.Blue))
	out := mustOp(t)(CombineChannels(r, g, b))
	if !pixelsEqual(t, out, img) {
		t.Error("combining extracted channels should restore the image")
	}
}

func TestCombineDimensionMismatch(t *testing.T) {
	a := newImage(t, 2, 2, 24)
	if _, err := CombineChannels(a, a, newImage(t, 2, 3, 24)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := CombineChannels(a, newImage(t, 2, 2, 32), a); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestInvalidChannel(t *testing.T) {
	img := newImage(t, 1, 1, 32)
	bad := color.Channel(3)
	if _, err := AddToChannel(img, bad, 1); !errors.Is(err, ErrInvalidChannel) {
		t.Errorf("AddToChannel: %v", err)
	}
	if _, err := ScaleChannel(img, bad, 1); !errors.Is(err, ErrInvalidChannel) {
		t.Errorf("ScaleChannel: %v", err)
	}
	if _, err := ExtractChannel(img, bad); !errors.Is(err, ErrInvalidChannel) {
		t.Errorf("ExtractChannel: %v", err)
	}
}

func TestChannelOpsKeepInput(t *testing.T) {
	img := pattern(t, 3, 3, 32, 6)
	orig := img.Clone()
	mustOp(t)(AddToChannel(img, color.Red, 50))
	mustOp(t)(ScaleChannel(img, color.Green, 2))
	mustOp(t)(ExtractChannel(img, color.Blue))
	if !pixelsEqual(t, img, orig) {
		t.Error("channel operator modified its input")
	}
}
