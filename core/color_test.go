package core

import (
	"image/color"
	"testing"
)

var _ color.Color = Color(0)

func TestColorChannels(t *testing.T) {
	c := ARGB(0x11, 0x22, 0x33, 0x44)
	if c != 0x11223344 {
		t.Fatalf("ARGB() = %#x, want 0x11223344", uint32(c))
	}
	if c.A() != 0x11 || c.R() != 0x22 || c.G() != 0x33 || c.B() != 0x44 {
		t.Errorf("channels = %#x %#x %#x %#x, want 11 22 33 44", c.A(), c.R(), c.G(), c.B())
	}
	if got := c.WithAlpha(0xFF); got != 0xFF223344 {
		t.Errorf("WithAlpha() = %#x, want 0xff223344", uint32(got))
	}
}

func TestColorFRoundTrip(t *testing.T) {
	tests := []Color{White, Black, Transparent, ARGB(128, 10, 200, 99)}
	for _, c := range tests {
		if got := c.ColorF().Color(); got != c {
			t.Errorf("%#x.ColorF().Color() = %#x", uint32(c), uint32(got))
		}
	}
}

func TestColorFClamps(t *testing.T) {
	got := ColorF{R: 2, G: -1, B: 0.5, A: 1}.Color()
	if want := ARGB(255, 255, 0, 128); got != want {
		t.Errorf("Color() = %#x, want %#x", uint32(got), uint32(want))
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := ARGB(255, 255, 0, 0).RGBA()
	if r != 0xFFFF || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("RGBA() = %d %d %d %d, want 65535 0 0 65535", r, g, b, a)
	}
}
