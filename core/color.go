package core

import "image/color"

// Color is a 32-bit ARGB color, 8 bits per channel, alpha in the high byte.
//
// In memory (little-endian) a Color is stored as B, G, R, A. Vertex colors
// are uploaded in this order and swizzled back in the shaders.
type Color uint32

// ARGB packs four 8-bit channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Common colors.
const (
	White       Color = 0xFFFFFFFF
	Black       Color = 0xFF000000
	Transparent Color = 0x00000000
)

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

// ColorF converts c to floating point channels in [0,1].
func (c Color) ColorF() ColorF {
	const inv = 1.0 / 255.0
	return ColorF{
		R: float32(c.R()) * inv,
		G: float32(c.G()) * inv,
		B: float32(c.B()) * inv,
		A: float32(c.A()) * inv,
	}
}

// RGBA implements image/color.Color with non-premultiplied input.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// ColorF is a floating point RGBA color.
type ColorF struct {
	R, G, B, A float32
}

// Array returns the channels in R, G, B, A order, ready for a vec4 uniform.
func (c ColorF) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Color converts back to a packed Color, clamping each channel.
func (c ColorF) Color() Color {
	return ARGB(unit8(c.A), unit8(c.R), unit8(c.G), unit8(c.B))
}

func unit8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
