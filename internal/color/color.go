// Package color converts pixel rows between the byte layouts the driver
// stores and the layouts GL accepts for upload and read back.
//
// All 16 and 32 bit pixels are native-endian words, the same layout the
// driver uses for [github.com/gogpu/gl3/core.Color].
package color

import "encoding/binary"

// Converter converts n pixels from src to dst. src and dst may be the same
// slice.
type Converter func(src []byte, n int, dst []byte)

// A1R5G5B5ToR5G5B5A1 moves the alpha bit from the top to the bottom of
// each 16 bit pixel, the order GL_UNSIGNED_SHORT_5_5_5_1 expects.
func A1R5G5B5ToR5G5B5A1(src []byte, n int, dst []byte) {
	for i := range n {
		c := binary.NativeEndian.Uint16(src[i*2:])
		binary.NativeEndian.PutUint16(dst[i*2:], c<<1|c>>15)
	}
}

// R5G5B5A1ToA1R5G5B5 is the inverse of A1R5G5B5ToR5G5B5A1.
func R5G5B5A1ToA1R5G5B5(src []byte, n int, dst []byte) {
	for i := range n {
		c := binary.NativeEndian.Uint16(src[i*2:])
		binary.NativeEndian.PutUint16(dst[i*2:], c>>1|c<<15)
	}
}

// A8R8G8B8ToA8B8G8R8 swaps the red and blue channels of 32 bit pixels.
// The conversion is its own inverse.
func A8R8G8B8ToA8B8G8R8(src []byte, n int, dst []byte) {
	for i := range n {
		c := binary.NativeEndian.Uint32(src[i*4:])
		c = c&0xFF00FF00 | c&0x00FF0000>>16 | c&0x000000FF<<16
		binary.NativeEndian.PutUint32(dst[i*4:], c)
	}
}

// FlipRows reverses the row order of an image in place.
func FlipRows(pix []byte, pitch, height int) {
	if pitch <= 0 || height < 2 || len(pix) < pitch*height {
		return
	}
	tmp := make([]byte, pitch)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*pitch : (top+1)*pitch]
		b := pix[bottom*pitch : (bottom+1)*pitch]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// Expand5 widens a 5 bit channel to 8 bits.
func Expand5(v uint16) uint8 {
	v &= 0x1F
	return uint8(v<<3 | v>>2)
}

// Expand6 widens a 6 bit channel to 8 bits.
func Expand6(v uint16) uint8 {
	v &= 0x3F
	return uint8(v<<2 | v>>4)
}
