package color

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func u16s(vs ...uint16) []byte {
	b := make([]byte, 0, len(vs)*2)
	for _, v := range vs {
		b = binary.NativeEndian.AppendUint16(b, v)
	}
	return b
}

func u32s(vs ...uint32) []byte {
	b := make([]byte, 0, len(vs)*4)
	for _, v := range vs {
		b = binary.NativeEndian.AppendUint32(b, v)
	}
	return b
}

func TestA1R5G5B5ToR5G5B5A1(t *testing.T) {
	tests := []struct {
		name string
		in   uint16
		want uint16
	}{
		{"opaque white", 0xFFFF, 0xFFFF},
		{"transparent white", 0x7FFF, 0xFFFE},
		{"opaque black", 0x8000, 0x0001},
		{"opaque red", 0xFC00, 0xF801},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, 2)
			A1R5G5B5ToR5G5B5A1(u16s(tt.in), 1, dst)
			if got := binary.NativeEndian.Uint16(dst); got != tt.want {
				t.Errorf("got %#04x, want %#04x", got, tt.want)
			}
			back := make([]byte, 2)
			R5G5B5A1ToA1R5G5B5(dst, 1, back)
			if got := binary.NativeEndian.Uint16(back); got != tt.in {
				t.Errorf("round trip = %#04x, want %#04x", got, tt.in)
			}
		})
	}
}

func TestA8R8G8B8ToA8B8G8R8InPlace(t *testing.T) {
	pix := u32s(0x80112233, 0xFF0000FF)
	A8R8G8B8ToA8B8G8R8(pix, 2, pix)
	want := u32s(0x80332211, 0xFFFF0000)
	if !bytes.Equal(pix, want) {
		t.Errorf("got % x, want % x", pix, want)
	}
}

func TestFlipRows(t *testing.T) {
	tests := []struct {
		name   string
		pix    []byte
		pitch  int
		height int
		want   []byte
	}{
		{"odd height", []byte{1, 1, 2, 2, 3, 3}, 2, 3, []byte{3, 3, 2, 2, 1, 1}},
		{"even height", []byte{1, 2, 3, 4}, 1, 4, []byte{4, 3, 2, 1}},
		{"single row", []byte{1, 2}, 2, 1, []byte{1, 2}},
		{"short buffer untouched", []byte{1, 2}, 2, 2, []byte{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			FlipRows(tt.pix, tt.pitch, tt.height)
			if !bytes.Equal(tt.pix, tt.want) {
				t.Errorf("got %v, want %v", tt.pix, tt.want)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	if got := Expand5(0x1F); got != 0xFF {
		t.Errorf("Expand5(0x1f) = %#x, want 0xff", got)
	}
	if got := Expand6(0x3F); got != 0xFF {
		t.Errorf("Expand6(0x3f) = %#x, want 0xff", got)
	}
	if got := Expand5(0); got != 0 {
		t.Errorf("Expand5(0) = %#x, want 0", got)
	}
}
