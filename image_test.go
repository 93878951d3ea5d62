package gl3

import (
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImage(t *testing.T) {
	img := NewImage(FormatR8G8B8, image.Pt(5, 3))
	assert.Equal(t, 15, img.Pitch)
	assert.Len(t, img.Pix, 45)

	dxt := NewImage(FormatDXT5, image.Pt(8, 8))
	assert.Zero(t, dxt.Pitch)
	assert.Len(t, dxt.Pix, 64)
}

func TestImageFromGo(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 12, 11))
	src.Set(10, 10, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF})
	src.Set(11, 10, color.RGBA{})

	img := ImageFromGo(src)
	require.Equal(t, FormatA8R8G8B8, img.Format)
	require.Equal(t, image.Pt(2, 1), img.Size)
	assert.Equal(t, uint32(0xFF112233), binary.NativeEndian.Uint32(img.Pix[0:]))
	assert.Zero(t, binary.NativeEndian.Uint32(img.Pix[4:]))
}

func TestToNRGBA(t *testing.T) {
	tests := []struct {
		name   string
		format ColorFormat
		pixel  []byte
		want   color.NRGBA
	}{
		{"A8R8G8B8", FormatA8R8G8B8, binary.NativeEndian.AppendUint32(nil, 0x80102030), color.NRGBA{0x10, 0x20, 0x30, 0x80}},
		{"R8G8B8", FormatR8G8B8, []byte{1, 2, 3}, color.NRGBA{1, 2, 3, 255}},
		{"R5G6B5 white", FormatR5G6B5, binary.NativeEndian.AppendUint16(nil, 0xFFFF), color.NRGBA{255, 255, 255, 255}},
		{"R5G6B5 red", FormatR5G6B5, binary.NativeEndian.AppendUint16(nil, 0xF800), color.NRGBA{255, 0, 0, 255}},
		{"A1R5G5B5 opaque blue", FormatA1R5G5B5, binary.NativeEndian.AppendUint16(nil, 0x801F), color.NRGBA{0, 0, 255, 255}},
		{"A1R5G5B5 transparent", FormatA1R5G5B5, binary.NativeEndian.AppendUint16(nil, 0x7C00), color.NRGBA{255, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage(tt.format, image.Pt(1, 1))
			copy(img.Pix, tt.pixel)
			out := img.ToNRGBA()
			require.NotNil(t, out)
			assert.Equal(t, tt.want, out.NRGBAAt(0, 0))
		})
	}

	assert.Nil(t, NewImage(FormatR32F, image.Pt(1, 1)).ToNRGBA())
}

func TestImageRoundTripThroughGo(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 9)
	}
	assert.Equal(t, src, ImageFromGo(src).ToNRGBA())
}
