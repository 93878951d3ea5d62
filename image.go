package gl3

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"

	icolor "github.com/gogpu/gl3/internal/color"
)

// Image is a CPU pixel buffer in one of the driver's color formats, rows
// top-down. 16 and 32 bit pixels are native-endian words; R8G8B8 is the
// bytes R, G, B.
type Image struct {
	Format ColorFormat
	Size   image.Point
	// Pitch is the byte length of one row. It is 0 for compressed data.
	Pitch int
	Pix   []byte
}

// NewImage allocates a zeroed image.
func NewImage(format ColorFormat, size image.Point) *Image {
	img := &Image{Format: format, Size: size}
	if !format.IsCompressed() {
		img.Pitch = size.X * format.BitsPerPixel() / 8
	}
	img.Pix = make([]byte, format.DataSize(size.X, size.Y))
	return img
}

// ImageFromGo converts any Go image into an A8R8G8B8 Image.
func ImageFromGo(src image.Image) *Image {
	b := src.Bounds()
	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rectangle{Max: b.Size()})
		draw.Draw(nrgba, nrgba.Rect, src, b.Min, draw.Src)
	}

	img := NewImage(FormatA8R8G8B8, b.Size())
	for y := range img.Size.Y {
		row := nrgba.Pix[y*nrgba.Stride:]
		out := img.Pix[y*img.Pitch:]
		for x := range img.Size.X {
			p := row[x*4 : x*4+4]
			c := uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
			binary.NativeEndian.PutUint32(out[x*4:], c)
		}
	}
	return img
}

// ToNRGBA converts the image for encoding with the image packages. It
// returns nil for compressed, depth and float formats.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rectangle{Max: img.Size})
	for y := range img.Size.Y {
		row := img.Pix[y*img.Pitch:]
		for x := range img.Size.X {
			var c color.NRGBA
			switch img.Format {
			case FormatA8R8G8B8:
				v := binary.NativeEndian.Uint32(row[x*4:])
				c = color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24)}
			case FormatR8G8B8:
				c = color.NRGBA{R: row[x*3], G: row[x*3+1], B: row[x*3+2], A: 255}
			case FormatR5G6B5:
				v := binary.NativeEndian.Uint16(row[x*2:])
				c = color.NRGBA{
					R: icolor.Expand5(v >> 11),
					G: icolor.Expand6(v >> 5),
					B: icolor.Expand5(v),
					A: 255,
				}
			case FormatA1R5G5B5:
				v := binary.NativeEndian.Uint16(row[x*2:])
				c = color.NRGBA{
					R: icolor.Expand5(v >> 10),
					G: icolor.Expand5(v >> 5),
					B: icolor.Expand5(v),
					A: uint8(v>>15) * 255,
				}
			default:
				return nil
			}
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}
