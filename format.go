package gl3

import (
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gl3/caps"
	"github.com/gogpu/gl3/gl"
	"github.com/gogpu/gl3/internal/color"
)

// ColorFormat is the pixel layout of a texture or image.
type ColorFormat uint8

const (
	FormatA1R5G5B5 ColorFormat = iota
	FormatR5G6B5
	FormatR8G8B8
	FormatA8R8G8B8
	FormatDXT1
	FormatDXT3
	FormatDXT5
	FormatETC1
	FormatETC2RGB
	FormatETC2ARGB
	FormatD16
	FormatD32
	FormatD24S8
	FormatR8
	FormatR8G8
	FormatR16F
	FormatG16R16F
	FormatA16B16G16R16F
	FormatR32F
	FormatG32R32F
	FormatA32B32G32R32F

	formatCount
)

var formatNames = [formatCount]string{
	"A1R5G5B5", "R5G6B5", "R8G8B8", "A8R8G8B8", "DXT1", "DXT3", "DXT5",
	"ETC1", "ETC2_RGB", "ETC2_ARGB", "D16", "D32", "D24S8", "R8", "R8G8",
	"R16F", "G16R16F", "A16B16G16R16F", "R32F", "G32R32F", "A32B32G32R32F",
}

func (f ColorFormat) String() string {
	if f < formatCount {
		return formatNames[f]
	}
	return fmt.Sprintf("ColorFormat(%d)", f)
}

// IsCompressed reports a block compressed format.
func (f ColorFormat) IsCompressed() bool {
	switch f {
	case FormatDXT1, FormatDXT3, FormatDXT5, FormatETC1, FormatETC2RGB, FormatETC2ARGB:
		return true
	}
	return false
}

// IsDepth reports a depth or depth-stencil format.
func (f ColorFormat) IsDepth() bool {
	return f == FormatD16 || f == FormatD32 || f == FormatD24S8
}

// BitsPerPixel returns the storage size of one pixel. Compressed formats
// report their average rate.
func (f ColorFormat) BitsPerPixel() int {
	switch f {
	case FormatR8:
		return 8
	case FormatA1R5G5B5, FormatR5G6B5, FormatD16, FormatR8G8, FormatR16F:
		return 16
	case FormatR8G8B8:
		return 24
	case FormatA8R8G8B8, FormatD32, FormatD24S8, FormatG16R16F, FormatR32F:
		return 32
	case FormatA16B16G16R16F, FormatG32R32F:
		return 64
	case FormatA32B32G32R32F:
		return 128
	case FormatDXT1, FormatETC1, FormatETC2RGB:
		return 4
	case FormatDXT3, FormatDXT5, FormatETC2ARGB:
		return 8
	}
	return 0
}

// DataSize returns the number of bytes an image of w by h pixels takes.
func (f ColorFormat) DataSize(w, h int) int {
	if f.IsCompressed() {
		block := 16
		if f.BitsPerPixel() == 4 {
			block = 8
		}
		return ((w + 3) / 4) * ((h + 3) / 4) * block
	}
	return w * h * f.BitsPerPixel() / 8
}

// TextureFormat returns the equivalent gputypes format, or
// TextureFormatUndefined when there is none.
func (f ColorFormat) TextureFormat() gputypes.TextureFormat {
	switch f {
	case FormatA8R8G8B8:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatR8:
		return gputypes.TextureFormatR8Unorm
	case FormatD24S8:
		return gputypes.TextureFormatDepth24PlusStencil8
	}
	return gputypes.TextureFormatUndefined
}

// ColorFormatFor returns the format of a gputypes texture format.
func ColorFormatFor(tf gputypes.TextureFormat) (ColorFormat, bool) {
	switch tf {
	case gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatRGBA8Unorm:
		return FormatA8R8G8B8, true
	case gputypes.TextureFormatR8Unorm:
		return FormatR8, true
	case gputypes.TextureFormatDepth24PlusStencil8:
		return FormatD24S8, true
	}
	return 0, false
}

// FormatParams is the GL triple a color format is uploaded with.
type FormatParams struct {
	Internal gl.Enum
	Pixel    gl.Enum
	Type     gl.Enum
	// Converter rewrites image data into the layout GL expects. nil when
	// the data is uploaded as is.
	Converter color.Converter
}

// ColorFormatParams returns how f is uploaded on this context, or false
// when the context cannot store f.
func (d *Driver) ColorFormatParams(f ColorFormat) (FormatParams, bool) {
	return formatParams(d.caps, f)
}

// QueryTextureFormat reports whether textures of format f can be created.
func (d *Driver) QueryTextureFormat(f ColorFormat) bool {
	_, ok := formatParams(d.caps, f)
	return ok
}

// SupportsFormatTriple reports whether the context accepts texture uploads
// with the given internal format, pixel format and type.
func (d *Driver) SupportsFormatTriple(internal, pixel, ty gl.Enum) bool {
	return slices.Contains(uploadTriples(d.caps), glTriple{internal, pixel, ty})
}

type glTriple struct {
	internal, pixel, ty gl.Enum
}

// uploadTriples lists the glTexImage2D and glCompressedTexImage2D
// combinations c accepts. Compressed entries carry the compressed format
// as their type.
func uploadTriples(c *caps.Caps) []glTriple {
	var out []glTriple
	add := func(ok bool, internal, pixel gl.Enum, types ...gl.Enum) {
		if !ok {
			return
		}
		for _, ty := range types {
			out = append(out, glTriple{internal, pixel, ty})
		}
	}

	add(true, gl.RGBA, gl.RGBA, gl.UnsignedByte, gl.UnsignedShort4444, gl.UnsignedShort5551)
	add(true, gl.RGB, gl.RGB, gl.UnsignedByte, gl.UnsignedShort565)
	if c.ES {
		add(c.BGRA8888(), gl.BGRA, gl.BGRA, gl.UnsignedByte)
	} else {
		add(true, gl.RGBA, gl.BGRA, gl.UnsignedByte)
	}

	add(true, gl.DepthComponent, gl.DepthComponent, gl.UnsignedShort)
	add(c.Depth32(), gl.DepthComponent, gl.DepthComponent, gl.UnsignedInt)
	add(c.PackedDepthStencil(), gl.DepthStencil, gl.DepthStencil, gl.UnsignedInt248)

	half := gl.HalfFloat
	if c.ES && c.Version < 300 {
		half = gl.HalfFloatOES
	}
	rg := c.TextureRG()
	add(rg, gl.Red, gl.Red, gl.UnsignedByte)
	add(rg, gl.RG, gl.RG, gl.UnsignedByte)
	add(c.HalfFloatTextures(), gl.RGBA, gl.RGBA, half)
	add(c.HalfFloatTextures(), gl.RGB, gl.RGB, half)
	add(rg && c.HalfFloatTextures(), gl.Red, gl.Red, half)
	add(rg && c.HalfFloatTextures(), gl.RG, gl.RG, half)
	add(c.FloatTextures(), gl.RGBA, gl.RGBA, gl.Float)
	add(c.FloatTextures(), gl.RGB, gl.RGB, gl.Float)
	add(rg && c.FloatTextures(), gl.Red, gl.Red, gl.Float)
	add(rg && c.FloatTextures(), gl.RG, gl.RG, gl.Float)

	for _, e := range []gl.Enum{gl.CompressedRGBAS3TCDXT1, gl.CompressedRGBAS3TCDXT3, gl.CompressedRGBAS3TCDXT5} {
		add(c.S3TC(), e, gl.RGBA, e)
	}
	add(c.ETC1(), gl.ETC1RGB8, gl.RGB, gl.ETC1RGB8)
	add(c.ETC2(), gl.CompressedRGB8ETC2, gl.RGB, gl.CompressedRGB8ETC2)
	add(c.ETC2(), gl.CompressedRGBA8ETC2EAC, gl.RGBA, gl.CompressedRGBA8ETC2EAC)
	return out
}

func formatParams(c *caps.Caps, f ColorFormat) (FormatParams, bool) {
	var p FormatParams
	ok := true
	switch f {
	case FormatA1R5G5B5:
		p = FormatParams{gl.RGBA, gl.RGBA, gl.UnsignedShort5551, color.A1R5G5B5ToR5G5B5A1}
	case FormatR5G6B5:
		p = FormatParams{gl.RGB, gl.RGB, gl.UnsignedShort565, nil}
	case FormatR8G8B8:
		p = FormatParams{gl.RGB, gl.RGB, gl.UnsignedByte, nil}
	case FormatA8R8G8B8:
		if c.BGRA8888() {
			p = FormatParams{gl.BGRA, gl.BGRA, gl.UnsignedByte, nil}
		} else {
			p = FormatParams{gl.RGBA, gl.RGBA, gl.UnsignedByte, color.A8R8G8B8ToA8B8G8R8}
		}
	case FormatDXT1:
		p = FormatParams{gl.CompressedRGBAS3TCDXT1, gl.RGBA, gl.CompressedRGBAS3TCDXT1, nil}
		ok = c.S3TC()
	case FormatDXT3:
		p = FormatParams{gl.CompressedRGBAS3TCDXT3, gl.RGBA, gl.CompressedRGBAS3TCDXT3, nil}
		ok = c.S3TC()
	case FormatDXT5:
		p = FormatParams{gl.CompressedRGBAS3TCDXT5, gl.RGBA, gl.CompressedRGBAS3TCDXT5, nil}
		ok = c.S3TC()
	case FormatETC1:
		p = FormatParams{gl.ETC1RGB8, gl.RGB, gl.ETC1RGB8, nil}
		ok = c.ETC1()
	case FormatETC2RGB:
		p = FormatParams{gl.CompressedRGB8ETC2, gl.RGB, gl.CompressedRGB8ETC2, nil}
		ok = c.ETC2()
	case FormatETC2ARGB:
		p = FormatParams{gl.CompressedRGBA8ETC2EAC, gl.RGBA, gl.CompressedRGBA8ETC2EAC, nil}
		ok = c.ETC2()
	case FormatD16:
		p = FormatParams{gl.DepthComponent, gl.DepthComponent, gl.UnsignedShort, nil}
	case FormatD32:
		p = FormatParams{gl.DepthComponent, gl.DepthComponent, gl.UnsignedInt, nil}
		ok = c.Depth32()
	case FormatD24S8:
		p = FormatParams{gl.DepthStencil, gl.DepthStencil, gl.UnsignedInt248, nil}
		ok = c.PackedDepthStencil()
	case FormatR8:
		p = FormatParams{gl.Red, gl.Red, gl.UnsignedByte, nil}
		ok = c.TextureRG()
	case FormatR8G8:
		p = FormatParams{gl.RG, gl.RG, gl.UnsignedByte, nil}
		ok = c.TextureRG()
	case FormatR16F:
		p = FormatParams{gl.Red, gl.Red, halfFloat(c), nil}
		ok = c.TextureRG() && c.HalfFloatTextures()
	case FormatG16R16F:
		p = FormatParams{gl.RG, gl.RG, halfFloat(c), nil}
		ok = c.TextureRG() && c.HalfFloatTextures()
	case FormatA16B16G16R16F:
		p = FormatParams{gl.RGBA, gl.RGBA, halfFloat(c), nil}
		ok = c.HalfFloatTextures()
	case FormatR32F:
		p = FormatParams{gl.Red, gl.Red, gl.Float, nil}
		ok = c.TextureRG() && c.FloatTextures()
	case FormatG32R32F:
		p = FormatParams{gl.RG, gl.RG, gl.Float, nil}
		ok = c.TextureRG() && c.FloatTextures()
	case FormatA32B32G32R32F:
		p = FormatParams{gl.RGBA, gl.RGBA, gl.Float, nil}
		ok = c.FloatTextures()
	default:
		return FormatParams{}, false
	}
	if !ok {
		return FormatParams{}, false
	}
	// Desktop GL has no BGRA internal format; BGRA data goes into RGBA.
	if !c.ES && p.Internal == gl.BGRA {
		p.Internal = gl.RGBA
	}
	return p, true
}

// halfFloat returns the half float type enum of the context; ES 2
// extensions use their own value.
func halfFloat(c *caps.Caps) gl.Enum {
	if c.ES && c.Version < 300 {
		return gl.HalfFloatOES
	}
	return gl.HalfFloat
}
