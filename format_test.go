package gl3

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gl3/caps"
	"github.com/gogpu/gl3/gl"
	"github.com/gogpu/gl3/internal/glfake"
)

func TestColorFormatRoundTrip(t *testing.T) {
	for f := range formatCount {
		tf := f.TextureFormat()
		if tf == gputypes.TextureFormatUndefined {
			continue
		}
		t.Run(f.String(), func(t *testing.T) {
			got, ok := ColorFormatFor(tf)
			require.True(t, ok)
			assert.Equal(t, f, got)
		})
	}

	_, ok := ColorFormatFor(gputypes.TextureFormatUndefined)
	assert.False(t, ok)
}

func TestColorFormatString(t *testing.T) {
	assert.Equal(t, "A8R8G8B8", FormatA8R8G8B8.String())
	assert.Equal(t, "ETC2_ARGB", FormatETC2ARGB.String())
	assert.Equal(t, "ColorFormat(200)", ColorFormat(200).String())
}

func TestDataSize(t *testing.T) {
	tests := []struct {
		f    ColorFormat
		w, h int
		want int
	}{
		{FormatA8R8G8B8, 4, 4, 64},
		{FormatR8G8B8, 3, 2, 18},
		{FormatR5G6B5, 5, 1, 10},
		{FormatR8, 7, 3, 21},
		{FormatA32B32G32R32F, 2, 2, 64},
		{FormatDXT1, 4, 4, 8},
		{FormatDXT1, 5, 5, 32},
		{FormatDXT5, 8, 4, 32},
		{FormatETC1, 1, 1, 8},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.DataSize(tt.w, tt.h))
		})
	}
}

func TestFormatClasses(t *testing.T) {
	for f := range formatCount {
		assert.Positive(t, f.BitsPerPixel(), "%s", f)
		if f.IsDepth() {
			assert.False(t, f.IsCompressed(), "%s", f)
		}
	}
	assert.True(t, FormatD24S8.IsDepth())
	assert.True(t, FormatETC1.IsCompressed())
	assert.False(t, FormatR8.IsCompressed())
}

func TestFormatParams(t *testing.T) {
	es2 := caps.New("OpenGL ES 2.0", nil)
	es2BGRA := caps.New("OpenGL ES 2.0", []string{string(caps.EXTTextureFormatBGRA8888)})
	es3 := caps.New("OpenGL ES 3.0", nil)
	desktop := caps.New("4.6.0 NVIDIA", nil)

	tests := []struct {
		name string
		c    *caps.Caps
		f    ColorFormat
		ok   bool
		want [3]gl.Enum
		conv bool
	}{
		{"ES2 ARGB swizzles", es2, FormatA8R8G8B8, true, [3]gl.Enum{gl.RGBA, gl.RGBA, gl.UnsignedByte}, true},
		{"ES2 BGRA extension", es2BGRA, FormatA8R8G8B8, true, [3]gl.Enum{gl.BGRA, gl.BGRA, gl.UnsignedByte}, false},
		{"desktop BGRA into RGBA", desktop, FormatA8R8G8B8, true, [3]gl.Enum{gl.RGBA, gl.BGRA, gl.UnsignedByte}, false},
		{"A1R5G5B5 converts", es2, FormatA1R5G5B5, true, [3]gl.Enum{gl.RGBA, gl.RGBA, gl.UnsignedShort5551}, true},
		{"R5G6B5", es2, FormatR5G6B5, true, [3]gl.Enum{gl.RGB, gl.RGB, gl.UnsignedShort565}, false},
		{"ES2 half float", caps.New("OpenGL ES 2.0", []string{string(caps.OESTextureHalfFloat)}), FormatA16B16G16R16F, true,
			[3]gl.Enum{gl.RGBA, gl.RGBA, gl.HalfFloatOES}, false},
		{"ES3 half float", es3, FormatA16B16G16R16F, true, [3]gl.Enum{gl.RGBA, gl.RGBA, gl.HalfFloat}, false},
		{"ES2 no RG", es2, FormatR8, false, [3]gl.Enum{}, false},
		{"ES3 RG", es3, FormatR8G8, true, [3]gl.Enum{gl.RG, gl.RG, gl.UnsignedByte}, false},
		{"ES2 no float", es2, FormatA32B32G32R32F, false, [3]gl.Enum{}, false},
		{"ES2 no depth32", es2, FormatD32, false, [3]gl.Enum{}, false},
		{"desktop depth32", desktop, FormatD32, true, [3]gl.Enum{gl.DepthComponent, gl.DepthComponent, gl.UnsignedInt}, false},
		{"no S3TC", es2, FormatDXT1, false, [3]gl.Enum{}, false},
		{"ETC2 on ES3", es3, FormatETC2RGB, true,
			[3]gl.Enum{gl.CompressedRGB8ETC2, gl.RGB, gl.CompressedRGB8ETC2}, false},
		{"no ETC2 on desktop", desktop, FormatETC2RGB, false, [3]gl.Enum{}, false},
		{"unknown", desktop, formatCount, false, [3]gl.Enum{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := formatParams(tt.c, tt.f)
			require.Equal(t, tt.ok, ok)
			if !ok {
				assert.Equal(t, FormatParams{}, p)
				return
			}
			assert.Equal(t, tt.want, [3]gl.Enum{p.Internal, p.Pixel, p.Type})
			assert.Equal(t, tt.conv, p.Converter != nil)
		})
	}
}

func TestSupportsFormatTriple(t *testing.T) {
	d, _ := newTestDriver(t, func(g *glfake.GL) { g.VersionString = "OpenGL ES 3.0 glfake" })

	tests := []struct {
		name                string
		internal, pixel, ty gl.Enum
		want                bool
	}{
		{"RGBA bytes", gl.RGBA, gl.RGBA, gl.UnsignedByte, true},
		{"RGBA 4444", gl.RGBA, gl.RGBA, gl.UnsignedShort4444, true},
		{"RGB 565", gl.RGB, gl.RGB, gl.UnsignedShort565, true},
		{"red float", gl.Red, gl.Red, gl.Float, true},
		{"RG half float", gl.RG, gl.RG, gl.HalfFloat, true},
		{"ES2 half float enum", gl.RGBA, gl.RGBA, gl.HalfFloatOES, false},
		{"RGB 5551", gl.RGB, gl.RGB, gl.UnsignedShort5551, false},
		{"RGBA 565", gl.RGBA, gl.RGBA, gl.UnsignedShort565, false},
		{"mismatched formats", gl.RGBA, gl.RGB, gl.UnsignedByte, false},
		{"BGRA without extension", gl.BGRA, gl.BGRA, gl.UnsignedByte, false},
		{"packed depth stencil", gl.DepthStencil, gl.DepthStencil, gl.UnsignedInt248, true},
		{"depth 32 without extension", gl.DepthComponent, gl.DepthComponent, gl.UnsignedInt, false},
		{"ETC2", gl.CompressedRGB8ETC2, gl.RGB, gl.CompressedRGB8ETC2, true},
		{"DXT5 without extension", gl.CompressedRGBAS3TCDXT5, gl.RGBA, gl.CompressedRGBAS3TCDXT5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.SupportsFormatTriple(tt.internal, tt.pixel, tt.ty))
		})
	}

	assert.True(t, d.QueryTextureFormat(FormatR16F))
	assert.False(t, d.QueryTextureFormat(FormatDXT5))
}

func TestSupportedFormatTriplesAccepted(t *testing.T) {
	contexts := []struct {
		name string
		c    *caps.Caps
	}{
		{"ES2", caps.New("OpenGL ES 2.0", nil)},
		{"ES2 extensions", caps.New("OpenGL ES 2.0", []string{
			string(caps.EXTTextureFormatBGRA8888), string(caps.EXTTextureRG), string(caps.OESTextureHalfFloat),
			string(caps.OESTextureFloat), string(caps.OESDepth32), string(caps.OESPackedDepthStencil),
			string(caps.EXTTextureCompressionS3TC), string(caps.OESCompressedETC1RGB8),
		})},
		{"ES3", caps.New("OpenGL ES 3.0", nil)},
		{"desktop", caps.New("4.6.0 NVIDIA", []string{string(caps.EXTTextureCompressionS3TC)})},
	}
	for _, ctx := range contexts {
		t.Run(ctx.name, func(t *testing.T) {
			triples := uploadTriples(ctx.c)
			for f := range formatCount {
				p, ok := formatParams(ctx.c, f)
				if !ok {
					continue
				}
				assert.Contains(t, triples, glTriple{p.Internal, p.Pixel, p.Type}, "%v is supported but its triple is not", f)
			}
		})
	}
}
