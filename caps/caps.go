// Package caps queries what the current OpenGL / OpenGL ES context
// supports.
//
// [Query] runs once when a driver is created and captures the context
// version, the extension set and the numeric limits the driver relies on.
// Derived predicates such as [Caps.TextureRG] fold in features that were
// promoted to core in later versions, so callers never need to know whether
// a feature came from an extension or from the core profile.
package caps

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gogpu/gl3/gl"
)

// MaxTextureUnits is the number of texture layers the driver manages.
const MaxTextureUnits = 4

// Extension is a GL extension name.
type Extension string

// Extensions consulted by the driver.
const (
	OESElementIndexUint        Extension = "GL_OES_element_index_uint"
	OESTextureNPOT             Extension = "GL_OES_texture_npot"
	OESDepth32                 Extension = "GL_OES_depth32"
	OESPackedDepthStencil      Extension = "GL_OES_packed_depth_stencil"
	OESTextureHalfFloat        Extension = "GL_OES_texture_half_float"
	OESTextureFloat            Extension = "GL_OES_texture_float"
	OESCompressedETC1RGB8      Extension = "GL_OES_compressed_ETC1_RGB8_texture"
	EXTTextureRG               Extension = "GL_EXT_texture_rg"
	EXTTextureFilterAnisotropy Extension = "GL_EXT_texture_filter_anisotropic"
	EXTTextureFormatBGRA8888   Extension = "GL_EXT_texture_format_BGRA8888"
	EXTTextureCompressionS3TC  Extension = "GL_EXT_texture_compression_s3tc"
	EXTDrawBuffers             Extension = "GL_EXT_draw_buffers"
	IMGTextureFormatBGRA8888   Extension = "GL_IMG_texture_format_BGRA8888"
	APPLETextureFormatBGRA8888 Extension = "GL_APPLE_texture_format_BGRA8888"
	ARBTextureNonPowerOfTwo    Extension = "GL_ARB_texture_non_power_of_two"
)

// Caps is a snapshot of context capabilities. It is never refreshed.
type Caps struct {
	// ES reports an OpenGL ES context.
	ES bool
	// Version is major*100 + minor*10, e.g. 200 for ES 2.0, 460 for GL 4.6.
	Version int

	VendorName   string
	RendererName string
	VersionName  string

	MaxTextureUnits   int
	MaxTextureSize    int
	MaxAnisotropy     float32
	MaxTextureLODBias float32
	MaxIndices        int
	MaxDrawBuffers    int
	DimAliasedLine    [2]float32
	DimAliasedPoint   [2]float32
	ReadFormat        gl.Enum
	ReadType          gl.Enum

	exts map[Extension]bool
}

var versionRE = regexp.MustCompile(`(\d+)\.(\d+)`)

// ParseVersion splits a GL_VERSION string into the ES flag and the packed
// version number. Unparseable strings report ES 2.0, the minimum the driver
// targets.
func ParseVersion(s string) (es bool, version int) {
	es = strings.HasPrefix(s, "OpenGL ES")
	m := versionRE.FindStringSubmatch(s)
	if m == nil {
		return true, 200
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	if minor > 9 {
		minor = 9
	}
	return es, major*100 + minor*10
}

// New builds Caps from already-known values. It is used by Query and by
// tests that need a specific capability set.
func New(version string, extensions []string) *Caps {
	c := &Caps{
		VersionName:     version,
		MaxTextureUnits: 1,
		MaxIndices:      65535,
		MaxDrawBuffers:  1,
		DimAliasedLine:  [2]float32{1, 1},
		DimAliasedPoint: [2]float32{1, 1},
		ReadFormat:      gl.RGBA,
		ReadType:        gl.UnsignedByte,
		exts:            make(map[Extension]bool, len(extensions)),
	}
	c.ES, c.Version = ParseVersion(version)
	for _, e := range extensions {
		if e != "" {
			c.exts[Extension(e)] = true
		}
	}
	return c
}

// Query reads the capabilities of the current context.
func Query(f gl.Functions) *Caps {
	c := New(f.GetString(gl.Version), strings.Fields(f.GetString(gl.Extensions)))
	c.VendorName = f.GetString(gl.Vendor)
	c.RendererName = f.GetString(gl.Renderer)

	c.MaxTextureUnits = min(max(getInt(f, gl.MaxTextureImageUnits), 1), MaxTextureUnits)
	c.MaxTextureSize = getInt(f, gl.MaxTextureSize)
	if c.Anisotropic() {
		c.MaxAnisotropy = getFloat(f, gl.MaxTextureMaxAnisotropy)
	}
	if !c.ES || c.Version >= 300 {
		c.MaxTextureLODBias = getFloat(f, gl.MaxTextureLODBias)
		if n := getInt(f, gl.MaxElementsIndices); n > 0 {
			c.MaxIndices = n
		}
	}
	if c.MultipleRenderTargets() {
		c.MaxDrawBuffers = max(getInt(f, gl.MaxDrawBuffers), 1)
	}

	var r [2]float32
	f.GetFloatv(gl.AliasedLineWidthRange, r[:])
	if r[1] > 0 {
		c.DimAliasedLine = r
	}
	r = [2]float32{}
	f.GetFloatv(gl.AliasedPointSizeRange, r[:])
	if r[1] > 0 {
		c.DimAliasedPoint = r
	}

	if format := gl.Enum(getInt(f, gl.ImplementationColorReadFormat)); format == gl.RGBA || format == gl.RGB {
		c.ReadFormat = format
		c.ReadType = gl.Enum(getInt(f, gl.ImplementationColorReadType))
	}
	// 4444 reads would need their own screenshot format.
	if c.ReadType == gl.UnsignedShort4444 || c.ReadType == 0 {
		c.ReadFormat, c.ReadType = gl.RGBA, gl.UnsignedByte
	}
	return c
}

func getInt(f gl.Functions, pname gl.Enum) int {
	var v [1]int32
	f.GetIntegerv(pname, v[:])
	return int(v[0])
}

func getFloat(f gl.Functions, pname gl.Enum) float32 {
	var v [1]float32
	f.GetFloatv(pname, v[:])
	return v[0]
}

// Has reports whether the context advertises ext.
func (c *Caps) Has(ext Extension) bool {
	return c.exts[ext]
}

// ExtensionCount returns the number of advertised extensions.
func (c *Caps) ExtensionCount() int {
	return len(c.exts)
}

// AtLeast reports whether the context is at least the given version of
// its own API flavor.
func (c *Caps) AtLeast(es bool, version int) bool {
	return c.ES == es && c.Version >= version
}

func (c *Caps) es3OrDesktop3() bool {
	return c.Version >= 300
}

// BGRA8888 reports native upload support for BGRA byte order.
func (c *Caps) BGRA8888() bool {
	return !c.ES || c.Has(IMGTextureFormatBGRA8888) || c.Has(EXTTextureFormatBGRA8888) || c.Has(APPLETextureFormatBGRA8888)
}

// TextureRG reports one and two channel texture support.
func (c *Caps) TextureRG() bool {
	return c.es3OrDesktop3() || c.Has(EXTTextureRG)
}

// HalfFloatTextures reports 16-bit float texture support.
func (c *Caps) HalfFloatTextures() bool {
	return c.es3OrDesktop3() || c.Has(OESTextureHalfFloat)
}

// FloatTextures reports 32-bit float texture support.
func (c *Caps) FloatTextures() bool {
	return c.es3OrDesktop3() || c.Has(OESTextureFloat)
}

// Depth32 reports 32-bit depth texture support.
func (c *Caps) Depth32() bool {
	return !c.ES || c.Has(OESDepth32)
}

// PackedDepthStencil reports combined depth/stencil texture support.
func (c *Caps) PackedDepthStencil() bool {
	return c.es3OrDesktop3() || c.Has(OESPackedDepthStencil)
}

// ElementIndexUint reports 32-bit index support.
func (c *Caps) ElementIndexUint() bool {
	return !c.ES || c.Version >= 300 || c.Has(OESElementIndexUint)
}

// S3TC reports DXT compressed texture support.
func (c *Caps) S3TC() bool {
	return c.Has(EXTTextureCompressionS3TC)
}

// ETC1 reports ETC1 compressed texture support.
func (c *Caps) ETC1() bool {
	return c.Has(OESCompressedETC1RGB8)
}

// ETC2 reports ETC2 compressed texture support.
func (c *Caps) ETC2() bool {
	return c.ES && c.Version >= 300
}

// Anisotropic reports anisotropic filtering support.
func (c *Caps) Anisotropic() bool {
	return c.Has(EXTTextureFilterAnisotropy)
}

// NPOT reports full non power of two texture support.
func (c *Caps) NPOT() bool {
	return c.es3OrDesktop3() || c.Has(OESTextureNPOT) || c.Has(ARBTextureNonPowerOfTwo)
}

// MultipleRenderTargets reports glDrawBuffers support.
func (c *Caps) MultipleRenderTargets() bool {
	return c.es3OrDesktop3() || c.Has(EXTDrawBuffers)
}

// UnsignedUniforms reports glUniform*uiv support.
func (c *Caps) UnsignedUniforms() bool {
	return c.es3OrDesktop3()
}
