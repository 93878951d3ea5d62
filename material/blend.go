package material

import "math"

// BlendFactor is a source or destination blend factor.
type BlendFactor uint8

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendDstColor
	BlendOneMinusDstColor
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
	BlendSrcAlphaSaturate
)

// HasAlpha reports whether the factor reads an alpha channel.
func (f BlendFactor) HasAlpha() bool {
	switch f {
	case BlendSrcAlpha, BlendOneMinusSrcAlpha, BlendDstAlpha, BlendOneMinusDstAlpha, BlendSrcAlphaSaturate:
		return true
	default:
		return false
	}
}

// ModulateFunc scales the texture color of OneTextureBlend.
type ModulateFunc uint8

const (
	Modulate1X ModulateFunc = 1
	Modulate2X ModulateFunc = 2
	Modulate4X ModulateFunc = 4
)

// AlphaSource selects where OneTextureBlend takes alpha from.
type AlphaSource uint8

const (
	AlphaSourceNone        AlphaSource = 0
	AlphaSourceVertexColor AlphaSource = 1
	AlphaSourceTexture     AlphaSource = 2
)

// BlendFunc is an unpacked blend descriptor.
type BlendFunc struct {
	SrcRGB, DstRGB     BlendFactor
	SrcAlpha, DstAlpha BlendFactor
	Modulate           ModulateFunc
	AlphaSource        AlphaSource
}

// Pack returns the descriptor packed into a float32 bit pattern, the form
// stored in Material.TypeParam and Material.BlendFactor.
//
// Bit layout: alpha source 20-23, modulate 16-19, src RGB 12-15,
// dst RGB 8-11, src alpha 4-7, dst alpha 0-3.
func (b BlendFunc) Pack() float32 {
	bits := uint32(b.AlphaSource)<<20 |
		uint32(b.Modulate)<<16 |
		uint32(b.SrcRGB)<<12 |
		uint32(b.DstRGB)<<8 |
		uint32(b.SrcAlpha)<<4 |
		uint32(b.DstAlpha)
	return math.Float32frombits(bits)
}

// HasAlpha reports whether any of the four factors reads alpha.
func (b BlendFunc) HasAlpha() bool {
	return b.SrcRGB.HasAlpha() || b.DstRGB.HasAlpha() || b.SrcAlpha.HasAlpha() || b.DstAlpha.HasAlpha()
}

// PackBlendFunc packs a blend function that uses the same factors for color
// and alpha.
func PackBlendFunc(src, dst BlendFactor, modulate ModulateFunc, alpha AlphaSource) float32 {
	return PackBlendFuncSeparate(src, dst, src, dst, modulate, alpha)
}

// PackBlendFuncSeparate packs a blend function with separate alpha factors.
func PackBlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha BlendFactor, modulate ModulateFunc, alpha AlphaSource) float32 {
	return BlendFunc{
		SrcRGB:      srcRGB,
		DstRGB:      dstRGB,
		SrcAlpha:    srcAlpha,
		DstAlpha:    dstAlpha,
		Modulate:    modulate,
		AlphaSource: alpha,
	}.Pack()
}

// UnpackBlendFunc reverses Pack.
func UnpackBlendFunc(param float32) BlendFunc {
	bits := math.Float32bits(param)
	return BlendFunc{
		AlphaSource: AlphaSource(bits >> 20 & 0xF),
		Modulate:    ModulateFunc(bits >> 16 & 0xF),
		SrcRGB:      BlendFactor(bits >> 12 & 0xF),
		DstRGB:      BlendFactor(bits >> 8 & 0xF),
		SrcAlpha:    BlendFactor(bits >> 4 & 0xF),
		DstAlpha:    BlendFactor(bits & 0xF),
	}
}

// BlendType classifies a packed OneTextureBlend parameter for the fragment
// shader: 0 when no factor reads alpha, 1 when alpha comes from the vertex
// color, 2 when it comes from the texture.
func BlendType(param float32) int32 {
	b := UnpackBlendFunc(param)
	if !b.HasAlpha() {
		return 0
	}
	switch b.AlphaSource {
	case AlphaSourceVertexColor:
		return 1
	case AlphaSourceTexture:
		return 2
	default:
		return 0
	}
}
