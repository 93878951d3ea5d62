// Package material describes how a primitive is rendered and provides the
// shader constant callbacks of the built-in material types.
//
// A [Material] is a plain comparable value. The driver keeps the material
// that was applied last and compares it with the next one to decide which
// GPU state has to change. Callbacks implementing [ConstantCallback] are
// attached to shader programs; they snapshot material fields when a
// material is set and upload shader constants through [Services] before
// every draw.
package material

import (
	"fmt"
	"image"

	"github.com/gogpu/gl3/core"
	"github.com/gogpu/gputypes"
)

// MaxTextures is the number of texture layers a material carries.
const MaxTextures = 4

// Type selects the renderer that draws a material. Built-in types are
// registered by every driver in this order, so their values are stable.
// Custom renderers get the values that follow.
type Type int32

const (
	Solid Type = iota
	Solid2Layer
	Lightmap
	LightmapAdd
	LightmapM2
	LightmapM4
	LightmapLighting
	LightmapLightingM2
	LightmapLightingM4
	DetailMap
	SphereMap
	Reflection2Layer
	TransparentAddColor
	TransparentAlphaChannel
	TransparentAlphaChannelRef
	TransparentVertexAlpha
	TransparentReflection2Layer
	OneTextureBlend

	// BuiltinCount is the number of built-in material types.
	BuiltinCount
)

var typeNames = [BuiltinCount]string{
	"solid", "solid_2layer", "lightmap", "lightmap_add", "lightmap_m2",
	"lightmap_m4", "lightmap_light", "lightmap_light_m2", "lightmap_light_m4",
	"detail_map", "sphere_map", "reflection_2layer", "trans_add", "trans_alphach",
	"trans_alphach_ref", "trans_vertex_alpha", "trans_reflection_2layer",
	"onetexture_blend",
}

// String returns the registration name of a built-in type.
func (t Type) String() string {
	if t >= 0 && t < BuiltinCount {
		return typeNames[t]
	}
	return fmt.Sprintf("custom_%d", int32(t))
}

// ZWriteMode controls depth buffer writes.
type ZWriteMode uint8

const (
	// ZWriteOff never writes depth.
	ZWriteOff ZWriteMode = iota
	// ZWriteAuto writes depth unless the material is drawn in the
	// transparent pass.
	ZWriteAuto
	// ZWriteOn always writes depth.
	ZWriteOn
)

// BlendOperation is the blend equation applied when blending is enabled.
type BlendOperation uint8

const (
	BlendOpNone BlendOperation = iota
	BlendOpAdd
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// AntiAliasingMode is a set of anti-aliasing flags.
type AntiAliasingMode uint8

const (
	AntiAliasingSimple AntiAliasingMode = 1 << iota
	AntiAliasingLineSmooth
	AntiAliasingAlphaToCoverage

	AntiAliasingOff AntiAliasingMode = 0
)

// Texture is the part of a driver texture a material needs. Only textures
// created by the driver drawing the material can be bound.
type Texture interface {
	Name() string
	Size() image.Point
}

// TextureLayer holds one texture binding and its sampling state.
type TextureLayer struct {
	Texture Texture

	WrapU gputypes.AddressMode
	WrapV gputypes.AddressMode
	WrapW gputypes.AddressMode

	MagFilter    gputypes.FilterMode
	MinFilter    gputypes.FilterMode
	MipmapFilter gputypes.FilterMode

	// AnisotropicFilter is the maximum anisotropy; values below 2 disable it.
	AnisotropicFilter uint8
	LODBias           int8

	// Matrix is the texture coordinate transform. The zero matrix means
	// identity.
	Matrix core.Matrix4
}

// TextureMatrix returns the layer transform, substituting identity for the
// zero matrix.
func (l *TextureLayer) TextureMatrix() core.Matrix4 {
	if l.Matrix.IsZero() {
		return core.Identity()
	}
	return l.Matrix
}

// DefaultTextureLayer returns a layer with repeat wrapping and bilinear
// filtering.
func DefaultTextureLayer() TextureLayer {
	return TextureLayer{
		WrapU:        gputypes.AddressModeRepeat,
		WrapV:        gputypes.AddressModeRepeat,
		WrapW:        gputypes.AddressModeRepeat,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeNearest,
		Matrix:       core.Identity(),
	}
}

// Material is the complete per-draw render state description.
type Material struct {
	TextureLayers [MaxTextures]TextureLayer

	Type Type
	// TypeParam is interpreted by the material type: the alpha reference of
	// the solid types, or the packed blend function of OneTextureBlend.
	TypeParam  float32
	TypeParam2 float32

	AmbientColor  core.Color
	DiffuseColor  core.Color
	EmissiveColor core.Color
	SpecularColor core.Color
	Shininess     float32

	// Thickness is the line width used for wireframe and line draws.
	Thickness float32

	// ZBuffer is the depth comparison. CompareFunctionUndefined disables
	// the depth test.
	ZBuffer gputypes.CompareFunction
	ZWrite  ZWriteMode

	ColorMask gputypes.ColorWriteMask

	BlendOperation BlendOperation
	// BlendFactor is a blend function packed with PackBlendFunc. Zero
	// leaves the blend function to the renderer.
	BlendFactor float32

	AntiAliasing AntiAliasingMode

	Lighting         bool
	Wireframe        bool
	PointCloud       bool
	GouraudShading   bool
	FogEnable        bool
	NormalizeNormals bool
	BackfaceCulling  bool
	FrontfaceCulling bool
	UseMipMaps       bool
}

// New returns a material with the engine defaults: solid, lit, depth
// tested with less-or-equal, back faces culled, all color channels written.
func New() Material {
	m := Material{
		Type:            Solid,
		AmbientColor:    core.White,
		DiffuseColor:    core.White,
		EmissiveColor:   core.Black,
		SpecularColor:   core.White,
		Thickness:       1,
		ZBuffer:         gputypes.CompareFunctionLessEqual,
		ZWrite:          ZWriteAuto,
		ColorMask:       gputypes.ColorWriteMaskAll,
		BlendOperation:  BlendOpNone,
		AntiAliasing:    AntiAliasingSimple,
		Lighting:        true,
		GouraudShading:  true,
		BackfaceCulling: true,
		UseMipMaps:      true,
	}
	for i := range m.TextureLayers {
		m.TextureLayers[i] = DefaultTextureLayer()
	}
	return m
}

// Texture returns the texture of layer i, or nil when i is out of range.
func (m *Material) Texture(i int) Texture {
	if i < 0 || i >= MaxTextures {
		return nil
	}
	return m.TextureLayers[i].Texture
}

// SetTexture sets the texture of layer i. Out of range layers are ignored.
func (m *Material) SetTexture(i int, t Texture) {
	if i < 0 || i >= MaxTextures {
		return
	}
	m.TextureLayers[i].Texture = t
}

// IsAlphaBlendOperation reports whether the explicit blend state of the
// material blends with an alpha factor.
func (m *Material) IsAlphaBlendOperation() bool {
	if m.BlendOperation == BlendOpNone || m.BlendFactor == 0 {
		return false
	}
	return UnpackBlendFunc(m.BlendFactor).HasAlpha()
}
