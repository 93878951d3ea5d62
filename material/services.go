package material

import "github.com/gogpu/gl3/core"

// TransformState names one of the driver transforms.
type TransformState uint8

const (
	TransformView TransformState = iota
	TransformWorld
	TransformProjection
	TransformTexture0
	TransformTexture1
	TransformTexture2
	TransformTexture3

	TransformCount
)

// TextureTransform returns the texture transform slot of layer i.
func TextureTransform(i int) TransformState {
	return TransformTexture0 + TransformState(i)
}

// FogType selects the fog falloff.
type FogType int32

const (
	FogExp FogType = iota
	FogLinear
	FogExp2
)

// Fog is the driver-wide fog state.
type Fog struct {
	Color    core.Color
	Type     FogType
	Start    float32
	End      float32
	Density  float32
	PixelFog bool
	RangeFog bool
}

// DefaultFog returns the fog state a driver starts with.
func DefaultFog() Fog {
	return Fog{
		Color:   core.ARGB(0, 255, 255, 255),
		Type:    FogLinear,
		Start:   50,
		End:     100,
		Density: 0.01,
	}
}

// VideoDriver is the read-only view of the driver that constant callbacks
// pull per-draw values from.
type VideoDriver interface {
	Transform(state TransformState) core.Matrix4
	Fog() Fog
	AmbientLight() core.ColorF
}

// NotFound is the constant handle returned for unknown names.
const NotFound = -1

// Services is handed to constant callbacks while a shader program is
// active. Handles come from the ID methods and are -1 for names the program
// does not use; setters given -1 do nothing and report false.
type Services interface {
	VertexShaderConstantID(name string) int
	PixelShaderConstantID(name string) int

	SetVertexShaderConstantF(id int, values []float32) bool
	SetVertexShaderConstantI(id int, values []int32) bool
	SetVertexShaderConstantU(id int, values []uint32) bool

	SetPixelShaderConstantF(id int, values []float32) bool
	SetPixelShaderConstantI(id int, values []int32) bool
	SetPixelShaderConstantU(id int, values []uint32) bool

	VideoDriver() VideoDriver
}

// ConstantCallback supplies shader constants for a material renderer.
type ConstantCallback interface {
	// OnSetMaterial snapshots the material about to become active. It must
	// not touch GPU state.
	OnSetMaterial(m *Material)
	// OnSetConstants uploads constants before a draw.
	OnSetConstants(s Services, userData int)
}
