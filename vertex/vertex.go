// Package vertex holds the vertex format descriptor table.
//
// Every vertex layout the driver can draw is described once, at package
// initialization, by a [Type]: a byte stride and an ordered list of
// attribute bindings. The draw path walks that list to enable and point
// vertex attributes, so there is no per-layout branching at draw time.
// Types are immutable and shared by pointer.
package vertex

import (
	"fmt"
	"iter"

	"github.com/gogpu/gl3/gl"
	"github.com/gogpu/gputypes"
)

// Kind identifies a vertex layout.
type Kind uint8

const (
	// KindStandard is position, normal, color and one texture coordinate.
	KindStandard Kind = iota
	// KindTwoTCoords adds a second texture coordinate.
	KindTwoTCoords
	// KindTangents adds tangent and binormal for normal mapping.
	KindTangents
	// KindImage2D is the layout used by textured 2D draws.
	KindImage2D
	// KindPrimitive is the layout used by untextured 2D and line draws.
	KindPrimitive

	kindCount
)

// String returns the layout name.
func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "Standard"
	case KindTwoTCoords:
		return "TwoTCoords"
	case KindTangents:
		return "Tangents"
	case KindImage2D:
		return "Image2D"
	case KindPrimitive:
		return "Primitive"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Semantic is the attribute location a vertex input is bound to. Shader
// programs bind their inputs to these locations by name before linking.
type Semantic uint32

const (
	Position Semantic = iota
	Normal
	Color
	TexCoord0
	TexCoord1
	Tangent
	Binormal

	// SemanticCount is the number of attribute locations in use.
	SemanticCount
)

var semanticNames = [SemanticCount]string{
	Position:  "inVertexPosition",
	Normal:    "inVertexNormal",
	Color:     "inVertexColor",
	TexCoord0: "inTexCoord0",
	TexCoord1: "inTexCoord1",
	Tangent:   "inVertexTangent",
	Binormal:  "inVertexBinormal",
}

// AttributeName returns the shader input name bound to s.
func (s Semantic) AttributeName() string {
	if s >= SemanticCount {
		return ""
	}
	return semanticNames[s]
}

// Mode selects how integer components reach the shader.
type Mode uint8

const (
	// Regular passes the components as they are, converted to float.
	Regular Mode = iota
	// Normalized maps unsigned integers to [0,1].
	Normalized
	// Integral keeps integer components as integers.
	Integral
)

// Attribute binds one vertex input.
type Attribute struct {
	Semantic   Semantic
	Components int32
	Type       gl.Enum
	Mode       Mode
	Offset     int
}

// Format returns the gputypes vertex format equivalent to the attribute.
func (a Attribute) Format() gputypes.VertexFormat {
	switch {
	case a.Type == gl.Float && a.Components == 2:
		return gputypes.VertexFormatFloat32x2
	case a.Type == gl.Float && a.Components == 3:
		return gputypes.VertexFormatFloat32x3
	case a.Type == gl.Float && a.Components == 4:
		return gputypes.VertexFormatFloat32x4
	case a.Type == gl.UnsignedByte && a.Components == 4 && a.Mode == Normalized:
		return gputypes.VertexFormatUnorm8x4
	default:
		return gputypes.VertexFormatFloat32
	}
}

// Type describes one vertex layout.
type Type struct {
	kind   Kind
	stride int
	attrs  []Attribute
}

// Kind returns the layout identifier.
func (t *Type) Kind() Kind { return t.kind }

// Stride returns the size of one vertex in bytes.
func (t *Type) Stride() int { return t.stride }

// Len returns the number of attributes.
func (t *Type) Len() int { return len(t.attrs) }

// Attributes yields the attribute bindings in declaration order.
func (t *Type) Attributes() iter.Seq[Attribute] {
	return func(yield func(Attribute) bool) {
		for _, a := range t.attrs {
			if !yield(a) {
				return
			}
		}
	}
}

// Layout returns the equivalent gputypes buffer layout.
func (t *Type) Layout() gputypes.VertexBufferLayout {
	attrs := make([]gputypes.VertexAttribute, 0, len(t.attrs))
	for _, a := range t.attrs {
		attrs = append(attrs, gputypes.VertexAttribute{
			ShaderLocation: uint32(a.Semantic),
			Format:         a.Format(),
			Offset:         uint64(a.Offset),
		})
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: uint64(t.stride),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attrs,
	}
}

var (
	positionAttr = Attribute{Position, 3, gl.Float, Regular, 0}
	normalAttr   = Attribute{Normal, 3, gl.Float, Regular, 12}
	colorAttr    = Attribute{Color, 4, gl.UnsignedByte, Normalized, 24}
	tcoord0Attr  = Attribute{TexCoord0, 2, gl.Float, Regular, 28}
)

var types = [kindCount]*Type{
	KindStandard: {
		kind:   KindStandard,
		stride: StandardSize,
		attrs:  []Attribute{positionAttr, normalAttr, colorAttr, tcoord0Attr},
	},
	KindTwoTCoords: {
		kind:   KindTwoTCoords,
		stride: TwoTCoordsSize,
		attrs: []Attribute{positionAttr, normalAttr, colorAttr, tcoord0Attr,
			{TexCoord1, 2, gl.Float, Regular, 36}},
	},
	KindTangents: {
		kind:   KindTangents,
		stride: TangentsSize,
		attrs: []Attribute{positionAttr, normalAttr, colorAttr, tcoord0Attr,
			{Tangent, 3, gl.Float, Regular, 36},
			{Binormal, 3, gl.Float, Regular, 48}},
	},
	KindImage2D: {
		kind:   KindImage2D,
		stride: StandardSize,
		attrs:  []Attribute{positionAttr, colorAttr, tcoord0Attr},
	},
	KindPrimitive: {
		kind:   KindPrimitive,
		stride: StandardSize,
		attrs:  []Attribute{positionAttr, colorAttr},
	},
}

// Describe returns the descriptor for k. It panics on an unknown kind,
// which can only come from a conversion of an arbitrary integer.
func Describe(k Kind) *Type {
	if k >= kindCount {
		panic(fmt.Sprintf("vertex: unknown kind %d", k))
	}
	return types[k]
}

// Kinds returns all layout identifiers.
func Kinds() []Kind {
	return []Kind{KindStandard, KindTwoTCoords, KindTangents, KindImage2D, KindPrimitive}
}
