package vertex

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gl3/core"
	"golang.org/x/image/math/f32"
)

// Byte sizes of the vertex structs once encoded.
const (
	StandardSize   = 36
	TwoTCoordsSize = 44
	TangentsSize   = 60
)

// Vertex is implemented by the vertex structs below.
type Vertex interface {
	Kind() Kind
	// Append appends the encoded vertex to dst.
	Append(dst []byte) []byte
}

// Standard is a vertex with one texture coordinate.
type Standard struct {
	Pos     f32.Vec3
	Normal  f32.Vec3
	Color   core.Color
	TCoords f32.Vec2
}

// Kind implements Vertex.
func (Standard) Kind() Kind { return KindStandard }

// Append implements Vertex.
func (v Standard) Append(dst []byte) []byte {
	dst = appendVec3(dst, v.Pos)
	dst = appendVec3(dst, v.Normal)
	dst = binary.NativeEndian.AppendUint32(dst, uint32(v.Color))
	return appendVec2(dst, v.TCoords)
}

// TwoTCoords is a vertex with two texture coordinates.
type TwoTCoords struct {
	Standard
	TCoords2 f32.Vec2
}

// Kind implements Vertex.
func (TwoTCoords) Kind() Kind { return KindTwoTCoords }

// Append implements Vertex.
func (v TwoTCoords) Append(dst []byte) []byte {
	dst = v.Standard.Append(dst)
	return appendVec2(dst, v.TCoords2)
}

// Tangents is a vertex carrying a tangent frame.
type Tangents struct {
	Standard
	Tangent  f32.Vec3
	Binormal f32.Vec3
}

// Kind implements Vertex.
func (Tangents) Kind() Kind { return KindTangents }

// Append implements Vertex.
func (v Tangents) Append(dst []byte) []byte {
	dst = v.Standard.Append(dst)
	dst = appendVec3(dst, v.Tangent)
	return appendVec3(dst, v.Binormal)
}

// Encode encodes a vertex slice into one contiguous buffer.
func Encode[V Vertex](vs []V) []byte {
	if len(vs) == 0 {
		return nil
	}
	buf := make([]byte, 0, len(vs)*Describe(vs[0].Kind()).Stride())
	for _, v := range vs {
		buf = v.Append(buf)
	}
	return buf
}

// EncodeIndices16 encodes 16-bit indices.
func EncodeIndices16(idx []uint16) []byte {
	buf := make([]byte, 0, len(idx)*2)
	for _, i := range idx {
		buf = binary.NativeEndian.AppendUint16(buf, i)
	}
	return buf
}

// EncodeIndices32 encodes 32-bit indices.
func EncodeIndices32(idx []uint32) []byte {
	buf := make([]byte, 0, len(idx)*4)
	for _, i := range idx {
		buf = binary.NativeEndian.AppendUint32(buf, i)
	}
	return buf
}

func appendVec2(dst []byte, v f32.Vec2) []byte {
	dst = binary.NativeEndian.AppendUint32(dst, math.Float32bits(v[0]))
	return binary.NativeEndian.AppendUint32(dst, math.Float32bits(v[1]))
}

func appendVec3(dst []byte, v f32.Vec3) []byte {
	dst = appendVec2(dst, f32.Vec2{v[0], v[1]})
	return binary.NativeEndian.AppendUint32(dst, math.Float32bits(v[2]))
}
