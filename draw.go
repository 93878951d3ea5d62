package gl3

import (
	"log/slog"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/gl3/core"
	"github.com/gogpu/gl3/gl"
	"github.com/gogpu/gl3/vertex"
)

// maxPrimitives is the primitive count limit of one draw.
const maxPrimitives = 65535

// streamBuffer is a driver-owned buffer client arrays are copied into
// before a draw.
type streamBuffer struct {
	handle gl.Buffer
	size   int
}

// upload binds the buffer to target and fills it with data.
func (b *streamBuffer) upload(d *Driver, target gl.Enum, data []byte) bool {
	if b.handle == 0 {
		b.handle = d.gl.GenBuffer()
		if b.handle == 0 {
			d.log.Error("gl3: stream buffer allocation failed")
			return false
		}
	}
	d.state.BindBuffer(target, b.handle)
	if len(data) > b.size {
		b.size = max(len(data), 2*b.size)
		d.gl.BufferData(target, b.size, nil, gl.StreamDraw)
	}
	d.gl.BufferSubData(target, 0, data)
	return true
}

func (b *streamBuffer) delete(s *StateCache) {
	if b.handle != 0 {
		s.DeleteBuffer(b.handle)
		b.handle, b.size = 0, 0
	}
}

// drawSource says where the vertices and indices of a draw come from. A
// non-zero vbo or ibo is used as is; otherwise the client data is
// streamed.
type drawSource struct {
	vertices    []byte
	vertexCount int
	indices     []byte
	vbo         gl.Buffer
	ibo         gl.Buffer
}

func (s drawSource) hasIndices() bool {
	return s.ibo != 0 || len(s.indices) > 0
}

// DrawVertexPrimitiveList draws primitives from client memory. vertices
// holds vertexCount vertices of layout kind; indices may be empty, in
// which case the vertices are drawn in order.
func (d *Driver) DrawVertexPrimitiveList(vertices []byte, vertexCount int, indices []byte, primitiveCount int,
	kind vertex.Kind, ptype PrimitiveType, itype gputypes.IndexFormat) {
	d.drawPrimitiveList(drawSource{vertices: vertices, vertexCount: vertexCount, indices: indices},
		primitiveCount, kind, ptype, itype)
}

func (d *Driver) drawPrimitiveList(src drawSource, primitiveCount int, kind vertex.Kind, ptype PrimitiveType, itype gputypes.IndexFormat) {
	if primitiveCount == 0 || src.vertexCount == 0 {
		return
	}
	if primitiveCount > maxPrimitives {
		d.log.Warn("gl3: too many primitives in one draw",
			slog.Int("primitives", primitiveCount), slog.Int("max", maxPrimitives))
		return
	}

	indexType := gl.UnsignedShort
	if src.hasIndices() {
		switch itype {
		case gputypes.IndexFormatUint16:
		case gputypes.IndexFormatUint32:
			if !d.caps.ElementIndexUint() {
				d.log.Warn("gl3: 32-bit indices not supported by the context, draw skipped")
				return
			}
			indexType = gl.UnsignedInt
		default:
			return
		}
	}

	if !d.setRenderStates3DMode() {
		return
	}

	if src.vbo != 0 {
		d.state.BindBuffer(gl.ArrayBuffer, src.vbo)
	} else if !d.streamVBO.upload(d, gl.ArrayBuffer, src.vertices) {
		return
	}
	if src.ibo != 0 {
		d.state.BindBuffer(gl.ElementArrayBuffer, src.ibo)
	} else if len(src.indices) > 0 && !d.streamIBO.upload(d, gl.ElementArrayBuffer, src.indices) {
		return
	}

	vt := vertex.Describe(kind)
	d.beginDraw(vt, 0)
	defer d.endDraw(vt)

	count := int32(ptype.IndexCount(primitiveCount))
	var mode gl.Enum
	switch ptype {
	case PrimitivePoints:
		d.gl.DrawArrays(gl.Points, 0, int32(primitiveCount))
		d.countDraw(primitiveCount)
		return
	case PrimitiveLineStrip:
		mode = gl.LineStrip
	case PrimitiveLineLoop:
		mode = gl.LineLoop
	case PrimitiveLines:
		mode = gl.Lines
	case PrimitiveTriangleStrip:
		mode = gl.TriangleStrip
	case PrimitiveTriangleFan:
		mode = gl.TriangleFan
	default:
		switch {
		case d.lastMaterial.Wireframe:
			mode = gl.Lines
		case d.lastMaterial.PointCloud:
			mode = gl.Points
		default:
			mode = gl.Triangles
		}
	}

	if src.hasIndices() {
		d.gl.DrawElements(mode, count, indexType, 0)
	} else {
		d.gl.DrawArrays(mode, 0, count)
	}
	d.countDraw(primitiveCount)
}

func (d *Driver) countDraw(primitives int) {
	d.stats.DrawCalls++
	d.stats.Primitives += primitives
	d.checkFull("draw")
}

// beginDraw enables and points every attribute of vt at the bound array
// buffer, starting at base.
func (d *Driver) beginDraw(vt *vertex.Type, base int) {
	stride := int32(vt.Stride())
	for a := range vt.Attributes() {
		loc := gl.Attrib(a.Semantic)
		d.gl.EnableVertexAttribArray(loc)
		switch a.Mode {
		case vertex.Regular:
			d.gl.VertexAttribPointer(loc, a.Components, a.Type, false, stride, base+a.Offset)
		case vertex.Normalized:
			d.gl.VertexAttribPointer(loc, a.Components, a.Type, true, stride, base+a.Offset)
		case vertex.Integral:
			d.gl.VertexAttribIPointer(loc, a.Components, a.Type, stride, base+a.Offset)
		}
	}
}

func (d *Driver) endDraw(vt *vertex.Type) {
	for a := range vt.Attributes() {
		d.gl.DisableVertexAttribArray(gl.Attrib(a.Semantic))
	}
}

// Draw3DLine draws a line in world space with the current material.
func (d *Driver) Draw3DLine(start, end f32.Vec3, color core.Color) {
	verts := []vertex.Standard{
		{Pos: start, Color: color},
		{Pos: end, Color: color},
	}
	d.DrawVertexPrimitiveList(vertex.Encode(verts), 2, nil, 1, vertex.KindStandard, PrimitiveLines, gputypes.IndexFormatUint16)
}

// drawArrays2D streams vertices and draws them in order. The 2D render
// state must already be set.
func (d *Driver) drawArrays2D(mode gl.Enum, kind vertex.Kind, verts []vertex.Standard) {
	if !d.streamVBO.upload(d, gl.ArrayBuffer, vertex.Encode(verts)) {
		return
	}
	vt := vertex.Describe(kind)
	d.beginDraw(vt, 0)
	defer d.endDraw(vt)
	d.gl.DrawArrays(mode, 0, int32(len(verts)))
	d.countDraw(1)
}

// drawQuads2D streams quads of four vertices each and draws them with the
// shared quad index buffer.
func (d *Driver) drawQuads2D(kind vertex.Kind, verts []vertex.Standard) {
	if d.quadIBO == 0 || !d.streamVBO.upload(d, gl.ArrayBuffer, vertex.Encode(verts)) {
		return
	}
	quads := len(verts) / 4
	d.state.BindBuffer(gl.ElementArrayBuffer, d.quadIBO)
	vt := vertex.Describe(kind)
	d.beginDraw(vt, 0)
	defer d.endDraw(vt)
	d.gl.DrawElements(gl.Triangles, int32(6*quads), gl.UnsignedShort, 0)
	d.countDraw(2 * quads)
}
