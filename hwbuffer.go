package gl3

import (
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gl3/gl"
	"github.com/gogpu/gl3/vertex"
)

// PrimitiveType is the kind of primitive a draw assembles.
type PrimitiveType uint8

const (
	PrimitivePoints PrimitiveType = iota
	PrimitiveLineStrip
	PrimitiveLineLoop
	PrimitiveLines
	PrimitiveTriangleStrip
	PrimitiveTriangleFan
	PrimitiveTriangles
)

// Topology returns the gputypes topology of p. Line loops and triangle
// fans have none and report false.
func (p PrimitiveType) Topology() (gputypes.PrimitiveTopology, bool) {
	switch p {
	case PrimitivePoints:
		return gputypes.PrimitiveTopologyPointList, true
	case PrimitiveLineStrip:
		return gputypes.PrimitiveTopologyLineStrip, true
	case PrimitiveLines:
		return gputypes.PrimitiveTopologyLineList, true
	case PrimitiveTriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip, true
	case PrimitiveTriangles:
		return gputypes.PrimitiveTopologyTriangleList, true
	default:
		return gputypes.PrimitiveTopologyTriangleList, false
	}
}

// IndexCount returns the number of indices primitives of type p consume.
func (p PrimitiveType) IndexCount(primitives int) int {
	switch p {
	case PrimitivePoints, PrimitiveLineLoop:
		return primitives
	case PrimitiveLineStrip:
		return primitives + 1
	case PrimitiveLines:
		return primitives * 2
	case PrimitiveTriangleStrip, PrimitiveTriangleFan:
		return primitives + 2
	default:
		return primitives * 3
	}
}

// PrimitiveCount is the inverse of IndexCount.
func (p PrimitiveType) PrimitiveCount(indices int) int {
	var n int
	switch p {
	case PrimitivePoints, PrimitiveLineLoop:
		n = indices
	case PrimitiveLineStrip:
		n = indices - 1
	case PrimitiveLines:
		n = indices / 2
	case PrimitiveTriangleStrip, PrimitiveTriangleFan:
		n = indices - 2
	default:
		n = indices / 3
	}
	return max(n, 0)
}

// MappingHint says how a mesh buffer side is kept on the GPU.
type MappingHint uint8

const (
	// MappingNever keeps the data on the client; it is streamed per draw.
	MappingNever MappingHint = iota
	MappingStatic
	MappingDynamic
	MappingStream
)

// BufferType selects the vertex side, the index side or both.
type BufferType uint8

const (
	BufferNone BufferType = iota
	BufferVertex
	BufferIndex
	BufferVertexAndIndex
)

// MeshBuffer is geometry the driver can draw and map to GPU buffers.
// Implementations must be comparable; pointer types are.
type MeshBuffer interface {
	VertexKind() vertex.Kind
	VertexData() []byte
	VertexCount() int

	IndexFormat() gputypes.IndexFormat
	IndexData() []byte
	IndexCount() int

	PrimitiveType() PrimitiveType
	PrimitiveCount() int

	VertexMappingHint() MappingHint
	IndexMappingHint() MappingHint
	// VertexChangedID and IndexChangedID grow every time the data of that
	// side changes.
	VertexChangedID() uint32
	IndexChangedID() uint32
}

// Mesh is a MeshBuffer of vertices of type V. 32-bit indices are used
// when Indices32 is set, Indices otherwise.
type Mesh[V vertex.Vertex] struct {
	Vertices  []V
	Indices   []uint16
	Indices32 []uint32
	Primitive PrimitiveType

	VertexHint MappingHint
	IndexHint  MappingHint

	vertexID uint32
	indexID  uint32

	vertexBytes   []byte
	vertexBytesID uint32
	indexBytes    []byte
	indexBytesID  uint32
}

// NewMesh returns a mesh drawn as triangles unless p says otherwise.
func NewMesh[V vertex.Vertex](vertices []V, indices []uint16, p PrimitiveType) *Mesh[V] {
	return &Mesh[V]{Vertices: vertices, Indices: indices, Primitive: p, vertexID: 1, indexID: 1}
}

// SetDirty marks a side as changed so mapped buffers get uploaded again.
func (m *Mesh[V]) SetDirty(which BufferType) {
	if which == BufferVertex || which == BufferVertexAndIndex {
		m.vertexID++
	}
	if which == BufferIndex || which == BufferVertexAndIndex {
		m.indexID++
	}
}

// SetHardwareMappingHint sets the mapping hint of one or both sides.
func (m *Mesh[V]) SetHardwareMappingHint(h MappingHint, which BufferType) {
	if which == BufferVertex || which == BufferVertexAndIndex {
		m.VertexHint = h
	}
	if which == BufferIndex || which == BufferVertexAndIndex {
		m.IndexHint = h
	}
}

// VertexKind returns the layout of V.
func (m *Mesh[V]) VertexKind() vertex.Kind {
	var v V
	return v.Kind()
}

// VertexData returns the vertices encoded for upload. The encoding is
// cached until the vertex side is marked dirty.
func (m *Mesh[V]) VertexData() []byte {
	if m.vertexBytes == nil || m.vertexBytesID != m.vertexID {
		m.vertexBytes = vertex.Encode(m.Vertices)
		m.vertexBytesID = m.vertexID
	}
	return m.vertexBytes
}

// VertexCount returns the number of vertices.
func (m *Mesh[V]) VertexCount() int { return len(m.Vertices) }

// IndexFormat reports 32-bit indices when Indices32 is set.
func (m *Mesh[V]) IndexFormat() gputypes.IndexFormat {
	if m.Indices32 != nil {
		return gputypes.IndexFormatUint32
	}
	return gputypes.IndexFormatUint16
}

// IndexData returns the indices encoded for upload.
func (m *Mesh[V]) IndexData() []byte {
	if m.indexBytes == nil || m.indexBytesID != m.indexID {
		if m.Indices32 != nil {
			m.indexBytes = vertex.EncodeIndices32(m.Indices32)
		} else {
			m.indexBytes = vertex.EncodeIndices16(m.Indices)
		}
		m.indexBytesID = m.indexID
	}
	return m.indexBytes
}

// IndexCount returns the number of indices, 0 for non-indexed meshes.
func (m *Mesh[V]) IndexCount() int {
	if m.Indices32 != nil {
		return len(m.Indices32)
	}
	return len(m.Indices)
}

// PrimitiveType returns the topology the mesh is drawn with.
func (m *Mesh[V]) PrimitiveType() PrimitiveType { return m.Primitive }

// PrimitiveCount returns the number of primitives a draw emits.
func (m *Mesh[V]) PrimitiveCount() int {
	n := m.IndexCount()
	if n == 0 {
		n = len(m.Vertices)
	}
	return m.Primitive.PrimitiveCount(n)
}

// VertexMappingHint returns the mapping hint of the vertex side.
func (m *Mesh[V]) VertexMappingHint() MappingHint { return m.VertexHint }

// IndexMappingHint returns the mapping hint of the index side.
func (m *Mesh[V]) IndexMappingHint() MappingHint { return m.IndexHint }

// VertexChangedID changes whenever the vertex side is marked dirty.
func (m *Mesh[V]) VertexChangedID() uint32 { return m.vertexID }

// IndexChangedID changes whenever the index side is marked dirty.
func (m *Mesh[V]) IndexChangedID() uint32 { return m.indexID }

// BufferState is the life cycle state of a HardwareBuffer.
type BufferState uint8

const (
	// BufferUnbound has no GPU objects yet.
	BufferUnbound BufferState = iota
	// BufferBound holds the current data of its mesh buffer.
	BufferBound
	// BufferStale holds data older than its mesh buffer.
	BufferStale
	// BufferDestroyed was removed; its objects are gone.
	BufferDestroyed
)

func (s BufferState) String() string {
	switch s {
	case BufferUnbound:
		return "unbound"
	case BufferBound:
		return "bound"
	case BufferStale:
		return "stale"
	default:
		return "destroyed"
	}
}

// HardwareBuffer links a mesh buffer to the GPU buffer objects holding
// its data. The driver owns it.
type HardwareBuffer struct {
	mesh       MeshBuffer
	vertexHint MappingHint
	indexHint  MappingHint

	vertexID uint32
	indexID  uint32

	vbo     gl.Buffer
	ibo     gl.Buffer
	vboSize int
	iboSize int

	destroyed bool
}

// Mesh returns the mesh buffer hb mirrors.
func (hb *HardwareBuffer) Mesh() MeshBuffer { return hb.mesh }

// State reports whether hb is current with its mesh buffer.
func (hb *HardwareBuffer) State() BufferState {
	switch {
	case hb.destroyed:
		return BufferDestroyed
	case hb.vbo == 0 && hb.ibo == 0:
		return BufferUnbound
	case hb.vertexHint != MappingNever && hb.vertexID != hb.mesh.VertexChangedID(),
		hb.indexHint != MappingNever && hb.indexID != hb.mesh.IndexChangedID():
		return BufferStale
	default:
		return BufferBound
	}
}

// CreateHardwareBuffer maps mb to GPU buffers and uploads it. It returns
// nil when neither side of mb asks for mapping or the first upload fails.
// A mesh buffer that already has a hardware buffer gets the existing one.
func (d *Driver) CreateHardwareBuffer(mb MeshBuffer) *HardwareBuffer {
	if mb == nil {
		return nil
	}
	if mb.VertexMappingHint() == MappingNever && mb.IndexMappingHint() == MappingNever {
		return nil
	}
	if hb, ok := d.hwBuffers[mb]; ok {
		return hb
	}

	hb := &HardwareBuffer{
		mesh:       mb,
		vertexHint: mb.VertexMappingHint(),
		indexHint:  mb.IndexMappingHint(),
		vertexID:   mb.VertexChangedID(),
		indexID:    mb.IndexChangedID(),
	}
	d.hwBuffers[mb] = hb
	if !d.UpdateHardwareBuffer(hb) {
		d.deleteHardwareBuffer(hb)
		return nil
	}
	return hb
}

// UpdateHardwareBuffer uploads every mapped side of hb whose data changed
// or that has no buffer yet. A side whose upload fails keeps its old change
// ID, so it stays stale and is retried by the next update.
func (d *Driver) UpdateHardwareBuffer(hb *HardwareBuffer) bool {
	if hb == nil || hb.destroyed {
		return false
	}
	mb := hb.mesh

	if hb.vertexHint != MappingNever && (hb.vertexID != mb.VertexChangedID() || hb.vbo == 0) {
		id := mb.VertexChangedID()
		if !d.uploadBuffer(gl.ArrayBuffer, &hb.vbo, &hb.vboSize, mb.VertexData(), hb.vertexHint) {
			return false
		}
		hb.vertexID = id
	}
	if hb.indexHint != MappingNever && (hb.indexID != mb.IndexChangedID() || hb.ibo == 0) {
		if f := mb.IndexFormat(); f != gputypes.IndexFormatUint16 && f != gputypes.IndexFormatUint32 {
			return false
		}
		id := mb.IndexChangedID()
		if !d.uploadBuffer(gl.ElementArrayBuffer, &hb.ibo, &hb.iboSize, mb.IndexData(), hb.indexHint) {
			return false
		}
		hb.indexID = id
	}
	return true
}

// uploadBuffer writes data to the buffer at *handle, creating it or
// growing it when needed.
func (d *Driver) uploadBuffer(target gl.Enum, handle *gl.Buffer, size *int, data []byte, hint MappingHint) bool {
	create := false
	if *handle == 0 {
		*handle = d.gl.GenBuffer()
		if *handle == 0 {
			return false
		}
		create = true
	} else if *size < len(data) {
		create = true
	}

	d.state.BindBuffer(target, *handle)
	if create {
		usage := gl.DynamicDraw
		if hint == MappingStatic {
			usage = gl.StaticDraw
		}
		d.gl.BufferData(target, len(data), data, usage)
		*size = len(data)
	} else {
		d.gl.BufferSubData(target, 0, data)
	}
	d.state.BindBuffer(target, 0)

	d.stats.Uploads++
	d.log.Debug("gl3: buffer upload", slog.Int("bytes", len(data)), slog.Bool("alloc", create))
	if d.checkBasic("uploadBuffer") {
		if create {
			// Storage is unknown; the retry reallocates.
			*size = 0
		}
		return false
	}
	return true
}

// DrawHardwareBuffer brings hb up to date and draws it. Sides that are
// not mapped are streamed. Nothing is drawn when the update fails.
func (d *Driver) DrawHardwareBuffer(hb *HardwareBuffer) {
	if hb == nil || hb.destroyed {
		return
	}
	if !d.UpdateHardwareBuffer(hb) {
		return
	}
	mb := hb.mesh

	src := drawSource{
		vertices:    mb.VertexData(),
		vertexCount: mb.VertexCount(),
		indices:     mb.IndexData(),
		vbo:         hb.vbo,
		ibo:         hb.ibo,
	}
	if hb.vertexHint == MappingNever {
		src.vbo = 0
	}
	if hb.indexHint == MappingNever {
		src.ibo = 0
	}
	if mb.IndexCount() == 0 {
		src.indices, src.ibo = nil, 0
	}
	d.drawPrimitiveList(src, mb.PrimitiveCount(), mb.VertexKind(), mb.PrimitiveType(), mb.IndexFormat())
	d.state.BindBuffer(gl.ArrayBuffer, 0)
	d.state.BindBuffer(gl.ElementArrayBuffer, 0)
}

// DrawMeshBuffer draws mb, through its hardware buffer when it asks for
// mapping and from client memory otherwise.
func (d *Driver) DrawMeshBuffer(mb MeshBuffer) {
	if mb == nil {
		return
	}
	if mb.VertexMappingHint() != MappingNever || mb.IndexMappingHint() != MappingNever {
		hb := d.hwBuffers[mb]
		if hb == nil {
			hb = d.CreateHardwareBuffer(mb)
		}
		if hb != nil {
			d.DrawHardwareBuffer(hb)
			return
		}
	}
	d.DrawVertexPrimitiveList(mb.VertexData(), mb.VertexCount(), mb.IndexData(),
		mb.PrimitiveCount(), mb.VertexKind(), mb.PrimitiveType(), mb.IndexFormat())
}

// HardwareBuffer returns the hardware buffer of mb, or nil.
func (d *Driver) HardwareBuffer(mb MeshBuffer) *HardwareBuffer {
	return d.hwBuffers[mb]
}

// RemoveHardwareBuffer deletes the GPU buffers of mb.
func (d *Driver) RemoveHardwareBuffer(mb MeshBuffer) {
	if hb, ok := d.hwBuffers[mb]; ok {
		d.deleteHardwareBuffer(hb)
	}
}

// RemoveAllHardwareBuffers deletes every hardware buffer.
func (d *Driver) RemoveAllHardwareBuffers() {
	for _, hb := range d.hwBuffers {
		d.deleteHardwareBuffer(hb)
	}
}

func (d *Driver) deleteHardwareBuffer(hb *HardwareBuffer) {
	if hb.vbo != 0 {
		d.state.DeleteBuffer(hb.vbo)
		hb.vbo = 0
	}
	if hb.ibo != 0 {
		d.state.DeleteBuffer(hb.ibo)
		hb.ibo = 0
	}
	hb.destroyed = true
	delete(d.hwBuffers, hb.mesh)
}
