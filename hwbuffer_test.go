package gl3

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/gl3/caps"
	"github.com/gogpu/gl3/core"
	"github.com/gogpu/gl3/gl"
	"github.com/gogpu/gl3/internal/glfake"
	"github.com/gogpu/gl3/material"
	"github.com/gogpu/gl3/vertex"
)

func triangle() []vertex.Standard {
	return []vertex.Standard{
		{Pos: f32.Vec3{0, 1, 0}},
		{Pos: f32.Vec3{1, -1, 0}},
		{Pos: f32.Vec3{-1, -1, 0}},
	}
}

func TestPrimitiveCounts(t *testing.T) {
	tests := []struct {
		p          PrimitiveType
		primitives int
		indices    int
	}{
		{PrimitivePoints, 5, 5},
		{PrimitiveLineStrip, 4, 5},
		{PrimitiveLineLoop, 5, 5},
		{PrimitiveLines, 3, 6},
		{PrimitiveTriangleStrip, 4, 6},
		{PrimitiveTriangleFan, 4, 6},
		{PrimitiveTriangles, 2, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.indices, tt.p.IndexCount(tt.primitives), "IndexCount %d", tt.p)
		assert.Equal(t, tt.primitives, tt.p.PrimitiveCount(tt.indices), "PrimitiveCount %d", tt.p)
	}
	assert.Zero(t, PrimitiveTriangleStrip.PrimitiveCount(1), "counts never go negative")
}

func TestPrimitiveTopology(t *testing.T) {
	topo, ok := PrimitiveTriangles.Topology()
	assert.True(t, ok)
	assert.Equal(t, gputypes.PrimitiveTopologyTriangleList, topo)

	_, ok = PrimitiveLineLoop.Topology()
	assert.False(t, ok)
	_, ok = PrimitiveTriangleFan.Topology()
	assert.False(t, ok)
}

func TestMeshChangeIDs(t *testing.T) {
	m := NewMesh(triangle(), []uint16{0, 1, 2}, PrimitiveTriangles)
	assert.Equal(t, uint32(1), m.VertexChangedID())
	assert.Equal(t, uint32(1), m.IndexChangedID())

	m.SetDirty(BufferVertex)
	assert.Equal(t, uint32(2), m.VertexChangedID())
	assert.Equal(t, uint32(1), m.IndexChangedID())

	m.SetDirty(BufferVertexAndIndex)
	assert.Equal(t, uint32(3), m.VertexChangedID())
	assert.Equal(t, uint32(2), m.IndexChangedID())

	assert.Equal(t, 1, m.PrimitiveCount())
	assert.Equal(t, gputypes.IndexFormatUint16, m.IndexFormat())
	assert.Len(t, m.VertexData(), 3*vertex.Describe(vertex.KindStandard).Stride())
	assert.Len(t, m.IndexData(), 6)

	m.Indices32 = []uint32{0, 1, 2}
	m.SetDirty(BufferIndex)
	assert.Equal(t, gputypes.IndexFormatUint32, m.IndexFormat())
	assert.Len(t, m.IndexData(), 12)
}

func TestHardwareBufferStaleness(t *testing.T) {
	d, g := newTestDriver(t, nil)
	m := NewMesh(triangle(), []uint16{0, 1, 2}, PrimitiveTriangles)
	m.SetHardwareMappingHint(MappingStatic, BufferVertexAndIndex)

	hb := d.CreateHardwareBuffer(m)
	require.NotNil(t, hb)
	assert.Equal(t, BufferBound, hb.State())
	assert.Same(t, hb, d.HardwareBuffer(m))
	assert.Same(t, hb, d.CreateHardwareBuffer(m), "a mesh buffer has one hardware buffer")
	assert.Equal(t, len(m.VertexData()), g.BufferSize(hb.vbo))
	assert.Equal(t, 6, g.BufferSize(hb.ibo))
	assert.Equal(t, 1, g.CountArgs("BufferData", gl.ArrayBuffer, len(m.VertexData()), gl.StaticDraw))
	assert.Equal(t, 1, g.CountArgs("BufferData", gl.ElementArrayBuffer, 6, gl.StaticDraw))

	m.Vertices[0].Pos = f32.Vec3{0, 2, 0}
	m.SetDirty(BufferVertex)
	assert.Equal(t, BufferStale, hb.State())

	g.Reset()
	require.True(t, d.UpdateHardwareBuffer(hb))
	assert.Equal(t, BufferBound, hb.State())
	assert.Equal(t, 1, g.Count("BufferSubData"), "same size data reuses the buffer")
	assert.Zero(t, g.Count("BufferData"))

	m.Vertices = append(m.Vertices, vertex.Standard{})
	m.SetDirty(BufferVertex)
	g.Reset()
	require.True(t, d.UpdateHardwareBuffer(hb))
	assert.Equal(t, 1, g.Count("BufferData"), "larger data reallocates")
	assert.Equal(t, len(m.VertexData()), g.BufferSize(hb.vbo))

	g.Reset()
	d.RemoveHardwareBuffer(m)
	assert.Equal(t, BufferDestroyed, hb.State())
	assert.Equal(t, 2, g.Count("DeleteBuffer"))
	assert.Nil(t, d.HardwareBuffer(m))
	assert.False(t, d.UpdateHardwareBuffer(hb))
}

func TestHardwareBufferDynamicUsage(t *testing.T) {
	d, g := newTestDriver(t, nil)
	m := NewMesh(triangle(), nil, PrimitiveTriangles)
	m.SetHardwareMappingHint(MappingDynamic, BufferVertex)
	g.Reset()

	hb := d.CreateHardwareBuffer(m)
	require.NotNil(t, hb)
	call, ok := g.Last("BufferData")
	require.True(t, ok)
	assert.Equal(t, gl.DynamicDraw, call.Args[2])
	assert.Zero(t, hb.ibo, "unmapped side has no buffer")
}

func TestCreateHardwareBufferRefused(t *testing.T) {
	t.Run("never mapped", func(t *testing.T) {
		d, _ := newTestDriver(t, nil)
		m := NewMesh(triangle(), []uint16{0, 1, 2}, PrimitiveTriangles)
		assert.Nil(t, d.CreateHardwareBuffer(m))
		assert.Nil(t, d.CreateHardwareBuffer(nil))
	})
	t.Run("allocation fails", func(t *testing.T) {
		d, _ := newTestDriver(t, func(g *glfake.GL) { g.FailBufferGen = true })
		m := NewMesh(triangle(), []uint16{0, 1, 2}, PrimitiveTriangles)
		m.SetHardwareMappingHint(MappingStatic, BufferVertexAndIndex)
		assert.Nil(t, d.CreateHardwareBuffer(m))
		assert.Nil(t, d.HardwareBuffer(m))
	})
}

func TestDrawMeshBuffer(t *testing.T) {
	tests := []struct {
		name string
		hint MappingHint
	}{
		{"mapped", MappingStatic},
		{"streamed", MappingNever},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, g := newTestDriver(t, nil)
			m := NewMesh(triangle(), []uint16{0, 1, 2}, PrimitiveTriangles)
			m.SetHardwareMappingHint(tt.hint, BufferVertexAndIndex)
			d.ResetStats()
			g.Reset()

			d.DrawMeshBuffer(m)
			assert.Equal(t, 1, g.CountArgs("DrawElements", gl.Triangles, int32(3), gl.UnsignedShort, 0))
			assert.Equal(t, 1, d.Stats().DrawCalls)
			assert.Equal(t, 1, d.Stats().Primitives)
			assert.Equal(t, tt.hint != MappingNever, d.HardwareBuffer(m) != nil)
		})
	}
}

func TestDrawMeshBufferWithoutIndices(t *testing.T) {
	d, g := newTestDriver(t, nil)
	m := NewMesh(triangle(), nil, PrimitiveTriangles)
	g.Reset()

	d.DrawMeshBuffer(m)
	assert.Equal(t, 1, g.CountArgs("DrawArrays", gl.Triangles, int32(0), int32(3)))
	assert.Zero(t, g.Count("DrawElements"))
}

func TestDrawWireframeAndPointCloud(t *testing.T) {
	tests := []struct {
		name string
		set  func(m *material.Material)
		mode gl.Enum
	}{
		{"solid", func(*material.Material) {}, gl.Triangles},
		{"wireframe", func(m *material.Material) { m.Wireframe = true }, gl.Lines},
		{"point cloud", func(m *material.Material) { m.PointCloud = true }, gl.Points},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, g := newTestDriver(t, nil)
			m := material.New()
			tt.set(&m)
			d.SetMaterial(m)
			g.Reset()

			drawTriangle(d)
			assert.Equal(t, 1, g.CountArgs("DrawArrays", tt.mode, int32(0), int32(3)))
		})
	}
}

func TestDraw3DLine(t *testing.T) {
	d, g := newTestDriver(t, nil)
	g.Reset()

	d.Draw3DLine(f32.Vec3{0, 0, 0}, f32.Vec3{1, 1, 1}, core.White)
	assert.Equal(t, 1, g.CountArgs("DrawArrays", gl.Lines, int32(0), int32(2)))
	assert.Equal(t, RenderMode3D, d.RenderMode())
	assert.Equal(t, 1, d.Stats().DrawCalls)
}

func TestDrawHardwareBufferUpdatesStaleData(t *testing.T) {
	d, g := newTestDriver(t, nil)
	m := NewMesh(triangle(), []uint16{0, 1, 2}, PrimitiveTriangles)
	m.SetHardwareMappingHint(MappingStatic, BufferVertexAndIndex)
	hb := d.CreateHardwareBuffer(m)
	require.NotNil(t, hb)

	m.SetDirty(BufferIndex)
	g.Reset()
	d.DrawHardwareBuffer(hb)
	assert.Equal(t, 1, g.CountArgs("BufferSubData", gl.ElementArrayBuffer))
	assert.Equal(t, 1, g.Count("DrawElements"))
	assert.Equal(t, BufferBound, hb.State())

	uploads := d.Stats().Uploads
	g.Reset()
	d.DrawHardwareBuffer(hb)
	assert.Equal(t, 1, g.Count("DrawElements"))
	assert.Zero(t, g.Count("BufferData"), "unchanged data is not uploaded again")
	assert.Zero(t, g.Count("BufferSubData"), "unchanged data is not uploaded again")
	assert.Equal(t, uploads, d.Stats().Uploads)
	assert.Equal(t, BufferBound, hb.State())
}

func TestHardwareBufferUploadFailureRetries(t *testing.T) {
	d, g := newTestDriver(t, nil)
	m := NewMesh(triangle(), []uint16{0, 1, 2}, PrimitiveTriangles)
	m.SetHardwareMappingHint(MappingStatic, BufferVertexAndIndex)
	hb := d.CreateHardwareBuffer(m)
	require.NotNil(t, hb)

	t.Run("sub data", func(t *testing.T) {
		m.SetDirty(BufferVertex)
		g.PushError(gl.OutOfMemory)
		assert.False(t, d.UpdateHardwareBuffer(hb))
		assert.Equal(t, BufferStale, hb.State(), "a failed upload leaves the buffer stale")

		g.Reset()
		require.True(t, d.UpdateHardwareBuffer(hb))
		assert.Equal(t, 1, g.CountArgs("BufferSubData", gl.ArrayBuffer))
		assert.Equal(t, BufferBound, hb.State())
	})

	t.Run("reallocation", func(t *testing.T) {
		m.Vertices = append(m.Vertices, vertex.Standard{})
		m.SetDirty(BufferVertex)
		g.PushError(gl.OutOfMemory)
		assert.False(t, d.UpdateHardwareBuffer(hb))
		assert.Equal(t, BufferStale, hb.State())

		g.Reset()
		require.True(t, d.UpdateHardwareBuffer(hb))
		assert.Equal(t, 1, g.CountArgs("BufferData", gl.ArrayBuffer, len(m.VertexData())), "the retry reallocates")
		assert.Zero(t, g.Count("BufferSubData"))
		assert.Equal(t, BufferBound, hb.State())
	})

	t.Run("draw skipped", func(t *testing.T) {
		m.SetDirty(BufferIndex)
		g.Reset()
		g.PushError(gl.OutOfMemory)
		d.DrawHardwareBuffer(hb)
		assert.Zero(t, g.Count("DrawElements"), "nothing is drawn from a failed update")
		assert.Equal(t, BufferStale, hb.State())

		g.Reset()
		d.DrawHardwareBuffer(hb)
		assert.Equal(t, 1, g.CountArgs("BufferSubData", gl.ElementArrayBuffer))
		assert.Equal(t, 1, g.Count("DrawElements"))
		assert.Equal(t, BufferBound, hb.State())
	})
}

func TestDraw32BitIndices(t *testing.T) {
	tests := []struct {
		name       string
		extensions []string
		want       int
	}{
		{"unsupported", nil, 0},
		{"extension", []string{string(caps.OESElementIndexUint)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, g := newTestDriver(t, func(g *glfake.GL) { g.Extensions = tt.extensions })
			m := NewMesh(triangle(), nil, PrimitiveTriangles)
			m.Indices32 = []uint32{0, 1, 2}
			d.ResetStats()
			g.Reset()

			d.DrawMeshBuffer(m)
			assert.Equal(t, tt.want, g.CountArgs("DrawElements", gl.Triangles, int32(3), gl.UnsignedInt, 0))
			assert.Equal(t, tt.want, d.Stats().DrawCalls)
		})
	}
}

func TestRemoveAllHardwareBuffers(t *testing.T) {
	d, _ := newTestDriver(t, nil)
	var hbs []*HardwareBuffer
	for range 3 {
		m := NewMesh(triangle(), []uint16{0, 1, 2}, PrimitiveTriangles)
		m.SetHardwareMappingHint(MappingStream, BufferVertexAndIndex)
		hbs = append(hbs, d.CreateHardwareBuffer(m))
	}

	d.RemoveAllHardwareBuffers()
	for _, hb := range hbs {
		assert.Equal(t, BufferDestroyed, hb.State())
	}
	assert.Empty(t, d.hwBuffers)
}
