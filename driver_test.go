package gl3

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/gl3/core"
	"github.com/gogpu/gl3/gl"
	"github.com/gogpu/gl3/internal/glfake"
	"github.com/gogpu/gl3/material"
	"github.com/gogpu/gl3/vertex"
)

// newTestDriver creates a driver on a fresh fake context. setup runs on
// the fake before the driver queries it.
func newTestDriver(t *testing.T, setup func(*glfake.GL), opts ...Option) (*Driver, *glfake.GL) {
	t.Helper()
	g := glfake.New()
	if setup != nil {
		setup(g)
	}
	d, err := New(g, opts...)
	require.NoError(t, err)
	t.Cleanup(d.Close)
	return d, g
}

// fakeContext is a ContextManager counting its calls.
type fakeContext struct {
	activateErr error
	swapErr     error

	activations int
	swaps       int
	terminated  bool
}

func (c *fakeContext) Activate() error {
	c.activations++
	return c.activateErr
}

func (c *fakeContext) SwapBuffers() error {
	c.swaps++
	return c.swapErr
}

func (c *fakeContext) Terminate() { c.terminated = true }

// recordingRenderer appends its callbacks to a shared log.
type recordingRenderer struct {
	name        string
	log         *[]string
	transparent bool
	refuse      bool
}

func (r *recordingRenderer) OnSetMaterial(m, last *material.Material, resetAll bool) {
	*r.log = append(*r.log, r.name+".set")
}

func (r *recordingRenderer) OnRender(vertex.Kind) bool {
	*r.log = append(*r.log, r.name+".render")
	return !r.refuse
}

func (r *recordingRenderer) OnUnsetMaterial()    { *r.log = append(*r.log, r.name+".unset") }
func (r *recordingRenderer) IsTransparent() bool { return r.transparent }

func TestNewWithoutFunctions(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoContext)
}

func TestNewRegistersBuiltinRenderers(t *testing.T) {
	d, _ := newTestDriver(t, nil)

	require.Equal(t, int(material.BuiltinCount), d.MaterialRendererCount())
	for i := range material.BuiltinCount {
		typ := material.Type(i)
		r, ok := d.MaterialRenderer(typ).(*ShaderMaterialRenderer)
		require.True(t, ok, "renderer of %s is %T", typ, d.MaterialRenderer(typ))
		assert.NotZero(t, r.Program(), "%s has no program", typ)
		assert.Equal(t, typ.String(), d.MaterialRendererName(typ))
	}
	assert.Equal(t, RenderMode3D, d.RenderMode())
}

func TestNewSharesIdenticalPrograms(t *testing.T) {
	d, g := newTestDriver(t, nil)

	// LightmapM2 and LightmapM4 use the same source pair as Lightmap.
	lm := d.MaterialRenderer(material.Lightmap).(*ShaderMaterialRenderer)
	m2 := d.MaterialRenderer(material.LightmapM2).(*ShaderMaterialRenderer)
	m4 := d.MaterialRenderer(material.LightmapM4).(*ShaderMaterialRenderer)
	assert.Equal(t, lm.Program(), m2.Program())
	assert.Equal(t, lm.Program(), m4.Program())

	// 11 distinct built-in pairs plus the two 2D programs.
	assert.Equal(t, 13, g.Count("LinkProgram"))
}

func TestNewContextManager(t *testing.T) {
	cm := &fakeContext{}
	d, g := newTestDriver(t, nil, WithContextManager(cm))
	assert.Equal(t, 1, cm.activations)

	assert.True(t, d.BeginScene(ClearAll, core.Black, 1, 0))
	assert.Equal(t, 2, cm.activations)
	assert.True(t, d.EndScene())
	assert.Equal(t, 1, cm.swaps)
	assert.Equal(t, 1, g.Count("Flush"))

	cm.swapErr = errors.New("surface lost")
	assert.False(t, d.EndScene())

	d.Close()
	assert.True(t, cm.terminated)
}

func TestNewActivateError(t *testing.T) {
	cm := &fakeContext{activateErr: errors.New("no display")}
	_, err := New(glfake.New(), WithContextManager(cm))
	assert.ErrorIs(t, err, cm.activateErr)
}

func TestEndSceneWithoutContextManager(t *testing.T) {
	d, g := newTestDriver(t, nil)
	assert.False(t, d.EndScene())
	assert.Equal(t, 1, g.Count("Flush"))
}

func TestQuadIndices(t *testing.T) {
	tests := []struct {
		name        string
		maxVertices int
		wantLen     int
	}{
		{"two quads", 8, 12},
		{"partial quad ignored", 10, 12},
		{"default", 65536, 16384 * 6},
		{"clamped to 16 bit", 1 << 20, 16384 * 6},
		{"none", 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quadIndices(tt.maxVertices)
			require.Len(t, got, tt.wantLen)
			for k := range len(got) / 6 {
				b := uint16(4 * k)
				want := []uint16{b, b + 1, b + 2, b, b + 2, b + 3}
				if !assert.Equal(t, want, got[6*k:6*k+6], "quad %d", k) {
					return
				}
			}
		})
	}

	assert.Equal(t, uint16(65535), quadIndices(65536)[16384*6-1])
}

func TestNewUploadsQuadIndices(t *testing.T) {
	d, g := newTestDriver(t, nil, WithMaxVertexCount(400))
	require.NotZero(t, d.quadIBO)
	assert.Equal(t, 100*6*2, g.BufferSize(d.quadIBO))
}

func TestNewWithoutQuadBuffer(t *testing.T) {
	d, _ := newTestDriver(t, func(g *glfake.GL) { g.FailBufferGen = true })
	assert.Zero(t, d.quadIBO)
}

func TestTransforms(t *testing.T) {
	d, _ := newTestDriver(t, nil)

	assert.True(t, d.Transform(material.TransformWorld).IsIdentity())
	m := core.Translate(1, 2, 3)
	d.SetTransform(material.TransformWorld, m)
	assert.Equal(t, m, d.Transform(material.TransformWorld))

	d.SetTransform(material.TransformCount, m)
	assert.True(t, d.Transform(material.TransformCount).IsIdentity())
}

func TestClipPlanes(t *testing.T) {
	d, _ := newTestDriver(t, nil)

	plane := f32.Vec4{0, 1, 0, -5}
	require.True(t, d.SetClipPlane(2, plane, true))
	assert.Equal(t, 3, d.ClipPlaneCount())

	got, ok := d.ClipPlane(2)
	require.True(t, ok)
	assert.Equal(t, ClipPlane{Plane: plane, Enabled: true}, got)

	got, ok = d.ClipPlane(0)
	require.True(t, ok)
	assert.False(t, got.Enabled)

	d.EnableClipPlane(2, false)
	got, _ = d.ClipPlane(2)
	assert.False(t, got.Enabled)

	assert.False(t, d.SetClipPlane(maxClipPlanes, plane, true))
	assert.False(t, d.SetClipPlane(-1, plane, true))
	_, ok = d.ClipPlane(5)
	assert.False(t, ok)
}

func TestShaderConstantMisuse(t *testing.T) {
	d, _ := newTestDriver(t, nil)

	assert.Equal(t, -1, d.VertexShaderConstantID("uWVPMatrix"))
	assert.Equal(t, -1, d.PixelShaderConstantID("uAlphaRef"))
	assert.False(t, d.SetVertexShaderConstantF(0, []float32{1}))
	assert.False(t, d.SetVertexShaderConstantI(0, []int32{1}))
	assert.False(t, d.SetVertexShaderConstantU(0, []uint32{1}))
	assert.False(t, d.SetPixelShaderConstantF(0, []float32{1}))
	assert.False(t, d.SetPixelShaderConstantI(0, []int32{1}))
	assert.False(t, d.SetPixelShaderConstantU(0, []uint32{1}))
}

func TestSetViewPort(t *testing.T) {
	d, _ := newTestDriver(t, nil, WithScreenSize(image.Pt(800, 600)))

	d.SetViewPort(image.Rect(10, 20, 110, 220))
	assert.Equal(t, image.Rect(10, 20, 110, 220), d.ViewPort())
	// GL viewports have a bottom-left origin.
	assert.Equal(t, image.Rect(10, 380, 110, 580), d.StateCache().Viewport())

	d.SetViewPort(image.Rect(700, 500, 900, 700))
	assert.Equal(t, image.Rect(700, 500, 800, 600), d.ViewPort())

	d.SetViewPort(image.Rect(900, 900, 1000, 1000))
	assert.Equal(t, image.Rect(700, 500, 800, 600), d.ViewPort(), "empty viewport must be ignored")
}

func TestOnResize(t *testing.T) {
	d, _ := newTestDriver(t, nil)

	d.OnResize(image.Pt(1024, 768))
	assert.Equal(t, image.Pt(1024, 768), d.ScreenSize())
	assert.Equal(t, image.Pt(1024, 768), d.CurrentRenderTargetSize())
	assert.Equal(t, image.Rect(0, 0, 1024, 768), d.StateCache().Viewport())
}

func TestClearBuffersRestoresMasks(t *testing.T) {
	d, g := newTestDriver(t, nil)
	s := d.StateCache()
	s.SetColorMask(false, false, false, false)
	s.SetDepthMask(false)
	g.Reset()

	d.ClearBuffers(ClearColor|ClearDepth, core.Color(0xFF336699), 0.5, 0)

	call, ok := g.Last("Clear")
	require.True(t, ok)
	assert.Equal(t, gl.ColorBufferBit|gl.DepthBufferBit, call.Args[0])
	assert.Equal(t, [4]bool{false, false, false, false}, s.ColorMask())
	assert.False(t, s.DepthMask())
	assert.Equal(t, 1, g.Count("ClearDepthf"))
}

func TestClearNone(t *testing.T) {
	d, g := newTestDriver(t, nil)
	g.Reset()
	d.ClearBuffers(ClearNone, core.Black, 1, 0)
	assert.Zero(t, g.Count("Clear"))
}

func TestNeedsTransparentRenderPass(t *testing.T) {
	d, _ := newTestDriver(t, nil)

	tests := []struct {
		name string
		edit func(*material.Material)
		want bool
	}{
		{"solid", func(*material.Material) {}, false},
		{"alpha channel", func(m *material.Material) { m.Type = material.TransparentAlphaChannel }, true},
		{"vertex alpha", func(m *material.Material) { m.Type = material.TransparentVertexAlpha }, true},
		{"add color", func(m *material.Material) { m.Type = material.TransparentAddColor }, true},
		{"alpha ref", func(m *material.Material) { m.Type = material.TransparentAlphaChannelRef }, false},
		{"blend operation", func(m *material.Material) {
			m.BlendOperation = material.BlendOpAdd
			m.BlendFactor = material.PackBlendFunc(material.BlendSrcAlpha, material.BlendOneMinusSrcAlpha,
				material.Modulate1X, material.AlphaSourceTexture)
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := material.New()
			tt.edit(&m)
			assert.Equal(t, tt.want, d.NeedsTransparentRenderPass(&m))
		})
	}
}

func TestCloseReleasesObjects(t *testing.T) {
	d, g := newTestDriver(t, nil)
	_, err := d.AddTexture("t", image.Pt(4, 4), TextureShape2D, FormatA8R8G8B8)
	require.NoError(t, err)
	g.Reset()

	d.Close()
	assert.Equal(t, 13, g.Count("DeleteProgram"))
	assert.Equal(t, 1, g.Count("DeleteTexture"))
	assert.Zero(t, d.MaterialRendererCount())

	g.Reset()
	d.Close()
	assert.Empty(t, g.Calls(), "second Close must do nothing")
}
