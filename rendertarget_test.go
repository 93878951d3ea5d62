package gl3

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gl3/core"
	"github.com/gogpu/gl3/gl"
	"github.com/gogpu/gl3/internal/glfake"
)

func newTargetTextures(t *testing.T, d *Driver, n int, size image.Point) []*Texture {
	t.Helper()
	texs := make([]*Texture, n)
	for i := range texs {
		tex, err := d.AddRenderTargetTexture(size, "color", FormatA8R8G8B8)
		require.NoError(t, err)
		texs[i] = tex
	}
	return texs
}

func TestRenderTargetAttach(t *testing.T) {
	d, g := newTestDriver(t, nil)
	colors := newTargetTextures(t, d, 1, image.Pt(128, 64))
	depth, err := d.AddRenderTargetTexture(image.Pt(128, 64), "depth", FormatD16)
	require.NoError(t, err)

	rt := d.AddRenderTarget()
	require.NotNil(t, rt)
	g.Reset()

	require.NoError(t, rt.SetTextures(colors, depth))
	assert.Equal(t, image.Pt(128, 64), rt.Size())
	assert.Equal(t, colors, rt.Textures())
	assert.Same(t, depth, rt.DepthStencil())
	assert.Equal(t, 1, g.CountArgs("FramebufferTexture2D", gl.FramebufferTarget, gl.ColorAttachment0, gl.Texture2D, colors[0].Handle()))
	assert.Equal(t, 1, g.CountArgs("FramebufferTexture2D", gl.FramebufferTarget, gl.DepthAttachment, gl.Texture2D, depth.Handle()))
	assert.Equal(t, gl.Framebuffer(0), d.StateCache().FBO(), "attaching restores the previous framebuffer")
	assert.Equal(t, []*RenderTarget{rt}, d.RenderTargets())

	g.Reset()
	require.NoError(t, rt.SetTextures(nil, nil))
	assert.Equal(t, image.Point{}, rt.Size())
	assert.Equal(t, 1, g.CountArgs("FramebufferTexture2D", gl.FramebufferTarget, gl.ColorAttachment0, gl.Texture2D, gl.Texture(0)))
	assert.Equal(t, 1, g.CountArgs("FramebufferTexture2D", gl.FramebufferTarget, gl.DepthAttachment, gl.Texture2D, gl.Texture(0)))
	assert.Zero(t, g.Count("CheckFramebufferStatus"), "an empty target is not checked")
}

func TestRenderTargetAttachErrors(t *testing.T) {
	t.Run("foreign texture", func(t *testing.T) {
		d, _ := newTestDriver(t, nil)
		other, _ := newTestDriver(t, nil)
		rt := d.AddRenderTarget()
		err := rt.SetTextures(newTargetTextures(t, other, 1, image.Pt(8, 8)), nil)
		assert.ErrorIs(t, err, ErrForeignTexture)
	})
	t.Run("foreign depth", func(t *testing.T) {
		d, _ := newTestDriver(t, nil)
		other, _ := newTestDriver(t, nil)
		depth, err := other.AddRenderTargetTexture(image.Pt(8, 8), "depth", FormatD16)
		require.NoError(t, err)
		rt := d.AddRenderTarget()
		assert.ErrorIs(t, rt.SetTextures(newTargetTextures(t, d, 1, image.Pt(8, 8)), depth), ErrForeignTexture)
	})
	t.Run("nil color", func(t *testing.T) {
		d, _ := newTestDriver(t, nil)
		rt := d.AddRenderTarget()
		assert.ErrorIs(t, rt.SetTextures([]*Texture{nil}, nil), ErrForeignTexture)
	})
	t.Run("removed target", func(t *testing.T) {
		d, _ := newTestDriver(t, nil)
		rt := d.AddRenderTarget()
		d.RemoveRenderTarget(rt)
		assert.ErrorIs(t, rt.SetTextures(newTargetTextures(t, d, 1, image.Pt(8, 8)), nil), ErrForeignTexture)
	})
	t.Run("incomplete", func(t *testing.T) {
		d, g := newTestDriver(t, nil)
		rt := d.AddRenderTarget()
		g.FramebufferStatus = gl.FramebufferUnsupported
		assert.ErrorIs(t, rt.SetTextures(newTargetTextures(t, d, 1, image.Pt(8, 8)), nil), ErrFramebufferIncomplete)
	})
	t.Run("too many attachments", func(t *testing.T) {
		d, _ := newTestDriver(t, nil)
		rt := d.AddRenderTarget()
		err := rt.SetTextures(newTargetTextures(t, d, 2, image.Pt(8, 8)), nil)
		assert.ErrorIs(t, err, ErrFramebufferIncomplete)
	})
}

func TestRenderTargetMultipleColors(t *testing.T) {
	d, g := newTestDriver(t, func(g *glfake.GL) {
		g.VersionString = "OpenGL ES 3.0 glfake"
		g.Ints[gl.MaxDrawBuffers] = []int32{4}
	})
	rt := d.AddRenderTarget()
	colors := newTargetTextures(t, d, 3, image.Pt(16, 16))
	g.Reset()

	require.NoError(t, rt.SetTextures(colors, nil))
	call, ok := g.Last("DrawBuffers")
	require.True(t, ok)
	assert.Equal(t, []gl.Enum{gl.ColorAttachment0, gl.ColorAttachment0 + 1, gl.ColorAttachment0 + 2}, call.Args[0])

	g.Reset()
	require.NoError(t, rt.SetTextures(colors[:1], nil))
	assert.Equal(t, 1, g.CountArgs("FramebufferTexture2D", gl.FramebufferTarget, gl.ColorAttachment0+1, gl.Texture2D, gl.Texture(0)))
	assert.Equal(t, 1, g.CountArgs("FramebufferTexture2D", gl.FramebufferTarget, gl.ColorAttachment0+2, gl.Texture2D, gl.Texture(0)))
}

func TestSetRenderTargetEx(t *testing.T) {
	d, g := newTestDriver(t, nil, WithScreenSize(image.Pt(800, 600)))
	rt := d.AddRenderTarget()
	require.NoError(t, rt.SetTextures(newTargetTextures(t, d, 1, image.Pt(256, 128)), nil))
	g.Reset()

	require.True(t, d.SetRenderTargetEx(rt, ClearColor, core.Black, 1, 0))
	assert.Same(t, rt, d.CurrentRenderTarget())
	assert.Equal(t, 1, g.CountArgs("BindFramebuffer", gl.FramebufferTarget, rt.fbo))
	assert.Equal(t, image.Pt(256, 128), d.CurrentRenderTargetSize())
	assert.Equal(t, image.Rect(0, 0, 256, 128), d.StateCache().Viewport())
	assert.Equal(t, 1, g.CountArgs("Clear", gl.ColorBufferBit))

	g.Reset()
	require.True(t, d.SetRenderTargetEx(nil, ClearNone, core.Black, 1, 0))
	assert.Nil(t, d.CurrentRenderTarget())
	assert.Equal(t, 1, g.CountArgs("BindFramebuffer", gl.FramebufferTarget, gl.Framebuffer(0)))
	assert.Equal(t, image.Pt(800, 600), d.CurrentRenderTargetSize())
	assert.Equal(t, image.Rect(0, 0, 800, 600), d.StateCache().Viewport())
	assert.Zero(t, g.Count("Clear"))
}

func TestSetRenderTargetExForeign(t *testing.T) {
	d, g := newTestDriver(t, nil)
	other, _ := newTestDriver(t, nil)
	rt := other.AddRenderTarget()
	g.Reset()

	assert.False(t, d.SetRenderTargetEx(rt, ClearAll, core.Black, 1, 0))
	assert.Nil(t, d.CurrentRenderTarget())
	assert.Empty(t, g.Calls())
}

func TestSetRenderTargetExFullValidation(t *testing.T) {
	d, g := newTestDriver(t, nil, WithValidation(ValidationFull))
	rt := d.AddRenderTarget()
	require.NoError(t, rt.SetTextures(newTargetTextures(t, d, 1, image.Pt(8, 8)), nil))
	g.Reset()

	d.SetRenderTargetEx(rt, ClearNone, core.Black, 1, 0)
	assert.Equal(t, 1, g.Count("CheckFramebufferStatus"))
}

func TestRemoveCurrentRenderTarget(t *testing.T) {
	d, g := newTestDriver(t, nil, WithScreenSize(image.Pt(320, 240)))
	rt := d.AddRenderTarget()
	require.NoError(t, rt.SetTextures(newTargetTextures(t, d, 1, image.Pt(64, 64)), nil))
	require.True(t, d.SetRenderTargetEx(rt, ClearNone, core.Black, 1, 0))
	fbo := rt.fbo
	g.Reset()

	d.RemoveRenderTarget(rt)
	assert.Nil(t, d.CurrentRenderTarget())
	assert.Equal(t, image.Pt(320, 240), d.CurrentRenderTargetSize())
	assert.Equal(t, 1, g.CountArgs("DeleteFramebuffer", fbo))
	assert.Empty(t, d.RenderTargets())

	g.Reset()
	d.RemoveRenderTarget(rt)
	assert.Zero(t, g.Count("DeleteFramebuffer"))
}

func TestRemoveAllRenderTargets(t *testing.T) {
	d, g := newTestDriver(t, nil)
	for range 3 {
		d.AddRenderTarget()
	}
	g.Reset()

	d.RemoveAllRenderTargets()
	assert.Equal(t, 3, g.Count("DeleteFramebuffer"))
	assert.Empty(t, d.RenderTargets())
}
