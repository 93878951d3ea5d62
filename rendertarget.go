package gl3

import (
	"fmt"
	"image"
	"log/slog"
	"slices"

	"github.com/gogpu/gl3/core"
	"github.com/gogpu/gl3/gl"
)

// RenderTarget is a framebuffer object with color and depth attachments.
type RenderTarget struct {
	owner        *Driver
	fbo          gl.Framebuffer
	size         image.Point
	colors       []*Texture
	depthStencil *Texture
}

// Size returns the size of the attachments.
func (rt *RenderTarget) Size() image.Point { return rt.size }

// Textures returns the color attachments.
func (rt *RenderTarget) Textures() []*Texture { return slices.Clone(rt.colors) }

// DepthStencil returns the depth or depth-stencil attachment, or nil.
func (rt *RenderTarget) DepthStencil() *Texture { return rt.depthStencil }

// AddRenderTarget creates a render target without attachments. It returns
// nil when the context refuses a framebuffer name.
func (d *Driver) AddRenderTarget() *RenderTarget {
	fbo := d.gl.GenFramebuffer()
	if fbo == 0 {
		d.log.Error("gl3: framebuffer allocation failed")
		return nil
	}
	rt := &RenderTarget{owner: d, fbo: fbo}
	d.renderTargets = append(d.renderTargets, rt)
	return rt
}

// SetTextures attaches colors and an optional depth or depth-stencil
// texture. Every texture must belong to the driver of rt. The target takes
// the size of the first attachment.
func (rt *RenderTarget) SetTextures(colors []*Texture, depthStencil *Texture) error {
	d := rt.owner
	if d == nil {
		return fmt.Errorf("%w: render target removed", ErrForeignTexture)
	}
	for _, t := range colors {
		if t == nil || t.owner != d {
			return fmt.Errorf("%w: %q", ErrForeignTexture, t.Name())
		}
	}
	if depthStencil != nil && depthStencil.owner != d {
		return fmt.Errorf("%w: %q", ErrForeignTexture, depthStencil.Name())
	}
	if limit := d.caps.MaxDrawBuffers; len(colors) > 1 && len(colors) > limit {
		return fmt.Errorf("%w: %d color attachments, context supports %d", ErrFramebufferIncomplete, len(colors), limit)
	}

	prev := d.state.FBO()
	d.state.SetFBO(rt.fbo)

	for i, t := range colors {
		d.gl.FramebufferTexture2D(gl.FramebufferTarget, gl.ColorAttachment0+gl.Enum(i), t.target, t.handle, 0)
	}
	for i := len(colors); i < len(rt.colors); i++ {
		d.gl.FramebufferTexture2D(gl.FramebufferTarget, gl.ColorAttachment0+gl.Enum(i), gl.Texture2D, 0, 0)
	}
	if len(colors) > 1 && d.caps.MultipleRenderTargets() {
		bufs := make([]gl.Enum, len(colors))
		for i := range bufs {
			bufs[i] = gl.ColorAttachment0 + gl.Enum(i)
		}
		d.gl.DrawBuffers(bufs)
	}

	switch {
	case depthStencil != nil && depthStencil.format == FormatD24S8:
		d.gl.FramebufferTexture2D(gl.FramebufferTarget, gl.DepthStencilAttachment, depthStencil.target, depthStencil.handle, 0)
	case depthStencil != nil:
		d.gl.FramebufferTexture2D(gl.FramebufferTarget, gl.DepthAttachment, depthStencil.target, depthStencil.handle, 0)
	case rt.depthStencil != nil:
		d.gl.FramebufferTexture2D(gl.FramebufferTarget, gl.DepthAttachment, gl.Texture2D, 0, 0)
	}

	status := gl.FramebufferComplete
	if len(colors) > 0 || depthStencil != nil {
		status = d.gl.CheckFramebufferStatus(gl.FramebufferTarget)
	}
	d.state.SetFBO(prev)
	d.checkBasic("RenderTarget.SetTextures")

	rt.colors = slices.Clone(colors)
	rt.depthStencil = depthStencil
	switch {
	case len(colors) > 0:
		rt.size = colors[0].size
	case depthStencil != nil:
		rt.size = depthStencil.size
	default:
		rt.size = image.Point{}
	}

	if status != gl.FramebufferComplete {
		return fmt.Errorf("%w: %s", ErrFramebufferIncomplete, gl.FramebufferStatusString(status))
	}
	return nil
}

// RemoveRenderTarget deletes rt. When rt is current the screen becomes
// current again.
func (d *Driver) RemoveRenderTarget(rt *RenderTarget) {
	if rt == nil || rt.owner != d {
		return
	}
	if d.currentTarget == rt {
		d.SetRenderTargetEx(nil, ClearNone, 0, 1, 0)
	}
	d.state.DeleteFramebuffer(rt.fbo)
	rt.owner, rt.fbo = nil, 0
	d.renderTargets = slices.DeleteFunc(d.renderTargets, func(r *RenderTarget) bool { return r == rt })
}

// RemoveAllRenderTargets deletes every render target.
func (d *Driver) RemoveAllRenderTargets() {
	for _, rt := range slices.Clone(d.renderTargets) {
		d.RemoveRenderTarget(rt)
	}
}

// RenderTargets returns the live render targets.
func (d *Driver) RenderTargets() []*RenderTarget {
	return slices.Clone(d.renderTargets)
}

// CurrentRenderTarget returns the bound render target, nil for the screen.
func (d *Driver) CurrentRenderTarget() *RenderTarget { return d.currentTarget }

// SetRenderTargetEx makes rt the target of following draws, nil meaning
// the screen, and clears the buffers selected by flag. A render target
// of another driver is refused.
func (d *Driver) SetRenderTargetEx(rt *RenderTarget, flag ClearFlag, color core.Color, depth float32, stencil uint8) bool {
	if rt != nil && rt.owner != d {
		d.log.Error("gl3: render target belongs to another driver")
		return false
	}

	if rt != nil {
		d.state.SetFBO(rt.fbo)
		d.setViewPortRaw(rt.size)
		d.renderTargetSize = rt.size
		if d.validation >= ValidationFull {
			if status := d.gl.CheckFramebufferStatus(gl.FramebufferTarget); status != gl.FramebufferComplete {
				d.log.Error("gl3: render target incomplete", slog.String("status", gl.FramebufferStatusString(status)))
			}
		}
	} else {
		d.state.SetFBO(0)
		d.setViewPortRaw(d.screenSize)
		d.renderTargetSize = image.Point{}
	}
	d.currentTarget = rt

	d.ClearBuffers(flag, color, depth, stencil)
	return true
}
