package gl3

import (
	"image"
	"log/slog"

	"github.com/gogpu/gl3/caps"
	"github.com/gogpu/gl3/gl"
	"github.com/gogpu/gl3/material"
)

// StateCache mirrors the scalar GL state the driver changes and suppresses
// calls that would not change it. Every state change the driver makes goes
// through a StateCache; a GL call made around it leaves the mirror wrong
// for the rest of the context lifetime.
//
// Each setter compares the requested value with the cached one and only
// calls GL on a difference. Setters report whether a call was made.
type StateCache struct {
	gl      gl.Functions
	changes int

	blend         bool
	blendFunc     [4]gl.Enum // src RGB, dst RGB, src alpha, dst alpha
	blendEquation gl.Enum

	cullFace     bool
	cullFaceMode gl.Enum
	frontFace    gl.Enum

	depthTest bool
	depthFunc gl.Enum
	depthMask bool

	colorMask [4]bool

	activeTexture gl.Enum
	viewport      image.Rectangle

	fbo           gl.Framebuffer
	program       gl.Program
	arrayBuffer   gl.Buffer
	elementBuffer gl.Buffer

	scissorTest     bool
	scissor         image.Rectangle
	alphaToCoverage bool
	lineWidth       float32
	clearColor      [4]float32
	clearDepth      float32
}

// NewStateCache issues the default value of every cached state once, so
// the cache and the context agree from the first call. The viewport is read
// back from the context.
func NewStateCache(f gl.Functions) *StateCache {
	s := &StateCache{
		gl:            f,
		blendFunc:     [4]gl.Enum{gl.One, gl.Zero, gl.One, gl.Zero},
		blendEquation: gl.FuncAdd,
		cullFaceMode:  gl.Back,
		frontFace:     gl.CCW,
		depthFunc:     gl.Less,
		depthMask:     true,
		colorMask:     [4]bool{true, true, true, true},
		activeTexture: gl.Texture0,
		lineWidth:     1,
		clearDepth:    1,
	}

	f.Disable(gl.Blend)
	f.BlendFuncSeparate(s.blendFunc[0], s.blendFunc[1], s.blendFunc[2], s.blendFunc[3])
	f.BlendEquation(s.blendEquation)
	f.Disable(gl.CullFace)
	f.CullFace(s.cullFaceMode)
	f.FrontFace(s.frontFace)
	f.Disable(gl.DepthTest)
	f.DepthFunc(s.depthFunc)
	f.DepthMask(s.depthMask)
	f.ColorMask(true, true, true, true)
	f.ActiveTexture(s.activeTexture)
	f.BindFramebuffer(gl.FramebufferTarget, 0)
	f.UseProgram(0)
	f.BindBuffer(gl.ArrayBuffer, 0)
	f.BindBuffer(gl.ElementArrayBuffer, 0)
	f.Disable(gl.ScissorTest)
	f.Disable(gl.SampleAlphaToCoverage)
	f.LineWidth(s.lineWidth)
	f.ClearColor(0, 0, 0, 0)
	f.ClearDepthf(s.clearDepth)

	var vp [4]int32
	f.GetIntegerv(gl.ViewportParam, vp[:])
	s.viewport = image.Rect(int(vp[0]), int(vp[1]), int(vp[0]+vp[2]), int(vp[1]+vp[3]))
	return s
}

// Changes returns the number of state changing calls issued since
// construction.
func (s *StateCache) Changes() int { return s.changes }

func (s *StateCache) toggle(c gl.Enum, cached *bool, on bool) bool {
	if *cached == on {
		return false
	}
	if on {
		s.gl.Enable(c)
	} else {
		s.gl.Disable(c)
	}
	*cached = on
	s.changes++
	return true
}

// SetBlend enables or disables blending.
func (s *StateCache) SetBlend(on bool) bool { return s.toggle(gl.Blend, &s.blend, on) }

// Blend reports whether blending is enabled.
func (s *StateCache) Blend() bool { return s.blend }

// SetBlendFunc sets the same factors for color and alpha.
func (s *StateCache) SetBlendFunc(src, dst gl.Enum) bool {
	return s.SetBlendFuncSeparate(src, dst, src, dst)
}

// SetBlendFuncSeparate sets separate color and alpha blend factors.
func (s *StateCache) SetBlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) bool {
	f := [4]gl.Enum{srcRGB, dstRGB, srcAlpha, dstAlpha}
	if f == s.blendFunc {
		return false
	}
	s.gl.BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
	s.blendFunc = f
	s.changes++
	return true
}

// BlendFunc returns the cached factors in src RGB, dst RGB, src alpha,
// dst alpha order.
func (s *StateCache) BlendFunc() [4]gl.Enum { return s.blendFunc }

// SetBlendEquation sets the blend equation.
func (s *StateCache) SetBlendEquation(mode gl.Enum) bool {
	if mode == s.blendEquation {
		return false
	}
	s.gl.BlendEquation(mode)
	s.blendEquation = mode
	s.changes++
	return true
}

// SetCullFace enables or disables face culling.
func (s *StateCache) SetCullFace(on bool) bool { return s.toggle(gl.CullFace, &s.cullFace, on) }

// SetCullFaceFunc selects the culled faces.
func (s *StateCache) SetCullFaceFunc(mode gl.Enum) bool {
	if mode == s.cullFaceMode {
		return false
	}
	s.gl.CullFace(mode)
	s.cullFaceMode = mode
	s.changes++
	return true
}

// SetFrontFace sets the front face winding.
func (s *StateCache) SetFrontFace(mode gl.Enum) bool {
	if mode == s.frontFace {
		return false
	}
	s.gl.FrontFace(mode)
	s.frontFace = mode
	s.changes++
	return true
}

// SetDepthTest enables or disables the depth test.
func (s *StateCache) SetDepthTest(on bool) bool { return s.toggle(gl.DepthTest, &s.depthTest, on) }

// SetDepthFunc sets the depth comparison.
func (s *StateCache) SetDepthFunc(f gl.Enum) bool {
	if f == s.depthFunc {
		return false
	}
	s.gl.DepthFunc(f)
	s.depthFunc = f
	s.changes++
	return true
}

// SetDepthMask enables or disables depth writes.
func (s *StateCache) SetDepthMask(on bool) bool {
	if on == s.depthMask {
		return false
	}
	s.gl.DepthMask(on)
	s.depthMask = on
	s.changes++
	return true
}

// DepthMask reports whether depth writes are enabled.
func (s *StateCache) DepthMask() bool { return s.depthMask }

// SetColorMask sets which color channels are written.
func (s *StateCache) SetColorMask(r, g, b, a bool) bool {
	m := [4]bool{r, g, b, a}
	if m == s.colorMask {
		return false
	}
	s.gl.ColorMask(r, g, b, a)
	s.colorMask = m
	s.changes++
	return true
}

// ColorMask returns the written channels in RGBA order.
func (s *StateCache) ColorMask() [4]bool { return s.colorMask }

// SetActiveTexture selects the texture unit for binds and parameters.
func (s *StateCache) SetActiveTexture(unit gl.Enum) bool {
	if unit == s.activeTexture {
		return false
	}
	s.gl.ActiveTexture(unit)
	s.activeTexture = unit
	s.changes++
	return true
}

// SetViewport sets the viewport in GL window coordinates.
func (s *StateCache) SetViewport(r image.Rectangle) bool {
	if r == s.viewport {
		return false
	}
	s.gl.Viewport(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()))
	s.viewport = r
	s.changes++
	return true
}

// Viewport returns the cached viewport.
func (s *StateCache) Viewport() image.Rectangle { return s.viewport }

// SetFBO binds a framebuffer; 0 is the default framebuffer.
func (s *StateCache) SetFBO(fb gl.Framebuffer) bool {
	if fb == s.fbo {
		return false
	}
	s.gl.BindFramebuffer(gl.FramebufferTarget, fb)
	s.fbo = fb
	s.changes++
	return true
}

// FBO returns the bound framebuffer.
func (s *StateCache) FBO() gl.Framebuffer { return s.fbo }

// UseProgram makes p the current program.
func (s *StateCache) UseProgram(p gl.Program) bool {
	if p == s.program {
		return false
	}
	s.gl.UseProgram(p)
	s.program = p
	s.changes++
	return true
}

// Program returns the current program.
func (s *StateCache) Program() gl.Program { return s.program }

// BindBuffer binds b to the array or element array target.
func (s *StateCache) BindBuffer(target gl.Enum, b gl.Buffer) bool {
	cached := &s.arrayBuffer
	if target == gl.ElementArrayBuffer {
		cached = &s.elementBuffer
	}
	if *cached == b {
		return false
	}
	s.gl.BindBuffer(target, b)
	*cached = b
	s.changes++
	return true
}

// SetScissorTest enables or disables the scissor test.
func (s *StateCache) SetScissorTest(on bool) bool {
	return s.toggle(gl.ScissorTest, &s.scissorTest, on)
}

// SetScissor sets the scissor box in GL window coordinates.
func (s *StateCache) SetScissor(r image.Rectangle) bool {
	if r == s.scissor {
		return false
	}
	s.gl.Scissor(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()))
	s.scissor = r
	s.changes++
	return true
}

// SetAlphaToCoverage enables or disables alpha to coverage.
func (s *StateCache) SetAlphaToCoverage(on bool) bool {
	return s.toggle(gl.SampleAlphaToCoverage, &s.alphaToCoverage, on)
}

// SetLineWidth sets the rasterized line width.
func (s *StateCache) SetLineWidth(w float32) bool {
	if w == s.lineWidth {
		return false
	}
	s.gl.LineWidth(w)
	s.lineWidth = w
	s.changes++
	return true
}

// SetClearColor sets the color used by color clears.
func (s *StateCache) SetClearColor(c [4]float32) bool {
	if c == s.clearColor {
		return false
	}
	s.gl.ClearColor(c[0], c[1], c[2], c[3])
	s.clearColor = c
	s.changes++
	return true
}

// SetClearDepth sets the value used by depth clears.
func (s *StateCache) SetClearDepth(d float32) bool {
	if d == s.clearDepth {
		return false
	}
	s.gl.ClearDepthf(d)
	s.clearDepth = d
	s.changes++
	return true
}

// DeleteBuffer deletes b and forgets any binding of it.
func (s *StateCache) DeleteBuffer(b gl.Buffer) {
	if b == 0 {
		return
	}
	s.gl.DeleteBuffer(b)
	if s.arrayBuffer == b {
		s.arrayBuffer = 0
	}
	if s.elementBuffer == b {
		s.elementBuffer = 0
	}
}

// DeleteProgram deletes p and forgets it as the current program.
func (s *StateCache) DeleteProgram(p gl.Program) {
	if p == 0 {
		return
	}
	s.gl.DeleteProgram(p)
	if s.program == p {
		s.program = 0
	}
}

// DeleteFramebuffer deletes fb and forgets its binding.
func (s *StateCache) DeleteFramebuffer(fb gl.Framebuffer) {
	if fb == 0 {
		return
	}
	s.gl.DeleteFramebuffer(fb)
	if s.fbo == fb {
		s.fbo = 0
	}
}

// ====================================================================
// Texture cache
// ====================================================================

// TextureCache mirrors the texture bound to each unit. Only textures
// registered with the owning driver can be bound.
type TextureCache struct {
	driver *Driver
	state  *StateCache
	units  [caps.MaxTextureUnits]*Texture
}

func newTextureCache(d *Driver, s *StateCache) *TextureCache {
	return &TextureCache{driver: d, state: s}
}

// Set binds tex to unit and reports whether a bind call was issued. A nil
// tex unbinds the unit. Textures from another driver, or already removed,
// are refused and bind nothing.
func (c *TextureCache) Set(unit int, tex material.Texture) bool {
	if unit < 0 || unit >= len(c.units) {
		return false
	}
	t, ok := c.resolve(tex)
	if !ok {
		return false
	}

	old := c.units[unit]
	if old == t {
		return false
	}
	c.state.SetActiveTexture(gl.Texture0 + gl.Enum(unit))
	switch {
	case t != nil:
		if old != nil && old.target != t.target {
			c.state.gl.BindTexture(old.target, 0)
		}
		c.state.gl.BindTexture(t.target, t.handle)
	default:
		c.state.gl.BindTexture(old.target, 0)
	}
	c.units[unit] = t
	c.state.changes++
	return true
}

// resolve maps tex to a texture of the owning driver. nil resolves to nil.
func (c *TextureCache) resolve(tex material.Texture) (*Texture, bool) {
	if tex == nil {
		return nil, true
	}
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.owner != c.driver {
		c.driver.log.Warn("gl3: refusing to bind foreign texture", slog.String("texture", tex.Name()))
		return nil, false
	}
	return t, true
}

// Get returns the texture bound to unit, or nil.
func (c *TextureCache) Get(unit int) *Texture {
	if unit < 0 || unit >= len(c.units) {
		return nil
	}
	return c.units[unit]
}

// Remove unbinds tex from every unit holding it.
func (c *TextureCache) Remove(tex *Texture) {
	for i, t := range c.units {
		if t == tex {
			c.Set(i, nil)
		}
	}
}

// Clear unbinds every unit.
func (c *TextureCache) Clear() {
	for i := range c.units {
		c.Set(i, nil)
	}
}

// CorrectCacheMaterial writes the bound texture of every unit back into
// m, so the material matches what renderers actually left bound.
func (c *TextureCache) CorrectCacheMaterial(m *material.Material) {
	for i, t := range c.units {
		if i >= material.MaxTextures {
			break
		}
		if t == nil {
			m.TextureLayers[i].Texture = nil
		} else {
			m.TextureLayers[i].Texture = t
		}
	}
}
