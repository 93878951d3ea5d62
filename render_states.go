package gl3

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gl3/core"
	"github.com/gogpu/gl3/gl"
	"github.com/gogpu/gl3/material"
	"github.com/gogpu/gl3/vertex"
)

// setRenderStates3DMode prepares the current material for a 3D draw. It
// reports whether the active renderer allows the draw.
func (d *Driver) setRenderStates3DMode() bool {
	if d.renderMode != RenderMode3D {
		// Leaving 2D: blending is reset, and everything gets reapplied.
		d.state.SetBlend(false)
		d.state.SetBlendFunc(gl.SrcAlpha, gl.OneMinusSrcAlpha)
		d.resetRenderStates = true
	}

	if d.resetRenderStates || d.lastMaterial != d.material {
		switch {
		case d.renderMode == RenderMode2D && d.renderer2DActive != nil:
			d.renderer2DActive.OnUnsetMaterial()
			d.renderer2DActive = nil
		case d.lastMaterial.Type != d.material.Type && d.validType(d.lastMaterial.Type):
			d.renderers[d.lastMaterial.Type].renderer.OnUnsetMaterial()
		}

		if d.validType(d.material.Type) {
			d.renderers[d.material.Type].renderer.OnSetMaterial(&d.material, &d.lastMaterial, d.resetRenderStates)
		}
		d.lastMaterial = d.material
		d.textures.CorrectCacheMaterial(&d.lastMaterial)
		d.resetRenderStates = false
	}

	ok := true
	if d.validType(d.material.Type) {
		ok = d.renderers[d.material.Type].renderer.OnRender(vertex.KindStandard)
	}
	d.renderMode = RenderMode3D
	return ok
}

// setRenderStates2DMode prepares a 2D draw. alpha enables vertex alpha,
// texture selects the textured renderer and alphaChannel enables the
// texture alpha channel, which needs texture.
func (d *Driver) setRenderStates2DMode(alpha, texture, alphaChannel bool) {
	next := d.renderer2DNoTexture
	if texture {
		next = d.renderer2DTexture
	}

	if d.renderMode != RenderMode2D {
		if d.validType(d.lastMaterial.Type) {
			d.renderers[d.lastMaterial.Type].renderer.OnUnsetMaterial()
		}
		d.resetRenderStates = true
	} else if d.renderer2DActive != next && d.renderer2DActive != nil {
		d.renderer2DActive.OnUnsetMaterial()
		d.resetRenderStates = true
	}
	d.renderer2DActive = next

	d.SetTransform(material.TransformTexture0, core.Identity())
	if t := d.textures.Get(0); t != nil {
		d.material.TextureLayers[0].Texture = t
	} else {
		d.material.TextureLayers[0].Texture = nil
	}
	d.material.Lighting = false
	d.material.ZWrite = material.ZWriteOff
	d.material.ZBuffer = gputypes.CompareFunctionUndefined
	if next != nil {
		next.OnSetMaterial(&d.material, &d.lastMaterial, true)
	}
	d.lastMaterial = d.material
	d.textures.CorrectCacheMaterial(&d.lastMaterial)
	d.resetRenderStates = false

	// OnSetMaterial applied the material blend state; 2D blending replaces it.
	if (alphaChannel && texture) || alpha {
		d.state.SetBlend(true)
		d.state.SetBlendFunc(gl.SrcAlpha, gl.OneMinusSrcAlpha)
		d.state.SetBlendEquation(gl.FuncAdd)
	} else {
		d.state.SetBlend(false)
	}

	if next != nil {
		next.OnRender(vertex.KindImage2D)
	}
	d.renderMode = RenderMode2D
}

// chooseMaterial2D makes the 2D material current: the override material
// when enabled, otherwise the default one.
func (d *Driver) chooseMaterial2D() {
	if !d.override2DEnabled {
		d.material = d.initMaterial2D
		return
	}
	o := &d.overrideMaterial2D
	o.Lighting = false
	o.ZWrite = material.ZWriteOff
	o.ZBuffer = gputypes.CompareFunctionUndefined
	d.material = *o
}

// SetBasicRenderStates applies the depth, cull, color mask, blend, line
// and texture sampler state of m. Material renderers call it from
// OnSetMaterial. last is the material applied before; reset forces every
// state to be reapplied.
func (d *Driver) SetBasicRenderStates(m, last *material.Material, reset bool) {
	s := d.state

	if m.ZBuffer == gputypes.CompareFunctionUndefined {
		s.SetDepthTest(false)
	} else {
		s.SetDepthTest(true)
		s.SetDepthFunc(depthFunc(m.ZBuffer))
	}
	s.SetDepthMask(d.writesDepth(m))

	switch {
	case m.FrontfaceCulling && m.BackfaceCulling:
		s.SetCullFaceFunc(gl.FrontAndBack)
		s.SetCullFace(true)
	case m.BackfaceCulling:
		s.SetCullFaceFunc(gl.Back)
		s.SetCullFace(true)
	case m.FrontfaceCulling:
		s.SetCullFaceFunc(gl.Front)
		s.SetCullFace(true)
	default:
		s.SetCullFace(false)
	}

	s.SetColorMask(
		m.ColorMask&gputypes.ColorWriteMaskRed != 0,
		m.ColorMask&gputypes.ColorWriteMaskGreen != 0,
		m.ColorMask&gputypes.ColorWriteMaskBlue != 0,
		m.ColorMask&gputypes.ColorWriteMaskAlpha != 0,
	)

	if m.BlendOperation == material.BlendOpNone {
		s.SetBlend(false)
	} else {
		s.SetBlend(true)
		s.SetBlendEquation(blendEquation(m.BlendOperation))
	}
	if m.BlendFactor != 0 && m.Type != material.OneTextureBlend {
		bf := material.UnpackBlendFunc(m.BlendFactor)
		s.SetBlendFuncSeparate(glBlend(bf.SrcRGB), glBlend(bf.DstRGB), glBlend(bf.SrcAlpha), glBlend(bf.DstAlpha))
	}

	if reset || last.Thickness != m.Thickness {
		lo, hi := d.caps.DimAliasedLine[0], d.caps.DimAliasedLine[1]
		w := m.Thickness
		if hi > 0 {
			w = math32.Min(math32.Max(w, lo), hi)
		}
		if w > 0 {
			s.SetLineWidth(w)
		}
	}
	if reset || last.AntiAliasing != m.AntiAliasing {
		s.SetAlphaToCoverage(m.AntiAliasing&material.AntiAliasingAlphaToCoverage != 0)
	}

	d.setTextureRenderStates(m, reset)
}

// writesDepth resolves the depth write mode of m.
func (d *Driver) writesDepth(m *material.Material) bool {
	switch m.ZWrite {
	case material.ZWriteOff:
		return false
	case material.ZWriteOn:
		return true
	default:
		return !d.NeedsTransparentRenderPass(m)
	}
}

// samplerState is the sampler state last set on a texture object.
type samplerState struct {
	cached     bool
	magFilter  int32
	minFilter  int32
	wrapS      int32
	wrapT      int32
	anisotropy float32
}

// setTextureRenderStates applies the sampler state of every bound texture,
// highest unit first, leaving unit 0 active.
func (d *Driver) setTextureRenderStates(m *material.Material, reset bool) {
	for i := d.caps.MaxTextureUnits - 1; i >= 0; i-- {
		tex := d.textures.Get(i)
		if tex == nil {
			continue
		}
		d.state.SetActiveTexture(gl.Texture0 + gl.Enum(i))

		st := &tex.sampler
		if reset {
			st.cached = false
		}
		layer := &m.TextureLayers[i]

		d.texParameter(tex, gl.TextureMagFilter, &st.magFilter, magFilter(layer))
		d.texParameter(tex, gl.TextureMinFilter, &st.minFilter, minFilter(layer, m.UseMipMaps && tex.mipmaps))
		if d.caps.Anisotropic() {
			af := float32(1)
			if layer.AnisotropicFilter > 1 {
				af = math32.Min(d.caps.MaxAnisotropy, float32(layer.AnisotropicFilter))
			}
			if !st.cached || st.anisotropy != af {
				d.gl.TexParameterf(tex.target, gl.TextureMaxAnisotropy, af)
				st.anisotropy = af
			}
		}
		d.texParameter(tex, gl.TextureWrapS, &st.wrapS, wrapMode(layer.WrapU))
		d.texParameter(tex, gl.TextureWrapT, &st.wrapT, wrapMode(layer.WrapV))

		st.cached = true
	}
}

func (d *Driver) texParameter(tex *Texture, pname gl.Enum, cached *int32, v int32) {
	if tex.sampler.cached && *cached == v {
		return
	}
	d.gl.TexParameteri(tex.target, pname, v)
	*cached = v
}

func magFilter(l *material.TextureLayer) int32 {
	if l.MagFilter == gputypes.FilterModeLinear {
		return int32(gl.Linear)
	}
	return int32(gl.Nearest)
}

func minFilter(l *material.TextureLayer, mipmaps bool) int32 {
	linear := l.MinFilter == gputypes.FilterModeLinear
	if !mipmaps {
		if linear {
			return int32(gl.Linear)
		}
		return int32(gl.Nearest)
	}
	mipLinear := l.MipmapFilter == gputypes.FilterModeLinear
	switch {
	case linear && mipLinear:
		return int32(gl.LinearMipmapLinear)
	case linear:
		return int32(gl.LinearMipmapNearest)
	case mipLinear:
		return int32(gl.NearestMipmapLinear)
	default:
		return int32(gl.NearestMipmapNearest)
	}
}

func wrapMode(m gputypes.AddressMode) int32 {
	switch m {
	case gputypes.AddressModeClampToEdge:
		return int32(gl.ClampToEdge)
	case gputypes.AddressModeMirrorRepeat:
		return int32(gl.MirroredRepeat)
	default:
		return int32(gl.Repeat)
	}
}

func depthFunc(f gputypes.CompareFunction) gl.Enum {
	switch f {
	case gputypes.CompareFunctionNever:
		return gl.Never
	case gputypes.CompareFunctionLess:
		return gl.Less
	case gputypes.CompareFunctionEqual:
		return gl.Equal
	case gputypes.CompareFunctionGreater:
		return gl.Greater
	case gputypes.CompareFunctionNotEqual:
		return gl.Notequal
	case gputypes.CompareFunctionGreaterEqual:
		return gl.Gequal
	case gputypes.CompareFunctionAlways:
		return gl.Always
	default:
		return gl.Lequal
	}
}

func blendEquation(op material.BlendOperation) gl.Enum {
	switch op {
	case material.BlendOpSubtract:
		return gl.FuncSubtract
	case material.BlendOpReverseSubtract:
		return gl.FuncReverseSubtract
	case material.BlendOpMin:
		return gl.Min
	case material.BlendOpMax:
		return gl.Max
	default:
		return gl.FuncAdd
	}
}

// glBlendFactors is indexed by material.BlendFactor.
var glBlendFactors = [...]gl.Enum{
	material.BlendZero:             gl.Zero,
	material.BlendOne:              gl.One,
	material.BlendDstColor:         gl.DstColor,
	material.BlendOneMinusDstColor: gl.OneMinusDstColor,
	material.BlendSrcColor:         gl.SrcColor,
	material.BlendOneMinusSrcColor: gl.OneMinusSrcColor,
	material.BlendSrcAlpha:         gl.SrcAlpha,
	material.BlendOneMinusSrcAlpha: gl.OneMinusSrcAlpha,
	material.BlendDstAlpha:         gl.DstAlpha,
	material.BlendOneMinusDstAlpha: gl.OneMinusDstAlpha,
	material.BlendSrcAlphaSaturate: gl.SrcAlphaSaturate,
}

func glBlend(f material.BlendFactor) gl.Enum {
	if int(f) >= len(glBlendFactors) {
		return gl.One
	}
	return glBlendFactors[f]
}
