package gl3

import (
	"log/slog"

	"github.com/gogpu/gl3/material"
	"github.com/gogpu/gl3/vertex"
)

// MaterialRenderer applies the GPU state of one material type.
//
// The driver calls OnSetMaterial when the material or its type changes,
// OnRender before every draw and OnUnsetMaterial exactly once when it
// switches to another type or to 2D drawing.
type MaterialRenderer interface {
	// OnSetMaterial makes m current. last is the material applied before
	// and resetAll asks for every state to be reapplied.
	OnSetMaterial(m, last *material.Material, resetAll bool)
	// OnRender runs before each draw. It reports whether the draw can
	// proceed.
	OnRender(vt vertex.Kind) bool
	// OnUnsetMaterial undoes state the renderer set that the next renderer
	// does not expect.
	OnUnsetMaterial()
	// IsTransparent reports whether materials of this type are drawn in
	// the transparent pass.
	IsTransparent() bool
}

// renderReleaser is implemented by renderers owning GPU objects.
type renderReleaser interface {
	release()
}

type rendererEntry struct {
	renderer MaterialRenderer
	name     string
}

// AddMaterialRenderer registers r and returns the material type that
// selects it. Types are assigned in registration order.
func (d *Driver) AddMaterialRenderer(r MaterialRenderer, name string) material.Type {
	if r == nil {
		return -1
	}
	t := material.Type(len(d.renderers))
	if name == "" {
		name = t.String()
	}
	d.renderers = append(d.renderers, rendererEntry{renderer: r, name: name})
	d.log.Debug("gl3: material renderer added", slog.String("name", name), slog.Int("type", int(t)))
	return t
}

// MaterialRenderer returns the renderer of t, or nil.
func (d *Driver) MaterialRenderer(t material.Type) MaterialRenderer {
	if !d.validType(t) {
		return nil
	}
	return d.renderers[t].renderer
}

// MaterialRendererCount returns the number of registered renderers.
func (d *Driver) MaterialRendererCount() int {
	return len(d.renderers)
}

// MaterialRendererName returns the registration name of t.
func (d *Driver) MaterialRendererName(t material.Type) string {
	if !d.validType(t) {
		return ""
	}
	return d.renderers[t].name
}

// SetMaterialRendererName renames a registered renderer.
func (d *Driver) SetMaterialRendererName(t material.Type, name string) {
	if d.validType(t) {
		d.renderers[t].name = name
	}
}

func (d *Driver) validType(t material.Type) bool {
	return t >= 0 && int(t) < len(d.renderers)
}

// deleteMaterialRenderers releases every registered renderer.
func (d *Driver) deleteMaterialRenderers() {
	for _, e := range d.renderers {
		if r, ok := e.renderer.(renderReleaser); ok {
			r.release()
		}
	}
	d.renderers = nil
	for _, r := range []MaterialRenderer{d.renderer2DTexture, d.renderer2DNoTexture} {
		if r, ok := r.(renderReleaser); ok {
			r.release()
		}
	}
	d.renderer2DTexture, d.renderer2DNoTexture, d.renderer2DActive = nil, nil, nil
}

// builtinRenderer names the shader files and callback of a built-in
// material type.
type builtinRenderer struct {
	vs, fs   string
	base     material.Type
	callback func() material.ConstantCallback
}

func solidCB() material.ConstantCallback      { return &material.SolidCallback{} }
func solid2CB() material.ConstantCallback     { return &material.Solid2LayerCallback{} }
func reflectionCB() material.ConstantCallback { return &material.ReflectionCallback{} }

func lightmapCB(modulate float32) func() material.ConstantCallback {
	return func() material.ConstantCallback { return material.NewLightmapCallback(modulate) }
}

// builtinRenderers is indexed by material type.
var builtinRenderers = [material.BuiltinCount]builtinRenderer{
	material.Solid:                       {"Solid.vsh", "Solid.fsh", material.Solid, solidCB},
	material.Solid2Layer:                 {"Solid2.vsh", "Solid2Layer.fsh", material.Solid, solid2CB},
	material.Lightmap:                    {"Solid2.vsh", "LightmapModulate.fsh", material.Solid, lightmapCB(1)},
	material.LightmapAdd:                 {"Solid2.vsh", "LightmapAdd.fsh", material.Solid, lightmapCB(1)},
	material.LightmapM2:                  {"Solid2.vsh", "LightmapModulate.fsh", material.Solid, lightmapCB(2)},
	material.LightmapM4:                  {"Solid2.vsh", "LightmapModulate.fsh", material.Solid, lightmapCB(4)},
	material.LightmapLighting:            {"Solid2.vsh", "LightmapModulate.fsh", material.Solid, lightmapCB(1)},
	material.LightmapLightingM2:          {"Solid2.vsh", "LightmapModulate.fsh", material.Solid, lightmapCB(2)},
	material.LightmapLightingM4:          {"Solid2.vsh", "LightmapModulate.fsh", material.Solid, lightmapCB(4)},
	material.DetailMap:                   {"Solid2.vsh", "DetailMap.fsh", material.Solid, solid2CB},
	material.SphereMap:                   {"SphereMap.vsh", "SphereMap.fsh", material.Solid, reflectionCB},
	material.Reflection2Layer:            {"Reflection2Layer.vsh", "Reflection2Layer.fsh", material.Solid, reflectionCB},
	material.TransparentAddColor:         {"Solid.vsh", "Solid.fsh", material.TransparentAddColor, solidCB},
	material.TransparentAlphaChannel:     {"Solid.vsh", "TransparentAlphaChannel.fsh", material.TransparentAlphaChannel, solidCB},
	material.TransparentAlphaChannelRef:  {"Solid.vsh", "TransparentAlphaChannelRef.fsh", material.Solid, solidCB},
	material.TransparentVertexAlpha:      {"Solid.vsh", "TransparentVertexAlpha.fsh", material.TransparentAlphaChannel, solidCB},
	material.TransparentReflection2Layer: {"Reflection2Layer.vsh", "Reflection2Layer.fsh", material.TransparentAlphaChannel, reflectionCB},
	material.OneTextureBlend: {"Solid.vsh", "OneTextureBlend.fsh", material.OneTextureBlend, func() material.ConstantCallback {
		return &material.OneTextureBlendCallback{}
	}},
}

// createMaterialRenderers registers the built-in renderers in type order
// and creates the two 2D renderers. A renderer whose shaders are missing
// or fail to build is still registered, so type values stay stable; it
// draws with no program.
func (d *Driver) createMaterialRenderers() {
	for i, b := range builtinRenderers {
		t := material.Type(i)
		vs, fs := d.loadShaderData(b.vs, b.fs)
		r, err := d.newShaderRenderer(string(vs), string(fs), b.callback(), b.base, 0)
		if err != nil {
			d.log.Warn("gl3: built-in material without shader",
				slog.String("type", t.String()), slog.String("error", err.Error()))
		}
		d.AddMaterialRenderer(r, t.String())
	}

	vs, fs := d.loadShaderData("Renderer2D.vsh", "Renderer2D.fsh")
	d.renderer2DTexture = d.newRenderer2D(string(vs), string(fs), true)
	vs, fs = d.loadShaderData("Renderer2D.vsh", "Renderer2D_noTex.fsh")
	d.renderer2DNoTexture = d.newRenderer2D(string(vs), string(fs), false)
}
