package gl3

import (
	"log/slog"

	"github.com/gogpu/gl3/gl"
	"github.com/gogpu/gl3/internal/cache"
	"github.com/gogpu/gl3/material"
	"github.com/gogpu/gl3/vertex"
)

// renderer2D draws screen space images and primitives. The driver owns two
// of them, one sampling texture unit 0 and one using vertex colors only.
type renderer2D struct {
	d           *Driver
	program     gl.Program
	key         cache.Key
	withTexture bool

	thickness    gl.Uniform
	textureUsage gl.Uniform
	textureUnit  gl.Uniform
}

func (d *Driver) newRenderer2D(vs, fs string, withTexture bool) *renderer2D {
	r := &renderer2D{d: d, withTexture: withTexture, thickness: -1, textureUsage: -1, textureUnit: -1}
	p, key, err := d.acquireProgram(vs, fs)
	if err != nil {
		d.log.Warn("gl3: 2D renderer without shader",
			slog.Bool("texture", withTexture), slog.String("error", err.Error()))
		return r
	}
	r.program, r.key = p, key
	r.thickness = d.gl.GetUniformLocation(p, "uThickness")
	if withTexture {
		r.textureUsage = d.gl.GetUniformLocation(p, "uTextureUsage")
		r.textureUnit = d.gl.GetUniformLocation(p, "uTextureUnit")
	}
	return r
}

func (r *renderer2D) OnSetMaterial(m, last *material.Material, resetAll bool) {
	d := r.d
	d.state.UseProgram(r.program)
	d.SetBasicRenderStates(m, last, resetAll)
	if r.program == 0 {
		return
	}

	thickness := m.Thickness
	if thickness <= 0 {
		thickness = 1
	}
	if r.thickness >= 0 {
		d.gl.Uniform1fv(r.thickness, []float32{thickness})
	}
	if r.withTexture {
		usage := int32(0)
		if m.Texture(0) != nil {
			usage = 1
		}
		if r.textureUsage >= 0 {
			d.gl.Uniform1iv(r.textureUsage, []int32{usage})
		}
		if r.textureUnit >= 0 {
			d.gl.Uniform1iv(r.textureUnit, []int32{0})
		}
	}
}

func (r *renderer2D) OnRender(vertex.Kind) bool {
	r.d.state.UseProgram(r.program)
	return true
}

func (r *renderer2D) OnUnsetMaterial() {}

func (r *renderer2D) IsTransparent() bool { return false }

func (r *renderer2D) release() {
	if r.program != 0 {
		r.d.releaseProgram(r.key)
		r.program = 0
	}
}
