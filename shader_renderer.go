package gl3

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/gl3/gl"
	"github.com/gogpu/gl3/internal/cache"
	"github.com/gogpu/gl3/material"
	"github.com/gogpu/gl3/vertex"
)

// uniformInfo is one active uniform of a linked program.
type uniformInfo struct {
	name string
	loc  gl.Uniform
	ty   gl.Enum
	size int32
}

// ShaderMaterialRenderer draws a material type with a GLSL program. The
// base material type decides how it blends; the constant callback uploads
// its uniforms before every draw.
//
// A ShaderMaterialRenderer is also the material.Services handed to its
// callback, so constant IDs index the program's active uniforms.
type ShaderMaterialRenderer struct {
	d        *Driver
	program  gl.Program
	key      cache.Key
	uniforms []uniformInfo
	callback material.ConstantCallback
	userData int

	alpha         bool
	blending      bool
	fixedBlending bool
}

var (
	_ MaterialRenderer  = (*ShaderMaterialRenderer)(nil)
	_ material.Services = (*ShaderMaterialRenderer)(nil)
)

// newShaderRenderer builds a renderer from vertex and fragment source. The
// renderer is returned even when the program could not be built; it then
// draws with program 0 and the error says why.
func (d *Driver) newShaderRenderer(vs, fs string, cb material.ConstantCallback, base material.Type, userData int) (*ShaderMaterialRenderer, error) {
	r := &ShaderMaterialRenderer{d: d, callback: cb, userData: userData}
	switch base {
	case material.TransparentVertexAlpha, material.TransparentAlphaChannel:
		r.alpha = true
	case material.TransparentAddColor:
		r.fixedBlending = true
	case material.OneTextureBlend:
		r.blending = true
	}

	p, key, err := d.acquireProgram(vs, fs)
	if err != nil {
		return r, err
	}
	r.program, r.key = p, key
	r.uniforms = d.activeUniforms(p)
	return r, nil
}

// AddShaderMaterial builds a program from GLSL source and registers a
// renderer for it. base selects the blending behavior (solid, additive,
// alpha channel or one texture blend). cb may be nil.
func (d *Driver) AddShaderMaterial(vs, fs string, cb material.ConstantCallback, base material.Type, userData int) (material.Type, error) {
	r, err := d.newShaderRenderer(vs, fs, cb, base, userData)
	if err != nil {
		return -1, err
	}
	return d.AddMaterialRenderer(r, ""), nil
}

// AddShaderMaterialFromFiles is AddShaderMaterial with the sources read
// from the shader file system.
func (d *Driver) AddShaderMaterialFromFiles(vsName, fsName string, cb material.ConstantCallback, base material.Type, userData int) (material.Type, error) {
	vs, fs := d.loadShaderData(vsName, fsName)
	if vs == nil || fs == nil {
		return -1, fmt.Errorf("%w: %s, %s", ErrNoShaderSource, vsName, fsName)
	}
	return d.AddShaderMaterial(string(vs), string(fs), cb, base, userData)
}

// Program returns the GL program of the renderer, 0 if it has none.
func (r *ShaderMaterialRenderer) Program() gl.Program { return r.program }

// OnSetMaterial binds the program and applies the basic render states of m.
func (r *ShaderMaterialRenderer) OnSetMaterial(m, last *material.Material, resetAll bool) {
	d := r.d
	d.state.UseProgram(r.program)
	d.SetBasicRenderStates(m, last, resetAll)

	switch {
	case r.alpha:
		d.state.SetBlend(true)
		d.state.SetBlendFunc(gl.SrcAlpha, gl.OneMinusSrcAlpha)
	case r.fixedBlending:
		d.state.SetBlendFunc(gl.One, gl.OneMinusSrcColor)
		d.state.SetBlend(true)
	case r.blending:
		bf := material.UnpackBlendFunc(m.TypeParam)
		d.state.SetBlendFuncSeparate(glBlend(bf.SrcRGB), glBlend(bf.DstRGB), glBlend(bf.SrcAlpha), glBlend(bf.DstAlpha))
		d.state.SetBlend(true)
	}

	if r.callback != nil {
		r.callback.OnSetMaterial(m)
	}
}

// OnRender hands the renderer to the constant callback. It never refuses
// a draw.
func (r *ShaderMaterialRenderer) OnRender(vertex.Kind) bool {
	if r.callback != nil && r.program != 0 {
		r.d.state.UseProgram(r.program)
		r.callback.OnSetConstants(r, r.userData)
	}
	return true
}

// OnUnsetMaterial does nothing; the next renderer replaces all state.
func (r *ShaderMaterialRenderer) OnUnsetMaterial() {}

// IsTransparent reports whether the base material blends.
func (r *ShaderMaterialRenderer) IsTransparent() bool {
	return r.alpha || r.blending || r.fixedBlending
}

func (r *ShaderMaterialRenderer) release() {
	if r.program != 0 {
		r.d.releaseProgram(r.key)
		r.program = 0
	}
}

// ====================================================================
// material.Services
// ====================================================================

func (r *ShaderMaterialRenderer) constantID(name string) int {
	for i, u := range r.uniforms {
		if u.name == name {
			return i
		}
	}
	return material.NotFound
}

// VertexShaderConstantID returns the id of the uniform name, or
// material.NotFound.
func (r *ShaderMaterialRenderer) VertexShaderConstantID(name string) int { return r.constantID(name) }

// PixelShaderConstantID is VertexShaderConstantID; both stages share one
// program.
func (r *ShaderMaterialRenderer) PixelShaderConstantID(name string) int { return r.constantID(name) }

// SetVertexShaderConstantF sets a float uniform.
func (r *ShaderMaterialRenderer) SetVertexShaderConstantF(id int, v []float32) bool {
	return r.setFloats(id, v)
}

// SetVertexShaderConstantI sets an int or sampler uniform.
func (r *ShaderMaterialRenderer) SetVertexShaderConstantI(id int, v []int32) bool {
	return r.setInts(id, v)
}

// SetVertexShaderConstantU sets an unsigned uniform.
func (r *ShaderMaterialRenderer) SetVertexShaderConstantU(id int, v []uint32) bool {
	return r.setUints(id, v)
}

// SetPixelShaderConstantF sets a float uniform.
func (r *ShaderMaterialRenderer) SetPixelShaderConstantF(id int, v []float32) bool {
	return r.setFloats(id, v)
}

// SetPixelShaderConstantI sets an int or sampler uniform.
func (r *ShaderMaterialRenderer) SetPixelShaderConstantI(id int, v []int32) bool {
	return r.setInts(id, v)
}

// SetPixelShaderConstantU sets an unsigned uniform.
func (r *ShaderMaterialRenderer) SetPixelShaderConstantU(id int, v []uint32) bool {
	return r.setUints(id, v)
}

// VideoDriver returns the driver that owns r.
func (r *ShaderMaterialRenderer) VideoDriver() material.VideoDriver { return r.d }

func (r *ShaderMaterialRenderer) uniform(id int) (uniformInfo, bool) {
	if id < 0 || id >= len(r.uniforms) {
		return uniformInfo{}, false
	}
	return r.uniforms[id], true
}

func (r *ShaderMaterialRenderer) setFloats(id int, v []float32) bool {
	u, ok := r.uniform(id)
	if !ok || len(v) == 0 {
		return false
	}
	f := r.d.gl
	switch u.ty {
	case gl.Float:
		f.Uniform1fv(u.loc, v)
	case gl.FloatVec2:
		f.Uniform2fv(u.loc, v)
	case gl.FloatVec3:
		f.Uniform3fv(u.loc, v)
	case gl.FloatVec4:
		f.Uniform4fv(u.loc, v)
	case gl.FloatMat2:
		f.UniformMatrix2fv(u.loc, v)
	case gl.FloatMat3:
		f.UniformMatrix3fv(u.loc, v)
	case gl.FloatMat4:
		f.UniformMatrix4fv(u.loc, v)
	default:
		return false
	}
	return true
}

func (r *ShaderMaterialRenderer) setInts(id int, v []int32) bool {
	u, ok := r.uniform(id)
	if !ok || len(v) == 0 {
		return false
	}
	f := r.d.gl
	switch u.ty {
	case gl.Int, gl.Bool, gl.Sampler2D, gl.SamplerCube:
		f.Uniform1iv(u.loc, v)
	case gl.IntVec2, gl.BoolVec2:
		f.Uniform2iv(u.loc, v)
	case gl.IntVec3, gl.BoolVec3:
		f.Uniform3iv(u.loc, v)
	case gl.IntVec4, gl.BoolVec4:
		f.Uniform4iv(u.loc, v)
	default:
		return false
	}
	return true
}

func (r *ShaderMaterialRenderer) setUints(id int, v []uint32) bool {
	u, ok := r.uniform(id)
	if !ok || len(v) == 0 || !r.d.caps.UnsignedUniforms() {
		return false
	}
	f := r.d.gl
	switch u.ty {
	case gl.UnsignedInt:
		f.Uniform1uiv(u.loc, v)
	case gl.UnsignedIntVec2:
		f.Uniform2uiv(u.loc, v)
	case gl.UnsignedIntVec3:
		f.Uniform3uiv(u.loc, v)
	case gl.UnsignedIntVec4:
		f.Uniform4uiv(u.loc, v)
	default:
		return false
	}
	return true
}

// ====================================================================
// Programs
// ====================================================================

// acquireProgram returns a linked program for the source pair. Identical
// sources share one program.
func (d *Driver) acquireProgram(vs, fs string) (gl.Program, cache.Key, error) {
	if vs == "" || fs == "" {
		return 0, cache.Key{}, ErrNoShaderSource
	}
	key := cache.KeyOf(vs, fs)
	p, err := d.programs.Acquire(key, func() (gl.Program, error) {
		return d.linkProgram(vs, fs)
	})
	if err != nil {
		return 0, cache.Key{}, err
	}
	return p, key, nil
}

func (d *Driver) releaseProgram(key cache.Key) {
	d.programs.Release(key, d.state.DeleteProgram)
}

func (d *Driver) linkProgram(vs, fs string) (gl.Program, error) {
	f := d.gl
	p := f.CreateProgram()
	if p == 0 {
		return 0, fmt.Errorf("%w: no program name", ErrShaderLink)
	}

	vsh, err := d.compileShader(gl.VertexShader, vs)
	if err != nil {
		f.DeleteProgram(p)
		return 0, err
	}
	fsh, err := d.compileShader(gl.FragmentShader, fs)
	if err != nil {
		f.DeleteShader(vsh)
		f.DeleteProgram(p)
		return 0, err
	}
	f.AttachShader(p, vsh)
	f.AttachShader(p, fsh)
	for s := range vertex.SemanticCount {
		f.BindAttribLocation(p, gl.Attrib(s), s.AttributeName())
	}
	f.LinkProgram(p)
	// Attached shaders are only flagged; they go with the program.
	f.DeleteShader(vsh)
	f.DeleteShader(fsh)

	if f.GetProgrami(p, gl.LinkStatus) == 0 {
		info := strings.TrimSpace(f.GetProgramInfoLog(p))
		f.DeleteProgram(p)
		return 0, fmt.Errorf("%w: %s", ErrShaderLink, info)
	}
	d.checkBasic("linkProgram")
	return p, nil
}

func (d *Driver) compileShader(ty gl.Enum, src string) (gl.Shader, error) {
	f := d.gl
	s := f.CreateShader(ty)
	if s == 0 {
		return 0, fmt.Errorf("%w: no shader name", ErrShaderCompile)
	}
	f.ShaderSource(s, src)
	f.CompileShader(s)
	if f.GetShaderi(s, gl.CompileStatus) == 0 {
		info := strings.TrimSpace(f.GetShaderInfoLog(s))
		f.DeleteShader(s)
		stage := "fragment"
		if ty == gl.VertexShader {
			stage = "vertex"
		}
		return 0, fmt.Errorf("%w: %s: %s", ErrShaderCompile, stage, info)
	}
	return s, nil
}

// activeUniforms lists the uniforms of p. Array names lose their "[0]".
func (d *Driver) activeUniforms(p gl.Program) []uniformInfo {
	n := d.gl.GetProgrami(p, gl.ActiveUniforms)
	out := make([]uniformInfo, 0, n)
	for i := range uint32(max(n, 0)) {
		name, size, ty := d.gl.GetActiveUniform(p, i)
		if name == "" {
			continue
		}
		name = strings.TrimSuffix(name, "[0]")
		loc := d.gl.GetUniformLocation(p, name)
		if loc < 0 {
			continue
		}
		out = append(out, uniformInfo{name: name, loc: loc, ty: ty, size: size})
	}
	d.log.Debug("gl3: program uniforms", slog.Int("program", int(p)), slog.Int("count", len(out)))
	return out
}
