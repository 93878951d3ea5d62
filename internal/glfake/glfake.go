// Package glfake provides a recording implementation of gl.Functions.
//
// GL records every call with its arguments, hands out object names, keeps
// enough object state to answer the queries the driver makes (buffer sizes,
// compile and link status, active uniforms), and returns configurable
// strings and limits. Active uniforms are discovered by scanning the
// `uniform` declarations of the attached shader sources, so programs built
// from real GLSL report real uniform names.
package glfake

import (
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/gogpu/gl3/gl"
)

// Call is one recorded GL call.
type Call struct {
	Name string
	Args []any
}

type shader struct {
	ty  gl.Enum
	src string
}

type uniform struct {
	name string
	ty   gl.Enum
	size int32
}

type program struct {
	shaders  []gl.Shader
	linked   bool
	uniforms []uniform
	values   map[gl.Uniform]any
}

// GL is a fake GL context. The zero value is not usable; call New.
type GL struct {
	VersionString  string
	VendorString   string
	RendererString string
	Extensions     []string

	Ints   map[gl.Enum][]int32
	Floats map[gl.Enum][]float32

	// Pixels is returned by ReadPixels, bottom row first.
	Pixels []byte
	// FramebufferStatus is returned by CheckFramebufferStatus.
	FramebufferStatus gl.Enum
	// FailBufferGen makes GenBuffer return 0.
	FailBufferGen bool

	calls    []Call
	errs     []gl.Enum
	next     uint32
	shaders  map[gl.Shader]*shader
	programs map[gl.Program]*program
	buffers  map[gl.Buffer]int
	bound    map[gl.Enum]gl.Buffer
	current  gl.Program
}

var _ gl.Functions = (*GL)(nil)

// New returns a fake OpenGL ES 2.0 context with common limits.
func New() *GL {
	return &GL{
		VersionString:  "OpenGL ES 2.0 glfake",
		VendorString:   "gogpu",
		RendererString: "glfake",
		Ints: map[gl.Enum][]int32{
			gl.MaxTextureImageUnits: {8},
			gl.MaxTextureSize:       {4096},
			gl.ViewportParam:        {0, 0, 800, 600},
		},
		Floats: map[gl.Enum][]float32{
			gl.AliasedLineWidthRange: {1, 8},
			gl.AliasedPointSizeRange: {1, 64},
		},
		FramebufferStatus: gl.FramebufferComplete,
		shaders:           make(map[gl.Shader]*shader),
		programs:          make(map[gl.Program]*program),
		buffers:           make(map[gl.Buffer]int),
		bound:             make(map[gl.Enum]gl.Buffer),
	}
}

func (g *GL) record(name string, args ...any) {
	g.calls = append(g.calls, Call{Name: name, Args: args})
}

func (g *GL) gen() uint32 {
	g.next++
	return g.next
}

// Calls returns a copy of the recorded calls.
func (g *GL) Calls() []Call {
	return slices.Clone(g.calls)
}

// Names returns the names of the recorded calls in order.
func (g *GL) Names() []string {
	names := make([]string, len(g.calls))
	for i, c := range g.calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how many calls named name were recorded.
func (g *GL) Count(name string) int {
	n := 0
	for _, c := range g.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// CountArgs returns how many calls named name were recorded whose leading
// arguments equal args.
func (g *GL) CountArgs(name string, args ...any) int {
	n := 0
	for _, c := range g.calls {
		if c.Name != name || len(c.Args) < len(args) {
			continue
		}
		if reflect.DeepEqual(c.Args[:len(args)], args) {
			n++
		}
	}
	return n
}

// Last returns the most recent call named name.
func (g *GL) Last(name string) (Call, bool) {
	for i := len(g.calls) - 1; i >= 0; i-- {
		if g.calls[i].Name == name {
			return g.calls[i], true
		}
	}
	return Call{}, false
}

// Reset forgets the recorded calls. Object state is kept.
func (g *GL) Reset() {
	g.calls = g.calls[:0]
}

// PushError queues an error for GetError.
func (g *GL) PushError(code gl.Enum) {
	g.errs = append(g.errs, code)
}

// BufferSize returns the allocated size of b, or -1 if b does not exist.
func (g *GL) BufferSize(b gl.Buffer) int {
	if n, ok := g.buffers[b]; ok {
		return n
	}
	return -1
}

// UniformValue returns the last value uploaded to the named uniform of p.
func (g *GL) UniformValue(p gl.Program, name string) (any, bool) {
	prog := g.programs[p]
	if prog == nil {
		return nil, false
	}
	for i, u := range prog.uniforms {
		if u.name == name {
			v, ok := prog.values[gl.Uniform(i)]
			return v, ok
		}
	}
	return nil, false
}

// ====================================================================
// gl.Functions
// ====================================================================

func (g *GL) ActiveTexture(t gl.Enum) { g.record("ActiveTexture", t) }

func (g *GL) AttachShader(p gl.Program, s gl.Shader) {
	g.record("AttachShader", p, s)
	if prog := g.programs[p]; prog != nil {
		prog.shaders = append(prog.shaders, s)
	}
}
func (g *GL) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	g.record("BindAttribLocation", p, a, name)
}

func (g *GL) BindBuffer(target gl.Enum, b gl.Buffer) {
	g.record("BindBuffer", target, b)
	g.bound[target] = b
}

func (g *GL) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	g.record("BindFramebuffer", target, fb)
}

func (g *GL) BindTexture(target gl.Enum, t gl.Texture) { g.record("BindTexture", target, t) }
func (g *GL) BlendEquation(mode gl.Enum)               { g.record("BlendEquation", mode) }

func (g *GL) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA gl.Enum) {
	g.record("BlendFuncSeparate", srcRGB, dstRGB, srcA, dstA)
}

func (g *GL) BufferData(target gl.Enum, size int, data []byte, usage gl.Enum) {
	g.record("BufferData", target, size, usage)
	if b := g.bound[target]; b != 0 {
		g.buffers[b] = size
	}
}

func (g *GL) BufferSubData(target gl.Enum, offset int, data []byte) {
	g.record("BufferSubData", target, offset, len(data))
}

func (g *GL) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	g.record("CheckFramebufferStatus", target)
	return g.FramebufferStatus
}

func (g *GL) Clear(mask gl.Enum)             { g.record("Clear", mask) }
func (g *GL) ClearColor(r, gr, b, a float32) { g.record("ClearColor", r, gr, b, a) }
func (g *GL) ClearDepthf(d float32)          { g.record("ClearDepthf", d) }
func (g *GL) ClearStencil(s int32)           { g.record("ClearStencil", s) }
func (g *GL) ColorMask(r, gr, b, a bool)     { g.record("ColorMask", r, gr, b, a) }
func (g *GL) CompileShader(s gl.Shader)      { g.record("CompileShader", s) }

func (g *GL) CompressedTexImage2D(target gl.Enum, level int32, internalFormat gl.Enum, width, height int32, data []byte) {
	g.record("CompressedTexImage2D", target, level, internalFormat, width, height)
}

func (g *GL) CreateProgram() gl.Program {
	p := gl.Program(g.gen())
	g.record("CreateProgram", p)
	g.programs[p] = &program{values: make(map[gl.Uniform]any)}
	return p
}

func (g *GL) CreateShader(ty gl.Enum) gl.Shader {
	s := gl.Shader(g.gen())
	g.record("CreateShader", ty, s)
	g.shaders[s] = &shader{ty: ty}
	return s
}

func (g *GL) CullFace(mode gl.Enum) { g.record("CullFace", mode) }

func (g *GL) DeleteBuffer(b gl.Buffer) {
	g.record("DeleteBuffer", b)
	delete(g.buffers, b)
}

func (g *GL) DeleteFramebuffer(fb gl.Framebuffer) { g.record("DeleteFramebuffer", fb) }

func (g *GL) DeleteProgram(p gl.Program) {
	g.record("DeleteProgram", p)
	delete(g.programs, p)
}

func (g *GL) DeleteShader(s gl.Shader) {
	g.record("DeleteShader", s)
	delete(g.shaders, s)
}

func (g *GL) DeleteTexture(t gl.Texture)           { g.record("DeleteTexture", t) }
func (g *GL) DepthFunc(f gl.Enum)                  { g.record("DepthFunc", f) }
func (g *GL) DepthMask(mask bool)                  { g.record("DepthMask", mask) }
func (g *GL) Disable(c gl.Enum)                    { g.record("Disable", c) }
func (g *GL) DisableVertexAttribArray(a gl.Attrib) { g.record("DisableVertexAttribArray", a) }

func (g *GL) DrawArrays(mode gl.Enum, first, count int32) {
	g.record("DrawArrays", mode, first, count)
}

func (g *GL) DrawBuffers(bufs []gl.Enum) { g.record("DrawBuffers", slices.Clone(bufs)) }

func (g *GL) DrawElements(mode gl.Enum, count int32, ty gl.Enum, offset int) {
	g.record("DrawElements", mode, count, ty, offset)
}

func (g *GL) Enable(c gl.Enum)                    { g.record("Enable", c) }
func (g *GL) EnableVertexAttribArray(a gl.Attrib) { g.record("EnableVertexAttribArray", a) }
func (g *GL) Flush()                              { g.record("Flush") }

func (g *GL) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int32) {
	g.record("FramebufferTexture2D", target, attachment, texTarget, t, level)
}

func (g *GL) FrontFace(mode gl.Enum) { g.record("FrontFace", mode) }

func (g *GL) GenBuffer() gl.Buffer {
	if g.FailBufferGen {
		g.record("GenBuffer", gl.Buffer(0))
		return 0
	}
	b := gl.Buffer(g.gen())
	g.record("GenBuffer", b)
	g.buffers[b] = 0
	return b
}

func (g *GL) GenFramebuffer() gl.Framebuffer {
	fb := gl.Framebuffer(g.gen())
	g.record("GenFramebuffer", fb)
	return fb
}

func (g *GL) GenTexture() gl.Texture {
	t := gl.Texture(g.gen())
	g.record("GenTexture", t)
	return t
}

func (g *GL) GenerateMipmap(target gl.Enum) { g.record("GenerateMipmap", target) }

func (g *GL) GetActiveUniform(p gl.Program, index uint32) (string, int32, gl.Enum) {
	g.record("GetActiveUniform", p, index)
	prog := g.programs[p]
	if prog == nil || int(index) >= len(prog.uniforms) {
		return "", 0, 0
	}
	u := prog.uniforms[index]
	name := u.name
	if u.size > 1 {
		name += "[0]"
	}
	return name, u.size, u.ty
}

func (g *GL) GetError() gl.Enum {
	if len(g.errs) == 0 {
		return gl.NoError
	}
	e := g.errs[0]
	g.errs = g.errs[1:]
	return e
}

func (g *GL) GetFloatv(pname gl.Enum, dst []float32) { copy(dst, g.Floats[pname]) }
func (g *GL) GetIntegerv(pname gl.Enum, dst []int32) { copy(dst, g.Ints[pname]) }

func (g *GL) GetProgrami(p gl.Program, pname gl.Enum) int32 {
	prog := g.programs[p]
	if prog == nil {
		return 0
	}
	switch pname {
	case gl.LinkStatus:
		if prog.linked {
			return 1
		}
	case gl.ActiveUniforms:
		return int32(len(prog.uniforms))
	}
	return 0
}

func (g *GL) GetProgramInfoLog(p gl.Program) string {
	if prog := g.programs[p]; prog != nil && !prog.linked {
		return "link failed"
	}
	return ""
}

func (g *GL) GetShaderi(s gl.Shader, pname gl.Enum) int32 {
	sh := g.shaders[s]
	if sh == nil || pname != gl.CompileStatus {
		return 0
	}
	if compiles(sh.src) {
		return 1
	}
	return 0
}

func (g *GL) GetShaderInfoLog(s gl.Shader) string {
	if sh := g.shaders[s]; sh != nil && !compiles(sh.src) {
		return "0:1: error: #error directive"
	}
	return ""
}

// A source compiles unless it is empty or carries an #error directive.
func compiles(src string) bool {
	return strings.TrimSpace(src) != "" && !strings.Contains(src, "#error")
}

func (g *GL) GetString(pname gl.Enum) string {
	switch pname {
	case gl.Version:
		return g.VersionString
	case gl.Vendor:
		return g.VendorString
	case gl.Renderer:
		return g.RendererString
	case gl.Extensions:
		return strings.Join(g.Extensions, " ")
	case gl.ShadingLanguageVersion:
		return "OpenGL ES GLSL ES 1.00"
	}
	return ""
}

func (g *GL) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	g.record("GetUniformLocation", p, name)
	prog := g.programs[p]
	if prog == nil {
		return -1
	}
	name = strings.TrimSuffix(name, "[0]")
	for i, u := range prog.uniforms {
		if u.name == name {
			return gl.Uniform(i)
		}
	}
	return -1
}

func (g *GL) Hint(target, mode gl.Enum) { g.record("Hint", target, mode) }
func (g *GL) LineWidth(w float32)      { g.record("LineWidth", w) }

func (g *GL) LinkProgram(p gl.Program) {
	g.record("LinkProgram", p)
	prog := g.programs[p]
	if prog == nil {
		return
	}
	prog.linked = len(prog.shaders) > 0
	prog.uniforms = prog.uniforms[:0]
	for _, s := range prog.shaders {
		sh := g.shaders[s]
		if sh == nil || !compiles(sh.src) {
			prog.linked = false
			continue
		}
		for _, u := range scanUniforms(sh.src) {
			if !slices.ContainsFunc(prog.uniforms, func(o uniform) bool { return o.name == u.name }) {
				prog.uniforms = append(prog.uniforms, u)
			}
		}
	}
}

func (g *GL) PixelStorei(pname gl.Enum, param int32) { g.record("PixelStorei", pname, param) }

func (g *GL) ReadPixels(dst []byte, x, y, width, height int32, format, ty gl.Enum) {
	g.record("ReadPixels", x, y, width, height, format, ty)
	copy(dst, g.Pixels)
}

func (g *GL) Scissor(x, y, width, height int32) { g.record("Scissor", x, y, width, height) }

func (g *GL) ShaderSource(s gl.Shader, src string) {
	g.record("ShaderSource", s)
	if sh := g.shaders[s]; sh != nil {
		sh.src = src
	}
}

func (g *GL) TexImage2D(target gl.Enum, level int32, internalFormat gl.Enum, width, height int32, format, ty gl.Enum, data []byte) {
	g.record("TexImage2D", target, level, internalFormat, width, height, format, ty)
}

func (g *GL) TexParameterf(target, pname gl.Enum, param float32) {
	g.record("TexParameterf", target, pname, param)
}

func (g *GL) TexParameteri(target, pname gl.Enum, param int32) {
	g.record("TexParameteri", target, pname, param)
}

func (g *GL) uniform(name string, u gl.Uniform, v any) {
	g.record(name, u, v)
	if prog := g.programs[g.current]; prog != nil {
		prog.values[u] = v
	}
}

func (g *GL) Uniform1fv(u gl.Uniform, v []float32) { g.uniform("Uniform1fv", u, slices.Clone(v)) }
func (g *GL) Uniform2fv(u gl.Uniform, v []float32) { g.uniform("Uniform2fv", u, slices.Clone(v)) }
func (g *GL) Uniform3fv(u gl.Uniform, v []float32) { g.uniform("Uniform3fv", u, slices.Clone(v)) }
func (g *GL) Uniform4fv(u gl.Uniform, v []float32) { g.uniform("Uniform4fv", u, slices.Clone(v)) }
func (g *GL) Uniform1iv(u gl.Uniform, v []int32)   { g.uniform("Uniform1iv", u, slices.Clone(v)) }
func (g *GL) Uniform2iv(u gl.Uniform, v []int32)   { g.uniform("Uniform2iv", u, slices.Clone(v)) }
func (g *GL) Uniform3iv(u gl.Uniform, v []int32)   { g.uniform("Uniform3iv", u, slices.Clone(v)) }
func (g *GL) Uniform4iv(u gl.Uniform, v []int32)   { g.uniform("Uniform4iv", u, slices.Clone(v)) }
func (g *GL) Uniform1uiv(u gl.Uniform, v []uint32) { g.uniform("Uniform1uiv", u, slices.Clone(v)) }
func (g *GL) Uniform2uiv(u gl.Uniform, v []uint32) { g.uniform("Uniform2uiv", u, slices.Clone(v)) }
func (g *GL) Uniform3uiv(u gl.Uniform, v []uint32) { g.uniform("Uniform3uiv", u, slices.Clone(v)) }
func (g *GL) Uniform4uiv(u gl.Uniform, v []uint32) { g.uniform("Uniform4uiv", u, slices.Clone(v)) }

func (g *GL) UniformMatrix2fv(u gl.Uniform, v []float32) {
	g.uniform("UniformMatrix2fv", u, slices.Clone(v))
}

func (g *GL) UniformMatrix3fv(u gl.Uniform, v []float32) {
	g.uniform("UniformMatrix3fv", u, slices.Clone(v))
}

func (g *GL) UniformMatrix4fv(u gl.Uniform, v []float32) {
	g.uniform("UniformMatrix4fv", u, slices.Clone(v))
}

func (g *GL) UseProgram(p gl.Program) {
	g.record("UseProgram", p)
	g.current = p
}

func (g *GL) VertexAttribPointer(a gl.Attrib, size int32, ty gl.Enum, normalized bool, stride int32, offset int) {
	g.record("VertexAttribPointer", a, size, ty, normalized, stride, offset)
}

func (g *GL) VertexAttribIPointer(a gl.Attrib, size int32, ty gl.Enum, stride int32, offset int) {
	g.record("VertexAttribIPointer", a, size, ty, stride, offset)
}

func (g *GL) Viewport(x, y, width, height int32) { g.record("Viewport", x, y, width, height) }

// ====================================================================
// Uniform discovery
// ====================================================================

var uniformRE = regexp.MustCompile(`(?m)^\s*uniform\s+(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+(\w+)\s*(?:\[(\d+)\])?\s*;`)

var glslTypes = map[string]gl.Enum{
	"float":       gl.Float,
	"vec2":        gl.FloatVec2,
	"vec3":        gl.FloatVec3,
	"vec4":        gl.FloatVec4,
	"int":         gl.Int,
	"ivec2":       gl.IntVec2,
	"ivec3":       gl.IntVec3,
	"ivec4":       gl.IntVec4,
	"uint":        gl.UnsignedInt,
	"uvec2":       gl.UnsignedIntVec2,
	"uvec3":       gl.UnsignedIntVec3,
	"uvec4":       gl.UnsignedIntVec4,
	"bool":        gl.Bool,
	"mat2":        gl.FloatMat2,
	"mat3":        gl.FloatMat3,
	"mat4":        gl.FloatMat4,
	"sampler2D":   gl.Sampler2D,
	"samplerCube": gl.SamplerCube,
}

func scanUniforms(src string) []uniform {
	var out []uniform
	for _, m := range uniformRE.FindAllStringSubmatch(src, -1) {
		ty, ok := glslTypes[m[1]]
		if !ok {
			continue
		}
		size := int32(1)
		if m[3] != "" {
			size = 0
			for _, r := range m[3] {
				size = size*10 + int32(r-'0')
			}
		}
		out = append(out, uniform{name: m[2], ty: ty, size: size})
	}
	return out
}
