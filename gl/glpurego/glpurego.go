//go:build darwin || linux || freebsd

// Package glpurego implements gl.Functions on the system OpenGL or
// OpenGL ES library without cgo. Entry points are resolved with dlsym
// through purego, or through a caller-supplied lookup such as a windowing
// library's GetProcAddress.
package glpurego

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/gogpu/gl3/gl"
)

// Functions calls into a loaded GL library. Every method must be called on
// the thread that owns the current context.
type Functions struct {
	activeTexture            func(texture uint32)
	attachShader             func(program, shader uint32)
	bindAttribLocation       func(program, index uint32, name string)
	bindBuffer               func(target, buffer uint32)
	bindFramebuffer          func(target, fb uint32)
	bindTexture              func(target, texture uint32)
	blendEquation            func(mode uint32)
	blendFuncSeparate        func(srcRGB, dstRGB, srcA, dstA uint32)
	bufferData               func(target uint32, size int, data unsafe.Pointer, usage uint32)
	bufferSubData            func(target uint32, offset, size int, data unsafe.Pointer)
	checkFramebufferStatus   func(target uint32) uint32
	clear                    func(mask uint32)
	clearColor               func(r, g, b, a float32)
	clearDepthf              func(d float32)
	clearStencil             func(s int32)
	colorMask                func(r, g, b, a bool)
	compileShader            func(shader uint32)
	compressedTexImage2D     func(target uint32, level int32, internalFormat uint32, width, height, border, size int32, data unsafe.Pointer)
	createProgram            func() uint32
	createShader             func(ty uint32) uint32
	cullFace                 func(mode uint32)
	deleteBuffers            func(n int32, buffers *uint32)
	deleteFramebuffers       func(n int32, fbs *uint32)
	deleteProgram            func(program uint32)
	deleteShader             func(shader uint32)
	deleteTextures           func(n int32, textures *uint32)
	depthFunc                func(f uint32)
	depthMask                func(mask bool)
	disable                  func(cap uint32)
	disableVertexAttribArray func(index uint32)
	drawArrays               func(mode uint32, first, count int32)
	drawBuffers              func(n int32, bufs *uint32)
	drawElements             func(mode uint32, count int32, ty uint32, offset uintptr)
	enable                   func(cap uint32)
	enableVertexAttribArray  func(index uint32)
	flush                    func()
	framebufferTexture2D     func(target, attachment, texTarget, texture uint32, level int32)
	frontFace                func(mode uint32)
	genBuffers               func(n int32, buffers *uint32)
	genFramebuffers          func(n int32, fbs *uint32)
	genTextures              func(n int32, textures *uint32)
	generateMipmap           func(target uint32)
	getActiveUniform         func(program, index uint32, bufSize int32, length, size *int32, ty *uint32, name *byte)
	getError                 func() uint32
	getFloatv                func(pname uint32, data *float32)
	getIntegerv              func(pname uint32, data *int32)
	getProgramiv             func(program, pname uint32, params *int32)
	getProgramInfoLog        func(program uint32, bufSize int32, length *int32, log *byte)
	getShaderiv              func(shader, pname uint32, params *int32)
	getShaderInfoLog         func(shader uint32, bufSize int32, length *int32, log *byte)
	getString                func(name uint32) unsafe.Pointer
	getUniformLocation       func(program uint32, name string) int32
	hint                     func(target, mode uint32)
	lineWidth                func(w float32)
	linkProgram              func(program uint32)
	pixelStorei              func(pname uint32, param int32)
	readPixels               func(x, y, width, height int32, format, ty uint32, pixels unsafe.Pointer)
	scissor                  func(x, y, width, height int32)
	shaderSource             func(shader uint32, count int32, src unsafe.Pointer, length *int32)
	texImage2D               func(target uint32, level, internalFormat, width, height, border int32, format, ty uint32, data unsafe.Pointer)
	texParameterf            func(target, pname uint32, param float32)
	texParameteri            func(target, pname uint32, param int32)
	uniform1fv               func(location, count int32, v *float32)
	uniform2fv               func(location, count int32, v *float32)
	uniform3fv               func(location, count int32, v *float32)
	uniform4fv               func(location, count int32, v *float32)
	uniform1iv               func(location, count int32, v *int32)
	uniform2iv               func(location, count int32, v *int32)
	uniform3iv               func(location, count int32, v *int32)
	uniform4iv               func(location, count int32, v *int32)
	uniform1uiv              func(location, count int32, v *uint32)
	uniform2uiv              func(location, count int32, v *uint32)
	uniform3uiv              func(location, count int32, v *uint32)
	uniform4uiv              func(location, count int32, v *uint32)
	uniformMatrix2fv         func(location, count int32, transpose bool, v *float32)
	uniformMatrix3fv         func(location, count int32, transpose bool, v *float32)
	uniformMatrix4fv         func(location, count int32, transpose bool, v *float32)
	useProgram               func(program uint32)
	vertexAttribPointer      func(index uint32, size int32, ty uint32, normalized bool, stride int32, offset uintptr)
	vertexAttribIPointer     func(index uint32, size int32, ty uint32, stride int32, offset uintptr)
	viewport                 func(x, y, width, height int32)
}

var _ gl.Functions = (*Functions)(nil)

type binding struct {
	name string
	fn   any
	// optional entry points are missing on OpenGL ES 2.0.
	optional bool
}

func (f *Functions) bindings() []binding {
	return []binding{
		{"glActiveTexture", &f.activeTexture, false},
		{"glAttachShader", &f.attachShader, false},
		{"glBindAttribLocation", &f.bindAttribLocation, false},
		{"glBindBuffer", &f.bindBuffer, false},
		{"glBindFramebuffer", &f.bindFramebuffer, false},
		{"glBindTexture", &f.bindTexture, false},
		{"glBlendEquation", &f.blendEquation, false},
		{"glBlendFuncSeparate", &f.blendFuncSeparate, false},
		{"glBufferData", &f.bufferData, false},
		{"glBufferSubData", &f.bufferSubData, false},
		{"glCheckFramebufferStatus", &f.checkFramebufferStatus, false},
		{"glClear", &f.clear, false},
		{"glClearColor", &f.clearColor, false},
		{"glClearDepthf", &f.clearDepthf, false},
		{"glClearStencil", &f.clearStencil, false},
		{"glColorMask", &f.colorMask, false},
		{"glCompileShader", &f.compileShader, false},
		{"glCompressedTexImage2D", &f.compressedTexImage2D, false},
		{"glCreateProgram", &f.createProgram, false},
		{"glCreateShader", &f.createShader, false},
		{"glCullFace", &f.cullFace, false},
		{"glDeleteBuffers", &f.deleteBuffers, false},
		{"glDeleteFramebuffers", &f.deleteFramebuffers, false},
		{"glDeleteProgram", &f.deleteProgram, false},
		{"glDeleteShader", &f.deleteShader, false},
		{"glDeleteTextures", &f.deleteTextures, false},
		{"glDepthFunc", &f.depthFunc, false},
		{"glDepthMask", &f.depthMask, false},
		{"glDisable", &f.disable, false},
		{"glDisableVertexAttribArray", &f.disableVertexAttribArray, false},
		{"glDrawArrays", &f.drawArrays, false},
		{"glDrawBuffers", &f.drawBuffers, true},
		{"glDrawElements", &f.drawElements, false},
		{"glEnable", &f.enable, false},
		{"glEnableVertexAttribArray", &f.enableVertexAttribArray, false},
		{"glFlush", &f.flush, false},
		{"glFramebufferTexture2D", &f.framebufferTexture2D, false},
		{"glFrontFace", &f.frontFace, false},
		{"glGenBuffers", &f.genBuffers, false},
		{"glGenFramebuffers", &f.genFramebuffers, false},
		{"glGenTextures", &f.genTextures, false},
		{"glGenerateMipmap", &f.generateMipmap, false},
		{"glGetActiveUniform", &f.getActiveUniform, false},
		{"glGetError", &f.getError, false},
		{"glGetFloatv", &f.getFloatv, false},
		{"glGetIntegerv", &f.getIntegerv, false},
		{"glGetProgramiv", &f.getProgramiv, false},
		{"glGetProgramInfoLog", &f.getProgramInfoLog, false},
		{"glGetShaderiv", &f.getShaderiv, false},
		{"glGetShaderInfoLog", &f.getShaderInfoLog, false},
		{"glGetString", &f.getString, false},
		{"glGetUniformLocation", &f.getUniformLocation, false},
		{"glHint", &f.hint, false},
		{"glLineWidth", &f.lineWidth, false},
		{"glLinkProgram", &f.linkProgram, false},
		{"glPixelStorei", &f.pixelStorei, false},
		{"glReadPixels", &f.readPixels, false},
		{"glScissor", &f.scissor, false},
		{"glShaderSource", &f.shaderSource, false},
		{"glTexImage2D", &f.texImage2D, false},
		{"glTexParameterf", &f.texParameterf, false},
		{"glTexParameteri", &f.texParameteri, false},
		{"glUniform1fv", &f.uniform1fv, false},
		{"glUniform2fv", &f.uniform2fv, false},
		{"glUniform3fv", &f.uniform3fv, false},
		{"glUniform4fv", &f.uniform4fv, false},
		{"glUniform1iv", &f.uniform1iv, false},
		{"glUniform2iv", &f.uniform2iv, false},
		{"glUniform3iv", &f.uniform3iv, false},
		{"glUniform4iv", &f.uniform4iv, false},
		{"glUniform1uiv", &f.uniform1uiv, true},
		{"glUniform2uiv", &f.uniform2uiv, true},
		{"glUniform3uiv", &f.uniform3uiv, true},
		{"glUniform4uiv", &f.uniform4uiv, true},
		{"glUniformMatrix2fv", &f.uniformMatrix2fv, false},
		{"glUniformMatrix3fv", &f.uniformMatrix3fv, false},
		{"glUniformMatrix4fv", &f.uniformMatrix4fv, false},
		{"glUseProgram", &f.useProgram, false},
		{"glVertexAttribPointer", &f.vertexAttribPointer, false},
		{"glVertexAttribIPointer", &f.vertexAttribIPointer, true},
		{"glViewport", &f.viewport, false},
	}
}

// Load resolves every entry point through lookup, which returns 0 for an
// unknown name. Only the OpenGL ES 3.0 additions may be missing.
func Load(lookup func(name string) uintptr) (*Functions, error) {
	f := new(Functions)
	var missing []string
	for _, b := range f.bindings() {
		sym := lookup(b.name)
		if sym == 0 {
			if !b.optional {
				missing = append(missing, b.name)
			}
			continue
		}
		purego.RegisterFunc(b.fn, sym)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("glpurego: missing entry points: %s", strings.Join(missing, ", "))
	}
	return f, nil
}

// DefaultLibraries returns the libraries Open tries on this platform.
func DefaultLibraries() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"/System/Library/Frameworks/OpenGL.framework/OpenGL"}
	default:
		return []string{"libGLESv2.so.2", "libGLESv2.so", "libGL.so.1", "libGL.so"}
	}
}

// Open loads the first of libs that can be opened, or DefaultLibraries
// when libs is empty, and resolves its entry points with dlsym.
func Open(libs ...string) (*Functions, error) {
	if len(libs) == 0 {
		libs = DefaultLibraries()
	}
	var errs []error
	for _, name := range libs {
		lib, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		return Load(func(sym string) uintptr {
			p, err := purego.Dlsym(lib, sym)
			if err != nil {
				return 0
			}
			return p
		})
	}
	return nil, fmt.Errorf("glpurego: open GL library: %w", errors.Join(errs...))
}

func bytesPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func first[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

// goString copies a NUL-terminated C string.
func goString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

func (f *Functions) ActiveTexture(texture gl.Enum) { f.activeTexture(uint32(texture)) }

func (f *Functions) AttachShader(p gl.Program, s gl.Shader) { f.attachShader(uint32(p), uint32(s)) }

func (f *Functions) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	f.bindAttribLocation(uint32(p), uint32(a), name)
}

func (f *Functions) BindBuffer(target gl.Enum, b gl.Buffer) { f.bindBuffer(uint32(target), uint32(b)) }

func (f *Functions) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	f.bindFramebuffer(uint32(target), uint32(fb))
}

func (f *Functions) BindTexture(target gl.Enum, t gl.Texture) { f.bindTexture(uint32(target), uint32(t)) }

func (f *Functions) BlendEquation(mode gl.Enum) { f.blendEquation(uint32(mode)) }

func (f *Functions) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA gl.Enum) {
	f.blendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcA), uint32(dstA))
}

// BufferData copies at most size bytes of data; the rest of the store is
// left undefined, so a short slice is padded into a temporary copy.
func (f *Functions) BufferData(target gl.Enum, size int, data []byte, usage gl.Enum) {
	if len(data) > 0 && len(data) < size {
		buf := make([]byte, size)
		copy(buf, data)
		data = buf
	}
	f.bufferData(uint32(target), size, bytesPtr(data), uint32(usage))
	runtime.KeepAlive(data)
}

func (f *Functions) BufferSubData(target gl.Enum, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	f.bufferSubData(uint32(target), offset, len(data), bytesPtr(data))
	runtime.KeepAlive(data)
}

func (f *Functions) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	return gl.Enum(f.checkFramebufferStatus(uint32(target)))
}

func (f *Functions) Clear(mask gl.Enum) { f.clear(uint32(mask)) }

func (f *Functions) ClearColor(r, g, b, a float32) { f.clearColor(r, g, b, a) }

func (f *Functions) ClearDepthf(d float32) { f.clearDepthf(d) }

func (f *Functions) ClearStencil(s int32) { f.clearStencil(s) }

func (f *Functions) ColorMask(r, g, b, a bool) { f.colorMask(r, g, b, a) }

func (f *Functions) CompileShader(s gl.Shader) { f.compileShader(uint32(s)) }

func (f *Functions) CompressedTexImage2D(target gl.Enum, level int32, internalFormat gl.Enum, width, height int32, data []byte) {
	f.compressedTexImage2D(uint32(target), level, uint32(internalFormat), width, height, 0, int32(len(data)), bytesPtr(data))
	runtime.KeepAlive(data)
}

func (f *Functions) CreateProgram() gl.Program { return gl.Program(f.createProgram()) }

func (f *Functions) CreateShader(ty gl.Enum) gl.Shader { return gl.Shader(f.createShader(uint32(ty))) }

func (f *Functions) CullFace(mode gl.Enum) { f.cullFace(uint32(mode)) }

func (f *Functions) DeleteBuffer(b gl.Buffer) {
	id := uint32(b)
	f.deleteBuffers(1, &id)
}

func (f *Functions) DeleteFramebuffer(fb gl.Framebuffer) {
	id := uint32(fb)
	f.deleteFramebuffers(1, &id)
}

func (f *Functions) DeleteProgram(p gl.Program) { f.deleteProgram(uint32(p)) }

func (f *Functions) DeleteShader(s gl.Shader) { f.deleteShader(uint32(s)) }

func (f *Functions) DeleteTexture(t gl.Texture) {
	id := uint32(t)
	f.deleteTextures(1, &id)
}

func (f *Functions) DepthFunc(fn gl.Enum) { f.depthFunc(uint32(fn)) }

func (f *Functions) DepthMask(mask bool) { f.depthMask(mask) }

func (f *Functions) Disable(cap gl.Enum) { f.disable(uint32(cap)) }

func (f *Functions) DisableVertexAttribArray(a gl.Attrib) { f.disableVertexAttribArray(uint32(a)) }

func (f *Functions) DrawArrays(mode gl.Enum, first, count int32) { f.drawArrays(uint32(mode), first, count) }

// DrawBuffers does nothing on contexts without glDrawBuffers.
func (f *Functions) DrawBuffers(bufs []gl.Enum) {
	if f.drawBuffers == nil || len(bufs) == 0 {
		return
	}
	ids := make([]uint32, len(bufs))
	for i, b := range bufs {
		ids[i] = uint32(b)
	}
	f.drawBuffers(int32(len(ids)), &ids[0])
}

func (f *Functions) DrawElements(mode gl.Enum, count int32, ty gl.Enum, offset int) {
	f.drawElements(uint32(mode), count, uint32(ty), uintptr(offset))
}

func (f *Functions) Enable(cap gl.Enum) { f.enable(uint32(cap)) }

func (f *Functions) EnableVertexAttribArray(a gl.Attrib) { f.enableVertexAttribArray(uint32(a)) }

func (f *Functions) Flush() { f.flush() }

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int32) {
	f.framebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), uint32(t), level)
}

func (f *Functions) FrontFace(mode gl.Enum) { f.frontFace(uint32(mode)) }

func (f *Functions) GenBuffer() gl.Buffer {
	var id uint32
	f.genBuffers(1, &id)
	return gl.Buffer(id)
}

func (f *Functions) GenFramebuffer() gl.Framebuffer {
	var id uint32
	f.genFramebuffers(1, &id)
	return gl.Framebuffer(id)
}

func (f *Functions) GenTexture() gl.Texture {
	var id uint32
	f.genTextures(1, &id)
	return gl.Texture(id)
}

func (f *Functions) GenerateMipmap(target gl.Enum) { f.generateMipmap(uint32(target)) }

func (f *Functions) GetActiveUniform(p gl.Program, index uint32) (string, int32, gl.Enum) {
	n := f.GetProgrami(p, gl.ActiveUniformMaxLength)
	if n <= 0 {
		n = 256
	}
	buf := make([]byte, n)
	var length, size int32
	var ty uint32
	f.getActiveUniform(uint32(p), index, n, &length, &size, &ty, &buf[0])
	return string(buf[:length]), size, gl.Enum(ty)
}

func (f *Functions) GetError() gl.Enum { return gl.Enum(f.getError()) }

func (f *Functions) GetFloatv(pname gl.Enum, dst []float32) {
	if len(dst) == 0 {
		return
	}
	f.getFloatv(uint32(pname), &dst[0])
}

func (f *Functions) GetIntegerv(pname gl.Enum, dst []int32) {
	if len(dst) == 0 {
		return
	}
	f.getIntegerv(uint32(pname), &dst[0])
}

func (f *Functions) GetProgrami(p gl.Program, pname gl.Enum) int32 {
	var v int32
	f.getProgramiv(uint32(p), uint32(pname), &v)
	return v
}

func (f *Functions) GetProgramInfoLog(p gl.Program) string {
	n := f.GetProgrami(p, gl.InfoLogLength)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	var length int32
	f.getProgramInfoLog(uint32(p), n, &length, &buf[0])
	return string(buf[:length])
}

func (f *Functions) GetShaderi(s gl.Shader, pname gl.Enum) int32 {
	var v int32
	f.getShaderiv(uint32(s), uint32(pname), &v)
	return v
}

func (f *Functions) GetShaderInfoLog(s gl.Shader) string {
	n := f.GetShaderi(s, gl.InfoLogLength)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	var length int32
	f.getShaderInfoLog(uint32(s), n, &length, &buf[0])
	return string(buf[:length])
}

func (f *Functions) GetString(pname gl.Enum) string { return goString(f.getString(uint32(pname))) }

func (f *Functions) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	return gl.Uniform(f.getUniformLocation(uint32(p), name))
}

func (f *Functions) Hint(target, mode gl.Enum) { f.hint(uint32(target), uint32(mode)) }

func (f *Functions) LineWidth(w float32) { f.lineWidth(w) }

func (f *Functions) LinkProgram(p gl.Program) { f.linkProgram(uint32(p)) }

func (f *Functions) PixelStorei(pname gl.Enum, param int32) { f.pixelStorei(uint32(pname), param) }

func (f *Functions) ReadPixels(dst []byte, x, y, width, height int32, format, ty gl.Enum) {
	f.readPixels(x, y, width, height, uint32(format), uint32(ty), bytesPtr(dst))
	runtime.KeepAlive(dst)
}

func (f *Functions) Scissor(x, y, width, height int32) { f.scissor(x, y, width, height) }

func (f *Functions) ShaderSource(s gl.Shader, src string) {
	b := append([]byte(src), 0)
	p := &b[0]
	length := int32(len(src))
	f.shaderSource(uint32(s), 1, unsafe.Pointer(&p), &length)
	runtime.KeepAlive(b)
}

func (f *Functions) TexImage2D(target gl.Enum, level int32, internalFormat gl.Enum, width, height int32, format, ty gl.Enum, data []byte) {
	f.texImage2D(uint32(target), level, int32(internalFormat), width, height, 0, uint32(format), uint32(ty), bytesPtr(data))
	runtime.KeepAlive(data)
}

func (f *Functions) TexParameterf(target, pname gl.Enum, param float32) {
	f.texParameterf(uint32(target), uint32(pname), param)
}

func (f *Functions) TexParameteri(target, pname gl.Enum, param int32) {
	f.texParameteri(uint32(target), uint32(pname), param)
}

func uniformF(fn func(int32, int32, *float32), u gl.Uniform, v []float32, n int) {
	if len(v) < n {
		return
	}
	fn(int32(u), int32(len(v)/n), first(v))
}

func uniformI(fn func(int32, int32, *int32), u gl.Uniform, v []int32, n int) {
	if len(v) < n {
		return
	}
	fn(int32(u), int32(len(v)/n), first(v))
}

func uniformU(fn func(int32, int32, *uint32), u gl.Uniform, v []uint32, n int) {
	if fn == nil || len(v) < n {
		return
	}
	fn(int32(u), int32(len(v)/n), first(v))
}

func uniformMatrix(fn func(int32, int32, bool, *float32), u gl.Uniform, v []float32, n int) {
	if len(v) < n {
		return
	}
	fn(int32(u), int32(len(v)/n), false, first(v))
}

func (f *Functions) Uniform1fv(u gl.Uniform, v []float32) { uniformF(f.uniform1fv, u, v, 1) }
func (f *Functions) Uniform2fv(u gl.Uniform, v []float32) { uniformF(f.uniform2fv, u, v, 2) }
func (f *Functions) Uniform3fv(u gl.Uniform, v []float32) { uniformF(f.uniform3fv, u, v, 3) }
func (f *Functions) Uniform4fv(u gl.Uniform, v []float32) { uniformF(f.uniform4fv, u, v, 4) }
func (f *Functions) Uniform1iv(u gl.Uniform, v []int32)   { uniformI(f.uniform1iv, u, v, 1) }
func (f *Functions) Uniform2iv(u gl.Uniform, v []int32)   { uniformI(f.uniform2iv, u, v, 2) }
func (f *Functions) Uniform3iv(u gl.Uniform, v []int32)   { uniformI(f.uniform3iv, u, v, 3) }
func (f *Functions) Uniform4iv(u gl.Uniform, v []int32)   { uniformI(f.uniform4iv, u, v, 4) }
func (f *Functions) Uniform1uiv(u gl.Uniform, v []uint32) { uniformU(f.uniform1uiv, u, v, 1) }
func (f *Functions) Uniform2uiv(u gl.Uniform, v []uint32) { uniformU(f.uniform2uiv, u, v, 2) }
func (f *Functions) Uniform3uiv(u gl.Uniform, v []uint32) { uniformU(f.uniform3uiv, u, v, 3) }
func (f *Functions) Uniform4uiv(u gl.Uniform, v []uint32) { uniformU(f.uniform4uiv, u, v, 4) }

func (f *Functions) UniformMatrix2fv(u gl.Uniform, v []float32) {
	uniformMatrix(f.uniformMatrix2fv, u, v, 4)
}

func (f *Functions) UniformMatrix3fv(u gl.Uniform, v []float32) {
	uniformMatrix(f.uniformMatrix3fv, u, v, 9)
}

func (f *Functions) UniformMatrix4fv(u gl.Uniform, v []float32) {
	uniformMatrix(f.uniformMatrix4fv, u, v, 16)
}

func (f *Functions) UseProgram(p gl.Program) { f.useProgram(uint32(p)) }

func (f *Functions) VertexAttribPointer(a gl.Attrib, size int32, ty gl.Enum, normalized bool, stride int32, offset int) {
	f.vertexAttribPointer(uint32(a), size, uint32(ty), normalized, stride, uintptr(offset))
}

// VertexAttribIPointer does nothing on OpenGL ES 2.0 contexts.
func (f *Functions) VertexAttribIPointer(a gl.Attrib, size int32, ty gl.Enum, stride int32, offset int) {
	if f.vertexAttribIPointer == nil {
		return
	}
	f.vertexAttribIPointer(uint32(a), size, uint32(ty), stride, uintptr(offset))
}

func (f *Functions) Viewport(x, y, width, height int32) { f.viewport(x, y, width, height) }
