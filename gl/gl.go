// Package gl defines the OpenGL / OpenGL ES entry points used by the driver.
//
// The driver never calls a C library directly. Everything it needs from the
// graphics context goes through [Functions], which is implemented by
// [github.com/gogpu/gl3/gl/glpurego] for real contexts and by a recording
// fake in tests. Arguments are Go-typed: slices instead of pointer/length
// pairs, strings instead of NUL-terminated buffers, and byte offsets into
// the bound buffer object instead of client memory pointers.
package gl

// Enum is a GLenum value.
type Enum uint32

// Object handles. The zero value of every handle is the GL "no object" name.
type (
	Buffer      uint32
	Texture     uint32
	Program     uint32
	Shader      uint32
	Framebuffer uint32
)

// Attrib is a vertex attribute location.
type Attrib uint32

// Uniform is a uniform location. -1 means the uniform does not exist.
type Uniform int32

// Functions is the subset of the OpenGL ES 2.0 / 3.0 API used by the
// driver. Calls must be made on the thread that owns the current context.
type Functions interface {
	ActiveTexture(texture Enum)
	AttachShader(p Program, s Shader)
	BindAttribLocation(p Program, a Attrib, name string)
	BindBuffer(target Enum, b Buffer)
	BindFramebuffer(target Enum, fb Framebuffer)
	BindTexture(target Enum, t Texture)
	BlendEquation(mode Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA Enum)
	// BufferData allocates size bytes for the bound buffer and copies data
	// into it. data may be nil or shorter than size.
	BufferData(target Enum, size int, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	CheckFramebufferStatus(target Enum) Enum
	Clear(mask Enum)
	ClearColor(r, g, b, a float32)
	ClearDepthf(d float32)
	ClearStencil(s int32)
	ColorMask(r, g, b, a bool)
	CompileShader(s Shader)
	CompressedTexImage2D(target Enum, level int32, internalFormat Enum, width, height int32, data []byte)
	CreateProgram() Program
	CreateShader(ty Enum) Shader
	CullFace(mode Enum)
	DeleteBuffer(b Buffer)
	DeleteFramebuffer(fb Framebuffer)
	DeleteProgram(p Program)
	DeleteShader(s Shader)
	DeleteTexture(t Texture)
	DepthFunc(f Enum)
	DepthMask(mask bool)
	Disable(cap Enum)
	DisableVertexAttribArray(a Attrib)
	DrawArrays(mode Enum, first, count int32)
	DrawBuffers(bufs []Enum)
	// DrawElements draws from the bound element array buffer starting at
	// the given byte offset.
	DrawElements(mode Enum, count int32, ty Enum, offset int)
	Enable(cap Enum)
	EnableVertexAttribArray(a Attrib)
	Flush()
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int32)
	FrontFace(mode Enum)
	GenBuffer() Buffer
	GenFramebuffer() Framebuffer
	GenTexture() Texture
	GenerateMipmap(target Enum)
	GetActiveUniform(p Program, index uint32) (name string, size int32, ty Enum)
	GetError() Enum
	GetFloatv(pname Enum, dst []float32)
	GetIntegerv(pname Enum, dst []int32)
	GetProgrami(p Program, pname Enum) int32
	GetProgramInfoLog(p Program) string
	GetShaderi(s Shader, pname Enum) int32
	GetShaderInfoLog(s Shader) string
	GetString(pname Enum) string
	GetUniformLocation(p Program, name string) Uniform
	Hint(target, mode Enum)
	LineWidth(w float32)
	LinkProgram(p Program)
	PixelStorei(pname Enum, param int32)
	ReadPixels(dst []byte, x, y, width, height int32, format, ty Enum)
	Scissor(x, y, width, height int32)
	ShaderSource(s Shader, src string)
	TexImage2D(target Enum, level int32, internalFormat Enum, width, height int32, format, ty Enum, data []byte)
	TexParameterf(target, pname Enum, param float32)
	TexParameteri(target, pname Enum, param int32)
	Uniform1fv(u Uniform, v []float32)
	Uniform2fv(u Uniform, v []float32)
	Uniform3fv(u Uniform, v []float32)
	Uniform4fv(u Uniform, v []float32)
	Uniform1iv(u Uniform, v []int32)
	Uniform2iv(u Uniform, v []int32)
	Uniform3iv(u Uniform, v []int32)
	Uniform4iv(u Uniform, v []int32)
	// The unsigned variants exist on OpenGL ES 3.0 and desktop 3.0 only.
	Uniform1uiv(u Uniform, v []uint32)
	Uniform2uiv(u Uniform, v []uint32)
	Uniform3uiv(u Uniform, v []uint32)
	Uniform4uiv(u Uniform, v []uint32)
	UniformMatrix2fv(u Uniform, v []float32)
	UniformMatrix3fv(u Uniform, v []float32)
	UniformMatrix4fv(u Uniform, v []float32)
	UseProgram(p Program)
	VertexAttribPointer(a Attrib, size int32, ty Enum, normalized bool, stride int32, offset int)
	VertexAttribIPointer(a Attrib, size int32, ty Enum, stride int32, offset int)
	Viewport(x, y, width, height int32)
}

// ErrorString returns the symbolic name of a GetError code.
func ErrorString(code Enum) string {
	switch code {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "GL_UNKNOWN_ERROR"
	}
}

// FramebufferStatusString returns the symbolic name of a framebuffer status.
func FramebufferStatusString(status Enum) string {
	switch status {
	case FramebufferComplete:
		return "GL_FRAMEBUFFER_COMPLETE"
	case FramebufferIncompleteAttachment:
		return "GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT"
	case FramebufferIncompleteMissingAttachment:
		return "GL_FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT"
	case FramebufferIncompleteDimensions:
		return "GL_FRAMEBUFFER_INCOMPLETE_DIMENSIONS"
	case FramebufferUnsupported:
		return "GL_FRAMEBUFFER_UNSUPPORTED"
	default:
		return "GL_FRAMEBUFFER_UNKNOWN"
	}
}
