package gl3

import "errors"

var (
	// ErrNoContext is returned by New when no GL functions are given.
	ErrNoContext = errors.New("gl3: no GL context")

	// ErrFormatUnsupported is returned when a color format has no GL
	// representation on the current context.
	ErrFormatUnsupported = errors.New("gl3: color format not supported")

	// ErrCompressedRenderTarget is returned when a render target texture is
	// requested in a compressed format.
	ErrCompressedRenderTarget = errors.New("gl3: compressed formats cannot be rendered to")

	// ErrInvalidSize is returned for textures with a zero or negative side.
	ErrInvalidSize = errors.New("gl3: invalid texture size")

	// ErrTextureAlloc is returned when the context refuses a texture name.
	ErrTextureAlloc = errors.New("gl3: texture allocation failed")

	// ErrImageData is returned when image data is shorter than its size
	// and format require.
	ErrImageData = errors.New("gl3: image data too short")

	// ErrForeignTexture is returned when a texture created by another
	// driver, or already removed, is attached to a render target.
	ErrForeignTexture = errors.New("gl3: texture not owned by this driver")

	// ErrFramebufferIncomplete is returned when a render target attachment
	// leaves the framebuffer incomplete.
	ErrFramebufferIncomplete = errors.New("gl3: framebuffer incomplete")

	// ErrShaderCompile is returned when a shader stage fails to compile.
	ErrShaderCompile = errors.New("gl3: shader compile failed")

	// ErrShaderLink is returned when a program fails to link.
	ErrShaderLink = errors.New("gl3: program link failed")

	// ErrNoShaderSource is returned when a shader material has no source for
	// a stage.
	ErrNoShaderSource = errors.New("gl3: missing shader source")
)
