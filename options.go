package gl3

import (
	"image"
	"io/fs"
	"log/slog"
	"os"
)

// ContextManager owns the GL context the driver renders into. It is
// provided by the windowing layer; see package glfwctx.
type ContextManager interface {
	// Activate makes the context current on the calling thread.
	Activate() error
	// SwapBuffers presents the back buffer.
	SwapBuffers() error
	// Terminate destroys the context and its surface.
	Terminate()
}

// Option configures a Driver during creation.
//
// Example:
//
//	d, err := gl3.New(funcs,
//	    gl3.WithScreenSize(image.Pt(1280, 720)),
//	    gl3.WithValidation(gl3.ValidationFull),
//	)
type Option func(*options)

type options struct {
	logger         *slog.Logger
	validation     ValidationLevel
	shaderFS       fs.FS
	shaderBase     string
	contextManager ContextManager
	screenSize     image.Point
	mipMaps        bool
	maxVertexCount int
	shaderCache    int
}

func defaultOptions() options {
	cfg := DefaultConfig()
	o := options{
		shaderFS:   builtinShaders,
		shaderBase: builtinShaderBase,
	}
	o.applyConfig(cfg)
	return o
}

func (o *options) applyConfig(cfg Config) {
	cfg = cfg.withDefaults()
	o.validation = cfg.Validation
	o.screenSize = image.Pt(cfg.Width, cfg.Height)
	o.mipMaps = cfg.MipMaps
	o.maxVertexCount = cfg.MaxVertexCount
	o.shaderCache = cfg.ShaderCacheSize
	if cfg.ShaderPath != "" {
		o.shaderFS = os.DirFS(cfg.ShaderPath)
		o.shaderBase = "."
	}
}

// WithLogger sets the logger of the driver. Without it the driver uses
// the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithValidation selects how much GL error checking the driver does.
func WithValidation(v ValidationLevel) Option {
	return func(o *options) {
		o.validation = v
	}
}

// WithShaderFS makes the driver load the built-in material shaders from
// fsys under base instead of the embedded copies.
func WithShaderFS(fsys fs.FS, base string) Option {
	return func(o *options) {
		o.shaderFS = fsys
		o.shaderBase = base
	}
}

// WithContextManager sets the collaborator that activates the context and
// presents frames. Without one, EndScene only flushes.
func WithContextManager(cm ContextManager) Option {
	return func(o *options) {
		o.contextManager = cm
	}
}

// WithScreenSize sets the initial size of the default framebuffer.
func WithScreenSize(size image.Point) Option {
	return func(o *options) {
		o.screenSize = size
	}
}

// WithConfig applies a loaded configuration. Options given after it
// override its values.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.applyConfig(cfg)
	}
}

// WithMipMaps controls mipmap generation for textures created from
// images.
func WithMipMaps(on bool) Option {
	return func(o *options) {
		o.mipMaps = on
	}
}

// WithMaxVertexCount sets the number of vertices the shared quad index
// buffer covers, which bounds the size of one 2D image batch.
func WithMaxVertexCount(n int) Option {
	return func(o *options) {
		o.maxVertexCount = n
	}
}
