//go:build darwin || linux || freebsd

// Package glfwctx provides a window and OpenGL context for the driver
// through GLFW.
//
// GLFW must be used from the main thread. Programs call
// runtime.LockOSThread from an init function and create the context and
// the driver on the main goroutine.
package glfwctx

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gl3"
	"github.com/gogpu/gl3/gl/glpurego"
)

// Config describes the window and context to create.
type Config struct {
	Title string
	Size  image.Point
	// ES requests an OpenGL ES context instead of desktop OpenGL.
	ES           bool
	Major, Minor int
	VSync        bool
	// Hidden creates an invisible window, for offscreen rendering.
	Hidden bool
}

// DefaultConfig requests an OpenGL ES 2.0 context in an 800x600 window.
func DefaultConfig() Config {
	return Config{
		Title: "gl3",
		Size:  image.Pt(800, 600),
		ES:    true,
		Major: 2,
		VSync: true,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Size.X <= 0 || c.Size.Y <= 0 {
		c.Size = d.Size
	}
	if c.Major <= 0 {
		c.Major, c.Minor = d.Major, 0
	}
	return c
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// Context is a GLFW window with its OpenGL context. It implements
// gl3.ContextManager.
type Context struct {
	win   *glfw.Window
	vsync bool
}

var _ gl3.ContextManager = (*Context)(nil)

// New initializes GLFW and opens a window with a context matching cfg.
func New(cfg Config) (*Context, error) {
	cfg = cfg.withDefaults()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwctx: init: %w", err)
	}
	glfw.DefaultWindowHints()
	if cfg.ES {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
		glfw.WindowHint(glfw.ContextCreationAPI, glfw.EGLContextAPI)
	} else {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	glfw.WindowHint(glfw.Visible, boolHint(!cfg.Hidden))

	win, err := glfw.CreateWindow(cfg.Size.X, cfg.Size.Y, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfwctx: create window: %w", err)
	}
	return &Context{win: win, vsync: cfg.VSync}, nil
}

// Activate makes the context current on the calling thread.
func (c *Context) Activate() error {
	if c.win == nil {
		return fmt.Errorf("glfwctx: context terminated")
	}
	c.win.MakeContextCurrent()
	if c.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return nil
}

// SwapBuffers presents the back buffer.
func (c *Context) SwapBuffers() error {
	if c.win == nil {
		return fmt.Errorf("glfwctx: context terminated")
	}
	c.win.SwapBuffers()
	return nil
}

// Terminate destroys the window and shuts GLFW down.
func (c *Context) Terminate() {
	if c.win == nil {
		return
	}
	c.win.Destroy()
	c.win = nil
	glfw.Terminate()
}

// Functions resolves the GL entry points of the context. The context must
// be current.
func (c *Context) Functions() (*glpurego.Functions, error) {
	return glpurego.Load(func(name string) uintptr {
		return uintptr(unsafe.Pointer(glfw.GetProcAddress(name)))
	})
}

// ShouldClose reports whether the user asked to close the window.
func (c *Context) ShouldClose() bool {
	return c.win == nil || c.win.ShouldClose()
}

// PollEvents processes pending window events.
func (c *Context) PollEvents() { glfw.PollEvents() }

// FramebufferSize returns the size of the default framebuffer in pixels.
func (c *Context) FramebufferSize() image.Point {
	w, h := c.win.GetFramebufferSize()
	return image.Pt(w, h)
}

// OnResize registers fn to be called with the new framebuffer size,
// typically Driver.OnResize.
func (c *Context) OnResize(fn func(image.Point)) {
	c.win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		fn(image.Pt(w, h))
	})
}
