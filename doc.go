// Package gl3 is a rendering driver for OpenGL ES 2.0 / 3.0 and desktop
// OpenGL contexts.
//
// # Overview
//
// The driver sits between a scene layer and a GL context. It keeps a
// shadow copy of the GL state so redundant calls are never issued, binds
// textures through a per-unit cache, and draws with programmable material
// renderers. The built-in renderers cover the classic fixed-function
// material types (solid, lightmaps, sphere maps, transparent variants);
// custom ones are added from GLSL sources.
//
// # Quick Start
//
//	funcs, err := glpurego.Open()
//	if err != nil {
//		log.Fatal(err)
//	}
//	d, err := gl3.New(funcs, gl3.WithScreenSize(image.Pt(800, 600)))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer d.Close()
//
//	d.BeginScene(gl3.ClearAll, core.Black, 1, 0)
//	d.Draw2DRectangle(core.White, image.Rect(10, 10, 110, 60), nil)
//	d.EndScene()
//
// # Architecture
//
// The module is organized into:
//   - gl: the GL entry points the driver needs, as a Go interface
//   - gl/glpurego: that interface on the system GL library, without cgo
//   - glfwctx: a window and context manager built on GLFW
//   - caps: context capability and extension queries
//   - vertex: vertex layouts and their attribute tables
//   - material: materials, blend packing and the renderer contracts
//   - core: colors and matrices shared by the packages above
//
// # Render Modes
//
// Draws switch the driver between 3D mode, used for meshes with the
// current material and transforms, and 2D mode, used for screen-space
// images and primitives with the 2D material. The switch happens lazily
// on the first draw of the other kind.
//
// # Coordinate System
//
// 2D coordinates are pixels with the origin at the top-left of the
// current render target. Render target textures are stored bottom-up and
// are flipped when drawn.
//
// # Threading
//
// A Driver must be used from the thread that owns its context. The
// package logger may be replaced concurrently.
package gl3

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
