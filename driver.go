package gl3

import (
	"fmt"
	"image"
	"io/fs"
	"log/slog"

	"github.com/gogpu/gputypes"
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/gl3/caps"
	"github.com/gogpu/gl3/core"
	"github.com/gogpu/gl3/gl"
	"github.com/gogpu/gl3/internal/cache"
	"github.com/gogpu/gl3/material"
	"github.com/gogpu/gl3/vertex"
)

// RenderMode is the kind of drawing the driver last prepared state for.
type RenderMode uint8

const (
	RenderModeNone RenderMode = iota
	RenderMode3D
	RenderMode2D
)

func (m RenderMode) String() string {
	switch m {
	case RenderMode3D:
		return "3D"
	case RenderMode2D:
		return "2D"
	default:
		return "None"
	}
}

// ClearFlag selects the buffers cleared by ClearBuffers and BeginScene.
type ClearFlag uint8

const (
	ClearColor ClearFlag = 1 << iota
	ClearDepth
	ClearStencil

	ClearNone ClearFlag = 0
	ClearAll            = ClearColor | ClearDepth | ClearStencil
)

// maxClipPlanes is the number of user clip planes the shaders can take.
const maxClipPlanes = 8

// ClipPlane is a user clip plane in world space.
type ClipPlane struct {
	Plane   f32.Vec4
	Enabled bool
}

// Stats counts the work submitted since the driver was created or the
// counters were last reset.
type Stats struct {
	DrawCalls    int
	Primitives   int
	Uploads      int
	StateChanges int
}

// Driver renders through one OpenGL or OpenGL ES 2+ context.
//
// A Driver is bound to the thread its context is current on and is not
// safe for concurrent use.
type Driver struct {
	gl         gl.Functions
	caps       *caps.Caps
	log        *slog.Logger
	validation ValidationLevel
	cm         ContextManager
	opts       options

	state    *StateCache
	textures *TextureCache

	renderers           []rendererEntry
	renderer2DTexture   MaterialRenderer
	renderer2DNoTexture MaterialRenderer
	renderer2DActive    MaterialRenderer
	programs            *cache.Cache[cache.Key, gl.Program]

	shaderFS   fs.FS
	shaderBase string
	shaderData *lru.Cache

	material           material.Material
	lastMaterial       material.Material
	initMaterial2D     material.Material
	overrideMaterial2D material.Material
	override2DEnabled  bool
	resetRenderStates  bool
	renderMode         RenderMode

	transforms [material.TransformCount]core.Matrix4
	fog        material.Fog
	ambient    core.ColorF
	clipPlanes []ClipPlane

	screenSize       image.Point
	renderTargetSize image.Point
	viewport         image.Rectangle

	textureList   []*Texture
	renderTargets []*RenderTarget
	currentTarget *RenderTarget
	hwBuffers     map[MeshBuffer]*HardwareBuffer

	quadIndices []uint16
	quadIBO     gl.Buffer
	streamVBO   streamBuffer
	streamIBO   streamBuffer
	stats       Stats
	closed      bool
}

// New creates a driver on the context whose functions are f. The context
// must be current; with WithContextManager it is activated first.
func New(f gl.Functions, opts ...Option) (*Driver, error) {
	if f == nil {
		return nil, ErrNoContext
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	d := &Driver{
		gl:         f,
		log:        log,
		validation: o.validation,
		cm:         o.contextManager,
		opts:       o,
		shaderFS:   o.shaderFS,
		shaderBase: o.shaderBase,
		screenSize: o.screenSize,
		hwBuffers:  make(map[MeshBuffer]*HardwareBuffer),
		programs:   cache.New[cache.Key, gl.Program](),
	}
	if d.cm != nil {
		if err := d.cm.Activate(); err != nil {
			return nil, fmt.Errorf("gl3: activate context: %w", err)
		}
	}
	shaderData, err := lru.New(o.shaderCache)
	if err != nil {
		return nil, fmt.Errorf("gl3: shader cache: %w", err)
	}
	d.shaderData = shaderData

	d.caps = caps.Query(f)
	d.log.Info("gl3: context",
		slog.String("version", d.caps.VersionName),
		slog.String("vendor", d.caps.VendorName),
		slog.String("renderer", d.caps.RendererName),
		slog.Int("extensions", d.caps.ExtensionCount()),
		slog.Int("texture_units", d.caps.MaxTextureUnits))

	d.state = NewStateCache(f)
	d.textures = newTextureCache(d, d.state)

	f.PixelStorei(gl.PackAlignment, 1)
	for i := range d.transforms {
		d.transforms[i] = core.Identity()
	}
	d.state.SetClearDepth(1)
	if d.caps.ES {
		f.Hint(gl.GenerateMipmapHint, gl.Nicest)
	}
	d.state.SetFrontFace(gl.CW)

	d.material = material.New()
	d.lastMaterial = d.material
	d.initMaterial2D = newMaterial2D()
	d.overrideMaterial2D = d.initMaterial2D

	d.quadIndices = quadIndices(o.maxVertexCount)
	if !d.createQuadBuffer() {
		d.log.Warn("gl3: quad index buffer not created, image batches disabled")
	}

	d.createMaterialRenderers()
	d.setRenderStates3DMode()
	d.SetFog(material.DefaultFog())
	d.resetRenderStates = true
	d.setViewPortRaw(d.screenSize)
	d.viewport = image.Rectangle{Max: d.screenSize}

	d.checkBasic("New")
	return d, nil
}

// quadIndices returns the index list drawing maxVertices/4 quads as two
// triangles each.
func quadIndices(maxVertices int) []uint16 {
	quads := min(maxVertices, 1<<16) / 4
	idx := make([]uint16, 0, quads*6)
	for k := range quads {
		b := uint16(4 * k)
		idx = append(idx, b, b+1, b+2, b, b+2, b+3)
	}
	return idx
}

func (d *Driver) createQuadBuffer() bool {
	if len(d.quadIndices) == 0 {
		return false
	}
	b := d.gl.GenBuffer()
	if b == 0 {
		return false
	}
	data := vertex.EncodeIndices16(d.quadIndices)
	d.state.BindBuffer(gl.ElementArrayBuffer, b)
	d.gl.BufferData(gl.ElementArrayBuffer, len(data), data, gl.StaticDraw)
	d.state.BindBuffer(gl.ElementArrayBuffer, 0)
	d.quadIBO = b
	return true
}

// newMaterial2D returns the material 2D draws start from.
func newMaterial2D() material.Material {
	m := material.New()
	m.AntiAliasing = material.AntiAliasingOff
	m.Lighting = false
	m.ZWrite = material.ZWriteOff
	m.ZBuffer = gputypes.CompareFunctionUndefined
	m.UseMipMaps = false
	for i := range m.TextureLayers {
		l := &m.TextureLayers[i]
		l.MagFilter = gputypes.FilterModeNearest
		l.MinFilter = gputypes.FilterModeNearest
		l.MipmapFilter = gputypes.FilterModeNearest
		l.WrapU, l.WrapV, l.WrapW = gputypes.AddressModeRepeat, gputypes.AddressModeRepeat, gputypes.AddressModeRepeat
	}
	return m
}

// Close releases every GPU object the driver created and terminates the
// context manager. The driver must not be used afterwards.
func (d *Driver) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.deleteMaterialRenderers()
	d.textures.Clear()
	d.RemoveAllRenderTargets()
	d.RemoveAllTextures()
	d.RemoveAllHardwareBuffers()
	d.streamVBO.delete(d.state)
	d.streamIBO.delete(d.state)
	if d.quadIBO != 0 {
		d.state.DeleteBuffer(d.quadIBO)
		d.quadIBO = 0
	}
	d.programs.Clear(d.state.DeleteProgram)
	d.shaderData.Purge()
	if d.cm != nil {
		d.cm.Terminate()
	}
}

// BeginScene activates the context and clears the current target.
func (d *Driver) BeginScene(flag ClearFlag, color core.Color, depth float32, stencil uint8) bool {
	if d.cm != nil {
		if err := d.cm.Activate(); err != nil {
			d.log.Error("gl3: activate context", slog.String("error", err.Error()))
			return false
		}
	}
	d.ClearBuffers(flag, color, depth, stencil)
	return true
}

// EndScene flushes and presents the frame. It reports false when there is
// no context manager to present with or the swap failed.
func (d *Driver) EndScene() bool {
	d.gl.Flush()
	if d.cm == nil {
		return false
	}
	if err := d.cm.SwapBuffers(); err != nil {
		d.log.Error("gl3: swap buffers", slog.String("error", err.Error()))
		return false
	}
	return true
}

// Caps returns the capabilities of the context.
func (d *Driver) Caps() *caps.Caps { return d.caps }

// Name returns the GL version string of the context.
func (d *Driver) Name() string { return d.caps.VersionName }

// StateCache returns the cache every GPU state change goes through.
// Custom material renderers set state with it.
func (d *Driver) StateCache() *StateCache { return d.state }

// TextureCache returns the texture unit bindings.
func (d *Driver) TextureCache() *TextureCache { return d.textures }

// RenderMode returns the mode the last draw prepared state for.
func (d *Driver) RenderMode() RenderMode { return d.renderMode }

// Stats returns the work counters.
func (d *Driver) Stats() Stats {
	s := d.stats
	s.StateChanges = d.state.Changes()
	return s
}

// ResetStats zeroes the draw, primitive and upload counters.
func (d *Driver) ResetStats() {
	d.stats = Stats{}
}

// ====================================================================
// Transforms, fog, lights, clip planes
// ====================================================================

// SetTransform sets one of the transforms shaders read.
func (d *Driver) SetTransform(s material.TransformState, m core.Matrix4) {
	if s >= material.TransformCount {
		return
	}
	d.transforms[s] = m
}

// Transform returns a transform set with SetTransform.
func (d *Driver) Transform(s material.TransformState) core.Matrix4 {
	if s >= material.TransformCount {
		return core.Identity()
	}
	return d.transforms[s]
}

// SetFog sets the fog parameters shaders read.
func (d *Driver) SetFog(f material.Fog) { d.fog = f }

// Fog returns the fog parameters set with SetFog.
func (d *Driver) Fog() material.Fog { return d.fog }

// SetAmbientLight sets the global ambient light color.
func (d *Driver) SetAmbientLight(c core.ColorF) { d.ambient = c }

// AmbientLight returns the global ambient light color.
func (d *Driver) AmbientLight() core.ColorF { return d.ambient }

// SetClipPlane sets user clip plane index. Indices past the current count
// grow the list.
func (d *Driver) SetClipPlane(index int, plane f32.Vec4, enable bool) bool {
	if index < 0 || index >= maxClipPlanes {
		return false
	}
	for len(d.clipPlanes) <= index {
		d.clipPlanes = append(d.clipPlanes, ClipPlane{})
	}
	d.clipPlanes[index] = ClipPlane{Plane: plane, Enabled: enable}
	return true
}

// EnableClipPlane turns an existing clip plane on or off.
func (d *Driver) EnableClipPlane(index int, enable bool) {
	if index >= 0 && index < len(d.clipPlanes) {
		d.clipPlanes[index].Enabled = enable
	}
}

// ClipPlaneCount returns the number of clip planes set so far.
func (d *Driver) ClipPlaneCount() int { return len(d.clipPlanes) }

// ClipPlane returns clip plane index, or false when it was never set.
func (d *Driver) ClipPlane(index int) (ClipPlane, bool) {
	if index < 0 || index >= len(d.clipPlanes) {
		return ClipPlane{}, false
	}
	return d.clipPlanes[index], true
}

// ====================================================================
// Materials
// ====================================================================

// SetMaterial makes m the current material. Its textures are bound to
// their units; layers past the supported unit count are dropped.
func (d *Driver) SetMaterial(m material.Material) {
	d.material = m
	for i := range material.MaxTextures {
		if i >= d.caps.MaxTextureUnits {
			d.material.TextureLayers[i].Texture = nil
			continue
		}
		if _, ok := d.textures.resolve(m.Texture(i)); !ok {
			d.material.TextureLayers[i].Texture = nil
		}
		d.textures.Set(i, d.material.Texture(i))
		d.SetTransform(material.TextureTransform(i), m.TextureLayers[i].TextureMatrix())
	}
}

// Material returns the current material.
func (d *Driver) Material() material.Material { return d.material }

// SetMaterialTexture sets the texture of one layer of the current material
// and binds it. It reports false when tex belongs to another driver.
func (d *Driver) SetMaterialTexture(layer int, tex *Texture) bool {
	if layer < 0 || layer >= d.caps.MaxTextureUnits {
		return false
	}
	var mt material.Texture
	if tex != nil {
		mt = tex
	}
	if _, ok := d.textures.resolve(mt); !ok {
		return false
	}
	d.material.TextureLayers[layer].Texture = mt
	d.textures.Set(layer, mt)
	return true
}

// NeedsTransparentRenderPass reports whether m has to be drawn after the
// solid geometry.
func (d *Driver) NeedsTransparentRenderPass(m *material.Material) bool {
	if r := d.MaterialRenderer(m.Type); r != nil && r.IsTransparent() {
		return true
	}
	return m.IsAlphaBlendOperation()
}

// OverrideMaterial2D returns the material 2D draws use while the override
// is enabled. Changes to it take effect on the next 2D draw.
func (d *Driver) OverrideMaterial2D() *material.Material { return &d.overrideMaterial2D }

// EnableOverrideMaterial2D switches 2D draws between the override material
// and the default 2D material.
func (d *Driver) EnableOverrideMaterial2D(on bool) {
	d.override2DEnabled = on
}

// ====================================================================
// Shader constant misuse
// ====================================================================

// The driver itself has no program. Constants are set through the
// material.Services passed to a ConstantCallback.

func (d *Driver) misuse(op string) {
	d.log.Error("gl3: shader constants must be set through material services", slog.String("op", op))
}

// VertexShaderConstantID always fails; use material.Services instead.
func (d *Driver) VertexShaderConstantID(string) int {
	d.misuse("VertexShaderConstantID")
	return material.NotFound
}

// PixelShaderConstantID always fails; use material.Services instead.
func (d *Driver) PixelShaderConstantID(string) int {
	d.misuse("PixelShaderConstantID")
	return material.NotFound
}

// SetVertexShaderConstantF always fails; use material.Services instead.
func (d *Driver) SetVertexShaderConstantF(int, []float32) bool {
	d.misuse("SetVertexShaderConstantF")
	return false
}

// SetVertexShaderConstantI always fails; use material.Services instead.
func (d *Driver) SetVertexShaderConstantI(int, []int32) bool {
	d.misuse("SetVertexShaderConstantI")
	return false
}

// SetVertexShaderConstantU always fails; use material.Services instead.
func (d *Driver) SetVertexShaderConstantU(int, []uint32) bool {
	d.misuse("SetVertexShaderConstantU")
	return false
}

// SetPixelShaderConstantF always fails; use material.Services instead.
func (d *Driver) SetPixelShaderConstantF(int, []float32) bool {
	d.misuse("SetPixelShaderConstantF")
	return false
}

// SetPixelShaderConstantI always fails; use material.Services instead.
func (d *Driver) SetPixelShaderConstantI(int, []int32) bool {
	d.misuse("SetPixelShaderConstantI")
	return false
}

// SetPixelShaderConstantU always fails; use material.Services instead.
func (d *Driver) SetPixelShaderConstantU(int, []uint32) bool {
	d.misuse("SetPixelShaderConstantU")
	return false
}

// VideoDriver returns d.
func (d *Driver) VideoDriver() material.VideoDriver { return d }

// ====================================================================
// Viewport and clearing
// ====================================================================

// OnResize records a new size of the default framebuffer.
func (d *Driver) OnResize(size image.Point) {
	d.screenSize = size
	d.viewport = image.Rectangle{Max: size}
	if d.currentTarget == nil {
		d.setViewPortRaw(size)
	}
}

func (d *Driver) ScreenSize() image.Point { return d.screenSize }

// CurrentRenderTargetSize returns the size of the bound render target, or
// the screen size when drawing to the default framebuffer.
func (d *Driver) CurrentRenderTargetSize() image.Point {
	if d.renderTargetSize == (image.Point{}) {
		return d.screenSize
	}
	return d.renderTargetSize
}

// SetViewPort sets the viewport in top-left origin pixel coordinates. It
// is clipped to the current target; an empty result is ignored.
func (d *Driver) SetViewPort(r image.Rectangle) {
	size := d.CurrentRenderTargetSize()
	vp := r.Intersect(image.Rectangle{Max: size})
	if vp.Empty() {
		return
	}
	y := size.Y - vp.Min.Y - vp.Dy()
	d.state.SetViewport(image.Rect(vp.Min.X, y, vp.Max.X, y+vp.Dy()))
	d.viewport = vp
}

func (d *Driver) ViewPort() image.Rectangle { return d.viewport }

func (d *Driver) setViewPortRaw(size image.Point) {
	d.state.SetViewport(image.Rectangle{Max: size})
}

// ClearBuffers clears the selected buffers of the current target. Write
// masks are enabled for the clear and restored afterwards.
func (d *Driver) ClearBuffers(flag ClearFlag, color core.Color, depth float32, stencil uint8) {
	colorMask := d.state.ColorMask()
	depthMask := d.state.DepthMask()

	var mask gl.Enum
	if flag&ClearColor != 0 {
		d.state.SetColorMask(true, true, true, true)
		d.state.SetClearColor(color.ColorF().Array())
		mask |= gl.ColorBufferBit
	}
	if flag&ClearDepth != 0 {
		d.state.SetDepthMask(true)
		d.state.SetClearDepth(depth)
		mask |= gl.DepthBufferBit
	}
	if flag&ClearStencil != 0 {
		d.gl.ClearStencil(int32(stencil))
		mask |= gl.StencilBufferBit
	}
	if mask != 0 {
		d.gl.Clear(mask)
	}

	d.state.SetColorMask(colorMask[0], colorMask[1], colorMask[2], colorMask[3])
	d.state.SetDepthMask(depthMask)
}
