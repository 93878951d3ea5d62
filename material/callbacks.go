package material

import "github.com/gogpu/gl3/core"

// baseLocations holds the uniform handles shared by every built-in shader.
type baseLocations struct {
	wvpMatrix, wvMatrix, nMatrix int

	globalAmbient    int
	materialAmbient  int
	materialDiffuse  int
	materialEmissive int
	materialSpecular int
	materialShine    int

	fogEnable, fogType, fogColor int
	fogStart, fogEnd, fogDensity int
	thickness                    int
}

func resolveBase(s Services) *baseLocations {
	return &baseLocations{
		wvpMatrix:        s.VertexShaderConstantID("uWVPMatrix"),
		wvMatrix:         s.VertexShaderConstantID("uWVMatrix"),
		nMatrix:          s.VertexShaderConstantID("uNMatrix"),
		globalAmbient:    s.VertexShaderConstantID("uGlobalAmbient"),
		materialAmbient:  s.VertexShaderConstantID("uMaterialAmbient"),
		materialDiffuse:  s.VertexShaderConstantID("uMaterialDiffuse"),
		materialEmissive: s.VertexShaderConstantID("uMaterialEmissive"),
		materialSpecular: s.VertexShaderConstantID("uMaterialSpecular"),
		materialShine:    s.VertexShaderConstantID("uMaterialShininess"),
		fogEnable:        s.VertexShaderConstantID("uFogEnable"),
		fogType:          s.VertexShaderConstantID("uFogType"),
		fogColor:         s.VertexShaderConstantID("uFogColor"),
		fogStart:         s.VertexShaderConstantID("uFogStart"),
		fogEnd:           s.VertexShaderConstantID("uFogEnd"),
		fogDensity:       s.VertexShaderConstantID("uFogDensity"),
		thickness:        s.VertexShaderConstantID("uThickness"),
	}
}

// BaseCallback uploads the transform, material color, fog and thickness
// constants used by every built-in shader. The other callbacks embed it.
type BaseCallback struct {
	locs *baseLocations

	ambient   core.ColorF
	diffuse   core.ColorF
	emissive  core.ColorF
	specular  core.ColorF
	shininess float32
	fogEnable int32
	thickness float32
}

// OnSetMaterial implements ConstantCallback.
func (c *BaseCallback) OnSetMaterial(m *Material) {
	c.ambient = m.AmbientColor.ColorF()
	c.diffuse = m.DiffuseColor.ColorF()
	c.emissive = m.EmissiveColor.ColorF()
	c.specular = m.SpecularColor.ColorF()
	c.shininess = m.Shininess
	c.fogEnable = boolInt(m.FogEnable)
	c.thickness = m.Thickness
	if c.thickness <= 0 {
		c.thickness = 1
	}
}

// OnSetConstants implements ConstantCallback.
func (c *BaseCallback) OnSetConstants(s Services, userData int) {
	if c.locs == nil {
		c.locs = resolveBase(s)
	}
	l := c.locs
	d := s.VideoDriver()

	world := d.Transform(TransformWorld)
	view := d.Transform(TransformView)
	proj := d.Transform(TransformProjection)

	wv := view.Mul(world)
	setMatrix(s, l.wvMatrix, wv)
	setMatrix(s, l.wvpMatrix, proj.Mul(wv))
	setMatrix(s, l.nMatrix, wv.NormalMatrix())

	setColor(s, l.globalAmbient, d.AmbientLight())
	setColor(s, l.materialAmbient, c.ambient)
	setColor(s, l.materialDiffuse, c.diffuse)
	setColor(s, l.materialEmissive, c.emissive)
	setColor(s, l.materialSpecular, c.specular)
	s.SetPixelShaderConstantF(l.materialShine, []float32{c.shininess})

	s.SetPixelShaderConstantI(l.fogEnable, []int32{c.fogEnable})
	if c.fogEnable != 0 {
		fog := d.Fog()
		s.SetPixelShaderConstantI(l.fogType, []int32{int32(fog.Type)})
		setColor(s, l.fogColor, fog.Color.ColorF())
		s.SetPixelShaderConstantF(l.fogStart, []float32{fog.Start})
		s.SetPixelShaderConstantF(l.fogEnd, []float32{fog.End})
		s.SetPixelShaderConstantF(l.fogDensity, []float32{fog.Density})
	}

	s.SetPixelShaderConstantF(l.thickness, []float32{c.thickness})
}

// ====================================================================
// Single texture
// ====================================================================

type solidLocations struct {
	tMatrix0, alphaRef, textureUsage0, textureUnit0 int
}

// SolidCallback drives the single texture shaders: solid, the
// transparent alpha channel variants and vertex alpha. TypeParam is the
// alpha reference.
type SolidCallback struct {
	BaseCallback
	locs *solidLocations

	alphaRef      float32
	textureUsage0 int32
}

// OnSetMaterial implements ConstantCallback.
func (c *SolidCallback) OnSetMaterial(m *Material) {
	c.BaseCallback.OnSetMaterial(m)
	c.alphaRef = m.TypeParam
	c.textureUsage0 = textureUsage(m, 0)
}

// OnSetConstants implements ConstantCallback.
func (c *SolidCallback) OnSetConstants(s Services, userData int) {
	c.BaseCallback.OnSetConstants(s, userData)
	if c.locs == nil {
		c.locs = &solidLocations{
			tMatrix0:      s.VertexShaderConstantID("uTMatrix0"),
			alphaRef:      s.PixelShaderConstantID("uAlphaRef"),
			textureUsage0: s.PixelShaderConstantID("uTextureUsage0"),
			textureUnit0:  s.PixelShaderConstantID("uTextureUnit0"),
		}
	}
	l := c.locs
	setMatrix(s, l.tMatrix0, s.VideoDriver().Transform(TransformTexture0))
	s.SetPixelShaderConstantF(l.alphaRef, []float32{c.alphaRef})
	s.SetPixelShaderConstantI(l.textureUsage0, []int32{c.textureUsage0})
	s.SetPixelShaderConstantI(l.textureUnit0, []int32{0})
}

// ====================================================================
// Two textures
// ====================================================================

type twoLayerLocations struct {
	tMatrix0, tMatrix1           int
	textureUsage0, textureUsage1 int
	textureUnit0, textureUnit1   int
}

func resolveTwoLayer(s Services, withTMatrix1 bool) *twoLayerLocations {
	l := &twoLayerLocations{
		tMatrix0:      s.VertexShaderConstantID("uTMatrix0"),
		tMatrix1:      NotFound,
		textureUsage0: s.PixelShaderConstantID("uTextureUsage0"),
		textureUsage1: s.PixelShaderConstantID("uTextureUsage1"),
		textureUnit0:  s.PixelShaderConstantID("uTextureUnit0"),
		textureUnit1:  s.PixelShaderConstantID("uTextureUnit1"),
	}
	if withTMatrix1 {
		l.tMatrix1 = s.VertexShaderConstantID("uTMatrix1")
	}
	return l
}

func (l *twoLayerLocations) upload(s Services, usage0, usage1 int32) {
	d := s.VideoDriver()
	setMatrix(s, l.tMatrix0, d.Transform(TransformTexture0))
	if l.tMatrix1 != NotFound {
		setMatrix(s, l.tMatrix1, d.Transform(TransformTexture1))
	}
	s.SetPixelShaderConstantI(l.textureUsage0, []int32{usage0})
	s.SetPixelShaderConstantI(l.textureUsage1, []int32{usage1})
	s.SetPixelShaderConstantI(l.textureUnit0, []int32{0})
	s.SetPixelShaderConstantI(l.textureUnit1, []int32{1})
}

// Solid2LayerCallback drives the two texture blend and detail map shaders.
type Solid2LayerCallback struct {
	BaseCallback
	locs *twoLayerLocations

	textureUsage0, textureUsage1 int32
}

// OnSetMaterial implements ConstantCallback.
func (c *Solid2LayerCallback) OnSetMaterial(m *Material) {
	c.BaseCallback.OnSetMaterial(m)
	c.textureUsage0 = textureUsage(m, 0)
	c.textureUsage1 = textureUsage(m, 1)
}

// OnSetConstants implements ConstantCallback.
func (c *Solid2LayerCallback) OnSetConstants(s Services, userData int) {
	c.BaseCallback.OnSetConstants(s, userData)
	if c.locs == nil {
		c.locs = resolveTwoLayer(s, true)
	}
	c.locs.upload(s, c.textureUsage0, c.textureUsage1)
}

// LightmapCallback drives the lightmap shaders. The modulation factor is
// fixed per material type.
type LightmapCallback struct {
	BaseCallback
	locs       *twoLayerLocations
	modulateID int
	modulate   float32

	textureUsage0, textureUsage1 int32
}

// NewLightmapCallback returns a lightmap callback scaling the lightmap by
// modulate (1, 2 or 4).
func NewLightmapCallback(modulate float32) *LightmapCallback {
	return &LightmapCallback{modulate: modulate, modulateID: NotFound}
}

// OnSetMaterial implements ConstantCallback.
func (c *LightmapCallback) OnSetMaterial(m *Material) {
	c.BaseCallback.OnSetMaterial(m)
	c.textureUsage0 = textureUsage(m, 0)
	c.textureUsage1 = textureUsage(m, 1)
}

// OnSetConstants implements ConstantCallback.
func (c *LightmapCallback) OnSetConstants(s Services, userData int) {
	c.BaseCallback.OnSetConstants(s, userData)
	if c.locs == nil {
		c.locs = resolveTwoLayer(s, true)
		c.modulateID = s.PixelShaderConstantID("uModulate")
	}
	c.locs.upload(s, c.textureUsage0, c.textureUsage1)
	s.SetPixelShaderConstantF(c.modulateID, []float32{c.modulate})
}

// ReflectionCallback drives the sphere map and reflection shaders. Only
// the first layer has a texture transform; the second layer coordinates
// are generated in the vertex shader.
type ReflectionCallback struct {
	BaseCallback
	locs *twoLayerLocations

	textureUsage0, textureUsage1 int32
}

// OnSetMaterial implements ConstantCallback.
func (c *ReflectionCallback) OnSetMaterial(m *Material) {
	c.BaseCallback.OnSetMaterial(m)
	c.textureUsage0 = textureUsage(m, 0)
	c.textureUsage1 = textureUsage(m, 1)
}

// OnSetConstants implements ConstantCallback.
func (c *ReflectionCallback) OnSetConstants(s Services, userData int) {
	c.BaseCallback.OnSetConstants(s, userData)
	if c.locs == nil {
		c.locs = resolveTwoLayer(s, false)
	}
	c.locs.upload(s, c.textureUsage0, c.textureUsage1)
}

// ====================================================================
// One texture blend
// ====================================================================

type blendLocations struct {
	blendType, tMatrix0, textureUsage0, textureUnit0 int
}

// OneTextureBlendCallback drives the OneTextureBlend shader. The blend
// type uniform is derived from the packed blend function in TypeParam.
type OneTextureBlendCallback struct {
	BaseCallback
	locs *blendLocations

	blendType     int32
	textureUsage0 int32
}

// OnSetMaterial implements ConstantCallback.
func (c *OneTextureBlendCallback) OnSetMaterial(m *Material) {
	c.BaseCallback.OnSetMaterial(m)
	c.blendType = BlendType(m.TypeParam)
	c.textureUsage0 = textureUsage(m, 0)
}

// OnSetConstants implements ConstantCallback.
func (c *OneTextureBlendCallback) OnSetConstants(s Services, userData int) {
	c.BaseCallback.OnSetConstants(s, userData)
	if c.locs == nil {
		c.locs = &blendLocations{
			blendType:     s.PixelShaderConstantID("uBlendType"),
			tMatrix0:      s.VertexShaderConstantID("uTMatrix0"),
			textureUsage0: s.PixelShaderConstantID("uTextureUsage0"),
			textureUnit0:  s.PixelShaderConstantID("uTextureUnit0"),
		}
	}
	l := c.locs
	s.SetPixelShaderConstantI(l.blendType, []int32{c.blendType})
	setMatrix(s, l.tMatrix0, s.VideoDriver().Transform(TransformTexture0))
	s.SetPixelShaderConstantI(l.textureUsage0, []int32{c.textureUsage0})
	s.SetPixelShaderConstantI(l.textureUnit0, []int32{0})
}

// BlendTypeValue returns the blend type captured by the last OnSetMaterial.
func (c *OneTextureBlendCallback) BlendTypeValue() int32 { return c.blendType }

func textureUsage(m *Material, layer int) int32 {
	return boolInt(m.Texture(layer) != nil)
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func setMatrix(s Services, id int, m core.Matrix4) {
	s.SetVertexShaderConstantF(id, m[:])
}

func setColor(s Services, id int, c core.ColorF) {
	v := c.Array()
	s.SetPixelShaderConstantF(id, v[:])
}
