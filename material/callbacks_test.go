package material

import (
	"image"
	"testing"

	"github.com/gogpu/gl3/core"
)

// fakeDriver is a VideoDriver with fixed transforms.
type fakeDriver struct {
	transforms [TransformCount]core.Matrix4
	fog        Fog
	fogReads   int
}

func newFakeDriver() *fakeDriver {
	d := &fakeDriver{fog: DefaultFog()}
	for i := range d.transforms {
		d.transforms[i] = core.Identity()
	}
	return d
}

func (d *fakeDriver) Transform(s TransformState) core.Matrix4 { return d.transforms[s] }
func (d *fakeDriver) AmbientLight() core.ColorF                { return core.ColorF{} }

func (d *fakeDriver) Fog() Fog {
	d.fogReads++
	return d.fog
}

// fakeServices resolves a fixed set of names and records uploads by name.
type fakeServices struct {
	driver  *fakeDriver
	names   []string
	lookups int
	floats  map[string][]float32
	ints    map[string][]int32
}

func newFakeServices(names ...string) *fakeServices {
	return &fakeServices{
		driver: newFakeDriver(),
		names:  names,
		floats: make(map[string][]float32),
		ints:   make(map[string][]int32),
	}
}

func (s *fakeServices) id(name string) int {
	s.lookups++
	for i, n := range s.names {
		if n == name {
			return i
		}
	}
	return NotFound
}

func (s *fakeServices) VertexShaderConstantID(name string) int { return s.id(name) }
func (s *fakeServices) PixelShaderConstantID(name string) int  { return s.id(name) }

func (s *fakeServices) SetVertexShaderConstantF(id int, v []float32) bool {
	return s.SetPixelShaderConstantF(id, v)
}

func (s *fakeServices) SetVertexShaderConstantI(id int, v []int32) bool {
	return s.SetPixelShaderConstantI(id, v)
}

func (s *fakeServices) SetVertexShaderConstantU(int, []uint32) bool { return false }
func (s *fakeServices) SetPixelShaderConstantU(int, []uint32) bool  { return false }

func (s *fakeServices) SetPixelShaderConstantF(id int, v []float32) bool {
	if id < 0 {
		return false
	}
	s.floats[s.names[id]] = append([]float32(nil), v...)
	return true
}

func (s *fakeServices) SetPixelShaderConstantI(id int, v []int32) bool {
	if id < 0 {
		return false
	}
	s.ints[s.names[id]] = append([]int32(nil), v...)
	return true
}

func (s *fakeServices) VideoDriver() VideoDriver { return s.driver }

type fakeTexture struct{ name string }

func (t *fakeTexture) Name() string { return t.name }
func (t *fakeTexture) Size() image.Point { return image.Point{} }

func TestBaseCallbackThicknessDefault(t *testing.T) {
	tests := []struct {
		name      string
		thickness float32
		want      float32
	}{
		{"zero becomes one", 0, 1},
		{"negative becomes one", -3, 1},
		{"positive kept", 2.5, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFakeServices("uThickness")
			var cb BaseCallback
			m := New()
			m.Thickness = tt.thickness
			cb.OnSetMaterial(&m)
			cb.OnSetConstants(s, 0)
			if got := s.floats["uThickness"]; len(got) != 1 || got[0] != tt.want {
				t.Errorf("uThickness = %v, want [%v]", got, tt.want)
			}
		})
	}
}

func TestBaseCallbackFogOnlyWhenEnabled(t *testing.T) {
	s := newFakeServices("uFogEnable", "uFogStart")
	var cb BaseCallback
	m := New()
	cb.OnSetMaterial(&m)
	cb.OnSetConstants(s, 0)
	if s.driver.fogReads != 0 {
		t.Errorf("fog read %d times with fog disabled", s.driver.fogReads)
	}
	if got := s.ints["uFogEnable"]; len(got) != 1 || got[0] != 0 {
		t.Errorf("uFogEnable = %v, want [0]", got)
	}

	m.FogEnable = true
	s.driver.fog.Start = 7
	cb.OnSetMaterial(&m)
	cb.OnSetConstants(s, 0)
	cb.OnSetConstants(s, 0)
	if s.driver.fogReads != 2 {
		t.Errorf("fog read %d times over two draws, want 2", s.driver.fogReads)
	}
	if got := s.floats["uFogStart"]; len(got) != 1 || got[0] != 7 {
		t.Errorf("uFogStart = %v, want [7]", got)
	}
}

func TestBaseCallbackMatrices(t *testing.T) {
	s := newFakeServices("uWVPMatrix", "uWVMatrix", "uNMatrix")
	s.driver.transforms[TransformWorld] = core.Translate(1, 0, 0)
	s.driver.transforms[TransformView] = core.Translate(0, 2, 0)
	s.driver.transforms[TransformProjection] = core.Scale(2, 2, 2)

	var cb BaseCallback
	m := New()
	cb.OnSetMaterial(&m)
	cb.OnSetConstants(s, 0)

	wv := core.Translate(1, 2, 0)
	wvp := core.Scale(2, 2, 2).Mul(wv)
	if got := core.Matrix4(s.floats["uWVMatrix"]); got != wv {
		t.Errorf("uWVMatrix = %v, want %v", got, wv)
	}
	if got := core.Matrix4(s.floats["uWVPMatrix"]); got != wvp {
		t.Errorf("uWVPMatrix = %v, want %v", got, wvp)
	}
	if got := core.Matrix4(s.floats["uNMatrix"]); got != wv.NormalMatrix() {
		t.Errorf("uNMatrix = %v, want %v", got, wv.NormalMatrix())
	}
}

func TestCallbackResolvesLocationsOnce(t *testing.T) {
	s := newFakeServices("uTextureUnit0")
	cb := &SolidCallback{}
	m := New()
	cb.OnSetMaterial(&m)
	cb.OnSetConstants(s, 0)
	first := s.lookups
	cb.OnSetConstants(s, 0)
	cb.OnSetConstants(s, 0)
	if s.lookups != first {
		t.Errorf("lookups grew from %d to %d after the first upload", first, s.lookups)
	}
}

func TestSolidCallbackTextureUsage(t *testing.T) {
	s := newFakeServices("uTextureUsage0", "uAlphaRef", "uTextureUnit0")
	cb := &SolidCallback{}
	m := New()
	m.TypeParam = 0.5
	cb.OnSetMaterial(&m)
	cb.OnSetConstants(s, 0)
	if got := s.ints["uTextureUsage0"]; got[0] != 0 {
		t.Errorf("uTextureUsage0 without texture = %v, want [0]", got)
	}
	if got := s.floats["uAlphaRef"]; got[0] != 0.5 {
		t.Errorf("uAlphaRef = %v, want [0.5]", got)
	}

	m.SetTexture(0, &fakeTexture{name: "t"})
	cb.OnSetMaterial(&m)
	cb.OnSetConstants(s, 0)
	if got := s.ints["uTextureUsage0"]; got[0] != 1 {
		t.Errorf("uTextureUsage0 with texture = %v, want [1]", got)
	}
}

func TestTwoLayerCallbacks(t *testing.T) {
	names := []string{"uTMatrix0", "uTMatrix1", "uTextureUnit0", "uTextureUnit1", "uTextureUsage1", "uModulate"}

	t.Run("lightmap modulate", func(t *testing.T) {
		s := newFakeServices(names...)
		cb := NewLightmapCallback(4)
		m := New()
		m.SetTexture(1, &fakeTexture{name: "lm"})
		cb.OnSetMaterial(&m)
		cb.OnSetConstants(s, 0)
		if got := s.floats["uModulate"]; got[0] != 4 {
			t.Errorf("uModulate = %v, want [4]", got)
		}
		if got := s.ints["uTextureUnit1"]; got[0] != 1 {
			t.Errorf("uTextureUnit1 = %v, want [1]", got)
		}
		if got := s.ints["uTextureUsage1"]; got[0] != 1 {
			t.Errorf("uTextureUsage1 = %v, want [1]", got)
		}
		if _, ok := s.floats["uTMatrix1"]; !ok {
			t.Error("uTMatrix1 not uploaded")
		}
	})

	t.Run("reflection has no second matrix", func(t *testing.T) {
		s := newFakeServices(names...)
		cb := &ReflectionCallback{}
		m := New()
		cb.OnSetMaterial(&m)
		cb.OnSetConstants(s, 0)
		if _, ok := s.floats["uTMatrix1"]; ok {
			t.Error("uTMatrix1 uploaded by reflection callback")
		}
		if _, ok := s.floats["uTMatrix0"]; !ok {
			t.Error("uTMatrix0 not uploaded")
		}
	})
}

func TestOneTextureBlendCallbackUploadsBlendType(t *testing.T) {
	s := newFakeServices("uBlendType")
	cb := &OneTextureBlendCallback{}
	m := New()
	m.Type = OneTextureBlend
	m.TypeParam = PackBlendFunc(BlendSrcAlpha, BlendOneMinusSrcAlpha, Modulate1X, AlphaSourceTexture)
	cb.OnSetMaterial(&m)
	cb.OnSetConstants(s, 0)
	if cb.BlendTypeValue() != 2 {
		t.Errorf("BlendTypeValue() = %d, want 2", cb.BlendTypeValue())
	}
	if got := s.ints["uBlendType"]; len(got) != 1 || got[0] != 2 {
		t.Errorf("uBlendType = %v, want [2]", got)
	}
}

func TestTypeString(t *testing.T) {
	if got := OneTextureBlend.String(); got != "onetexture_blend" {
		t.Errorf("OneTextureBlend.String() = %q", got)
	}
	if got := BuiltinCount.String(); got != "custom_18" {
		t.Errorf("BuiltinCount.String() = %q", got)
	}
}

func TestTextureMatrixZeroIsIdentity(t *testing.T) {
	var l TextureLayer
	if !l.TextureMatrix().IsIdentity() {
		t.Error("zero layer matrix not treated as identity")
	}
	l.Matrix = core.Scale(2, 2, 1)
	if l.TextureMatrix() != core.Scale(2, 2, 1) {
		t.Error("explicit layer matrix not returned")
	}
}

func TestMaterialComparable(t *testing.T) {
	a, b := New(), New()
	if a != b {
		t.Fatal("two default materials differ")
	}
	b.SetTexture(0, &fakeTexture{name: "x"})
	if a == b {
		t.Error("materials with different textures compare equal")
	}
	if a.Texture(MaxTextures) != nil {
		t.Error("out of range Texture() not nil")
	}
}
