package gl3

import (
	"fmt"
	"image"
	"log/slog"
	"slices"

	"github.com/gogpu/gl3/gl"
)

// TextureShape is the kind of texture object.
type TextureShape uint8

const (
	TextureShape2D TextureShape = iota
	TextureShapeCube
)

// Texture is a GL texture created by a Driver.
type Texture struct {
	owner        *Driver
	name         string
	size         image.Point
	shape        TextureShape
	format       ColorFormat
	target       gl.Enum
	handle       gl.Texture
	mipmaps      bool
	renderTarget bool
	sampler      samplerState
}

// Name returns the name the texture was created with. It is safe to call
// on nil.
func (t *Texture) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Size returns the size of mip level 0.
func (t *Texture) Size() image.Point { return t.size }

// Format returns the color format of the texture.
func (t *Texture) Format() ColorFormat { return t.format }

// Shape reports a 2D or cube map texture.
func (t *Texture) Shape() TextureShape { return t.shape }

// HasMipMaps reports whether the texture has a mipmap chain.
func (t *Texture) HasMipMaps() bool { return t.mipmaps }

// IsRenderTarget reports whether the texture can be rendered into.
func (t *Texture) IsRenderTarget() bool { return t.renderTarget }

// Handle returns the GL texture object.
func (t *Texture) Handle() gl.Texture { return t.handle }

// AddTexture creates an empty texture. Compressed formats need data and
// cannot be created empty.
func (d *Driver) AddTexture(name string, size image.Point, shape TextureShape, format ColorFormat) (*Texture, error) {
	if format.IsCompressed() {
		return nil, fmt.Errorf("%w: %s texture %q needs image data", ErrImageData, format, name)
	}
	return d.createTexture(name, size, shape, format, nil, false, false)
}

// AddTextureFromImage creates a 2D texture holding img. Mipmaps are
// generated when enabled in the options and the context allows it.
func (d *Driver) AddTextureFromImage(name string, img *Image) (*Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image for %q", ErrImageData, name)
	}
	return d.createTexture(name, img.Size, TextureShape2D, img.Format, [][]byte{img.Pix}, d.opts.mipMaps, false)
}

// AddRenderTargetTexture creates a 2D texture that can be attached to a
// RenderTarget.
func (d *Driver) AddRenderTargetTexture(size image.Point, name string, format ColorFormat) (*Texture, error) {
	return d.createTexture(name, size, TextureShape2D, format, nil, false, true)
}

// AddRenderTargetTextureCubemap creates a cube map render target texture
// with square faces of side length.
func (d *Driver) AddRenderTargetTextureCubemap(side int, name string, format ColorFormat) (*Texture, error) {
	return d.createTexture(name, image.Pt(side, side), TextureShapeCube, format, nil, false, true)
}

func (d *Driver) createTexture(name string, size image.Point, shape TextureShape, format ColorFormat,
	faces [][]byte, mipmaps, renderTarget bool) (*Texture, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%w: %q is %dx%d", ErrInvalidSize, name, size.X, size.Y)
	}
	if m := d.caps.MaxTextureSize; m > 0 && (size.X > m || size.Y > m) {
		return nil, fmt.Errorf("%w: %q is %dx%d, limit %d", ErrInvalidSize, name, size.X, size.Y, m)
	}
	p, ok := d.ColorFormatParams(format)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFormatUnsupported, format)
	}
	if renderTarget && format.IsCompressed() {
		return nil, fmt.Errorf("%w: %s", ErrCompressedRenderTarget, format)
	}
	want := format.DataSize(size.X, size.Y)
	for _, data := range faces {
		if data != nil && len(data) < want {
			return nil, fmt.Errorf("%w: %q has %d bytes, %s %dx%d needs %d",
				ErrImageData, name, len(data), format, size.X, size.Y, want)
		}
	}

	h := d.gl.GenTexture()
	if h == 0 {
		return nil, fmt.Errorf("%w: %q", ErrTextureAlloc, name)
	}
	t := &Texture{
		owner:        d,
		name:         name,
		size:         size,
		shape:        shape,
		format:       format,
		target:       gl.Texture2D,
		handle:       h,
		renderTarget: renderTarget,
	}
	if shape == TextureShapeCube {
		t.target = gl.TextureCubeMap
	}
	t.mipmaps = mipmaps && faces != nil && !format.IsCompressed() && (d.caps.NPOT() || (isPow2(size.X) && isPow2(size.Y)))

	// Bind through unit 0 so the texture cache stays in step.
	prev := d.textures.Get(0)
	d.textures.Set(0, t)

	n := 1
	if shape == TextureShapeCube {
		n = 6
	}
	for face := range n {
		target := t.target
		if shape == TextureShapeCube {
			target = gl.TextureCubeMapPositiveX + gl.Enum(face)
		}
		var data []byte
		if face < len(faces) {
			data = faces[face]
		}
		d.uploadTexture(target, size, p, format, data)
	}

	minFilter := int32(gl.Linear)
	if t.mipmaps {
		d.gl.GenerateMipmap(t.target)
		minFilter = int32(gl.LinearMipmapNearest)
	}
	d.gl.TexParameteri(t.target, gl.TextureMinFilter, minFilter)
	d.gl.TexParameteri(t.target, gl.TextureMagFilter, int32(gl.Linear))
	t.sampler = samplerState{
		magFilter: int32(gl.Linear),
		minFilter: minFilter,
		wrapS:     int32(gl.Repeat),
		wrapT:     int32(gl.Repeat),
	}

	if prev != nil {
		d.textures.Set(0, prev)
	} else {
		d.textures.Set(0, nil)
	}

	if d.checkBasic("createTexture") {
		d.gl.DeleteTexture(h)
		t.owner = nil
		return nil, fmt.Errorf("%w: %q", ErrTextureAlloc, name)
	}
	d.textureList = append(d.textureList, t)
	d.log.Debug("gl3: texture created",
		slog.String("name", name), slog.String("format", format.String()),
		slog.Int("width", size.X), slog.Int("height", size.Y))
	return t, nil
}

func (d *Driver) uploadTexture(target gl.Enum, size image.Point, p FormatParams, format ColorFormat, data []byte) {
	w, h := int32(size.X), int32(size.Y)
	if format.IsCompressed() {
		d.gl.CompressedTexImage2D(target, 0, p.Internal, w, h, data[:format.DataSize(size.X, size.Y)])
		return
	}
	if data != nil && p.Converter != nil {
		converted := make([]byte, format.DataSize(size.X, size.Y))
		p.Converter(data, size.X*size.Y, converted)
		data = converted
	}
	d.gl.PixelStorei(gl.UnpackAlignment, 1)
	d.gl.TexImage2D(target, 0, p.Internal, w, h, p.Pixel, p.Type, data)
}

func isPow2(n int) bool { return n > 0 && n&(n-1) == 0 }

// FindTexture returns the texture named name, or nil.
func (d *Driver) FindTexture(name string) *Texture {
	for _, t := range d.textureList {
		if t.name == name {
			return t
		}
	}
	return nil
}

// Textures returns the live textures in creation order.
func (d *Driver) Textures() []*Texture {
	return slices.Clone(d.textureList)
}

// RemoveTexture deletes tex. Textures of other drivers are ignored.
func (d *Driver) RemoveTexture(tex *Texture) {
	if tex == nil || tex.owner != d {
		return
	}
	d.textures.Remove(tex)
	for i := range d.material.TextureLayers {
		if d.material.TextureLayers[i].Texture == tex {
			d.material.TextureLayers[i].Texture = nil
		}
		if d.lastMaterial.TextureLayers[i].Texture == tex {
			d.lastMaterial.TextureLayers[i].Texture = nil
		}
	}
	d.gl.DeleteTexture(tex.handle)
	tex.owner = nil
	tex.handle = 0
	d.textureList = slices.DeleteFunc(d.textureList, func(t *Texture) bool { return t == tex })
}

// RemoveAllTextures deletes every texture.
func (d *Driver) RemoveAllTextures() {
	for _, t := range slices.Clone(d.textureList) {
		d.RemoveTexture(t)
	}
}
