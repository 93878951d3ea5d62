package gl3

import (
	"log/slog"

	"github.com/gogpu/gl3/gl"
	icolor "github.com/gogpu/gl3/internal/color"
)

// RenderTargetKind names the buffer a screenshot reads from.
type RenderTargetKind uint8

const (
	TargetFramebuffer RenderTargetKind = iota
	TargetRenderTexture
	TargetMultiRenderTextures
	TargetStereoBothBuffers
)

// CreateScreenShot reads the default framebuffer into a new image with
// rows top-down. The image format follows the read format the context
// prefers. Only TargetFramebuffer can be captured; other targets and GL
// errors yield nil.
func (d *Driver) CreateScreenShot(target RenderTargetKind) *Image {
	if target != TargetFramebuffer {
		d.log.Warn("gl3: screenshot target not supported", slog.Int("target", int(target)))
		return nil
	}
	size := d.screenSize
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}

	pixel, ty := d.caps.ReadFormat, d.caps.ReadType
	var (
		format  ColorFormat
		convert icolor.Converter
	)
	switch {
	case pixel == gl.RGBA && ty == gl.UnsignedByte:
		format, convert = FormatA8R8G8B8, icolor.A8R8G8B8ToA8B8G8R8
	case pixel == gl.RGBA:
		format, convert = FormatA1R5G5B5, icolor.R5G5B5A1ToA1R5G5B5
	case ty == gl.UnsignedByte:
		format = FormatR8G8B8
	default:
		format = FormatR5G6B5
	}

	img := NewImage(format, size)
	d.gl.ReadPixels(img.Pix, 0, 0, int32(size.X), int32(size.Y), pixel, ty)
	if d.checkBasic("CreateScreenShot") {
		return nil
	}
	if convert != nil {
		convert(img.Pix, size.X*size.Y, img.Pix)
	}
	icolor.FlipRows(img.Pix, img.Pitch, size.Y)
	return img
}

