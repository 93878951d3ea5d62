package gl3

import (
	"image"
	"log/slog"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/gl3/core"
	"github.com/gogpu/gl3/gl"
	"github.com/gogpu/gl3/vertex"
)

// ndcRect maps a pixel rectangle with a top-left origin to normalized
// device coordinates of a target of the given size.
func ndcRect(r image.Rectangle, size image.Point) (left, right, top, down float32) {
	w, h := float32(size.X), float32(size.Y)
	left = float32(r.Min.X)/w*2 - 1
	right = float32(r.Max.X)/w*2 - 1
	top = 2 - float32(r.Min.Y)/h*2 - 1
	down = 2 - float32(r.Max.Y)/h*2 - 1
	return left, right, top, down
}

func ndcPoint(p image.Point, size image.Point) f32.Vec3 {
	return f32.Vec3{
		float32(p.X)/float32(size.X)*2 - 1,
		2 - float32(p.Y)/float32(size.Y)*2 - 1,
		0,
	}
}

func vertex2D(x, y float32, c core.Color, u, v float32) vertex.Standard {
	return vertex.Standard{
		Pos:     f32.Vec3{x, y, 0},
		Normal:  f32.Vec3{0, 0, 1},
		Color:   c,
		TCoords: f32.Vec2{u, v},
	}
}

// texCoords returns the texture coordinates of src inside tex. Render
// target textures are stored bottom-up, so their V is flipped.
func texCoords(tex *Texture, src image.Rectangle) (u0, v0, u1, v1 float32) {
	w, h := float32(tex.size.X), float32(tex.size.Y)
	u0, u1 = float32(src.Min.X)/w, float32(src.Max.X)/w
	v0, v1 = float32(src.Min.Y)/h, float32(src.Max.Y)/h
	if tex.renderTarget {
		v0, v1 = 1-v0, 1-v1
	}
	return u0, v0, u1, v1
}

// enableScissor clips following draws to clip, given in top-left origin
// pixel coordinates of the current target.
func (d *Driver) enableScissor(clip image.Rectangle) {
	h := d.CurrentRenderTargetSize().Y
	d.state.SetScissorTest(true)
	d.state.SetScissor(image.Rect(clip.Min.X, h-clip.Max.Y, clip.Max.X, h-clip.Min.Y))
}

func (d *Driver) disableScissor() {
	d.state.SetScissorTest(false)
}

// Draw2DImage draws the src part of tex with its top-left corner at pos.
// A nil clip draws unclipped.
func (d *Driver) Draw2DImage(tex *Texture, pos image.Point, src image.Rectangle, clip *image.Rectangle, color core.Color, useAlpha bool) {
	if tex == nil || src.Empty() {
		return
	}
	dst := image.Rectangle{Min: pos, Max: pos.Add(src.Size())}
	colors := [4]core.Color{color, color, color, color}
	d.Draw2DImageRect(tex, dst, src, clip, &colors, useAlpha)
}

// Draw2DImageRect draws the src part of tex scaled into dst. colors are
// the vertex colors of the upper left, lower left, lower right and upper
// right corners; nil means white.
func (d *Driver) Draw2DImageRect(tex *Texture, dst, src image.Rectangle, clip *image.Rectangle, colors *[4]core.Color, useAlpha bool) {
	if tex == nil || dst.Empty() || src.Empty() || (clip != nil && clip.Empty()) {
		return
	}
	if tex.owner != d {
		d.log.Warn("gl3: refusing to draw foreign texture", slog.String("texture", tex.Name()))
		return
	}

	c := [4]core.Color{core.White, core.White, core.White, core.White}
	if colors != nil {
		c = *colors
	}
	alpha := c[0].A() < 255 || c[1].A() < 255 || c[2].A() < 255 || c[3].A() < 255

	d.chooseMaterial2D()
	if !d.SetMaterialTexture(0, tex) {
		return
	}
	d.setRenderStates2DMode(alpha, true, useAlpha)

	if clip != nil {
		d.enableScissor(*clip)
		defer d.disableScissor()
	}

	u0, v0, u1, v1 := texCoords(tex, src)
	left, right, top, down := ndcRect(dst, d.CurrentRenderTargetSize())
	d.drawArrays2D(gl.TriangleFan, vertex.KindImage2D, []vertex.Standard{
		vertex2D(left, top, c[0], u0, v0),
		vertex2D(right, top, c[3], u1, v0),
		vertex2D(right, down, c[2], u1, v1),
		vertex2D(left, down, c[1], u0, v1),
	})
}

// Draw2DImageQuad draws tex over the whole viewport. flip mirrors it
// vertically, which render target textures need.
func (d *Driver) Draw2DImageQuad(tex *Texture, flip bool) {
	if tex == nil {
		return
	}
	d.chooseMaterial2D()
	if !d.SetMaterialTexture(0, tex) {
		return
	}
	d.setRenderStates2DMode(false, true, true)

	var m float32
	if flip {
		m = 1
	}
	d.drawArrays2D(gl.TriangleFan, vertex.KindImage2D, []vertex.Standard{
		vertex2D(-1, 1, core.White, 0, m),
		vertex2D(1, 1, core.White, 1, m),
		vertex2D(1, -1, core.White, 1, 1-m),
		vertex2D(-1, -1, core.White, 0, 1-m),
	})
}

// Draw2DImageBatch draws several parts of tex in one call. Part i is
// srcRects[i] drawn at positions[i]; extra entries of the longer slice are
// ignored.
func (d *Driver) Draw2DImageBatch(tex *Texture, positions []image.Point, srcRects []image.Rectangle, clip *image.Rectangle, color core.Color, useAlpha bool) {
	if tex == nil || (clip != nil && clip.Empty()) {
		return
	}
	n := min(len(positions), len(srcRects))
	if maxQuads := len(d.quadIndices) / 6; n > maxQuads {
		d.log.Warn("gl3: image batch truncated", slog.Int("images", n), slog.Int("max", maxQuads))
		n = maxQuads
	}
	if n == 0 {
		return
	}

	d.chooseMaterial2D()
	if !d.SetMaterialTexture(0, tex) {
		return
	}
	d.setRenderStates2DMode(color.A() < 255, true, useAlpha)

	if clip != nil {
		d.enableScissor(*clip)
		defer d.disableScissor()
	}

	size := d.CurrentRenderTargetSize()
	verts := make([]vertex.Standard, 0, 4*n)
	for i := range n {
		src := srcRects[i]
		dst := image.Rectangle{Min: positions[i], Max: positions[i].Add(src.Size())}
		u0, v0, u1, v1 := texCoords(tex, src)
		left, right, top, down := ndcRect(dst, size)
		verts = append(verts,
			vertex2D(left, top, color, u0, v0),
			vertex2D(right, top, color, u1, v0),
			vertex2D(right, down, color, u1, v1),
			vertex2D(left, down, color, u0, v1),
		)
	}
	d.drawQuads2D(vertex.KindImage2D, verts)
}

// Draw2DRectangle fills rect with color, clipped to clip when it is set.
func (d *Driver) Draw2DRectangle(color core.Color, rect image.Rectangle, clip *image.Rectangle) {
	d.Draw2DRectangleGradient(rect, color, color, color, color, clip)
}

// Draw2DRectangleGradient fills rect interpolating the corner colors lu
// (left up), ru, ld and rd.
func (d *Driver) Draw2DRectangleGradient(rect image.Rectangle, lu, ru, ld, rd core.Color, clip *image.Rectangle) {
	pos := rect
	if clip != nil {
		pos = pos.Intersect(*clip)
	}
	if pos.Empty() {
		return
	}

	d.chooseMaterial2D()
	d.SetMaterialTexture(0, nil)
	alpha := lu.A() < 255 || ru.A() < 255 || ld.A() < 255 || rd.A() < 255
	d.setRenderStates2DMode(alpha, false, false)

	left, right, top, down := ndcRect(pos, d.CurrentRenderTargetSize())
	d.drawArrays2D(gl.TriangleFan, vertex.KindPrimitive, []vertex.Standard{
		vertex2D(left, top, lu, 0, 0),
		vertex2D(right, top, ru, 0, 0),
		vertex2D(right, down, rd, 0, 0),
		vertex2D(left, down, ld, 0, 0),
	})
}

// Draw2DLine draws a one pixel line. A line of zero length is a pixel.
func (d *Driver) Draw2DLine(start, end image.Point, color core.Color) {
	if start == end {
		d.DrawPixel(start.X, start.Y, color)
		return
	}

	d.chooseMaterial2D()
	d.SetMaterialTexture(0, nil)
	d.setRenderStates2DMode(color.A() < 255, false, false)

	size := d.CurrentRenderTargetSize()
	a, b := ndcPoint(start, size), ndcPoint(end, size)
	d.drawArrays2D(gl.Lines, vertex.KindPrimitive, []vertex.Standard{
		{Pos: a, Normal: f32.Vec3{0, 0, 1}, Color: color},
		{Pos: b, Normal: f32.Vec3{0, 0, 1}, Color: color, TCoords: f32.Vec2{1, 1}},
	})
}

// DrawPixel sets one pixel. Positions outside the target are ignored.
func (d *Driver) DrawPixel(x, y int, color core.Color) {
	size := d.CurrentRenderTargetSize()
	if x < 0 || y < 0 || x > size.X || y > size.Y {
		return
	}

	d.chooseMaterial2D()
	d.SetMaterialTexture(0, nil)
	d.setRenderStates2DMode(color.A() < 255, false, false)

	d.drawArrays2D(gl.Points, vertex.KindPrimitive, []vertex.Standard{
		{Pos: ndcPoint(image.Pt(x, y), size), Normal: f32.Vec3{0, 0, 1}, Color: color},
	})
}
