// Package render rasterizes the preview into premultiplied RGBA buffers.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"scalepreview/internal/geom"
)

// Canvas is a view of a device-pixel buffer in logical coordinates. Each
// paint stage receives its own Canvas value; Translated and Clipped return
// new values, nothing is mutated in place.
type Canvas struct {
	img    *image.RGBA
	ratio  int
	offset geom.Point
	clip   geom.Rect
}

// NewCanvas wraps img, whose pixel size is the logical size times ratio.
func NewCanvas(img *image.RGBA, ratio int) Canvas {
	if ratio < 1 {
		ratio = 1
	}
	b := img.Bounds()
	return Canvas{
		img:   img,
		ratio: ratio,
		clip:  geom.R(b.Min.X/ratio, b.Min.Y/ratio, b.Dx()/ratio, b.Dy()/ratio),
	}
}

func (c Canvas) Image() *image.RGBA { return c.img }
func (c Canvas) Ratio() int         { return c.ratio }
func (c Canvas) Offset() geom.Point { return c.offset }

// Clip is the paintable area in local coordinates.
func (c Canvas) Clip() geom.Rect { return c.clip }

// Translated moves the local origin to p.
func (c Canvas) Translated(p geom.Point) Canvas {
	c.offset = c.offset.Add(p)
	c.clip = c.clip.Translated(p.Neg())
	return c
}

func (c Canvas) Clipped(r geom.Rect) Canvas {
	c.clip = c.clip.Intersect(r)
	return c
}

// Device maps a local rect to buffer pixels.
func (c Canvas) Device(r geom.Rect) image.Rectangle {
	return r.Translated(c.offset).Scaled(c.ratio).Image()
}

func (c Canvas) DevicePoint(p geom.Point) image.Point {
	p = p.Add(c.offset).Mul(c.ratio)
	return image.Pt(p.X, p.Y)
}

func (c Canvas) deviceClip() image.Rectangle {
	return c.Device(c.clip).Intersect(c.img.Bounds())
}

// Target returns the buffer restricted to the clip, for drawers that do
// their own positioning in device pixels.
func (c Canvas) Target() *image.RGBA {
	return c.img.SubImage(c.deviceClip()).(*image.RGBA)
}

func (c Canvas) Empty() bool { return c.clip.Empty() }

// Clear makes r fully transparent.
func (c Canvas) Clear(r geom.Rect) {
	dr := c.Device(r).Intersect(c.deviceClip())
	if dr.Empty() {
		return
	}
	draw.Draw(c.img, dr, image.Transparent, image.Point{}, draw.Src)
}

// Fill composites col over r.
func (c Canvas) Fill(r geom.Rect, col color.Color) {
	c.fillDevice(c.Device(r), col)
}

// FillOpacity composites col over r with an extra opacity factor.
func (c Canvas) FillOpacity(r geom.Rect, col color.NRGBA, opacity float64) {
	if opacity <= 0 {
		return
	}
	if opacity < 1 {
		col.A = uint8(float64(col.A)*opacity + 0.5)
	}
	c.Fill(r, col)
}

func (c Canvas) fillDevice(dr image.Rectangle, col color.Color) {
	dr = dr.Intersect(c.deviceClip())
	if dr.Empty() {
		return
	}
	op := draw.Over
	if _, _, _, a := col.RGBA(); a == 0xFFFF {
		op = draw.Src
	}
	draw.Draw(c.img, dr, image.NewUniform(col), image.Point{}, op)
}

// DrawImage composites a device-pixel image with its top-left at the
// logical point at.
func (c Canvas) DrawImage(at geom.Point, src image.Image) {
	if src == nil {
		return
	}
	c.drawDevice(c.DevicePoint(at), src)
}

func (c Canvas) drawDevice(at image.Point, src image.Image) {
	sb := src.Bounds()
	dr := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	clipped := dr.Intersect(c.deviceClip())
	if clipped.Empty() {
		return
	}
	sp := sb.Min.Add(clipped.Min.Sub(dr.Min))
	draw.Draw(c.img, clipped, src, sp, draw.Over)
}

// Resize returns img when it already has the requested size and a fresh
// buffer otherwise.
func Resize(img *image.RGBA, size geom.Size) *image.RGBA {
	w, h := max(1, size.W), max(1, size.H)
	if img != nil && img.Bounds().Dx() == w && img.Bounds().Dy() == h {
		return img
	}
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// Wipe clears the whole buffer to transparent.
func Wipe(img *image.RGBA) {
	clear(img.Pix)
}
