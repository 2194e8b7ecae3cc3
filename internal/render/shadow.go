package render

import (
	"image"

	"scalepreview/internal/geom"
)

// Side and corner order follows style.Shadow.
const (
	sideLeft = iota
	sideTop
	sideRight
	sideBottom
)

const (
	cornerTopLeft = iota
	cornerBottomLeft
	cornerTopRight
	cornerBottomRight
)

// PaintShadow draws the shadow images around box. Corners sit outside the
// box corners, sides are tiled along each edge between them.
func PaintShadow(c Canvas, box geom.Rect, sides, corners [4]*image.RGBA) {
	b := c.Device(box)
	size := func(img *image.RGBA) image.Point {
		if img == nil {
			return image.Point{}
		}
		return img.Bounds().Size()
	}

	if img := corners[cornerTopLeft]; img != nil {
		s := size(img)
		c.drawDevice(image.Pt(b.Min.X-s.X, b.Min.Y-s.Y), img)
	}
	if img := corners[cornerBottomLeft]; img != nil {
		s := size(img)
		c.drawDevice(image.Pt(b.Min.X-s.X, b.Max.Y), img)
	}
	if img := corners[cornerTopRight]; img != nil {
		s := size(img)
		c.drawDevice(image.Pt(b.Max.X, b.Min.Y-s.Y), img)
	}
	if img := corners[cornerBottomRight]; img != nil {
		c.drawDevice(image.Pt(b.Max.X, b.Max.Y), img)
	}

	clip := c.deviceClip()
	if img := sides[sideLeft]; img != nil {
		s := size(img)
		for y := max(b.Min.Y, clip.Min.Y-s.Y+1); y < min(b.Max.Y, clip.Max.Y); y += s.Y {
			c.drawDevice(image.Pt(b.Min.X-s.X, y), img)
		}
	}
	if img := sides[sideRight]; img != nil {
		s := size(img)
		for y := max(b.Min.Y, clip.Min.Y-s.Y+1); y < min(b.Max.Y, clip.Max.Y); y += s.Y {
			c.drawDevice(image.Pt(b.Max.X, y), img)
		}
	}
	if img := sides[sideTop]; img != nil {
		s := size(img)
		for x := max(b.Min.X, clip.Min.X-s.X+1); x < min(b.Max.X, clip.Max.X); x += s.X {
			c.drawDevice(image.Pt(x, b.Min.Y-s.Y), img)
		}
	}
	if img := sides[sideBottom]; img != nil {
		s := size(img)
		for x := max(b.Min.X, clip.Min.X-s.X+1); x < min(b.Max.X, clip.Max.X); x += s.X {
			c.drawDevice(image.Pt(x, b.Max.Y), img)
		}
	}
}
