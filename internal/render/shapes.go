package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"scalepreview/internal/geom"
)

// Corner indices shared by masks and pixmaps.
const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

const coverageSamples = 4

// CornersMask builds antialiased quarter-circle alpha masks of the given
// radius in device pixels.
func CornersMask(radius int) [4]*image.Alpha {
	var masks [4]*image.Alpha
	if radius <= 0 {
		return masks
	}
	r := float64(radius)
	for i := range masks {
		mask := image.NewAlpha(image.Rect(0, 0, radius, radius))
		for y := 0; y < radius; y++ {
			for x := 0; x < radius; x++ {
				// Distance is measured from the circle centre, which sits at the
				// inner corner of each quadrant.
				cx, cy := float64(x), float64(y)
				if i == TopLeft || i == BottomLeft {
					cx = r - float64(x) - 1
				}
				if i == TopLeft || i == TopRight {
					cy = r - float64(y) - 1
				}
				mask.SetAlpha(x, y, color.Alpha{A: coverage(cx, cy, r)})
			}
		}
		masks[i] = mask
	}
	return masks
}

// coverage of the pixel at (x, y) inside a circle of radius r centred at
// the origin.
func coverage(x, y, r float64) uint8 {
	hits := 0
	for sy := 0; sy < coverageSamples; sy++ {
		for sx := 0; sx < coverageSamples; sx++ {
			px := x + (float64(sx)+0.5)/coverageSamples
			py := y + (float64(sy)+0.5)/coverageSamples
			if px*px+py*py <= r*r {
				hits++
			}
		}
	}
	return uint8(math.Round(255 * float64(hits) / (coverageSamples * coverageSamples)))
}

// Round multiplies the four corners of img by masks, in place.
func Round(img *image.RGBA, masks [4]*image.Alpha) {
	b := img.Bounds()
	for i, mask := range masks {
		if mask == nil {
			continue
		}
		m := mask.Bounds()
		var at image.Point
		switch i {
		case TopLeft:
			at = b.Min
		case TopRight:
			at = image.Pt(b.Max.X-m.Dx(), b.Min.Y)
		case BottomLeft:
			at = image.Pt(b.Min.X, b.Max.Y-m.Dy())
		case BottomRight:
			at = image.Pt(b.Max.X-m.Dx(), b.Max.Y-m.Dy())
		}
		for y := 0; y < m.Dy(); y++ {
			for x := 0; x < m.Dx(); x++ {
				p := at.Add(image.Pt(x, y))
				if !p.In(b) {
					continue
				}
				a := uint32(mask.AlphaAt(m.Min.X+x, m.Min.Y+y).A)
				if a == 0xFF {
					continue
				}
				off := img.PixOffset(p.X, p.Y)
				for k := 0; k < 4; k++ {
					img.Pix[off+k] = uint8(uint32(img.Pix[off+k]) * a / 0xFF)
				}
			}
		}
	}
}

// Circle crops img to the inscribed circle, in place.
func Circle(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	r := float64(min(w, h)) / 2
	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := math.Abs(float64(x)+0.5-cx) - 0.5
			dy := math.Abs(float64(y)+0.5-cy) - 0.5
			a := uint32(coverage(math.Max(dx, 0), math.Max(dy, 0), r))
			if a == 0xFF {
				continue
			}
			off := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			for k := 0; k < 4; k++ {
				img.Pix[off+k] = uint8(uint32(img.Pix[off+k]) * a / 0xFF)
			}
		}
	}
	return img
}

// CornerPixmaps paints the four quarter circles of radius (device pixels)
// in col.
func CornerPixmaps(radius int, col color.NRGBA) [4]*image.RGBA {
	var out [4]*image.RGBA
	for i, mask := range CornersMask(radius) {
		if mask == nil {
			continue
		}
		img := image.NewRGBA(mask.Bounds())
		draw.DrawMask(img, img.Bounds(), image.NewUniform(col), image.Point{}, mask, image.Point{}, draw.Src)
		out[i] = img
	}
	return out
}

// FillRoundRect fills r with col using corner pixmaps; a nil corner leaves
// that corner square.
func FillRoundRect(c Canvas, r geom.Rect, col color.NRGBA, corners [4]*image.RGBA) {
	dr := c.Device(r)
	if dr.Empty() {
		return
	}
	size := func(i int) image.Point {
		if corners[i] == nil {
			return image.Point{}
		}
		return corners[i].Bounds().Size()
	}
	tl, tr, bl, br := size(TopLeft), size(TopRight), size(BottomLeft), size(BottomRight)

	top := max(tl.Y, tr.Y)
	bottom := max(bl.Y, br.Y)
	// Middle band spans the full width.
	c.fillDevice(image.Rect(dr.Min.X, dr.Min.Y+top, dr.Max.X, dr.Max.Y-bottom), col)
	// Top band between the top corners, plus any height a shorter corner leaves.
	c.fillDevice(image.Rect(dr.Min.X+tl.X, dr.Min.Y, dr.Max.X-tr.X, dr.Min.Y+top), col)
	c.fillDevice(image.Rect(dr.Min.X, dr.Min.Y+tl.Y, dr.Min.X+tl.X, dr.Min.Y+top), col)
	c.fillDevice(image.Rect(dr.Max.X-tr.X, dr.Min.Y+tr.Y, dr.Max.X, dr.Min.Y+top), col)
	c.fillDevice(image.Rect(dr.Min.X+bl.X, dr.Max.Y-bottom, dr.Max.X-br.X, dr.Max.Y), col)
	c.fillDevice(image.Rect(dr.Min.X, dr.Max.Y-bottom, dr.Min.X+bl.X, dr.Max.Y-bl.Y), col)
	c.fillDevice(image.Rect(dr.Max.X-br.X, dr.Max.Y-bottom, dr.Max.X, dr.Max.Y-br.Y), col)

	if corners[TopLeft] != nil {
		c.drawDevice(dr.Min, corners[TopLeft])
	}
	if corners[TopRight] != nil {
		c.drawDevice(image.Pt(dr.Max.X-tr.X, dr.Min.Y), corners[TopRight])
	}
	if corners[BottomLeft] != nil {
		c.drawDevice(image.Pt(dr.Min.X, dr.Max.Y-bl.Y), corners[BottomLeft])
	}
	if corners[BottomRight] != nil {
		c.drawDevice(image.Pt(dr.Max.X-br.X, dr.Max.Y-br.Y), corners[BottomRight])
	}
}

// Scale resamples src to w×h device pixels.
func Scale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(1, w), max(1, h)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
