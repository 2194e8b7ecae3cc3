package style

import (
	"image"
	"image/color"
	"math"

	"scalepreview/internal/geom"
)

// Icon produces a colored raster at the given scale percent. The scale
// already includes the device pixel ratio, so the result is in device pixels.
type Icon interface {
	Instance(c color.NRGBA, scale int) *image.RGBA
}

const supersample = 4

// TailIcon is the bubble tail attached to the bottom-left corner: the box
// minus an elliptic quadrant centred on its top-left corner.
type TailIcon struct {
	W int
	H int
}

func (t TailIcon) Instance(c color.NRGBA, scale int) *image.RGBA {
	w := max(1, ConvertScale(t.W, scale))
	h := max(1, ConvertScale(t.H, scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fw, fh := float64(w), float64(h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hits := 0
			for sy := 0; sy < supersample; sy++ {
				for sx := 0; sx < supersample; sx++ {
					px := (float64(x) + (float64(sx)+0.5)/supersample) / fw
					py := (float64(y) + (float64(sy)+0.5)/supersample) / fh
					if px*px+py*py >= 1 {
						hits++
					}
				}
			}
			img.SetRGBA(x, y, premultiply(c, float64(hits)/(supersample*supersample)))
		}
	}
	return img
}

type Side int

const (
	SideLeft Side = iota
	SideTop
	SideRight
	SideBottom
	CornerTopLeft
	CornerBottomLeft
	CornerTopRight
	CornerBottomRight
)

// ShadowIcon is a soft gradient whose opacity grows towards the card edge
// (sides) or the card corner (corners). Sides are one pixel long and are
// tiled by the painter.
type ShadowIcon struct {
	Side     Side
	Size     geom.Size
	Strength float64
}

func (s ShadowIcon) Instance(c color.NRGBA, scale int) *image.RGBA {
	w := max(1, ConvertScale(s.Size.W, scale))
	h := max(1, ConvertScale(s.Size.H, scale))
	switch s.Side {
	case SideLeft, SideRight:
		h = 1
	case SideTop, SideBottom:
		w = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := s.distance(x, y, w, h)
			a := s.Strength * (1 - d) * (1 - d)
			img.SetRGBA(x, y, premultiply(c, a))
		}
	}
	return img
}

// distance returns the normalized 0..1 distance of the pixel centre from
// the card edge or corner.
func (s ShadowIcon) distance(x, y, w, h int) float64 {
	fx := (float64(x) + 0.5) / float64(w)
	fy := (float64(y) + 0.5) / float64(h)
	var d float64
	switch s.Side {
	case SideLeft:
		d = 1 - fx
	case SideRight:
		d = fx
	case SideTop:
		d = 1 - fy
	case SideBottom:
		d = fy
	case CornerTopLeft:
		d = math.Hypot(1-fx, 1-fy)
	case CornerBottomLeft:
		d = math.Hypot(1-fx, fy)
	case CornerTopRight:
		d = math.Hypot(fx, 1-fy)
	case CornerBottomRight:
		d = math.Hypot(fx, fy)
	}
	return math.Min(1, d)
}

func DefaultShadow(extend geom.Margins) Shadow {
	const strength = 0.28
	return Shadow{
		Extend: extend,
		Sides: [4]Icon{
			ShadowIcon{Side: SideLeft, Size: geom.Size{W: extend.Left, H: 1}, Strength: strength},
			ShadowIcon{Side: SideTop, Size: geom.Size{W: 1, H: extend.Top}, Strength: strength},
			ShadowIcon{Side: SideRight, Size: geom.Size{W: extend.Right, H: 1}, Strength: strength},
			ShadowIcon{Side: SideBottom, Size: geom.Size{W: 1, H: extend.Bottom}, Strength: strength},
		},
		Corners: [4]Icon{
			ShadowIcon{Side: CornerTopLeft, Size: geom.Size{W: extend.Left, H: extend.Top}, Strength: strength},
			ShadowIcon{Side: CornerBottomLeft, Size: geom.Size{W: extend.Left, H: extend.Bottom}, Strength: strength},
			ShadowIcon{Side: CornerTopRight, Size: geom.Size{W: extend.Right, H: extend.Top}, Strength: strength},
			ShadowIcon{Side: CornerBottomRight, Size: geom.Size{W: extend.Right, H: extend.Bottom}, Strength: strength},
		},
	}
}

func premultiply(c color.NRGBA, coverage float64) color.RGBA {
	if coverage <= 0 {
		return color.RGBA{}
	}
	if coverage > 1 {
		coverage = 1
	}
	a := float64(c.A) * coverage
	k := a / 255
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * k)),
		G: uint8(math.Round(float64(c.G) * k)),
		B: uint8(math.Round(float64(c.B) * k)),
		A: uint8(math.Round(a)),
	}
}
