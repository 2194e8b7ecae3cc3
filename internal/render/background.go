package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"scalepreview/internal/geom"
	"scalepreview/internal/style"
)

// gradientSide bounds the resolution the gradient is computed at; the
// result is upscaled bilinearly.
const gradientSide = 64

// Anchor points of a freeform gradient, in unit coordinates.
var freeformPoints = [4][2]float64{
	{0.80, 0.10},
	{0.35, 0.25},
	{0.20, 0.90},
	{0.65, 0.75},
}

// Background paints a chat wallpaper and keeps the last prepared raster so
// repeated paints at one size do not resample.
type Background struct {
	desc   style.Background
	filler color.NRGBA
	size   image.Point
	cached *image.RGBA
	builds int
}

func NewBackground(desc style.Background, filler color.NRGBA) *Background {
	return &Background{desc: desc, filler: filler}
}

// Builds reports how many times the wallpaper raster was produced.
func (b *Background) Builds() int { return b.builds }

// Paint fills the area of size (logical) anchored at the canvas origin,
// restricted to the canvas clip.
func (b *Background) Paint(c Canvas, size geom.Size) {
	area := geom.FromPointSize(geom.Point{}, size)
	if c.Clip().Intersect(area).Empty() {
		return
	}
	if fill := b.desc.ColorForFill; fill != nil {
		c.Clipped(area).Fill(area, *fill)
		return
	}
	if b.desc.Tile && b.desc.PreparedForTiled != nil {
		b.paintTiled(c.Clipped(area), size)
		return
	}
	dev := c.Device(area).Size()
	if b.cached == nil || b.size != dev {
		b.cached = b.prepare(dev)
		b.size = dev
		b.builds++
	}
	c.Clipped(area).DrawImage(geom.Point{}, b.cached)
}

func (b *Background) paintTiled(c Canvas, size geom.Size) {
	tile := b.desc.PreparedForTiled
	ts := tile.Bounds().Size()
	if ts.X <= 0 || ts.Y <= 0 {
		c.Fill(geom.FromPointSize(geom.Point{}, size), b.filler)
		return
	}
	dev := c.Device(geom.FromPointSize(geom.Point{}, size))
	clip := c.deviceClip()
	origin := dev.Min
	for y := origin.Y; y < dev.Max.Y; y += ts.Y {
		if y+ts.Y <= clip.Min.Y || y >= clip.Max.Y {
			continue
		}
		for x := origin.X; x < dev.Max.X; x += ts.X {
			if x+ts.X <= clip.Min.X || x >= clip.Max.X {
				continue
			}
			c.drawDevice(image.Pt(x, y), tile)
		}
	}
}

func (b *Background) prepare(size image.Point) *image.RGBA {
	out := image.NewRGBA(image.Rectangle{Max: size})
	if img := b.desc.Prepared; img != nil && !b.desc.IsPattern {
		cover(out, img)
		return out
	}
	draw.Draw(out, out.Bounds(), image.NewUniform(b.filler), image.Point{}, draw.Src)
	if len(b.desc.Colors) > 0 {
		small := gradient(b.desc.Colors, b.desc.GradientRotation, size)
		xdraw.BiLinear.Scale(out, out.Bounds(), small, small.Bounds(), xdraw.Src, nil)
	}
	if img := b.desc.Prepared; img != nil && b.desc.IsPattern {
		pattern := image.NewRGBA(out.Bounds())
		cover(pattern, img)
		alpha := uint8(math.Round(255 * math.Max(0, math.Min(1, b.desc.PatternOpacity))))
		draw.DrawMask(out, out.Bounds(), pattern, image.Point{}, image.NewUniform(color.Alpha{A: alpha}), image.Point{}, draw.Over)
	}
	return out
}

// cover scales src to fill dst keeping the aspect ratio, centred.
func cover(dst *image.RGBA, src image.Image) {
	sb := src.Bounds()
	db := dst.Bounds()
	if sb.Empty() || db.Empty() {
		return
	}
	k := math.Max(float64(db.Dx())/float64(sb.Dx()), float64(db.Dy())/float64(sb.Dy()))
	w := int(math.Ceil(float64(sb.Dx()) * k))
	h := int(math.Ceil(float64(sb.Dy()) * k))
	x := (db.Dx() - w) / 2
	y := (db.Dy() - h) / 2
	xdraw.ApproxBiLinear.Scale(dst, image.Rect(x, y, x+w, y+h), src, sb, xdraw.Src, nil)
}

// gradient renders the wallpaper colors into a small raster with the
// aspect ratio of size. Two colors give a linear gradient along rotation
// degrees; three or four blend around fixed anchor points.
func gradient(colors []color.NRGBA, rotation int, size image.Point) *image.RGBA {
	w, h := gradientSide, gradientSide
	if size.X > size.Y && size.X > 0 {
		h = max(1, gradientSide*size.Y/size.X)
	} else if size.Y > 0 {
		w = max(1, gradientSide*size.X/size.Y)
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	lab := make([]colorful.Color, len(colors))
	for i, c := range colors {
		lab[i] = colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	}
	angle := float64(rotation) * math.Pi / 180
	dx, dy := math.Sin(angle), -math.Cos(angle)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / float64(w)
			v := (float64(y) + 0.5) / float64(h)
			var c colorful.Color
			switch len(lab) {
			case 1:
				c = lab[0]
			case 2:
				// Project on the rotated axis; rotation 0 runs top to bottom.
				t := 0.5 - ((u-0.5)*dx + (v-0.5)*dy)
				c = lab[0].BlendLab(lab[1], math.Max(0, math.Min(1, t)))
			default:
				c = freeform(lab, u, v)
			}
			r, g, bl := c.Clamped().RGB255()
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: bl, A: 0xFF})
		}
	}
	return out
}

func freeform(colors []colorful.Color, u, v float64) colorful.Color {
	var l, a, b, total float64
	for i, c := range colors {
		if i >= len(freeformPoints) {
			break
		}
		p := freeformPoints[i]
		d := (u-p[0])*(u-p[0]) + (v-p[1])*(v-p[1])
		wgt := 1 / math.Max(d*d, 1e-6)
		cl, ca, cb := c.Lab()
		l += cl * wgt
		a += ca * wgt
		b += cb * wgt
		total += wgt
	}
	return colorful.Lab(l/total, a/total, b/total)
}
