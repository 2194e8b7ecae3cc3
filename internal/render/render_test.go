package render

import (
	"image"
	"image/color"
	"testing"

	"scalepreview/internal/geom"
	"scalepreview/internal/style"
)

var opaqueWhite = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}

func TestCanvasTranslateAndClip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	c := NewCanvas(img, 2)
	if c.Clip() != geom.R(0, 0, 20, 20) {
		t.Fatalf("unexpected root clip: %+v", c.Clip())
	}
	inner := c.Translated(geom.Pt(5, 5)).Clipped(geom.R(0, 0, 4, 4))
	inner.Fill(geom.R(-10, -10, 100, 100), opaqueWhite)

	if img.RGBAAt(9, 9).A != 0 {
		t.Fatalf("pixel before the translated clip must stay empty")
	}
	if img.RGBAAt(10, 10).A != 0xFF || img.RGBAAt(17, 17).A != 0xFF {
		t.Fatalf("clip area must be filled")
	}
	if img.RGBAAt(18, 18).A != 0 {
		t.Fatalf("pixel after the clip must stay empty")
	}
}

func TestCanvasClearOnlyInsideClip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	c := NewCanvas(img, 1)
	c.Fill(geom.R(0, 0, 10, 10), opaqueWhite)
	c.Clipped(geom.R(0, 0, 5, 10)).Clear(geom.R(0, 0, 10, 10))
	if img.RGBAAt(4, 4).A != 0 || img.RGBAAt(5, 4).A != 0xFF {
		t.Fatalf("clear leaked outside the clip")
	}
}

func TestRoundCutsCorners(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	NewCanvas(img, 1).Fill(geom.R(0, 0, 20, 20), opaqueWhite)
	Round(img, CornersMask(6))
	for _, p := range []image.Point{{0, 0}, {19, 0}, {0, 19}, {19, 19}} {
		if a := img.RGBAAt(p.X, p.Y).A; a != 0 {
			t.Fatalf("corner %v alpha = %d, want 0", p, a)
		}
	}
	if img.RGBAAt(10, 10).A != 0xFF || img.RGBAAt(10, 0).A != 0xFF {
		t.Fatalf("edges and centre must stay opaque")
	}
}

func TestCircle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 33, 33))
	NewCanvas(img, 1).Fill(geom.R(0, 0, 33, 33), opaqueWhite)
	Circle(img)
	if img.RGBAAt(0, 0).A != 0 {
		t.Fatalf("circle corner must be transparent")
	}
	if img.RGBAAt(16, 16).A != 0xFF {
		t.Fatalf("circle centre must be opaque")
	}
}

func TestFillRoundRectLeavesMissingCornerSquare(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	corners := CornerPixmaps(8, opaqueWhite)
	corners[BottomLeft] = nil
	FillRoundRect(NewCanvas(img, 1), geom.R(0, 0, 40, 40), opaqueWhite, corners)

	if img.RGBAAt(0, 39).A != 0xFF {
		t.Fatalf("bottom-left must be square")
	}
	if img.RGBAAt(0, 0).A != 0 || img.RGBAAt(39, 39).A != 0 {
		t.Fatalf("rounded corners must be transparent at the very edge")
	}
	if img.RGBAAt(20, 20).A != 0xFF {
		t.Fatalf("body must be filled")
	}
}

func TestPaintShadowSurroundsBox(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 60, 60))
	sh := style.DefaultShadow(geom.Margins{Left: 9, Top: 8, Right: 9, Bottom: 10})
	var sides, corners [4]*image.RGBA
	for i := range sides {
		sides[i] = sh.Sides[i].Instance(color.NRGBA{A: 0xFF}, 100)
		corners[i] = sh.Corners[i].Instance(color.NRGBA{A: 0xFF}, 100)
	}
	box := geom.R(10, 10, 40, 40)
	PaintShadow(NewCanvas(img, 1), box, sides, corners)

	if img.RGBAAt(9, 30).A == 0 || img.RGBAAt(50, 30).A == 0 || img.RGBAAt(30, 50).A == 0 {
		t.Fatalf("shadow must touch every side")
	}
	if img.RGBAAt(30, 30).A != 0 {
		t.Fatalf("shadow must not paint inside the box")
	}
}

func TestBackgroundIsCachedPerSize(t *testing.T) {
	bg := NewBackground(style.DefaultBackground(), opaqueWhite)
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	c := NewCanvas(img, 1)
	bg.Paint(c, geom.Size{W: 50, H: 150})
	bg.Paint(c.Clipped(geom.R(0, 0, 10, 10)), geom.Size{W: 50, H: 150})
	if bg.Builds() != 1 {
		t.Fatalf("builds = %d, want 1", bg.Builds())
	}
	if img.RGBAAt(25, 25).A != 0xFF {
		t.Fatalf("wallpaper must be opaque")
	}
	bg.Paint(c, geom.Size{W: 60, H: 180})
	if bg.Builds() != 2 {
		t.Fatalf("builds = %d, want 2 after size change", bg.Builds())
	}
}

func TestBackgroundSolidFill(t *testing.T) {
	fill := color.NRGBA{0x10, 0x20, 0x30, 0xFF}
	bg := NewBackground(style.Background{ColorForFill: &fill}, opaqueWhite)
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	bg.Paint(NewCanvas(img, 1), geom.Size{W: 8, H: 24})
	if got := img.RGBAAt(3, 3); got != (color.RGBA{0x10, 0x20, 0x30, 0xFF}) {
		t.Fatalf("unexpected fill %v", got)
	}
}
