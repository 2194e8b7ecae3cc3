// Package textrun lays out and draws the short text runs of the preview.
package textrun

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type faceKey struct {
	size int
	bold bool
}

// Faces parses the Go fonts once and caches a face per pixel size.
type Faces struct {
	regular *opentype.Font
	bold    *opentype.Font
	cache   map[faceKey]font.Face
}

func NewFaces() *Faces {
	faces := &Faces{cache: map[faceKey]font.Face{}}
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return faces
	}
	bol, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return faces
	}
	faces.regular = reg
	faces.bold = bol
	return faces
}

// Face returns a face rendering glyphs at size pixels.
func (f *Faces) Face(size int, bold bool) font.Face {
	if size < 1 {
		size = 1
	}
	key := faceKey{size: size, bold: bold}
	if face, ok := f.cache[key]; ok {
		return face
	}
	base := f.regular
	if bold {
		base = f.bold
	}
	if base == nil {
		return basicfont.Face7x13
	}
	opts := &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull}
	face, err := opentype.NewFace(base, opts)
	if err != nil {
		return basicfont.Face7x13
	}
	f.cache[key] = face
	return face
}

// Height is the line height of face: ascent plus descent.
func Height(face font.Face) int {
	m := face.Metrics()
	return m.Ascent.Ceil() + m.Descent.Ceil()
}

// Measure returns the advance width of s in whole pixels.
func Measure(face font.Face, s string) int {
	if face == nil || s == "" {
		return 0
	}
	adv := font.MeasureString(face, s)
	px := (int(adv) + 32) >> 6
	if px < 0 {
		px = 0
	}
	return px
}
