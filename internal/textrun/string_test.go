package textrun

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scalepreview/internal/geom"
	"scalepreview/internal/render"
	"scalepreview/internal/style"
)

func TestMaxWidthGrowsWithFontSize(t *testing.T) {
	faces := NewFaces()
	small := NewString(faces)
	small.SetText(style.Font{Size: 13}, "Do you know what time it is?")
	large := NewString(faces)
	large.SetText(style.Font{Size: 26}, "Do you know what time it is?")

	require.Positive(t, small.MaxWidth())
	assert.Greater(t, large.MaxWidth(), small.MaxWidth())
	assert.Greater(t, large.LineHeight(), small.LineHeight())
}

func TestLinesAreLimitedAndElided(t *testing.T) {
	s := NewString(NewFaces())
	s.SetText(style.Font{Size: 13}, strings.Repeat("lorem ipsum dolor ", 20))

	all := s.Lines(120, 0)
	require.Greater(t, len(all), 3)

	limited := s.Lines(120, 3)
	require.Len(t, limited, 3)
	assert.True(t, strings.HasSuffix(limited[2], ellipsis), "last line %q must be elided", limited[2])
	for _, line := range limited {
		assert.LessOrEqual(t, Measure(s.face(), line), 120)
	}
}

func TestCountHeightMatchesLineCount(t *testing.T) {
	s := NewString(NewFaces())
	s.SetText(style.Font{Size: 13}, "Good morning!")
	assert.Equal(t, s.LineHeight(), s.CountHeight(1000))
	assert.Equal(t, len(s.Lines(40, 0))*s.LineHeight(), s.CountHeight(40))
}

func TestLongWordIsBroken(t *testing.T) {
	s := NewString(NewFaces())
	s.SetText(style.Font{Size: 13}, "supercalifragilisticexpialidocious")
	lines := s.Lines(50, 0)
	require.Greater(t, len(lines), 1)
	assert.Equal(t, "supercalifragilisticexpialidocious", strings.Join(lines, ""))
}

func TestDrawLeftElidedPaintsInsideClip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 60))
	c := render.NewCanvas(img, 2).Clipped(geom.R(0, 0, 100, 30))
	s := NewString(NewFaces())
	s.SetText(style.Font{Size: 13}, "Bob Harris")
	s.DrawLeftElided(c, 0, 0, 100, 1, color.NRGBA{A: 0xFF})

	painted := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			painted++
		}
	}
	assert.Positive(t, painted)
}
