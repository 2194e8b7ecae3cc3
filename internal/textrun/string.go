package textrun

import (
	"image"
	"image/color"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"scalepreview/internal/geom"
	"scalepreview/internal/render"
	"scalepreview/internal/style"
)

const ellipsis = "…"

// String is a run of text in one font that can report its natural width,
// its wrapped height and draw itself elided to a number of lines.
type String struct {
	faces *Faces
	font  style.Font
	text  string
	words []string
}

func NewString(faces *Faces) *String {
	return &String{faces: faces}
}

func (s *String) SetText(f style.Font, text string) {
	s.font = f
	s.text = text
	s.words = strings.Fields(text)
}

func (s *String) Text() string { return s.text }

func (s *String) face() font.Face { return s.faces.Face(s.font.Size, s.font.Bold) }

// LineHeight is the height of one line in the current font.
func (s *String) LineHeight() int { return Height(s.face()) }

// MaxWidth is the width of the text laid out on a single line.
func (s *String) MaxWidth() int {
	return Measure(s.face(), strings.Join(s.words, " "))
}

// CountHeight is the height of the text wrapped to width.
func (s *String) CountHeight(width int) int {
	return len(s.Lines(width, 0)) * s.LineHeight()
}

// Lines wraps the text to width. With maxLines > 0 the result is cut to
// maxLines and the last line is elided when text was dropped.
func (s *String) Lines(width, maxLines int) []string {
	return wrap(s.face(), s.words, width, maxLines)
}

// DrawLeftElided draws the text with its top-left corner at (x, y) in the
// canvas' local coordinates, wrapped to width and limited to maxLines
// (at least one).
func (s *String) DrawLeftElided(c render.Canvas, x, y, width, maxLines int, col color.NRGBA) {
	if c.Empty() || len(s.words) == 0 {
		return
	}
	if maxLines < 1 {
		maxLines = 1
	}
	lines := s.Lines(width, maxLines)
	ratio := c.Ratio()
	face := s.faces.Face(s.font.Size*ratio, s.font.Bold)
	ascent := face.Metrics().Ascent.Ceil()
	lineHeight := s.LineHeight()
	d := font.Drawer{
		Dst:  c.Target(),
		Src:  image.NewUniform(col),
		Face: face,
	}
	for i, line := range lines {
		origin := c.DevicePoint(geom.Pt(x, y+i*lineHeight))
		d.Dot = fixed.P(origin.X, origin.Y+ascent)
		d.DrawString(line)
	}
}

func wrap(face font.Face, words []string, width, maxLines int) []string {
	var lines []string
	var current string
	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if Measure(face, candidate) <= width {
			current = candidate
			continue
		}
		flush()
		for word != "" && Measure(face, word) > width {
			head := fitPrefix(face, word, width)
			lines = append(lines, head)
			word = word[len(head):]
		}
		current = word
	}
	flush()

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = elide(face, lines[maxLines-1], width)
	}
	return lines
}

// fitPrefix returns the longest prefix of word narrower than width, at
// least one rune.
func fitPrefix(face font.Face, word string, width int) string {
	end := 0
	for i := range word {
		if i == 0 {
			continue
		}
		if Measure(face, word[:i]) > width {
			break
		}
		end = i
	}
	if end == 0 {
		_, size := utf8.DecodeRuneInString(word)
		return word[:size]
	}
	return word[:end]
}

// elide trims line until it fits width together with an ellipsis.
func elide(face font.Face, line string, width int) string {
	for line != "" {
		if Measure(face, line+ellipsis) <= width {
			return line + ellipsis
		}
		_, size := utf8.DecodeLastRuneInString(line)
		line = strings.TrimRight(line[:len(line)-size], " ")
	}
	return ellipsis
}
