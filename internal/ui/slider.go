package ui

import (
	"math"
	"slices"

	"scalepreview/internal/geom"
)

// ScaleValues are the stops of the interface scale slider.
var ScaleValues = func() []int {
	var out []int
	for v := 50; v <= 300; v += 5 {
		out = append(out, v)
	}
	return out
}()

// Slider maps a horizontal track onto a list of values.
type Slider struct {
	values   []int
	index    int
	dragging bool
}

// NewSlider starts at the stop closest to current.
func NewSlider(values []int, current int) *Slider {
	s := &Slider{values: slices.Clone(values)}
	s.index = s.closest(current)
	return s
}

func (s *Slider) closest(value int) int {
	best := 0
	for i, v := range s.values {
		if abs(v-value) < abs(s.values[best]-value) {
			best = i
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (s *Slider) Value() int {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[s.index]
}

func (s *Slider) Dragging() bool { return s.dragging }

// Fraction is the handle position along the track in 0..1.
func (s *Slider) Fraction() float64 {
	if len(s.values) < 2 {
		return 0
	}
	return float64(s.index) / float64(len(s.values)-1)
}

// HandleX is the handle centre for a track spanning track.X..Right().
func (s *Slider) HandleX(track geom.Rect) int {
	return track.X + int(math.Round(s.Fraction()*float64(track.W)))
}

func (s *Slider) indexAt(track geom.Rect, x int) int {
	if len(s.values) < 2 || track.W <= 0 {
		return 0
	}
	fraction := float64(x-track.X) / float64(track.W)
	fraction = min(max(fraction, 0), 1)
	return int(math.Round(fraction * float64(len(s.values)-1)))
}

// Press starts a drag when x, y hit the slider. It reports whether the drag
// started.
func (s *Slider) Press(hit geom.Rect, track geom.Rect, x, y int) bool {
	if !hit.Contains(x, y) {
		return false
	}
	s.dragging = true
	s.index = s.indexAt(track, x)
	return true
}

// Move follows the mouse while dragging and reports whether the value
// changed.
func (s *Slider) Move(track geom.Rect, x int) bool {
	if !s.dragging {
		return false
	}
	index := s.indexAt(track, x)
	if index == s.index {
		return false
	}
	s.index = index
	return true
}

// Release ends the drag and reports whether one was in progress.
func (s *Slider) Release() bool {
	was := s.dragging
	s.dragging = false
	return was
}
