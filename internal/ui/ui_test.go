package ui

import (
	"image"
	"image/color"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scalepreview/internal/geom"
	"scalepreview/internal/style"
	"scalepreview/internal/textrun"
)

var testFaces = textrun.NewFaces()

type session struct {
	userpics chan image.Image
}

func (s session) Userpics() <-chan image.Image { return s.userpics }

type harness struct {
	settings *Settings
	now      time.Time
}

func newHarness(t *testing.T, translucent bool) *harness {
	t.Helper()
	h := &harness{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	h.settings = NewSettings(SettingsOptions{
		Style:       style.Default(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Session:     session{},
		Faces:       testFaces,
		Clock:       func() time.Time { return h.now },
		Translucent: translucent,
		Scale:       100,
	}, 900, 640)
	return h
}

func (h *harness) advance(d time.Duration) {
	h.now = h.now.Add(d)
	h.settings.Tick(h.now)
}

// sliderPoint returns the window point on the track at fraction f.
func (h *harness) sliderPoint(f float64) (int, int) {
	track := h.settings.track()
	return track.X + int(f*float64(track.W)), track.Y
}

func TestComputeLayout(t *testing.T) {
	theme := DefaultTheme()
	for _, size := range []geom.Size{{W: 900, H: 640}, {W: 320, H: 240}, {W: 1920, H: 1080}} {
		l := ComputeLayout(size.W, size.H, theme, 1)
		panel := geom.FromPointSize(geom.Point{}, l.Panel.Size())
		assert.True(t, panel.ContainsRect(l.SliderHit), "%v", size)
		assert.True(t, panel.ContainsRect(l.Header), "%v", size)
		assert.True(t, l.SliderHit.ContainsRect(l.Track), "%v", size)
		assert.GreaterOrEqual(t, l.Panel.Y, l.TitleH, "%v", size)
		assert.Equal(t, size.H, l.StatusBar.Bottom(), "%v", size)
	}

	small := ComputeLayout(900, 640, theme, 1)
	big := ComputeLayout(900, 640, theme, 2)
	assert.Equal(t, small.TitleH*2, big.TitleH)
}

func TestSliderSnapsToStops(t *testing.T) {
	s := NewSlider(ScaleValues, 103)
	assert.Equal(t, 105, s.Value())
	assert.Equal(t, 50, NewSlider(ScaleValues, 0).Value())
	assert.Equal(t, 300, NewSlider(ScaleValues, 1000).Value())

	track := geom.R(100, 10, 500, 2)
	hit := geom.R(90, 0, 520, 24)
	assert.False(t, s.Press(hit, track, 10, 10))
	assert.False(t, s.Dragging())

	require.True(t, s.Press(hit, track, 100, 10))
	assert.Equal(t, 50, s.Value())
	assert.Equal(t, track.X, s.HandleX(track))

	assert.True(t, s.Move(track, 900))
	assert.Equal(t, 300, s.Value())
	assert.Equal(t, track.Right(), s.HandleX(track))
	assert.False(t, s.Move(track, 950))

	assert.True(t, s.Release())
	assert.False(t, s.Release())
	assert.False(t, s.Move(track, 100))
	assert.Equal(t, 300, s.Value())
}

func TestHighRatioSliderStopsAtMaxScale(t *testing.T) {
	s := NewSettings(SettingsOptions{
		Style:       style.Default(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Session:     session{},
		Faces:       testFaces,
		Ratio:       2,
		Translucent: true,
		Scale:       style.ScaleMax,
	}, 900, 640)
	assert.Equal(t, 150, s.Scale())

	track := s.track()
	s.Press(track.X, track.Y)
	s.Move(track.Right()+50, track.Y)
	assert.Equal(t, 150, s.Scale())
	assert.Equal(t, 150, s.preview.Scale())
	assert.Equal(t, []int{50, 55}, scaleValues(2)[:2])
	assert.Equal(t, 150, scaleValues(2)[len(scaleValues(2))-1])
}

func TestDragShowsUpdatesAndHidesPreview(t *testing.T) {
	h := newHarness(t, false)
	s := h.settings

	x, y := h.sliderPoint(0.2)
	s.Press(x, y)
	assert.True(t, s.PreviewShown())
	assert.Equal(t, 100, s.Scale())
	h.advance(time.Second)
	first := s.PreviewRect()
	require.False(t, first.Empty())
	assert.LessOrEqual(t, first.Bottom(), s.layout.Panel.Y+s.layout.SliderHit.Y)

	x, _ = h.sliderPoint(0.6)
	s.Move(x, y)
	assert.Equal(t, 200, s.Scale())
	assert.Greater(t, s.PreviewRect().W, first.W)
	assert.Contains(t, s.Report(), "scale 200%")

	s.Release()
	assert.False(t, s.PreviewShown())
	h.advance(time.Second)
	assert.True(t, s.surface.IsHidden())
}

func TestPressOutsideSliderIsIgnored(t *testing.T) {
	h := newHarness(t, false)
	h.settings.Press(1, 1)
	assert.False(t, h.settings.PreviewShown())
	h.settings.Release()
	assert.True(t, h.settings.surface.IsHidden())
}

func TestFocusLossHidesPreview(t *testing.T) {
	h := newHarness(t, true)
	x, y := h.sliderPoint(0.5)
	h.settings.Press(x, y)
	h.advance(time.Second)
	require.True(t, h.settings.PreviewShown())

	h.settings.SetFocused(false)
	assert.False(t, h.settings.PreviewShown())
}

func TestResizeMovesPreview(t *testing.T) {
	h := newHarness(t, false)
	x, y := h.sliderPoint(0.2)
	h.settings.Press(x, y)
	h.advance(time.Second)
	before := h.settings.PreviewRect()

	h.settings.Resize(1100, 700)
	after := h.settings.PreviewRect()
	assert.Equal(t, before.Size(), after.Size())
	assert.Equal(t, before.X+100, after.X)
	assert.Equal(t, before.Y+60, after.Y)
}

func TestPaintDrawsPreviewOverPage(t *testing.T) {
	for _, translucent := range []bool{false, true} {
		h := newHarness(t, translucent)
		s := h.settings
		plain := image.NewRGBA(image.Rect(0, 0, 900, 640))
		s.Paint(plain)

		x, y := h.sliderPoint(0.3)
		s.Press(x, y)
		h.advance(time.Second)
		frame := image.NewRGBA(image.Rect(0, 0, 900, 640))
		s.Paint(frame)

		r := s.PreviewRect().Intersect(geom.R(0, 0, 900, 640))
		require.False(t, r.Empty())
		changed := 0
		for py := r.Y; py < r.Bottom(); py++ {
			for px := r.X; px < r.Right(); px++ {
				if frame.RGBAAt(px, py) != plain.RGBAAt(px, py) {
					changed++
				}
			}
		}
		assert.Positive(t, changed, "translucent %t", translucent)

		// Nothing outside the preview changes.
		corner := color.RGBA{}
		assert.Equal(t, plain.RGBAAt(0, 639), frame.RGBAAt(0, 639))
		assert.NotEqual(t, corner, frame.RGBAAt(0, 639))
	}
}

func TestSettingsWithoutSession(t *testing.T) {
	s := NewSettings(SettingsOptions{Style: style.Default(), Faces: testFaces, Scale: 150}, 900, 640)
	track := s.track()
	s.Press(track.X+track.W/2, track.Y)
	assert.False(t, s.PreviewShown())
	assert.True(t, strings.HasPrefix(s.Report(), "scale "))
	s.Paint(image.NewRGBA(image.Rect(0, 0, 900, 640)))
}
