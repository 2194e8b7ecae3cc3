package ui

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"scalepreview/internal/anim"
	"scalepreview/internal/geom"
	"scalepreview/internal/platform"
	"scalepreview/internal/platform/headless"
	"scalepreview/internal/preview"
	"scalepreview/internal/render"
	"scalepreview/internal/style"
	"scalepreview/internal/textrun"
)

type SettingsOptions struct {
	Style   style.Style
	Logger  *slog.Logger
	Session preview.Session
	Faces   *textrun.Faces
	Clock   anim.Clock
	// Ratio is the device pixel ratio of the frame buffer.
	Ratio int
	// Translucent asks for the separate-window preview. The "window" is
	// drawn over the frame at its global position.
	Translucent bool
	Scale       int
}

// Settings is the interface-scale page: a panel with one slider, wired to
// a scale preview the way a real settings window would be.
type Settings struct {
	log      *slog.Logger
	theme    Theme
	ratio    int
	separate bool

	backend *headless.Backend
	screen  *headless.Screen
	window  *headless.Widget
	panel   *headless.Widget
	slider  *headless.Widget
	surface *headless.Surface
	preview *preview.Preview
	control *Slider

	layout  Layout
	width   int
	height  int
	lastX   int
	overlay *image.RGBA

	title *textrun.String
	label *textrun.String
	value *textrun.String
}

func NewSettings(opts SettingsOptions, width, height int) *Settings {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	faces := opts.Faces
	if faces == nil {
		faces = textrun.NewFaces()
	}
	ratio := max(opts.Ratio, 1)
	s := &Settings{
		log:     log,
		theme:   DefaultTheme(),
		ratio:   ratio,
		backend: headless.New(headless.Options{DevicePixelRatio: ratio, Translucent: opts.Translucent}),
		screen:  &headless.Screen{Available: geom.R(0, 0, width, height)},
		surface: headless.NewSurface(),
		control: NewSlider(scaleValues(ratio), opts.Scale),
		width:   width,
		height:  height,
		title:   textrun.NewString(faces),
		label:   textrun.NewString(faces),
		value:   textrun.NewString(faces),
	}
	s.separate = opts.Translucent && !s.backend.IsWayland()
	s.layout = ComputeLayout(width, height, s.theme, 1)
	s.window = headless.NewWindow(geom.R(0, 0, width, height), s.screen)
	s.panel = headless.NewChild(s.window, s.layout.Panel)
	s.slider = headless.NewChild(s.panel, s.layout.SliderHit)

	s.title.SetText(style.Font{Size: 15, Bold: true}, "Settings")
	s.label.SetText(style.Font{Size: 13}, "Interface scale")
	s.updateValue()

	cfg := preview.Config{
		Style:  opts.Style,
		Logger: log,
		Clock:  opts.Clock,
		Faces:  faces,
	}
	s.preview = preview.Setup(cfg, opts.Session, s.backend, s.slider, s.surface)
	return s
}

// scaleValues drops the stops a frame buffer at ratio cannot show.
func scaleValues(ratio int) []int {
	limit := style.MaxScale(ratio)
	out := make([]int, 0, len(ScaleValues))
	for _, v := range ScaleValues {
		if v <= limit {
			out = append(out, v)
		}
	}
	return out
}

func (s *Settings) updateValue() {
	s.value.SetText(style.Font{Size: 13}, fmt.Sprintf("%d%%", s.control.Value()))
}

// Resize follows the host window. Moving the panel notifies the preview
// through the widget events.
func (s *Settings) Resize(width, height int) {
	if s.width == width && s.height == height {
		return
	}
	s.width, s.height = width, height
	s.screen.Available = geom.R(0, 0, width, height)
	s.layout = ComputeLayout(width, height, s.theme, 1)
	s.window.SetGeometry(geom.R(0, 0, width, height))
	s.panel.SetGeometry(s.layout.Panel)
	s.slider.SetGeometry(s.layout.SliderHit)
}

func (s *Settings) SetFocused(focused bool) {
	state := platform.ApplicationActive
	if !focused {
		state = platform.ApplicationInactive
	}
	s.backend.SetState(state)
}

func (s *Settings) track() geom.Rect {
	return s.layout.Track.Translated(s.layout.Panel.TopLeft())
}

// Press handles a mouse press at window coordinates.
func (s *Settings) Press(x, y int) {
	hit := s.layout.SliderHit.Translated(s.layout.Panel.TopLeft())
	if !s.control.Press(hit, s.track(), x, y) {
		return
	}
	s.lastX = x
	s.updateValue()
	s.preview.Toggle(preview.Show, s.control.Value(), x)
}

// Move handles mouse movement while the button is held.
func (s *Settings) Move(x, _ int) {
	if !s.control.Dragging() {
		return
	}
	changed := s.control.Move(s.track(), x)
	if !changed && x == s.lastX {
		return
	}
	s.lastX = x
	if changed {
		s.updateValue()
	}
	s.preview.Toggle(preview.Update, s.control.Value(), x)
}

func (s *Settings) Release() {
	if !s.control.Release() {
		return
	}
	s.log.Info("interface scale chosen", slog.Int("scale", s.control.Value()))
	s.preview.Toggle(preview.Hide, 0, 0)
}

func (s *Settings) Tick(now time.Time) {
	s.preview.Tick(now)
}

func (s *Settings) SetPalette(palette style.Palette) {
	s.preview.SetPalette(palette)
}

func (s *Settings) Scale() int { return s.control.Value() }

func (s *Settings) PreviewShown() bool { return s.preview.Shown() }

// PreviewRect is where the preview surface lands in window coordinates.
func (s *Settings) PreviewRect() geom.Rect {
	g := s.surface.Geometry()
	if s.separate {
		return g
	}
	return geom.FromPointSize(s.panel.MapToGlobal(g.TopLeft()), g.Size())
}

// Report describes the current preview geometry.
func (s *Settings) Report() string {
	r := s.PreviewRect()
	outer := s.preview.Outer()
	return fmt.Sprintf("scale %d%%, surface %dx%d at %d,%d, popup %dx%d at %d,%d, shown %t",
		s.control.Value(), r.W, r.H, r.X, r.Y, outer.W, outer.H, outer.X, outer.Y, s.preview.Shown())
}

// Paint draws the page and the preview into frame, a device-pixel buffer
// of the window.
func (s *Settings) Paint(frame *image.RGBA) {
	c := render.NewCanvas(frame, s.ratio)
	DrawShell(c, s.layout, s.theme, s.control)

	l := s.layout
	s.title.DrawLeftElided(c, 16, (l.TitleH-s.title.LineHeight())/2, l.Title.W-32, 1, s.theme.TitleText)
	pc := c.Translated(l.Panel.TopLeft())
	s.label.DrawLeftElided(pc, l.Label.X, l.Label.Y, l.Label.W, 1, s.theme.Text)
	valueX := l.Value.Right() - min(s.value.MaxWidth(), l.Value.W)
	s.value.DrawLeftElided(pc, valueX, l.Value.Y, l.Value.W, 1, s.theme.SubText)

	s.surface.TakeUpdates()
	if s.surface.IsHidden() {
		return
	}
	r := s.PreviewRect()
	if r.Empty() {
		return
	}
	s.overlay = render.Resize(s.overlay, r.Size().Mul(s.ratio))
	render.Wipe(s.overlay)
	s.preview.Paint(s.overlay, geom.FromPointSize(geom.Point{}, r.Size()))
	c.DrawImage(r.TopLeft(), s.overlay)
}
