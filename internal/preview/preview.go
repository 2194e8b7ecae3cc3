// Package preview renders the interface-scale preview popup: a mock chat
// message laid out at the scale being dragged on a slider, shown above the
// slider with a short slide-and-fade animation.
//
// Every method must be called from the host's UI goroutine.
package preview

import (
	"image"
	"log/slog"
	"time"

	"scalepreview/internal/anim"
	"scalepreview/internal/geom"
	"scalepreview/internal/platform"
	"scalepreview/internal/render"
	"scalepreview/internal/style"
	"scalepreview/internal/textrun"
	"scalepreview/internal/userpic"
)

// Request is what the owning slider asks of the preview.
type Request int

const (
	Hide Request = iota
	Show
	Update
)

func (r Request) String() string {
	switch r {
	case Hide:
		return "hide"
	case Show:
		return "show"
	case Update:
		return "update"
	}
	return "unknown"
}

// ToggleFunc is the controller handed to the slider.
type ToggleFunc func(req Request, scale, globalX int)

type Config struct {
	Style  style.Style
	Logger *slog.Logger
	// Clock drives the show/hide animation; time.Now when nil.
	Clock anim.Clock
	// Faces may be shared between previews; a private cache is made when nil.
	Faces *textrun.Faces
}

// Session is the user context the preview needs: a stream of userpics.
type Session interface {
	Userpics() <-chan image.Image
}

type bubbleAssets struct {
	corners      [4]*image.RGBA
	tail         *image.RGBA
	shadowCorner *image.RGBA
}

type shadowAssets struct {
	sides   [4]*image.RGBA
	corners [4]*image.RGBA
}

type Preview struct {
	log       *slog.Logger
	app       platform.Application
	parent    platform.Widget
	surface   platform.Surface
	st        style.Style
	presenter presenter
	bg        *render.Background

	nameText    *textrun.String
	replyText   *textrun.String
	messageText *textrun.String

	replyBar     geom.Rect
	name         geom.Rect
	reply        geom.Rect
	message      geom.Rect
	content      geom.Rect
	bubble       geom.Rect
	userpic      geom.Rect
	inner        geom.Rect
	outer        geom.Rect
	bubbleShadow int
	shadowExtend geom.Margins
	minOuterSize geom.Size
	maxOuterSize geom.Size

	layer  *image.RGBA
	canvas *image.RGBA
	scale  int
	ratio  int

	userpics        <-chan image.Image
	userpicOriginal image.Image
	userpicDigest   [32]byte

	userpicImage cached[*image.RGBA]
	bubbleCache  cached[bubbleAssets]
	shadowCache  cached[shadowAssets]
	cornerMasks  cached[[4]*image.Alpha]

	shownAnimation *anim.Simple
	shown          bool
	subscriptions  []func()
}

// Setup builds the preview for slider. Without a session it returns nil,
// which is a valid, inert controller: every method of a nil *Preview is a
// no-op.
func Setup(cfg Config, session Session, app platform.Application, slider platform.Widget, surface platform.Surface) *Preview {
	if session == nil || app == nil || slider == nil || surface == nil {
		if cfg.Logger != nil {
			cfg.Logger.Debug("scale preview disabled: no session")
		}
		return nil
	}
	return New(cfg, app, slider, surface, session.Userpics())
}

// New creates a hidden preview attached to parent (the slider). The
// presentation mode is fixed here: a separate translucent window when the
// platform supports it, an embedded overlay otherwise.
func New(cfg Config, app platform.Application, parent platform.Widget, surface platform.Surface, userpics <-chan image.Image) *Preview {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	faces := cfg.Faces
	if faces == nil {
		faces = textrun.NewFaces()
	}
	p := &Preview{
		log:            log.With(slog.String("component", "scale-preview")),
		app:            app,
		parent:         parent,
		surface:        surface,
		st:             cfg.Style,
		bg:             render.NewBackground(cfg.Style.Background, cfg.Style.Palette.BackgroundFiller),
		nameText:       textrun.NewString(faces),
		replyText:      textrun.NewString(faces),
		messageText:    textrun.NewString(faces),
		ratio:          max(1, app.DevicePixelRatio()),
		userpics:       userpics,
		shownAnimation: anim.NewSimple(cfg.Clock),
	}
	p.drainUserpics()

	if useSeparateWindow(app) {
		p.presenter = &windowPresenter{}
	} else {
		p.presenter = embeddedPresenter{}
	}
	p.presenter.init(p)
	p.log.Debug("scale preview created", slog.String("mode", p.presenter.name()), slog.Int("ratio", p.ratio))
	return p
}

func useSeparateWindow(app platform.Application) bool {
	return !app.IsWayland() && app.TranslucentWindowsSupported()
}

// ToggleFunc returns Toggle as a plain function value.
func (p *Preview) ToggleFunc() ToggleFunc {
	return p.Toggle
}

// Toggle shows, updates or hides the preview. Update only affects a preview
// that is already shown.
func (p *Preview) Toggle(req Request, scale, globalX int) {
	if p == nil {
		return
	}
	if req == Hide {
		p.toggleShown(false)
		return
	} else if req == Update && !p.shown {
		return
	}
	p.updateToScale(min(max(scale, style.ScaleMin), style.MaxScale(p.ratio)))
	p.presenter.place(p, globalX)
	if p.surface.IsHidden() {
		p.surface.UpdateOverlayed()
	}
	p.toggleShown(true)
}

func (p *Preview) toggleShown(shown bool) {
	if p.shown == shown {
		return
	}
	p.shown = shown
	p.toggleObservers()
	p.log.Debug("scale preview toggled", slog.Bool("shown", shown), slog.Int("scale", p.scale))
	if p.shown {
		p.surface.Show()
	} else if p.surface.IsHidden() {
		p.shownAnimation.Stop()
		return
	}
	from := p.shownAnimation.Value(progressOf(!shown))
	p.shownAnimation.Start(func() {
		p.update()
		if !p.shown && !p.shownAnimation.Animating() {
			p.surface.Hide()
		}
	}, from, progressOf(shown), p.st.SlideDuration)
}

func progressOf(shown bool) float64 {
	if shown {
		return 1
	}
	return 0
}

// toggleObservers subscribes to the widgets whose movement shifts the
// preview while it is shown and drops every subscription when hidden.
func (p *Preview) toggleObservers() {
	if !p.shown {
		for _, cancel := range p.subscriptions {
			cancel()
		}
		p.subscriptions = nil
		return
	} else if p.subscriptions != nil {
		return
	}
	for _, w := range p.presenter.watched(p.parent) {
		p.subscriptions = append(p.subscriptions, w.Subscribe(p.onWidgetEvent))
	}
	p.subscriptions = append(p.subscriptions, p.app.SubscribeState(p.onApplicationState))
}

func (p *Preview) onWidgetEvent(e platform.Event) {
	switch e.Type {
	case platform.EventMove,
		platform.EventResize,
		platform.EventShow,
		platform.EventShowToParent,
		platform.EventZOrderChange:
		p.presenter.reposition(p)
	}
}

func (p *Preview) onApplicationState(state platform.ApplicationState) {
	if state != platform.ApplicationActive {
		p.Toggle(Hide, 0, 0)
	}
}

// Tick advances the animation and picks up new userpics. The host calls it
// once per frame.
func (p *Preview) Tick(now time.Time) {
	if p == nil {
		return
	}
	p.drainUserpics()
	p.shownAnimation.Step(now)
}

func (p *Preview) drainUserpics() {
	for p.userpics != nil {
		select {
		case img, ok := <-p.userpics:
			if !ok {
				p.userpics = nil
				return
			}
			p.setUserpic(img)
		default:
			return
		}
	}
}

func (p *Preview) setUserpic(img image.Image) {
	digest := userpic.Digest(img)
	if img != nil && p.userpicOriginal != nil && digest == p.userpicDigest {
		return
	}
	hadUserpic := p.userpicOriginal != nil
	p.userpicOriginal = img
	p.userpicDigest = digest
	if p.userpicImage.valid {
		p.userpicImage.invalidate()
		p.update()
	}
	if hadUserpic != (img != nil) {
		p.relayout()
	}
}

// relayout recomputes geometry at the current scale, used when the avatar
// appears or disappears.
func (p *Preview) relayout() {
	if p.scale == 0 {
		return
	}
	scale := p.scale
	p.scale = 0
	p.presenter.measure(p)
	p.updateToScale(scale)
	if p.shown {
		p.presenter.reposition(p)
	}
	p.update()
}

// SetPalette applies a theme palette change; color-dependent assets are
// rebuilt on the next paint.
func (p *Preview) SetPalette(palette style.Palette) {
	if p == nil {
		return
	}
	p.st.Palette = palette
	p.bubbleCache.invalidate()
	p.shadowCache.invalidate()
	p.update()
}

func (p *Preview) update() {
	p.surface.Update(p.outer)
}

func (p *Preview) Shown() bool {
	return p != nil && p.shown
}

// Progress is the animated visibility in 0..1.
func (p *Preview) Progress() float64 {
	if p == nil {
		return 0
	}
	return p.shownAnimation.Value(progressOf(p.shown))
}

// Outer is the popup rect, shadow included, in surface coordinates.
func (p *Preview) Outer() geom.Rect {
	if p == nil {
		return geom.Rect{}
	}
	return p.outer
}

func (p *Preview) Scale() int {
	if p == nil {
		return 0
	}
	return p.scale
}
