// Package headless is an in-memory host: widgets, screens and surfaces that
// only record what was asked of them. The demo uses it for embedded mode
// and the tests use it everywhere.
package headless

import (
	"scalepreview/internal/geom"
	"scalepreview/internal/platform"
)

type Backend struct {
	ratio       int
	translucent bool
	wayland     bool
	state       platform.ApplicationState
	observers   observers[platform.ApplicationState]
}

type Options struct {
	DevicePixelRatio int
	Translucent      bool
	Wayland          bool
}

func New(opts Options) *Backend {
	ratio := opts.DevicePixelRatio
	if ratio < 1 {
		ratio = 1
	}
	return &Backend{ratio: ratio, translucent: opts.Translucent, wayland: opts.Wayland}
}

func (b *Backend) Name() string { return "headless" }

func (b *Backend) DevicePixelRatio() int             { return b.ratio }
func (b *Backend) TranslucentWindowsSupported() bool { return b.translucent }
func (b *Backend) IsWayland() bool                   { return b.wayland }

func (b *Backend) SubscribeState(observer func(platform.ApplicationState)) func() {
	return b.observers.add(observer)
}

// SetState changes the application state and notifies observers.
func (b *Backend) SetState(state platform.ApplicationState) {
	if b.state == state {
		return
	}
	b.state = state
	b.observers.emit(state)
}

func (b *Backend) StateObservers() int { return b.observers.len() }

type Screen struct {
	Available geom.Rect
}

func (s *Screen) AvailableGeometry() geom.Rect { return s.Available }

type Widget struct {
	parent    *Widget
	window    bool
	geometry  geom.Rect
	screen    *Screen
	observers observers[platform.Event]
}

// NewWindow creates a top-level widget; its geometry is global.
func NewWindow(geometry geom.Rect, screen *Screen) *Widget {
	return &Widget{window: true, geometry: geometry, screen: screen}
}

func NewChild(parent *Widget, geometry geom.Rect) *Widget {
	return &Widget{parent: parent, geometry: geometry}
}

func (w *Widget) Parent() platform.Widget {
	if w.parent == nil {
		return nil
	}
	return w.parent
}

func (w *Widget) IsWindow() bool      { return w.window }
func (w *Widget) Geometry() geom.Rect { return w.geometry }

func (w *Widget) MapToGlobal(p geom.Point) geom.Point {
	for at := w; at != nil; at = at.parent {
		p = p.Add(at.geometry.TopLeft())
	}
	return p
}

func (w *Widget) Screen() platform.Screen {
	for at := w; at != nil; at = at.parent {
		if at.screen != nil {
			return at.screen
		}
	}
	return nil
}

func (w *Widget) Subscribe(observer func(platform.Event)) func() {
	return w.observers.add(observer)
}

func (w *Widget) Observers() int { return w.observers.len() }

// SetGeometry moves or resizes the widget and emits the matching events.
func (w *Widget) SetGeometry(r geom.Rect) {
	old := w.geometry
	w.geometry = r
	if old.TopLeft() != r.TopLeft() {
		w.Emit(platform.EventMove)
	}
	if old.Size() != r.Size() {
		w.Emit(platform.EventResize)
	}
}

func (w *Widget) Emit(t platform.EventType) {
	w.observers.emit(platform.Event{Type: t})
}

type Surface struct {
	Flags      platform.SurfaceFlags
	geometry   geom.Rect
	hidden     bool
	Shows      int
	Hides      int
	Overlayed  int
	Updates    []geom.Rect
	Geometries []geom.Rect
}

func NewSurface() *Surface { return &Surface{hidden: true} }

func (s *Surface) SetFlags(flags platform.SurfaceFlags) { s.Flags = flags }

func (s *Surface) SetGeometry(r geom.Rect) {
	s.geometry = r
	s.Geometries = append(s.Geometries, r)
}

func (s *Surface) Geometry() geom.Rect { return s.geometry }

func (s *Surface) Show() {
	s.hidden = false
	s.Shows++
}

func (s *Surface) Hide() {
	s.hidden = true
	s.Hides++
}

func (s *Surface) IsHidden() bool     { return s.hidden }
func (s *Surface) Update(r geom.Rect) { s.Updates = append(s.Updates, r) }
func (s *Surface) UpdateOverlayed()   { s.Overlayed++ }

// TakeUpdates returns and forgets the pending repaint requests.
func (s *Surface) TakeUpdates() []geom.Rect {
	out := s.Updates
	s.Updates = nil
	return out
}

type observers[T any] struct {
	next int
	list map[int]func(T)
}

func (o *observers[T]) add(observer func(T)) func() {
	if observer == nil {
		return func() {}
	}
	if o.list == nil {
		o.list = map[int]func(T){}
	}
	id := o.next
	o.next++
	o.list[id] = observer
	return func() { delete(o.list, id) }
}

func (o *observers[T]) emit(v T) {
	ids := make([]int, 0, len(o.list))
	for id := range o.list {
		ids = append(ids, id)
	}
	for _, id := range ids {
		if observer, ok := o.list[id]; ok {
			observer(v)
		}
	}
}

func (o *observers[T]) len() int { return len(o.list) }
