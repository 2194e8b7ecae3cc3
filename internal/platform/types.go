// Package platform describes what the preview needs from the host
// windowing toolkit.
package platform

import "scalepreview/internal/geom"

type EventType int

const (
	EventUnknown EventType = iota
	EventMove
	EventResize
	EventShow
	EventShowToParent
	EventHide
	EventZOrderChange
)

type Event struct {
	Type EventType
}

type ApplicationState int

const (
	ApplicationActive ApplicationState = iota
	ApplicationInactive
	ApplicationHidden
	ApplicationSuspended
)

type Screen interface {
	// AvailableGeometry is the work area in global coordinates.
	AvailableGeometry() geom.Rect
}

// Widget is a host widget the preview positions itself against.
type Widget interface {
	Parent() Widget
	IsWindow() bool
	// Geometry is relative to the parent widget.
	Geometry() geom.Rect
	MapToGlobal(p geom.Point) geom.Point
	// Screen returns nil when the widget is not on any screen yet.
	Screen() Screen
	// Subscribe registers an observer and returns its cancel function.
	Subscribe(observer func(Event)) (cancel func())
}

type SurfaceFlags uint32

const (
	FlagFrameless SurfaceFlags = 1 << iota
	FlagBypassWindowManager
	FlagNoDropShadow
	FlagToolTip
	FlagTransparentForMouse
	FlagTranslucent
)

// Surface is what the preview paints onto: a child overlay in embedded
// mode or a top-level window in floating mode.
type Surface interface {
	SetFlags(flags SurfaceFlags)
	SetGeometry(r geom.Rect)
	Geometry() geom.Rect
	Show()
	Hide()
	IsHidden() bool
	// Update schedules a repaint of r in surface coordinates.
	Update(r geom.Rect)
	// UpdateOverlayed lets the platform prepare an overlay before showing.
	UpdateOverlayed()
}

type Application interface {
	DevicePixelRatio() int
	TranslucentWindowsSupported() bool
	IsWayland() bool
	SubscribeState(observer func(ApplicationState)) (cancel func())
}
