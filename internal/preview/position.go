package preview

import (
	"scalepreview/internal/geom"
	"scalepreview/internal/platform"
	"scalepreview/internal/style"
)

// presenter places the surface. It is chosen once in New.
type presenter interface {
	name() string
	init(p *Preview)
	// measure precomputes whatever bounds the mode needs from layouts.
	measure(p *Preview)
	// place positions for a new cursor X.
	place(p *Preview, globalX int)
	// reposition follows the slider after it moved, keeping the anchor.
	reposition(p *Preview)
	watched(slider platform.Widget) []platform.Widget
}

// embeddedPresenter draws the preview as an overlay in the slider's parent,
// centred above the slider.
type embeddedPresenter struct{}

func (embeddedPresenter) name() string { return "embedded" }

func (embeddedPresenter) init(*Preview) {}

func (embeddedPresenter) measure(*Preview) {}

func (e embeddedPresenter) reposition(p *Preview) { e.place(p, 0) }

func (embeddedPresenter) place(p *Preview, _ int) {
	slider := p.parent.Geometry()
	position := slider.TopLeft().
		Add(geom.Pt(slider.W/2, 0)).
		Sub(geom.Pt(p.outer.W/2, p.outer.H))
	p.surface.SetGeometry(geom.FromPointSize(position, p.outer.Size()))
}

// watched lists the slider and its ancestors up to the top-level window.
func (embeddedPresenter) watched(slider platform.Widget) []platform.Widget {
	var out []platform.Widget
	for w := slider; w != nil; w = w.Parent() {
		out = append(out, w)
		if w.IsWindow() {
			break
		}
	}
	return out
}

// windowPresenter uses a separate click-through top-level window sized for
// the largest scale, so scale changes only repaint and never resize it.
type windowPresenter struct {
	localShiftLeft int
}

func (*windowPresenter) name() string { return "window" }

func (w *windowPresenter) init(p *Preview) {
	p.surface.SetFlags(platform.FlagFrameless |
		platform.FlagBypassWindowManager |
		platform.FlagNoDropShadow |
		platform.FlagToolTip |
		platform.FlagTransparentForMouse |
		platform.FlagTranslucent)
	p.surface.Hide()
	w.measure(p)
}

func (*windowPresenter) measure(p *Preview) {
	p.updateToScale(style.ScaleMin)
	p.minOuterSize = p.outer.Size()
	p.updateToScale(style.MaxScale(p.ratio))
	p.maxOuterSize = p.outer.Size()
}

func (w *windowPresenter) place(p *Preview, globalX int) {
	global := p.parent.MapToGlobal(geom.Point{})
	w.localShiftLeft = globalX - global.X
	w.updateWindowGlobalPosition(p, global, globalX)
}

func (w *windowPresenter) reposition(p *Preview) {
	global := p.parent.MapToGlobal(geom.Point{})
	w.updateWindowGlobalPosition(p, global, global.X+w.localShiftLeft)
}

// watched lists the whole ancestor chain: any of them moving moves the
// slider on screen.
func (*windowPresenter) watched(slider platform.Widget) []platform.Widget {
	var out []platform.Widget
	for w := slider; w != nil; w = w.Parent() {
		out = append(out, w)
	}
	return out
}

// updateWindowGlobalPosition spans the window from half the smallest popup
// left of the slider to half the largest popup right of it, at least the
// largest popup wide, resting on the slider's top edge.
func (w *windowPresenter) updateWindowGlobalPosition(p *Preview, global geom.Point, globalX int) {
	minOuter, maxOuter := p.minOuterSize, p.maxOuterSize
	desiredLeft := global.X - minOuter.W/2
	desiredRight := global.X + p.parent.Geometry().W + maxOuter.W/2
	requiredLeft := desiredRight - maxOuter.W
	left := min(desiredLeft, requiredLeft)
	requiredRight := left + maxOuter.W
	right := max(desiredRight, requiredRight)
	top := global.Y - maxOuter.H
	result := geom.R(left, top, right-left, maxOuter.H)
	p.surface.SetGeometry(w.adjustByScreenGeometry(p, result))
	w.updateOuterPosition(p, globalX)
}

// adjustByScreenGeometry pulls the window into the available screen area
// when the largest popup fits there at all.
func (*windowPresenter) adjustByScreenGeometry(p *Preview, geometry geom.Rect) geom.Rect {
	screen := p.parent.Screen()
	if screen == nil {
		return geometry
	}
	available := screen.AvailableGeometry()
	maxOuter := p.maxOuterSize
	if !available.Intersects(geometry) ||
		available.W < maxOuter.W ||
		available.H < maxOuter.H {
		return geometry
	}
	edgeLeft := available.X
	edgeRight := available.Right()
	edgedRight := min(edgeRight, geometry.Right())
	left := max(min(geometry.X, edgedRight-maxOuter.W), edgeLeft)
	right := max(edgedRight, left+maxOuter.W)
	return geom.R(left, geometry.Y, right-left, geometry.H)
}

// updateOuterPosition moves the popup inside the window to follow the
// cursor, clamped to the window and resting on its bottom.
func (*windowPresenter) updateOuterPosition(p *Preview, globalX int) {
	p.update()
	window := p.surface.Geometry()
	desiredLeft := globalX - p.outer.W/2 - window.X
	p.outer = p.outer.
		MovedLeft(max(min(desiredLeft, window.W-p.outer.W), 0)).
		MovedTop(p.maxOuterSize.H - p.outer.H)
	p.update()
}
