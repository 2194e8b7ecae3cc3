package ui

import (
	"scalepreview/internal/geom"
	"scalepreview/internal/render"
)

// Layout of the settings window in logical pixels. Header, Label, Value,
// SliderHit and Track are relative to Panel.
type Layout struct {
	TitleH    int
	StatusH   int
	Handle    int
	Title     geom.Rect
	Panel     geom.Rect
	Header    geom.Rect
	Label     geom.Rect
	Value     geom.Rect
	SliderHit geom.Rect
	Track     geom.Rect
	StatusBar geom.Rect
}

func ComputeLayout(w, h int, theme Theme, scale float32) Layout {
	if scale <= 0 {
		scale = 1
	}

	dp := func(v int) int { return int(float32(v) * scale) }

	titleH := dp(theme.TitleHeightDp)
	statusH := dp(theme.StatusHeightDp)
	margin := dp(theme.PanelMarginDp)
	pad := dp(16)

	panelW := min(dp(theme.PanelWidthDp), w-margin*2)
	if panelW < dp(240) {
		panelW = dp(240)
	}

	header := geom.R(pad, pad, panelW-pad*2, dp(24))
	valueW := dp(60)
	label := geom.R(header.X, header.Y, header.W-valueW, header.H)
	value := geom.R(header.Right()-valueW, header.Y, valueW, header.H)

	handle := dp(theme.HandleSizeDp)
	hit := geom.R(pad, header.Bottom()+dp(8), panelW-pad*2, max(dp(theme.SliderHitDp), handle))
	trackH := max(dp(theme.TrackHeightDp), 1)
	track := geom.R(hit.X+handle/2, hit.Y+(hit.H-trackH)/2, hit.W-handle, trackH)

	panelH := max(hit.Bottom()+pad, dp(theme.RowHeightDp)*2)
	// The panel sits low so the preview has room to pop up above it.
	panelY := max(h-statusH-margin-panelH, titleH+margin)
	panel := geom.R((w-panelW)/2, panelY, panelW, panelH)

	return Layout{
		TitleH:    titleH,
		StatusH:   statusH,
		Handle:    handle,
		Title:     geom.R(0, 0, w, titleH),
		Panel:     panel,
		Header:    header,
		Label:     label,
		Value:     value,
		SliderHit: hit,
		Track:     track,
		StatusBar: geom.R(0, h-statusH, w, statusH),
	}
}

// DrawShell paints the window chrome and the slider. Text is left to the
// caller.
func DrawShell(c render.Canvas, layout Layout, theme Theme, slider *Slider) {
	c.Fill(c.Clip(), theme.AppBackground)
	c.Fill(layout.Title, theme.TitleBar)

	panel := layout.Panel
	c.Fill(panel.Grow(geom.Margins{Left: 1, Top: 1, Right: 1, Bottom: 1}), theme.Border)
	c.Fill(panel, theme.Panel)

	pc := c.Translated(panel.TopLeft())
	track := layout.Track
	handleX := slider.HandleX(track)
	pc.Fill(track, theme.TrackInactive)
	pc.Fill(geom.R(track.X, track.Y, handleX-track.X, track.H), theme.TrackActive)

	size := layout.Handle
	handle := geom.R(handleX-size/2, track.Y+track.H/2-size/2, size, size)
	radius := size * c.Ratio() / 2
	render.FillRoundRect(pc, handle, theme.Handle, render.CornerPixmaps(radius, theme.Handle))

	c.Fill(layout.StatusBar, theme.StatusBar)
	c.Fill(geom.R(0, layout.StatusBar.Y, layout.StatusBar.W, 1), theme.Border)
}
