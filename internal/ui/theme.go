package ui

import "image/color"

type Theme struct {
	AppBackground  color.NRGBA
	TitleBar       color.NRGBA
	TitleText      color.NRGBA
	Panel          color.NRGBA
	Border         color.NRGBA
	Text           color.NRGBA
	SubText        color.NRGBA
	TrackInactive  color.NRGBA
	TrackActive    color.NRGBA
	Handle         color.NRGBA
	StatusBar      color.NRGBA
	TitleHeightDp  int
	StatusHeightDp int
	PanelWidthDp   int
	PanelMarginDp  int
	RowHeightDp    int
	TrackHeightDp  int
	HandleSizeDp   int
	// SliderHitDp is the slider height that reacts to the mouse.
	SliderHitDp int
}

func DefaultTheme() Theme {
	return Theme{
		AppBackground:  color.NRGBA{0xF1, 0xF1, 0xF1, 0xFF},
		TitleBar:       color.NRGBA{0x51, 0x7D, 0xA2, 0xFF},
		TitleText:      color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF},
		Panel:          color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF},
		Border:         color.NRGBA{0xE7, 0xE7, 0xE7, 0xFF},
		Text:           color.NRGBA{0x00, 0x00, 0x00, 0xFF},
		SubText:        color.NRGBA{0x99, 0x99, 0x99, 0xFF},
		TrackInactive:  color.NRGBA{0xE1, 0xEA, 0xEF, 0xFF},
		TrackActive:    color.NRGBA{0x40, 0xA7, 0xE3, 0xFF},
		Handle:         color.NRGBA{0x40, 0xA7, 0xE3, 0xFF},
		StatusBar:      color.NRGBA{0xEA, 0xEF, 0xF6, 0xFF},
		TitleHeightDp:  40,
		StatusHeightDp: 26,
		PanelWidthDp:   480,
		PanelMarginDp:  24,
		RowHeightDp:    48,
		TrackHeightDp:  2,
		HandleSizeDp:   12,
		SliderHitDp:    24,
	}
}
