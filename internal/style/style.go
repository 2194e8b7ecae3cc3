// Package style carries the configuration the preview is drawn with:
// unscaled metrics, palette, fonts, icons and the chat background.
package style

import (
	"image/color"
	"math"
	"time"

	"scalepreview/internal/geom"
)

const (
	ScaleMin     = 50
	ScaleDefault = 100
	ScaleMax     = 300
)

// MaxScale is the largest interface scale offered at a device pixel ratio.
func MaxScale(ratio int) int {
	return ScaleMax / max(ratio, 1)
}

// ConvertScale maps a value given at 100% to the requested scale percent.
func ConvertScale(value, scale int) int {
	if value < 0 {
		return -ConvertScale(-value, scale)
	}
	return int(math.Round(float64(value)*float64(scale)/100. - 0.01))
}

type Font struct {
	Size int
	Bold bool
}

// Metrics are the unscaled dimensions of the mock chat message.
type Metrics struct {
	MinTextWidth   int          `toml:"min_text_width"`
	MaxTextWidth   int          `toml:"max_text_width"`
	MaxTextLines   int          `toml:"max_text_lines"`
	ReplyBar       geom.Rect    `toml:"reply_bar"`
	ReplyBarSkip   int          `toml:"reply_bar_skip"`
	ReplyPadding   geom.Margins `toml:"reply_padding"`
	MessagePadding geom.Margins `toml:"message_padding"`
	BubbleMargin   geom.Margins `toml:"bubble_margin"`
	BubbleShadow   int          `toml:"bubble_shadow"`
	BubbleRadius   int          `toml:"bubble_radius"`
	UserpicSkip    int          `toml:"userpic_skip"`
	UserpicSize    int          `toml:"userpic_size"`
	CardRadius     int          `toml:"card_radius"`
}

type Palette struct {
	WindowShadowFg   color.NRGBA
	MsgInBg          color.NRGBA
	MsgInShadow      color.NRGBA
	MsgInReplyBar    color.NRGBA
	MsgInServiceFg   color.NRGBA
	HistoryTextInFg  color.NRGBA
	ReplyBarAlpha    float64
	BackgroundFiller color.NRGBA
}

// Shadow describes the card drop shadow. Icons are indexed
// left, top, right, bottom for Sides and topLeft, bottomLeft, topRight,
// bottomRight for Corners.
type Shadow struct {
	Extend  geom.Margins
	Sides   [4]Icon
	Corners [4]Icon
}

type Style struct {
	Metrics       Metrics
	Palette       Palette
	NameFont      Font
	TextFont      Font
	BubbleTail    Icon
	Shadow        Shadow
	Background    Background
	SlideDuration time.Duration
	NameText      string
	ReplyText     string
	MessageText   string
}

func DefaultMetrics() Metrics {
	return Metrics{
		MinTextWidth:   120,
		MaxTextWidth:   320,
		MaxTextLines:   3,
		ReplyBar:       geom.R(1, 0, 2, 36),
		ReplyBarSkip:   10,
		ReplyPadding:   geom.Margins{Left: 0, Top: 6, Right: 0, Bottom: 6},
		MessagePadding: geom.Margins{Left: 13, Top: 7, Right: 13, Bottom: 8},
		BubbleMargin:   geom.Margins{Left: 20, Top: 16, Right: 20, Bottom: 16},
		BubbleShadow:   2,
		BubbleRadius:   16,
		UserpicSkip:    40,
		UserpicSize:    33,
		CardRadius:     6,
	}
}

func DefaultPalette() Palette {
	return Palette{
		WindowShadowFg:   color.NRGBA{0x00, 0x00, 0x00, 0xFF},
		MsgInBg:          color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF},
		MsgInShadow:      color.NRGBA{0x74, 0x8E, 0xA2, 0x29},
		MsgInReplyBar:    color.NRGBA{0x2E, 0xA6, 0xFF, 0xFF},
		MsgInServiceFg:   color.NRGBA{0x3A, 0x8B, 0xC4, 0xFF},
		HistoryTextInFg:  color.NRGBA{0x00, 0x00, 0x00, 0xFF},
		ReplyBarAlpha:    0.4,
		BackgroundFiller: color.NRGBA{0xDB, 0xDD, 0xBB, 0xFF},
	}
}

// NightPalette is the dark theme counterpart of DefaultPalette.
func NightPalette() Palette {
	return Palette{
		WindowShadowFg:   color.NRGBA{0x00, 0x00, 0x00, 0xFF},
		MsgInBg:          color.NRGBA{0x18, 0x25, 0x33, 0xFF},
		MsgInShadow:      color.NRGBA{0x0D, 0x13, 0x1A, 0x80},
		MsgInReplyBar:    color.NRGBA{0x5E, 0xB5, 0xF7, 0xFF},
		MsgInServiceFg:   color.NRGBA{0x5E, 0xB5, 0xF7, 0xFF},
		HistoryTextInFg:  color.NRGBA{0xF5, 0xF5, 0xF5, 0xFF},
		ReplyBarAlpha:    0.4,
		BackgroundFiller: color.NRGBA{0x0E, 0x16, 0x21, 0xFF},
	}
}

// Default returns the day-theme style.
func Default() Style {
	extend := geom.Margins{Left: 9, Top: 8, Right: 9, Bottom: 10}
	return Style{
		Metrics:       DefaultMetrics(),
		Palette:       DefaultPalette(),
		NameFont:      Font{Size: 13, Bold: true},
		TextFont:      Font{Size: 13},
		BubbleTail:    TailIcon{W: 11, H: 17},
		Shadow:        DefaultShadow(extend),
		Background:    DefaultBackground(),
		SlideDuration: 150 * time.Millisecond,
		NameText:      "Bob Harris",
		ReplyText:     "Good morning!",
		MessageText:   "Do you know what time it is?",
	}
}
