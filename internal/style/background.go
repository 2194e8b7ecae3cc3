package style

import (
	"image"
	"image/color"
)

// Background mirrors the chat theme wallpaper: either a prepared image
// (optionally tiled), a gradient of up to four colors with an optional
// pattern on top, or a plain fill color.
type Background struct {
	Prepared         image.Image
	PreparedForTiled image.Image
	ColorForFill     *color.NRGBA
	Colors           []color.NRGBA
	PatternOpacity   float64
	GradientRotation int
	IsPattern        bool
	Tile             bool
}

func DefaultBackground() Background {
	return Background{
		Colors: []color.NRGBA{
			{0xDB, 0xDD, 0xBB, 0xFF},
			{0x6B, 0xA5, 0x87, 0xFF},
			{0xD5, 0xD8, 0x8D, 0xFF},
			{0x88, 0xB8, 0x84, 0xFF},
		},
		PatternOpacity: 0.5,
	}
}
