package style

import (
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// File is the on-disk override format. Unset fields keep their defaults.
//
//	slide_duration = "200ms"
//	[metrics]
//	max_text_lines = 2
//	[palette]
//	msg_in_bg = "#fffff0"
//	[background]
//	colors = ["#dbddbb", "#6ba587"]
type File struct {
	SlideDuration string            `toml:"slide_duration"`
	Metrics       *Metrics          `toml:"metrics"`
	Palette       map[string]string `toml:"palette"`
	Background    *struct {
		Colors           []string `toml:"colors"`
		Fill             string   `toml:"fill"`
		GradientRotation int      `toml:"gradient_rotation"`
	} `toml:"background"`
	Texts *struct {
		Name    string `toml:"name"`
		Reply   string `toml:"reply"`
		Message string `toml:"message"`
	} `toml:"texts"`
}

// Load reads path and applies it on top of Default.
func Load(path string) (Style, error) {
	st := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return st, errors.Wrap(err, "read style file")
	}
	if err := Apply(&st, string(raw)); err != nil {
		return st, errors.Wrapf(err, "apply style file %s", path)
	}
	return st, nil
}

// Apply decodes a TOML document into st.
func Apply(st *Style, doc string) error {
	f := File{Metrics: &st.Metrics}
	if _, err := toml.Decode(doc, &f); err != nil {
		return errors.Wrap(err, "decode toml")
	}
	if f.SlideDuration != "" {
		d, err := time.ParseDuration(f.SlideDuration)
		if err != nil {
			return errors.Wrap(err, "slide_duration")
		}
		st.SlideDuration = d
	}
	for key, value := range f.Palette {
		c, err := ParseColor(value)
		if err != nil {
			return errors.Wrapf(err, "palette.%s", key)
		}
		if !st.Palette.set(key, c) {
			return errors.Errorf("palette.%s: unknown color", key)
		}
	}
	if bg := f.Background; bg != nil {
		if len(bg.Colors) > 0 {
			st.Background.Colors = nil
			for i, value := range bg.Colors {
				c, err := ParseColor(value)
				if err != nil {
					return errors.Wrapf(err, "background.colors[%d]", i)
				}
				st.Background.Colors = append(st.Background.Colors, c)
			}
		}
		if bg.Fill != "" {
			c, err := ParseColor(bg.Fill)
			if err != nil {
				return errors.Wrap(err, "background.fill")
			}
			st.Background.ColorForFill = &c
		}
		st.Background.GradientRotation = bg.GradientRotation
	}
	if t := f.Texts; t != nil {
		if t.Name != "" {
			st.NameText = t.Name
		}
		if t.Reply != "" {
			st.ReplyText = t.Reply
		}
		if t.Message != "" {
			st.MessageText = t.Message
		}
	}
	if st.Metrics.MaxTextLines < 1 {
		return errors.New("metrics.max_text_lines must be positive")
	}
	if st.Metrics.MinTextWidth > st.Metrics.MaxTextWidth {
		return errors.New("metrics.min_text_width exceeds max_text_width")
	}
	return nil
}

func (p *Palette) set(key string, c color.NRGBA) bool {
	switch key {
	case "window_shadow_fg":
		p.WindowShadowFg = c
	case "msg_in_bg":
		p.MsgInBg = c
	case "msg_in_shadow":
		p.MsgInShadow = c
	case "msg_in_reply_bar":
		p.MsgInReplyBar = c
	case "msg_in_service_fg":
		p.MsgInServiceFg = c
	case "history_text_in_fg":
		p.HistoryTextInFg = c
	case "background_filler":
		p.BackgroundFiller = c
	default:
		return false
	}
	return true
}

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseColor(s string) (color.NRGBA, error) {
	hex := "#" + strings.TrimPrefix(strings.TrimSpace(s), "#")
	alpha := uint64(0xff)
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, errors.Wrapf(err, "bad color %q", s)
		}
		hex, alpha = hex[:7], a
	}
	if len(hex) != 4 && len(hex) != 7 {
		return color.NRGBA{}, errors.Errorf("bad color %q", s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(err, "bad color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha)}, nil
}
