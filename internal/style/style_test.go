package style

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertScale(t *testing.T) {
	cases := []struct {
		value, scale, want int
	}{
		{13, 100, 13},
		{13, 150, 19},
		{120, 50, 60},
		{1, 125, 1},
		{10, 125, 12},
		{-10, 150, -15},
		{0, 300, 0},
	}
	for _, tc := range cases {
		if got := ConvertScale(tc.value, tc.scale); got != tc.want {
			t.Fatalf("ConvertScale(%d, %d) = %d, want %d", tc.value, tc.scale, got, tc.want)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	st := Default()
	err := Apply(&st, `
slide_duration = "250ms"

[metrics]
max_text_lines = 2
bubble_margin = { left = 10, top = 8, right = 10, bottom = 8 }

[palette]
msg_in_bg = "#fffff0"

[background]
colors = ["#000", "#ffffff"]

[texts]
name = "Alice"
`)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, st.SlideDuration)
	assert.Equal(t, 2, st.Metrics.MaxTextLines)
	assert.Equal(t, 10, st.Metrics.BubbleMargin.Left)
	assert.Equal(t, 320, st.Metrics.MaxTextWidth, "untouched metrics keep defaults")
	assert.Equal(t, color.NRGBA{0xFF, 0xFF, 0xF0, 0xFF}, st.Palette.MsgInBg)
	assert.Len(t, st.Background.Colors, 2)
	assert.Equal(t, "Alice", st.NameText)
	assert.Equal(t, "Good morning!", st.ReplyText)
}

func TestApplyRejectsUnknownPaletteKey(t *testing.T) {
	st := Default()
	err := Apply(&st, "[palette]\nnope = \"#000\"\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palette.nope")
}

func TestApplyRejectsInvertedWidths(t *testing.T) {
	st := Default()
	err := Apply(&st, "[metrics]\nmin_text_width = 400\n")
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#748ea229")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x74, 0x8E, 0xA2, 0x29}, c)

	c, err = ParseColor("#fa0")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0xFF, 0xAA, 0x00, 0xFF}, c)

	c, err = ParseColor(" 17212b ")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x17, 0x21, 0x2B, 0xFF}, c)

	for _, bad := range []string{"#12", "#12345", "#gggggg", "#748ea2zz"} {
		_, err = ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestTailIconCoverage(t *testing.T) {
	img := TailIcon{W: 11, H: 17}.Instance(color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}, 200)
	b := img.Bounds()
	require.Equal(t, 22, b.Dx())
	require.Equal(t, 34, b.Dy())
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A, "top-left is carved out")
	assert.Equal(t, uint8(0xFF), img.RGBAAt(b.Dx()-1, b.Dy()-1).A, "bottom-right is solid")
}

func TestShadowSideIsOnePixelLong(t *testing.T) {
	icon := ShadowIcon{Side: SideLeft, Size: DefaultShadow(Default().Shadow.Extend).Sides[0].(ShadowIcon).Size, Strength: 0.3}
	img := icon.Instance(color.NRGBA{A: 0xFF}, 100)
	require.Equal(t, 1, img.Bounds().Dy())
	require.Equal(t, 9, img.Bounds().Dx())
	assert.Less(t, img.RGBAAt(0, 0).A, img.RGBAAt(8, 0).A, "opacity grows towards the card")
}
