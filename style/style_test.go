package style_test

import (
	"image/color"
	"testing"

	"github.com/katalvlaran/plsviz/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := style.ParseHex("#0072B2")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x00, G: 0x72, B: 0xb2, A: 0xff}, c)

	c, err = style.ParseHex("#f0a")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x00, B: 0xaa, A: 0xff}, c)

	for _, bad := range []string{"", "0072B2", "#12345", "#zzzzzz", "#+12345"} {
		_, err = style.ParseHex(bad)
		assert.ErrorIs(t, err, style.ErrBadColor, "%q", bad)
	}
}

func TestPaletteCycles(t *testing.T) {
	p := style.Colorblind8
	require.NoError(t, p.Validate())
	assert.Equal(t, "#0072B2", p.Hex(0))
	assert.Equal(t, "#0072B2", p.Hex(8))
	assert.Equal(t, "#000000", p.Hex(-1))
	assert.Equal(t, color.RGBA{R: 0xe6, G: 0x9f, B: 0x00, A: 0xff}, p.Color(9))

	assert.Equal(t, "#000000", style.Palette(nil).Hex(3))
	require.Error(t, style.Palette{"red"}.Validate())
	assert.Equal(t, color.RGBA{A: 0xff}, style.Palette{"red"}.Color(0))
}
