// SPDX-License-Identifier: MIT

// Package style holds the palette shared by the static and interactive
// renderers.
package style

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrBadColor indicates a color string that is not #rrggbb or #rgb.
var ErrBadColor = errors.New("style: malformed hex color")

// Palette is an ordered list of #rrggbb colors, used cyclically.
type Palette []string

// Colorblind8 is the eight-color palette of Wong (Nature Methods, 2011).
var Colorblind8 = Palette{
	"#0072B2", "#E69F00", "#F0E442", "#009E73",
	"#56B4E9", "#D55E00", "#CC79A7", "#000000",
}

// Hex returns the i-th color, wrapping around. An empty palette yields black.
func (p Palette) Hex(i int) string {
	if len(p) == 0 {
		return "#000000"
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// Color returns the i-th color as color.RGBA; malformed entries yield black.
func (p Palette) Color(i int) color.RGBA {
	c, err := ParseHex(p.Hex(i))
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}

// Validate reports the first malformed entry.
func (p Palette) Validate() error {
	for i, s := range p {
		if _, err := ParseHex(s); err != nil {
			return fmt.Errorf("palette[%d]: %w", i, err)
		}
	}
	return nil
}

// ParseHex parses "#rrggbb" or "#rgb" (case-insensitive) into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	h, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("ParseHex(%q): %w", s, ErrBadColor)
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("ParseHex(%q): %w", s, ErrBadColor)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("ParseHex(%q): %w", s, ErrBadColor)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
