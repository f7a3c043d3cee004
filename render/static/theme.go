// SPDX-License-Identifier: MIT

package static

import (
	"image/color"

	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/plsviz/style"
)

// Theme is the complete look of a static Renderer.
type Theme struct {
	Palette style.Palette // series colors, used in group order

	PanelWidth   vg.Length // one ŷ-vs-y or coefficient panel
	PanelHeight  vg.Length
	LoadingsSide vg.Length // the loading biplot is square

	MarkerRadius vg.Length
	LineWidth    vg.Length
	BarWidth     vg.Length

	VectorColor color.Color // response vectors and their labels
	AxisColor   color.Color // dotted zero lines
}

// DefaultTheme mirrors the notebook look: muted palette, 4in panels, 6in biplot.
func DefaultTheme() Theme {
	return Theme{
		Palette:      style.Colorblind8,
		PanelWidth:   4 * vg.Inch,
		PanelHeight:  4 * vg.Inch,
		LoadingsSide: 6 * vg.Inch,
		MarkerRadius: vg.Points(3),
		LineWidth:    vg.Points(1.5),
		BarWidth:     vg.Points(10),
		VectorColor:  color.RGBA{R: 0xff, A: 0xff},
		AxisColor:    color.Black,
	}
}

// withDefaults fills zero fields from DefaultTheme.
func (t Theme) withDefaults() Theme {
	d := DefaultTheme()
	if len(t.Palette) == 0 {
		t.Palette = d.Palette
	}
	for _, f := range []struct{ v, def *vg.Length }{
		{&t.PanelWidth, &d.PanelWidth},
		{&t.PanelHeight, &d.PanelHeight},
		{&t.LoadingsSide, &d.LoadingsSide},
		{&t.MarkerRadius, &d.MarkerRadius},
		{&t.LineWidth, &d.LineWidth},
		{&t.BarWidth, &d.BarWidth},
	} {
		if *f.v <= 0 {
			*f.v = *f.def
		}
	}
	if t.VectorColor == nil {
		t.VectorColor = d.VectorColor
	}
	if t.AxisColor == nil {
		t.AxisColor = d.AxisColor
	}
	return t
}

// dotted is the dash pattern of zero lines.
func dotted() []vg.Length { return []vg.Length{vg.Points(1), vg.Points(3)} }
