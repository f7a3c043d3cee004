// SPDX-License-Identifier: MIT

package interactive

import "github.com/katalvlaran/plsviz/style"

// Theme is the complete look of an interactive Renderer.
type Theme struct {
	Palette     style.Palette // category colors, group order
	Width       string        // CSS size of one chart, e.g. "900px"
	Height      string
	ChartTheme  string // ECharts theme name
	VectorColor string // response vectors, markers and labels
	AxisColor   string // dotted zero axes of the biplot
	PageTitle   string
}

// DefaultTheme returns the Colorblind8 palette on 900×500 px charts.
func DefaultTheme() Theme {
	return Theme{
		Palette:     style.Colorblind8,
		Width:       "900px",
		Height:      "500px",
		ChartTheme:  "white",
		VectorColor: "#FF0000",
		AxisColor:   "#000000",
		PageTitle:   "PLS diagnostics",
	}
}

func (t Theme) withDefaults() Theme {
	d := DefaultTheme()
	if len(t.Palette) == 0 {
		t.Palette = d.Palette
	}
	if t.Width == "" {
		t.Width = d.Width
	}
	if t.Height == "" {
		t.Height = d.Height
	}
	if t.ChartTheme == "" {
		t.ChartTheme = d.ChartTheme
	}
	if t.VectorColor == "" {
		t.VectorColor = d.VectorColor
	}
	if t.AxisColor == "" {
		t.AxisColor = d.AxisColor
	}
	if t.PageTitle == "" {
		t.PageTitle = d.PageTitle
	}
	return t
}
