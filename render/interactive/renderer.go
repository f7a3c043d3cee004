// SPDX-License-Identifier: MIT

package interactive

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/plsviz/adapter"
	"github.com/katalvlaran/plsviz/layout"
	"github.com/katalvlaran/plsviz/model"
)

// Tooltip templates; {a} is the series, {b} the item name, {c} the value.
// Biplot items carry their category as the third value dimension.
const (
	coefTooltip    = "Type: {a}<br/>Variable: {b}<br/>Coef: {c}"
	loadingTooltip = "Type: {@[2]}<br/>Variable: {b}"
)

// Label positions of response names: ECharts places the text relative to
// the marker, so text below the tip is "bottom".
var anchorPosition = map[layout.Anchor]string{
	layout.AnchorBelow: "top",
	layout.AnchorAbove: "bottom",
}

// Renderer builds go-echarts charts with a fixed Theme.
type Renderer struct {
	theme Theme
}

// NewRenderer returns a Renderer; empty Theme fields take DefaultTheme values.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme.withDefaults()}
}

// Theme returns the effective theme.
func (r *Renderer) Theme() Theme { return r.theme }

func (r *Renderer) initOpts() charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle: r.theme.PageTitle,
		Width:     r.theme.Width,
		Height:    r.theme.Height,
		Theme:     r.theme.ChartTheme,
	})
}

// label names a hover item as "name (description)".
func label(name, desc string) string { return fmt.Sprintf("%s (%s)", name, desc) }

// CoefficientBars returns one bar chart per response. Bars are split into
// one stacked series per variable type so each type gets its own color and
// legend entry; hovering a bar shows variable, coefficient, type and
// description.
func (r *Renderer) CoefficientBars(m model.FittedModel, vars adapter.VariableSet, meta adapter.Metadata) ([]*charts.Bar, error) {
	tables, err := adapter.CoefficientTables(m, vars, meta)
	if err != nil {
		return nil, fmt.Errorf("Coefficients: %w", err)
	}

	out := make([]*charts.Bar, 0, len(tables))
	for _, tab := range tables {
		bar := charts.NewBar()
		bar.SetGlobalOptions(
			r.initOpts(),
			charts.WithTitleOpts(opts.Title{Title: "Coefficients for " + tab.Response}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item", Formatter: coefTooltip}),
			charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
			charts.WithXAxisOpts(opts.XAxis{Name: "X-variables"}),
			charts.WithYAxisOpts(opts.YAxis{Name: "Coefficients"}),
		)
		bar.SetXAxis(tab.Names)

		for g, group := range layout.GroupByCategory(tab.Types) {
			data := make([]opts.BarData, tab.Len())
			for j := range data {
				data[j] = opts.BarData{Value: "-"} // empty slot, keeps the stack aligned
			}
			for _, j := range group.Indices {
				data[j] = opts.BarData{Name: label(tab.Names[j], tab.Descriptions[j]), Value: tab.Values[j]}
			}
			bar.AddSeries(group.Label, data,
				charts.WithBarChartOpts(opts.BarChart{Stack: "coef"}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: r.theme.Palette.Hex(g), BorderColor: "#FFFFFF"}),
			)
		}
		out = append(out, bar)
	}

	return out, nil
}

// Coefficients returns a page holding CoefficientBars, one chart per response.
func (r *Renderer) Coefficients(m model.FittedModel, vars adapter.VariableSet, meta adapter.Metadata) (*components.Page, error) {
	bars, err := r.CoefficientBars(m, vars, meta)
	if err != nil {
		return nil, err
	}
	charters := make([]components.Charter, len(bars))
	for i, b := range bars {
		charters[i] = b
	}
	return r.Page(charters...), nil
}

// Loadings returns the interactive loading biplot: a scatter series per
// predictor category, response vectors as segments from the origin, and
// response labels anchored at the tips. The axes are fixed to the biplot
// limits.
//
// Errors: those of layout.BuildBiplot.
func (r *Renderer) Loadings(m model.FittedModel, vars adapter.VariableSet, meta adapter.Metadata, opt ...layout.BiplotOption) (*charts.Scatter, error) {
	b, err := layout.BuildBiplot(m, vars, meta, opt...)
	if err != nil {
		return nil, fmt.Errorf("Loadings: %w", err)
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		r.initOpts(),
		charts.WithTitleOpts(opts.Title{Title: "Loadings"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item", Formatter: loadingTooltip}),
		charts.WithXAxisOpts(opts.XAxis{Name: b.XLabel, Type: "value", Min: b.Limits.X.Low, Max: b.Limits.X.High}),
		charts.WithYAxisOpts(opts.YAxis{Name: b.YLabel, Type: "value", Min: b.Limits.Y.Low, Max: b.Limits.Y.High}),
	)

	legend := make([]string, 0, len(b.Groups)+len(b.Vectors))
	for g, group := range b.Groups {
		pts := b.GroupPoints(group)
		data := make([]opts.ScatterData, len(pts))
		for i, p := range pts {
			data[i] = opts.ScatterData{
				Name:       label(p.Name, p.Description),
				Value:      []interface{}{p.X, p.Y, p.Category},
				SymbolSize: 16,
			}
		}
		series := []charts.SeriesOpts{
			charts.WithItemStyleOpts(opts.ItemStyle{Color: r.theme.Palette.Hex(g), BorderColor: "#000000"}),
		}
		if g == 0 {
			series = append(series, r.originAxes()...)
		}
		sc.AddSeries(group.Label, data, series...)
		legend = append(legend, group.Label)
	}

	for _, v := range b.Vectors {
		sc.AddSeries(v.Name, []opts.ScatterData{{
			Name:       label(v.Name, v.Description),
			Value:      []interface{}{v.X, v.Y, v.Category},
			SymbolSize: 8,
		}},
			charts.WithItemStyleOpts(opts.ItemStyle{Color: r.theme.VectorColor}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: anchorPosition[v.Anchor], Color: r.theme.VectorColor, Formatter: "{a}"}),
		)
		legend = append(legend, v.Name)

		seg := charts.NewLine()
		seg.AddSeries(v.Name, []opts.LineData{
			{Name: v.Name, Value: []interface{}{0, 0, v.Category}},
			{Name: v.Name, Value: []interface{}{v.X, v.Y, v.Category}},
		},
			charts.WithLineStyleOpts(opts.LineStyle{Color: r.theme.VectorColor, Width: 4}),
		)
		sc.Overlap(seg)
	}
	sc.SetGlobalOptions(charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom", Data: legend}))

	return sc, nil
}

// originAxes draws dotted x = 0 and y = 0 lines on the series they are attached to.
func (r *Renderer) originAxes() []charts.SeriesOpts {
	return []charts.SeriesOpts{
		charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{Name: "x = 0", XAxis: 0}),
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: "y = 0", YAxis: 0}),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Symbol:    []string{"none", "none"},
			LineStyle: &opts.LineStyle{Type: "dotted", Color: r.theme.AxisColor},
		}),
	}
}

// Page composes charts into one flex-layout HTML page.
func (r *Renderer) Page(cs ...components.Charter) *components.Page {
	page := components.NewPage()
	page.PageTitle = r.theme.PageTitle
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(cs...)
	return page
}

// RenderPage writes page as HTML to w.
func RenderPage(w io.Writer, page *components.Page) error {
	if err := page.Render(w); err != nil {
		return fmt.Errorf("RenderPage: %w", err)
	}
	return nil
}
