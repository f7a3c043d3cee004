// SPDX-License-Identifier: MIT

package static

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/plsviz/adapter"
	"github.com/katalvlaran/plsviz/layout"
	"github.com/katalvlaran/plsviz/matrix"
	"github.com/katalvlaran/plsviz/model"
)

// Renderer builds gonum/plot figures with a fixed Theme.
// A Renderer holds no mutable state and is safe for concurrent use.
type Renderer struct {
	theme Theme
}

// NewRenderer returns a Renderer; zero Theme fields take DefaultTheme values.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme.withDefaults()}
}

// Theme returns the effective theme.
func (r *Renderer) Theme() Theme { return r.theme }

// newPlot returns an empty plot with title and axis labels.
func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Legend.Top = true
	return p
}

// zeroLine adds a dotted horizontal line at y = 0 across the plot.
func (r *Renderer) zeroLine(p *plot.Plot) {
	fn := plotter.NewFunction(func(float64) float64 { return 0 })
	fn.LineStyle.Color = r.theme.AxisColor
	fn.LineStyle.Dashes = dotted()
	p.Add(fn)
}

// YhatVsY scatters observed against predicted responses, with the R²
// score in the legend. The test panel is added when test is non-nil.
//
// Errors:
//   - adapter.ErrNilModel when pred is nil.
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch from prediction and scoring.
func (r *Renderer) YhatVsY(pred model.Predictor, train model.Sample, test *model.Sample, title string) (*Figure, error) {
	if pred == nil {
		return nil, fmt.Errorf("YhatVsY: %w", adapter.ErrNilModel)
	}
	trainPlot, err := r.yhatPanel(pred, train, title+" (train)")
	if err != nil {
		return nil, fmt.Errorf("YhatVsY: train: %w", err)
	}
	if test == nil {
		return singleFigure(trainPlot, r.theme.PanelWidth, r.theme.PanelHeight), nil
	}
	testPlot, err := r.yhatPanel(pred, *test, title+" (test)")
	if err != nil {
		return nil, fmt.Errorf("YhatVsY: test: %w", err)
	}

	return &Figure{
		Plots:  [][]*plot.Plot{{trainPlot, testPlot}},
		Width:  2 * r.theme.PanelWidth,
		Height: r.theme.PanelHeight,
	}, nil
}

func (r *Renderer) yhatPanel(pred model.Predictor, s model.Sample, title string) (*plot.Plot, error) {
	yHat, err := pred.Predict(s.X)
	if err != nil {
		return nil, err
	}
	score, err := matrix.R2Score(s.Y, yHat)
	if err != nil {
		return nil, err
	}

	// Every (y, ŷ) entry becomes one point, row-major.
	xys := make(plotter.XYs, 0, s.Y.Rows()*s.Y.Cols())
	var a, b float64
	for i := 0; i < s.Y.Rows(); i++ {
		for j := 0; j < s.Y.Cols(); j++ {
			if a, err = s.Y.At(i, j); err != nil {
				return nil, err
			}
			if b, err = yHat.At(i, j); err != nil {
				return nil, err
			}
			xys = append(xys, plotter.XY{X: a, Y: b})
		}
	}

	p := newPlot(title, "y", "ŷ")
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = r.theme.Palette.Color(0)
	sc.GlyphStyle.Radius = r.theme.MarkerRadius
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(sc)
	p.Legend.Add(fmt.Sprintf("R² = %.5g", score), sc)

	return p, nil
}

// positionTicks labels positions 1..n with names.
func positionTicks(names []string) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(names))
	for i, n := range names {
		ticks[i] = plot.Tick{Value: float64(i + 1), Label: n}
	}
	return ticks
}

// ShowCoefficients draws the coefficients of each response as a line with
// markers over positions 1..p, optionally sorted by descending |value|.
// One figure per response, titled "Coefficients for <response>".
func (r *Renderer) ShowCoefficients(m model.FittedModel, vars adapter.VariableSet, sort bool) ([]*Figure, error) {
	tables, err := adapter.CoefficientTables(m, vars, nil)
	if err != nil {
		return nil, fmt.Errorf("ShowCoefficients: %w", err)
	}

	figs := make([]*Figure, 0, len(tables))
	for _, tab := range tables {
		coefs := make([]adapter.Coefficient, tab.Len())
		for j := range coefs {
			coefs[j] = adapter.Coefficient{Name: tab.Names[j], Value: tab.Values[j]}
		}
		if sort {
			coefs = adapter.SortByAbs(coefs)
		}
		xys := make(plotter.XYs, len(coefs))
		names := make([]string, len(coefs))
		for j, c := range coefs {
			xys[j] = plotter.XY{X: float64(j + 1), Y: c.Value}
			names[j] = c.Name
		}

		p := newPlot("Coefficients for "+tab.Response, "X-variables", "Coefficient")
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("ShowCoefficients: %w", err)
		}
		line.LineStyle.Color = r.theme.Palette.Color(0)
		line.LineStyle.Width = r.theme.LineWidth
		points.GlyphStyle.Color = r.theme.Palette.Color(0)
		points.GlyphStyle.Radius = r.theme.MarkerRadius
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(line, points)
		r.zeroLine(p)
		p.X.Tick.Marker = positionTicks(names)
		figs = append(figs, singleFigure(p, r.theme.PanelWidth, r.theme.PanelHeight))
	}

	return figs, nil
}

// PlotCoefficients draws one bar figure per response. With metadata the
// bars are split into one colored, legended series per variable type, in
// order of first appearance.
func (r *Renderer) PlotCoefficients(m model.FittedModel, vars adapter.VariableSet, meta adapter.Metadata) ([]*Figure, error) {
	tables, err := adapter.CoefficientTables(m, vars, meta)
	if err != nil {
		return nil, fmt.Errorf("PlotCoefficients: %w", err)
	}

	figs := make([]*Figure, 0, len(tables))
	for _, tab := range tables {
		p := newPlot("Coefficients for "+tab.Response, "X-variables", "Coefficient")
		if meta == nil {
			bars, err := r.bars(tab.Values, nil, 0)
			if err != nil {
				return nil, fmt.Errorf("PlotCoefficients: %w", err)
			}
			p.Add(bars)
		} else {
			for g, group := range layout.GroupByCategory(tab.Types) {
				bars, err := r.bars(tab.Values, group.Indices, g)
				if err != nil {
					return nil, fmt.Errorf("PlotCoefficients: %w", err)
				}
				p.Add(bars)
				p.Legend.Add(group.Label, bars)
			}
		}
		r.zeroLine(p)
		p.X.Tick.Marker = positionTicks(tab.Names)
		figs = append(figs, singleFigure(p, r.theme.PanelWidth, r.theme.PanelHeight))
	}

	return figs, nil
}

// bars is a bar series at positions 1..n. When only is non-nil the other
// positions are zero-height and drawn without outline.
func (r *Renderer) bars(values []float64, only []int, colorIdx int) (*plotter.BarChart, error) {
	vs := make(plotter.Values, len(values))
	if only == nil {
		copy(vs, values)
	} else {
		for _, j := range only {
			vs[j] = values[j]
		}
	}
	bc, err := plotter.NewBarChart(vs, r.theme.BarWidth)
	if err != nil {
		return nil, err
	}
	bc.XMin = 1
	bc.Color = r.theme.Palette.Color(colorIdx)
	bc.LineStyle.Width = 0
	return bc, nil
}
