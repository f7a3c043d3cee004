// SPDX-License-Identifier: MIT

package static

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/plsviz/adapter"
	"github.com/katalvlaran/plsviz/layout"
	"github.com/katalvlaran/plsviz/model"
)

// baseline maps a label anchor onto gonum text alignment.
func baseline(a layout.Anchor) text.YAlignment {
	if a == layout.AnchorBelow {
		return text.YBottom
	}
	return text.YTop
}

// PlotLoadings draws the loading biplot of m: one scatter series per
// predictor category, response vectors from the origin with their labels,
// dotted axes through zero, and the biplot axis limits.
//
// Errors: those of layout.BuildBiplot; no figure is built on failure.
func (r *Renderer) PlotLoadings(m model.FittedModel, vars adapter.VariableSet, meta adapter.Metadata, opts ...layout.BiplotOption) (*Figure, error) {
	b, err := layout.BuildBiplot(m, vars, meta, opts...)
	if err != nil {
		return nil, fmt.Errorf("PlotLoadings: %w", err)
	}
	p, err := r.biplot(b)
	if err != nil {
		return nil, fmt.Errorf("PlotLoadings: %w", err)
	}
	return singleFigure(p, r.theme.LoadingsSide, r.theme.LoadingsSide), nil
}

func (r *Renderer) biplot(b *layout.Biplot) (*plot.Plot, error) {
	p := newPlot("Loadings", b.XLabel, b.YLabel)

	for g, group := range b.Groups {
		pts := b.GroupPoints(group)
		xys := make(plotter.XYs, len(pts))
		for i, pt := range pts {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = r.theme.Palette.Color(g)
		sc.GlyphStyle.Radius = 1.5 * r.theme.MarkerRadius
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(group.Label, sc)
	}

	if len(b.Vectors) > 0 {
		tips := plotter.XYLabels{
			XYs:    make(plotter.XYs, len(b.Vectors)),
			Labels: make([]string, len(b.Vectors)),
		}
		for i, v := range b.Vectors {
			seg, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: v.X, Y: v.Y}})
			if err != nil {
				return nil, err
			}
			seg.LineStyle.Color = r.theme.VectorColor
			seg.LineStyle.Width = r.theme.LineWidth
			p.Add(seg)
			tips.XYs[i] = plotter.XY{X: v.X, Y: v.Y}
			tips.Labels[i] = v.Name
		}
		labels, err := plotter.NewLabels(tips)
		if err != nil {
			return nil, err
		}
		for i, v := range b.Vectors {
			labels.TextStyle[i].Color = r.theme.VectorColor
			labels.TextStyle[i].XAlign = text.XCenter
			labels.TextStyle[i].YAlign = baseline(v.Anchor)
		}
		p.Add(labels)
	}

	r.zeroLine(p)
	vline, err := plotter.NewLine(plotter.XYs{{X: 0, Y: b.Limits.Y.Low}, {X: 0, Y: b.Limits.Y.High}})
	if err != nil {
		return nil, err
	}
	vline.LineStyle.Color = r.theme.AxisColor
	vline.LineStyle.Dashes = dotted()
	p.Add(vline)

	// Limits are set after Add, which widens the axes to the data.
	p.X.Min, p.X.Max = b.Limits.X.Low, b.Limits.X.High
	p.Y.Min, p.Y.Max = b.Limits.Y.Low, b.Limits.Y.High

	return p, nil
}
