// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"

	"github.com/katalvlaran/plsviz/adapter"
	"github.com/katalvlaran/plsviz/model"
)

// PlotPoint is a named, labelled position in component space.
type PlotPoint struct {
	Name        string
	X, Y        float64
	Category    string
	Description string
}

// Vector is a response drawn as a segment from the origin to its tip.
type Vector struct {
	PlotPoint
	Anchor Anchor
}

// Biplot is everything a renderer needs to draw a loading biplot.
type Biplot struct {
	Points  []PlotPoint // one per predictor, predictor order
	Groups  []Group     // partition of Points by Category
	Vectors []Vector    // one per response, response order
	Limits  Limits
	XLabel  string // "PLS component <idx1+1>"
	YLabel  string // "PLS component <idx2+1>"

	Components [2]int
	Families   [2]adapter.Family // x side, y side
}

// GroupPoints returns the points of g in index order.
func (b *Biplot) GroupPoints(g Group) []PlotPoint {
	out := make([]PlotPoint, 0, len(g.Indices))
	for _, i := range g.Indices {
		out = append(out, b.Points[i])
	}
	return out
}

// BiplotOption configures BuildBiplot.
type BiplotOption func(*biplotOptions)

type biplotOptions struct {
	idx1, idx2 int
	factor     float64
	xFamily    adapter.Family
	yFamily    adapter.Family
	limits     *Range
}

func defaultBiplotOptions() biplotOptions {
	return biplotOptions{
		idx1:    0,
		idx2:    1,
		factor:  DefaultFactor,
		xFamily: adapter.DefaultXFamily,
		yFamily: adapter.DefaultYFamily,
	}
}

// WithComponents selects the 0-based component pair (default 0, 1).
func WithComponents(idx1, idx2 int) BiplotOption {
	return func(o *biplotOptions) { o.idx1, o.idx2 = idx1, idx2 }
}

// WithFactor scales the response vectors (default DefaultFactor).
func WithFactor(f float64) BiplotOption {
	return func(o *biplotOptions) { o.factor = f }
}

// WithFamilies selects the predictor-side and response-side matrix families
// (default rotations / loadings).
func WithFamilies(x, y adapter.Family) BiplotOption {
	return func(o *biplotOptions) { o.xFamily, o.yFamily = x, y }
}

// WithLimits fixes both axis ranges to r.
func WithLimits(r Range) BiplotOption {
	return func(o *biplotOptions) { o.limits = &r }
}

// BuildBiplot assembles the biplot of m for vars.
//
// Implementation:
//   - Stage 1 (Select): pick the x/y matrices of the configured families.
//   - Stage 2 (Validate): names against matrix rows, component indices
//     against the columns of both matrices.
//   - Stage 3 (Project): predictor points, scaled response vectors, label
//     anchors from the scaled y.
//   - Stage 4 (Group): categories from meta; with meta == nil each predictor
//     is its own category, otherwise missing entries become "Unknown".
//
// Errors (nothing partial is returned):
//   - adapter.ErrNilModel, adapter.ErrUnknownFamily, adapter.ErrMissingAttribute,
//     adapter.ErrShapeMismatch, ErrIndexOutOfRange.
func BuildBiplot(m model.FittedModel, vars adapter.VariableSet, meta adapter.Metadata, opts ...BiplotOption) (*Biplot, error) {
	const op = "BuildBiplot"
	o := defaultBiplotOptions()
	for _, apply := range opts {
		if apply != nil {
			apply(&o)
		}
	}

	x, y, err := adapter.SelectLoadingFamily(m, o.xFamily, o.yFamily)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = vars.MatchLoadings(x, y); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	xs, err := ProjectPredictors(x, o.idx1, o.idx2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ys, err := ScaleResponses(y, o.idx1, o.idx2, o.factor)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b := &Biplot{
		Points:     make([]PlotPoint, len(xs)),
		Vectors:    make([]Vector, len(ys)),
		Limits:     DefaultAxisLimits(o.limits),
		XLabel:     fmt.Sprintf("PLS component %d", o.idx1+1),
		YLabel:     fmt.Sprintf("PLS component %d", o.idx2+1),
		Components: [2]int{o.idx1, o.idx2},
		Families:   [2]adapter.Family{o.xFamily, o.yFamily},
	}
	labels := make([]string, len(xs))
	for i, p := range xs {
		name := vars.Predictors[i]
		labels[i] = name
		if meta != nil {
			labels[i] = adapter.Category(meta, name)
		}
		b.Points[i] = PlotPoint{
			Name:        name,
			X:           p.X,
			Y:           p.Y,
			Category:    labels[i],
			Description: adapter.Description(meta, name),
		}
	}
	for i, p := range ys {
		name := vars.Responses[i]
		b.Vectors[i] = Vector{
			PlotPoint: PlotPoint{
				Name:        name,
				X:           p.X,
				Y:           p.Y,
				Category:    adapter.Category(meta, name),
				Description: adapter.Description(meta, name),
			},
			Anchor: LabelAnchor(p.Y),
		}
	}
	b.Groups = GroupByCategory(labels)

	return b, nil
}
