// SPDX-License-Identifier: MIT

package layout

// DefaultLimit is the half-width of the default biplot window. It assumes
// scaled data, where loadings stay well inside the unit circle; larger
// loadings need explicit limits.
const DefaultLimit = 0.4

// Range is a closed axis interval.
type Range struct {
	Low, High float64
}

// Limits holds the ranges of both axes.
type Limits struct {
	X, Y Range
}

// DefaultAxisLimits returns *explicit on both axes when given, otherwise
// (-DefaultLimit, DefaultLimit) on both. The explicit range is not checked
// or reordered.
func DefaultAxisLimits(explicit *Range) Limits {
	r := Range{Low: -DefaultLimit, High: DefaultLimit}
	if explicit != nil {
		r = *explicit
	}
	return Limits{X: r, Y: r}
}
