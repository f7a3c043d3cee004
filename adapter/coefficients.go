// SPDX-License-Identifier: MIT
// Package: adapter
//
// Purpose:
//   - Turn one response row of the coefficient matrix into ordered
//     (predictor, value) pairs and into flat column tables for renderers.
//
// Exposed API:
//   - ExtractCoefficients(m, vars, r, opts...) -> []Coefficient
//   - SortByAbs(cs)                            -> []Coefficient (stable, |value| desc)
//   - CoefficientTable(m, vars, meta, r)       -> *Table
//   - CoefficientTables(m, vars, meta)         -> []*Table (response order)

package adapter

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/plsviz/matrix"
	"github.com/katalvlaran/plsviz/model"
)

// Coefficient is one predictor's regression coefficient for a response.
type Coefficient struct {
	Name  string
	Value float64
}

// Option configures ExtractCoefficients.
type Option func(*options)

type options struct {
	sortByAbs bool
}

// WithSortByAbs orders the result by descending absolute value (stable).
func WithSortByAbs() Option { return func(o *options) { o.sortByAbs = true } }

// coefRow validates the model against vars and returns coefficient row r.
func coefRow(op string, m model.FittedModel, vars VariableSet, r int) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilModel)
	}
	coef := m.Coef()
	if coef == nil {
		return nil, fmt.Errorf("%s: coef: %w", op, ErrMissingAttribute)
	}
	if err := vars.MatchCoef(coef); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := matrix.ValidateRowIndex(coef, r); err != nil {
		return nil, fmt.Errorf("%s: response %d: %w", op, r, err)
	}

	row := make([]float64, coef.Cols())
	var err error
	for j := range row {
		if row[j], err = coef.At(r, j); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return row, nil
}

// ExtractCoefficients returns the coefficients of response r, one per
// predictor, in predictor order (or sorted with WithSortByAbs).
//
// Implementation:
//   - Stage 1 (Validate): model present, coef present, names match coef shape,
//     r within [0, responses).
//   - Stage 2 (Extract): pair row r with the predictor names.
//   - Stage 3 (Order): optional stable sort by |value| descending.
//
// Errors:
//   - ErrNilModel, ErrMissingAttribute, ErrShapeMismatch, ErrIndexOutOfRange.
//
// Complexity: O(p log p) with sorting, O(p) otherwise.
func ExtractCoefficients(m model.FittedModel, vars VariableSet, r int, opts ...Option) ([]Coefficient, error) {
	var o options
	for _, apply := range opts {
		if apply != nil {
			apply(&o)
		}
	}

	row, err := coefRow("ExtractCoefficients", m, vars, r)
	if err != nil {
		return nil, err
	}
	out := make([]Coefficient, len(row))
	for j, v := range row {
		out[j] = Coefficient{Name: vars.Predictors[j], Value: v}
	}
	if o.sortByAbs {
		sortByAbsInPlace(out)
	}

	return out, nil
}

// SortByAbs returns a copy of cs ordered by descending |Value|.
// Ties keep their input order, so sorting twice changes nothing.
func SortByAbs(cs []Coefficient) []Coefficient {
	out := slices.Clone(cs)
	sortByAbsInPlace(out)
	return out
}

func sortByAbsInPlace(cs []Coefficient) {
	slices.SortStableFunc(cs, func(a, b Coefficient) int {
		return cmp.Compare(math.Abs(b.Value), math.Abs(a.Value))
	})
}

// Table is the column-oriented view of one response's coefficients.
// All slices have one entry per predictor, in predictor order.
type Table struct {
	Response     string
	Names        []string
	Positions    []int // 1-based bar positions
	Values       []float64
	Types        []string
	Descriptions []string
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Names) }

// CoefficientTable builds the table for response r. Types and descriptions
// use the metadata fallbacks; meta may be nil.
func CoefficientTable(m model.FittedModel, vars VariableSet, meta Metadata, r int) (*Table, error) {
	row, err := coefRow("CoefficientTable", m, vars, r)
	if err != nil {
		return nil, err
	}
	return newTable(vars, meta, r, row), nil
}

// CoefficientTables builds one table per response, in response order.
// The shape check runs once up front, so an empty response list against a
// non-empty coef is still a mismatch.
func CoefficientTables(m model.FittedModel, vars VariableSet, meta Metadata) ([]*Table, error) {
	const op = "CoefficientTables"
	if m == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilModel)
	}
	coef := m.Coef()
	if coef == nil {
		return nil, fmt.Errorf("%s: coef: %w", op, ErrMissingAttribute)
	}
	if err := vars.MatchCoef(coef); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tables := make([]*Table, 0, len(vars.Responses))
	for r := range vars.Responses {
		row, err := coefRow(op, m, vars, r)
		if err != nil {
			return nil, err
		}
		tables = append(tables, newTable(vars, meta, r, row))
	}

	return tables, nil
}

func newTable(vars VariableSet, meta Metadata, r int, row []float64) *Table {
	n := len(row)
	t := &Table{
		Response:     vars.Responses[r],
		Names:        slices.Clone(vars.Predictors),
		Positions:    make([]int, n),
		Values:       row,
		Types:        make([]string, n),
		Descriptions: make([]string, n),
	}
	for j, name := range vars.Predictors {
		t.Positions[j] = j + 1
		t.Types[j] = Category(meta, name)
		t.Descriptions[j] = Description(meta, name)
	}
	return t
}
