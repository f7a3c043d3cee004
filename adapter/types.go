// SPDX-License-Identifier: MIT

package adapter

import (
	"fmt"

	"github.com/katalvlaran/plsviz/matrix"
)

// Fallback labels for variables without metadata.
const (
	DefaultType        = "Unknown"
	DefaultDescription = "Variable"
)

// VariableSet names the rows and columns of a model's matrices.
// Predictors index coef columns and x-side rows; Responses index coef rows
// and y-side rows.
type VariableSet struct {
	Predictors []string
	Responses  []string
}

// MatchCoef checks the names against a coefficient matrix (responses × predictors).
func (v VariableSet) MatchCoef(coef matrix.Matrix) error {
	if len(v.Predictors) != coef.Cols() {
		return fmt.Errorf("%d predictor names for %d coefficient columns: %w",
			len(v.Predictors), coef.Cols(), ErrShapeMismatch)
	}
	if len(v.Responses) != coef.Rows() {
		return fmt.Errorf("%d response names for %d coefficient rows: %w",
			len(v.Responses), coef.Rows(), ErrShapeMismatch)
	}
	return nil
}

// MatchLoadings checks the names against a predictor-side and a
// response-side matrix (variables × components).
func (v VariableSet) MatchLoadings(x, y matrix.Matrix) error {
	if len(v.Predictors) != x.Rows() {
		return fmt.Errorf("%d predictor names for %d x rows: %w",
			len(v.Predictors), x.Rows(), ErrShapeMismatch)
	}
	if len(v.Responses) != y.Rows() {
		return fmt.Errorf("%d response names for %d y rows: %w",
			len(v.Responses), y.Rows(), ErrShapeMismatch)
	}
	return nil
}

// Metadata looks up optional display labels of a variable.
// Either lookup may be partial; ok reports whether an entry exists.
type Metadata interface {
	TypeOf(name string) (string, bool)
	DescriptionOf(name string) (string, bool)
}

// MapMetadata is a Metadata backed by plain maps. Nil maps behave as empty.
type MapMetadata struct {
	Types        map[string]string
	Descriptions map[string]string
}

var _ Metadata = MapMetadata{}

// TypeOf implements Metadata.
func (m MapMetadata) TypeOf(name string) (string, bool) {
	t, ok := m.Types[name]
	return t, ok
}

// DescriptionOf implements Metadata.
func (m MapMetadata) DescriptionOf(name string) (string, bool) {
	d, ok := m.Descriptions[name]
	return d, ok
}

// Category returns the type label of name, or DefaultType when meta is nil
// or has no entry.
func Category(meta Metadata, name string) string {
	if meta != nil {
		if t, ok := meta.TypeOf(name); ok {
			return t
		}
	}
	return DefaultType
}

// Description returns the description of name, or DefaultDescription.
func Description(meta Metadata, name string) string {
	if meta != nil {
		if d, ok := meta.DescriptionOf(name); ok {
			return d
		}
	}
	return DefaultDescription
}
