// SPDX-License-Identifier: MIT

package adapter

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/plsviz/matrix"
	"github.com/katalvlaran/plsviz/model"
)

// Family selects one of the paired matrix families of a PLS model.
// The zero value is not a valid family.
type Family uint8

const (
	// Loadings selects x_loadings / y_loadings.
	Loadings Family = iota + 1
	// Weights selects x_weights / y_weights.
	Weights
	// Rotations selects x_rotations / y_rotations.
	Rotations
)

// Default biplot selection.
const (
	DefaultXFamily = Rotations
	DefaultYFamily = Loadings
)

// accessor pair per family; the only place a Family becomes a model attribute.
var families = map[Family]struct {
	x, y         func(model.FittedModel) matrix.Matrix
	xName, yName string
}{
	Loadings:  {model.FittedModel.XLoadings, model.FittedModel.YLoadings, "x_loadings", "y_loadings"},
	Weights:   {model.FittedModel.XWeights, model.FittedModel.YWeights, "x_weights", "y_weights"},
	Rotations: {model.FittedModel.XRotations, model.FittedModel.YRotations, "x_rotations", "y_rotations"},
}

// String returns the lower-case family name, or "Family(n)" for invalid values.
func (f Family) String() string {
	switch f {
	case Loadings:
		return "loadings"
	case Weights:
		return "weights"
	case Rotations:
		return "rotations"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// Valid reports whether f is one of the declared families.
func (f Family) Valid() bool {
	_, ok := families[f]
	return ok
}

// ParseFamily maps "loadings", "weights" or "rotations" (case-insensitive,
// surrounding space ignored) to its Family.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "loadings":
		return Loadings, nil
	case "weights":
		return Weights, nil
	case "rotations":
		return Rotations, nil
	}
	return 0, fmt.Errorf("ParseFamily(%q): %w", s, ErrUnknownFamily)
}

// Set implements pflag.Value so a Family can back a command-line flag.
func (f *Family) Set(s string) error {
	v, err := ParseFamily(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type implements pflag.Value.
func (f *Family) Type() string { return "family" }

// UnmarshalText lets YAML and JSON configs name a family.
func (f *Family) UnmarshalText(text []byte) error { return f.Set(string(text)) }

// MarshalText is the inverse of UnmarshalText.
func (f Family) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("Family.MarshalText(%d): %w", uint8(f), ErrUnknownFamily)
	}
	return []byte(f.String()), nil
}

// SelectLoadingFamily returns the predictor-side matrix of family xKind and
// the response-side matrix of family yKind.
//
// Errors:
//   - ErrNilModel when m is nil.
//   - ErrUnknownFamily when either selector is not a declared Family.
//   - ErrMissingAttribute when the model variant does not carry the matrix
//     (the message names the attribute, e.g. "x_rotations").
func SelectLoadingFamily(m model.FittedModel, xKind, yKind Family) (x, y matrix.Matrix, err error) {
	const op = "SelectLoadingFamily"
	if m == nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrNilModel)
	}
	xf, ok := families[xKind]
	if !ok {
		return nil, nil, fmt.Errorf("%s: x side %v: %w", op, xKind, ErrUnknownFamily)
	}
	yf, ok := families[yKind]
	if !ok {
		return nil, nil, fmt.Errorf("%s: y side %v: %w", op, yKind, ErrUnknownFamily)
	}

	if x = xf.x(m); x == nil {
		return nil, nil, fmt.Errorf("%s: %s: %w", op, xf.xName, ErrMissingAttribute)
	}
	if y = yf.y(m); y == nil {
		return nil, nil, fmt.Errorf("%s: %s: %w", op, yf.yName, ErrMissingAttribute)
	}

	return x, y, nil
}
