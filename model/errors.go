// SPDX-License-Identifier: MIT

package model

import "errors"

var (
	// ErrNilCoefficients indicates that a model was built without a coefficient matrix.
	ErrNilCoefficients = errors.New("model: coefficient matrix is nil")

	// ErrInvalidDocument indicates that a model document is structurally incomplete
	// (missing names, missing coefficients, sample with mismatched parts).
	ErrInvalidDocument = errors.New("model: invalid model document")
)
