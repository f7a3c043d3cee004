// SPDX-License-Identifier: MIT

package adapter

import (
	"errors"

	"github.com/katalvlaran/plsviz/matrix"
)

var (
	// ErrShapeMismatch indicates that a name list disagrees with a matrix dimension.
	ErrShapeMismatch = matrix.ErrDimensionMismatch

	// ErrIndexOutOfRange indicates a response or component index outside the matrix.
	ErrIndexOutOfRange = matrix.ErrOutOfRange

	// ErrMissingAttribute indicates that the model variant lacks the requested matrix.
	ErrMissingAttribute = errors.New("adapter: model attribute is missing")

	// ErrUnknownFamily indicates a loading-family selector outside {loadings, weights, rotations}.
	ErrUnknownFamily = errors.New("adapter: unknown loading family")

	// ErrNilModel indicates that no model was supplied.
	ErrNilModel = errors.New("adapter: model is nil")
)
