// SPDX-License-Identifier: MIT

package layout

import "github.com/katalvlaran/plsviz/matrix"

// ErrIndexOutOfRange indicates a component index outside the matrix columns.
var ErrIndexOutOfRange = matrix.ErrOutOfRange
