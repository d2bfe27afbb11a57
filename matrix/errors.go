// SPDX-License-Identifier: MIT
// Sentinel errors of the rational matrix kernels. Operations wrap them with
// their name and callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or ragged input rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilEntry indicates a nil *big.Rat handed to Set or FromRows.
	ErrNilEntry = errors.New("matrix: nil entry")
)
