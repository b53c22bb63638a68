// SPDX-License-Identifier: MIT

package ring

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidDimensions indicates a grid with no rows or no columns.
	ErrInvalidDimensions = errors.New("ring: dimensions must be > 0")

	// ErrDimensionMismatch indicates a ragged grid.
	ErrDimensionMismatch = errors.New("ring: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("ring: matrix is not square")

	// ErrOutOfRange indicates an index outside the matrix bounds.
	ErrOutOfRange = errors.New("ring: index out of range")
)
