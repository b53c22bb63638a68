// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "github.com/cockroachdb/errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap sentinels with their operation tag
// via matrixErrorf (errors.Wrap), which keeps errors.Is matching intact and
// attaches a stack trace for diagnostics.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> structural violations
// (square, symmetric, size) -> numeric failures (singular, convergence).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that an input grid carries no rows / no columns.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public accessors (At/Row/Col) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, Mul where a.Cols != b.Rows, or a ragged grid.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured numeric policy (epsilon).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when an inverse or a solve is requested for a matrix
	// whose determinant is zero within tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidArgument marks a zero multiplier/divisor where a non-zero one is required.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrUnsupportedSize is returned by the closed-form eigenvalue method outside sizes 2..4.
	ErrUnsupportedSize = errors.New("matrix: unsupported matrix size")

	// ErrTooSmall is returned by Jacobi on a 1x1 input.
	ErrTooSmall = errors.New("matrix: matrix too small")

	// ErrNotConverged indicates that an iterative eigen routine exhausted its
	// iteration budget before reaching the tolerance.
	ErrNotConverged = errors.New("matrix: iteration did not converge")
)

// ErrNotSymmetric names the symmetry violation the way callers of Jacobi expect.
// It aliases ErrAsymmetry so errors.Is matches either name.
var ErrNotSymmetric = ErrAsymmetry

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// matrixErrorf wraps err with an operation tag, preserving the original sentinel.
// The wrapper keeps a stable "Op: underlying" message shape for uniform reporting.
// errors.Wrap returns nil for a nil cause, so callers may pass through blindly.
func matrixErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}
