// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Structure).

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
// AI-Hints: Use before determinant, inverse, factorization or spectral methods.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is rejected as ErrNilMatrix (the "nil argument" sentinel).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRowIndex ensures 0 ≤ i < m.Rows().
func ValidateRowIndex(m *Dense, i int) error {
	if i < 0 || i >= m.r {
		return errors.Wrapf(ErrOutOfRange, "ValidateRowIndex: %d not in [0,%d)", i, m.r)
	}

	return nil
}

// ValidateColIndex ensures 0 ≤ j < m.Cols().
func ValidateColIndex(m *Dense, j int) error {
	if j < 0 || j >= m.c {
		return errors.Wrapf(ErrOutOfRange, "ValidateColIndex: %d not in [0,%d)", j, m.c)
	}

	return nil
}

// ValidateTolerance rejects NaN/Inf tolerances and normalizes negatives to |tol|.
func ValidateTolerance(tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, validatorErrorf("ValidateTolerance", ErrNaNInf)
	}

	return math.Abs(tol), nil
}

// ValidateSymmetric checks A is square and symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Complexity: O(n^2). Space: O(1).
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrAsymmetry.
// AI-Hints: Use for Jacobi; symmetrize noisy inputs first (Symmetrize).
func ValidateSymmetric(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	tol, err := ValidateTolerance(tol)
	if err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}

	n := m.r
	var i, j int
	for i = 0; i < n; i++ { // fixed row loop
		for j = i + 1; j < n; j++ { // upper triangle only
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// IsZeroOffDiagonal reports whether max_{i≠j} |A[i,j]| ≤ tol.
// Useful to early-exit Jacobi when the matrix is already (near) diagonal.
// Complexity: O(n²).
func IsZeroOffDiagonal(m *Dense, tol float64) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, err
	}
	tol, err := ValidateTolerance(tol)
	if err != nil {
		return false, err
	}

	return maxOffDiagonal(m) <= tol, nil
}

// maxOffDiagonal returns max_{i≠j} |A[i,j]| for a square matrix.
func maxOffDiagonal(m *Dense) float64 {
	n := m.r
	best := NormZero
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if v = math.Abs(m.data[i*n+j]); v > best {
				best = v
			}
		}
	}

	return best
}
