// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/floats"
)

const opDot = "Dot"

// Dot returns Σ x[i]·y[i].
// Errors: ErrNilMatrix (nil slice), ErrDimensionMismatch (length mismatch).
func Dot(x, y []float64) (float64, error) {
	if err := ValidateVecLen(x, len(y)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	if y == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}

	return floats.Dot(x, y), nil
}

// Norm returns the Euclidean norm ‖x‖₂ (0 for an empty slice).
func Norm(x []float64) float64 {
	if len(x) == 0 {
		return NormZero
	}

	return floats.Norm(x, 2)
}

// FrobeniusNorm returns sqrt(Σ m[i,j]²).
// Errors: ErrNilMatrix.
func FrobeniusNorm(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf("FrobeniusNorm", err)
	}

	return floats.Norm(m.data, 2), nil
}
