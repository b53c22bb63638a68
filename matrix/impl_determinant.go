// SPDX-License-Identifier: MIT

// Package matrix - determinant, inverse and linear solve.
//
// Purpose:
//   - Det: closed forms for 1x1, 2x2, 3x3; n ≥ 4 recovers the determinant
//     from the cached RREF as (−1)^Swaps · ∏diag(Reduced) / Scale.
//   - Inverse: 1/a for 1x1, the adjugate closed form for 2x2, and Gauss–Jordan
//     on the augmented [A | I] for n ≥ 3.
//   - Solve / SolveMatrix: Gauss–Jordan on the augmented [A | b].
//
// Caching:
//   - Det and Inverse are memoized on the receiver (errors included).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.

package matrix

import "math"

// Det returns the determinant of a square matrix.
// Implementation:
//   - Stage 1: validate square.
//   - Stage 2: n ≤ 3 closed forms; n ≥ 4 via the cached RREF result.
//
// Returns:
//   - float64: det(m). A singular matrix yields 0 (not an error).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Notes:
//   - The RREF path divides every pivot row by its leading value; dividing the
//     diagonal product by Scale (the product of those reciprocals) restores
//     the magnitude, and (−1)^Swaps restores the sign.
//
// Complexity:
//   - O(1) for n ≤ 3, O(n³) otherwise; O(1) on repeated calls (cached).
func Det(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return m.cache.det.get(func() (float64, error) {
		logCacheFill(opDet, m)

		return determinant(m)
	})
}

// Det is the method form of the package-level Det.
func (m *Dense) Det() (float64, error) { return Det(m) }

// determinant dispatches on size; m is known to be square.
func determinant(m *Dense) (float64, error) {
	d := m.data
	switch m.r {
	case 1:
		return d[0], nil
	case 2:
		return d[0]*d[3] - d[1]*d[2], nil
	case 3:
		a, b, c := d[0], d[1], d[2]
		e, f, g := d[3], d[4], d[5]
		h, i, j := d[6], d[7], d[8]

		return a*(f*j-g*i) - b*(e*j-g*h) + c*(e*i-f*h), nil
	}

	res, err := m.RREF()
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	prod := 1.0
	for _, v := range res.Reduced.diag() {
		prod *= v
	}
	if res.Swaps%2 == 1 {
		prod = -prod
	}

	return prod / res.Scale, nil
}

// Inverse returns A⁻¹ for a square nonsingular matrix.
// Implementation:
//   - 1x1: 1/a; 2x2: (1/det)·[[d, −b], [−c, a]].
//   - n ≥ 3: RREF([A | I]); the left block must reduce to I, the right block is A⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular: |a| or |det| ≤ ε for n ≤ 2; left block ≠ I for n ≥ 3.
//
// Determinism:
//   - Same pivot policy as RREF (first row above ε).
//
// Complexity:
//   - O(n³) time, O(n²) space; cached on the receiver.
//
// AI-Hints:
//   - Prefer Solve for a single right-hand side; it avoids forming A⁻¹.
func Inverse(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return m.cache.inv.get(func() (*Dense, error) {
		logCacheFill(opInverse, m)

		return inverse(m)
	})
}

// Inverse is the method form of the package-level Inverse.
func (m *Dense) Inverse() (*Dense, error) { return Inverse(m) }

func inverse(m *Dense) (*Dense, error) {
	n, eps := m.r, m.eps
	d := m.data
	switch n {
	case 1:
		if math.Abs(d[0]) <= eps {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		res := newDense(1, 1, eps)
		res.data[0] = 1 / d[0]

		return res, nil
	case 2:
		det := d[0]*d[3] - d[1]*d[2]
		if math.Abs(det) <= eps {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		res := newDense(2, 2, eps)
		res.data[0] = d[3] / det
		res.data[1] = -d[1] / det
		res.data[2] = -d[2] / det
		res.data[3] = d[0] / det

		return res, nil
	}

	red, err := reduceAugmented(m, newIdentity(n, eps))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return red, nil
}

// Solve returns x with A·x = b for a square nonsingular A.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) ≠ n), ErrSingular.
// Complexity: O(n³).
func Solve(a *Dense, b []float64) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	rhs := newDense(a.r, 1, a.eps)
	copy(rhs.data, b)
	x, err := reduceAugmented(a, rhs)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x.data, nil
}

// Solve is the method form of the package-level Solve.
func (m *Dense) Solve(b []float64) ([]float64, error) { return Solve(m, b) }

// SolveMatrix returns X with A·X = B, solving every column of B at once.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (B.Rows ≠ n), ErrSingular.
func SolveMatrix(a, b *Dense) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if b.r != a.r {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}

	x, err := reduceAugmented(a, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// Augment concatenates a and b side by side into [a | b].
// Errors: ErrNilMatrix, ErrDimensionMismatch (row counts differ).
// Complexity: O(r*(ca+cb)).
func Augment(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if a.r != b.r {
		return nil, matrixErrorf(opAugment, ErrDimensionMismatch)
	}

	return augment(a, b), nil
}

// augment builds [a | b]; callers guarantee a.r == b.r.
func augment(a, b *Dense) *Dense {
	cols := a.c + b.c
	res := newDense(a.r, cols, a.eps)
	for i := 0; i < a.r; i++ {
		copy(res.data[i*cols:i*cols+a.c], a.data[i*a.c:(i+1)*a.c])
		copy(res.data[i*cols+a.c:(i+1)*cols], b.data[i*b.c:(i+1)*b.c])
	}

	return res
}

// reduceAugmented reduces [a | b] and returns the right block, failing with
// ErrSingular when the left block does not reduce to the identity within a.eps.
func reduceAugmented(a, b *Dense) (*Dense, error) {
	n := a.r
	red := reduce(augment(a, b), a.eps).Reduced
	if !leftBlockIsIdentity(red, n, a.eps) {
		return nil, ErrSingular
	}

	cols := red.c
	res := newDense(n, b.c, a.eps)
	for i := 0; i < n; i++ {
		copy(res.data[i*b.c:(i+1)*b.c], red.data[i*cols+n:(i+1)*cols])
	}

	return res, nil
}

// leftBlockIsIdentity reports whether the leading n×n block of w is I within eps.
func leftBlockIsIdentity(w *Dense, n int, eps float64) bool {
	var i, j int
	var want float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if math.Abs(w.data[i*w.c+j]-want) > eps {
				return false
			}
		}
	}

	return true
}
