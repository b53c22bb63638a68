// SPDX-License-Identifier: MIT
// Package matrix: constructors, structural predicates and facades.
//
// Purpose:
//   - Provide intention-revealing factories for the special shapes (zeros,
//     identity, diagonal, Vandermonde, vectors). There is one concrete type,
//     Dense; "flavours" are runtime predicates rather than subtypes.
//   - Avoid logic duplication: facades compose the canonical kernels.
//
// AI-Hints:
//   - Predicates use the matrix epsilon; build with WithEpsilon to relax them.

package matrix

import (
	"math"
)

const (
	opNewZeros     = "NewZeros"
	opNewIdentity  = "NewIdentity"
	opNewDiagonal  = "NewDiagonal"
	opNewVander    = "NewVandermonde"
	opNewVector    = "NewVector"
	opSymmetrize   = "Symmetrize"
	opRowSums      = "RowSums"
	opColSums      = "ColSums"
	opIdentityLike = "IdentityLike"
)

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized rows×cols matrix.
// Errors: ErrInvalidDimensions (rows ≤ 0 or cols ≤ 0).
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewZeros, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return newDense(rows, cols, o.eps), nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions (n ≤ 0).
//
// AI-Hints: Use as a neutral element for inverses and orthogonality checks.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(opNewIdentity, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return newIdentity(n, o.eps), nil
}

// NewDiagonal returns the square matrix with values on the main diagonal.
// Errors: ErrInvalidDimensions (empty values), ErrNaNInf under the validating policy.
func NewDiagonal(values []float64, opts ...Option) (*Dense, error) {
	n := len(values)
	if n == 0 {
		return nil, matrixErrorf(opNewDiagonal, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	d := newDense(n, n, o.eps)
	for i, v := range values {
		if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return nil, matrixErrorf(opNewDiagonal, denseErrorf(ctxAt, i, i, ErrNaNInf))
		}
		d.data[i*n+i] = v
	}

	return d, nil
}

// NewVandermonde returns the len(xs)×cols matrix V[i][j] = xs[i]^j.
// Errors: ErrInvalidDimensions (no points or cols ≤ 0), ErrNaNInf.
//
// AI-Hints:
//   - Solve(V, ys) with cols == len(xs) interpolates a polynomial through (xs, ys).
func NewVandermonde(xs []float64, cols int, opts ...Option) (*Dense, error) {
	if len(xs) == 0 || cols <= 0 {
		return nil, matrixErrorf(opNewVander, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	v := newDense(len(xs), cols, o.eps)
	var i, j int
	var pow float64
	for i = 0; i < len(xs); i++ {
		if o.validateNaNInf && (math.IsNaN(xs[i]) || math.IsInf(xs[i], 0)) {
			return nil, matrixErrorf(opNewVander, denseErrorf(ctxAt, i, 0, ErrNaNInf))
		}
		pow = 1.0
		for j = 0; j < cols; j++ {
			v.data[i*cols+j] = pow
			pow *= xs[i]
		}
	}

	return v, nil
}

// NewColumnVector returns the len(values)×1 matrix holding values.
func NewColumnVector(values []float64, opts ...Option) (*Dense, error) {
	res, err := NewFromFlat(len(values), 1, values, opts...)
	if err != nil {
		return nil, matrixErrorf(opNewVector, err)
	}

	return res, nil
}

// NewRowVector returns the 1×len(values) matrix holding values.
func NewRowVector(values []float64, opts ...Option) (*Dense, error) {
	res, err := NewFromFlat(1, len(values), values, opts...)
	if err != nil {
		return nil, matrixErrorf(opNewVector, err)
	}

	return res, nil
}

// IdentityLike returns I_n for a square m, carrying m's epsilon.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return newIdentity(m.r, m.eps), nil
}

// ---------- Structural predicates (tolerance = matrix epsilon) ----------

// IsSymmetric reports whether m is square with |m[i,j] − m[j,i]| ≤ ε.
func (m *Dense) IsSymmetric() bool {
	return m != nil && ValidateSymmetric(m, m.eps) == nil
}

// IsDiagonal reports whether m is square with every off-diagonal |m[i,j]| ≤ ε.
func (m *Dense) IsDiagonal() bool {
	return m != nil && m.r == m.c && maxOffDiagonal(m) <= m.eps
}

// IsUpperTriangular reports whether m is square with |m[i,j]| ≤ ε for i > j.
func (m *Dense) IsUpperTriangular() bool {
	return m.isTriangular(func(i, j int) bool { return i > j })
}

// IsLowerTriangular reports whether m is square with |m[i,j]| ≤ ε for i < j.
func (m *Dense) IsLowerTriangular() bool {
	return m.isTriangular(func(i, j int) bool { return i < j })
}

// isTriangular checks that every entry selected by mustVanish is within ε of zero.
func (m *Dense) isTriangular(mustVanish func(i, j int) bool) bool {
	if m == nil || m.r != m.c {
		return false
	}
	ok := true
	m.Do(func(i, j int, v float64) bool {
		if mustVanish(i, j) && math.Abs(v) > m.eps {
			ok = false
		}

		return ok
	})

	return ok
}

// IsIdentity reports whether m is I_n within ε.
func (m *Dense) IsIdentity() bool {
	return m != nil && m.r == m.c && leftBlockIsIdentity(m, m.r, m.eps)
}

// ---------- Convenience facades (compositions only) ----------

// Symmetrize returns (m + mᵀ)/2. Deterministic composition: Transpose → Add → Scale.
// Errors: ErrNilMatrix, ErrNonSquare.
//
// AI-Hints: Repairs asymmetry drift before Jacobi.
func Symmetrize(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}

	return Scale(sum, 0.5)
}

// RowSums returns r[i] = Σ_j m[i,j] via MatVec(m, ones).
// Errors: ErrNilMatrix.
func RowSums(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return MatVec(m, ones(m.c))
}

// ColSums returns c[j] = Σ_i m[i,j] via MatVec(mᵀ, ones).
// Errors: ErrNilMatrix.
func ColSums(m *Dense) ([]float64, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	return MatVec(mt, ones(mt.c))
}

// ones returns a vector of n ones.
func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1.0
	}

	return out
}
