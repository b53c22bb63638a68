// SPDX-License-Identifier: MIT
// Package matrix provides the elementary algebra over Dense: element-wise
// addition, subtraction, Hadamard product, matrix multiplication, transpose,
// scalar scaling/division, matrix-vector product and trace. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches. Operands are never mutated; every result is a fresh Dense.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Factorizations and solvers live in dedicated kernel files (impl_rref.go,
//     impl_determinant.go, impl_lu.go, impl_qr.go, impl_eigen.go).
//   - All kernels use central validators and wrap via matrixErrorf.

package matrix

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for substitutions and dot products.
const ZeroSum = 0.0

// ZeroPivot is the exact-zero sentinel for the LU pivot test.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opTranspose    = "Transpose"
	opScale        = "Scale"
	opScalarDivide = "ScalarDivide"
	opHadamard     = "Hadamard"
	opMatVec       = "MatVec"
	opTrace        = "Trace"
	opRREF         = "RREF"
	opDet          = "Det"
	opInverse      = "Inverse"
	opSolve        = "Solve"
	opLU           = "LU"
	opPivotize     = "Pivotize"
	opQR           = "QR"
	opJacobi       = "Jacobi"
	opPower        = "PowerIteration"
	opClosedForm   = "EigenvaluesClosedForm"
	opAugment      = "Augment"
)

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the flat loop.
//
// Determinism:
//   - Single flat slice walk 0..(r*c−1).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDense(a.r, a.c, a.eps)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides, skipping zero A[i,k].
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c), carrying A's epsilon.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order i→k→j.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies
//     (permutation and triangular factors benefit the most).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := newDense(aRows, bCols, a.eps)
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - If you only need Aᵀ*x, avoid materializing Aᵀ in tight loops.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res := newDense(cols, rows, m.eps) // dims flipped
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j] // data[i*cols + j] → res.data[j*rows + i]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j] (scalar multiply).
// alpha = 0 yields an explicit zero matrix with the same shape.
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newDense(m.r, m.c, m.eps)
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// ScalarDivide returns m / d element-wise.
// Errors: ErrNilMatrix, ErrInvalidArgument when d == 0.
// Complexity: Time O(r*c), Space O(r*c).
func ScalarDivide(m *Dense, d float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScalarDivide, err)
	}
	if d == 0 {
		return nil, matrixErrorf(opScalarDivide, ErrInvalidArgument)
	}

	res := newDense(m.r, m.c, m.eps)
	for idx, v := range m.data {
		res.data[idx] = v / d
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Hadamard ≠ matrix multiplication; use Mul for A×B.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: Time O(r*c), Space O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	res := newDense(a.r, a.c, a.eps)
	for idx := range res.data {
		res.data[idx] = a.data[idx] * b.data[idx]
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, m.r)
	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = ZeroSum
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Trace returns Σ A[i,i] for a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n).
func Trace(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	sum := ZeroSum
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// Trace is the method form of the package-level Trace.
func (m *Dense) Trace() (float64, error) { return Trace(m) }

// T returns the transpose; the receiver is never nil-checked beyond Transpose.
func (m *Dense) T() (*Dense, error) { return Transpose(m) }
