// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide common statistical transforms (centering, normalization, covariance,
//     correlation) over column samples: rows are observations, columns variables.
//   - Column means and standard deviations come from gonum/stat; the matrix
//     products reuse the canonical kernels (Transpose/Mul/Scale).
//
// Exposed API:
//   - CenterColumns(X)   -> (Xc, means)         // subtract per-column mean
//   - CenterRows(X)      -> (Xc, means)         // subtract per-row mean
//   - NormalizeRowsL2(X) -> (Y, norms)          // L2 row normalization (zero rows unchanged)
//   - Covariance(X)      -> (Cov, means)        // sample covariance: (Xcᵀ Xc)/(r-1)
//   - Correlation(X)     -> (Corr, means, stds) // Pearson; std=0 → zeroed column
//
// AI-Hints:
//   - Covariance and Correlation are exactly symmetric and feed Jacobi directly.

package matrix

import (
	"gonum.org/v1/gonum/stat"
)

const (
	opCenterColumns   = "CenterColumns"
	opCenterRows      = "CenterRows"
	opNormalizeRowsL2 = "NormalizeRowsL2"
	opCovariance      = "Covariance"
	opCorrelation     = "Correlation"
)

// columnMoments returns per-column mean and sample standard deviation.
// withStd=false skips the deviation pass.
func columnMoments(x *Dense, withStd bool) (means, stds []float64) {
	means = make([]float64, x.c)
	if withStd {
		stds = make([]float64, x.c)
	}
	col := make([]float64, x.r) // reused column buffer
	var i, j int
	for j = 0; j < x.c; j++ {
		for i = 0; i < x.r; i++ {
			col[i] = x.data[i*x.c+j]
		}
		if withStd {
			means[j], stds[j] = stat.MeanStdDev(col, nil)
		} else {
			means[j] = stat.Mean(col, nil)
		}
	}

	return means, stds
}

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: column means via stat.Mean.
//   - Stage 3: ewBroadcastSubCols builds the centered copy.
//
// Returns:
//   - *Dense: centered copy (r×c).
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(c) means).
//
// AI-Hints:
//   - For repeated centering, reuse the returned means to un-center later.
func CenterColumns(x *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	means, _ := columnMoments(x, false)
	xc, err := ewBroadcastSubCols(x, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return xc, means, nil
}

// CenterRows subtracts the per-row mean from every element.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func CenterRows(x *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	means := make([]float64, x.r)
	for i := 0; i < x.r; i++ {
		means[i] = stat.Mean(x.data[i*x.c:(i+1)*x.c], nil)
	}
	xc, err := ewBroadcastSubRows(x, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}

	return xc, means, nil
}

// NormalizeRowsL2 scales every row to unit Euclidean norm.
// Rows of norm 0 are left unchanged. Returns the original norms.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func NormalizeRowsL2(x *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}
	norms := make([]float64, x.r)
	scale := make([]float64, x.r)
	for i := 0; i < x.r; i++ {
		norms[i] = Norm(x.data[i*x.c : (i+1)*x.c])
		scale[i] = 1.0
		if norms[i] > 0 {
			scale[i] = 1.0 / norms[i]
		}
	}
	y, err := ewScaleRows(x, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}

	return y, norms, nil
}

// Covariance returns the sample covariance of the columns of X.
// Implementation:
//   - Stage 1: validate; require r ≥ 2 observations.
//   - Stage 2: Xc := CenterColumns(X); Cov := (Xcᵀ·Xc) / (r−1).
//
// Returns:
//   - *Dense: c×c symmetric covariance.
//   - []float64: column means.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r < 2).
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Covariance(x *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if x.r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	xc, means, err := CenterColumns(x)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := gram(xc, 1.0/float64(x.r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return cov, means, nil
}

// Correlation returns the Pearson correlation of the columns of X.
// Columns with zero standard deviation produce zero rows/columns (and a zero
// diagonal entry) rather than NaN.
//
// Returns:
//   - *Dense: c×c symmetric correlation.
//   - []float64: column means; []float64: sample standard deviations.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r < 2).
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Correlation(x *Dense) (*Dense, []float64, []float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	if x.r < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrDimensionMismatch)
	}

	means, stds := columnMoments(x, true)
	xc, err := ewBroadcastSubCols(x, means)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	invStd := make([]float64, x.c)
	for j, s := range stds {
		if s > 0 {
			invStd[j] = 1.0 / s
		}
	}
	z, err := ewScaleCols(xc, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	corr, err := gram(z, 1.0/float64(x.r-1))
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	return corr, means, stds, nil
}

// gram returns f·(xᵀ·x).
func gram(x *Dense, f float64) (*Dense, error) {
	xt, err := Transpose(x)
	if err != nil {
		return nil, err
	}
	g, err := Mul(xt, x)
	if err != nil {
		return nil, err
	}

	return Scale(g, f)
}
