// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) so the
//     statistics and sanitize facades share one tight loop each.
//   - Provide the tolerance comparisons AllClose / Equal.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1) over the row-major buffer.
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import "math"

const (
	opBroadcast     = "broadcast"
	opReplaceInfNaN = "ReplaceInfNaN"
	opClip          = "Clip"
	opAllClose      = "AllClose"
)

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
// AI-Hint: Use for column-centering and z-scoring.
func ewBroadcastSubCols(x *Dense, colMeans []float64) (*Dense, error) {
	if err := ValidateVecLen(colMeans, x.c); err != nil {
		return nil, matrixErrorf(opBroadcast, err)
	}

	return x.Map(func(_, j int, v float64) float64 { return v - colMeans[j] }), nil
}

// ewBroadcastSubRows computes out[i,j] = X[i,j] - rowMeans[i].
func ewBroadcastSubRows(x *Dense, rowMeans []float64) (*Dense, error) {
	if err := ValidateVecLen(rowMeans, x.r); err != nil {
		return nil, matrixErrorf(opBroadcast, err)
	}

	return x.Map(func(i, _ int, v float64) float64 { return v - rowMeans[i] }), nil
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
func ewScaleCols(x *Dense, scale []float64) (*Dense, error) {
	if err := ValidateVecLen(scale, x.c); err != nil {
		return nil, matrixErrorf(opBroadcast, err)
	}

	return x.Map(func(_, j int, v float64) float64 { return v * scale[j] }), nil
}

// ewScaleRows computes out[i,j] = X[i,j] * scale[i].
func ewScaleRows(x *Dense, scale []float64) (*Dense, error) {
	if err := ValidateVecLen(scale, x.r); err != nil {
		return nil, matrixErrorf(opBroadcast, err)
	}

	return x.Map(func(i, _ int, v float64) float64 { return v * scale[i] }), nil
}

// ReplaceInfNaN returns a copy of m where any {±Inf, NaN} is replaced by val.
// Policy: val must be finite; otherwise ErrNaNInf is returned.
// Time: O(r*c). Space: O(r*c). Deterministic.
//
// AI-Hints:
//   - Matrices built with WithNoValidateNaNInf can be sanitized here before
//     statistics or solvers.
func ReplaceInfNaN(m *Dense, val float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReplaceInfNaN, err)
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return nil, matrixErrorf(opReplaceInfNaN, ErrNaNInf)
	}

	return m.Map(func(_, _ int, v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return val
		}

		return v
	}), nil
}

// Clip returns a copy of m with elements clamped into [lo, hi].
// Policy: if lo > hi, bounds are swapped. NaN bounds are rejected (ErrNaNInf).
func Clip(m *Dense, lo, hi float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opClip, err)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, matrixErrorf(opClip, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return m.Map(func(_, _ int, v float64) float64 {
		switch {
		case v < lo:
			return lo
		case v > hi:
			return hi
		}

		return v
	}), nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances → ErrNaNInf.
//   - NaN never matches; equal infinities match.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	rtol, err := ValidateTolerance(rtol)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if atol, err = ValidateTolerance(atol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for idx := range a.data {
		av, bv = a.data[idx], b.data[idx]
		if av == bv { // covers equal infinities
			continue
		}
		if math.IsNaN(av) || math.IsNaN(bv) || math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// Equal reports whether a and b have the same shape and agree element-wise
// within the epsilon of a (absolute tolerance). Nil inputs are never equal.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return false
	}
	ok, err := AllClose(a, b, 0, a.eps)

	return err == nil && ok
}
