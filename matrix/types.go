// SPDX-License-Identifier: MIT

// Package matrix: result types and the write-once cache cell.
// This file intentionally contains ONLY types returned by kernels plus the
// lazy memoization primitive used by Dense. Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

import "sync"

// lazy is a write-once cell: compute runs at most once per instance, and its
// value AND error are kept. A cached error is replayed without recomputation,
// so "not yet computed" and "computed, failed" stay distinct states.
// Safe for concurrent readers; the zero value is ready to use.
type lazy[T any] struct {
	once sync.Once
	val  T
	err  error
}

// get returns the memoized result, computing it on first use.
func (l *lazy[T]) get(compute func() (T, error)) (T, error) {
	l.once.Do(func() { l.val, l.err = compute() })

	return l.val, l.err
}

// denseCache groups the memoized derived results of one Dense.
// The cache is never invalidated because Dense is immutable.
type denseCache struct {
	rref lazy[*RREFResult]
	det  lazy[float64]
	inv  lazy[*Dense]
	lu   lazy[*LUResult]
}

// RREFResult is the outcome of Gauss–Jordan elimination.
//   - Reduced: the reduced row-echelon form.
//   - Swaps:   number of row interchanges actually performed.
//   - Scale:   product of the reciprocal pivots the pivot rows were multiplied by.
//
// Swaps and Scale exist so Det can recover sign and magnitude from the reduced
// form: det = (−1)^Swaps · ∏diag(Reduced) / Scale.
type RREFResult struct {
	Reduced *Dense
	Swaps   int
	Scale   float64
}

// LUResult holds a partial-pivoted factorization P·A = L·U.
//   - L: unit lower-triangular (NaN below a zero pivot, see Degenerate).
//   - U: upper-triangular.
//   - P: permutation matrix.
//   - A: the factorized matrix.
type LUResult struct {
	L, U, P, A *Dense
}

// JacobiResult carries eigenpairs of a symmetric matrix.
// Values are sorted by descending absolute value; column k of Vectors is the
// unit eigenvector of Values[k].
type JacobiResult struct {
	Values  []float64
	Vectors *Dense
}
