// SPDX-License-Identifier: MIT

// Package matrix - Gauss–Jordan elimination to reduced row-echelon form.
//
// Purpose:
//   - Reduce any rectangular matrix to RREF and report the bookkeeping the
//     determinant needs: the number of row interchanges and the product of
//     the reciprocal pivots the pivot rows were divided by.
//
// Pivot policy:
//   - The FIRST row (scanning down from the current pivot row) whose entry in
//     the lead column exceeds ε in magnitude is taken. This is not a
//     largest-magnitude search; determinant results depend on it.

package matrix

import "math"

// RREF returns the reduced row-echelon form of m (any shape).
// The result is memoized on m; the returned struct is a private copy,
// while Reduced itself is an immutable Dense shared with the cache.
// Errors: ErrNilMatrix.
func RREF(m *Dense) (*RREFResult, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}

	return m.RREF()
}

// RREF is the cached method form of the package-level RREF.
// The pivot tolerance is the epsilon m was built with.
func (m *Dense) RREF() (*RREFResult, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	res, err := m.cache.rref.get(func() (*RREFResult, error) {
		logCacheFill(opRREF, m)

		return reduce(m, m.eps), nil
	})
	if err != nil {
		return nil, err
	}
	out := *res

	return &out, nil
}

// reduce runs Gauss–Jordan elimination on a scratch copy of m.
// Implementation:
//   - Stage 1: lead := 0; for each pivot row r, stop once lead reaches cols.
//   - Stage 2: scan rows r..m-1 for the first |w[i,lead]| > eps; when the
//     column is exhausted, advance lead and rescan from row r.
//   - Stage 3: move the pivot row up (count only real moves), divide it by
//     its leading value (Scale *= 1/lead), eliminate lead in every other row.
//
// Determinism:
//   - Fixed scan order; ties cannot arise (the first qualifying row wins).
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c) for the scratch copy.
func reduce(m *Dense, eps float64) *RREFResult {
	w := m.clone()
	rows, cols := w.r, w.c
	res := &RREFResult{Scale: 1.0}

	var (
		r, i, k int
		lead    int
		pivot   float64
		f       float64
	)
rowLoop:
	for r = 0; r < rows; r++ {
		if lead >= cols {
			break
		}
		i = r
		for math.Abs(w.data[i*cols+lead]) <= eps {
			i++
			if i == rows {
				// column exhausted below r: move right, rescan from r
				i = r
				lead++
				if lead == cols {
					break rowLoop
				}
			}
		}
		if i != r {
			w.swapRows(i, r)
			res.Swaps++
		}

		pivot = w.data[r*cols+lead]
		w.divRow(r, pivot)
		res.Scale *= 1 / pivot

		for k = 0; k < rows; k++ {
			if k == r {
				continue
			}
			f = w.data[k*cols+lead]
			if f != 0 {
				w.axpyRow(k, r, -f)
			}
		}
		lead++
	}
	res.Reduced = w

	return res
}
