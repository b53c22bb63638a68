// SPDX-License-Identifier: MIT

package ring

import "github.com/cockroachdb/errors"

// Matrix is an immutable rectangular grid of ring elements.
type Matrix[T Element[T]] struct {
	r, c int
	data [][]T
}

// New builds a Matrix from a rectangular grid (rows are copied).
// Errors: ErrInvalidDimensions (empty), ErrDimensionMismatch (ragged rows).
func New[T Element[T]](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, "New")
	}

	r, c := len(rows), len(rows[0])
	data := make([][]T, r)
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, errors.Wrapf(ErrDimensionMismatch, "New: row %d has %d entries, want %d", i, len(rows[i]), c)
		}
		data[i] = make([]T, c)
		copy(data[i], rows[i])
	}

	return &Matrix[T]{r: r, c: c, data: data}, nil
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.c }

// At returns the element at (i, j).
// Errors: ErrOutOfRange.
func (m *Matrix[T]) At(i, j int) (T, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		var zero T

		return zero, errors.Wrapf(ErrOutOfRange, "At(%d,%d)", i, j)
	}

	return m.data[i][j], nil
}

// Transpose returns mᵀ.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	data := make([][]T, m.c)
	for j := 0; j < m.c; j++ {
		data[j] = make([]T, m.r)
		for i := 0; i < m.r; i++ {
			data[j][i] = m.data[i][j]
		}
	}

	return &Matrix[T]{r: m.c, c: m.r, data: data}
}

// Det returns the determinant by cofactor expansion along the first row.
// Implementation:
//   - 1x1: the entry; 2x2: ad − bc.
//   - n ≥ 3: Σ_j (−1)^j · m[0][j] · det(minor(0, j)), zero entries skipped.
//
// Only Add, Sub and Mul are used, so the result is exact in the element ring.
// Errors: ErrNonSquare.
func (m *Matrix[T]) Det() (T, error) {
	if m.r != m.c {
		var zero T

		return zero, errors.Wrap(ErrNonSquare, "Det")
	}

	return cofactorDet(m.data), nil
}

// cofactorDet expands along row 0; data is square and non-empty.
func cofactorDet[T Element[T]](data [][]T) T {
	n := len(data)
	switch n {
	case 1:
		return data[0][0]
	case 2:
		return data[0][0].Mul(data[1][1]).Sub(data[0][1].Mul(data[1][0]))
	}

	var (
		acc     T
		started bool
		term    T
	)
	for j := 0; j < n; j++ {
		if data[0][j].IsZero() {
			continue
		}
		term = data[0][j].Mul(cofactorDet(minor(data, 0, j)))
		switch {
		case !started:
			acc, started = term, true
			if j%2 == 1 {
				acc = data[0][j].Sub(data[0][j]).Sub(acc) // 0 − term
			}
		case j%2 == 0:
			acc = acc.Add(term)
		default:
			acc = acc.Sub(term)
		}
	}
	if !started {
		return data[0][0] // the whole first row is zero
	}

	return acc
}

// minor returns data without row skipRow and column skipCol.
func minor[T any](data [][]T, skipRow, skipCol int) [][]T {
	n := len(data)
	out := make([][]T, 0, n-1)
	for i := 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		row := make([]T, 0, n-1)
		for j := 0; j < n; j++ {
			if j != skipCol {
				row = append(row, data[i][j])
			}
		}
		out = append(out, row)
	}

	return out
}
