// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, immutable) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep the value immutable after construction: every operation returns a fresh Dense,
//     which lets derived results (RREF, Det, Inverse, LU) be memoized for the instance lifetime.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) at ingestion only.
//
// AI-Hints:
//   - Kernels operate on the flat data slice directly; external code goes through At/Row/Col.
//   - Use Induced(rows, cols) to materialize a submatrix (copy).
//   - DefaultValidateNaNInf is on; insert only finite values unless you explicitly relax it.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) copy; At: O(1); Row/Col: O(c)/O(r); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// ---------- error context tags ----------

const (
	ctxNew      = "NewDense"    // ctor tag
	ctxFlat     = "NewFromFlat" // ctor tag
	ctxAt       = "At"          // method tag used in error wrappers
	ctxRow      = "Row"         // method tag used in error wrappers
	ctxCol      = "Col"         // method tag used in error wrappers
	ctxDiagonal = "Diagonal"    // method tag used in error wrappers
	ctxInduced  = "Induced"     // ctor/tag for Dense.Induced
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return errors.Wrapf(err, "Dense.%s(%d,%d)", method, row, col)
}

// Dense is an immutable row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - eps is the tolerance the cached kernels of this instance use.
//   - cache memoizes RREF, determinant, inverse and LU (write-once cells).
//
// A Dense must not be copied by value after first use; always pass *Dense.
type Dense struct {
	r, c  int       // row and column counts
	data  []float64 // contiguous row-major storage (len == r*c)
	eps   float64   // numeric tolerance inherited by derived results
	cache denseCache
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense builds an immutable matrix from a rectangular grid.
// Implementation:
//   - Stage 1: resolve options; validate len(rows)>0 and len(rows[0])>0.
//   - Stage 2: validate every row has the same length (ragged → ErrDimensionMismatch).
//   - Stage 3: copy into a flat buffer, enforcing the finite-only policy when enabled.
//
// Behavior highlights:
//   - The grid is copied; later mutation of rows does not affect the matrix.
//
// Inputs:
//   - rows: row-major grid rows[i][j].
//   - opts: WithEpsilon, WithValidateNaNInf / WithNoValidateNaNInf.
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row).
//   - ErrDimensionMismatch (rows of different lengths).
//   - ErrNaNInf (non-finite entry under the validating policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}

	r, c := len(rows), len(rows[0])
	buf := make([]float64, r*c)
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, errors.Wrapf(ErrDimensionMismatch, "%s: row %d has %d entries, want %d", ctxNew, i, len(rows[i]), c)
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, matrixErrorf(ctxNew, denseErrorf(ctxAt, i, j, ErrNaNInf))
			}
			buf[i*c+j] = v
		}
	}

	return &Dense{r: r, c: c, data: buf, eps: o.eps}, nil
}

// NewFromFlat builds an r×c matrix from a row-major flat slice (copied).
// Errors: ErrInvalidDimensions (r<=0 or c<=0), ErrDimensionMismatch
// (len(data) != r*c), ErrNaNInf under the validating policy.
func NewFromFlat(r, c int, data []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(ctxFlat, ErrInvalidDimensions)
	}
	if len(data) != r*c {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%s: got %d values, want %d", ctxFlat, len(data), r*c)
	}
	if o.validateNaNInf {
		for idx, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(ctxFlat, denseErrorf(ctxAt, idx/c, idx%c, ErrNaNInf))
			}
		}
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: r, c: c, data: buf, eps: o.eps}, nil
}

// newDense allocates a zero r×c matrix for kernel results.
// Callers guarantee r,c > 0; results inherit the epsilon of their source.
func newDense(r, c int, eps float64) *Dense {
	return &Dense{r: r, c: c, data: make([]float64, r*c), eps: eps}
}

// newIdentity allocates I_n carrying eps.
func newIdentity(n int, eps float64) *Dense {
	id := newDense(n, n, eps)
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Epsilon reports the tolerance this matrix was built with.
func (m *Dense) Epsilon() float64 { return m.eps }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the sentinel wrapped with coordinates.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange. Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Diagonal returns a copy of the main diagonal of a square matrix.
// Errors: ErrNonSquare. Complexity: O(n).
func (m *Dense) Diagonal() ([]float64, error) {
	if m.r != m.c {
		return nil, matrixErrorf(ctxDiagonal, ErrNonSquare)
	}

	return m.diag(), nil
}

// diag copies the leading diagonal (length min(r, c)) without shape checks.
func (m *Dense) diag() []float64 {
	k := m.r
	if m.c < k {
		k = m.c
	}
	out := make([]float64, k)
	for i := 0; i < k; i++ {
		out[i] = m.data[i*m.c+i]
	}

	return out
}

// RawRowCopy returns the matrix as a freshly allocated [][]float64 grid.
// Complexity: O(r*c).
func (m *Dense) RawRowCopy() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// RawData returns a copy of the flat row-major buffer.
func (m *Dense) RawData() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// clone returns an independent copy (no cache) for kernels that need a scratch buffer.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, eps: m.eps}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed).
//
// Implementation:
//   - Stage 1: reject empty index sets (a Dense is never zero-area).
//   - Stage 2: nested loops with direct offset math; bounds-check each index.
//
// Inputs:
//   - rowsIdx: indices into [0..m.r).
//   - colsIdx: indices into [0..m.c).
//
// Returns:
//   - *Dense: independent copy with size len(rowsIdx)×len(colsIdx).
//
// Errors:
//   - ErrInvalidDimensions (empty index set), ErrOutOfRange (index outside bounds).
//
// Determinism:
//   - Fixed nested loops i→j.
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
//
// AI-Hints:
//   - RowExclude/ColumnExclude are thin compositions over Induced.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx) // result rows
	cp := len(colsIdx) // result cols
	if rp == 0 || cp == 0 {
		return nil, matrixErrorf(ctxInduced, ErrInvalidDimensions)
	}

	res := newDense(rp, cp, m.eps)
	var i, j int
	var ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, errors.Wrapf(ErrOutOfRange, "Dense.%s: row index %d", ctxInduced, ri)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, errors.Wrapf(ErrOutOfRange, "Dense.%s: col index %d", ctxInduced, cj)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Map returns a new matrix with f(i,j,v) applied to every element.
// The receiver is untouched. Complexity: O(r*c).
func (m *Dense) Map(f func(i, j int, v float64) float64) *Dense {
	res := newDense(m.r, m.c, m.eps)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[base+j] = f(i, j, m.data[base+j])
		}
	}

	return res
}
