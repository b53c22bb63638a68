// SPDX-License-Identifier: MIT

// Package matrix - elementary row and column operations.
//
// Purpose:
//   - Expose pure elementary operations (interchange, multiply, divide, add,
//     subtract, exclude) that return a NEW Dense and never touch the receiver.
//   - Share the in-place primitives (swapRows, divRow, axpyRow) with the
//     elimination kernels, which run them on a private scratch copy.
//
// Errors:
//   - ErrOutOfRange for bad row/column indices.
//   - ErrInvalidArgument for a zero multiplier or divisor.
//
// Determinism:
//   - Every primitive walks columns (or rows) in ascending order.

package matrix

const (
	opRowInterchange    = "RowInterchange"
	opRowMultiply       = "RowMultiply"
	opRowDivide         = "RowDivide"
	opRowAdd            = "RowAdd"
	opRowSubtract       = "RowSubtract"
	opColumnInterchange = "ColumnInterchange"
	opColumnMultiply    = "ColumnMultiply"
	opColumnAdd         = "ColumnAdd"
	opRowExclude        = "RowExclude"
	opColumnExclude     = "ColumnExclude"
)

// ---------- in-place primitives (scratch buffers only) ----------

// swapRows exchanges rows i and k in place.
func (m *Dense) swapRows(i, k int) {
	if i == k {
		return
	}
	bi, bk := i*m.c, k*m.c
	for j := 0; j < m.c; j++ {
		m.data[bi+j], m.data[bk+j] = m.data[bk+j], m.data[bi+j]
	}
}

// scaleRow multiplies row i by f in place.
func (m *Dense) scaleRow(i int, f float64) {
	base := i * m.c
	for j := 0; j < m.c; j++ {
		m.data[base+j] *= f
	}
}

// divRow divides row i by d in place; the pivot entry becomes exactly 1.
// Zeros are skipped so a negative d never produces -0.
func (m *Dense) divRow(i int, d float64) {
	base := i * m.c
	for j := 0; j < m.c; j++ {
		if m.data[base+j] != 0 {
			m.data[base+j] /= d
		}
	}
}

// axpyRow performs row_t += f·row_s in place.
func (m *Dense) axpyRow(target, source int, f float64) {
	bt, bs := target*m.c, source*m.c
	for j := 0; j < m.c; j++ {
		m.data[bt+j] += f * m.data[bs+j]
	}
}

// swapCols exchanges columns j and k in place.
func (m *Dense) swapCols(j, k int) {
	if j == k {
		return
	}
	var base int
	for i := 0; i < m.r; i++ {
		base = i * m.c
		m.data[base+j], m.data[base+k] = m.data[base+k], m.data[base+j]
	}
}

// scaleCol multiplies column j by f in place.
func (m *Dense) scaleCol(j int, f float64) {
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] *= f
	}
}

// axpyCol performs col_t += f·col_s in place.
func (m *Dense) axpyCol(target, source int, f float64) {
	var base int
	for i := 0; i < m.r; i++ {
		base = i * m.c
		m.data[base+target] += f * m.data[base+source]
	}
}

// ---------- pure row operations ----------

// RowInterchange returns a copy with rows i and k swapped.
// Errors: ErrNilMatrix, ErrOutOfRange. Complexity: O(r*c) (copy).
func (m *Dense) RowInterchange(i, k int) (*Dense, error) {
	if err := validateRows(m, i, k); err != nil {
		return nil, matrixErrorf(opRowInterchange, err)
	}
	res := m.clone()
	res.swapRows(i, k)

	return res, nil
}

// RowMultiply returns a copy with row i multiplied by f.
// Errors: ErrNilMatrix, ErrOutOfRange, ErrInvalidArgument (f == 0).
func (m *Dense) RowMultiply(i int, f float64) (*Dense, error) {
	if err := validateRows(m, i); err != nil {
		return nil, matrixErrorf(opRowMultiply, err)
	}
	if f == 0 {
		return nil, matrixErrorf(opRowMultiply, ErrInvalidArgument)
	}
	res := m.clone()
	res.scaleRow(i, f)

	return res, nil
}

// RowDivide returns a copy with row i divided by d.
// Errors: ErrNilMatrix, ErrOutOfRange, ErrInvalidArgument (d == 0).
func (m *Dense) RowDivide(i int, d float64) (*Dense, error) {
	if err := validateRows(m, i); err != nil {
		return nil, matrixErrorf(opRowDivide, err)
	}
	if d == 0 {
		return nil, matrixErrorf(opRowDivide, ErrInvalidArgument)
	}
	res := m.clone()
	res.divRow(i, d)

	return res, nil
}

// RowAdd returns a copy where row target is replaced by row_target + f·row_source.
// A zero factor is a valid no-op and yields a plain copy.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Dense) RowAdd(target, source int, f float64) (*Dense, error) {
	if err := validateRows(m, target, source); err != nil {
		return nil, matrixErrorf(opRowAdd, err)
	}
	res := m.clone()
	res.axpyRow(target, source, f)

	return res, nil
}

// RowSubtract returns a copy where row target is replaced by row_target − f·row_source.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Dense) RowSubtract(target, source int, f float64) (*Dense, error) {
	if err := validateRows(m, target, source); err != nil {
		return nil, matrixErrorf(opRowSubtract, err)
	}
	res := m.clone()
	res.axpyRow(target, source, -f)

	return res, nil
}

// RowExclude returns a copy without row i.
// Errors: ErrNilMatrix, ErrOutOfRange, ErrInvalidDimensions (single-row input).
func (m *Dense) RowExclude(i int) (*Dense, error) {
	if err := validateRows(m, i); err != nil {
		return nil, matrixErrorf(opRowExclude, err)
	}
	res, err := m.Induced(indicesExcept(m.r, i), indicesExcept(m.c, -1))
	if err != nil {
		return nil, matrixErrorf(opRowExclude, err)
	}

	return res, nil
}

// ---------- pure column operations ----------

// ColumnInterchange returns a copy with columns j and k swapped.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Dense) ColumnInterchange(j, k int) (*Dense, error) {
	if err := validateCols(m, j, k); err != nil {
		return nil, matrixErrorf(opColumnInterchange, err)
	}
	res := m.clone()
	res.swapCols(j, k)

	return res, nil
}

// ColumnMultiply returns a copy with column j multiplied by f.
// Errors: ErrNilMatrix, ErrOutOfRange, ErrInvalidArgument (f == 0).
func (m *Dense) ColumnMultiply(j int, f float64) (*Dense, error) {
	if err := validateCols(m, j); err != nil {
		return nil, matrixErrorf(opColumnMultiply, err)
	}
	if f == 0 {
		return nil, matrixErrorf(opColumnMultiply, ErrInvalidArgument)
	}
	res := m.clone()
	res.scaleCol(j, f)

	return res, nil
}

// ColumnAdd returns a copy where column target is replaced by col_target + f·col_source.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Dense) ColumnAdd(target, source int, f float64) (*Dense, error) {
	if err := validateCols(m, target, source); err != nil {
		return nil, matrixErrorf(opColumnAdd, err)
	}
	res := m.clone()
	res.axpyCol(target, source, f)

	return res, nil
}

// ColumnExclude returns a copy without column j.
// Errors: ErrNilMatrix, ErrOutOfRange, ErrInvalidDimensions (single-column input).
func (m *Dense) ColumnExclude(j int) (*Dense, error) {
	if err := validateCols(m, j); err != nil {
		return nil, matrixErrorf(opColumnExclude, err)
	}
	res, err := m.Induced(indicesExcept(m.r, -1), indicesExcept(m.c, j))
	if err != nil {
		return nil, matrixErrorf(opColumnExclude, err)
	}

	return res, nil
}

// ---------- helpers ----------

// validateRows checks m is non-nil and every index is a valid row.
func validateRows(m *Dense, idx ...int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	for _, i := range idx {
		if err := ValidateRowIndex(m, i); err != nil {
			return err
		}
	}

	return nil
}

// validateCols checks m is non-nil and every index is a valid column.
func validateCols(m *Dense, idx ...int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	for _, j := range idx {
		if err := ValidateColIndex(m, j); err != nil {
			return err
		}
	}

	return nil
}

// indicesExcept returns 0..n-1 without skip (skip < 0 keeps everything).
func indicesExcept(n, skip int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if i != skip {
			out = append(out, i)
		}
	}

	return out
}
