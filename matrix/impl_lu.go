// SPDX-License-Identifier: MIT

// Package matrix - partial-pivoted LU factorization P·A = L·U.
//
// Purpose:
//   - Pivotize builds the permutation matrix P.
//   - LU fills L (unit lower-triangular) and U (upper-triangular) from P·A with
//     the Doolittle recurrence.
//   - LUResult.Solve / LUResult.Det reuse the factors.
//
// Pivot policy:
//   - Column i takes the row (among i..n-1 of the matrix permuted so far)
//     holding the LARGEST SIGNED value; the first such row wins on ties.
//     Magnitude is deliberately not used. RREF uses a different policy.
//
// Degenerate pivots:
//   - An exactly zero U[i][i] does not fail: L[j][i] (j > i) becomes NaN.
//     LUResult.Degenerate reports it and a warn event is logged.

package matrix

import "math"

const opLUSolve = "LUResult.Solve"

// Pivotize returns the permutation matrix P used by LU.
// Implementation:
//   - Stage 1: perm := identity order.
//   - Stage 2: for column i, scan k = i..n-1 over A[perm[k]][i], keep the first
//     strict maximum; swap perm[i] and perm[best].
//   - Stage 3: materialize P with P[i][perm[i]] = 1.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func Pivotize(a *Dense) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opPivotize, err)
	}

	return permutationMatrix(pivotOrder(a), a.eps), nil
}

// pivotOrder returns perm such that row i of P·A is row perm[i] of A.
func pivotOrder(a *Dense) []int {
	n := a.r
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var i, k, best int
	var v, top float64
	for i = 0; i < n; i++ {
		best = i
		top = a.data[perm[i]*n+i]
		for k = i + 1; k < n; k++ {
			v = a.data[perm[k]*n+i]
			if v > top { // signed comparison; strict keeps the first on ties
				top, best = v, k
			}
		}
		if best != i {
			perm[i], perm[best] = perm[best], perm[i]
		}
	}

	return perm
}

// permutationMatrix materializes P with P[i][perm[i]] = 1.
func permutationMatrix(perm []int, eps float64) *Dense {
	n := len(perm)
	p := newDense(n, n, eps)
	for i, j := range perm {
		p.data[i*n+j] = 1
	}

	return p
}

// LU factorizes a square matrix as P·A = L·U.
// Implementation:
//   - Stage 1: P := Pivotize(A); A' := P·A.
//   - Stage 2: for each column i:
//     U[j][i] = A'[j][i] − Σ_{k<j} U[k][i]·L[j][k]            (j ≤ i)
//     L[j][i] = (A'[j][i] − Σ_{k<i} U[k][i]·L[j][k]) / U[i][i] (j > i)
//     L[i][i] = 1.
//   - Stage 3: U[i][i] == 0 exactly → L[j][i] = NaN for j > i.
//
// Returns:
//   - *LUResult{L, U, P, A} with A the input matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare. A zero pivot is NOT an error.
//
// Complexity:
//   - Time O(n³), Space O(n²). Cached on the receiver.
func LU(a *Dense) (*LUResult, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	res, err := a.cache.lu.get(func() (*LUResult, error) {
		logCacheFill(opLU, a)

		return decompose(a), nil
	})
	if err != nil {
		return nil, err
	}
	out := *res

	return &out, nil
}

// LU is the method form of the package-level LU.
func (m *Dense) LU() (*LUResult, error) { return LU(m) }

// decompose runs the Doolittle recurrence on the row-permuted matrix.
func decompose(a *Dense) *LUResult {
	n, eps := a.r, a.eps
	perm := pivotOrder(a)
	p := permutationMatrix(perm, eps)

	// A' = P·A without a full product: row i of A' is row perm[i] of A.
	ap := newDense(n, n, eps)
	for i, src := range perm {
		copy(ap.data[i*n:(i+1)*n], a.data[src*n:(src+1)*n])
	}

	l := newDense(n, n, eps)
	u := newDense(n, n, eps)
	var (
		i, j, k  int
		sum, piv float64
	)
	zeroCol := -1 // first column with a zero pivot
	for i = 0; i < n; i++ {
		l.data[i*n+i] = 1
		for j = 0; j <= i; j++ {
			sum = ZeroSum
			for k = 0; k < j; k++ {
				sum += u.data[k*n+i] * l.data[j*n+k]
			}
			u.data[j*n+i] = ap.data[j*n+i] - sum
		}
		piv = u.data[i*n+i]
		for j = i + 1; j < n; j++ {
			if piv == ZeroPivot {
				l.data[j*n+i] = math.NaN()
				if zeroCol < 0 {
					zeroCol = i
				}

				continue
			}
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += u.data[k*n+i] * l.data[j*n+k]
			}
			l.data[j*n+i] = (ap.data[j*n+i] - sum) / piv
		}
	}
	if zeroCol >= 0 {
		lg := currentLogger()
		lg.Warn().Str(logKeyOp, opLU).Int(logKeyRows, n).Int(logKeyColumn, zeroCol).
			Msg("zero pivot, L carries NaN")
	}

	return &LUResult{L: l, U: u, P: p, A: a}
}

// Degenerate reports whether a zero pivot left NaN entries in L.
func (r *LUResult) Degenerate() bool {
	for _, v := range r.L.data {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}

// Solve returns x with A·x = b using the factors: L·y = P·b, then U·x = y.
// Errors: ErrDimensionMismatch (len(b) ≠ n), ErrSingular (degenerate factors
// or |U[i][i]| ≤ ε).
// Complexity: O(n²).
func (r *LUResult) Solve(b []float64) ([]float64, error) {
	n, eps := r.U.r, r.U.eps
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	if r.Degenerate() {
		return nil, matrixErrorf(opLUSolve, ErrSingular)
	}

	pb, err := MatVec(r.P, b)
	if err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}

	var i, k int
	var sum, piv float64
	y := make([]float64, n)
	for i = 0; i < n; i++ { // forward substitution, unit diagonal
		sum = pb[i]
		for k = 0; k < i; k++ {
			sum -= r.L.data[i*n+k] * y[k]
		}
		y[i] = sum
	}

	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- { // back substitution
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= r.U.data[i*n+k] * x[k]
		}
		piv = r.U.data[i*n+i]
		if math.Abs(piv) <= eps {
			return nil, matrixErrorf(opLUSolve, ErrSingular)
		}
		x[i] = sum / piv
	}

	return x, nil
}

// Det returns det(P)·∏diag(U), which equals det(A).
// det(P) is ±1 from the parity of the permutation's cycle decomposition.
func (r *LUResult) Det() float64 {
	n := r.P.r
	perm := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if r.P.data[i*n+j] == 1 {
				perm[i] = j

				break
			}
		}
	}

	swaps := 0
	visited := make([]bool, n)
	var cycle int
	for i = 0; i < n; i++ {
		if visited[i] {
			continue
		}
		cycle = 0
		for j = i; !visited[j]; j = perm[j] {
			visited[j] = true
			cycle++
		}
		swaps += cycle - 1
	}

	det := 1.0
	for i = 0; i < n; i++ {
		det *= r.U.data[i*n+i]
	}
	if swaps%2 == 1 {
		det = -det
	}

	return det
}
