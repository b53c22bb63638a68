// SPDX-License-Identifier: MIT

// Package matrix - Householder QR for square matrices.
// QR returns an orthogonal Q and an upper-triangular R with A = Q·R.

package matrix

import "math"

// QR computes the QR decomposition of a square matrix using Householder reflections.
// Implementation:
//   - Stage 1: validate square; R := copy(A), H := I.
//   - Stage 2: for each column k, build v from R[k:n, k] with
//     alpha = −sign(R[k][k])·‖R[k:n, k]‖, v[k] −= alpha, tau = 2/(vᵀv);
//     apply the reflector to R and to H from the left.
//   - Stage 3: Q := Hᵀ, so that Q·R = A.
//
// Behavior highlights:
//   - A zero sub-column is skipped (its reflector would be the identity).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func QR(a *Dense) (q, r *Dense, err error) {
	if err = ValidateSquare(a); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	n := a.r
	r = a.clone()
	h := newIdentity(n, a.eps)
	v := make([]float64, n) // Householder vector, reused per column

	var (
		k, i              int
		alpha, norm, beta float64
		tau               float64
	)
	for k = 0; k < n; k++ {
		norm = NormZero
		for i = k; i < n; i++ {
			norm += r.data[i*n+k] * r.data[i*n+k]
		}
		norm = math.Sqrt(norm)
		if norm == NormZero {
			continue // zero column: nothing to annihilate
		}

		alpha = -math.Copysign(norm, r.data[k*n+k])
		for i = 0; i < n; i++ {
			v[i] = NormZero
		}
		for i = k; i < n; i++ {
			v[i] = r.data[i*n+k]
		}
		v[k] -= alpha

		beta = NormZero
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == NormZero {
			continue
		}
		tau = 2.0 / beta

		applyReflector(r, v, k, k, tau)
		applyReflector(h, v, k, 0, tau)
	}

	q, err = Transpose(h)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	return q, r, nil
}

// applyReflector performs m[k:n, from:n] −= tau·v·(vᵀ·m[k:n, from:n]) in place.
func applyReflector(m *Dense, v []float64, k, from int, tau float64) {
	n := m.r
	var i, j int
	var sum float64
	for j = from; j < m.c; j++ {
		sum = NormZero
		for i = k; i < n; i++ {
			sum += v[i] * m.data[i*m.c+j]
		}
		if sum == NormZero {
			continue
		}
		sum *= tau
		for i = k; i < n; i++ {
			m.data[i*m.c+j] -= sum * v[i]
		}
	}
}
