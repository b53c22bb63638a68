// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// tolTight is the comparison tolerance for well-conditioned fixtures.
const tolTight = 1e-9

// tolLoose is the comparison tolerance for randomized property tests.
const tolLoose = 1e-6

// MustDense BUILDS a *Dense from a row grid or fails the test.
//
// AI-Hints:
//   - Pair with CompareExact/CompareClose for assertions on results.
func MustDense(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, opts...)
	if err != nil {
		t.Fatalf("NewDense(%v): %v", rows, err)
	}

	return m
}

// IdentityDense RETURNS I_n or fails the test.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromFlat(r, c, vals)
	if err != nil {
		t.Fatalf("NewFromFlat(%d,%d): %v", r, c, err)
	}

	return m
}

// RandFilledDense BUILDS an r×c matrix with entries uniform in [-1, 1).
// Deterministic for a given seed.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1 // 0*2-1=-1 || 1*2-1=1
	}

	return NewFilledDense(t, r, c, vals)
}

// RandWellConditioned BUILDS a random n×n matrix plus n·I, which keeps it
// diagonally dominant (nonsingular, modest condition number).
func RandWellConditioned(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}
	for i := 0; i < n; i++ {
		vals[i*n+i] += float64(n)
	}

	return NewFilledDense(t, n, n, vals)
}

// RandSymmetric BUILDS a random symmetric n×n matrix (B + Bᵀ)/2.
func RandSymmetric(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	s, err := matrix.Symmetrize(RandFilledDense(t, n, n, seed))
	if err != nil {
		t.Fatalf("Symmetrize: %v", err)
	}

	return s
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustMul RETURNS a×b or fails the test.
func MustMul(t testing.TB, a, b *matrix.Dense) *matrix.Dense {
	t.Helper()
	p, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	return p
}

// MustT RETURNS mᵀ or fails the test.
func MustT(t testing.TB, m *matrix.Dense) *matrix.Dense {
	t.Helper()
	mt, err := matrix.Transpose(m)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}

	return mt
}

// CompareExact ASSERTS m equals want element-wise with ==.
func CompareExact(t testing.TB, want [][]float64, m *matrix.Dense) {
	t.Helper()
	r, c := m.Shape()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS |m[i,j] − want[i][j]| ≤ tol everywhere.
func CompareClose(t testing.TB, want [][]float64, m *matrix.Dense, tol float64) {
	t.Helper()
	r, c := m.Shape()
	if len(want) != r {
		t.Fatalf("CompareClose: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareClose: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); math.Abs(v-want[i][j]) > tol {
				t.Fatalf("m[%d,%d]=%v; want %v (±%g)", i, j, v, want[i][j], tol)
			}
		}
	}
}

// CompareMatrices ASSERTS a and b agree within tol.
func CompareMatrices(t testing.TB, want, got *matrix.Dense, tol float64) {
	t.Helper()
	CompareClose(t, want.RawRowCopy(), got, tol)
}
