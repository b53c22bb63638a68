// SPDX-License-Identifier: MIT

// Package matrix - eigenvalue solvers.
//
// Three independent strategies, chosen by the caller:
//   - EigenvaluesClosedForm: n ∈ {2,3,4}; the characteristic polynomial
//     det(A − Iλ) is expanded symbolically over ring.Matrix[poly.Poly] and its
//     real roots are returned.
//   - Jacobi: symmetric n ≥ 2; cyclic-by-largest Givens rotations producing all
//     eigenvalues and an orthogonal eigenvector matrix.
//   - PowerIteration: square; the dominant eigenvalue only.
//
// Ordering:
//   - Eigenvalue slices are sorted by descending |λ| (stable).
//
// Determinism:
//   - Jacobi scans the strict upper triangle row-major and keeps the first
//     maximum; PowerIteration draws its start vector from a seeded PCG source.

package matrix

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/katalvlaran/lvlinalg/poly"
	"github.com/katalvlaran/lvlinalg/ring"
)

const (
	closedFormMinSize = 2
	closedFormMaxSize = 4
	jacobiMinSize     = 2
)

// EigenvaluesClosedForm returns the real eigenvalues of a 2x2, 3x3 or 4x4 matrix.
// Implementation:
//   - Stage 1: validate square and 2 ≤ n ≤ 4.
//   - Stage 2: build A − Iλ with degree-≤1 polynomial entries.
//   - Stage 3: symbolic cofactor determinant → characteristic polynomial.
//   - Stage 4: poly.RealRoots, then sort by descending |λ|.
//
// Returns:
//   - []float64: real eigenvalues with multiplicity. Complex-conjugate pairs are
//     not reported, so the slice can be shorter than n.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnsupportedSize; root-finder failures wrapped.
//
// Complexity:
//   - O(n!) polynomial operations (n ≤ 4) plus O(n³) for the roots.
func EigenvaluesClosedForm(a *Dense) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opClosedForm, err)
	}
	n := a.r
	if n < closedFormMinSize || n > closedFormMaxSize {
		return nil, matrixErrorf(opClosedForm, ErrUnsupportedSize)
	}

	grid := make([][]poly.Poly, n)
	var i, j int
	for i = 0; i < n; i++ {
		grid[i] = make([]poly.Poly, n)
		for j = 0; j < n; j++ {
			if i == j {
				grid[i][j] = poly.New(a.data[i*n+j], -1) // a_ii − λ
			} else {
				grid[i][j] = poly.Const(a.data[i*n+j])
			}
		}
	}
	sym, err := ring.New(grid)
	if err != nil {
		return nil, matrixErrorf(opClosedForm, err)
	}
	charPoly, err := sym.Det()
	if err != nil {
		return nil, matrixErrorf(opClosedForm, err)
	}

	roots, err := poly.RealRoots(charPoly, poly.DefaultTolerance)
	if err != nil {
		return nil, matrixErrorf(opClosedForm, err)
	}
	sortByMagnitudeDesc(roots)

	return roots, nil
}

// Eigenvalues is the method form of EigenvaluesClosedForm.
func (m *Dense) Eigenvalues() ([]float64, error) { return EigenvaluesClosedForm(m) }

// sortByMagnitudeDesc orders values by descending |v|, keeping ties in place.
func sortByMagnitudeDesc(values []float64) {
	sort.SliceStable(values, func(p, q int) bool {
		return math.Abs(values[p]) > math.Abs(values[q])
	})
}

// Jacobi computes all eigenpairs of a real symmetric matrix.
// Implementation:
//   - Stage 1: validate square, n ≥ 2, symmetric within ε.
//   - Stage 2: D := A, S := I. Repeat: pick the largest |D[i][j]| (i < j); stop
//     when it is ≤ ε. θ = atan(2·D[i][j] / (D[i][i] − D[j][j])) / 2, or
//     ±π/4 with the sign of D[i][i] when the diagonals are equal.
//     Apply D ← GᵀDG and S ← S·G for the Givens rotation G(i, j, θ).
//   - Stage 3: eigenvalues = diag(D), sorted by descending |λ|; the columns of
//     S are permuted the same way.
//
// Inputs:
//   - a: symmetric matrix.
//   - opts: WithEpsilon (symmetry and convergence tolerance, defaults to the
//     matrix epsilon), WithMaxIterations (rotation budget, default
//     DefaultJacobiMaxIterations).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrTooSmall, ErrAsymmetry, ErrNotConverged.
//
// Notes:
//   - Rotations touch only rows/columns i and j, so each costs O(n) instead of
//     the two dense products GᵀDG and S·G.
//
// Complexity:
//   - O(n²) per rotation (pivot scan dominates).
func Jacobi(a *Dense, opts ...Option) (*JacobiResult, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opJacobi, err)
	}
	if a.r < jacobiMinSize {
		return nil, matrixErrorf(opJacobi, ErrTooSmall)
	}
	o := gatherOptionsFor(a, opts...)
	if err := ValidateSymmetric(a, o.eps); err != nil {
		return nil, matrixErrorf(opJacobi, err)
	}

	n, eps := a.r, o.eps
	budget := o.iterations(DefaultJacobiMaxIterations)
	d := a.clone()
	s := newIdentity(n, a.eps)

	var (
		iter, p, q int
		top, v     float64
		i, j       int
	)
	for iter = 0; ; iter++ {
		top, p, q = -1, 0, 1
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if v = math.Abs(d.data[i*n+j]); v > top {
					top, p, q = v, i, j
				}
			}
		}
		if top <= eps {
			break
		}
		if iter == budget {
			return nil, matrixErrorf(opJacobi, ErrNotConverged)
		}
		rotate(d, s, p, q)
	}

	lg := currentLogger()
	lg.Debug().Str(logKeyOp, opJacobi).Int(logKeyRows, n).Int(logKeyIterations, iter).Msg("converged")

	return sortedEigenpairs(d.diag(), s), nil
}

// rotate applies the Givens rotation that annihilates d[p][q]:
// d ← GᵀdG and s ← s·G, with G[p][p] = G[q][q] = c, G[p][q] = −s, G[q][p] = s.
func rotate(d, s *Dense, p, q int) {
	n := d.r
	app, aqq, apq := d.data[p*n+p], d.data[q*n+q], d.data[p*n+q]

	var theta float64
	if app == aqq {
		theta = math.Copysign(math.Pi/4, app)
	} else {
		theta = math.Atan(2*apq/(app-aqq)) / 2
	}
	c, sn := math.Cos(theta), math.Sin(theta)

	var k int
	var dkp, dkq float64
	for k = 0; k < n; k++ {
		if k == p || k == q {
			continue
		}
		dkp, dkq = d.data[k*n+p], d.data[k*n+q]
		d.data[k*n+p] = c*dkp + sn*dkq
		d.data[k*n+q] = -sn*dkp + c*dkq
		d.data[p*n+k] = d.data[k*n+p]
		d.data[q*n+k] = d.data[k*n+q]
	}
	d.data[p*n+p] = c*c*app + 2*c*sn*apq + sn*sn*aqq
	d.data[q*n+q] = sn*sn*app - 2*c*sn*apq + c*c*aqq
	d.data[p*n+q] = 0
	d.data[q*n+p] = 0

	var skp, skq float64
	for k = 0; k < n; k++ {
		skp, skq = s.data[k*n+p], s.data[k*n+q]
		s.data[k*n+p] = c*skp + sn*skq
		s.data[k*n+q] = -sn*skp + c*skq
	}
}

// sortedEigenpairs orders values by descending |λ| (stable) and permutes the
// columns of vectors to match.
func sortedEigenpairs(values []float64, vectors *Dense) *JacobiResult {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(p, q int) bool {
		return math.Abs(values[order[p]]) > math.Abs(values[order[q]])
	})

	vals := make([]float64, n)
	vecs := newDense(vectors.r, n, vectors.eps)
	var i, k int
	for k = 0; k < n; k++ {
		vals[k] = values[order[k]]
		for i = 0; i < vectors.r; i++ {
			vecs.data[i*n+k] = vectors.data[i*n+order[k]]
		}
	}

	return &JacobiResult{Values: vals, Vectors: vecs}
}

// PowerIteration estimates the dominant eigenvalue of a square matrix.
// Implementation:
//   - Stage 1: validate square; resolve ε, budget and seed.
//   - Stage 2: b := uniform random vector from a PCG source seeded with seed.
//   - Stage 3: repeat b ← A·b / ‖A·b‖, μ ← bᵀAb / bᵀb until |μ − μ_prev| ≤ ε.
//
// Returns:
//   - float64: μ at convergence; 0 when A·b vanishes (A annihilates b).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotConverged (budget exhausted).
//
// Inputs:
//   - opts: WithEpsilon, WithMaxIterations (default DefaultMaxIterations), WithSeed.
//
// Complexity:
//   - O(n²) per iteration.
//
// AI-Hints:
//   - Convergence is geometric in |λ2/λ1|; a matrix whose two largest
//     eigenvalues share a magnitude (e.g. ±λ) exhausts the budget.
func PowerIteration(a *Dense, opts ...Option) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opPower, err)
	}
	o := gatherOptionsFor(a, opts...)
	budget := o.iterations(DefaultMaxIterations)

	n := a.r
	rng := rand.New(rand.NewPCG(o.seed, o.seed))
	b := make([]float64, n)
	for i := range b {
		b[i] = rng.Float64()
	}

	var (
		ab, abb  []float64
		norm, mu float64
		num, den float64
		err      error
	)
	prev := math.NaN()
	for iter := 1; iter <= budget; iter++ {
		if ab, err = MatVec(a, b); err != nil {
			return 0, matrixErrorf(opPower, err)
		}
		if norm = Norm(ab); norm == NormZero {
			return 0, nil
		}
		for i := range b {
			b[i] = ab[i] / norm
		}

		if abb, err = MatVec(a, b); err != nil {
			return 0, matrixErrorf(opPower, err)
		}
		if num, err = Dot(b, abb); err != nil {
			return 0, matrixErrorf(opPower, err)
		}
		if den, err = Dot(b, b); err != nil {
			return 0, matrixErrorf(opPower, err)
		}
		mu = num / den

		if math.Abs(mu-prev) <= o.eps {
			lg := currentLogger()
			lg.Debug().Str(logKeyOp, opPower).Int(logKeyIterations, iter).Float64(logKeyEstimate, mu).Msg("converged")

			return mu, nil
		}
		prev = mu
	}

	return 0, matrixErrorf(opPower, ErrNotConverged)
}
