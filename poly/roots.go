// SPDX-License-Identifier: MIT

package poly

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// DefaultTolerance is the root-acceptance tolerance suited to characteristic
// polynomials of small well-scaled matrices.
const DefaultTolerance = 1e-8

// newtonSteps bounds the polishing loop per root.
const newtonSteps = 50

// RealRoots returns all real roots of p with multiplicity, sorted ascending.
// Implementation:
//   - Stage 1: validate tol and coefficients; trim exact trailing zeros.
//   - Stage 2: degree 0 has no roots; degree 1 and 2 use closed forms
//     (the quadratic uses the cancellation-free q-formula).
//   - Stage 3: degree ≥ 3 takes the eigenvalues of the monic companion matrix
//     (gonum mat.Eigen); an eigenvalue z is real when |Im z| ≤ tol·max(1,|z|)
//     or when p(Re z) vanishes relative to Σ|c_i||Re z|^i, which admits
//     clustered multiple roots. Each accepted root is Newton-polished.
//
// Errors:
//   - ErrZeroPolynomial (p ≡ 0), ErrInvalidTolerance, ErrNonFinite.
//   - A failed eigen factorization is reported wrapped.
//
// Complexity:
//   - O(d³) for degree d ≥ 3.
func RealRoots(p Poly, tol float64) ([]float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return nil, ErrInvalidTolerance
	}
	for _, v := range p.c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
	}
	if p.IsZero() {
		return nil, ErrZeroPolynomial
	}

	var roots []float64
	switch p.Degree() {
	case 0:
		return []float64{}, nil
	case 1:
		roots = []float64{-p.c[0] / p.c[1]}
	case 2:
		roots = quadraticRoots(p.c[2], p.c[1], p.c[0], tol)
	default:
		var err error
		if roots, err = companionRoots(p, tol); err != nil {
			return nil, err
		}
		for i := range roots {
			roots[i] = polish(p, roots[i])
		}
	}
	sort.Float64s(roots)

	return roots, nil
}

// quadraticRoots solves a·x² + b·x + c = 0 for real x.
// A discriminant within tol of zero (relative to b² and |4ac|) is a double root.
func quadraticRoots(a, b, c, tol float64) []float64 {
	disc := b*b - 4*a*c
	scale := math.Max(b*b, math.Abs(4*a*c))
	if disc < 0 {
		if -disc > tol*scale {
			return []float64{}
		}
		disc = 0
	}
	if disc == 0 {
		x := -b / (2 * a)

		return []float64{x, x}
	}

	// disc > 0 here, so q ≠ 0.
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))

	return []float64{q / a, c / q}
}

// companionRoots returns the real eigenvalues of the companion matrix of p.
func companionRoots(p Poly, tol float64) ([]float64, error) {
	d := p.Degree()
	lead := p.c[d]

	// Companion of the monic polynomial: ones on the subdiagonal, the last
	// column holds −c_i / c_d.
	comp := mat.NewDense(d, d, nil)
	for i := 1; i < d; i++ {
		comp.Set(i, i-1, 1)
	}
	for i := 0; i < d; i++ {
		comp.Set(i, d-1, -p.c[i]/lead)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(comp, mat.EigenNone); !ok {
		return nil, errors.Newf("poly: companion eigen factorization failed (degree %d)", d)
	}

	roots := make([]float64, 0, d)
	var re, im float64
	for _, z := range eig.Values(nil) {
		re, im = real(z), imag(z)
		if math.Abs(im) <= tol*math.Max(1, math.Hypot(re, im)) || vanishes(p, re, tol) {
			roots = append(roots, re)
		}
	}

	return roots, nil
}

// vanishes reports |p(x)| ≤ tol·Σ|c_i||x|^i.
func vanishes(p Poly, x, tol float64) bool {
	scale, pow := 0.0, 1.0
	ax := math.Abs(x)
	for _, v := range p.c {
		scale += math.Abs(v) * pow
		pow *= ax
	}

	return math.Abs(p.Eval(x)) <= tol*scale
}

// polish refines x with Newton steps, keeping the best |p(x)| seen.
// Steps stop at a flat derivative or when the residual stops improving.
func polish(p Poly, x float64) float64 {
	dp := p.Derivative()
	best, bestRes := x, math.Abs(p.Eval(x))

	var d, next, res float64
	for k := 0; k < newtonSteps && bestRes > 0; k++ {
		d = dp.Eval(best)
		if d == 0 {
			break
		}
		next = best - p.Eval(best)/d
		res = math.Abs(p.Eval(next))
		if res >= bestRes {
			break
		}
		best, bestRes = next, res
	}

	return best
}
