// SPDX-License-Identifier: MIT

// Package poly implements real-coefficient polynomials in one variable and a
// real root finder.
//
// Purpose:
//   - Poly is a value type with coefficients stored lowest degree first, so
//     New(c0, c1, c2) is c0 + c1·x + c2·x².
//   - Poly satisfies ring.Element[Poly] and can be the entry type of a
//     ring.Matrix (characteristic polynomials are built that way).
//   - RealRoots returns every real root, with multiplicity, sorted ascending.
//
// Determinism:
//   - Arithmetic walks coefficients in ascending degree; results are trimmed.
package poly

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlinalg/ring"
)

// Poly is an immutable polynomial; the zero value is the zero polynomial.
type Poly struct {
	c []float64 // c[i] is the coefficient of x^i; no trailing zeros
}

// Compile-time assertion for ring.Element conformance.
var _ ring.Element[Poly] = Poly{}

// New returns the polynomial Σ coeffs[i]·x^i (coefficients are copied).
func New(coeffs ...float64) Poly {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	return Poly{c: trim(c)}
}

// Const returns the constant polynomial v.
func Const(v float64) Poly { return New(v) }

// X returns the monomial x.
func X() Poly { return New(0, 1) }

// trim drops trailing exact zeros.
func trim(c []float64) []float64 {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}

	return c[:n]
}

// Trim returns p with trailing coefficients |c| ≤ tol removed.
func (p Poly) Trim(tol float64) Poly {
	n := len(p.c)
	for n > 0 && (p.c[n-1] == 0 || math.Abs(p.c[n-1]) <= tol) {
		n--
	}

	return New(p.c[:n]...)
}

// Degree returns the degree of p, or −1 for the zero polynomial.
func (p Poly) Degree() int { return len(p.c) - 1 }

// Coeff returns the coefficient of x^i (0 outside the stored range).
func (p Poly) Coeff(i int) float64 {
	if i < 0 || i >= len(p.c) {
		return 0
	}

	return p.c[i]
}

// Coeffs returns a copy of the coefficients, lowest degree first.
func (p Poly) Coeffs() []float64 {
	out := make([]float64, len(p.c))
	copy(out, p.c)

	return out
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.c) == 0 }

// Add returns p + q.
func (p Poly) Add(q Poly) Poly { return p.combine(q, 1) }

// Sub returns p − q.
func (p Poly) Sub(q Poly) Poly { return p.combine(q, -1) }

// combine returns p + sign·q.
func (p Poly) combine(q Poly, sign float64) Poly {
	n := len(p.c)
	if len(q.c) > n {
		n = len(q.c)
	}
	out := make([]float64, n)
	copy(out, p.c)
	for i, v := range q.c {
		out[i] += sign * v
	}

	return Poly{c: trim(out)}
}

// Mul returns p · q (schoolbook convolution).
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	out := make([]float64, len(p.c)+len(q.c)-1)
	var i, j int
	for i = range p.c {
		if p.c[i] == 0 {
			continue
		}
		for j = range q.c {
			out[i+j] += p.c[i] * q.c[j]
		}
	}

	return Poly{c: trim(out)}
}

// Scale returns f · p.
func (p Poly) Scale(f float64) Poly {
	out := make([]float64, len(p.c))
	for i, v := range p.c {
		out[i] = f * v
	}

	return Poly{c: trim(out)}
}

// Derivative returns dp/dx.
func (p Poly) Derivative() Poly {
	if len(p.c) <= 1 {
		return Poly{}
	}
	out := make([]float64, len(p.c)-1)
	for i := 1; i < len(p.c); i++ {
		out[i-1] = float64(i) * p.c[i]
	}

	return Poly{c: trim(out)}
}

// Eval evaluates p at x with Horner's scheme.
func (p Poly) Eval(x float64) float64 {
	acc := 0.0
	for i := len(p.c) - 1; i >= 0; i-- {
		acc = acc*x + p.c[i]
	}

	return acc
}

// String renders p highest degree first, e.g. "x^2 - 9x + 20".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}

	var b strings.Builder
	var v float64
	for i := len(p.c) - 1; i >= 0; i-- {
		v = p.c[i]
		if v == 0 {
			continue
		}
		switch {
		case b.Len() == 0 && v < 0:
			b.WriteString("-")
		case b.Len() > 0 && v < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		v = math.Abs(v)
		if v != 1 || i == 0 {
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		switch {
		case i == 1:
			b.WriteString("x")
		case i > 1:
			b.WriteString("x^")
			b.WriteString(strconv.Itoa(i))
		}
	}

	return b.String()
}
