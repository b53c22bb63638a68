// SPDX-License-Identifier: MIT

// Package ring provides a small generic matrix over a commutative ring.
//
// The element type supplies its own arithmetic through Element, so the same
// Matrix serves plain numbers (Real) and symbolic entries such as
// polynomials. Only what exact symbolic work needs is offered: construction,
// element access, transpose and a cofactor determinant that never divides.
//
// Determinism:
//   - Cofactor expansion always runs along row 0, columns ascending.
//
// Complexity:
//   - Det is O(n!) ring operations; intended for n ≤ 4.
package ring

// Element is the capability set of a ring element: closed addition,
// subtraction and multiplication plus a zero test.
// Implementations return fresh values and never mutate the receiver.
type Element[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	IsZero() bool
}

// Real lifts float64 into Element.
type Real float64

// Add returns r + o.
func (r Real) Add(o Real) Real { return r + o }

// Sub returns r − o.
func (r Real) Sub(o Real) Real { return r - o }

// Mul returns r · o.
func (r Real) Mul(o Real) Real { return r * o }

// IsZero reports r == 0 exactly.
func (r Real) IsZero() bool { return r == 0 }

// Compile-time assertion for Element conformance.
var _ Element[Real] = Real(0)
