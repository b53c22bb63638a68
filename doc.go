// Package lvlinalg is a small dense linear-algebra engine: immutable float64
// matrices, exact Gauss–Jordan reduction, factorizations and three
// eigenvalue strategies.
//
// What is inside?
//
//	• Dense storage with memoized RREF, determinant, inverse and LU
//	• Elementary algebra and pure row/column operations
//	• Solvers: Solve, SolveMatrix, LU-based Solve
//	• Factorizations: partial-pivoted LU (P·A = L·U), Householder QR
//	• Eigenvalues: closed form (2x2 to 4x4), Jacobi (symmetric), power iteration
//	• Statistics: centering, covariance, correlation
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/: Dense, kernels, solvers, eigen methods, statistics
//	ring/:   generic matrix over a ring element with a cofactor determinant
//	poly/:   real polynomials and a real root finder
//
// The closed-form eigenvalue method ties them together: matrix builds
// A − Iλ as a ring.Matrix[poly.Poly], ring expands the determinant into the
// characteristic polynomial, and poly returns its real roots.
//
// Quick example:
//
//	a, _ := matrix.NewDense([][]float64{{3, 4}, {2, -1}})
//	x, _ := a.Solve([]float64{5, 7}) // [3 -1]
//
//	go get github.com/katalvlaran/lvlinalg/matrix
package lvlinalg
