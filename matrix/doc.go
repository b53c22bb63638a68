// Package matrix is a dense linear-algebra engine over immutable float64 matrices.
//
// The matrix package provides:
//
//   - Dense, an immutable row-major matrix whose expensive derived results
//     (RREF, determinant, inverse, LU) are memoized per instance and safe to
//     read from many goroutines.
//   - Elementary arithmetic (Add, Sub, Hadamard, Mul, Scale, ScalarDivide,
//     Transpose, MatVec, Trace) and pure row/column operations.
//   - Gauss–Jordan reduction (RREF), Det, Inverse, Solve, SolveMatrix.
//   - Partial-pivoted LU (P·A = L·U) and Householder QR.
//   - Eigenvalues by three strategies: closed form through the characteristic
//     polynomial (2x2 to 4x4), Jacobi rotations (symmetric), power iteration
//     (dominant eigenvalue).
//   - Column statistics (Covariance, Correlation) that produce Jacobi-ready input.
//
// Every failure is a sentinel error (ErrDimensionMismatch, ErrNonSquare,
// ErrSingular, ...) wrapped with the operation name; test with errors.Is.
// The package is silent by default; SetLogger installs a zerolog.Logger.
//
// See the examples in this package for usage patterns.
package matrix
