// Package matrix_test contains unit tests for the eigenvalue solvers.
package matrix_test

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// ---------- closed form ----------

func TestEigenvaluesClosedForm(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		rows [][]float64
		want []float64
		tol  float64
	}{
		{"2x2 scenario", [][]float64{{6, -1}, {2, 3}}, []float64{5, 4}, 1e-4},
		{"3x3 block", [][]float64{{2, 0, 0}, {0, 3, 4}, {0, 4, 9}}, []float64{11, 2, 1}, tolLoose},
		{"3x3 repeated", [][]float64{{2, 0, 0}, {0, 2, 0}, {0, 0, 5}}, []float64{5, 2, 2}, tolLoose},
		{"4x4 blocks", [][]float64{
			{1, 2, 0, 0},
			{2, 1, 0, 0},
			{0, 0, -1, 6},
			{0, 0, 6, -1},
		}, []float64{-7, 5, 3, -1}, tolLoose},
		{"2x2 rotation has no real roots", [][]float64{{0, -1}, {1, 0}}, []float64{}, 0},
		{"3x3 mixed", [][]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 2}}, []float64{2}, tolLoose},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.EigenvaluesClosedForm(MustDense(t, tc.rows))
			require.NoError(t, err)
			require.Len(t, got, len(tc.want))
			require.InDeltaSlice(t, tc.want, got, tc.tol)
		})
	}
}

// TestEigenvaluesTraceAndDet checks Σλ = tr(A) and ∏λ = det(A) for a
// symmetric 4x4 (all roots real).
func TestEigenvaluesTraceAndDet(t *testing.T) {
	t.Parallel()
	a := MustDense(t, [][]float64{
		{4, 1, 0, 0},
		{1, 3, 1, 0},
		{0, 1, 2, 1},
		{0, 0, 1, 1},
	})
	vals, err := a.Eigenvalues()
	require.NoError(t, err)
	require.Len(t, vals, 4)

	sum, prod := 0.0, 1.0
	for _, v := range vals {
		sum += v
		prod *= v
	}
	tr, err := a.Trace()
	require.NoError(t, err)
	det, err := a.Det()
	require.NoError(t, err)
	require.InDelta(t, tr, sum, tolLoose)
	require.InDelta(t, det, prod, tolLoose)

	for k := 1; k < len(vals); k++ {
		require.GreaterOrEqual(t, math.Abs(vals[k-1]), math.Abs(vals[k]))
	}
}

func TestEigenvaluesClosedFormErrors(t *testing.T) {
	t.Parallel()
	_, err := matrix.EigenvaluesClosedForm(MustDense(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrUnsupportedSize)
	_, err = matrix.EigenvaluesClosedForm(RandFilledDense(t, 5, 5, 1))
	require.ErrorIs(t, err, matrix.ErrUnsupportedSize)
	_, err = matrix.EigenvaluesClosedForm(MustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// ---------- Jacobi ----------

// TestJacobiMatchesGonum compares eigenvalues with gonum's symmetric solver and
// checks the eigenvector invariants A·v = λ·v and SᵀS = I.
func TestJacobiMatchesGonum(t *testing.T) {
	t.Parallel()
	for _, n := range []int{2, 3, 6, 10} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := RandSymmetric(t, n, int64(200+n))
			res, err := matrix.Jacobi(a)
			require.NoError(t, err)
			require.Len(t, res.Values, n)

			var es mat.EigenSym
			require.True(t, es.Factorize(mat.NewSymDense(n, a.RawData()), false))
			want := es.Values(nil)
			got := append([]float64(nil), res.Values...)
			sort.Float64s(want)
			sort.Float64s(got)
			require.InDeltaSlice(t, want, got, tolLoose)

			s := res.Vectors
			CompareMatrices(t, IdentityDense(t, n), MustMul(t, MustT(t, s), s), tolLoose)
			for k, lambda := range res.Values {
				v, err := s.Col(k)
				require.NoError(t, err)
				av, err := matrix.MatVec(a, v)
				require.NoError(t, err)
				for i := range v {
					require.InDelta(t, lambda*v[i], av[i], tolLoose)
				}
			}

			for k := 1; k < n; k++ {
				require.GreaterOrEqual(t, math.Abs(res.Values[k-1]), math.Abs(res.Values[k]))
			}
		})
	}
}

// TestJacobiCovariance feeds a covariance matrix straight into Jacobi.
func TestJacobiCovariance(t *testing.T) {
	t.Parallel()
	x := RandFilledDense(t, 30, 4, 8)
	cov, _, err := matrix.Covariance(x)
	require.NoError(t, err)

	res, err := matrix.Jacobi(cov)
	require.NoError(t, err)
	tr, err := cov.Trace()
	require.NoError(t, err)

	sum := 0.0
	for _, v := range res.Values {
		require.GreaterOrEqual(t, v, -tolLoose) // positive semidefinite
		sum += v
	}
	require.InDelta(t, tr, sum, tolLoose)
}

func TestJacobiDiagonalInput(t *testing.T) {
	t.Parallel()
	a := MustDense(t, [][]float64{{1, 0, 0}, {0, -3, 0}, {0, 0, 2}})

	res, err := matrix.Jacobi(a)
	require.NoError(t, err)
	require.Equal(t, []float64{-3, 2, 1}, res.Values)
	CompareExact(t, [][]float64{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}, res.Vectors)
}

func TestJacobiErrors(t *testing.T) {
	t.Parallel()
	_, err := matrix.Jacobi(MustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Jacobi(MustDense(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrTooSmall)
	_, err = matrix.Jacobi(MustDense(t, [][]float64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, matrix.ErrNotSymmetric)
	_, err = matrix.Jacobi(RandSymmetric(t, 3, 5), matrix.WithMaxIterations(1))
	require.ErrorIs(t, err, matrix.ErrNotConverged)

	// a looser tolerance accepts small asymmetry
	_, err = matrix.Jacobi(MustDense(t, [][]float64{{1, 2}, {2.001, 4}}), matrix.WithEpsilon(1e-2))
	require.NoError(t, err)
}

// ---------- power iteration ----------

func TestPowerIteration(t *testing.T) {
	t.Parallel()
	a := MustDense(t, [][]float64{{2, 0}, {0, 1}})

	mu, err := matrix.PowerIteration(a)
	require.NoError(t, err)
	require.InDelta(t, 2.0, mu, tolLoose)
}

// TestPowerIterationDominant checks the estimate against Jacobi on a
// positive definite matrix with a clear spectral gap.
func TestPowerIterationDominant(t *testing.T) {
	t.Parallel()
	a := MustDense(t, [][]float64{{4, 1, 0}, {1, 3, 1}, {0, 1, 1}})

	res, err := matrix.Jacobi(a)
	require.NoError(t, err)
	mu, err := matrix.PowerIteration(a, matrix.WithSeed(42))
	require.NoError(t, err)
	require.InDelta(t, res.Values[0], mu, tolLoose)
}

func TestPowerIterationEdgeCases(t *testing.T) {
	t.Parallel()
	zero := MustDense(t, [][]float64{{0, 0}, {0, 0}})
	mu, err := matrix.PowerIteration(zero)
	require.NoError(t, err)
	require.Equal(t, 0.0, mu)

	_, err = matrix.PowerIteration(MustDense(t, [][]float64{{2, 0}, {0, 1}}), matrix.WithMaxIterations(1))
	require.ErrorIs(t, err, matrix.ErrNotConverged)

	_, err = matrix.PowerIteration(MustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestPowerIterationDeterministic checks a fixed seed reproduces the estimate bit for bit.
func TestPowerIterationDeterministic(t *testing.T) {
	t.Parallel()
	a := MustDense(t, [][]float64{{4, 1, 0}, {1, 3, 1}, {0, 1, 1}})

	first, err := matrix.PowerIteration(a, matrix.WithSeed(9))
	require.NoError(t, err)
	second, err := matrix.PowerIteration(a, matrix.WithSeed(9))
	require.NoError(t, err)
	require.Equal(t, first, second)
}
