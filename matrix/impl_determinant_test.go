// Package matrix_test contains unit tests for Det, Inverse and the linear solvers.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// toGonum copies m into a gonum dense matrix used as an independent oracle.
func toGonum(m *matrix.Dense) *mat.Dense {
	r, c := m.Shape()

	return mat.NewDense(r, c, m.RawData())
}

func TestDetClosedForms(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-7}}, -7},
		{"2x2", [][]float64{{3, 8}, {4, 6}}, -14},
		{"3x3", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"3x3 singular", [][]float64{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}, 0},
		{"4x4 diagonal", [][]float64{{2, 0, 0, 0}, {0, 3, 0, 0}, {0, 0, 4, 0}, {0, 0, 0, 5}}, 120},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.Det(MustDense(t, tc.rows))
			require.NoError(t, err)
			require.InDelta(t, tc.want, d, tolTight)
		})
	}
}

// TestDetMatchesGonum compares the RREF path (n ≥ 4) against gonum's LU determinant.
func TestDetMatchesGonum(t *testing.T) {
	t.Parallel()
	for _, n := range []int{4, 5, 7, 10} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := RandFilledDense(t, n, n, int64(n))
			got, err := a.Det()
			require.NoError(t, err)
			want := mat.Det(toGonum(a))
			require.InDelta(t, want, got, tolLoose*(1+math.Abs(want)))
		})
	}
}

// TestDetSwapSign exercises a 4x4 that needs row interchanges during reduction.
func TestDetSwapSign(t *testing.T) {
	t.Parallel()
	a := MustDense(t, [][]float64{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 2},
		{0, 0, 3, 0},
	})
	d, err := a.Det()
	require.NoError(t, err)
	require.InDelta(t, 6.0, d, tolTight) // two swaps: (−1)²·1·1·3·2
}

// TestDetProperties checks det(A) = det(Aᵀ) and det(A·B) = det(A)·det(B).
func TestDetProperties(t *testing.T) {
	t.Parallel()
	a := RandWellConditioned(t, 5, 11)
	b := RandWellConditioned(t, 5, 12)

	da, err := a.Det()
	require.NoError(t, err)
	dat, err := MustT(t, a).Det()
	require.NoError(t, err)
	require.InDelta(t, da, dat, tolLoose*math.Abs(da))

	db, err := b.Det()
	require.NoError(t, err)
	dab, err := MustMul(t, a, b).Det()
	require.NoError(t, err)
	require.InDelta(t, da*db, dab, tolLoose*math.Abs(da*db))
}

func TestDetErrors(t *testing.T) {
	t.Parallel()
	_, err := matrix.Det(MustDense(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Det(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverseSmall(t *testing.T) {
	t.Parallel()
	inv, err := MustDense(t, [][]float64{{4}}).Inverse()
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.25}}, inv)

	inv, err = MustDense(t, [][]float64{{4, 7}, {2, 6}}).Inverse()
	require.NoError(t, err)
	CompareClose(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}, inv, tolTight)
}

// TestInverseRoundTrip checks A·A⁻¹ = I and agreement with gonum.
func TestInverseRoundTrip(t *testing.T) {
	t.Parallel()
	for _, n := range []int{3, 4, 8} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := RandWellConditioned(t, n, int64(100+n))
			inv, err := matrix.Inverse(a)
			require.NoError(t, err)
			CompareMatrices(t, IdentityDense(t, n), MustMul(t, a, inv), tolLoose)
			CompareMatrices(t, IdentityDense(t, n), MustMul(t, inv, a), tolLoose)

			var want mat.Dense
			require.NoError(t, want.Inverse(toGonum(a)))
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					require.InDelta(t, want.At(i, j), MustAt(t, inv, i, j), tolLoose)
				}
			}
		})
	}
}

func TestInverseSingular(t *testing.T) {
	t.Parallel()
	cases := map[string][][]float64{
		"1x1": {{0}},
		"2x2": {{1, 2}, {2, 4}},
		"3x3": {{1, 2, 3}, {2, 3, 4}, {3, 4, 5}},
		"4x4": {{1, 2, 3, 4}, {2, 4, 6, 8}, {0, 1, 0, 1}, {1, 0, 1, 0}},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.Inverse(MustDense(t, rows))
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}

	_, err := matrix.Inverse(MustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestSolveScenario solves [[3,4],[2,-1]]·x = [5,7].
func TestSolveScenario(t *testing.T) {
	t.Parallel()
	a := MustDense(t, [][]float64{{3, 4}, {2, -1}})

	x, err := a.Solve([]float64{5, 7})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{3, -1}, x, tolTight)
}

// TestSolveResidual checks ‖A·x − b‖ is small on random systems.
func TestSolveResidual(t *testing.T) {
	t.Parallel()
	const n = 6
	a := RandWellConditioned(t, n, 5)
	b := []float64{1, -2, 3, -4, 5, -6}

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	require.InDeltaSlice(t, b, ax, tolLoose)
}

func TestSolveErrors(t *testing.T) {
	t.Parallel()
	a := MustDense(t, [][]float64{{1, 2}, {2, 4}})

	_, err := matrix.Solve(a, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.Solve(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Solve(MustDense(t, [][]float64{{1, 2}}), []float64{1})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestSolveMatrix(t *testing.T) {
	t.Parallel()
	a := RandWellConditioned(t, 4, 9)
	b := RandFilledDense(t, 4, 3, 10)

	x, err := matrix.SolveMatrix(a, b)
	require.NoError(t, err)
	CompareMatrices(t, b, MustMul(t, a, x), tolLoose)

	_, err = matrix.SolveMatrix(a, RandFilledDense(t, 3, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAugment(t *testing.T) {
	t.Parallel()
	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := MustDense(t, [][]float64{{5}, {6}})

	ab, err := matrix.Augment(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 5}, {3, 4, 6}}, ab)

	_, err = matrix.Augment(a, MustDense(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
