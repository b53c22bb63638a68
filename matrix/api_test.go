// Package matrix_test contains unit tests for constructors, predicates and facades.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z)

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.True(t, id.IsIdentity())
	require.True(t, id.IsDiagonal())

	d, err := matrix.NewDiagonal([]float64{1, -2, 3})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, -2, 0}, {0, 0, 3}}, d)
	det, err := d.Det()
	require.NoError(t, err)
	require.Equal(t, -6.0, det)

	col, err := matrix.NewColumnVector([]float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, [2]int{2, 1}, shape(col))

	row, err := matrix.NewRowVector([]float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, [2]int{1, 2}, shape(row))

	like, err := matrix.IdentityLike(MustDense(t, [][]float64{{5, 6}, {7, 8}}, matrix.WithEpsilon(1e-4)))
	require.NoError(t, err)
	require.True(t, like.IsIdentity())
	require.Equal(t, 1e-4, like.Epsilon())
}

func TestConstructorErrors(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewZeros(0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewIdentity(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDiagonal(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDiagonal([]float64{1, math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.NewColumnVector(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewVandermonde([]float64{1, math.NaN()}, 2)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.IdentityLike(MustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestVandermondeInterpolation fits y = 1 + 2x + 3x² through three points.
func TestVandermondeInterpolation(t *testing.T) {
	t.Parallel()
	xs := []float64{-1, 0, 2}
	v, err := matrix.NewVandermonde(xs, 3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, -1, 1}, {1, 0, 0}, {1, 2, 4}}, v)

	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 1 + 2*x + 3*x*x
	}
	coef, err := v.Solve(ys)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 2, 3}, coef, tolTight)
}

func TestStructuralPredicates(t *testing.T) {
	t.Parallel()
	upper := MustDense(t, [][]float64{{1, 2}, {0, 3}})
	lower := MustDense(t, [][]float64{{1, 0}, {2, 3}})
	sym := MustDense(t, [][]float64{{1, 2}, {2, 3}})
	rect := MustDense(t, [][]float64{{1, 0, 0}})

	require.True(t, upper.IsUpperTriangular())
	require.False(t, upper.IsLowerTriangular())
	require.True(t, lower.IsLowerTriangular())
	require.True(t, sym.IsSymmetric())
	require.False(t, upper.IsSymmetric())
	require.False(t, sym.IsDiagonal())
	require.False(t, rect.IsSymmetric())
	require.False(t, rect.IsUpperTriangular())
	require.False(t, rect.IsIdentity())

	// predicates honour the matrix epsilon
	near := MustDense(t, [][]float64{{1, 1e-5}, {0, 1}}, matrix.WithEpsilon(1e-4))
	require.True(t, near.IsIdentity())
	require.True(t, near.IsDiagonal())

	var nilM *matrix.Dense
	require.False(t, nilM.IsSymmetric())
}

func TestSymmetrize(t *testing.T) {
	t.Parallel()
	s, err := matrix.Symmetrize(MustDense(t, [][]float64{{1, 2}, {4, 3}}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 3}, {3, 3}}, s)
	require.True(t, s.IsSymmetric())

	_, err = matrix.Symmetrize(MustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestRowColSums(t *testing.T) {
	t.Parallel()
	m := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	rs, err := matrix.RowSums(m)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 15}, rs)

	cs, err := matrix.ColSums(m)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, cs)

	_, err = matrix.RowSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func shape(m *matrix.Dense) [2]int {
	r, c := m.Shape()

	return [2]int{r, c}
}
