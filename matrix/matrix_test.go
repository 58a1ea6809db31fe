package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, rows [][]float64) Matrix {
	m, err := New(rows)
	require.NoError(t, err)
	return m
}

func TestNewRejectsRaggedRows(t *testing.T) {
	_, err := New([][]float64{{1, 2}, {3}})
	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
}

func TestNewCopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m := mustNew(t, rows)

	rows[0][0] = 99
	require.Equal(t, 1.0, m.At(0, 0))

	// The accessor hands out copies too.
	entries := m.Entries()
	entries[1][1] = 99
	require.Equal(t, 4.0, m.At(1, 1))
}

func TestDeterminant1x1(t *testing.T) {
	m := mustNew(t, [][]float64{{7}})
	det, err := m.Determinant()
	require.NoError(t, err)
	require.Equal(t, 7.0, det)
}

func TestDeterminant2x2(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	det, err := m.Determinant()
	require.NoError(t, err)
	require.Equal(t, -2.0, det)
}

func TestDeterminant3x3(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2, 3}, {3, 2, 1}, {0, 0, 8}})
	det, err := m.Determinant()
	require.NoError(t, err)
	require.Equal(t, -32.0, det)
}

func TestDeterminantNonSquare(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := m.Determinant()
	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
}

func TestMinor(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	minor, err := m.Minor(1, 1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 3}, {7, 9}}, minor.Entries())
}

func TestAdjugate(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2, 3}, {3, 2, 1}, {0, 0, 8}})
	adj, err := m.Adjugate()
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{16, -16, -4},
		{-24, 8, 8},
		{0, 0, -4},
	}, adj.Entries())
}

func TestInverse(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2, 3}, {3, 2, 1}, {0, 0, 8}})
	inv, err := m.Inverse()
	require.NoError(t, err)

	expected := mustNew(t, [][]float64{
		{-0.5, 0.5, 0.125},
		{0.75, -0.25, -0.25},
		{0, 0, 0.125},
	})
	require.True(t, inv.Equal(expected, 1e-12))
}

func TestInverseTimesOriginalIsIdentity(t *testing.T) {
	m := mustNew(t, [][]float64{{4, 7}, {2, 6}})
	inv, err := m.Inverse()
	require.NoError(t, err)

	product, err := m.Multiply(inv)
	require.NoError(t, err)
	require.True(t, product.Equal(Identity(2), 1e-9))
}

func TestAdjugateEqualsDeterminantTimesInverse(t *testing.T) {
	m := mustNew(t, [][]float64{{2, 1, 1}, {1, 3, 2}, {1, 0, 0}})
	det, err := m.Determinant()
	require.NoError(t, err)
	require.NotZero(t, det)

	adj, err := m.Adjugate()
	require.NoError(t, err)
	inv, err := m.Inverse()
	require.NoError(t, err)

	require.True(t, adj.Equal(inv.Scale(det), 1e-9))
}

func TestInverseSingular(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2}, {2, 4}})
	det, err := m.Determinant()
	require.NoError(t, err)
	require.Zero(t, det)

	_, err = m.Inverse()
	require.ErrorIs(t, err, ErrSingular)
}

func TestTranspose(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, m.Transpose().Entries())
}

func TestAddAndSubtract(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 8}, {10, 12}}, sum.Entries())

	diff, err := sum.Subtract(b)
	require.NoError(t, err)
	require.True(t, diff.Equal(a, 0))
}

func TestAddShapeMismatch(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}})
	b := mustNew(t, [][]float64{{1}, {2}})
	_, err := a.Add(b)
	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
	require.Len(t, dimErr.Dims, 2)
}

func TestMultiply(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{5, 6}, {7, 8}})

	product, err := a.Multiply(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, product.Entries())
}

func TestMultiplyRectangular(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}})
	b := mustNew(t, [][]float64{{1}, {2}, {3}})

	product, err := a.Multiply(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{14}}, product.Entries())
}

func TestMultiplyShapeMismatch(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}})
	b := mustNew(t, [][]float64{{1, 2}})
	_, err := a.Multiply(b)
	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
}

func TestIdentity(t *testing.T) {
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, Identity(2).Entries())
}

func TestScale(t *testing.T) {
	m := mustNew(t, [][]float64{{1, -2}, {0, 3}})
	require.Equal(t, [][]float64{{2, -4}, {0, 6}}, m.Scale(2).Entries())
}
