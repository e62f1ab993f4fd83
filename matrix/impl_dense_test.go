// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamroute/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseEmpty checks that a 0×0 matrix is a valid empty table.
func TestNewDenseEmpty(t *testing.T) {
	m, err := matrix.NewSquare(0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.NoError(t, matrix.ValidateDistance(m))
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.SetSymmetric(0, 5, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices, and that
// fresh entries hold NoEdge.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, matrix.NoEdge, v)

	require.NoError(t, m.Set(1, 2, 789))
	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, matrix.Cost(789), v)
}

// TestSetSymmetric writes both mirrored cells.
func TestSetSymmetric(t *testing.T) {
	m, err := matrix.NewSquare(3)
	require.NoError(t, err)
	require.NoError(t, m.SetSymmetric(0, 2, 9))

	a, _ := m.At(0, 2)
	b, _ := m.At(2, 0)
	require.Equal(t, matrix.Cost(9), a)
	require.Equal(t, a, b)
}

// TestCloneIsDeep checks that mutating a clone leaves the source untouched.
func TestCloneIsDeep(t *testing.T) {
	m, err := matrix.FromRows([][]matrix.Cost{{0, 1}, {1, 0}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 42))

	orig, _ := m.At(0, 1)
	require.Equal(t, matrix.Cost(1), orig)
}

// TestFromRowsRagged rejects rows of unequal length.
func TestFromRowsRagged(t *testing.T) {
	_, err := matrix.FromRows([][]matrix.Cost{{0, 1}, {1}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDenseString(t *testing.T) {
	m, err := matrix.FromRows([][]matrix.Cost{{0, 5}, {5, 0}})
	require.NoError(t, err)
	require.Equal(t, "[0, 5]\n[5, 0]\n", m.String())
}
