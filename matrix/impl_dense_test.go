// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/VsIG-official/SML/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	require.ErrorIs(t, err, matrix.ErrDimension) // same kind as shape mismatches

	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseShape checks the shape invariant, zero sizes included.
func TestNewDenseShape(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ r, c int }{{0, 0}, {0, 3}, {3, 0}, {1, 1}, {3, 4}} {
		m, err := matrix.NewDense(tc.r, tc.c)
		require.NoError(t, err)
		require.Equal(t, tc.r, m.Rows())
		require.Equal(t, tc.c, m.Cols())
		r, c := m.Shape()
		require.Equal(t, tc.r, r)
		require.Equal(t, tc.c, c)
		m.Do(func(_, _ int, v float64) bool {
			require.Zero(t, v) // zero-filled
			return true
		})
	}
}

// TestNewDenseFrom covers nil, empty, ragged and deep-copy behavior.
func TestNewDenseFrom(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	empty, err := matrix.NewDenseFrom([][]float64{})
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewDenseFrom(src)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	src[0][0] = 100 // must not leak into m
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestNewDenseFromPolicy rejects non-finite values only when asked to.
func TestNewDenseFromPolicy(t *testing.T) {
	t.Parallel()
	grid := [][]float64{{1, math.NaN()}}

	_, err := matrix.NewDenseFrom(grid)
	require.NoError(t, err)

	_, err = matrix.NewDenseFrom(grid, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access,
// for negative indices and for indices beyond the shape.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

// TestSetPolicy checks the optional finite-only guard.
func TestSetPolicy(t *testing.T) {
	t.Parallel()
	loose := MustDense(t, 1, 1)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))

	strict, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Apply(func(_, _ int, _ float64) float64 { return math.NaN() }), matrix.ErrNaNInf)

	relaxed, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, math.NaN()))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()

	MustSet(t, clone, 0, 0, 3.0)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))

	MustSet(t, m, 1, 1, 9.0)
	require.Equal(t, 2.0, MustAt(t, clone, 1, 1))
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	t.Parallel()
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4.5}})
	require.Equal(t, "1 2\n3 4.5\n", m.String())

	require.Equal(t, "", MustDense(t, 0, 0).String())
	require.Equal(t, "\n\n", MustDense(t, 2, 0).String())
}

// TestRowColToSlice checks copy-out helpers.
func TestRowColToSlice(t *testing.T) {
	t.Parallel()
	m := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)
	row[0] = 0
	require.Equal(t, 4.0, MustAt(t, m, 1, 0))

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	grid := m.ToSlice()
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, grid)
	grid[0][0] = 42
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestDoApply checks traversal order and early exit.
func TestDoApply(t *testing.T) {
	t.Parallel()
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * float64(i+j+1) }))
	CompareExact(t, [][]float64{{1, 4}, {6, 12}}, m)
}
