// SPDX-License-Identifier: MIT

package gridio_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VsIG-official/SML/internal/gridio"
	"github.com/VsIG-official/SML/matrix"
	"github.com/VsIG-official/SML/polynomial"
)

func TestReadMatrix(t *testing.T) {
	t.Parallel()

	m, err := gridio.ReadMatrix(strings.NewReader("matrix: [[1, 2], [3, 4.5]]\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4.5}}, m.ToSlice())

	_, err = gridio.ReadMatrix(strings.NewReader("matrix: [[1, 2], [3]]\n"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = gridio.ReadMatrix(strings.NewReader("other: 1\n"))
	require.Error(t, err) // unknown field

	_, err = gridio.ReadMatrix(strings.NewReader(""))
	require.ErrorIs(t, err, gridio.ErrMissingKey)

	_, err = gridio.ReadMatrix(strings.NewReader("matrix:\n"))
	require.ErrorIs(t, err, gridio.ErrMissingKey)
}

func TestReadPolynomial(t *testing.T) {
	t.Parallel()

	src := `
polynomial:
  - {degree: 2, coefficient: 3}
  - {degree: 1, coefficient: 4}
  - {degree: 0, coefficient: -1}
`
	p, err := gridio.ReadPolynomial(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "3x^2 + 4x - 1", p.String())

	_, err = gridio.ReadPolynomial(strings.NewReader("polynomial:\n  - {degree: 1, coefficient: 1}\n  - {degree: 1, coefficient: 2}\n"))
	require.ErrorIs(t, err, polynomial.ErrDuplicateDegree)

	_, err = gridio.ReadPolynomial(strings.NewReader("polynomial:\n  - {degree: 3, coefficient: 0}\n"))
	require.ErrorIs(t, err, polynomial.ErrMeaninglessTerm)
}

func TestReadTraining(t *testing.T) {
	t.Parallel()

	src := `
training:
  input:  [[0, 0], [0, 1], [1, 0], [1, 1]]
  output: [[0], [1], [1], [0]]
`
	x, y, err := gridio.ReadTraining(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 4, x.Rows())
	assert.Equal(t, 2, x.Cols())
	assert.Equal(t, 1, y.Cols())

	_, _, err = gridio.ReadTraining(strings.NewReader("matrix: [[1]]\n"))
	require.Error(t, err)

	_, _, err = gridio.ReadTraining(strings.NewReader("training:\n  output: [[1]]\n"))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestWriteMatrix(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFrom([][]float64{{1, -2.5}, {math.Inf(1), 0}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gridio.WriteMatrix(&buf, m))
	assert.Equal(t, "matrix:\n  - [1, -2.5]\n  - [.inf, 0]\n", buf.String())

	back, err := gridio.ReadMatrix(&buf)
	require.NoError(t, err)
	eq, err := matrix.Equal(m, back)
	require.NoError(t, err)
	assert.True(t, eq)

	require.ErrorIs(t, gridio.WriteMatrix(&buf, nil), matrix.ErrNilMatrix)
}

func TestWritePolynomial(t *testing.T) {
	t.Parallel()

	p := polynomial.FromPairs(polynomial.Pair{Degree: 2, Coefficient: 7})
	var buf bytes.Buffer
	require.NoError(t, gridio.WritePolynomial(&buf, p))

	back, err := gridio.ReadPolynomial(&buf)
	require.NoError(t, err)
	assert.Equal(t, 7.0, back.Coefficient(2))
	assert.Equal(t, 1, back.Count())

	require.ErrorIs(t, gridio.WritePolynomial(&buf, nil), polynomial.ErrNilPolynomial)
}

func TestReadFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "m.yaml")
	require.NoError(t, os.WriteFile(path, []byte("matrix: [[7]]\n"), 0o600))

	m, err := gridio.ReadMatrixFile(path)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{7}}, m.ToSlice())

	_, err = gridio.ReadMatrixFile(filepath.Join(dir, "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("polynomial: [{degree: 1, coefficient: 0}]\n"), 0o600))
	_, err = gridio.ReadPolynomialFile(bad)
	require.ErrorIs(t, err, polynomial.ErrMeaninglessTerm)
	assert.Contains(t, err.Error(), bad)
}
