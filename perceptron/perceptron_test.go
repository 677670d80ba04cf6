// SPDX-License-Identifier: MIT

package perceptron_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VsIG-official/SML/matrix"
	"github.com/VsIG-official/SML/perceptron"
)

// hide forces the generic matrix paths.
type hide struct{ matrix.Matrix }

func mustFrom(t *testing.T, grid [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(grid)
	require.NoError(t, err)

	return m
}

var (
	gateInput = [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	orOutput  = [][]float64{{0}, {1}, {1}, {1}}
	xorOutput = [][]float64{{0}, {1}, {1}, {0}}
)

func TestNew(t *testing.T) {
	t.Parallel()

	x := mustFrom(t, gateInput)
	p, err := perceptron.New(x)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Features())
	assert.Equal(t, 4, p.Hidden()) // defaults to input rows

	w1, w2 := p.Weights()
	assert.Equal(t, 2, w1.Rows())
	assert.Equal(t, 4, w1.Cols())
	assert.Equal(t, 4, w2.Rows())
	assert.Equal(t, 1, w2.Cols())
	for _, w := range []*matrix.Dense{w1, w2} {
		w.Do(func(_, _ int, v float64) bool {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
			return true
		})
	}

	p, err = perceptron.New(x, perceptron.WithHiddenUnits(3))
	require.NoError(t, err)
	assert.Equal(t, 3, p.Hidden())
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := perceptron.New(nil)
	require.ErrorIs(t, err, perceptron.ErrNilInput)

	var typedNil *matrix.Dense
	_, err = perceptron.New(typedNil)
	require.ErrorIs(t, err, perceptron.ErrNilInput)

	empty, err := matrix.NewDense(0, 2)
	require.NoError(t, err)
	_, err = perceptron.New(empty)
	require.ErrorIs(t, err, perceptron.ErrShape)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { perceptron.WithIterations(-1) })
	require.Panics(t, func() { perceptron.WithHiddenUnits(-1) })
	require.Panics(t, func() { perceptron.WithLearningRate(0) })
	require.Panics(t, func() { perceptron.WithLearningRate(math.NaN()) })
	require.Panics(t, func() { perceptron.WithBias(math.Inf(1)) })
	require.NotPanics(t, func() { perceptron.WithBias(-0.5) })
}

func TestDeterministicSeed(t *testing.T) {
	t.Parallel()

	x := mustFrom(t, gateInput)
	y := mustFrom(t, xorOutput)

	a, err := perceptron.New(x, perceptron.WithSeed(42))
	require.NoError(t, err)
	b, err := perceptron.New(x, perceptron.WithSeed(42))
	require.NoError(t, err)
	require.NoError(t, a.Train(x, y, 50))
	require.NoError(t, b.Train(x, y, 50))

	aw1, aw2 := a.Weights()
	bw1, bw2 := b.Weights()
	assert.Equal(t, aw1.ToSlice(), bw1.ToSlice())
	assert.Equal(t, aw2.ToSlice(), bw2.ToSlice())

	fast, err := a.Predict(x)
	require.NoError(t, err)
	slow, err := a.Predict(hide{x})
	require.NoError(t, err)
	same, err := matrix.AllClose(fast, slow, 0, 1e-12)
	require.NoError(t, err)
	assert.True(t, same)

	c, err := perceptron.New(x, perceptron.WithSeed(7))
	require.NoError(t, err)
	d, err := perceptron.New(x) // seed 0 → default stream
	require.NoError(t, err)
	cw1, _ := c.Weights()
	dw1, _ := d.Weights()
	assert.NotEqual(t, cw1.ToSlice(), dw1.ToSlice())
}

func TestTrain_Errors(t *testing.T) {
	t.Parallel()

	x := mustFrom(t, gateInput)
	y := mustFrom(t, orOutput)
	p, err := perceptron.New(x)
	require.NoError(t, err)

	require.ErrorIs(t, p.Train(x, y, -1), perceptron.ErrIterations)
	require.ErrorIs(t, p.Train(nil, y, 1), perceptron.ErrNilInput)
	require.ErrorIs(t, p.Train(x, nil, 1), perceptron.ErrNilInput)
	require.ErrorIs(t, p.Train(mustFrom(t, [][]float64{{1, 2, 3}}), y, 1), perceptron.ErrShape)
	require.ErrorIs(t, p.Train(x, mustFrom(t, [][]float64{{1}, {0}}), 1), perceptron.ErrShape)
	require.ErrorIs(t, p.Train(x, mustFrom(t, [][]float64{{1, 0}, {0, 1}, {1, 1}, {0, 0}}), 1), perceptron.ErrShape)

	_, err = p.Predict(mustFrom(t, [][]float64{{1}}))
	require.ErrorIs(t, err, perceptron.ErrShape)
	_, err = p.Loss(x, nil)
	require.ErrorIs(t, err, perceptron.ErrNilInput)
}

func TestTrain_ZeroIterationsAndCancel(t *testing.T) {
	t.Parallel()

	x := mustFrom(t, gateInput)
	y := mustFrom(t, orOutput)
	p, err := perceptron.New(x)
	require.NoError(t, err)
	before, _ := p.Weights()

	require.NoError(t, p.Train(x, y, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, p.TrainContext(ctx, x, y, 100), context.Canceled)

	after, _ := p.Weights()
	assert.Equal(t, before.ToSlice(), after.ToSlice())
}

// TestFit_OrGate trains the linearly separable OR gate and checks rounded outputs.
func TestFit_OrGate(t *testing.T) {
	t.Parallel()

	x := mustFrom(t, gateInput)
	y := mustFrom(t, orOutput)
	p, err := perceptron.New(x, perceptron.WithIterations(5000))
	require.NoError(t, err)

	start, err := p.Loss(x, y)
	require.NoError(t, err)
	require.NoError(t, p.Fit(x, y))
	end, err := p.Loss(x, y)
	require.NoError(t, err)
	assert.Less(t, end, start)

	for i, row := range gateInput {
		out, err := p.Predict(mustFrom(t, [][]float64{row}))
		require.NoError(t, err)
		v, err := out.At(0, 0)
		require.NoError(t, err)
		assert.Equal(t, orOutput[i][0], math.Round(v), "input %v", row)
	}
}

// TestTrain_XorLossDecreases checks that training moves the XOR loss downhill.
func TestTrain_XorLossDecreases(t *testing.T) {
	t.Parallel()

	x := mustFrom(t, gateInput)
	y := mustFrom(t, xorOutput)
	p, err := perceptron.New(x, perceptron.WithSeed(3))
	require.NoError(t, err)

	start, err := p.Loss(x, y)
	require.NoError(t, err)
	require.NoError(t, p.Train(x, y, 2000))
	end, err := p.Loss(x, y)
	require.NoError(t, err)
	assert.Less(t, end, start)
}

func TestSigmoid(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.5, perceptron.Sigmoid(0))
	assert.Equal(t, 0.25, perceptron.SigmoidDerivative(0.5))
	assert.InDelta(t, 1.0, perceptron.Sigmoid(40), 1e-12)
	assert.InDelta(t, 0.0, perceptron.Sigmoid(-40), 1e-12)
	assert.Zero(t, perceptron.SigmoidDerivative(1))
}
