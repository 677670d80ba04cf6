// SPDX-License-Identifier: MIT
// Package perceptron: construction, training and inference.

package perceptron

import (
	"context"
	"fmt"

	"github.com/VsIG-official/SML/matrix"
)

const (
	opNew     = "New"
	opTrain   = "Train"
	opPredict = "Predict"
	opLoss    = "Loss"
)

// Perceptron is a features → hidden → 1 sigmoid network.
// A Perceptron is not safe for concurrent use.
type Perceptron struct {
	w1 *matrix.Dense // features × hidden
	w2 *matrix.Dense // hidden × 1

	features, hidden int
	opts             Options
}

// New sizes and initializes a network for training data shaped like input.
// input must be non-nil with at least one row and one column.
//
// Implementation:
//   - Stage 1: validate input; resolve options; hidden = input rows unless set.
//   - Stage 2: draw W1 then W2 row-major from the seeded stream.
//
// Errors: ErrNilInput, ErrShape.
func New(input matrix.Matrix, opts ...Option) (*Perceptron, error) {
	if err := matrix.ValidateNotNil(input); err != nil {
		return nil, perceptronErrorf(opNew, ErrNilInput)
	}
	if input.Rows() == 0 || input.Cols() == 0 {
		return nil, perceptronErrorf(opNew, fmt.Errorf("input %dx%d is empty: %w", input.Rows(), input.Cols(), ErrShape))
	}

	o := gatherOptions(opts...)
	p := &Perceptron{features: input.Cols(), hidden: o.hiddenUnits, opts: o}
	if p.hidden == 0 {
		p.hidden = input.Rows()
	}

	rng := rngFromSeed(o.seed)
	var err error
	if p.w1, err = uniformDense(p.features, p.hidden, rng); err != nil {
		return nil, perceptronErrorf(opNew, err)
	}
	if p.w2, err = uniformDense(p.hidden, 1, rng); err != nil {
		return nil, perceptronErrorf(opNew, err)
	}

	return p, nil
}

// Features returns the expected number of input columns.
func (p *Perceptron) Features() int { return p.features }

// Hidden returns the hidden layer width.
func (p *Perceptron) Hidden() int { return p.hidden }

// Weights returns copies of W1 and W2.
func (p *Perceptron) Weights() (w1, w2 *matrix.Dense) {
	return p.w1.Clone().(*matrix.Dense), p.w2.Clone().(*matrix.Dense)
}

// validateInput checks x against the trained feature count.
func (p *Perceptron) validateInput(x matrix.Matrix) error {
	if err := matrix.ValidateNotNil(x); err != nil {
		return ErrNilInput
	}
	if x.Cols() != p.features {
		return fmt.Errorf("input has %d columns, want %d: %w", x.Cols(), p.features, ErrShape)
	}

	return nil
}

// validateTargets checks x and y as a training pair.
func (p *Perceptron) validateTargets(x, y matrix.Matrix) error {
	if err := p.validateInput(x); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(y); err != nil {
		return ErrNilInput
	}
	if y.Rows() != x.Rows() || y.Cols() != 1 {
		return fmt.Errorf("targets %dx%d, want %dx1: %w", y.Rows(), y.Cols(), x.Rows(), ErrShape)
	}

	return nil
}

// forward runs both layers and keeps the intermediates backpropagation needs.
type forwardPass struct {
	l1, d1 *matrix.Dense // σ(X·W1)+bias and σ' of it
	l2, d2 *matrix.Dense // σ(L1·W2)+bias and σ' of it
}

func (p *Perceptron) forward(x matrix.Matrix) (*forwardPass, error) {
	var (
		fp  forwardPass
		z   matrix.Matrix
		err error
	)
	if z, err = matrix.Mul(x, p.w1); err != nil {
		return nil, err
	}
	if fp.l1, fp.d1, err = activate(z, p.opts.bias); err != nil {
		return nil, err
	}
	if z, err = matrix.Mul(fp.l1, p.w2); err != nil {
		return nil, err
	}
	if fp.l2, fp.d2, err = activate(z, p.opts.bias); err != nil {
		return nil, err
	}

	return &fp, nil
}

// Fit trains on (x, y) for the configured number of iterations.
func (p *Perceptron) Fit(x, y matrix.Matrix) error {
	return p.Train(x, y, p.opts.iterations)
}

// Train runs iterations full-batch backpropagation steps on (x, y).
// x is samples × features, y is samples × 1. Zero iterations is a no-op.
//
// Errors: ErrNilInput, ErrShape, ErrIterations; matrix errors wrapped.
func (p *Perceptron) Train(x, y matrix.Matrix, iterations int) error {
	return p.TrainContext(context.Background(), x, y, iterations)
}

// TrainContext is Train with cancellation checked before every iteration.
// On cancellation the weights hold the result of the completed iterations
// and ctx.Err() is returned.
func (p *Perceptron) TrainContext(ctx context.Context, x, y matrix.Matrix, iterations int) error {
	if iterations < 0 {
		return perceptronErrorf(opTrain, ErrIterations)
	}
	if err := p.validateTargets(x, y); err != nil {
		return perceptronErrorf(opTrain, err)
	}

	// Xᵀ does not change between iterations.
	xt, err := matrix.Transpose(x)
	if err != nil {
		return perceptronErrorf(opTrain, err)
	}

	for it := 0; it < iterations; it++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = p.step(x, xt, y); err != nil {
			return perceptronErrorf(opTrain, fmt.Errorf("iteration %d: %w", it, err))
		}
	}

	return nil
}

// step performs one forward/backward pass and updates W2 then W1.
// Both gradients are computed before either weight matrix changes.
func (p *Perceptron) step(x, xt, y matrix.Matrix) error {
	fp, err := p.forward(x)
	if err != nil {
		return err
	}

	var e, d2, w2t, back, d1, l1t, g2, g1 matrix.Matrix
	if e, err = matrix.Sub(y, fp.l2); err != nil {
		return err
	}
	if d2, err = matrix.Hadamard(fp.d2, e); err != nil {
		return err
	}
	if w2t, err = matrix.Transpose(p.w2); err != nil {
		return err
	}
	if back, err = matrix.Mul(d2, w2t); err != nil {
		return err
	}
	if d1, err = matrix.Hadamard(fp.d1, back); err != nil {
		return err
	}

	if l1t, err = matrix.Transpose(fp.l1); err != nil {
		return err
	}
	if g2, err = matrix.Mul(l1t, d2); err != nil {
		return err
	}
	if g1, err = matrix.Mul(xt, d1); err != nil {
		return err
	}
	if lr := p.opts.learningRate; lr != 1 {
		if g2, err = matrix.Scale(g2, lr); err != nil {
			return err
		}
		if g1, err = matrix.Scale(g1, lr); err != nil {
			return err
		}
	}

	if _, err = p.w2.AddInPlace(g2); err != nil {
		return err
	}
	_, err = p.w1.AddInPlace(g1)

	return err
}

// Predict returns the samples × 1 network output for x.
func (p *Perceptron) Predict(x matrix.Matrix) (matrix.Matrix, error) {
	if err := p.validateInput(x); err != nil {
		return nil, perceptronErrorf(opPredict, err)
	}
	fp, err := p.forward(x)
	if err != nil {
		return nil, perceptronErrorf(opPredict, err)
	}

	return fp.l2, nil
}

// Loss returns the mean squared error of Predict(x) against y.
// An x with no rows has loss 0.
func (p *Perceptron) Loss(x, y matrix.Matrix) (float64, error) {
	if err := p.validateTargets(x, y); err != nil {
		return 0, perceptronErrorf(opLoss, err)
	}
	if x.Rows() == 0 {
		return 0, nil
	}
	fp, err := p.forward(x)
	if err != nil {
		return 0, perceptronErrorf(opLoss, err)
	}
	diff, err := matrix.Sub(y, fp.l2)
	if err != nil {
		return 0, perceptronErrorf(opLoss, err)
	}

	var sum, v float64
	for i := 0; i < diff.Rows(); i++ {
		if v, err = diff.At(i, 0); err != nil {
			return 0, perceptronErrorf(opLoss, err)
		}
		sum += v * v
	}

	return sum / float64(diff.Rows()), nil
}
