// SPDX-License-Identifier: MIT

package perceptron

import (
	"math"

	"github.com/VsIG-official/SML/matrix"
)

// Sigmoid returns 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// SigmoidDerivative returns σ'(x) expressed through the sigmoid output s = σ(x).
func SigmoidDerivative(s float64) float64 {
	return s * (1 - s)
}

// activate maps z to (σ(z)+bias, σ'(z)) element-wise, returning two fresh matrices.
func activate(z matrix.Matrix, bias float64) (out, deriv *matrix.Dense, err error) {
	if out, err = matrix.ZerosLike(z); err != nil {
		return nil, nil, err
	}
	if deriv, err = matrix.ZerosLike(z); err != nil {
		return nil, nil, err
	}

	var (
		i, j int
		v, s float64
	)
	for i = 0; i < z.Rows(); i++ {
		for j = 0; j < z.Cols(); j++ {
			if v, err = z.At(i, j); err != nil {
				return nil, nil, err
			}
			s = Sigmoid(v)
			if err = out.Set(i, j, s+bias); err != nil {
				return nil, nil, err
			}
			if err = deriv.Set(i, j, SigmoidDerivative(s)); err != nil {
				return nil, nil, err
			}
		}
	}

	return out, deriv, nil
}
