// SPDX-License-Identifier: MIT

// Package perceptron implements a two-layer sigmoid network trained by full
// batch backpropagation on top of the matrix package.
//
// Shapes:
//
//	X  : samples × features      (training input)
//	Y  : samples × 1             (targets)
//	W1 : features × hidden
//	W2 : hidden × 1
//
// One training iteration computes
//
//	L1 = σ(X·W1) + bias
//	L2 = σ(L1·W2) + bias
//	E  = Y − L2
//	D2 = σ'(L2) ⊙ E
//	D1 = σ'(L1) ⊙ (D2·W2ᵀ)
//	W2 += lr · L1ᵀ·D2
//	W1 += lr · Xᵀ·D1
//
// where σ' is taken on the sigmoid output s as s(1−s). Weights start uniform
// in [0,1) from a seeded stream, so a fixed seed reproduces a run exactly.
//
// Every product goes through matrix.Mul, matrix.Hadamard and
// matrix.Transpose; results are fresh matrices, so the weights are only ever
// changed by the explicit in-place updates above.
package perceptron
