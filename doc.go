// Package sml is a small numeric toolkit: dense matrices, sparse
// single-variable polynomials and a two-layer perceptron built on them.
//
// Packages:
//
//	matrix/      — Dense row-major float64 matrix; Add, Sub, Mul, Hadamard,
//	               Transpose, Scale, MatVec with dimension-checked errors
//	polynomial/  — Polynomial keyed by term degree; Add, Sub, Mul, Evaluate
//	perceptron/  — sigmoid network trained by backpropagation over matrix
//	cmd/sml      — command line front end reading YAML documents
//
// Library packages never log and never panic on user input; every failure
// is a sentinel error matched with errors.Is.
//
// Quick start:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewIdentity(2)
//	c, _ := matrix.Mul(a, b)
//
//	p := polynomial.FromPairs(polynomial.Pair{Degree: 2, Coefficient: 3})
//	q, _ := p.Multiply(p) // 9x^4
package sml
