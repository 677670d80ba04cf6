// Package matrix provides a dense, row-major float64 matrix with
// dimension-checked arithmetic.
//
// The matrix package provides:
//
//   - Dense: an exclusively owned r×c buffer (zero sizes allowed), built
//     zero-filled with NewDense or deep-copied from a [][]float64 grid with
//     NewDenseFrom.
//   - Kernels returning fresh results: Add, Sub, Mul, Hadamard, Transpose,
//     Scale, MatVec. Operands are never mutated and results never alias them.
//   - Mutating forms for callers that want them: (*Dense).AddInPlace and
//     (*Dense).SubInPlace.
//   - Comparison: Equal (every element), EqualAny (permissive: one matching
//     element suffices), AllClose (tolerance based).
//
// Errors are package sentinels matched with errors.Is: ErrNilMatrix,
// ErrInvalidDimensions and ErrDimensionMismatch (both are ErrDimension kinds),
// ErrOutOfRange and ErrNaNInf.
//
//	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewIdentity(2)
//	c, err := matrix.Mul(a, b) // 2×2, equals a
//
// See the examples in this package for usage patterns.
package matrix
