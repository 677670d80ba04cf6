// SPDX-License-Identifier: MIT

package matrix

// NewIdentity returns the n×n identity matrix.
// n == 0 yields an empty matrix; negative n yields ErrInvalidDimensions.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// ZerosLike returns a zero *Dense with the shape of m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// AllClose reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| ≤ atol + rtol*|b|. NaN never matches; infinities
// match only an infinity of the same sign. Use it instead of Equal when
// results come from different summation orders.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
