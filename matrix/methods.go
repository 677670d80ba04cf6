// SPDX-License-Identifier: MIT
// Package matrix: in-place arithmetic on *Dense and matrix equality.
//
// Purpose:
//   - AddInPlace/SubInPlace are the mutating forms of Add/Sub: they update the
//     receiver and return it for chaining. Prefer Add/Sub, which never mutate.
//   - Equal compares shape and every element; EqualAny keeps the permissive
//     rule (same shape and at least one matching element pair) for callers
//     that depend on it.

package matrix

const (
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opEqual      = "Equal"
	opEqualAny   = "EqualAny"
)

// AddInPlace performs m += b element-wise and returns m.
// Validation happens before the first write, so on error m is unchanged.
//
// Errors: ErrNilMatrix (nil receiver or operand), ErrDimensionMismatch.
// Complexity: O(r*c), no allocation.
func (m *Dense) AddInPlace(b Matrix) (*Dense, error) {
	return m.accumulate(b, +1, opAddInPlace)
}

// SubInPlace performs m -= b element-wise and returns m.
// Validation happens before the first write, so on error m is unchanged.
//
// Errors: ErrNilMatrix (nil receiver or operand), ErrDimensionMismatch.
// Complexity: O(r*c), no allocation.
func (m *Dense) SubInPlace(b Matrix) (*Dense, error) {
	return m.accumulate(b, -1, opSubInPlace)
}

// accumulate is the shared kernel of AddInPlace/SubInPlace.
func (m *Dense) accumulate(b Matrix, sign float64, opTag string) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTag, ErrNilMatrix)
	}
	if err := ValidateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	if db, ok := b.(*Dense); ok {
		for idx := range m.data {
			m.data[idx] += sign * db.data[idx]
		}

		return m, nil
	}

	// Generic operand: read everything first so a failing At cannot leave m half-updated.
	n := m.r * m.c
	delta := make([]float64, n)
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if v, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			delta[i*m.c+j] = v
		}
	}
	for idx := 0; idx < n; idx++ {
		m.data[idx] += sign * delta[idx]
	}

	return m, nil
}

// Equal reports whether a and b have the same shape and identical elements.
// Comparison uses ==, so NaN never equals NaN.
//
// Errors: ErrNilMatrix when either operand is nil.
// Complexity: O(r*c), early exit on first difference.
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}

	found := true
	err := eachPair(a, b, func(av, bv float64) bool {
		if av != bv {
			found = false

			return false
		}

		return true
	})
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}

	return found, nil
}

// EqualAny reports whether a and b have the same shape and at least one
// position (i,j) where a[i,j] == b[i,j]. Two empty matrices of the same shape
// are therefore NOT EqualAny. This is a weaker relation than Equal.
//
// Errors: ErrNilMatrix when either operand is nil.
// Complexity: O(r*c), early exit on first match.
func EqualAny(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqualAny, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqualAny, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}

	found := false
	err := eachPair(a, b, func(av, bv float64) bool {
		if av == bv {
			found = true

			return false
		}

		return true
	})
	if err != nil {
		return false, matrixErrorf(opEqualAny, err)
	}

	return found, nil
}

// eachPair walks a and b (same shape) in row-major order and calls f with
// corresponding values until f returns false.
func eachPair(a, b Matrix, f func(av, bv float64) bool) error {
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !f(da.data[idx], db.data[idx]) {
					return nil
				}
			}

			return nil
		}
	}

	rows, cols := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return err
			}
			if bv, err = b.At(i, j); err != nil {
				return err
			}
			if !f(av, bv) {
				return nil
			}
		}
	}

	return nil
}
