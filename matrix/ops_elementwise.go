// SPDX-License-Identifier: MIT
// Package matrix: element-wise numeric comparison.

package matrix

import "math"

const opAllClose = "AllClose"

// ewAllClose checks |a-b| ≤ atol + rtol*|b| element-wise for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN or ±Inf tolerances are rejected with ErrNaNInf.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	within := true
	err := eachPair(a, b, func(av, bv float64) bool {
		if av == bv { // covers equal infinities
			return true
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) || math.IsNaN(av-bv) {
			within = false

			return false
		}

		return true
	})
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return within, nil
}
