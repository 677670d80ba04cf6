// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping. Operations wrap these sentinels with fmt.Errorf("Op: %w", ErrX)
// so callers still match them with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> invalid shape -> dimension mismatch -> index -> numeric policy.

// dimensionKind is the error kind shared by every dimension-related sentinel.
// It lets callers ask "was this a dimension problem?" without enumerating
// ErrInvalidDimensions and ErrDimensionMismatch separately.
type dimensionKind struct {
	msg string
}

func (e *dimensionKind) Error() string { return e.msg }

// Is reports true for ErrDimension so both dimension sentinels match the kind.
func (e *dimensionKind) Is(target error) bool { return target == ErrDimension }

var (
	// ErrDimension is the umbrella kind for all dimension failures.
	// errors.Is(err, ErrDimension) is true for ErrInvalidDimensions and
	// ErrDimensionMismatch.
	ErrDimension = errors.New("matrix: dimension error")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// Zero rows or columns are legal and produce an empty matrix.
	ErrInvalidDimensions error = &dimensionKind{msg: "matrix: dimensions must be >= 0"}

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub/Hadamard with different shapes, or Mul where a.Cols != b.Rows.
	// Also returned for ragged (non-rectangular) source grids.
	ErrDimensionMismatch error = &dimensionKind{msg: "matrix: dimension mismatch"}

	// ErrOutOfRange indicates that a row or column index is negative or beyond the shape.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix or a nil source grid was supplied.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (only when WithValidateNaNInf is active).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
