// SPDX-License-Identifier: MIT
// Package polynomial: sentinel errors.
//
// All errors are package-level sentinels; callers match them with errors.Is.
// Operations wrap them with an operation tag via polyErrorf.

package polynomial

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTerm is returned when a required *Term argument is nil.
	ErrNilTerm = errors.New("polynomial: nil term")

	// ErrNilPolynomial is returned when an arithmetic operand is nil.
	ErrNilPolynomial = errors.New("polynomial: nil polynomial")

	// ErrDuplicateDegree is returned when a term at an already stored degree is added.
	ErrDuplicateDegree = errors.New("polynomial: duplicate degree")

	// ErrMeaninglessTerm is returned for a zero coefficient at a non-zero degree.
	ErrMeaninglessTerm = errors.New("polynomial: zero coefficient at non-zero degree")
)

// polyErrorf wraps err with an operation tag, preserving it for errors.Is.
func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
