// SPDX-License-Identifier: MIT

package perceptron

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput is returned when a required matrix argument is nil.
	ErrNilInput = errors.New("perceptron: nil input")

	// ErrShape is returned when an input or target matrix has the wrong shape.
	ErrShape = errors.New("perceptron: shape mismatch")

	// ErrIterations is returned for a negative iteration count.
	ErrIterations = errors.New("perceptron: iterations must be >= 0")
)

// perceptronErrorf wraps err with an operation tag.
func perceptronErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
