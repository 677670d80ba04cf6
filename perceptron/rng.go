// SPDX-License-Identifier: MIT
// Package perceptron - deterministic weight initialization.
//
// math/rand.Rand is not goroutine-safe; each Perceptron owns the stream it
// was initialized from and drops it after New.

package perceptron

import (
	"math/rand"

	"github.com/VsIG-official/SML/matrix"
)

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// seed == 0 uses defaultRNGSeed; any other seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// uniformDense returns a rows×cols matrix filled row-major with values in [0,1).
func uniformDense(rows, cols int, rng *rand.Rand) (*matrix.Dense, error) {
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64() }); err != nil {
		return nil, err
	}

	return m, nil
}
