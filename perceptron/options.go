// SPDX-License-Identifier: MIT
// Package perceptron: functional configuration.
//
// Default* constants are the single source of truth for the network
// hyper-parameters. Setters panic on values that can never be valid
// (negative counts, non-positive learning rates); those are programmer errors.

package perceptron

import (
	"fmt"
	"math"
)

const (
	// DefaultIterations is the iteration count used by Fit.
	DefaultIterations = 10000

	// DefaultBias is added to every sigmoid output.
	DefaultBias = 0.03

	// DefaultLearningRate scales every weight update.
	DefaultLearningRate = 1.0

	// DefaultSeed selects the fixed default stream (see rngFromSeed).
	DefaultSeed int64 = 0

	// DefaultHiddenUnits of 0 sizes the hidden layer to the number of input rows.
	DefaultHiddenUnits = 0
)

// Option mutates internal options.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	iterations   int
	bias         float64
	learningRate float64
	seed         int64
	hiddenUnits  int
}

// WithIterations sets the iteration count used by Fit. Panics if n < 0.
func WithIterations(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("perceptron: WithIterations(%d): must be >= 0", n))
	}

	return func(o *Options) { o.iterations = n }
}

// WithBias sets the constant added after each sigmoid. Panics on NaN/Inf.
func WithBias(b float64) Option {
	if math.IsNaN(b) || math.IsInf(b, 0) {
		panic(fmt.Sprintf("perceptron: WithBias(%v): must be finite", b))
	}

	return func(o *Options) { o.bias = b }
}

// WithLearningRate sets the update step. Panics unless lr is finite and > 0.
func WithLearningRate(lr float64) Option {
	if !(lr > 0) || math.IsInf(lr, 0) {
		panic(fmt.Sprintf("perceptron: WithLearningRate(%v): must be finite and > 0", lr))
	}

	return func(o *Options) { o.learningRate = lr }
}

// WithSeed fixes the weight initialization stream. Seed 0 means the default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithHiddenUnits sets the hidden layer width; 0 restores the default
// (number of input rows). Panics if n < 0.
func WithHiddenUnits(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("perceptron: WithHiddenUnits(%d): must be >= 0", n))
	}

	return func(o *Options) { o.hiddenUnits = n }
}

func defaultOptions() Options {
	return Options{
		iterations:   DefaultIterations,
		bias:         DefaultBias,
		learningRate: DefaultLearningRate,
		seed:         DefaultSeed,
		hiddenUnits:  DefaultHiddenUnits,
	}
}

// gatherOptions applies opts on top of the defaults in order; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
