// SPDX-License-Identifier: MIT

// Package config loads the sml command configuration from a TOML file with
// SML_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/VsIG-official/SML/perceptron"
)

// ErrInvalid is returned by Validate and Load for unusable values.
var ErrInvalid = errors.New("config: invalid value")

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds the complete sml configuration.
type Config struct {
	Perceptron PerceptronConfig `toml:"perceptron"`
	Output     OutputConfig     `toml:"output"`
	Log        LogConfig        `toml:"log"`
}

// PerceptronConfig holds training hyper-parameters.
type PerceptronConfig struct {
	Iterations   int      `toml:"iterations" env:"SML_ITERATIONS"`
	HiddenUnits  int      `toml:"hidden_units" env:"SML_HIDDEN_UNITS"`
	Bias         float64  `toml:"bias" env:"SML_BIAS"`
	LearningRate float64  `toml:"learning_rate" env:"SML_LEARNING_RATE"`
	Seed         int64    `toml:"seed" env:"SML_SEED"`
	Timeout      Duration `toml:"timeout" env:"SML_TRAIN_TIMEOUT"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// Precision is the number of decimals for text output; -1 prints the
	// shortest exact representation.
	Precision int    `toml:"precision" env:"SML_PRECISION"`
	Format    string `toml:"format" env:"SML_OUTPUT_FORMAT"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" env:"SML_LOG_LEVEL"`
}

// Duration wraps time.Duration for TOML and environment parsing.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Perceptron: PerceptronConfig{
			Iterations:   perceptron.DefaultIterations,
			HiddenUnits:  perceptron.DefaultHiddenUnits,
			Bias:         perceptron.DefaultBias,
			LearningRate: perceptron.DefaultLearningRate,
			Seed:         perceptron.DefaultSeed,
		},
		Output: OutputConfig{Precision: -1, Format: FormatText},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default; an empty path or a missing file yields the defaults.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalid)
	}

	return cfg, nil
}

// ApplyEnv overrides cfg with any SML_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports the first unusable value, wrapped around ErrInvalid.
func (c *Config) Validate() error {
	p := c.Perceptron
	switch {
	case p.Iterations < 0:
		return fmt.Errorf("perceptron.iterations %d: %w", p.Iterations, ErrInvalid)
	case p.HiddenUnits < 0:
		return fmt.Errorf("perceptron.hidden_units %d: %w", p.HiddenUnits, ErrInvalid)
	case math.IsNaN(p.Bias) || math.IsInf(p.Bias, 0):
		return fmt.Errorf("perceptron.bias %v: %w", p.Bias, ErrInvalid)
	case !(p.LearningRate > 0) || math.IsInf(p.LearningRate, 0):
		return fmt.Errorf("perceptron.learning_rate %v: %w", p.LearningRate, ErrInvalid)
	case p.Timeout.Duration < 0:
		return fmt.Errorf("perceptron.timeout %v: %w", p.Timeout, ErrInvalid)
	case c.Output.Precision < -1:
		return fmt.Errorf("output.precision %d: %w", c.Output.Precision, ErrInvalid)
	case c.Output.Format != FormatText && c.Output.Format != FormatYAML:
		return fmt.Errorf("output.format %q: %w", c.Output.Format, ErrInvalid)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses Log.Level ("debug", "info", "warn", "error").
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	return lvl, nil
}

// PerceptronOptions maps the training section onto perceptron options.
// Call Validate first; invalid values make the option setters panic.
func (c *Config) PerceptronOptions() []perceptron.Option {
	p := c.Perceptron
	return []perceptron.Option{
		perceptron.WithIterations(p.Iterations),
		perceptron.WithHiddenUnits(p.HiddenUnits),
		perceptron.WithBias(p.Bias),
		perceptron.WithLearningRate(p.LearningRate),
		perceptron.WithSeed(p.Seed),
	}
}
