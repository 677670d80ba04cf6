// SPDX-License-Identifier: MIT

// Package cmd implements the sml command tree.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/VsIG-official/SML/internal/config"
)

var (
	cfgFile string
	verbose bool

	// set by loadConfig before any subcommand runs
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sml",
	Short: "Small matrix, polynomial and perceptron toolkit",
	Long: `sml works on YAML documents holding matrices, polynomials or training data.

Commands:
  matrix   - add, sub, mul, hadamard, transpose
  poly     - add, sub, mul, eval
  train    - train a two-layer perceptron and print its predictions`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML); SML_* variables override it")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// loadConfig resolves file, environment and flags into cfg and logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if err = config.ApplyEnv(c); err != nil {
		return err
	}
	if err = c.Validate(); err != nil {
		return err
	}

	lvl, err := c.SlogLevel()
	if err != nil {
		return err
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	cfg = c
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	logger.Debug("config loaded", "path", cfgFile, "format", c.Output.Format)

	return nil
}

// commandError tags err with the failing command path.
func commandError(cmd *cobra.Command, err error) error {
	return fmt.Errorf("%s: %w", cmd.CommandPath(), err)
}
