// SPDX-License-Identifier: MIT
package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/VsIG-official/SML/internal/gridio"
	"github.com/VsIG-official/SML/perceptron"
)

var trainCmd = &cobra.Command{
	Use:   "train <data.yaml>",
	Short: "Train a perceptron and print its predictions",
	Long: `Trains a two-layer perceptron on a "training:" document and prints the
network output for every training input.

Hyper-parameters come from the [perceptron] config section or SML_* variables.

Examples:
  sml train xor.yaml
  sml train xor.yaml --iterations 20000
  SML_SEED=7 sml train xor.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)
	trainCmd.Flags().Int("iterations", 0, "override perceptron.iterations")
}

func runTrain(cmd *cobra.Command, args []string) error {
	runID := uuid.New().String()
	log := logger.With("run_id", runID)

	x, y, err := gridio.ReadTrainingFile(args[0])
	if err != nil {
		return commandError(cmd, err)
	}

	iterations := cfg.Perceptron.Iterations
	if cmd.Flags().Changed("iterations") {
		if iterations, err = cmd.Flags().GetInt("iterations"); err != nil {
			return commandError(cmd, err)
		}
	}

	p, err := perceptron.New(x, cfg.PerceptronOptions()...)
	if err != nil {
		return commandError(cmd, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if t := cfg.Perceptron.Timeout.Duration; t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}

	before, err := p.Loss(x, y)
	if err != nil {
		return commandError(cmd, err)
	}
	log.Info("training started",
		"samples", x.Rows(), "features", p.Features(), "hidden", p.Hidden(),
		"iterations", iterations, "seed", cfg.Perceptron.Seed, "loss", before)

	start := time.Now()
	if err = p.TrainContext(ctx, x, y, iterations); err != nil {
		log.Error("training stopped", "err", err, "elapsed", time.Since(start))
		return commandError(cmd, err)
	}
	after, err := p.Loss(x, y)
	if err != nil {
		return commandError(cmd, err)
	}
	log.Info("training finished", "loss", after, "elapsed", time.Since(start))

	out, err := p.Predict(x)
	if err != nil {
		return commandError(cmd, err)
	}
	return printMatrix(cmd, out)
}
