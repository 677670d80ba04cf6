// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/VsIG-official/SML/internal/gridio"
	"github.com/VsIG-official/SML/polynomial"
)

var polyCmd = &cobra.Command{
	Use:   "poly",
	Short: "Polynomial arithmetic on YAML files",
	Long: `Polynomial arithmetic on files holding a "polynomial:" document.

Examples:
  sml poly add p.yaml q.yaml
  sml poly eval p.yaml 2.5`,
}

var polyEvalCmd = &cobra.Command{
	Use:   "eval <p.yaml> <x>",
	Short: "Print p(x)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := gridio.ReadPolynomialFile(args[0])
		if err != nil {
			return commandError(cmd, err)
		}
		x, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return commandError(cmd, fmt.Errorf("x: %w", err))
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(p.Evaluate(x), 'f', cfg.Output.Precision, 64))
		return err
	},
}

// binaryPolyCmd builds a two-operand subcommand around fn.
func binaryPolyCmd(use, short string, fn func(a, b *polynomial.Polynomial) (*polynomial.Polynomial, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <p.yaml> <q.yaml>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := gridio.ReadPolynomialFile(args[0])
			if err != nil {
				return commandError(cmd, err)
			}
			q, err := gridio.ReadPolynomialFile(args[1])
			if err != nil {
				return commandError(cmd, err)
			}
			res, err := fn(p, q)
			if err != nil {
				return commandError(cmd, err)
			}
			return printPolynomial(cmd, res)
		},
	}
}

func init() {
	rootCmd.AddCommand(polyCmd)
	polyCmd.AddCommand(
		binaryPolyCmd("add", "Print p + q", polynomial.Add),
		binaryPolyCmd("sub", "Print p - q", polynomial.Sub),
		binaryPolyCmd("mul", "Print p × q", polynomial.Mul),
		polyEvalCmd,
	)
}
