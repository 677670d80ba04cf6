// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/VsIG-official/SML/internal/gridio"
	"github.com/VsIG-official/SML/matrix"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Matrix arithmetic on YAML files",
	Long: `Matrix arithmetic on files holding a "matrix:" document.

Examples:
  sml matrix mul a.yaml b.yaml
  sml matrix transpose a.yaml
  sml matrix identity 3`,
}

var matrixIdentityCmd = &cobra.Command{
	Use:   "identity <n>",
	Short: "Print the n×n identity matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return commandError(cmd, fmt.Errorf("invalid size %q: %w", args[0], err))
		}
		id, err := matrix.NewIdentity(n)
		if err != nil {
			return commandError(cmd, err)
		}
		return printMatrix(cmd, id)
	},
}

var matrixTransposeCmd = &cobra.Command{
	Use:   "transpose <a.yaml>",
	Short: "Print aᵀ",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := gridio.ReadMatrixFile(args[0])
		if err != nil {
			return commandError(cmd, err)
		}
		res, err := matrix.Transpose(a)
		if err != nil {
			return commandError(cmd, err)
		}
		return printMatrix(cmd, res)
	},
}

// binaryMatrixCmd builds a two-operand subcommand around fn.
func binaryMatrixCmd(use, short string, fn func(a, b matrix.Matrix) (matrix.Matrix, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a.yaml> <b.yaml>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := gridio.ReadMatrixFile(args[0])
			if err != nil {
				return commandError(cmd, err)
			}
			b, err := gridio.ReadMatrixFile(args[1])
			if err != nil {
				return commandError(cmd, err)
			}
			logger.Debug("matrix operands", "op", use, "a_rows", a.Rows(), "a_cols", a.Cols(), "b_rows", b.Rows(), "b_cols", b.Cols())

			res, err := fn(a, b)
			if err != nil {
				return commandError(cmd, err)
			}
			return printMatrix(cmd, res)
		},
	}
}

func init() {
	rootCmd.AddCommand(matrixCmd)
	matrixCmd.AddCommand(
		binaryMatrixCmd("add", "Print a + b", matrix.Add),
		binaryMatrixCmd("sub", "Print a - b", matrix.Sub),
		binaryMatrixCmd("mul", "Print the matrix product a × b", matrix.Mul),
		binaryMatrixCmd("hadamard", "Print the element-wise product a ⊙ b", matrix.Hadamard),
		matrixTransposeCmd,
		matrixIdentityCmd,
	)
}
