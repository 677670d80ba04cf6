// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VsIG-official/SML/internal/config"
	"github.com/VsIG-official/SML/internal/gridio"
	"github.com/VsIG-official/SML/matrix"
	"github.com/VsIG-official/SML/polynomial"
)

// printMatrix writes m in the configured format.
func printMatrix(cmd *cobra.Command, m matrix.Matrix) error {
	out := cmd.OutOrStdout()
	if cfg.Output.Format == config.FormatYAML {
		return gridio.WriteMatrix(out, m)
	}

	var sb strings.Builder
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'f', cfg.Output.Precision, 64))
		}
		sb.WriteByte('\n')
	}
	_, err := fmt.Fprint(out, sb.String())

	return err
}

// printPolynomial writes p in the configured format.
func printPolynomial(cmd *cobra.Command, p *polynomial.Polynomial) error {
	if cfg.Output.Format == config.FormatYAML {
		return gridio.WritePolynomial(cmd.OutOrStdout(), p)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), p.String())

	return err
}
