// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"github.com/VsIG-official/SML/cmd/sml/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
