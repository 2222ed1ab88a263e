// Shade - an HSL lightness palette generator
//
// Shade turns a single hex colour into an eleven-step lightness palette and
// draws it as a row of swatches through a terminal, PNG, JSON or plugin
// backend.
package main

import (
	"os"

	"github.com/jmylchreest/shade/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
