// shade-host-svg - SVG Scene Host (shade plugin)
//
// Receives the palette scene over the go-plugin RPC protocol and writes it
// as an SVG document when the scene is committed.
//
// Build:
//   go build -o shade-host-svg
//
// Usage:
//   shade generate -p 3366CC --backend plugin --plugin ./shade-host-svg
//
// Environment:
//   SHADE_SVG_OUTPUT: output file (default: shade-palette.svg)

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	shadeplugin "github.com/jmylchreest/shade/pkg/plugin"
)

const defaultOutput = "shade-palette.svg"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--plugin-info" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(NewHost("", nil).GetMetadata()); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding plugin info: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	path := os.Getenv("SHADE_SVG_OUTPUT")
	if path == "" {
		path = defaultOutput
	}

	// go-plugin forwards stderr to the host's logger.
	logger := hclog.New(&hclog.LoggerOptions{
		Name:       "svg",
		Output:     os.Stderr,
		Level:      hclog.Debug,
		JSONFormat: true,
	})

	shadeplugin.Serve(NewHost(path, logger))
}
