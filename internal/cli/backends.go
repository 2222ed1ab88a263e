package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/config"
	"github.com/jmylchreest/shade/internal/plugin/output"
	"github.com/jmylchreest/shade/internal/plugin/output/png"
	"github.com/jmylchreest/shade/internal/plugin/output/record"
	"github.com/jmylchreest/shade/internal/plugin/output/remote"
	"github.com/jmylchreest/shade/internal/plugin/output/terminal"
)

// newRegistry returns a registry holding every built-in backend.
func newRegistry() *output.Registry {
	r := output.NewRegistry()
	r.Register(png.New())
	r.Register(terminal.New())
	r.Register(record.New())
	r.Register(remote.New(""))
	return r
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List available output backends",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			registry := newRegistry()
			table := NewTable("NAME", "DEFAULT", "DESCRIPTION")
			for _, name := range registry.List() {
				p, _ := registry.Get(name)
				def := ""
				if name == config.DefaultBackend {
					def = "*"
				}
				table.AddRow(name, def, p.Description())
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
		},
	}
}
