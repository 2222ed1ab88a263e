// Package cli provides the command-line interface for shade.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/config"
	"github.com/jmylchreest/shade/internal/logger"
	"github.com/jmylchreest/shade/internal/version"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbose    bool
	quiet      bool
	configPath string
}

// NewRootCmd builds the shade command tree. Each call returns an
// independent tree, so tests can execute it repeatedly.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "shade",
		Short: "An HSL lightness palette generator",
		Long: `Shade turns a single hex colour into an eleven-step HSL lightness palette,
from black through the primary's hue and saturation to white.

The palette can be printed, converted, or drawn as a row of swatches
through an output backend: a terminal preview, a PNG image, a JSON scene
document, or an external scene host plugin.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&g.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "config file (default: "+displayPath(config.DefaultPath())+")")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(g))
	rootCmd.AddCommand(newPaletteCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newBackendsCmd())

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// logger returns the command's logger, writing to its error stream.
func (g *globalOptions) logger(cmd *cobra.Command) hclog.Logger {
	return logger.New(logger.Options{
		Output:  cmd.ErrOrStderr(),
		Verbose: g.verbose,
		Quiet:   g.quiet,
	})
}

// loadConfig reads the config file. An explicit --config must exist; the
// default location is optional.
func (g *globalOptions) loadConfig() (config.Config, error) {
	if g.configPath != "" {
		return config.Load(g.configPath, false)
	}
	return config.Load(config.DefaultPath(), true)
}

func displayPath(p string) string {
	if p == "" {
		return "none"
	}
	return p
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
