package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/config"
	"github.com/jmylchreest/shade/internal/plugin/output"
	"github.com/jmylchreest/shade/internal/plugin/output/remote"
	"github.com/jmylchreest/shade/internal/scene"
)

// ErrMissingPrimary is returned by generate when no primary colour is given.
var ErrMissingPrimary = errors.New("no primary colour given (use --primary or an argument)")

type generateOptions struct {
	primary  string
	flags    *config.Flags
	registry *output.Registry
}

func newGenerateCmd(g *globalOptions) *cobra.Command {
	opts := &generateOptions{registry: newRegistry()}

	cmd := &cobra.Command{
		Use:   "generate [HEX]",
		Short: "Render the palette for a primary colour through an output backend",
		Long: `Build the eleven-step lightness palette for a primary colour and draw it
as a row of swatches inside a frame, using the selected output backend.

Settings are read from the config file, then SHADE_BACKEND, SHADE_OUTPUT
and SHADE_PLUGIN, then command-line flags.

Examples:
  # Preview in the terminal
  shade generate --primary "#3366CC"

  # Write a PNG
  shade generate -p 3366CC --backend png -o palette.png

  # Dump the scene tree as JSON
  shade generate 3366CC --backend json

  # Draw through an external scene host
  shade generate -p 3366CC --backend plugin --plugin ./shade-host-svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.primary, "primary", "p", "", "primary colour as #RRGGBB")
	opts.flags = config.RegisterFlags(cmd.Flags())
	for _, name := range opts.registry.List() {
		p, _ := opts.registry.Get(name)
		p.RegisterFlags(cmd)
	}

	return cmd
}

// primaryColour picks the primary from the flag or the positional argument.
func (o *generateOptions) primaryColour(args []string) (string, error) {
	primary := strings.TrimSpace(o.primary)
	if len(args) == 1 {
		arg := strings.TrimSpace(args[0])
		if primary != "" && primary != arg {
			return "", fmt.Errorf("conflicting primary colours: --primary %s and argument %s", primary, arg)
		}
		primary = arg
	}
	if primary == "" {
		return "", ErrMissingPrimary
	}
	return primary, nil
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string, g *globalOptions, opts *generateOptions) error {
	primary, err := opts.primaryColour(args)
	if err != nil {
		return err
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	cfg.ApplyEnv(os.Getenv)
	opts.flags.Apply(cmd.Flags(), &cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	palette, err := colour.PaletteFromHex(primary)
	if err != nil {
		return err
	}

	backend, ok := opts.registry.Get(cfg.Backend)
	if !ok {
		return fmt.Errorf("unknown backend: %s (available: %s)", cfg.Backend, strings.Join(opts.registry.List(), ", "))
	}
	if rp, ok := backend.(*remote.Plugin); ok {
		rp.SetPath(cfg.Plugin)
	}

	log := g.logger(cmd)
	log.Debug("generating palette", "primary", primary, "backend", backend.Name(), "steps", palette.Len())

	builder, err := backend.Open(output.Options{
		Output:  cfg.Output,
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
		Layout:  cfg.Layout,
		Logger:  log.Named(backend.Name()),
		Verbose: g.verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to open %s backend: %w", backend.Name(), err)
	}

	frame, err := scene.Render(cmd.Context(), builder, palette, cfg.Layout)
	if err != nil {
		return errors.Join(err, builder.Abort())
	}
	if err := builder.Close(); err != nil {
		return fmt.Errorf("failed to write %s output: %w", backend.Name(), err)
	}

	log.Debug("palette rendered", "frame", string(frame))
	if cfg.Output != "" {
		log.Info("wrote palette", "backend", backend.Name(), "path", cfg.Output)
	}
	return nil
}
