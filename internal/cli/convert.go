package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/colour"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between hex and HSL",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "hex HEX",
		Short:   "Convert a hex colour to HSL",
		Example: "  shade convert hex '#FF0000'   # hsl(0, 100%, 50%)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hsl, err := colour.HexToHSL(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hsl)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "hsl H S L",
		Short: "Convert an HSL triple to hex",
		Long: `Convert hue (degrees), saturation and lightness (percent) to #RRGGBB.
Hue wraps around 360, so negative hues are accepted as written;
saturation and lightness are clamped to 0..100.`,
		Example: "  shade convert hsl 120 100 25   # #008000\n" +
			"  shade convert hsl -120 100 50  # #0000FF",
		// Flag parsing would read "-120" as a shorthand flag.
		DisableFlagParsing: true,
		RunE:               runConvertHSL,
	})

	return cmd
}

func runConvertHSL(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return cmd.Help()
		}
	}
	if len(args) != 3 {
		return fmt.Errorf("accepts 3 arg(s), received %d", len(args))
	}

	var v [3]int
	for i, name := range []string{"hue", "saturation", "lightness"} {
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(args[i]), "%"))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, args[i], err)
		}
		v[i] = n
	}
	fmt.Fprintln(cmd.OutOrStdout(), colour.HSLToHex(v[0], v[1], v[2]))
	return nil
}
