package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/colour"
)

// Palette output formats.
const (
	formatText  = "text"
	formatJSON  = "json"
	formatHex   = "hex"
	formatTable = "table"
)

var paletteFormats = []string{formatText, formatJSON, formatHex, formatTable}

func newPaletteCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "palette HEX",
		Short: "Print the lightness palette for a colour",
		Long: `Print the eleven palette entries for a colour. The hue and saturation of
the input are kept and lightness runs from 0% to 100% in steps of 10.

Formats:
  text   - numbered list with hex and HSL (default)
  json   - palette with hex, HSL and RGB for every entry
  hex    - one hex value per line
  table  - aligned columns`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			palette, err := colour.PaletteFromHex(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			out, err := formatPalette(palette, format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format ("+strings.Join(paletteFormats, ", ")+")")
	return cmd
}

// formatPalette renders palette in one of the palette formats.
func formatPalette(palette colour.Palette, format string) (string, error) {
	switch format {
	case formatText:
		return palette.String(), nil
	case formatJSON:
		data, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to encode palette: %w", err)
		}
		return string(data) + "\n", nil
	case formatHex:
		return strings.Join(palette.Hex(), "\n") + "\n", nil
	case formatTable:
		table := NewTable("STEP", "HEX", "HSL", "RGB")
		for i, c := range palette.All() {
			table.AddRow(strconv.Itoa(i), c.Hex(), c.String(), c.RGB().String())
		}
		return table.Render(), nil
	default:
		return "", fmt.Errorf("unknown format: %s (available: %s)", format, strings.Join(paletteFormats, ", "))
	}
}
