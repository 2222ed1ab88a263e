// Package terminal provides an output backend that prints the palette as
// coloured swatches in the terminal.
package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/plugin/output"
	"github.com/jmylchreest/shade/internal/plugin/output/common"
	"github.com/jmylchreest/shade/internal/scene"
)

const (
	// cellWidth fits "#RRGGBB" with one column of padding each side.
	cellWidth = 9

	defaultWidth = 80
)

// Plugin implements the terminal output backend.
type Plugin struct {
	width int
	plain bool
	force bool
}

// New creates a new terminal backend with default settings.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the backend name.
func (p *Plugin) Name() string {
	return "terminal"
}

// Description returns the backend description.
func (p *Plugin) Description() string {
	return "Print the palette as coloured swatches in the terminal"
}

// RegisterFlags registers backend-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.width, "terminal.width", 0, "Line width in columns (default: detect)")
	cmd.Flags().BoolVar(&p.plain, "terminal.plain", false, "Print one swatch per line without colour")
	cmd.Flags().BoolVar(&p.force, "terminal.force", false, "Draw swatches even when output is not a terminal")
}

// Validate checks if the backend configuration is valid.
func (p *Plugin) Validate() error {
	if p.width < 0 {
		return fmt.Errorf("invalid width: %d", p.width)
	}
	if p.plain && p.force {
		return fmt.Errorf("terminal.plain and terminal.force are mutually exclusive")
	}
	return nil
}

// Open returns a builder that prints the scene on Close.
func (p *Plugin) Open(opts output.Options) (scene.SceneBuilder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	swatches := !p.plain && (p.force || (opts.Output == "" && isTerminal(out)))
	width := p.width
	if width == 0 {
		width = detectWidth(out)
	}

	return &Builder{
		Recorder: scene.NewRecorder(),
		out:      out,
		path:     opts.Output,
		width:    width,
		swatches: swatches,
		logger:   logger,
	}, nil
}

// Builder records scene calls and prints the page on Close.
type Builder struct {
	*scene.Recorder

	out      io.Writer
	path     string
	width    int
	swatches bool
	logger   hclog.Logger
}

// Notify logs the host notification.
func (b *Builder) Notify(ctx context.Context, message string) error {
	b.logger.Debug("notify", "message", message)
	return b.Recorder.Notify(ctx, message)
}

// Close prints every frame with its swatches.
func (b *Builder) Close() error {
	var sb strings.Builder
	for _, frame := range b.Page().Children {
		if frame.Kind != scene.KindFrame {
			continue
		}
		if b.swatches {
			sb.WriteString(b.renderSwatches(frame))
		} else {
			sb.WriteString(renderPlain(frame))
		}
	}
	for _, msg := range b.Messages() {
		sb.WriteString(msg)
		sb.WriteString("\n")
	}
	return common.WriteOutput(b.path, b.out, []byte(sb.String()))
}

func (b *Builder) renderSwatches(frame *scene.Node) string {
	r := lipgloss.NewRenderer(b.out)
	title := r.NewStyle().Bold(true)

	perRow := max(1, b.width/cellWidth)
	var rows []string
	var cells []string
	for _, n := range frame.Children {
		rgb, err := colour.ParseHex(n.Fill)
		if err != nil {
			continue
		}
		cell := r.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Background(lipgloss.Color(rgb.Hex())).
			Foreground(lipgloss.Color(colour.LabelColour(rgb).Hex())).
			Render(rgb.Hex())
		cells = append(cells, cell)
		if len(cells) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = nil
		}
	}
	if len(cells) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return title.Render(frame.Name) + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func renderPlain(frame *scene.Node) string {
	var sb strings.Builder
	sb.WriteString(frame.Name)
	sb.WriteString("\n")
	for _, n := range frame.Children {
		if n.Fill == "" {
			continue
		}
		fmt.Fprintf(&sb, "  %s\n", n.Name)
	}
	return sb.String()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func detectWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
