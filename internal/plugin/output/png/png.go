// Package png provides an output backend that rasterises the palette scene
// to a PNG image.
package png

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/basicfont"

	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/plugin/output"
	"github.com/jmylchreest/shade/internal/plugin/output/common"
	"github.com/jmylchreest/shade/internal/scene"
)

// ErrEmptyScene is returned when Close is called before anything was drawn.
var ErrEmptyScene = errors.New("scene has no visible nodes")

// Plugin implements the png output backend.
type Plugin struct {
	scale  float64
	labels bool
}

// New creates a new png backend with default settings.
func New() *Plugin {
	return &Plugin{
		scale:  1,
		labels: true,
	}
}

// Name returns the backend name.
func (p *Plugin) Name() string {
	return "png"
}

// Description returns the backend description.
func (p *Plugin) Description() string {
	return "Render the palette frame to a PNG image"
}

// RegisterFlags registers backend-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&p.scale, "png.scale", 1, "Pixel scale factor for the image")
	cmd.Flags().BoolVar(&p.labels, "png.labels", true, "Draw the hex value on each swatch")
}

// Validate checks if the backend configuration is valid.
func (p *Plugin) Validate() error {
	if p.scale <= 0 || p.scale > 8 {
		return fmt.Errorf("invalid scale: %g (must be in (0, 8])", p.scale)
	}
	return nil
}

// Open returns a builder that records the scene and encodes it on Close.
func (p *Plugin) Open(opts output.Options) (scene.SceneBuilder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Builder{
		Recorder: scene.NewRecorder(),
		path:     opts.Output,
		opts:     opts,
		scale:    p.scale,
		labels:   p.labels,
		logger:   logger,
	}, nil
}

// Builder records scene calls and rasterises the page on Close.
type Builder struct {
	*scene.Recorder

	path   string
	opts   output.Options
	scale  float64
	labels bool
	logger hclog.Logger
}

// Notify logs the host notification.
func (b *Builder) Notify(ctx context.Context, message string) error {
	b.logger.Info(message)
	return b.Recorder.Notify(ctx, message)
}

// Close encodes the recorded page and writes it out.
func (b *Builder) Close() error {
	data, err := Encode(b.Page(), b.scale, b.labels)
	if err != nil {
		return err
	}
	if err := common.WriteOutput(b.path, b.opts.Stdout, data); err != nil {
		return err
	}
	if b.path != "" {
		b.logger.Debug("wrote image", "path", b.path, "bytes", len(data))
	}
	return nil
}

// Encode draws every filled node under page and returns PNG bytes. The
// canvas is the bounding box of the filled nodes.
func Encode(page *scene.Node, scale float64, labels bool) ([]byte, error) {
	minX, minY, maxX, maxY, ok := bounds(page)
	if !ok {
		return nil, ErrEmptyScene
	}

	w := int(float64(maxX-minX) * scale)
	h := int(float64(maxY-minY) * scale)
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyScene
	}

	dc := gg.NewContext(w, h)
	dc.Scale(scale, scale)
	dc.Translate(float64(-minX), float64(-minY))
	dc.SetFontFace(basicfont.Face7x13)

	var drawErr error
	scene.Walk(page, func(n *scene.Node, x, y int) {
		if drawErr != nil || n.Fill == "" {
			return
		}
		fill, err := colour.ParseHex(n.Fill)
		if err != nil {
			drawErr = fmt.Errorf("node %s: %w", n.ID, err)
			return
		}

		dc.SetColor(fill.Color())
		dc.DrawRectangle(float64(x), float64(y), float64(n.Width), float64(n.Height))
		dc.Fill()

		if labels && n.Kind == scene.KindRectangle {
			dc.SetColor(colour.LabelColour(fill).Color())
			dc.DrawStringAnchored(fill.Hex(),
				float64(x)+float64(n.Width)/2, float64(y)+float64(n.Height)/2, 0.5, 0.5)
		}
	})
	if drawErr != nil {
		return nil, drawErr
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func bounds(page *scene.Node) (minX, minY, maxX, maxY int, ok bool) {
	scene.Walk(page, func(n *scene.Node, x, y int) {
		if n.Fill == "" || n.Width <= 0 || n.Height <= 0 {
			return
		}
		if !ok {
			minX, minY, maxX, maxY, ok = x, y, x+n.Width, y+n.Height, true
			return
		}
		minX = min(minX, x)
		minY = min(minY, y)
		maxX = max(maxX, x+n.Width)
		maxY = max(maxY, y+n.Height)
	})
	return
}
