package scene

import (
	"context"
	"fmt"

	"github.com/jmylchreest/shade/internal/colour"
)

// Render draws palette as a row of swatches inside a new frame on Root,
// then notifies the user. The first failing host call aborts the render.
func Render(ctx context.Context, b SceneBuilder, palette colour.Palette, layout Layout) (NodeID, error) {
	if err := layout.Validate(); err != nil {
		return "", fmt.Errorf("invalid layout: %w", err)
	}

	frame, err := b.CreateFrame(ctx, FrameSpec{
		Name:   layout.FrameName,
		X:      layout.X,
		Y:      layout.Y,
		Width:  layout.Width,
		Height: layout.Height,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create frame: %w", err)
	}
	if err := b.SetFill(ctx, frame, layout.Background); err != nil {
		return "", fmt.Errorf("failed to set frame background: %w", err)
	}
	if err := b.AppendChild(ctx, Root, frame); err != nil {
		return "", fmt.Errorf("failed to append frame: %w", err)
	}

	for i, hex := range palette.Hex() {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		rect, err := b.CreateRectangle(ctx, RectSpec{
			Name:   SwatchName(hex),
			X:      i * layout.Spacing,
			Width:  layout.SwatchSize,
			Height: layout.SwatchSize,
		})
		if err != nil {
			return "", fmt.Errorf("failed to create swatch %d: %w", i, err)
		}
		if err := b.SetFill(ctx, rect, hex); err != nil {
			return "", fmt.Errorf("failed to fill swatch %d: %w", i, err)
		}
		if err := b.AppendChild(ctx, frame, rect); err != nil {
			return "", fmt.Errorf("failed to append swatch %d: %w", i, err)
		}
	}

	if err := b.Notify(ctx, layout.Notification); err != nil {
		return "", fmt.Errorf("failed to notify: %w", err)
	}
	return frame, nil
}

// SwatchName is the node name given to the swatch for hex.
func SwatchName(hex string) string {
	return "Color " + hex
}
