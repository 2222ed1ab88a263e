package scene

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jmylchreest/shade/internal/colour"
)

var redPalette = colour.CreateHSLPalette(colour.HSL{H: 0, S: 100, L: 50})

func TestRender(t *testing.T) {
	rec := NewRecorder()
	frameID, err := Render(context.Background(), rec, redPalette, DefaultLayout())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	page := rec.Page()
	if len(page.Children) != 1 {
		t.Fatalf("page has %d children, want 1", len(page.Children))
	}

	frame := page.Children[0]
	if frame.ID != frameID {
		t.Errorf("frame id = %s, Render returned %s", frame.ID, frameID)
	}
	if frame.Name != "Color Palette" || frame.Width != 1600 || frame.Height != 100 || frame.Y != -200 {
		t.Errorf("frame = %+v", frame)
	}
	if frame.Fill != "#E9E9E9" {
		t.Errorf("frame fill = %s, want #E9E9E9", frame.Fill)
	}

	wantHex := redPalette.Hex()
	if len(frame.Children) != len(wantHex) {
		t.Fatalf("frame has %d swatches, want %d", len(frame.Children), len(wantHex))
	}
	for i, rect := range frame.Children {
		if rect.Kind != KindRectangle {
			t.Errorf("swatch %d kind = %s", i, rect.Kind)
		}
		if rect.X != i*150 || rect.Y != 0 {
			t.Errorf("swatch %d at (%d,%d), want (%d,0)", i, rect.X, rect.Y, i*150)
		}
		if rect.Fill != wantHex[i] {
			t.Errorf("swatch %d fill = %s, want %s", i, rect.Fill, wantHex[i])
		}
		if rect.Name != "Color "+wantHex[i] {
			t.Errorf("swatch %d name = %q", i, rect.Name)
		}
	}

	if msgs := rec.Messages(); len(msgs) != 1 || msgs[0] != "Palette created!" {
		t.Errorf("messages = %v, want [Palette created!]", msgs)
	}
}

func TestRenderAbsolutePositions(t *testing.T) {
	rec := NewRecorder()
	if _, err := Render(context.Background(), rec, redPalette, DefaultLayout()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var got []int
	Walk(rec.Page(), func(n *Node, x, y int) {
		if n.Kind == KindRectangle {
			if y != -200 {
				t.Errorf("%s absolute y = %d, want -200", n.Name, y)
			}
			got = append(got, x)
		}
	})
	if len(got) != 11 || got[10] != 1500 {
		t.Errorf("absolute x positions = %v", got)
	}
}

// failingBuilder fails one named operation.
type failingBuilder struct {
	*Recorder
	failOn string
}

var errHost = errors.New("host refused")

func (f *failingBuilder) CreateRectangle(ctx context.Context, spec RectSpec) (NodeID, error) {
	if f.failOn == "rect" {
		return "", errHost
	}
	return f.Recorder.CreateRectangle(ctx, spec)
}

func (f *failingBuilder) Notify(ctx context.Context, msg string) error {
	if f.failOn == "notify" {
		return errHost
	}
	return f.Recorder.Notify(ctx, msg)
}

func TestRenderPropagatesHostErrors(t *testing.T) {
	for _, op := range []string{"rect", "notify"} {
		t.Run(op, func(t *testing.T) {
			b := &failingBuilder{Recorder: NewRecorder(), failOn: op}
			_, err := Render(context.Background(), b, redPalette, DefaultLayout())
			if !errors.Is(err, errHost) {
				t.Errorf("Render() error = %v, want errHost", err)
			}
		})
	}
}

func TestRenderInvalidLayout(t *testing.T) {
	layout := DefaultLayout()
	layout.Background = "grey"
	layout.Spacing = 0

	_, err := Render(context.Background(), NewRecorder(), redPalette, layout)
	if err == nil {
		t.Fatal("expected error for invalid layout")
	}
	if !errors.Is(err, colour.ErrInvalidFormat) {
		t.Errorf("error = %v, want ErrInvalidFormat in chain", err)
	}
	if !strings.Contains(err.Error(), "spacing") {
		t.Errorf("error = %v, want spacing problem reported too", err)
	}
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Render(ctx, NewRecorder(), redPalette, DefaultLayout())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
}
