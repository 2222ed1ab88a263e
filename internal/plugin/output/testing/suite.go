// Package testing provides shared test utilities for output backends.
package testing

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/plugin/output"
	"github.com/jmylchreest/shade/internal/scene"
)

// TestBasicInterface tests the methods every backend must implement.
func TestBasicInterface(t *testing.T, p output.Plugin, expectedName string) {
	t.Run("Name", func(t *testing.T) {
		if p.Name() != expectedName {
			t.Errorf("Name() = %s, want %s", p.Name(), expectedName)
		}
	})

	t.Run("Description", func(t *testing.T) {
		if p.Description() == "" {
			t.Error("Description() should not be empty")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})
}

// TestFlags checks that RegisterFlags adds each expected flag.
func TestFlags(t *testing.T, p output.Plugin, expectedFlags ...string) {
	t.Run("RegisterFlags", func(t *testing.T) {
		cmd := &cobra.Command{Use: "test"}
		p.RegisterFlags(cmd)

		for _, name := range expectedFlags {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("RegisterFlags() did not register %s flag", name)
			}
		}
	})
}

// CreateTestPalette returns the palette for pure red.
func CreateTestPalette() colour.Palette {
	return colour.CreateHSLPalette(colour.HSL{H: 0, S: 100, L: 50})
}

// RenderTestPalette renders the test palette through p with the default
// layout. Output goes to stdout when path is empty; the bytes written are
// returned either way.
func RenderTestPalette(t *testing.T, p output.Plugin, path string) []byte {
	t.Helper()

	var stdout bytes.Buffer
	b, err := p.Open(output.Options{
		Output: path,
		Stdout: &stdout,
		Stderr: &bytes.Buffer{},
		Layout: scene.DefaultLayout(),
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := scene.Render(context.Background(), b, CreateTestPalette(), scene.DefaultLayout()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if path == "" {
		return stdout.Bytes()
	}
	if stdout.Len() != 0 {
		t.Errorf("wrote %d bytes to stdout while writing to %s", stdout.Len(), path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return data
}

// TestOutputDestinations checks that a backend writes the same output to a
// file as it does to stdout.
func TestOutputDestinations(t *testing.T, p output.Plugin) {
	t.Run("OutputDestinations", func(t *testing.T) {
		toStdout := RenderTestPalette(t, p, "")
		if len(toStdout) == 0 {
			t.Fatal("no output written to stdout")
		}

		toFile := RenderTestPalette(t, p, filepath.Join(t.TempDir(), "out"))
		if !bytes.Equal(toStdout, toFile) {
			t.Errorf("file output (%d bytes) differs from stdout output (%d bytes)", len(toFile), len(toStdout))
		}
	})
}
