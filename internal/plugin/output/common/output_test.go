package common

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteOutput(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteOutput("", &buf, []byte("hello")); err != nil {
			t.Fatalf("WriteOutput() error = %v", err)
		}
		if buf.String() != "hello" {
			t.Errorf("stdout = %q, want %q", buf.String(), "hello")
		}
	})

	t.Run("file in new directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "out.txt")
		if err := WriteOutput(path, nil, []byte("data")); err != nil {
			t.Fatalf("WriteOutput() error = %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}
		if string(got) != "data" {
			t.Errorf("file content = %q, want %q", got, "data")
		}
	})

	t.Run("no destination", func(t *testing.T) {
		if err := WriteOutput("", nil, []byte("x")); err == nil {
			t.Error("expected error with no path and no stdout")
		}
	})
}
