// Package common provides shared utilities for output backends.
package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteOutput writes data to path, creating parent directories, or to
// stdout when path is empty.
func WriteOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" {
		if stdout == nil {
			return fmt.Errorf("no output path and no stdout")
		}
		_, err := stdout.Write(data)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
