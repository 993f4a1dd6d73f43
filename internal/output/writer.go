// Package output persists the generated document.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// IsStdout reports whether path designates standard output.
func IsStdout(path string) bool {
	return path == "" || path == "-"
}

// Write writes content to path in a single write, creating parent
// directories as needed. An empty path or "-" writes to stdout.
func Write(path string, content []byte, stdout io.Writer) error {
	if IsStdout(path) {
		if _, err := stdout.Write(content); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, content, filePerm); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}

	return nil
}
