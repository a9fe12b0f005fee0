// Package export holds the side-effecting output paths: system clipboard
// and README file writes.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/natefinch/atomic"
)

// DefaultFilename is used when no export name is configured.
const DefaultFilename = "README.md"

// Clipboard places the generated markdown on the system clipboard.
func Clipboard(md string) error {
	if err := clipboard.WriteAll(md); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// WriteFile writes the markdown to dir/name atomically and returns the
// resulting path. Empty dir means the current directory, empty name means
// DefaultFilename.
func WriteFile(dir, name, md string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if name == "" {
		name = DefaultFilename
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := atomic.WriteFile(path, strings.NewReader(md)); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
