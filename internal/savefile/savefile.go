// Package savefile is the one-shot file-writing collaborator that
// receives finished export payloads. The core never does I/O itself.
package savefile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spacesedan/annoflow/internal/export"
)

// Save writes the payload under dir using its suggested filename and
// returns the full path written.
func Save(dir string, payload export.Payload) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, payload.Filename)
	if err := os.WriteFile(path, []byte(payload.Body), 0o644); err != nil {
		return "", fmt.Errorf("failed to write export %s: %w", path, err)
	}

	slog.Info("[SaveFile] Export written",
		slog.String("path", path),
		slog.String("mime_type", payload.MIMEType),
		slog.Int("bytes", len(payload.Body)))
	return path, nil
}
