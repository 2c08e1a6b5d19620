package savefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spacesedan/annoflow/internal/export"
)

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	payload := export.Payload{
		Body:     "token\ttag\n",
		Filename: "doc_ner.bio.txt",
		MIMEType: "text/plain",
	}

	path, err := Save(dir, payload)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if filepath.Base(path) != payload.Filename {
		t.Errorf("saved as %q, want filename %q", path, payload.Filename)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != payload.Body {
		t.Errorf("file contents = %q, want %q", data, payload.Body)
	}
}
