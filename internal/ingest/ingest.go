// Package ingest loads documents for analysis. Markdown sources are
// flattened to plain text before annotation so that every entity span
// indexes into exactly the text the annotator saw.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
	"github.com/spacesedan/annoflow/internal/models"
)

var (
	mdLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern    = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTag       = regexp.MustCompile(`<[^>]*>`)
)

// LoadDocument reads a .txt or .md file into a Document. The source name
// is the file name without its extension, used later as the export base.
func LoadDocument(path string) (models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	text := string(data)
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".md" || ext == ".markdown" {
		text = FlattenMarkdown(text)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return models.Document{Text: text, SourceName: base}, nil
}

// RemoveLinks keeps link text and drops bare URLs.
func RemoveLinks(input string) string {
	input = mdLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// FlattenMarkdown renders markdown and strips the markup down to a single
// line of plain text with collapsed whitespace.
func FlattenMarkdown(input string) string {
	input = RemoveLinks(input)
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTag.ReplaceAllString(string(rendered), " ")
	return strings.Join(strings.Fields(plain), " ")
}
