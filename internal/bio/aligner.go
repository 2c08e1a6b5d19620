// Package bio aligns entity spans onto tokens to produce BIO tag
// sequences for NER export.
package bio

import (
	"sort"
	"strings"

	"github.com/spacesedan/annoflow/internal/models"
	"github.com/spacesedan/annoflow/internal/tokenizer"
)

// TagOutside marks a token not covered by any entity.
const TagOutside = "O"

// Tags returns one BIO tag per token. Entities may arrive unsorted and
// overlapping: they are stably sorted by start index, and once a token is
// tagged, later-starting entities never overwrite it, so the
// earliest-starting entity claims contested tokens.
func Tags(text string, tokens []tokenizer.Token, entities []models.Entity) ([]string, error) {
	if err := models.ValidateEntities(text, entities); err != nil {
		return nil, err
	}

	sorted := make([]models.Entity, len(entities))
	copy(sorted, entities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartIndex < sorted[j].StartIndex
	})

	tags := make([]string, len(tokens))
	for i := range tags {
		tags[i] = TagOutside
	}

	for _, e := range sorted {
		first := true
		for i, tok := range tokens {
			if tok.Start < e.StartIndex || tok.End > e.EndIndex {
				continue
			}
			if tags[i] != TagOutside {
				continue
			}
			if first {
				tags[i] = "B-" + e.Type
				first = false
			} else {
				tags[i] = "I-" + e.Type
			}
		}
	}
	return tags, nil
}

// Render tokenizes the text, aligns the entities, and returns the
// newline-joined "<token>\t<tag>" lines used by the BIO export format.
func Render(text string, entities []models.Entity) (string, error) {
	tokens := tokenizer.Tokenize(text)
	tags, err := Tags(text, tokens, entities)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(tok.Text)
		b.WriteByte('\t')
		b.WriteString(tags[i])
	}
	return b.String(), nil
}
