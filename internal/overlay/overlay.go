// Package overlay turns a document and its entity spans into a segment
// sequence for display: plain text and highlighted entity runs that cover
// the whole text exactly once.
package overlay

import (
	"github.com/spacesedan/annoflow/internal/models"
)

// Kind distinguishes plain text segments from entity highlights.
type Kind uint8

const (
	KindText Kind = iota
	KindEntity
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindEntity:
		return "entity"
	default:
		return "unknown"
	}
}

// Segment is one run of the document. EntityType is set only for
// KindEntity segments so the presentation layer can style by type.
type Segment struct {
	Kind       Kind
	Text       string
	EntityType string
	Start      int
	End        int
}

// Render walks the entities in ascending start order and emits segments
// that partition [0, len(text)) with no gaps or overlaps. Entities are
// expected sorted by the alignment step; any entity starting before the
// previous segment boundary is a residual overlap and is skipped, the same
// first-writer-wins policy BIO alignment applies. Malformed spans are
// rejected with the entity index rather than clamped.
func Render(text string, entities []models.Entity) ([]Segment, error) {
	if err := models.ValidateEntities(text, entities); err != nil {
		return nil, err
	}

	runes := []rune(text)
	segments := []Segment{}
	cursor := 0

	for _, e := range entities {
		if e.StartIndex < cursor || e.StartIndex == e.EndIndex {
			continue
		}
		if e.StartIndex > cursor {
			segments = append(segments, Segment{
				Kind:  KindText,
				Text:  string(runes[cursor:e.StartIndex]),
				Start: cursor,
				End:   e.StartIndex,
			})
		}
		segments = append(segments, Segment{
			Kind:       KindEntity,
			Text:       string(runes[e.StartIndex:e.EndIndex]),
			EntityType: e.Type,
			Start:      e.StartIndex,
			End:        e.EndIndex,
		})
		cursor = e.EndIndex
	}

	if cursor < len(runes) {
		segments = append(segments, Segment{
			Kind:  KindText,
			Text:  string(runes[cursor:]),
			Start: cursor,
			End:   len(runes),
		})
	}
	return segments, nil
}
