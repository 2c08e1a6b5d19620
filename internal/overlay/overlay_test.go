package overlay

import (
	"errors"
	"strings"
	"testing"

	"github.com/spacesedan/annoflow/internal/models"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		entities []models.Entity
		want     []Segment
	}{
		{
			"no entities is one plain segment",
			"nothing here",
			nil,
			[]Segment{{Kind: KindText, Text: "nothing here", Start: 0, End: 12}},
		},
		{
			"empty text",
			"",
			nil,
			[]Segment{},
		},
		{
			"gap entity gap entity tail",
			"Barack Obama visited Paris today",
			[]models.Entity{
				{Type: "PERSON", StartIndex: 0, EndIndex: 12},
				{Type: "LOCATION", StartIndex: 21, EndIndex: 26},
			},
			[]Segment{
				{Kind: KindEntity, Text: "Barack Obama", EntityType: "PERSON", Start: 0, End: 12},
				{Kind: KindText, Text: " visited ", Start: 12, End: 21},
				{Kind: KindEntity, Text: "Paris", EntityType: "LOCATION", Start: 21, End: 26},
				{Kind: KindText, Text: " today", Start: 26, End: 32},
			},
		},
		{
			"entity covering full text",
			"Paris",
			[]models.Entity{{Type: "LOC", StartIndex: 0, EndIndex: 5}},
			[]Segment{{Kind: KindEntity, Text: "Paris", EntityType: "LOC", Start: 0, End: 5}},
		},
		{
			"residual overlap is skipped",
			"New York City",
			[]models.Entity{
				{Type: "GPE", StartIndex: 0, EndIndex: 8},
				{Type: "LOC", StartIndex: 4, EndIndex: 13},
			},
			[]Segment{
				{Kind: KindEntity, Text: "New York", EntityType: "GPE", Start: 0, End: 8},
				{Kind: KindText, Text: " City", Start: 8, End: 13},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.text, tt.entities)
			if err != nil {
				t.Fatalf("Render returned error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Render produced %d segments, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Segment texts concatenate back to the original text, and boundaries
// partition the codepoint range with no gap or overlap.
func TestRenderPartitions(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog — twice."
	entities := []models.Entity{
		{Type: "ANIMAL", StartIndex: 16, EndIndex: 19},
		{Type: "ANIMAL", StartIndex: 40, EndIndex: 43},
	}

	segments, err := Render(text, entities)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	var b strings.Builder
	cursor := 0
	for i, seg := range segments {
		if seg.Start != cursor {
			t.Errorf("segment %d starts at %d, want %d", i, seg.Start, cursor)
		}
		if seg.End <= seg.Start {
			t.Errorf("segment %d is empty or inverted: %+v", i, seg)
		}
		b.WriteString(seg.Text)
		cursor = seg.End
	}
	if cursor != len([]rune(text)) {
		t.Errorf("segments end at %d, want %d", cursor, len([]rune(text)))
	}
	if b.String() != text {
		t.Errorf("concatenated segments = %q, want original text", b.String())
	}
}

func TestRenderRejectsMalformedSpans(t *testing.T) {
	_, err := Render("abc", []models.Entity{{Type: "X", StartIndex: 1, EndIndex: 9}})
	if err == nil {
		t.Fatal("expected an error for out-of-range span")
	}
	var spanErr *models.SpanError
	if !errors.As(err, &spanErr) {
		t.Fatalf("expected *models.SpanError, got %T: %v", err, err)
	}
}
