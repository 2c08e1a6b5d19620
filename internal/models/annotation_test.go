package models

import (
	"testing"
)

func TestValidateEntities(t *testing.T) {
	text := "héllo wörld" // 11 codepoints, 13 bytes

	tests := []struct {
		name      string
		entity    Entity
		wantField string
	}{
		{"valid span", Entity{Type: "X", StartIndex: 0, EndIndex: 5}, ""},
		{"valid empty span", Entity{Type: "X", StartIndex: 3, EndIndex: 3}, ""},
		{"valid span at text end", Entity{Type: "X", StartIndex: 6, EndIndex: 11}, ""},
		{"negative start", Entity{Type: "X", StartIndex: -1, EndIndex: 2}, "startIndex"},
		{"end beyond codepoint length", Entity{Type: "X", StartIndex: 0, EndIndex: 12}, "endIndex"},
		{"inverted span", Entity{Type: "X", StartIndex: 7, EndIndex: 3}, "startIndex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntities(text, []Entity{tt.entity})
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			spanErr, ok := err.(*SpanError)
			if !ok {
				t.Fatalf("expected *SpanError, got %T: %v", err, err)
			}
			if spanErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", spanErr.Field, tt.wantField)
			}
		})
	}
}

func TestValidateEntitiesReportsIndex(t *testing.T) {
	entities := []Entity{
		{Type: "OK", StartIndex: 0, EndIndex: 2},
		{Type: "BAD", StartIndex: 0, EndIndex: 50},
	}
	err := ValidateEntities("short", entities)
	spanErr, ok := err.(*SpanError)
	if !ok {
		t.Fatalf("expected *SpanError, got %T", err)
	}
	if spanErr.EntityIndex != 1 {
		t.Errorf("EntityIndex = %d, want 1", spanErr.EntityIndex)
	}
}

func TestSpanText(t *testing.T) {
	text := "héllo wörld"

	tests := []struct {
		name   string
		entity Entity
		want   string
	}{
		{"ascii-ish span", Entity{StartIndex: 0, EndIndex: 5}, "héllo"},
		{"multibyte span", Entity{StartIndex: 6, EndIndex: 11}, "wörld"},
		{"empty span", Entity{StartIndex: 4, EndIndex: 4}, ""},
		{"out of range yields empty", Entity{StartIndex: 6, EndIndex: 40}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpanText(text, tt.entity); got != tt.want {
				t.Errorf("SpanText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResultValidate(t *testing.T) {
	doc := Document{Text: "some text", SourceName: "doc"}

	t.Run("sentiment requires object", func(t *testing.T) {
		r := &AnnotationResult{AnalysisType: AnalysisSentiment}
		if err := r.Validate(doc); err == nil {
			t.Error("expected error for missing sentiment object")
		}
	})

	t.Run("confidence range", func(t *testing.T) {
		r := &AnnotationResult{
			AnalysisType: AnalysisSentiment,
			Sentiment:    &SentimentResult{Sentiment: SentimentNeutral, Confidence: 1.2},
		}
		if err := r.Validate(doc); err == nil {
			t.Error("expected error for confidence > 1")
		}
	})

	t.Run("pos has no span constraints", func(t *testing.T) {
		r := &AnnotationResult{AnalysisType: AnalysisPOS, PosTags: []PosToken{{Token: "x", Tag: "NN"}}}
		if err := r.Validate(doc); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
