package annotator

import (
	"context"
	"errors"
	"testing"

	"github.com/spacesedan/annoflow/internal/models"
)

func TestVaderAnnotate(t *testing.T) {
	a := NewVaderAnnotator()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"positive", "I love this, it is absolutely wonderful and great!", models.SentimentPositive},
		{"negative", "This is horrible, I hate it and it ruined my day.", models.SentimentNegative},
		{"neutral", "The table is made of wood.", models.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := models.Document{Text: tt.text, SourceName: "t"}
			res, err := a.Annotate(context.Background(), doc, models.AnalysisSentiment)
			if err != nil {
				t.Fatalf("Annotate returned error: %v", err)
			}
			if res.Sentiment == nil {
				t.Fatal("Sentiment is nil")
			}
			if res.Sentiment.Sentiment != tt.want {
				t.Errorf("label = %q, want %q", res.Sentiment.Sentiment, tt.want)
			}
			if res.Sentiment.Confidence < 0 || res.Sentiment.Confidence > 1 {
				t.Errorf("confidence %v outside [0,1]", res.Sentiment.Confidence)
			}
			if err := res.Validate(doc); err != nil {
				t.Errorf("result fails validation: %v", err)
			}
		})
	}
}

func TestVaderRejectsOtherAnalysisTypes(t *testing.T) {
	a := NewVaderAnnotator()
	doc := models.Document{Text: "whatever", SourceName: "t"}

	for _, at := range []models.AnalysisType{models.AnalysisNER, models.AnalysisPOS} {
		if _, err := a.Annotate(context.Background(), doc, at); !errors.Is(err, models.ErrNotApplicable) {
			t.Errorf("%s: expected ErrNotApplicable, got %v", at, err)
		}
	}
}
