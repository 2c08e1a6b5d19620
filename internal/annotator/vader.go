package annotator

import (
	"context"
	"fmt"

	"github.com/jonreiter/govader"
	"github.com/spacesedan/annoflow/internal/models"
)

// Compound score thresholds for the three labels.
const (
	vaderPositiveCutoff = 0.20
	vaderNegativeCutoff = -0.20
)

// VaderAnnotator is the offline sentiment backend. It supports only the
// sentiment analysis type.
type VaderAnnotator struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderAnnotator() *VaderAnnotator {
	return &VaderAnnotator{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (a *VaderAnnotator) Annotate(_ context.Context, doc models.Document, analysisType models.AnalysisType) (*models.AnnotationResult, error) {
	if analysisType != models.AnalysisSentiment {
		return nil, fmt.Errorf("vader backend only supports sentiment: %w", models.ErrNotApplicable)
	}

	scores := a.analyzer.PolarityScores(doc.Text)

	var label string
	var confidence float64
	switch {
	case scores.Compound >= vaderPositiveCutoff:
		label = models.SentimentPositive
		confidence = scores.Positive
	case scores.Compound <= vaderNegativeCutoff:
		label = models.SentimentNegative
		confidence = scores.Negative
	default:
		label = models.SentimentNeutral
		confidence = scores.Neutral
	}

	return &models.AnnotationResult{
		AnalysisType: models.AnalysisSentiment,
		Sentiment:    &models.SentimentResult{Sentiment: label, Confidence: confidence},
	}, nil
}
