package models

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Entity is one named-entity span. StartIndex and EndIndex are half-open
// codepoint offsets into the document text; the Text field is the echoed
// surface form and is never trusted over the indices.
type Entity struct {
	Type       string `json:"type"`
	Text       string `json:"text"`
	StartIndex int    `json:"startIndex"`
	EndIndex   int    `json:"endIndex"`
}

// Sentiment labels, matching what the VADER and OpenAI backends emit.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// SentimentResult is a single document-level sentiment judgement.
type SentimentResult struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

// PosToken is one token with its part-of-speech tag. No offsets; order is
// the source token order.
type PosToken struct {
	Token string `json:"token"`
	Tag   string `json:"tag"`
}

// AnnotationResult is the tagged union over the three analysis variants.
// Exactly one of Entities, Sentiment, PosTags is populated, selected by
// AnalysisType. At most one result is live per document.
type AnnotationResult struct {
	AnalysisType AnalysisType     `json:"analysis_type"`
	Entities     []Entity         `json:"entities,omitempty"`
	Sentiment    *SentimentResult `json:"sentiment,omitempty"`
	PosTags      []PosToken       `json:"pos_tags,omitempty"`
}

// Sentinel errors distinguishing caller contract violations from data
// corruption, so callers can present different messages.
var (
	ErrNoResult      = errors.New("no annotation result available")
	ErrNotApplicable = errors.New("format not applicable to this analysis type")
)

// SpanError reports a malformed entity span with enough detail for an
// actionable message. The policy is reject, never clamp.
type SpanError struct {
	EntityIndex int
	Field       string
	Value       int
	TextLen     int
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("entity %d: %s=%d out of range for text of %d codepoints",
		e.EntityIndex, e.Field, e.Value, e.TextLen)
}

// ValidateEntities checks every span against the document text length in
// codepoints. Indices arrive from an external AI call and are untrusted.
func ValidateEntities(text string, entities []Entity) error {
	n := utf8.RuneCountInString(text)
	for i, e := range entities {
		if e.StartIndex < 0 || e.StartIndex > n {
			return &SpanError{EntityIndex: i, Field: "startIndex", Value: e.StartIndex, TextLen: n}
		}
		if e.EndIndex < 0 || e.EndIndex > n {
			return &SpanError{EntityIndex: i, Field: "endIndex", Value: e.EndIndex, TextLen: n}
		}
		if e.StartIndex > e.EndIndex {
			return &SpanError{EntityIndex: i, Field: "startIndex", Value: e.StartIndex, TextLen: n}
		}
	}
	return nil
}

// Validate checks the result against its document. Only NER carries spans;
// sentiment confidence is range-checked, POS tags are structural only.
func (r *AnnotationResult) Validate(doc Document) error {
	switch r.AnalysisType {
	case AnalysisNER:
		return ValidateEntities(doc.Text, r.Entities)
	case AnalysisSentiment:
		if r.Sentiment == nil {
			return fmt.Errorf("sentiment result missing sentiment object")
		}
		if r.Sentiment.Confidence < 0 || r.Sentiment.Confidence > 1 {
			return fmt.Errorf("sentiment confidence %v outside [0,1]", r.Sentiment.Confidence)
		}
		return nil
	case AnalysisPOS:
		return nil
	default:
		return fmt.Errorf("unknown analysis type %q", r.AnalysisType)
	}
}

// SpanText resolves an entity's surface form from the document text by its
// indices. Serializers use this instead of the echoed Text field.
func SpanText(text string, e Entity) string {
	runes := []rune(text)
	if e.StartIndex < 0 || e.EndIndex > len(runes) || e.StartIndex > e.EndIndex {
		return ""
	}
	return string(runes[e.StartIndex:e.EndIndex])
}
