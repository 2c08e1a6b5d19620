package models

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ParseError reports a structural problem in the AI response at a specific
// JSON path, before anything downstream sees the data.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed annotation response at %s: %s", e.Path, e.Reason)
}

// ParseResult converts the dynamically shaped JSON coming back from an
// annotation backend into the strict tagged model. The AI output has no
// compile-time shape guarantee, so every field is checked here and parsing
// fails fast instead of letting undefined fields flow downstream.
//
// Expected shapes:
//
//	ner       {"entities":[{"type":..,"text":..,"startIndex":..,"endIndex":..}]}
//	sentiment {"sentiment":"positive","confidence":0.92}
//	pos       {"tokens":[{"token":..,"tag":..}]}
func ParseResult(analysisType AnalysisType, raw []byte) (*AnnotationResult, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &ParseError{Path: "$", Reason: "not valid JSON"}
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, &ParseError{Path: "$", Reason: "expected a JSON object"}
	}

	switch analysisType {
	case AnalysisNER:
		return parseNER(root)
	case AnalysisSentiment:
		return parseSentiment(root)
	case AnalysisPOS:
		return parsePOS(root)
	default:
		return nil, fmt.Errorf("unknown analysis type %q", analysisType)
	}
}

func parseNER(root gjson.Result) (*AnnotationResult, error) {
	arr := root.Get("entities")
	if !arr.Exists() {
		return nil, &ParseError{Path: "entities", Reason: "missing"}
	}
	if !arr.IsArray() {
		return nil, &ParseError{Path: "entities", Reason: "expected an array"}
	}

	entities := []Entity{}
	var perr *ParseError
	arr.ForEach(func(i, item gjson.Result) bool {
		path := fmt.Sprintf("entities.%d", int(i.Int()))
		if !item.IsObject() {
			perr = &ParseError{Path: path, Reason: "expected an object"}
			return false
		}
		typ := item.Get("type")
		if typ.Type != gjson.String || typ.Str == "" {
			perr = &ParseError{Path: path + ".type", Reason: "expected a non-empty string"}
			return false
		}
		start := item.Get("startIndex")
		end := item.Get("endIndex")
		if start.Type != gjson.Number {
			perr = &ParseError{Path: path + ".startIndex", Reason: "expected a number"}
			return false
		}
		if end.Type != gjson.Number {
			perr = &ParseError{Path: path + ".endIndex", Reason: "expected a number"}
			return false
		}
		entities = append(entities, Entity{
			Type:       typ.Str,
			Text:       item.Get("text").Str,
			StartIndex: int(start.Int()),
			EndIndex:   int(end.Int()),
		})
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return &AnnotationResult{AnalysisType: AnalysisNER, Entities: entities}, nil
}

func parseSentiment(root gjson.Result) (*AnnotationResult, error) {
	label := root.Get("sentiment")
	if label.Type != gjson.String {
		return nil, &ParseError{Path: "sentiment", Reason: "expected a string"}
	}
	switch label.Str {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
	default:
		return nil, &ParseError{Path: "sentiment", Reason: fmt.Sprintf("unknown label %q", label.Str)}
	}
	conf := root.Get("confidence")
	if conf.Type != gjson.Number {
		return nil, &ParseError{Path: "confidence", Reason: "expected a number"}
	}
	if conf.Num < 0 || conf.Num > 1 {
		return nil, &ParseError{Path: "confidence", Reason: fmt.Sprintf("%v outside [0,1]", conf.Num)}
	}
	return &AnnotationResult{
		AnalysisType: AnalysisSentiment,
		Sentiment:    &SentimentResult{Sentiment: label.Str, Confidence: conf.Num},
	}, nil
}

func parsePOS(root gjson.Result) (*AnnotationResult, error) {
	arr := root.Get("tokens")
	if !arr.Exists() {
		return nil, &ParseError{Path: "tokens", Reason: "missing"}
	}
	if !arr.IsArray() {
		return nil, &ParseError{Path: "tokens", Reason: "expected an array"}
	}

	tags := []PosToken{}
	var perr *ParseError
	arr.ForEach(func(i, item gjson.Result) bool {
		path := fmt.Sprintf("tokens.%d", int(i.Int()))
		tok := item.Get("token")
		tag := item.Get("tag")
		if tok.Type != gjson.String {
			perr = &ParseError{Path: path + ".token", Reason: "expected a string"}
			return false
		}
		if tag.Type != gjson.String || tag.Str == "" {
			perr = &ParseError{Path: path + ".tag", Reason: "expected a non-empty string"}
			return false
		}
		tags = append(tags, PosToken{Token: tok.Str, Tag: tag.Str})
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return &AnnotationResult{AnalysisType: AnalysisPOS, PosTags: tags}, nil
}
