// Package export renders an annotation result as an interchange payload:
// json, jsonl, csv, xml, or BIO, each with exact format-specific escaping,
// plus a suggested filename and MIME type for the save step.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spacesedan/annoflow/internal/bio"
	"github.com/spacesedan/annoflow/internal/models"
)

// Payload is the export triple handed to the file-save step.
type Payload struct {
	Body     string
	Filename string
	MIMEType string
}

type jsonEnvelope struct {
	SourceText   string `json:"sourceText"`
	AnalysisType string `json:"analysisType"`
	Results      any    `json:"results"`
}

// Serialize renders the result for the requested format. A nil result is a
// caller contract violation (ErrNoResult), as is BIO for anything but NER
// (ErrNotApplicable); both are distinct from span validation errors.
// Entity surface forms are always resolved from the document text by
// index, never taken from the echoed text field.
func Serialize(doc models.Document, res *models.AnnotationResult, format models.Format, baseName string) (Payload, error) {
	if res == nil {
		return Payload{}, models.ErrNoResult
	}
	if format == models.FormatBIO && res.AnalysisType != models.AnalysisNER {
		return Payload{}, fmt.Errorf("bio export for %s result: %w", res.AnalysisType, models.ErrNotApplicable)
	}
	if err := res.Validate(doc); err != nil {
		return Payload{}, err
	}

	var body string
	var err error
	switch format {
	case models.FormatJSON:
		body, err = renderJSON(doc, res)
	case models.FormatJSONL:
		body, err = renderJSONL(doc, res)
	case models.FormatCSV:
		body, err = renderCSV(doc, res)
	case models.FormatXML:
		body, err = renderXML(doc, res)
	case models.FormatBIO:
		body, err = bio.Render(doc.Text, res.Entities)
	default:
		return Payload{}, fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return Payload{}, err
	}

	return Payload{
		Body:     body,
		Filename: suggestedFilename(baseName, res.AnalysisType, format),
		MIMEType: mimeType(format),
	}, nil
}

// resolvedEntities returns copies of the entities with Text re-derived
// from the document by span, so exports carry the document's truth.
func resolvedEntities(doc models.Document, entities []models.Entity) []models.Entity {
	out := make([]models.Entity, len(entities))
	for i, e := range entities {
		e.Text = models.SpanText(doc.Text, e)
		out[i] = e
	}
	return out
}

func renderJSON(doc models.Document, res *models.AnnotationResult) (string, error) {
	env := jsonEnvelope{
		SourceText:   doc.Text,
		AnalysisType: res.AnalysisType.String(),
	}
	switch res.AnalysisType {
	case models.AnalysisNER:
		env.Results = resolvedEntities(doc, res.Entities)
	case models.AnalysisSentiment:
		env.Results = res.Sentiment
	case models.AnalysisPOS:
		env.Results = res.PosTags
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal json export: %w", err)
	}
	return string(data), nil
}

func renderJSONL(doc models.Document, res *models.AnnotationResult) (string, error) {
	var records []any
	switch res.AnalysisType {
	case models.AnalysisNER:
		for _, e := range resolvedEntities(doc, res.Entities) {
			records = append(records, e)
		}
	case models.AnalysisSentiment:
		records = append(records, res.Sentiment)
	case models.AnalysisPOS:
		for _, p := range res.PosTags {
			records = append(records, p)
		}
	}

	var b strings.Builder
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			return "", fmt.Errorf("failed to marshal jsonl record: %w", err)
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func renderCSV(doc models.Document, res *models.AnnotationResult) (string, error) {
	var b strings.Builder
	switch res.AnalysisType {
	case models.AnalysisNER:
		b.WriteString("text,type,startIndex,endIndex\n")
		for _, e := range resolvedEntities(doc, res.Entities) {
			b.WriteString(escapeCSV(e.Text))
			b.WriteByte(',')
			b.WriteString(escapeCSV(e.Type))
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(e.StartIndex))
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(e.EndIndex))
			b.WriteByte('\n')
		}
	case models.AnalysisSentiment:
		b.WriteString("sentiment,confidence\n")
		b.WriteString(escapeCSV(res.Sentiment.Sentiment))
		b.WriteByte(',')
		b.WriteString(formatConfidence(res.Sentiment.Confidence))
		b.WriteByte('\n')
	case models.AnalysisPOS:
		b.WriteString("token,tag\n")
		for _, p := range res.PosTags {
			b.WriteString(escapeCSV(p.Token))
			b.WriteByte(',')
			b.WriteString(escapeCSV(p.Tag))
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

func renderXML(doc models.Document, res *models.AnnotationResult) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "<results analysisType=%q>\n", res.AnalysisType)

	switch res.AnalysisType {
	case models.AnalysisNER:
		b.WriteString("  <entities>\n")
		for _, e := range resolvedEntities(doc, res.Entities) {
			fmt.Fprintf(&b, "    <entity type=\"%s\">\n", escapeXML(e.Type))
			fmt.Fprintf(&b, "      <text>%s</text>\n", escapeXML(e.Text))
			fmt.Fprintf(&b, "      <startIndex>%d</startIndex>\n", e.StartIndex)
			fmt.Fprintf(&b, "      <endIndex>%d</endIndex>\n", e.EndIndex)
			b.WriteString("    </entity>\n")
		}
		b.WriteString("  </entities>\n")
	case models.AnalysisSentiment:
		fmt.Fprintf(&b, "  <sentiment>%s</sentiment>\n", escapeXML(res.Sentiment.Sentiment))
		fmt.Fprintf(&b, "  <confidence>%s</confidence>\n", formatConfidence(res.Sentiment.Confidence))
	case models.AnalysisPOS:
		b.WriteString("  <tokens>\n")
		for _, p := range res.PosTags {
			fmt.Fprintf(&b, "    <token tag=\"%s\">\n", escapeXML(p.Tag))
			fmt.Fprintf(&b, "      <text>%s</text>\n", escapeXML(p.Token))
			b.WriteString("    </token>\n")
		}
		b.WriteString("  </tokens>\n")
	}

	b.WriteString("</results>")
	return b.String(), nil
}

// formatConfidence keeps native float precision; display rounding belongs
// to the presentation layer and never reaches an exported file.
func formatConfidence(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}
