package models

// Document is the unit of analysis. Text is immutable for the lifetime of
// an analysis session; every entity span indexes into it in codepoints.
type Document struct {
	Text       string `json:"text"`
	SourceName string `json:"source_name"`
}

// AnalysisType identifies which annotation variant a result carries.
type AnalysisType string

const (
	AnalysisNER       AnalysisType = "ner"
	AnalysisSentiment AnalysisType = "sentiment"
	AnalysisPOS       AnalysisType = "pos"
)

func (a AnalysisType) String() string {
	return string(a)
}

// ParseAnalysisType maps a user-supplied string onto an AnalysisType.
func ParseAnalysisType(s string) (AnalysisType, bool) {
	switch AnalysisType(s) {
	case AnalysisNER, AnalysisSentiment, AnalysisPOS:
		return AnalysisType(s), true
	}
	return "", false
}

// Format is an export target format.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatCSV   Format = "csv"
	FormatXML   Format = "xml"
	FormatBIO   Format = "bio"
)

func (f Format) String() string {
	return string(f)
}

// ParseFormat maps a user-supplied string onto a Format.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatJSON, FormatJSONL, FormatCSV, FormatXML, FormatBIO:
		return Format(s), true
	}
	return "", false
}

// AnnotationRequest is the payload the batch worker consumes from Kafka.
type AnnotationRequest struct {
	RequestID    string       `json:"request_id"`
	SourceName   string       `json:"source_name"`
	Text         string       `json:"text"`
	AnalysisType AnalysisType `json:"analysis_type"`
}

// AnnotationResponse is the payload the batch worker publishes back.
type AnnotationResponse struct {
	RequestID    string            `json:"request_id"`
	SourceName   string            `json:"source_name"`
	AnalysisType AnalysisType      `json:"analysis_type"`
	Result       *AnnotationResult `json:"result"`
}
