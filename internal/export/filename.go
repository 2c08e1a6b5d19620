package export

import "github.com/spacesedan/annoflow/internal/models"

// suggestedFilename follows <base>_<analysisType>.<ext>, with two special
// cases: BIO uses the .bio.txt suffix and plain JSON is the combined
// annotations file.
func suggestedFilename(base string, analysisType models.AnalysisType, format models.Format) string {
	switch format {
	case models.FormatBIO:
		return base + "_ner.bio.txt"
	case models.FormatJSON:
		return base + "_annotations.json"
	default:
		return base + "_" + analysisType.String() + "." + format.String()
	}
}

func mimeType(format models.Format) string {
	switch format {
	case models.FormatJSON:
		return "application/json"
	case models.FormatJSONL:
		return "application/x-ndjson"
	case models.FormatCSV:
		return "text/csv"
	case models.FormatXML:
		return "application/xml"
	case models.FormatBIO:
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
