package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spacesedan/annoflow/config"
	"github.com/spacesedan/annoflow/internal/annotator"
	"github.com/spacesedan/annoflow/internal/clients"
	"github.com/spacesedan/annoflow/internal/export"
	"github.com/spacesedan/annoflow/internal/ingest"
	"github.com/spacesedan/annoflow/internal/logging"
	"github.com/spacesedan/annoflow/internal/models"
	"github.com/spacesedan/annoflow/internal/overlay"
	"github.com/spacesedan/annoflow/internal/savefile"
)

const annotateTimeout = 2 * time.Minute

func main() {
	inPath := flag.String("in", "", "document to annotate (.txt or .md)")
	typeArg := flag.String("type", "ner", "analysis type: ner, sentiment, pos")
	formatArg := flag.String("format", "json", "export format: json, jsonl, csv, xml, bio")
	outDir := flag.String("out", ".", "directory for the export file")
	show := flag.Bool("show", false, "print the highlight overlay for NER results")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	if *inPath == "" {
		slog.Error("[Annotate] Missing -in path")
		os.Exit(2)
	}
	analysisType, ok := models.ParseAnalysisType(*typeArg)
	if !ok {
		slog.Error("[Annotate] Unknown analysis type", slog.String("type", *typeArg))
		os.Exit(2)
	}
	format, ok := models.ParseFormat(*formatArg)
	if !ok {
		slog.Error("[Annotate] Unknown export format", slog.String("format", *formatArg))
		os.Exit(2)
	}

	doc, err := ingest.LoadDocument(*inPath)
	if err != nil {
		slog.Error("[Annotate] Failed to load document", slog.String("error", err.Error()))
		os.Exit(1)
	}

	backend, cleanup, err := pickBackend(analysisType)
	if err != nil {
		slog.Error("[Annotate] No usable annotation backend", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), annotateTimeout)
	defer cancel()

	result, err := backend.Annotate(ctx, doc, analysisType)
	if err != nil {
		slog.Error("[Annotate] Annotation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	payload, err := export.Serialize(doc, result, format, doc.SourceName)
	if err != nil {
		slog.Error("[Annotate] Export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	path, err := savefile.Save(*outDir, payload)
	if err != nil {
		slog.Error("[Annotate] Failed to save export", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("[Annotate] Done",
		slog.String("analysis_type", analysisType.String()),
		slog.String("export", path))

	if *show && analysisType == models.AnalysisNER {
		printOverlay(doc.Text, result.Entities)
	}
}

// pickBackend prefers the hosted backend; without an API key it falls
// back to the offline backends that cover sentiment and NER.
func pickBackend(analysisType models.AnalysisType) (annotator.Annotator, func(), error) {
	if clients.HasOpenAIKey() {
		return annotator.NewOpenAIAnnotator(), func() {}, nil
	}

	switch analysisType {
	case models.AnalysisSentiment:
		return annotator.NewVaderAnnotator(), func() {}, nil
	case models.AnalysisNER:
		local, err := annotator.NewLocalNERAnnotator()
		if err != nil {
			return nil, nil, err
		}
		return local, local.Close, nil
	default:
		return nil, nil, fmt.Errorf("analysis type %s requires OPENAI_API_KEY", analysisType)
	}
}

// printOverlay renders entity segments as [text](TYPE) markers.
func printOverlay(text string, entities []models.Entity) {
	segments, err := overlay.Render(text, entities)
	if err != nil {
		slog.Warn("[Annotate] Could not render overlay", slog.String("error", err.Error()))
		return
	}
	for _, seg := range segments {
		if seg.Kind == overlay.KindEntity {
			fmt.Printf("[%s](%s)", seg.Text, seg.EntityType)
		} else {
			fmt.Print(seg.Text)
		}
	}
	fmt.Println()
}
