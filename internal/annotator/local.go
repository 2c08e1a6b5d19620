package annotator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/spacesedan/annoflow/internal/models"
)

const (
	nerModelDir  = "./internal/transformers/models"
	nerModelName = "dslim/bert-base-NER"
)

// LocalNERAnnotator runs a token-classification transformer on this
// machine, for NER without an API key. The model is downloaded on first
// use. Supports only the ner analysis type.
type LocalNERAnnotator struct {
	session  *hugot.Session
	pipeline *pipelines.TokenClassificationPipeline
}

func NewLocalNERAnnotator() (*LocalNERAnnotator, error) {
	if err := os.MkdirAll(nerModelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create model directory: %w", err)
	}

	slog.Info("[LocalNER] Ensuring NER model is available", slog.String("model", nerModelName))
	modelPath, err := hugot.DownloadModel(nerModelName, nerModelDir, hugot.NewDownloadOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to download NER model: %w", err)
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hugot session: %w", err)
	}

	config := hugot.TokenClassificationConfig{
		ModelPath: modelPath,
		Name:      "nerAnnotationPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize NER pipeline: %w", err)
	}

	slog.Info("[LocalNER] NER pipeline ready", slog.String("path", modelPath))
	return &LocalNERAnnotator{session: session, pipeline: pipeline}, nil
}

func (a *LocalNERAnnotator) Close() {
	if a.session != nil {
		a.session.Destroy()
	}
}

func (a *LocalNERAnnotator) Annotate(_ context.Context, doc models.Document, analysisType models.AnalysisType) (*models.AnnotationResult, error) {
	if analysisType != models.AnalysisNER {
		return nil, fmt.Errorf("local NER backend only supports ner: %w", models.ErrNotApplicable)
	}

	output, err := a.pipeline.RunPipeline([]string{doc.Text})
	if err != nil {
		return nil, fmt.Errorf("NER pipeline failed: %w", err)
	}

	entities := []models.Entity{}
	for _, batch := range output.Entities {
		for _, e := range batch {
			start := runeOffset(doc.Text, int(e.Start))
			end := runeOffset(doc.Text, int(e.End))
			entities = append(entities, models.Entity{
				Type:       e.Entity,
				Text:       e.Word,
				StartIndex: start,
				EndIndex:   end,
			})
		}
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].StartIndex < entities[j].StartIndex
	})

	result := &models.AnnotationResult{AnalysisType: models.AnalysisNER, Entities: entities}
	if err := result.Validate(doc); err != nil {
		return nil, fmt.Errorf("NER pipeline produced bad spans: %w", err)
	}
	return result, nil
}

// runeOffset converts the pipeline's byte offset into a codepoint offset.
func runeOffset(text string, byteOff int) int {
	if byteOff > len(text) {
		byteOff = len(text)
	}
	return utf8.RuneCountInString(text[:byteOff])
}
