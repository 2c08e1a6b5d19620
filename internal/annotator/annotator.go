// Package annotator holds the annotation backends. Backends produce
// untrusted results; everything they return passes through the models
// parse/validate boundary before the core touches it.
package annotator

import (
	"context"

	"github.com/spacesedan/annoflow/internal/models"
)

// Annotator produces one AnnotationResult for a document. Implementations
// that do not support an analysis type return models.ErrNotApplicable.
type Annotator interface {
	Annotate(ctx context.Context, doc models.Document, analysisType models.AnalysisType) (*models.AnnotationResult, error)
}
