package queries

import (
	"context"

	"orderfeatures/internal/core/domain/model/features"

	"github.com/google/uuid"
)

// ExportRunReader loads stored export runs.
type ExportRunReader interface {
	Get(ctx context.Context, id uuid.UUID) (features.ExportRun, error)
}

// GetExportRunQueryHandler serves GetExportRunQuery.
type GetExportRunQueryHandler struct {
	reader ExportRunReader
}

func NewGetExportRunQueryHandler(reader ExportRunReader) GetExportRunQueryHandler {
	return GetExportRunQueryHandler{reader: reader}
}

// Handle returns the stored run. An unknown id yields an ObjectNotFound error.
func (h GetExportRunQueryHandler) Handle(ctx context.Context, query GetExportRunQuery) (features.ExportRun, error) {
	if err := query.Validate(); err != nil {
		return features.ExportRun{}, err
	}

	return h.reader.Get(ctx, query.RunID())
}
