package ports

import (
	"context"

	"orderfeatures/internal/core/domain/model/features"
)

// TrainingTablePublisher hands an exported training table to downstream consumers.
type TrainingTablePublisher interface {
	Publish(ctx context.Context, run features.ExportRun) error
}
