package ports

import (
	"context"

	"orderfeatures/internal/core/domain/model/features"

	"github.com/google/uuid"
)

// FeatureRowRepository stores exported training tables.
type FeatureRowRepository interface {
	// Add persists the run and all of its rows.
	Add(ctx context.Context, run features.ExportRun) error

	// Get loads a run with its rows in stored row order.
	// Returns an ObjectNotFound error for an unknown id.
	Get(ctx context.Context, id uuid.UUID) (features.ExportRun, error)

	// Prune deletes every run except the newest keep runs and returns how many
	// runs were removed.
	Prune(ctx context.Context, keep int) (int64, error)
}
