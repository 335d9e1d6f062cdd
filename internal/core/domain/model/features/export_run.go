package features

import (
	"time"

	"github.com/google/uuid"
)

// ExportRun is one persisted and published training table.
type ExportRun struct {
	ID            uuid.UUID
	CreatedAt     time.Time
	DeliveredOnly bool
	Table         TrainingTable
}

// NewExportRun stamps a training table with a fresh run id.
func NewExportRun(table TrainingTable, deliveredOnly bool, now time.Time) ExportRun {
	return ExportRun{
		ID:            uuid.New(),
		CreatedAt:     now.UTC(),
		DeliveredOnly: deliveredOnly,
		Table:         table,
	}
}
