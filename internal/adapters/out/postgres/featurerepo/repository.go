package featurerepo

import (
	"context"
	"errors"
	"fmt"

	"orderfeatures/internal/core/domain/model/features"
	"orderfeatures/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// DefaultBatchSize bounds the number of feature rows per INSERT statement.
const DefaultBatchSize = 500

// GormFeatureRowRepository implements FeatureRowRepository using GORM.
type GormFeatureRowRepository struct {
	db      *gorm.DB
	tracker runTracker
}

// runTracker records runs written through the repository.
type runTracker interface {
	TrackRun(id uuid.UUID)
}

// NewGormFeatureRowRepository creates a new GORM feature row repository.
func NewGormFeatureRowRepository(db *gorm.DB, tracker runTracker) *GormFeatureRowRepository {
	return &GormFeatureRowRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves the run header and then its rows in batches.
func (r *GormFeatureRowRepository) Add(ctx context.Context, run features.ExportRun) error {
	if run.ID == uuid.Nil {
		return errs.NewValueIsRequiredError("run id")
	}

	dto := fromDomain(run)
	db := r.db.WithContext(ctx)
	if err := db.Omit("Rows").Create(&dto).Error; err != nil {
		return err
	}
	if len(dto.Rows) > 0 {
		if err := db.CreateInBatches(dto.Rows, DefaultBatchSize).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackRun(run.ID)
	return nil
}

// Get retrieves a run with its rows in training table order.
func (r *GormFeatureRowRepository) Get(ctx context.Context, id uuid.UUID) (features.ExportRun, error) {
	if id == uuid.Nil {
		return features.ExportRun{}, errs.NewValueIsRequiredError("run id")
	}

	var dto ExportRunDTO
	err := r.db.WithContext(ctx).
		Preload("Rows", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return features.ExportRun{}, errs.NewObjectNotFoundError("export run", id.String())
		}
		return features.ExportRun{}, err
	}

	return toDomain(dto), nil
}

// Prune keeps the newest keep runs. Rows of removed runs go with them through
// the cascading foreign key.
func (r *GormFeatureRowRepository) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 1 {
		return 0, errs.NewValueIsOutOfRangeError("keep", keep, 1, "unbounded")
	}

	runs := pq.QuoteIdentifier(runsTable)
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE id NOT IN (SELECT id FROM %s ORDER BY created_at DESC, id LIMIT ?)",
		runs, runs,
	)

	result := r.db.WithContext(ctx).Exec(query, keep)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
