// Package postgres provides a GORM-based implementation of the Unit of Work
// pattern for persisting exported training tables.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.FeatureRowRepository().Add(ctx, run); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns at most one transaction. Goroutines must use
// separate instances.
package postgres

import (
	"context"
	"log/slog"

	"orderfeatures/internal/adapters/out/postgres/featurerepo"
	"orderfeatures/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// A nil logger falls back to slog.Default.
func NewGormUnitOfWorkFactory(db *gorm.DB, logger *slog.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUnitOfWorkFactory{db: db, logger: logger.With("component", "GormUnitOfWork")}
}

// Create produces a fresh unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create with the concrete return type.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:         f.db,
		logger:     f.logger,
		trackedRun: make([]uuid.UUID, 0),
	}
}

// AutoMigrate creates or updates the export tables.
func (f *GormUnitOfWorkFactory) AutoMigrate(ctx context.Context) error {
	return f.db.WithContext(ctx).AutoMigrate(&featurerepo.ExportRunDTO{}, &featurerepo.OrderFeatureDTO{})
}

// GormUnitOfWork coordinates one database transaction and remembers which
// export runs were written through it.
type GormUnitOfWork struct {
	db         *gorm.DB
	tx         *gorm.DB
	logger     *slog.Logger
	trackedRun []uuid.UUID
}

// Begin opens a transaction. Calling Begin again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the current transaction.
// Returns gorm.ErrInvalidTransaction if none is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	uow.logger.Debug("transaction committed", "runs", uow.TrackedRuns())
	return nil
}

// Rollback discards the current transaction and forgets the runs written in it.
// Returns gorm.ErrInvalidTransaction if none is open, which makes it safe to
// defer after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedRun = uow.trackedRun[:0]
	return err
}

// FeatureRowRepository returns a repository bound to the open transaction, or
// to the plain connection when no transaction is open.
func (uow *GormUnitOfWork) FeatureRowRepository() ports.FeatureRowRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return featurerepo.NewGormFeatureRowRepository(db, uow)
}

// TrackRun registers a run written within this unit of work.
func (uow *GormUnitOfWork) TrackRun(id uuid.UUID) {
	uow.trackedRun = append(uow.trackedRun, id)
}

// TrackedRuns returns the ids of runs written so far.
func (uow *GormUnitOfWork) TrackedRuns() []uuid.UUID {
	return append([]uuid.UUID(nil), uow.trackedRun...)
}
