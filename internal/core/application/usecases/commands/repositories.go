// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orderfeatures/internal/core/domain/model/features"
	"orderfeatures/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// FeatureRowRepoFactory provides access to the feature row repository within a transaction.
	FeatureRowRepoFactory interface {
		FeatureRowRepository() ports.FeatureRowRepository
	}

	// ExportUoW manages transactions for export operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.FeatureRowRepository().Add(ctx, run)
	//
	//   err = uow.Commit(ctx)
	ExportUoW interface {
		TxManager
		FeatureRowRepoFactory
	}

	// ExportUoWFactory creates new export unit of work instances.
	ExportUoWFactory interface {
		Create() ExportUoW
	}

	// TrainingTableBuilder assembles a training table from the current raw tables.
	TrainingTableBuilder interface {
		Build(ctx context.Context, deliveredOnly, includeDistance bool) (features.TrainingTable, error)
	}
)
