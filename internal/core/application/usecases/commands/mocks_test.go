package commands_test

import (
	"context"
	"time"

	"orderfeatures/internal/core/application/usecases/commands"
	"orderfeatures/internal/core/domain/model/features"
	"orderfeatures/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockFeatureRowRepository struct{ mock.Mock }

func (m *MockFeatureRowRepository) Add(ctx context.Context, run features.ExportRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockFeatureRowRepository) Get(ctx context.Context, id uuid.UUID) (features.ExportRun, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(features.ExportRun), args.Error(1)
}

func (m *MockFeatureRowRepository) Prune(ctx context.Context, keep int) (int64, error) {
	args := m.Called(ctx, keep)
	return args.Get(0).(int64), args.Error(1)
}

type MockExportUoW struct{ mock.Mock }

func (m *MockExportUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockExportUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockExportUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExportUoW) FeatureRowRepository() ports.FeatureRowRepository {
	args := m.Called()
	return args.Get(0).(ports.FeatureRowRepository)
}

type MockExportUoWFactory struct{ mock.Mock }

func (m *MockExportUoWFactory) Create() commands.ExportUoW {
	args := m.Called()
	return args.Get(0).(commands.ExportUoW)
}

type MockBuilder struct{ mock.Mock }

func (m *MockBuilder) Build(ctx context.Context, deliveredOnly, includeDistance bool) (features.TrainingTable, error) {
	args := m.Called(ctx, deliveredOnly, includeDistance)
	return args.Get(0).(features.TrainingTable), args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, run features.ExportRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) ObserveBuild(stats features.BuildStats, elapsed time.Duration, err error) {
	m.Called(stats, elapsed, err)
}

func (m *MockMetrics) ObserveExport(rows int, err error) {
	m.Called(rows, err)
}
