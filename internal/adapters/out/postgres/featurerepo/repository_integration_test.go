package featurerepo_test

import (
	"context"
	"testing"
	"time"

	"orderfeatures/internal/adapters/out/postgres/featurerepo"
	"orderfeatures/internal/core/domain/model/features"
	"orderfeatures/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockRunTracker struct {
	mock.Mock
}

func (m *MockRunTracker) TrackRun(id uuid.UUID) {
	m.Called(id)
}

type FeatureRowRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *featurerepo.GormFeatureRowRepository
	tracker    *MockRunTracker
}

func (suite *FeatureRowRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&featurerepo.ExportRunDTO{}, &featurerepo.OrderFeatureDTO{}))
}

func (suite *FeatureRowRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_features, export_runs").Error)

	suite.tracker = new(MockRunTracker)
	suite.repository = featurerepo.NewGormFeatureRowRepository(suite.db, suite.tracker)
}

func (suite *FeatureRowRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *FeatureRowRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	ctx := context.Background()
	run := newRun(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), 3, true)
	suite.tracker.On("TrackRun", run.ID).Once()

	suite.Require().NoError(suite.repository.Add(ctx, run))

	got, err := suite.repository.Get(ctx, run.ID)
	suite.Require().NoError(err)
	suite.Equal(run, got)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *FeatureRowRepositoryIntegrationTestSuite) TestAdd_EmptyTable() {
	ctx := context.Background()
	run := newRun(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), 0, false)
	suite.tracker.On("TrackRun", run.ID).Once()

	suite.Require().NoError(suite.repository.Add(ctx, run))

	got, err := suite.repository.Get(ctx, run.ID)
	suite.Require().NoError(err)
	suite.Empty(got.Table.Rows)
	suite.False(got.Table.IncludeDistance)
}

func (suite *FeatureRowRepositoryIntegrationTestSuite) TestAdd_LargeTableKeepsOrder() {
	ctx := context.Background()
	run := newRun(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), featurerepo.DefaultBatchSize+7, true)
	suite.tracker.On("TrackRun", run.ID).Once()

	suite.Require().NoError(suite.repository.Add(ctx, run))

	got, err := suite.repository.Get(ctx, run.ID)
	suite.Require().NoError(err)
	suite.Equal(run.Table.OrderIDs(), got.Table.OrderIDs())
}

func (suite *FeatureRowRepositoryIntegrationTestSuite) TestAdd_NilID() {
	err := suite.repository.Add(context.Background(), features.ExportRun{})

	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
	suite.tracker.AssertNotCalled(suite.T(), "TrackRun", mock.Anything)
}

func (suite *FeatureRowRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), uuid.New())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *FeatureRowRepositoryIntegrationTestSuite) TestPrune_KeepsNewest() {
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	suite.tracker.On("TrackRun", mock.Anything)

	runs := make([]features.ExportRun, 0, 4)
	for i := range 4 {
		run := newRun(base.Add(time.Duration(i)*time.Hour), 2, true)
		suite.Require().NoError(suite.repository.Add(ctx, run))
		runs = append(runs, run)
	}

	removed, err := suite.repository.Prune(ctx, 2)
	suite.Require().NoError(err)
	suite.Equal(int64(2), removed)

	for _, run := range runs[:2] {
		_, err = suite.repository.Get(ctx, run.ID)
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	}
	for _, run := range runs[2:] {
		_, err = suite.repository.Get(ctx, run.ID)
		suite.Require().NoError(err)
	}

	var orphans int64
	suite.Require().NoError(suite.db.Model(&featurerepo.OrderFeatureDTO{}).
		Where("run_id IN ?", []uuid.UUID{runs[0].ID, runs[1].ID}).
		Count(&orphans).Error)
	suite.Zero(orphans)
}

func (suite *FeatureRowRepositoryIntegrationTestSuite) TestPrune_InvalidKeep() {
	_, err := suite.repository.Prune(context.Background(), 0)

	suite.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func newRun(createdAt time.Time, rows int, includeDistance bool) features.ExportRun {
	table := features.TrainingTable{
		Rows:            make([]features.OrderFeatureRow, 0, rows),
		IncludeDistance: includeDistance,
	}
	for i := range rows {
		row := features.OrderFeatureRow{
			OrderID:                uuid.NewString(),
			WaitTime:               float64(i) + 0.5,
			ExpectedWaitTime:       10,
			DelayVsExpected:        0,
			OrderStatus:            "delivered",
			OrderPurchaseTimestamp: time.Date(2018, 2, 3, 4, 5, 6, 0, time.UTC),
			ReviewScore:            1,
			DimIsOneStar:           1,
			NumberOfItems:          2,
			NumberOfSellers:        1,
			Price:                  99.9,
			FreightValue:           12.5,
		}
		if includeDistance {
			d := 42.25
			row.DistanceSellerCustomer = &d
		}
		table.Rows = append(table.Rows, row)
	}
	table.Stats = features.BuildStats{Orders: rows + 1, DroppedRows: 1, Rows: rows}
	return features.NewExportRun(table, true, createdAt)
}

func TestFeatureRowRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(FeatureRowRepositoryIntegrationTestSuite))
}
