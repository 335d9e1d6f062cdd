package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orderfeatures/internal/core/application/usecases/pipeline"
	"orderfeatures/internal/core/domain/model/customer"
	"orderfeatures/internal/core/domain/model/dataset"
	"orderfeatures/internal/core/domain/model/features"
	"orderfeatures/internal/core/domain/model/kernel"
	"orderfeatures/internal/core/domain/model/order"
	"orderfeatures/internal/core/domain/model/seller"
	"orderfeatures/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProvider struct{ mock.Mock }

func (m *MockProvider) Load(ctx context.Context) (dataset.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(dataset.Snapshot), args.Error(1)
}

func (m *MockProvider) Ping() string { return "pong" }

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) ObserveBuild(stats features.BuildStats, elapsed time.Duration, err error) {
	m.Called(stats, elapsed, err)
}

func (m *MockMetrics) ObserveExport(rows int, err error) {
	m.Called(rows, err)
}

func snapshot(t *testing.T) dataset.Snapshot {
	t.Helper()
	o, err := order.NewOrder("O1", "C1", "delivered", "2020-01-01 00:00:00", "2020-01-08 00:00:00", "2020-01-10 00:00:00")
	require.NoError(t, err)
	item, err := order.NewItem("O1", 1, "P1", "S1", 10, 2)
	require.NoError(t, err)
	review, err := order.NewReview("R1", "O1", 5)
	require.NoError(t, err)
	s, err := seller.NewSeller("S1", "01000", "", "")
	require.NoError(t, err)
	c, err := customer.NewCustomer("C1", "U1", "01000", "", "")
	require.NoError(t, err)

	snap, err := dataset.NewSnapshot(dataset.Tables{
		Orders:       []order.Order{o},
		OrderItems:   []order.Item{item},
		OrderReviews: []order.Review{review},
		Sellers:      []seller.Seller{s},
		Customers:    []customer.Customer{c},
		Geolocation:  []kernel.Geolocation{},
	})
	require.NoError(t, err)
	return snap
}

func TestBuilder_Build_Success(t *testing.T) {
	ctx := t.Context()
	provider := new(MockProvider)
	provider.On("Load", ctx).Return(snapshot(t), nil).Once()
	metrics := new(MockMetrics)
	metrics.On("ObserveBuild", mock.MatchedBy(func(s features.BuildStats) bool { return s.Rows == 1 }),
		mock.AnythingOfType("time.Duration"), nil).Once()

	table, err := pipeline.NewBuilder(provider, metrics, nil).Build(ctx, true, false)

	require.NoError(t, err)
	assert.Equal(t, []string{"O1"}, table.OrderIDs())
	provider.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestBuilder_Build_ProviderError(t *testing.T) {
	ctx := t.Context()
	loadErr := errs.NewMissingTableError(dataset.TableOrders)
	provider := new(MockProvider)
	provider.On("Load", ctx).Return(dataset.Snapshot{}, loadErr).Once()
	metrics := new(MockMetrics)
	metrics.On("ObserveBuild", features.BuildStats{}, mock.AnythingOfType("time.Duration"), loadErr).Once()

	_, err := pipeline.NewBuilder(provider, metrics, nil).Build(ctx, true, false)

	require.ErrorIs(t, err, errs.ErrMissingTable)
	metrics.AssertExpectations(t)
}

func TestBuilder_Build_WithoutMetrics(t *testing.T) {
	ctx := t.Context()
	provider := new(MockProvider)
	provider.On("Load", ctx).Return(dataset.Snapshot{}, errors.New("disk gone")).Once()

	_, err := pipeline.NewBuilder(provider, nil, nil).Build(ctx, false, true)

	require.EqualError(t, err, "disk gone")
}
