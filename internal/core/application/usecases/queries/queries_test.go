package queries_test

import (
	"context"
	"testing"

	"orderfeatures/internal/core/domain/model/customer"
	"orderfeatures/internal/core/domain/model/dataset"
	"orderfeatures/internal/core/domain/model/features"
	"orderfeatures/internal/core/domain/model/kernel"
	"orderfeatures/internal/core/domain/model/order"
	"orderfeatures/internal/core/domain/model/seller"
	"orderfeatures/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBuilder struct{ mock.Mock }

func (m *MockBuilder) Build(ctx context.Context, deliveredOnly, includeDistance bool) (features.TrainingTable, error) {
	args := m.Called(ctx, deliveredOnly, includeDistance)
	return args.Get(0).(features.TrainingTable), args.Error(1)
}

func (m *MockBuilder) Pipeline(ctx context.Context) (*services.FeaturePipeline, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).(*services.FeaturePipeline)
	return p, args.Error(1)
}

// newPipeline builds a pipeline over two orders: O1 delivered and reviewed,
// O2 shipped with two items from different sellers.
func newPipeline(t *testing.T) *services.FeaturePipeline {
	t.Helper()

	o1, err := order.NewOrder("O1", "C1", "delivered", "2020-01-01 00:00:00", "2020-01-08 00:00:00", "2020-01-10 00:00:00")
	require.NoError(t, err)
	o2, err := order.NewOrder("O2", "C1", "shipped", "2020-01-02 00:00:00", "", "2020-01-12 00:00:00")
	require.NoError(t, err)
	i1, err := order.NewItem("O1", 1, "P1", "S1", 10, 1)
	require.NoError(t, err)
	i2, err := order.NewItem("O2", 1, "P2", "S1", 20, 2)
	require.NoError(t, err)
	i3, err := order.NewItem("O2", 2, "P3", "S2", 30, 3)
	require.NoError(t, err)
	r1, err := order.NewReview("R1", "O1", 5)
	require.NoError(t, err)
	s1, err := seller.NewSeller("S1", "01000", "", "")
	require.NoError(t, err)
	s2, err := seller.NewSeller("S2", "01001", "", "")
	require.NoError(t, err)
	c1, err := customer.NewCustomer("C1", "U1", "01001", "", "")
	require.NoError(t, err)
	p0, err := kernel.NewGeoPoint(0, 0)
	require.NoError(t, err)
	p1, err := kernel.NewGeoPoint(0, 1)
	require.NoError(t, err)

	snapshot, err := dataset.NewSnapshot(dataset.Tables{
		Orders:       []order.Order{o1, o2},
		OrderItems:   []order.Item{i1, i2, i3},
		OrderReviews: []order.Review{r1},
		Sellers:      []seller.Seller{s1, s2},
		Customers:    []customer.Customer{c1},
		Geolocation: []kernel.Geolocation{
			{ZipCodePrefix: "01000", Point: p0},
			{ZipCodePrefix: "01001", Point: p1},
		},
	})
	require.NoError(t, err)

	pipeline, err := services.NewFeaturePipeline(snapshot, nil)
	require.NoError(t, err)
	return pipeline
}
