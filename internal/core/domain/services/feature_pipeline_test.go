package services_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"
	"time"

	"orderfeatures/internal/core/domain/model/customer"
	"orderfeatures/internal/core/domain/model/dataset"
	"orderfeatures/internal/core/domain/model/features"
	"orderfeatures/internal/core/domain/model/kernel"
	"orderfeatures/internal/core/domain/model/order"
	"orderfeatures/internal/core/domain/model/seller"
	"orderfeatures/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneDegreeKm = 111.19492664455873

func mustOrder(t *testing.T, id, customerID, status, purchase, delivered, estimated string) order.Order {
	t.Helper()
	o, err := order.NewOrder(id, customerID, status, purchase, delivered, estimated)
	require.NoError(t, err)
	return o
}

func mustItem(t *testing.T, orderID string, seq int, sellerID string, price, freight float64) order.Item {
	t.Helper()
	item, err := order.NewItem(orderID, seq, "P", sellerID, price, freight)
	require.NoError(t, err)
	return item
}

func mustReview(t *testing.T, orderID string, score int) order.Review {
	t.Helper()
	r, err := order.NewReview("R-"+orderID, orderID, score)
	require.NoError(t, err)
	return r
}

func mustSeller(t *testing.T, id, zip string) seller.Seller {
	t.Helper()
	s, err := seller.NewSeller(id, zip, "", "")
	require.NoError(t, err)
	return s
}

func mustCustomer(t *testing.T, id, zip string) customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(id, "U-"+id, zip, "", "")
	require.NoError(t, err)
	return c
}

func mustGeo(t *testing.T, zip string, lat, lng float64) kernel.Geolocation {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return kernel.Geolocation{ZipCodePrefix: kernel.ZipCodePrefix(zip), Point: p}
}

// fixtureTables builds a small data set:
//   - O1 delivered early, one item, five-star review (reviewed twice)
//   - O2 delivered late, three items from two sellers, one-star review
//   - O3 shipped, not delivered yet
//   - O4 delivered with a malformed purchase timestamp
//   - O5 delivered without review, customer zip has no geocode
func fixtureTables(t *testing.T) dataset.Tables {
	t.Helper()
	return dataset.Tables{
		Orders: []order.Order{
			mustOrder(t, "O1", "C1", "delivered", "2020-01-01T00:00:00", "2020-01-08T00:00:00", "2020-01-10T00:00:00"),
			mustOrder(t, "O2", "C2", "delivered", "2020-02-01 00:00:00", "2020-02-15 00:00:00", "2020-02-10 00:00:00"),
			mustOrder(t, "O3", "C3", "shipped", "2020-01-05 00:00:00", "", "2020-01-20 00:00:00"),
			mustOrder(t, "O4", "C4", "delivered", "not-a-date", "2020-01-08 00:00:00", "2020-01-10 00:00:00"),
			mustOrder(t, "O5", "C5", "delivered", "2020-03-01 00:00:00", "2020-03-03 00:00:00", "2020-03-05 00:00:00"),
		},
		OrderItems: []order.Item{
			mustItem(t, "O1", 1, "S1", 50, 5),
			mustItem(t, "O2", 1, "S1", 10, 2),
			mustItem(t, "O2", 2, "S1", 20, 3),
			mustItem(t, "O2", 3, "S2", 5, 1),
			mustItem(t, "O3", 1, "S2", 7, 1),
			mustItem(t, "O4", 1, "S3", 9, 1),
			mustItem(t, "O5", 1, "S1", 11, 1),
		},
		OrderReviews: []order.Review{
			mustReview(t, "O1", 5),
			mustReview(t, "O2", 1),
			mustReview(t, "O3", 3),
			mustReview(t, "O4", 4),
			mustReview(t, "O1", 2),
		},
		Sellers: []seller.Seller{
			mustSeller(t, "S1", "01000"),
			mustSeller(t, "S2", "20000"),
			mustSeller(t, "S3", "99999"),
		},
		Customers: []customer.Customer{
			mustCustomer(t, "C1", "01001"),
			mustCustomer(t, "C2", "01000"),
			mustCustomer(t, "C3", "20000"),
			mustCustomer(t, "C4", "01000"),
			mustCustomer(t, "C5", "77777"),
		},
		Geolocation: []kernel.Geolocation{
			mustGeo(t, "01000", 0, 0),
			mustGeo(t, "01001", 0, 1),
			mustGeo(t, "01000", 10, 10),
			mustGeo(t, "20000", 0, 2),
		},
	}
}

func newPipeline(t *testing.T, logs *bytes.Buffer) *services.FeaturePipeline {
	t.Helper()
	snapshot, err := dataset.NewSnapshot(fixtureTables(t))
	require.NoError(t, err)

	var logger *slog.Logger
	if logs != nil {
		logger = slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	pipeline, err := services.NewFeaturePipeline(snapshot, logger)
	require.NoError(t, err)
	return pipeline
}

func TestNewFeaturePipeline_RequiresConstructedSnapshot(t *testing.T) {
	_, err := services.NewFeaturePipeline(dataset.Snapshot{}, nil)

	require.ErrorIs(t, err, dataset.ErrSnapshotIsNotConstructed)
}

func TestFeaturePipeline_WaitTime(t *testing.T) {
	t.Run("delivered only", func(t *testing.T) {
		var logs bytes.Buffer
		pipeline := newPipeline(t, &logs)

		rows, err := pipeline.WaitTime(true)

		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "O1", rows[0].OrderID)
		assert.Equal(t, "O2", rows[1].OrderID)
		assert.Equal(t, "O5", rows[2].OrderID)

		o1 := rows[0]
		assert.InDelta(t, 7.0, *o1.WaitTime, 1e-9)
		assert.InDelta(t, 9.0, *o1.ExpectedWaitTime, 1e-9)
		assert.InDelta(t, 0.0, *o1.DelayVsExpected, 1e-9)
		assert.Equal(t, "delivered", o1.OrderStatus)
		assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), *o1.PurchaseTimestamp)

		o2 := rows[1]
		assert.InDelta(t, 14.0, *o2.WaitTime, 1e-9)
		assert.InDelta(t, 9.0, *o2.ExpectedWaitTime, 1e-9)
		assert.InDelta(t, 5.0, *o2.DelayVsExpected, 1e-9)

		assert.Contains(t, logs.String(), "skipping order with invalid timestamp")
		assert.Contains(t, logs.String(), "order_id=O4")
	})

	t.Run("all statuses", func(t *testing.T) {
		pipeline := newPipeline(t, nil)

		rows, err := pipeline.WaitTime(false)

		require.NoError(t, err)
		require.Len(t, rows, 4)
		o3 := rows[2]
		assert.Equal(t, "O3", o3.OrderID)
		assert.Equal(t, "shipped", o3.OrderStatus)
		assert.Nil(t, o3.WaitTime)
		assert.Nil(t, o3.DelayVsExpected)
		require.NotNil(t, o3.ExpectedWaitTime)
		assert.InDelta(t, 15.0, *o3.ExpectedWaitTime, 1e-9)
		assert.False(t, o3.IsComplete())
	})

	t.Run("delivered status must match exactly", func(t *testing.T) {
		snapshot, err := dataset.NewSnapshot(dataset.Tables{
			Orders: []order.Order{
				mustOrder(t, "O1", "C1", "Delivered", "2020-01-01 00:00:00", "2020-01-08 00:00:00", "2020-01-10 00:00:00"),
				mustOrder(t, "O2", "C2", "delivered", "2020-01-01 00:00:00", "2020-01-03 00:00:00", "2020-01-10 00:00:00"),
			},
			OrderItems:   []order.Item{},
			OrderReviews: []order.Review{},
			Sellers:      []seller.Seller{},
			Customers:    []customer.Customer{},
			Geolocation:  []kernel.Geolocation{},
		})
		require.NoError(t, err)
		pipeline, err := services.NewFeaturePipeline(snapshot, nil)
		require.NoError(t, err)

		rows, err := pipeline.WaitTime(true)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "O2", rows[0].OrderID)

		all, err := pipeline.WaitTime(false)

		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Delivered", all[0].OrderStatus)
	})

	t.Run("delay is never negative", func(t *testing.T) {
		pipeline := newPipeline(t, nil)

		rows, err := pipeline.WaitTime(false)

		require.NoError(t, err)
		for _, r := range rows {
			if r.DelayVsExpected != nil {
				assert.GreaterOrEqual(t, *r.DelayVsExpected, 0.0, r.OrderID)
			}
		}
	})
}

func TestFeaturePipeline_ReviewScore(t *testing.T) {
	pipeline := newPipeline(t, nil)

	rows, err := pipeline.ReviewScore()

	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, features.ReviewScore{OrderID: "O1", ReviewScore: 5, DimIsFiveStar: 1}, rows[0])
	assert.Equal(t, features.ReviewScore{OrderID: "O2", ReviewScore: 1, DimIsOneStar: 1}, rows[1])
	for _, r := range rows {
		assert.LessOrEqual(t, r.DimIsFiveStar+r.DimIsOneStar, 1)
		if r.ReviewScore >= 2 && r.ReviewScore <= 4 {
			assert.Zero(t, r.DimIsFiveStar)
			assert.Zero(t, r.DimIsOneStar)
		}
	}
}

func TestFeaturePipeline_BasketSize(t *testing.T) {
	pipeline := newPipeline(t, nil)

	items, err := pipeline.NumberOfItems()
	require.NoError(t, err)
	sellers, err := pipeline.NumberOfSellers()
	require.NoError(t, err)

	require.Len(t, items, 5)
	require.Len(t, sellers, 5)
	assert.Equal(t, features.ItemCount{OrderID: "O2", NumberOfItems: 3}, items[1])
	assert.Equal(t, features.SellerCount{OrderID: "O2", NumberOfSellers: 2}, sellers[1])

	for i := range items {
		assert.Equal(t, items[i].OrderID, sellers[i].OrderID)
		assert.LessOrEqual(t, sellers[i].NumberOfSellers, items[i].NumberOfItems)
		assert.Positive(t, sellers[i].NumberOfSellers)
	}
}

func TestFeaturePipeline_PriceAndFreight(t *testing.T) {
	pipeline := newPipeline(t, nil)

	rows, err := pipeline.PriceAndFreight()

	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "O2", rows[1].OrderID)
	assert.InDelta(t, 35.0, rows[1].Price, 1e-9)
	assert.InDelta(t, 6.0, rows[1].FreightValue, 1e-9)
}

func TestFeaturePipeline_DistanceSellerCustomer(t *testing.T) {
	var logs bytes.Buffer
	pipeline := newPipeline(t, &logs)

	rows, err := pipeline.DistanceSellerCustomer()

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Contains(t, logs.String(), "samples=4 prefixes=3")

	// S1 (0,0) to C1 (0,1); the second sample of zip 01000 must be ignored.
	assert.Equal(t, "O1", rows[0].OrderID)
	assert.InDelta(t, oneDegreeKm, rows[0].DistanceSellerCustomer, 1e-6)

	// Distinct pairs S1-C2 (0 km) and S2-C2 (2 degrees); the repeated S1 item does not weigh in.
	assert.Equal(t, "O2", rows[1].OrderID)
	assert.InDelta(t, oneDegreeKm, rows[1].DistanceSellerCustomer, 1e-6)

	assert.Equal(t, "O3", rows[2].OrderID)
	assert.InDelta(t, 0.0, rows[2].DistanceSellerCustomer, 1e-9)
}

func TestFeaturePipeline_TrainingTable(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		pipeline := newPipeline(t, nil)

		table, err := pipeline.TrainingTable(t.Context(), true, false)

		require.NoError(t, err)
		assert.Equal(t, []string{"O1", "O2"}, table.OrderIDs())
		assert.False(t, table.IncludeDistance)
		assert.NotContains(t, table.Columns(), features.ColumnDistanceSellerCustomer)
		assert.Equal(t, features.BuildStats{
			Orders:            5,
			InvalidTimestamps: 1,
			DroppedRows:       1,
			Rows:              2,
		}, table.Stats)

		o2 := table.Rows[1]
		assert.InDelta(t, 14.0, o2.WaitTime, 1e-9)
		assert.InDelta(t, 5.0, o2.DelayVsExpected, 1e-9)
		assert.Equal(t, "delivered", o2.OrderStatus)
		assert.Equal(t, 1, o2.ReviewScore)
		assert.Equal(t, 1, o2.DimIsOneStar)
		assert.Equal(t, 3, o2.NumberOfItems)
		assert.Equal(t, 2, o2.NumberOfSellers)
		assert.InDelta(t, 35.0, o2.Price, 1e-9)
		assert.InDelta(t, 6.0, o2.FreightValue, 1e-9)
		assert.Nil(t, o2.DistanceSellerCustomer)
	})

	t.Run("all statuses drop incomplete rows", func(t *testing.T) {
		pipeline := newPipeline(t, nil)

		table, err := pipeline.TrainingTable(t.Context(), false, false)

		require.NoError(t, err)
		assert.Equal(t, []string{"O1", "O2"}, table.OrderIDs())
		assert.Equal(t, 2, table.Stats.DroppedRows)
	})

	t.Run("with distance", func(t *testing.T) {
		pipeline := newPipeline(t, nil)

		table, err := pipeline.TrainingTable(t.Context(), true, true)

		require.NoError(t, err)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, 2, table.Stats.IncompleteGeocodes)
		assert.Contains(t, table.Columns(), features.ColumnDistanceSellerCustomer)
		for _, r := range table.Rows {
			require.NotNil(t, r.DistanceSellerCustomer)
			assert.InDelta(t, oneDegreeKm, *r.DistanceSellerCustomer, 1e-6)
		}
	})

	t.Run("canceled context aborts", func(t *testing.T) {
		pipeline := newPipeline(t, nil)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := pipeline.TrainingTable(ctx, true, false)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestFeaturePipeline_TrainingTableRoundTrip(t *testing.T) {
	pipeline := newPipeline(t, nil)

	table, err := pipeline.TrainingTable(t.Context(), true, true)
	require.NoError(t, err)

	waits, _ := pipeline.WaitTime(true)
	reviews, _ := pipeline.ReviewScore()
	items, _ := pipeline.NumberOfItems()
	sellers, _ := pipeline.NumberOfSellers()
	money, _ := pipeline.PriceAndFreight()
	distances, _ := pipeline.DistanceSellerCustomer()

	ids := func(n int, id func(int) string) map[string]bool {
		set := make(map[string]bool, n)
		for i := range n {
			set[id(i)] = true
		}
		return set
	}
	sources := map[string]map[string]bool{
		"wait_time":         ids(len(waits), func(i int) string { return waits[i].OrderID }),
		"review_score":      ids(len(reviews), func(i int) string { return reviews[i].OrderID }),
		"number_of_items":   ids(len(items), func(i int) string { return items[i].OrderID }),
		"number_of_sellers": ids(len(sellers), func(i int) string { return sellers[i].OrderID }),
		"price_and_freight": ids(len(money), func(i int) string { return money[i].OrderID }),
		"distance":          ids(len(distances), func(i int) string { return distances[i].OrderID }),
	}

	for _, r := range table.Rows {
		for name, set := range sources {
			assert.True(t, set[r.OrderID], "%s missing from %s", r.OrderID, name)
		}
		assert.False(t, math.IsNaN(r.WaitTime))
		assert.False(t, r.OrderPurchaseTimestamp.IsZero())
		assert.NotEmpty(t, r.OrderStatus)
		assert.Positive(t, r.NumberOfItems)
	}
}

func TestFeaturePipeline_IsIdempotentAndLeavesSnapshotUntouched(t *testing.T) {
	pipeline := newPipeline(t, nil)
	before := fixtureTables(t)

	first, err := pipeline.TrainingTable(t.Context(), true, true)
	require.NoError(t, err)
	second, err := pipeline.TrainingTable(t.Context(), true, true)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	w1, _ := pipeline.WaitTime(false)
	w2, _ := pipeline.WaitTime(false)
	assert.Equal(t, w1, w2)

	assert.Equal(t, before.Orders, pipeline.Snapshot().Orders())
	assert.Equal(t, before.OrderItems, pipeline.Snapshot().OrderItems())
	assert.Equal(t, before.OrderReviews, pipeline.Snapshot().OrderReviews())
}
