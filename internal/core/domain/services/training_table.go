package services

import (
	"context"

	"orderfeatures/internal/core/domain/model/features"

	"golang.org/x/sync/errgroup"
)

// partialRow is a training row under assembly. The delivery-time fields stay in
// wait until the final completeness check.
type partialRow struct {
	wait features.WaitTime
	row  features.OrderFeatureRow
}

// joinStep enriches a row from one metric table and reports whether the order
// was found there.
type joinStep func(*partialRow) bool

// TrainingTable assembles the training table.
//
// The metric nodes are independent and run concurrently on the shared snapshot.
// Their outputs are then inner-joined on order id onto the delivery-time rows,
// in the order review score, item count, seller count, price and freight, and,
// when includeDistance is set, distance. Rows with a missing value are dropped.
// The first failing node aborts the assembly.
func (p *FeaturePipeline) TrainingTable(
	ctx context.Context,
	deliveredOnly bool,
	includeDistance bool,
) (features.TrainingTable, error) {
	var (
		waits      []features.WaitTime
		invalid    int
		reviews    []features.ReviewScore
		items      []features.ItemCount
		sellers    []features.SellerCount
		money      []features.PriceFreight
		distances  []features.Distance
		incomplete int
	)

	g, gctx := errgroup.WithContext(ctx)
	node := func(compute func() error) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return compute()
		})
	}

	node(func() (err error) {
		waits, invalid, err = p.waitTime(deliveredOnly)
		return err
	})
	node(func() (err error) {
		reviews, err = p.ReviewScore()
		return err
	})
	node(func() (err error) {
		items, err = p.NumberOfItems()
		return err
	})
	node(func() (err error) {
		sellers, err = p.NumberOfSellers()
		return err
	})
	node(func() (err error) {
		money, err = p.PriceAndFreight()
		return err
	})
	if includeDistance {
		node(func() (err error) {
			distances, incomplete, err = p.distance()
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return features.TrainingTable{}, err
	}

	steps := []joinStep{
		joinReviews(reviews),
		joinItems(items),
		joinSellers(sellers),
		joinPriceFreight(money),
	}
	if includeDistance {
		steps = append(steps, joinDistances(distances))
	}

	partial := make([]partialRow, 0, len(waits))
	for _, w := range waits {
		partial = append(partial, partialRow{
			wait: w,
			row:  features.OrderFeatureRow{OrderID: w.OrderID, OrderStatus: w.OrderStatus},
		})
	}
	for _, step := range steps {
		partial = innerJoin(partial, step)
	}

	rows := make([]features.OrderFeatureRow, 0, len(partial))
	for _, pr := range partial {
		if !pr.wait.IsComplete() {
			continue
		}
		r := pr.row
		r.WaitTime = *pr.wait.WaitTime
		r.ExpectedWaitTime = *pr.wait.ExpectedWaitTime
		r.DelayVsExpected = *pr.wait.DelayVsExpected
		r.OrderPurchaseTimestamp = *pr.wait.PurchaseTimestamp
		rows = append(rows, r)
	}

	table := features.TrainingTable{
		Rows:            rows,
		IncludeDistance: includeDistance,
		Stats: features.BuildStats{
			Orders:             len(p.snapshot.Orders()),
			InvalidTimestamps:  invalid,
			IncompleteGeocodes: incomplete,
			DroppedRows:        len(waits) - len(rows),
			Rows:               len(rows),
		},
	}

	p.logger.Info("training table assembled",
		"rows", table.Stats.Rows,
		"dropped", table.Stats.DroppedRows,
		"invalid_timestamps", table.Stats.InvalidTimestamps,
		"include_distance", includeDistance,
	)

	return table, nil
}

func innerJoin(rows []partialRow, step joinStep) []partialRow {
	out := make([]partialRow, 0, len(rows))
	for _, r := range rows {
		if step(&r) {
			out = append(out, r)
		}
	}
	return out
}

func indexByOrder[T any](rows []T, orderID func(T) string) map[string]T {
	index := make(map[string]T, len(rows))
	for _, r := range rows {
		index[orderID(r)] = r
	}
	return index
}

func joinReviews(reviews []features.ReviewScore) joinStep {
	index := indexByOrder(reviews, func(r features.ReviewScore) string { return r.OrderID })
	return func(pr *partialRow) bool {
		r, ok := index[pr.row.OrderID]
		if ok {
			pr.row.ReviewScore = r.ReviewScore
			pr.row.DimIsFiveStar = r.DimIsFiveStar
			pr.row.DimIsOneStar = r.DimIsOneStar
		}
		return ok
	}
}

func joinItems(items []features.ItemCount) joinStep {
	index := indexByOrder(items, func(r features.ItemCount) string { return r.OrderID })
	return func(pr *partialRow) bool {
		r, ok := index[pr.row.OrderID]
		if ok {
			pr.row.NumberOfItems = r.NumberOfItems
		}
		return ok
	}
}

func joinSellers(sellers []features.SellerCount) joinStep {
	index := indexByOrder(sellers, func(r features.SellerCount) string { return r.OrderID })
	return func(pr *partialRow) bool {
		r, ok := index[pr.row.OrderID]
		if ok {
			pr.row.NumberOfSellers = r.NumberOfSellers
		}
		return ok
	}
}

func joinPriceFreight(money []features.PriceFreight) joinStep {
	index := indexByOrder(money, func(r features.PriceFreight) string { return r.OrderID })
	return func(pr *partialRow) bool {
		r, ok := index[pr.row.OrderID]
		if ok {
			pr.row.Price = r.Price
			pr.row.FreightValue = r.FreightValue
		}
		return ok
	}
}

func joinDistances(distances []features.Distance) joinStep {
	index := indexByOrder(distances, func(r features.Distance) string { return r.OrderID })
	return func(pr *partialRow) bool {
		r, ok := index[pr.row.OrderID]
		if ok {
			km := r.DistanceSellerCustomer
			pr.row.DistanceSellerCustomer = &km
		}
		return ok
	}
}
