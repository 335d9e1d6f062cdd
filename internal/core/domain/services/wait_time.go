package services

import (
	"errors"

	"orderfeatures/internal/core/domain/model/features"
	"orderfeatures/internal/core/domain/model/order"
	"orderfeatures/internal/pkg/errs"
)

// WaitTime computes the delivery-time metric, one row per order in table order.
//
// With deliveredOnly set, orders whose status is not delivered are skipped.
// Otherwise every order is returned and durations that cannot be computed stay nil.
// Orders with an unparsable timestamp are logged and skipped.
func (p *FeaturePipeline) WaitTime(deliveredOnly bool) ([]features.WaitTime, error) {
	rows, _, err := p.waitTime(deliveredOnly)
	return rows, err
}

func (p *FeaturePipeline) waitTime(deliveredOnly bool) ([]features.WaitTime, int, error) {
	orders := p.snapshot.Orders()
	rows := make([]features.WaitTime, 0, len(orders))
	invalid := 0

	for _, o := range orders {
		if deliveredOnly && !o.Status.IsDelivered() {
			continue
		}

		row, err := waitTimeOf(o)
		if errors.Is(err, errs.ErrInvalidTimestamp) {
			invalid++
			p.logger.Warn("skipping order with invalid timestamp",
				"order_id", o.ID,
				"error", err,
			)
			continue
		}
		if err != nil {
			return nil, 0, err
		}

		rows = append(rows, row)
	}

	return rows, invalid, nil
}

func waitTimeOf(o order.Order) (features.WaitTime, error) {
	purchase, hasPurchase, purchaseErr := order.ParseTimestamp(order.ColumnPurchaseTimestamp, o.PurchaseTimestamp)
	delivered, hasDelivered, deliveredErr := order.ParseTimestamp(order.ColumnDeliveredCustomer, o.DeliveredCustomerAt)
	estimated, hasEstimated, estimatedErr := order.ParseTimestamp(order.ColumnEstimatedDelivery, o.EstimatedDeliveryAt)
	if err := errors.Join(purchaseErr, deliveredErr, estimatedErr); err != nil {
		return features.WaitTime{}, err
	}

	row := features.WaitTime{
		OrderID:     o.ID,
		OrderStatus: o.RawStatus,
	}
	if !hasPurchase {
		return row, nil
	}
	row.PurchaseTimestamp = &purchase

	if hasDelivered {
		wait := order.Days(delivered.Sub(purchase))
		row.WaitTime = &wait
	}

	if hasEstimated {
		expected := order.Days(estimated.Sub(purchase))
		row.ExpectedWaitTime = &expected
	}

	if row.WaitTime != nil && row.ExpectedWaitTime != nil {
		delay := max(*row.WaitTime-*row.ExpectedWaitTime, 0)
		row.DelayVsExpected = &delay
	}

	return row, nil
}
