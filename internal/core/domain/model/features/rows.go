package features

import "time"

// WaitTime is the delivery-time metric of one order, in fractional days.
//
// WaitTime is nil when the order has no delivery date, ExpectedWaitTime is nil
// when it has no estimate, and DelayVsExpected is nil unless both are known.
// DelayVsExpected is never negative. PurchaseTimestamp is nil when the purchase
// date is missing, which leaves every duration nil as well.
type WaitTime struct {
	OrderID           string
	WaitTime          *float64
	ExpectedWaitTime  *float64
	DelayVsExpected   *float64
	OrderStatus       string
	PurchaseTimestamp *time.Time
}

// IsComplete reports whether no field is missing.
func (w WaitTime) IsComplete() bool {
	return w.WaitTime != nil && w.ExpectedWaitTime != nil && w.DelayVsExpected != nil &&
		w.PurchaseTimestamp != nil && w.OrderStatus != ""
}

// ReviewScore carries the score of an order's review and its two sentiment flags.
// At most one flag is set.
type ReviewScore struct {
	OrderID       string
	ReviewScore   int
	DimIsFiveStar int
	DimIsOneStar  int
}

// ItemCount is the number of item rows of an order.
type ItemCount struct {
	OrderID       string
	NumberOfItems int
}

// SellerCount is the number of distinct sellers of an order.
type SellerCount struct {
	OrderID         string
	NumberOfSellers int
}

// PriceFreight holds the summed price and freight of an order's items.
type PriceFreight struct {
	OrderID      string
	Price        float64
	FreightValue float64
}

// Distance is the mean seller-to-customer great-circle distance of an order in km.
type Distance struct {
	OrderID                string
	DistanceSellerCustomer float64
}

// OrderFeatureRow is one complete row of the training table.
// DistanceSellerCustomer is nil unless the table was built with distances.
type OrderFeatureRow struct {
	OrderID                string
	WaitTime               float64
	ExpectedWaitTime       float64
	DelayVsExpected        float64
	OrderStatus            string
	OrderPurchaseTimestamp time.Time
	ReviewScore            int
	DimIsFiveStar          int
	DimIsOneStar           int
	NumberOfItems          int
	NumberOfSellers        int
	Price                  float64
	FreightValue           float64
	DistanceSellerCustomer *float64
}
