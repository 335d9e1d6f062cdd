package services

import "orderfeatures/internal/core/domain/model/features"

// PriceAndFreight sums item price and freight per order, sorted by order id.
// Amounts stay in source units; nothing is rounded.
func (p *FeaturePipeline) PriceAndFreight() ([]features.PriceFreight, error) {
	sums := make(map[string]features.PriceFreight)
	for _, item := range p.snapshot.OrderItems() {
		acc := sums[item.OrderID]
		acc.OrderID = item.OrderID
		acc.Price += item.Price
		acc.FreightValue += item.FreightValue
		sums[item.OrderID] = acc
	}

	rows := make([]features.PriceFreight, 0, len(sums))
	for _, id := range sortedKeys(sums) {
		rows = append(rows, sums[id])
	}

	return rows, nil
}
