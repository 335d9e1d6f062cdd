package services

import "orderfeatures/internal/core/domain/model/features"

// NumberOfItems counts item rows per order, sorted by order id.
// Three units of the same product count as three items.
func (p *FeaturePipeline) NumberOfItems() ([]features.ItemCount, error) {
	counts := make(map[string]int)
	for _, item := range p.snapshot.OrderItems() {
		counts[item.OrderID]++
	}

	rows := make([]features.ItemCount, 0, len(counts))
	for _, id := range sortedKeys(counts) {
		rows = append(rows, features.ItemCount{OrderID: id, NumberOfItems: counts[id]})
	}

	return rows, nil
}

// NumberOfSellers counts distinct sellers per order, sorted by order id.
func (p *FeaturePipeline) NumberOfSellers() ([]features.SellerCount, error) {
	sellers := make(map[string]map[string]struct{})
	for _, item := range p.snapshot.OrderItems() {
		set, ok := sellers[item.OrderID]
		if !ok {
			set = make(map[string]struct{})
			sellers[item.OrderID] = set
		}
		set[item.SellerID] = struct{}{}
	}

	rows := make([]features.SellerCount, 0, len(sellers))
	for _, id := range sortedKeys(sellers) {
		rows = append(rows, features.SellerCount{OrderID: id, NumberOfSellers: len(sellers[id])})
	}

	return rows, nil
}
