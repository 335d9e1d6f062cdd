package services

import "orderfeatures/internal/core/domain/model/features"

// ReviewScore computes the review-sentiment metric, one row per reviewed order,
// sorted by order id. When an order has several reviews the first one is used.
func (p *FeaturePipeline) ReviewScore() ([]features.ReviewScore, error) {
	byOrder := make(map[string]features.ReviewScore)
	duplicates := 0

	for _, r := range p.snapshot.OrderReviews() {
		if _, seen := byOrder[r.OrderID]; seen {
			duplicates++
			continue
		}

		row := features.ReviewScore{OrderID: r.OrderID, ReviewScore: r.Score}
		if r.IsFiveStar() {
			row.DimIsFiveStar = 1
		}
		if r.IsOneStar() {
			row.DimIsOneStar = 1
		}
		byOrder[r.OrderID] = row
	}

	if duplicates > 0 {
		p.logger.Debug("ignored repeated reviews", "count", duplicates)
	}

	rows := make([]features.ReviewScore, 0, len(byOrder))
	for _, id := range sortedKeys(byOrder) {
		rows = append(rows, byOrder[id])
	}

	return rows, nil
}
