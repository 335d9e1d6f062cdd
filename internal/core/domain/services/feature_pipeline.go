package services

import (
	"cmp"
	"log/slog"
	"slices"

	"orderfeatures/internal/core/domain/model/dataset"
)

// FeaturePipeline derives the order feature tables from one raw table snapshot.
//
// Operations:
//   - WaitTime: delivery durations in days, delivered orders only by default
//   - ReviewScore: review score with five-star and one-star flags
//   - NumberOfItems and NumberOfSellers: basket size per order
//   - PriceAndFreight: summed item price and freight per order
//   - DistanceSellerCustomer: mean seller-customer haversine distance per order
//   - TrainingTable: inner join of the metrics on order id, without missing values
//
// Example usage:
//
//	snapshot, err := provider.Load(ctx)
//	if err != nil {
//	    return err
//	}
//	pipeline, err := services.NewFeaturePipeline(snapshot, logger)
//	if err != nil {
//	    return err
//	}
//	table, err := pipeline.TrainingTable(ctx, true, false)
//	if err != nil {
//	    return fmt.Errorf("cannot build training table: %w", err)
//	}
//	fmt.Printf("%d rows, %d dropped\n", len(table.Rows), table.Stats.DroppedRows)
type FeaturePipeline struct {
	snapshot dataset.Snapshot
	logger   *slog.Logger
}

// NewFeaturePipeline binds a pipeline to a snapshot built by dataset.NewSnapshot.
// A nil logger falls back to slog.Default.
func NewFeaturePipeline(snapshot dataset.Snapshot, logger *slog.Logger) (*FeaturePipeline, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &FeaturePipeline{
		snapshot: snapshot,
		logger:   logger.With("component", "FeaturePipeline"),
	}, nil
}

// Snapshot returns the raw tables the pipeline reads from.
func (p *FeaturePipeline) Snapshot() dataset.Snapshot {
	return p.snapshot
}

// sortedKeys returns the map keys in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, cmp.Compare[string])
	return keys
}
