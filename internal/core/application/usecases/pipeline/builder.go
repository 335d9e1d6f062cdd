// Package pipeline connects the raw table provider to the feature pipeline for
// the command and query handlers.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"orderfeatures/internal/core/domain/model/features"
	"orderfeatures/internal/core/domain/services"
	"orderfeatures/internal/core/ports"
)

// Builder loads a snapshot and runs the feature pipeline over it.
//
// Example:
//
//	builder := pipeline.NewBuilder(provider, metrics, logger)
//	table, err := builder.Build(ctx, true, false)
//	if err != nil {
//	    return fmt.Errorf("cannot build training table: %w", err)
//	}
type Builder struct {
	provider ports.RawTableProvider
	metrics  ports.PipelineMetrics
	logger   *slog.Logger
}

// NewBuilder creates a Builder. Metrics may be nil.
func NewBuilder(provider ports.RawTableProvider, metrics ports.PipelineMetrics, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		provider: provider,
		metrics:  metrics,
		logger:   logger,
	}
}

// Pipeline loads the current snapshot and binds a FeaturePipeline to it.
func (b *Builder) Pipeline(ctx context.Context) (*services.FeaturePipeline, error) {
	snapshot, err := b.provider.Load(ctx)
	if err != nil {
		return nil, err
	}

	return services.NewFeaturePipeline(snapshot, b.logger)
}

// Build assembles the training table and records the outcome.
func (b *Builder) Build(ctx context.Context, deliveredOnly, includeDistance bool) (features.TrainingTable, error) {
	start := time.Now()

	table, err := b.build(ctx, deliveredOnly, includeDistance)
	if b.metrics != nil {
		b.metrics.ObserveBuild(table.Stats, time.Since(start), err)
	}
	if err != nil {
		b.logger.Error("training table build failed", "error", err)
		return features.TrainingTable{}, err
	}

	return table, nil
}

func (b *Builder) build(ctx context.Context, deliveredOnly, includeDistance bool) (features.TrainingTable, error) {
	p, err := b.Pipeline(ctx)
	if err != nil {
		return features.TrainingTable{}, err
	}

	return p.TrainingTable(ctx, deliveredOnly, includeDistance)
}
