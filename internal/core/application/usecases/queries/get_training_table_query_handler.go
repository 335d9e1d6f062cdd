package queries

import (
	"context"

	"orderfeatures/internal/core/domain/model/features"
	"orderfeatures/internal/core/domain/services"
)

// TrainingTableBuilder builds training tables and feature pipelines from the
// current raw table snapshot.
type TrainingTableBuilder interface {
	Build(ctx context.Context, deliveredOnly, includeDistance bool) (features.TrainingTable, error)
	Pipeline(ctx context.Context) (*services.FeaturePipeline, error)
}

// GetTrainingTableQueryHandler serves GetTrainingTableQuery.
type GetTrainingTableQueryHandler struct {
	builder TrainingTableBuilder
}

func NewGetTrainingTableQueryHandler(builder TrainingTableBuilder) GetTrainingTableQueryHandler {
	return GetTrainingTableQueryHandler{builder: builder}
}

// Handle builds the training table requested by the query.
func (h GetTrainingTableQueryHandler) Handle(
	ctx context.Context,
	query GetTrainingTableQuery,
) (features.TrainingTable, error) {
	if err := query.Validate(); err != nil {
		return features.TrainingTable{}, err
	}

	return h.builder.Build(ctx, query.DeliveredOnly(), query.IncludeDistance())
}
