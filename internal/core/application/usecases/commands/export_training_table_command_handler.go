package commands

import (
	"context"
	"log/slog"
	"time"

	"orderfeatures/internal/core/domain/model/features"
	"orderfeatures/internal/core/ports"

	"github.com/google/uuid"
)

// ExportTrainingTableCommandHandler builds the training table, persists it as a
// new run and then publishes it.
//
// The run is committed before it is published; a publishing failure is returned
// but leaves the stored run in place.
type ExportTrainingTableCommandHandler struct {
	builder    TrainingTableBuilder
	uowFactory ExportUoWFactory
	publisher  ports.TrainingTablePublisher
	metrics    ports.PipelineMetrics
	logger     *slog.Logger
	now        func() time.Time
}

// NewExportTrainingTableCommandHandler creates the export handler.
// publisher and metrics may be nil.
func NewExportTrainingTableCommandHandler(
	builder TrainingTableBuilder,
	uowFactory ExportUoWFactory,
	publisher ports.TrainingTablePublisher,
	metrics ports.PipelineMetrics,
	logger *slog.Logger,
) ExportTrainingTableCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return ExportTrainingTableCommandHandler{
		builder:    builder,
		uowFactory: uowFactory,
		publisher:  publisher,
		metrics:    metrics,
		logger:     logger.With("component", "ExportTrainingTableCommandHandler"),
		now:        time.Now,
	}
}

// Handle processes the export command and returns the new run id.
// When only publishing fails the id of the stored run is returned with the error.
func (h *ExportTrainingTableCommandHandler) Handle(ctx context.Context, cmd ExportTrainingTableCommand) (uuid.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return uuid.Nil, err
	}

	run, err := h.export(ctx, cmd)
	if h.metrics != nil {
		h.metrics.ObserveExport(len(run.Table.Rows), err)
	}
	if err != nil {
		return run.ID, err
	}

	h.logger.Info("training table exported",
		"run_id", run.ID.String(),
		"rows", len(run.Table.Rows),
	)
	return run.ID, nil
}

func (h *ExportTrainingTableCommandHandler) export(
	ctx context.Context,
	cmd ExportTrainingTableCommand,
) (features.ExportRun, error) {
	table, err := h.builder.Build(ctx, cmd.DeliveredOnly(), cmd.IncludeDistance())
	if err != nil {
		return features.ExportRun{}, err
	}

	run := features.NewExportRun(table, cmd.DeliveredOnly(), h.now())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return features.ExportRun{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.FeatureRowRepository().Add(ctx, run); err != nil {
		return features.ExportRun{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return features.ExportRun{}, err
	}

	if h.publisher != nil {
		if err = h.publisher.Publish(ctx, run); err != nil {
			h.logger.Error("publishing exported run failed", "run_id", run.ID.String(), "error", err)
			return run, err
		}
	}

	return run, nil
}
