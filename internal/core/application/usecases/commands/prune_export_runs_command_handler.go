package commands

import (
	"context"
	"log/slog"
)

// PruneExportRunsCommandHandler deletes old export runs in one transaction.
type PruneExportRunsCommandHandler struct {
	uowFactory ExportUoWFactory
	logger     *slog.Logger
}

func NewPruneExportRunsCommandHandler(uowFactory ExportUoWFactory, logger *slog.Logger) PruneExportRunsCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return PruneExportRunsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "PruneExportRunsCommandHandler"),
	}
}

// Handle returns the number of deleted runs.
func (h *PruneExportRunsCommandHandler) Handle(ctx context.Context, cmd PruneExportRunsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.FeatureRowRepository().Prune(ctx, cmd.Keep())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if deleted > 0 {
		h.logger.Info("pruned export runs", "deleted", deleted, "kept", cmd.Keep())
	}
	return deleted, nil
}
