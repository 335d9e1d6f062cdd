package jobs

import (
	"context"
	"log/slog"

	"orderfeatures/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type pruneHandler interface {
	Handle(ctx context.Context, cmd commands.PruneExportRunsCommand) (int64, error)
}

// PruneJob periodically deletes old export runs.
type PruneJob struct {
	schedule string
	keep     int
	handler  pruneHandler
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPruneJob creates a job keeping the newest keep runs.
func NewPruneJob(schedule string, keep int, handler pruneHandler, logger *slog.Logger) *PruneJob {
	return &PruneJob{
		schedule: schedule,
		keep:     keep,
		handler:  handler,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "prune_job"),
	}
}

func (j *PruneJob) Name() string { return "prune" }

func (j *PruneJob) Run() {
	ctx := context.Background()

	cmd, err := commands.NewPruneExportRunsCommand(j.keep)
	if err != nil {
		j.logger.ErrorContext(ctx, "Prune job misconfigured", "error", err)
		return
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Prune job failed", "error", err)
		return
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Prune job removed export runs", "removed", removed)
	}
}

func (j *PruneJob) Start() error {
	if _, err := j.cron.AddJob(j.schedule, j); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Prune job started", "schedule", j.schedule, "keep", j.keep)
	return nil
}

func (j *PruneJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Prune job stopped")
}
