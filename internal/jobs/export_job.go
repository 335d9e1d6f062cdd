package jobs

import (
	"context"
	"log/slog"

	"orderfeatures/internal/core/application/usecases/commands"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

type exportHandler interface {
	Handle(ctx context.Context, cmd commands.ExportTrainingTableCommand) (uuid.UUID, error)
}

// ExportJob periodically exports the training table.
type ExportJob struct {
	schedule        string
	deliveredOnly   bool
	includeDistance bool
	handler         exportHandler
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewExportJob creates a new job exporting the training table on schedule.
func NewExportJob(
	schedule string,
	deliveredOnly, includeDistance bool,
	handler exportHandler,
	logger *slog.Logger,
) *ExportJob {
	return &ExportJob{
		schedule:        schedule,
		deliveredOnly:   deliveredOnly,
		includeDistance: includeDistance,
		handler:         handler,
		cron:            cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:          logger.With("component", "export_job"),
	}
}

func (j *ExportJob) Name() string { return "export" }

// Run performs one export. It is the cron.Job entry point.
func (j *ExportJob) Run() {
	ctx := context.Background()
	cmd := commands.NewExportTrainingTableCommand(j.deliveredOnly, j.includeDistance)

	runID, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Export job failed", "run_id", runID.String(), "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Export job finished", "run_id", runID.String())
}

// Start registers the job on its schedule and starts the scheduler.
func (j *ExportJob) Start() error {
	if _, err := j.cron.AddJob(j.schedule, j); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Export job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running export to finish.
func (j *ExportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Export job stopped")
}
