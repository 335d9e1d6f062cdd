// Package jobs provides scheduled background tasks for the order feature service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ExportJob - rebuilds, stores and publishes the training table on a schedule
// 2. PruneJob - removes old export runs, keeping the newest N
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewExportJob(cfg.ExportSchedule, true, false, exportHandler, logger),
//		jobs.NewPruneJob(cfg.PruneSchedule, cfg.ExportKeepRuns, pruneHandler, logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field,
// e.g. "0 0 3 * * *" runs daily at 03:00. A run still in progress when the
// next tick fires makes that tick a no-op.
package jobs
