// Package fanout forwards an exported run to several publishers.
package fanout

import (
	"context"
	"errors"
	"log/slog"

	"orderfeatures/internal/core/domain/model/features"
	"orderfeatures/internal/core/ports"
)

// MultiPublisher publishes to every target in order. A failing target does not
// stop the others; all failures are returned joined.
type MultiPublisher struct {
	targets []ports.TrainingTablePublisher
	logger  *slog.Logger
}

func NewMultiPublisher(logger *slog.Logger, targets ...ports.TrainingTablePublisher) *MultiPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &MultiPublisher{
		targets: targets,
		logger:  logger.With("component", "MultiPublisher"),
	}
}

// Len returns the number of targets.
func (m *MultiPublisher) Len() int {
	return len(m.targets)
}

func (m *MultiPublisher) Publish(ctx context.Context, run features.ExportRun) error {
	var failures []error
	for _, target := range m.targets {
		if err := target.Publish(ctx, run); err != nil {
			m.logger.Warn("publish target failed", "run_id", run.ID.String(), "error", err)
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
