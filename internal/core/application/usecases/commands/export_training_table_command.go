package commands

import (
	"errors"

	"orderfeatures/internal/pkg/guard"
)

var ErrExportTrainingTableCommandIsNotConstructed = errors.New(
	"ExportTrainingTableCommand must be created via NewExportTrainingTableCommand constructor",
)

// ExportTrainingTableCommand represents a request to build the training table,
// store it under a new run id and publish it.
//
// Example:
//
//	cmd := NewExportTrainingTableCommand(true, false)
//	handler := NewExportTrainingTableCommandHandler(builder, uowFactory, publisher, metrics, logger)
//
//	runID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("export failed: %w", err)
//	}
//	fmt.Printf("exported run %s", runID)
type ExportTrainingTableCommand struct {
	deliveredOnly   bool
	includeDistance bool

	guard guard.ConstructorGuard
}

// NewExportTrainingTableCommand creates an export command with the same flags
// as the training table query.
func NewExportTrainingTableCommand(deliveredOnly, includeDistance bool) ExportTrainingTableCommand {
	return ExportTrainingTableCommand{
		deliveredOnly:   deliveredOnly,
		includeDistance: includeDistance,
		guard:           guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrExportTrainingTableCommandIsNotConstructed if validation fails.
func (c ExportTrainingTableCommand) Validate() error {
	return c.guard.Validate(ErrExportTrainingTableCommandIsNotConstructed)
}

func (c ExportTrainingTableCommand) DeliveredOnly() bool {
	return c.deliveredOnly
}

func (c ExportTrainingTableCommand) IncludeDistance() bool {
	return c.includeDistance
}
