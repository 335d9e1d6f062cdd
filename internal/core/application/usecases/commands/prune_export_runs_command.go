package commands

import (
	"errors"

	"orderfeatures/internal/pkg/errs"
	"orderfeatures/internal/pkg/guard"
)

var ErrPruneExportRunsCommandIsNotConstructed = errors.New(
	"PruneExportRunsCommand must be created via NewPruneExportRunsCommand constructor",
)

// PruneExportRunsCommand removes stored runs beyond the newest keep runs.
type PruneExportRunsCommand struct {
	keep int

	guard guard.ConstructorGuard
}

// NewPruneExportRunsCommand requires keep to be at least 1.
func NewPruneExportRunsCommand(keep int) (PruneExportRunsCommand, error) {
	if keep < 1 {
		return PruneExportRunsCommand{}, errs.NewValueIsOutOfRangeError("keep", keep, 1, "unbounded")
	}

	return PruneExportRunsCommand{keep: keep, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c PruneExportRunsCommand) Validate() error {
	return c.guard.Validate(ErrPruneExportRunsCommandIsNotConstructed)
}

func (c PruneExportRunsCommand) Keep() int {
	return c.keep
}
