package queries

import (
	"errors"

	"orderfeatures/internal/pkg/errs"
	"orderfeatures/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetExportRunQueryIsNotConstructed = errors.New(
	"GetExportRunQuery must be created via NewGetExportRunQuery constructor",
)

// GetExportRunQuery requests one stored export run with its rows.
type GetExportRunQuery struct {
	runID uuid.UUID

	guard guard.ConstructorGuard
}

func NewGetExportRunQuery(runID uuid.UUID) (GetExportRunQuery, error) {
	if runID == uuid.Nil {
		return GetExportRunQuery{}, errs.NewValueIsRequiredError("runID")
	}

	return GetExportRunQuery{
		runID: runID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetExportRunQuery) Validate() error {
	return q.guard.Validate(ErrGetExportRunQueryIsNotConstructed)
}

func (q GetExportRunQuery) RunID() uuid.UUID {
	return q.runID
}
