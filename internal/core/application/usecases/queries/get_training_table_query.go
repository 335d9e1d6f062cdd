// Package queries contains read operations over the order feature tables.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries never persist anything: every call derives its result from the
// current raw table snapshot.
package queries

import (
	"errors"

	"orderfeatures/internal/pkg/guard"
)

var ErrGetTrainingTableQueryIsNotConstructed = errors.New(
	"GetTrainingTableQuery must be created via NewGetTrainingTableQuery constructor",
)

// GetTrainingTableQuery requests the assembled training table.
//
// Example:
//
//	query := NewGetTrainingTableQuery(true, false)
//	handler := NewGetTrainingTableQueryHandler(builder)
//
//	table, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("cannot build training table: %w", err)
//	}
//	fmt.Printf("%d rows\n", len(table.Rows))
type GetTrainingTableQuery struct {
	deliveredOnly   bool
	includeDistance bool

	guard guard.ConstructorGuard
}

// NewGetTrainingTableQuery creates a training table query. deliveredOnly keeps
// delivered orders only; includeDistance adds the seller-customer distance.
func NewGetTrainingTableQuery(deliveredOnly, includeDistance bool) GetTrainingTableQuery {
	return GetTrainingTableQuery{
		deliveredOnly:   deliveredOnly,
		includeDistance: includeDistance,
		guard:           guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetTrainingTableQuery) Validate() error {
	return q.guard.Validate(ErrGetTrainingTableQueryIsNotConstructed)
}

func (q GetTrainingTableQuery) DeliveredOnly() bool {
	return q.deliveredOnly
}

func (q GetTrainingTableQuery) IncludeDistance() bool {
	return q.includeDistance
}
