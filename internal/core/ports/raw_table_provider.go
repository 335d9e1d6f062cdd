// Package ports defines the contracts between the order feature core and its
// infrastructure: where raw tables come from, where exported training tables
// are stored and published, and how pipeline activity is observed.
package ports

import (
	"context"

	"orderfeatures/internal/core/domain/model/dataset"
)

// RawTableProvider supplies the raw tables of the e-commerce data set.
type RawTableProvider interface {
	// Load returns a complete snapshot. A table or column that cannot be found
	// fails the whole load with a MissingTable or MissingColumn error.
	Load(ctx context.Context) (dataset.Snapshot, error)

	// Ping is a trivial liveness check and returns "pong".
	Ping() string
}
