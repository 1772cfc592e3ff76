package storage

import (
	"context"

	"github.com/bonitofshh/MCO1-STADVDB/internal/core/report"
)

// AggregateStore is the data-access capability the dashboard is built on.
// Implementations evaluate the predicate, group by the mode's key and return
// one row per group with the mode's metric columns. Row order is not
// significant; ranking happens in the caller.
//
// A store that cannot be reached returns an error wrapping
// report.ErrDataUnavailable.
type AggregateStore interface {
	QueryAggregates(ctx context.Context, p report.Predicate, mode report.Mode) ([]report.Row, error)
}

// Taxonomy lists the distinct tags used to populate the filter widgets.
type Taxonomy interface {
	ListCategories(ctx context.Context) ([]string, error)
	ListGenres(ctx context.Context) ([]string, error)
}

// Store is the full read surface of a backing database.
type Store interface {
	AggregateStore
	Taxonomy
	Ping(ctx context.Context) error
	Close() error
}
