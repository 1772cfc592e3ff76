package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bonitofshh/MCO1-STADVDB/internal/core/report"
	"github.com/sony/gobreaker/v2"
)

// BreakerSettings controls when the store circuit opens.
type BreakerSettings struct {
	MaxFailures uint32        // consecutive failures before opening
	OpenTimeout time.Duration // time spent open before a half-open probe
}

// Breaker wraps an AggregateStore in a circuit breaker. While the circuit is
// open, queries fail fast with report.ErrDataUnavailable instead of waiting
// on a dead database.
type Breaker struct {
	next AggregateStore
	cb   *gobreaker.CircuitBreaker[[]report.Row]
}

// NewBreaker decorates next with a circuit breaker.
func NewBreaker(next AggregateStore, settings BreakerSettings) *Breaker {
	if settings.MaxFailures == 0 {
		settings.MaxFailures = 5
	}
	if settings.OpenTimeout <= 0 {
		settings.OpenTimeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker[[]report.Row](gobreaker.Settings{
		Name:        "aggregate-store",
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.MaxFailures
		},
		// Caller mistakes must not trip the breaker.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, report.ErrInvalidArgument) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("[Breaker] State changed", "name", name, "from", from.String(), "to", to.String())
		},
	})

	return &Breaker{next: next, cb: cb}
}

// QueryAggregates forwards to the wrapped store through the breaker.
func (b *Breaker) QueryAggregates(ctx context.Context, p report.Predicate, mode report.Mode) ([]report.Row, error) {
	rows, err := b.cb.Execute(func() ([]report.Row, error) {
		return b.next.QueryAggregates(ctx, p, mode)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", report.ErrDataUnavailable, err)
	}
	return rows, err
}

// State returns the current breaker state for health reporting.
func (b *Breaker) State() string {
	return b.cb.State().String()
}
