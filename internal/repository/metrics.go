package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cleitonmarx/symbiont-uow/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter          = otel.Meter("repository")
	CommitsTotal   metric.Int64Counter
	CommitDuration metric.Float64Histogram
)

func init() {
	var err error
	// Commits by outcome: ok, conflict or error
	CommitsTotal, err = meter.Int64Counter(
		"uow_commits_total",
		metric.WithDescription("Total unit of work commits"),
	)
	if err != nil {
		panic(err)
	}

	CommitDuration, err = meter.Float64Histogram(
		"uow_commit_duration_seconds",
		metric.WithDescription("Unit of work commit duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// recordCommit records the outcome and duration of one commit call.
func recordCommit(ctx context.Context, operation string, err error, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("result", commitResult(err)),
	)
	CommitsTotal.Add(ctx, 1, attrs)
	CommitDuration.Record(ctx, elapsed.Seconds(), attrs)
}

func commitResult(err error) string {
	var conflict *domain.ConcurrencyConflictErr
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &conflict):
		return "conflict"
	default:
		return "error"
	}
}
