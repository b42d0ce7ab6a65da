package usecases

import (
	"context"
	"errors"

	"github.com/cleitonmarx/symbiont-uow/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter            = otel.Meter("usecases")
	StockAdjustments metric.Int64Counter
	StockUnitsMoved  metric.Int64Counter
)

func init() {
	var err error
	// Stock adjustment attempts by outcome
	StockAdjustments, err = meter.Int64Counter(
		"catalog_stock_adjustments_total",
		metric.WithDescription("Total stock adjustment attempts"),
	)
	if err != nil {
		panic(err)
	}

	// Units added to or removed from stock
	StockUnitsMoved, err = meter.Int64Counter(
		"catalog_stock_units_total",
		metric.WithDescription("Total stock units moved by adjustments"),
	)
	if err != nil {
		panic(err)
	}
}

// recordStockAdjustment records the outcome of one AdjustStock call.
func recordStockAdjustment(ctx context.Context, delta int64, err error) {
	var conflict *domain.ConcurrencyConflictErr
	result := "ok"
	if errors.As(err, &conflict) {
		result = "conflict"
	} else if err != nil {
		result = "error"
	}
	StockAdjustments.Add(ctx, 1, metric.WithAttributes(
		attribute.String("result", result),
	))
	if err != nil {
		return
	}

	direction, units := "in", delta
	if delta < 0 {
		direction, units = "out", -delta
	}
	StockUnitsMoved.Add(ctx, units, metric.WithAttributes(
		attribute.String("direction", direction),
	))
}
