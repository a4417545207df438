package service

import (
	"context"
	"errors"
	"fmt"

	perrors "github.com/abgdnv/bakery-inventory/internal/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "inventory-service"

const (
	outcomeOK               = "ok"
	outcomeNotFound         = "not_found"
	outcomeInvalidOperation = "invalid_operation"
	outcomeError            = "error"
)

type metrics struct {
	operations metric.Int64Counter
	stockMoved metric.Int64Counter
}

// newMetrics creates the service instruments. productCount is observed on every collection.
func newMetrics(mp metric.MeterProvider, productCount func() int) (*metrics, error) {
	meter := mp.Meter(meterName)
	operations, err := meter.Int64Counter("inventory_operations",
		metric.WithDescription("Inventory operations by operation and outcome"))
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory_operations counter: %w", err)
	}
	stockMoved, err := meter.Int64Counter("inventory_stock_moved",
		metric.WithDescription("Units of stock added or offloaded"),
		metric.WithUnit("{unit}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory_stock_moved counter: %w", err)
	}
	_, err = meter.Int64ObservableGauge("inventory_products",
		metric.WithDescription("Number of products currently stored"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(int64(productCount()))
			return nil
		}))
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory_products gauge: %w", err)
	}
	return &metrics{operations: operations, stockMoved: stockMoved}, nil
}

func (m *metrics) record(ctx context.Context, operation string, err error) {
	m.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome(err)),
	))
}

func (m *metrics) moved(ctx context.Context, direction string, amount uint32) {
	m.stockMoved.Add(ctx, int64(amount), metric.WithAttributes(attribute.String("direction", direction)))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, perrors.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, perrors.ErrInvalidOperation):
		return outcomeInvalidOperation
	default:
		return outcomeError
	}
}
