package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
)

const outcomeOK = "ok"

// operations counts service calls by op and outcome kind.
var operations = newOperationsCounter()

func newOperationsCounter() metric.Int64Counter {
	c, err := otel.Meter("github.com/SamWeninger/shopping-assistant/services/shoppinglist").Int64Counter(
		"shoppinglist.operations",
		metric.WithDescription("Shopping list service operations by outcome"),
	)
	if err != nil {
		c, _ = noop.NewMeterProvider().Meter("").Int64Counter("shoppinglist.operations")
	}
	return c
}

func record(ctx context.Context, op string, err error) {
	outcome := outcomeOK
	if err != nil {
		outcome = domain.Kind(err)
	}
	operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("outcome", outcome),
	))
}
