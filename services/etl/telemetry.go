package etl

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("services/etl")

var meter = otel.Meter("services/etl")
var rowsCounter, _ = meter.Int64Counter(
	"etl.rows",
	metric.WithDescription("rows handled per stage"),
)

func recordRows(ctx context.Context, stage string, n int) {
	rowsCounter.Add(ctx, int64(n), metric.WithAttributes(attribute.String("stage", stage)))
}
