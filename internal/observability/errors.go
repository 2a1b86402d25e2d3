package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RecordError centralises failure bookkeeping across all domains: records the
// error on the span, increments the provided error counter (tagged with the
// operation and error kind) and logs with trace context. Writing the response
// is left to the caller, which decides what the user gets to see.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName, kind string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, kind)

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.String("kind", kind),
	))

	logger.Error("calculation failed",
		zap.String("operation", opName),
		zap.String("kind", kind),
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	)
}
