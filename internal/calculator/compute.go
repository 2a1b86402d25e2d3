package calculator

import (
	"context"
	"fmt"
	"time"

	"go-chi-calculator/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Compute runs a raw form submission through Submit inside a child span,
// recording metrics and logs for it. Failures are recorded once here;
// callers only need to turn the error into a display message.
func Compute(ctx context.Context, num1, num2, operator string) (float64, error) {
	opName := "unknown"
	if op, err := ParseOperator(operator); err == nil {
		opName = op.Name()
	}

	return observe(ctx, opName, func() (float64, error) {
		return Submit(num1, num2, operator)
	},
		attribute.String("calculator.input.num1", num1),
		attribute.String("calculator.input.num2", num2),
		attribute.String("calculator.input.operator", operator),
	)
}

// ComputeOp evaluates already-parsed operands inside a child span.
func ComputeOp(ctx context.Context, a, b float64, op Operator) (float64, error) {
	return observe(ctx, op.Name(), func() (float64, error) {
		return Evaluate(a, b, op)
	},
		attribute.Float64("calculator.operand.a", a),
		attribute.Float64("calculator.operand.b", b),
	)
}

func observe(ctx context.Context, opName string, compute func() (float64, error), attrs ...attribute.KeyValue) (float64, error) {
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	start := time.Now()
	result, err := compute()
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, Classify(err).String(), err)
		return 0, err
	}

	attrSet := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrSet)
	opsHistogram.Record(ctx, elapsed, attrSet)
	resultGauge.Record(ctx, result, attrSet)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculation completed",
		zap.String("operation", opName),
		zap.Float64("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	return result, nil
}
