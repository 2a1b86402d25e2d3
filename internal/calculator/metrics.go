package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "go-chi-calculator/calculator"

var (
	opsCounter   metric.Int64Counter
	opsHistogram metric.Float64Histogram
	errorCounter metric.Int64Counter
	resultGauge  metric.Float64Gauge
)

// Instruments bound to the global no-op meter follow the real provider once
// observability.InitMetrics installs it.
func init() {
	if err := InitMetrics(); err != nil {
		panic(err)
	}
}

// InitMetrics (re)creates the calculator instruments from the global meter
// provider.
func InitMetrics() error {
	meter := otel.Meter(meterName)

	var err error
	if opsCounter, err = meter.Int64Counter("calculator.operations.total",
		metric.WithDescription("Calculations that produced a result"),
		metric.WithUnit("{operation}"),
	); err != nil {
		return fmt.Errorf("calculator.operations.total: %w", err)
	}

	if opsHistogram, err = meter.Float64Histogram("calculator.operation.duration",
		metric.WithDescription("Time spent evaluating a calculation"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.05, 0.1, 0.5, 1, 5),
	); err != nil {
		return fmt.Errorf("calculator.operation.duration: %w", err)
	}

	if errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Calculations rejected, by operation and error kind"),
		metric.WithUnit("{error}"),
	); err != nil {
		return fmt.Errorf("calculator.errors.total: %w", err)
	}

	if resultGauge, err = meter.Float64Gauge("calculator.last_result",
		metric.WithDescription("Most recent successful result per operation"),
	); err != nil {
		return fmt.Errorf("calculator.last_result: %w", err)
	}

	return nil
}
