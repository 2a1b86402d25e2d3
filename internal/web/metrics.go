package web

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	keyCounter   metric.Int64Counter
	renderErrors metric.Int64Counter
)

func init() {
	if err := InitMetrics(); err != nil {
		panic(err)
	}
}

// InitMetrics registers the keypad page instruments.
func InitMetrics() error {
	meter := otel.Meter("web")

	var err error

	keyCounter, err = meter.Int64Counter("keypad.events.total",
		metric.WithDescription("Keypad button presses, by event kind"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return fmt.Errorf("creating keypad event counter: %w", err)
	}

	renderErrors, err = meter.Int64Counter("keypad.render.errors.total",
		metric.WithDescription("Keypad page renders that failed"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating render error counter: %w", err)
	}

	return nil
}
