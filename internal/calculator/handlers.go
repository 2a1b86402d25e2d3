package calculator

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Operate handles POST /calculator/{operation}. The operation name selects
// the operator; the body carries both operands as JSON numbers.
func Operate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "operation")

	op, err := OperatorByName(name)
	if err != nil {
		rejectRequest(w, r, name, err)
		return
	}

	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rejectRequest(w, r, name, fmt.Errorf("decode body: %v: %w", err, ErrInvalidInput))
		return
	}
	if req.A == nil || req.B == nil {
		rejectRequest(w, r, name, fmt.Errorf("operands a and b are required: %w", ErrInvalidInput))
		return
	}
	a, b := *req.A, *req.B
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		rejectRequest(w, r, name, fmt.Errorf("a=%g b=%g: %w", a, b, ErrInvalidInput))
		return
	}

	result, err := ComputeOp(ctx, a, b, op)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, Message(err))
		return
	}

	handlers.WriteJSON(w, http.StatusOK, CalcResponse{
		Operation: op.Name(),
		A:         a,
		B:         b,
		Result:    result,
		Display:   FormatResult(result),
	})
}

// rejectRequest handles failures that happen before evaluation starts, so
// they are counted and logged like evaluator failures.
func rejectRequest(w http.ResponseWriter, r *http.Request, opName string, err error) {
	ctx := r.Context()
	kind := Classify(err)

	errorCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.String("kind", kind.String()),
	))
	observability.LoggerWithTrace(ctx).Warn("calculation rejected",
		zap.String("operation", opName),
		zap.String("kind", kind.String()),
		zap.Error(err),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	status := http.StatusBadRequest
	if kind == KindInvalidOperator {
		status = http.StatusNotFound
	}
	handlers.WriteError(w, status, kind.Message())
}
