package calculator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/testutil"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	observability.Logger = zap.NewNop()
	if err := InitMetrics(); err != nil {
		t.Fatalf("initializing calculator metrics: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r)
	return r
}

func TestOperateReturnsResult(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		operation string
		body      string
		want      float64
		display   string
	}{
		{operation: "add", body: `{"a":2,"b":3}`, want: 5, display: "5"},
		{operation: "subtract", body: `{"a":2,"b":3}`, want: -1, display: "-1"},
		{operation: "multiply", body: `{"a":2.5,"b":4}`, want: 10, display: "10"},
		{operation: "divide", body: `{"a":1,"b":8}`, want: 0.125, display: "0.125"},
		{operation: "add", body: `{"a":0,"b":0}`, want: 0, display: "0"},
	}

	for _, tc := range tests {
		t.Run(tc.operation, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/calculator/"+tc.operation, strings.NewReader(tc.body))
			w := testutil.ExecuteRequest(req, router)

			testutil.CheckResponseCode(t, http.StatusOK, w.Code)

			var resp CalcResponse
			testutil.DecodeJSONBody(t, w.Body, &resp)

			if resp.Operation != tc.operation {
				t.Fatalf("expected operation %q, got %q", tc.operation, resp.Operation)
			}
			if resp.Result != tc.want {
				t.Fatalf("expected result %g, got %g", tc.want, resp.Result)
			}
			if resp.Display != tc.display {
				t.Fatalf("expected display %q, got %q", tc.display, resp.Display)
			}
		})
	}
}

func TestOperateReturnsLiteralErrors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name      string
		operation string
		body      string
		status    int
		want      string
	}{
		{name: "division by zero", operation: "divide", body: `{"a":5,"b":0}`, status: http.StatusBadRequest, want: MsgDivisionByZero},
		{name: "unknown operation", operation: "modulo", body: `{"a":5,"b":2}`, status: http.StatusNotFound, want: MsgInvalidOperator},
		{name: "malformed body", operation: "add", body: `{"a":`, status: http.StatusBadRequest, want: MsgInvalidInput},
		{name: "missing operand", operation: "add", body: `{"a":1}`, status: http.StatusBadRequest, want: MsgInvalidInput},
		{name: "string operand", operation: "add", body: `{"a":"1","b":2}`, status: http.StatusBadRequest, want: MsgInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/calculator/"+tc.operation, strings.NewReader(tc.body))
			w := testutil.ExecuteRequest(req, router)

			testutil.CheckResponseCode(t, tc.status, w.Code)

			var body map[string]string
			testutil.DecodeJSONBody(t, w.Body, &body)

			if body["error"] != tc.want {
				t.Fatalf("expected error %q, got %q", tc.want, body["error"])
			}
		})
	}
}

func TestComputeLogsFailureKind(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	oldLogger := observability.Logger
	observability.Logger = zap.New(core)
	t.Cleanup(func() { observability.Logger = oldLogger })

	ctx := observability.ContextWithRequestID(t.Context(), "req-7")

	if _, err := Compute(ctx, "5", "0", "/"); err == nil {
		t.Fatal("expected division by zero error")
	}
	if got, err := Compute(ctx, "7", "8", "+"); err != nil || got != 15 {
		t.Fatalf("expected 15, got %g (%v)", got, err)
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}

	failed := entries[0].ContextMap()
	if entries[0].Message != "calculation failed" || failed["kind"] != "division_by_zero" || failed["operation"] != "divide" {
		t.Fatalf("unexpected failure entry %q %#v", entries[0].Message, failed)
	}
	if failed["request_id"] != "req-7" {
		t.Fatalf("expected request_id %q, got %#v", "req-7", failed["request_id"])
	}

	done := entries[1].ContextMap()
	if entries[1].Message != "calculation completed" || done["operation"] != "add" || done["result"] != float64(15) {
		t.Fatalf("unexpected completion entry %q %#v", entries[1].Message, done)
	}
}
