package web

import (
	"context"
	"net/http"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/keypad"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/session"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("web")

// Handler serves the keypad page for the sessions in its store.
type Handler struct {
	sessions *session.Store
}

func NewHandler(sessions *session.Store) *Handler {
	return &Handler{sessions: sessions}
}

// RegisterRoutes mounts the keypad page and its assets.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Post("/", h.Calculate)
	r.Post("/keypad", h.Press)
	r.Handle("/static/*", StaticHandler())
}

// Index handles GET / and shows the session's current display.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	_, m := h.sessions.Resolve(w, r)
	h.render(w, r, m.State())
}

// Calculate handles POST / with the num1, num2 and operator form fields.
// The outcome is shown and absorbed into the session so the keypad can
// continue from it.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	_, m := h.sessions.Resolve(w, r)

	if err := r.ParseForm(); err != nil {
		observability.LoggerWithTrace(ctx).Warn("unreadable form", zap.Error(err))
	}

	result, err := calculator.Compute(ctx,
		r.PostFormValue("num1"),
		r.PostFormValue("num2"),
		r.PostFormValue("operator"),
	)

	h.render(w, r, m.Absorb(result, err))
}

// Press handles POST /keypad: one button press, then back to the page.
func (h *Handler) Press(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	id, m := h.sessions.Resolve(w, r)

	key := r.PostFormValue("key")
	ev, err := keypad.ParseKey(key)
	if err != nil {
		logger.Warn("unknown keypad key",
			zap.String("key", key),
			zap.String("request_id", observability.RequestIDFromContext(ctx)),
		)
		http.Error(w, "unknown key", http.StatusBadRequest)
		return
	}

	ctx, span := tracer.Start(ctx, "keypad.press", trace.WithAttributes(
		attribute.String("keypad.key", ev.Key()),
		attribute.String("keypad.event", ev.Kind.String()),
		attribute.String("keypad.phase.before", m.State().Phase().String()),
	))
	defer span.End()

	s := m.PressWith(requestEvaluator(ctx), ev)

	keyCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", ev.Kind.String())))
	span.SetAttributes(
		attribute.String("keypad.phase.after", s.Phase().String()),
		attribute.Bool("keypad.failed", s.Failed),
	)
	span.SetStatus(codes.Ok, "")

	logger.Debug("keypad event applied",
		zap.String("session", id),
		zap.String("key", ev.Key()),
		zap.String("phase", s.Phase().String()),
		zap.String("display", s.Display),
	)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// requestEvaluator evaluates through calculator.Compute so keypad
// calculations are traced and logged under the request.
func requestEvaluator(ctx context.Context) keypad.Evaluator {
	return keypad.EvaluatorFunc(func(num1, num2 string, op calculator.Operator) (float64, error) {
		return calculator.Compute(ctx, num1, num2, op.Symbol())
	})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, s keypad.State) {
	if err := renderPage(w, s); err != nil {
		ctx := r.Context()
		renderErrors.Add(ctx, 1)
		observability.LoggerWithTrace(ctx).Error("rendering keypad page",
			zap.Error(err),
			zap.String("request_id", observability.RequestIDFromContext(ctx)),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
