package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/wordkeep/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Words    *WordHandler
	Reviews  *ReviewHandler
	Settings *SettingsHandler
}

// NewRouter builds the HTTP surface. Health probes bypass the rate limit.
// A nil limiter disables throttling.
func NewRouter(logger *slog.Logger, h Handlers, limiter *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(middleware.RequestID, middleware.Logger(logger), middleware.Recovery(logger)))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		r.Route("/words", func(r chi.Router) {
			r.Post("/", h.Words.Add)
			r.Get("/", h.Words.List)
			r.Get("/check", h.Words.Check)
			r.Get("/{id}", h.Words.Get)
			r.Delete("/{id}", h.Words.Delete)
			r.Post("/{id}/enrich", h.Words.Enrich)
			r.Get("/{id}/events", h.Words.Events)
		})

		r.Get("/queue", h.Reviews.Queue)
		r.Post("/sessions", h.Reviews.StartSession)
		r.Get("/sessions/{id}", h.Reviews.GetSession)
		r.Post("/sessions/{id}/answers", h.Reviews.Answer)
		r.Post("/reviews", h.Reviews.Record)

		r.Get("/settings", h.Settings.Get)
		r.Patch("/settings", h.Settings.Update)
	})

	return r
}
