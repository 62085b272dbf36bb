// Package server wires configuration, middleware and handlers into the HTTP
// surface and owns the process lifecycle.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/lfposadac/backclashflow/internal/config"
	"github.com/lfposadac/backclashflow/internal/metrics"
	"github.com/lfposadac/backclashflow/internal/notification"
	"github.com/lfposadac/backclashflow/middlewares"
	"github.com/lfposadac/backclashflow/pkg/health"
	"github.com/lfposadac/backclashflow/pkg/logger"
)

// RequestIDExtractor surfaces the chi request ID as a log attribute.
func RequestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := chimiddleware.GetReqID(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

// NewRouter builds the full HTTP surface: health and metrics are open, the
// notification endpoint sits behind the API key gate.
func NewRouter(cfg *config.Config, svc *notification.Service, log *slog.Logger) http.Handler {
	if log == nil {
		log = logger.NewNope()
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(requestLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.CORS(middlewares.WithAllowOrigins(cfg.AllowedOrigins...)))

	r.Get("/health", health.LivenessHandler())
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Use(middlewares.APIKey(cfg.APIKey))
		notification.NewHandler(svc).Routes(api)
	})

	return r
}

// requestLogger logs each request with its status and duration.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.String("duration", time.Since(start).String()),
			)
		})
	}
}
