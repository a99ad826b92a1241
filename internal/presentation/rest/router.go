package rest

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/bibbank/creditrisk/pkg/auth"
)

// RouterConfig wires the HTTP surface.
type RouterConfig struct {
	Health     *HealthHandler
	Prediction *PredictionHandler
	Metrics    http.Handler     // served at /metrics when set
	JWT        *auth.JWTService // nil disables authentication
	Limiter    *rate.Limiter    // nil disables rate limiting
	Logger     *slog.Logger
}

// NewRouter builds the HTTP handler with its middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	cfg.Health.RegisterRoutes(mux)
	cfg.Prediction.RegisterRoutes(mux)
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics)
	}

	operational := []string{"/healthz", "/readyz", "/metrics"}
	middlewares := []func(http.Handler) http.Handler{LoggingMiddleware(cfg.Logger)}
	if cfg.Limiter != nil {
		middlewares = append(middlewares, RateLimitMiddleware(cfg.Limiter, operational...))
	}
	if cfg.JWT != nil {
		middlewares = append(middlewares, auth.HTTPMiddleware(cfg.JWT, auth.ScoringRoles, operational...))
	}

	return Chain(mux, middlewares...)
}
