// Package middleware contains the HTTP middleware stack: CORS, request
// logging, panic recovery, request IDs, request-scoped loggers, New Relic
// tracing, rate limiting, and the global error handler.
package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/orderkit/orderkit/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server,
// wired once with shared dependencies and reused during router setup.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip, optional trace metadata).
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware and helpers to attach custom
	// attributes and notice errors on transactions.
	Tracing *TracingMiddleware

	// RateLimit enforces the per-client fixed-window limit when redis is
	// available.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components from the
// application container. When New Relic is not configured, the tracing
// middleware degrades into a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
