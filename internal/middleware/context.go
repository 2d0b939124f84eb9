package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/orderkit/orderkit/internal/logger"
	"github.com/orderkit/orderkit/internal/server"
)

// LoggerKey is the context key for the request-scoped logger.
const LoggerKey = "logger"

// nopLogger is returned by GetLogger when no request-scoped logger was
// set (e.g. handlers invoked directly in tests).
var nopLogger = zerolog.Nop()

// ContextEnhancer builds a request-scoped logger carrying correlation
// fields (request_id, method, path, ip, and trace/span ids when a New
// Relic transaction exists) and stores it in both echo's context and the
// request's context.Context.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a ContextEnhancer using the app container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns the echo middleware. It must run after the
// RequestID and tracing middleware so the correlation fields exist.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			c.Set(LoggerKey, &contextLogger)

			// Also store the logger in the Go request context so non-echo
			// code that only sees a context.Context can fetch it.
			ctx := context.WithValue(c.Request().Context(), LoggerKey, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger returns the request-scoped logger from echo's context, or a
// no-op logger when the enhancer has not run.
func GetLogger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return l
	}
	return &nopLogger
}
