// Package router initializes the HTTP router (using echo).
//
// It registers the middleware stack and maps API routes to their
// handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/orderkit/orderkit/internal/handler"
	"github.com/orderkit/orderkit/internal/middleware"
)

// New builds the echo instance: global middleware in order, the global
// error handler, and all routes.
func New(m *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Middleware order matters: tracing starts the transaction, request
	// IDs must exist before the context enhancer builds the logger, and
	// the request logger reads what the enhancer stored.
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())
	e.Use(m.Global.CORS())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(middleware.RequestID())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())
	e.Use(m.RateLimit.Limit())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h)

	return e
}
