package router

import (
	"github.com/labstack/echo/v4"

	"github.com/orderkit/orderkit/internal/handler"
)

// registerSystemRoutes registers endpoints that are not business logic:
// health, docs UI, and the static assets backing the docs.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by load balancers and monitors).
	e.GET("/status", h.Health.CheckHealth)

	// Serve ./static at /static/* (openapi.json and friends).
	e.Static("/static", "static")

	// Docs UI endpoint.
	e.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
