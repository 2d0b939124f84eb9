package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderkit/orderkit/internal/handler"
)

// registerAPIRoutes maps the business endpoints to their handlers.
// POST bodies run through schema validation before the handler executes.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/", handler.HandlePlain(h.Items.Handler, h.Items.Root, http.StatusOK))

	e.POST("/items", handler.HandleSchema(h.Items.Handler, handler.ItemSchema, h.Items.CreateItem, http.StatusOK))
	e.GET("/items/:id", handler.HandlePlain(h.Items.Handler, h.Items.GetItem, http.StatusOK))

	e.POST("/orders", handler.HandleSchema(h.Orders.Handler, handler.OrderSchema, h.Orders.CreateOrder, http.StatusOK))
}
