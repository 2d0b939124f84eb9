package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/orderkit/orderkit/internal/schema"
	"github.com/orderkit/orderkit/internal/server"
	"github.com/orderkit/orderkit/internal/service"
)

// OrdersHandler serves the order intake endpoint.
type OrdersHandler struct {
	Handler
	orders *service.OrdersService
}

// NewOrdersHandler constructs an OrdersHandler.
func NewOrdersHandler(s *server.Server, orders *service.OrdersService) *OrdersHandler {
	return &OrdersHandler{
		Handler: NewHandler(s),
		orders:  orders,
	}
}

// CreateOrder handles POST /orders. The pipeline has already validated
// the body against OrderSchema; the service layer accepts the order and
// schedules the confirmation email.
func (h *OrdersHandler) CreateOrder(c echo.Context, doc schema.Document) (any, error) {
	order, err := h.orders.Submit(c.Request().Context(), doc)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"message": fmt.Sprintf("Order %d received", order.ID),
		"order":   order.Document,
	}, nil
}
