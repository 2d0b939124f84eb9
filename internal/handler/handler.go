// Package handler is the HTTP layer's entry point after the router.
//
// Handlers parse requests, validate input against declared schemas using
// the validation package, call the service layer, and shape responses.
package handler

import (
	"github.com/orderkit/orderkit/internal/server"
	"github.com/orderkit/orderkit/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Health  *HealthHandler  // service health endpoint
	OpenAPI *OpenAPIHandler // API documentation endpoints
	Items   *ItemsHandler   // item endpoints
	Orders  *OrdersHandler  // order intake endpoint
}

// NewHandlers constructs the handler container from the application
// container and the business layer.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Items:   NewItemsHandler(s),
		Orders:  NewOrdersHandler(s, services.Orders),
	}
}
