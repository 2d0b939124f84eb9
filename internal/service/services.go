// Package service contains the business logic.
//
// It sits between the handler and infrastructure layers: it receives
// validated documents from handlers, performs business operations, and
// hands side effects (like confirmation emails) to the job queue.
package service

import (
	"github.com/orderkit/orderkit/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	Orders *OrdersService
}

// NewServices constructs the service container from the application
// container.
func NewServices(s *server.Server) (*Services, error) {
	return &Services{
		Orders: NewOrdersService(s),
	}, nil
}
