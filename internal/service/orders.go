package service

import (
	"context"

	"github.com/orderkit/orderkit/internal/lib/job"
	"github.com/orderkit/orderkit/internal/schema"
	"github.com/orderkit/orderkit/internal/server"
)

// Order is an accepted order: the validated document plus the fields the
// service layer pulled out of it.
type Order struct {
	ID       int64
	Customer string
	Email    string
	Total    float64
	Document schema.Document
}

// OrdersService accepts validated orders and schedules their
// confirmation emails.
type OrdersService struct {
	server *server.Server
}

// NewOrdersService constructs an OrdersService.
func NewOrdersService(s *server.Server) *OrdersService {
	return &OrdersService{server: s}
}

// Submit accepts a validated order document.
//
// The document has already passed schema validation, so the field
// extraction below cannot fail: validated values carry exactly the types
// their schema declares (int64, float64, string, Document).
//
// When the job queue is available, a confirmation email task is enqueued;
// enqueue failures are logged but never fail the order, since the order
// itself has been accepted.
func (s *OrdersService) Submit(ctx context.Context, doc schema.Document) (*Order, error) {
	customer := doc["customer"].(schema.Document)

	order := &Order{
		ID:       doc["order_id"].(int64),
		Customer: customer["name"].(string),
		Email:    customer["email"].(string),
		Total:    doc["total_price"].(float64),
		Document: doc,
	}

	s.server.Logger.Info().
		Int64("order_id", order.ID).
		Float64("total_price", order.Total).
		Int("items", len(doc["items"].([]any))).
		Msg("order accepted")

	if s.server.Job != nil {
		task, err := job.NewOrderConfirmationTask(job.OrderConfirmationPayload{
			To:           order.Email,
			CustomerName: order.Customer,
			OrderID:      order.ID,
			TotalPrice:   order.Total,
		})
		if err != nil {
			s.server.Logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to build confirmation task")
			return order, nil
		}

		if _, err := s.server.Job.Client.EnqueueContext(ctx, task); err != nil {
			s.server.Logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to enqueue confirmation task")
		}
	}

	return order, nil
}
