package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmation is the job type string Asynq uses to route
	// order confirmation emails to their handler.
	TaskOrderConfirmation = "email:order_confirmation"
)

// OrderConfirmationPayload is the JSON payload for the order confirmation
// email task, serialized into redis alongside the task.
type OrderConfirmationPayload struct {
	To           string  `json:"to"`
	CustomerName string  `json:"customer_name"`
	OrderID      int64   `json:"order_id"`
	TotalPrice   float64 `json:"total_price"`
}

// NewOrderConfirmationTask constructs the Asynq task for an order
// confirmation email.
//
// Options:
//   - MaxRetry(3): retry up to 3 times on failure
//   - Queue("default"): standard priority
//   - Timeout(30s): abort the handler if the provider hangs
func NewOrderConfirmationTask(p OrderConfirmationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskOrderConfirmation,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
