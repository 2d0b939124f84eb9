package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/orderkit/orderkit/internal/config"
	"github.com/orderkit/orderkit/internal/lib/email"
)

// emailClient is shared by job handlers. InitHandlers must run before the
// worker server starts processing tasks.
var emailClient *email.Client

// InitHandlers initializes dependencies required by job handlers.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	emailClient = email.NewClient(cfg, logger)
}

// handleOrderConfirmationTask processes one order confirmation email task:
// decode the payload, send the email, and let Asynq retry on failure.
func (j *JobService) handleOrderConfirmationTask(ctx context.Context, t *asynq.Task) error {
	var p OrderConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal order confirmation payload: %w", err)
	}

	j.logger.Info().
		Str("type", "order_confirmation").
		Str("to", p.To).
		Int64("order_id", p.OrderID).
		Msg("processing order confirmation task")

	if err := emailClient.SendOrderConfirmation(p.To, p.CustomerName, p.OrderID, p.TotalPrice); err != nil {
		j.logger.Error().
			Str("type", "order_confirmation").
			Str("to", p.To).
			Int64("order_id", p.OrderID).
			Err(err).
			Msg("failed to send order confirmation")
		// Returning the error makes Asynq mark the task failed and retry.
		return err
	}

	j.logger.Info().
		Str("type", "order_confirmation").
		Str("to", p.To).
		Int64("order_id", p.OrderID).
		Msg("sent order confirmation")

	return nil
}
