package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/orderkit/orderkit/internal/middleware"
	"github.com/orderkit/orderkit/internal/schema"
	"github.com/orderkit/orderkit/internal/server"
	"github.com/orderkit/orderkit/internal/validation"
)

// Handler is the base handler type holding shared application
// dependencies. Concrete handlers embed it to reach config, logger,
// redis, and the job service through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returning the struct by value is
// fine: it only contains a pointer, so copies share the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// SchemaHandlerFunc is an endpoint that receives the request body already
// validated against its declared schema.
type SchemaHandlerFunc func(c echo.Context, doc schema.Document) (any, error)

// PlainHandlerFunc is an endpoint with no request body to validate.
type PlainHandlerFunc func(c echo.Context) (any, error)

// HandleSchema wraps an endpoint with body validation, structured
// logging, tracing, and timing. The request body is decoded and validated
// against s before fn runs; validation failures short-circuit into the
// global error handler with the full field error list.
func HandleSchema(h Handler, s *schema.RecordSchema, fn SchemaHandlerFunc, status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, status, s, fn)
	}
}

// HandlePlain wraps a body-less endpoint with the same logging, tracing,
// and timing pipeline.
func HandlePlain(h Handler, fn PlainHandlerFunc, status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, status, nil, func(c echo.Context, _ schema.Document) (any, error) {
			return fn(c)
		})
	}
}

// handleRequest is the shared execution pipeline for all endpoints. It
// centralizes request validation, structured logging with request
// context, New Relic attributes and error reporting, phase timing, and
// response writing.
func handleRequest(c echo.Context, status int, s *schema.RecordSchema, fn SchemaHandlerFunc) error {
	start := time.Now()
	method := c.Request().Method
	route := c.Path()

	// The transaction is set by the New Relic echo middleware; nil when
	// New Relic is disabled.
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("method", method).
		Str("route", route).
		Logger()

	logger.Info().Msg("handling request")

	var doc schema.Document

	if s != nil {
		validationStart := time.Now()

		validated, err := validation.BindAndValidate(c, s)
		validationDuration := time.Since(validationStart)

		if err != nil {
			logger.Error().
				Err(err).
				Str("schema", s.Name).
				Dur("validation_duration", validationDuration).
				Msg("request validation failed")

			if txn != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
				txn.AddAttribute("validation.status", "failed")
				txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
			}

			// The global error handler formats the response.
			return err
		}

		if txn != nil {
			txn.AddAttribute("validation.status", "success")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		logger.Debug().
			Str("schema", s.Name).
			Dur("validation_duration", validationDuration).
			Msg("request validation successful")

		doc = validated
	}

	handlerStart := time.Now()
	result, err := fn(c, doc)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return c.JSON(status, result)
}
