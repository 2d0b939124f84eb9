// Package logger configures the application's logging and observability.
//
// It uses zerolog for structured logging and integrates with New Relic:
// when a license key is configured, logs are forwarded to New Relic and
// request loggers carry trace/span ids for correlation. Without a key,
// everything degrades to plain zerolog with zero overhead.
package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/orderkit/orderkit/internal/config"
)

// LoggerService owns the New Relic application instance.
//
// The instance is nil when New Relic is not configured; callers must
// treat GetApplication() == nil as "observability disabled".
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService initializes New Relic from config.
//
// With an empty license key it returns a service holding no application,
// which every consumer treats as a no-op.
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	nr := cfg.Observability.NewRelic
	if nr.LicenseKey == "" {
		return &LoggerService{}, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(nr.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(nr.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(nr.AppLogForwardingEnabled),
	}
	if nr.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize New Relic: %w", err)
	}

	return &LoggerService{nrApp: app}, nil
}

// GetApplication returns the New Relic application, or nil when New Relic
// is not configured.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.nrApp
}

// Shutdown flushes pending telemetry. Safe to call when New Relic is
// not configured.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s != nil && s.nrApp != nil {
		s.nrApp.Shutdown(timeout)
	}
}

// New builds the application logger from config.
//
//   - format "console": human-friendly output for local development
//   - format "json": machine-readable output; when New Relic is active,
//     log lines are also forwarded through the zerologWriter integration
//
// The returned logger already carries service and environment fields.
func New(cfg *config.Config, service *LoggerService) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	switch {
	case cfg.Observability.Logging.Format == "console":
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})

	case service.GetApplication() != nil:
		// zerologWriter decorates each log line with linking metadata and
		// forwards it to New Relic while still writing to stdout.
		writer := zerologWriter.New(os.Stdout, service.GetApplication())
		logger = zerolog.New(writer)

	default:
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()
}

// WithTraceContext returns a child logger carrying the transaction's
// trace and span ids, so log lines can be joined with distributed traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	md := txn.GetTraceMetadata()
	builder := logger.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}
