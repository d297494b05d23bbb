// Package logger configures the application's logging, monitoring, and
// observability.
//
// It uses zerolog for structured logging and optionally integrates with
// New Relic: when a license key is configured, application logs are
// forwarded and traces/metrics flow through the agent. Without a key every
// helper degrades into plain zerolog and nil application handles.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/sarhadcorp/catalog-api/internal/config"
)

// LoggerService wraps the optional New Relic application instance.
//
// It exists so the rest of the codebase can ask "is APM on?" through one
// nil-tolerant accessor instead of threading agent state everywhere.
type LoggerService struct {
	app *newrelic.Application
}

// NewLoggerService initializes the New Relic application if a license key
// is configured.
//
// Without a key it returns an empty service: GetApplication() yields nil
// and all instrumentation call sites skip themselves. Agent construction
// errors are logged and treated the same way; telemetry must never take
// the API down.
func NewLoggerService(cfg *config.Config, logger *zerolog.Logger) *LoggerService {
	nr := cfg.Observability.NewRelic
	if nr.LicenseKey == "" {
		logger.Debug().Msg("new relic license key not set, telemetry disabled")
		return &LoggerService{}
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(nr.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(nr.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(nr.DistributedTracingEnabled),
	}
	if nr.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize new relic, telemetry disabled")
		return &LoggerService{}
	}

	return &LoggerService{app: app}
}

// GetApplication returns the New Relic application instance, or nil when
// telemetry is disabled. Callers must nil-check.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.app
}

// New builds the application's main zerolog logger from config.
//
// Local/console format gets a human-friendly console writer; everything
// else emits JSON. When the New Relic application is present and log
// forwarding is enabled, the writer is wrapped so log lines carry trace
// context and ship to the agent.
func New(cfg *config.Config, loggerService *LoggerService) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" || cfg.Primary.Env == "local" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	if app := loggerService.GetApplication(); app != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled {
		out = zerologWriter.New(out, app)
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &logger
}

// WithTraceContext returns a child logger carrying the transaction's trace
// and span IDs so log lines can be correlated with distributed traces.
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

// NewPgxLogger builds the logger handed to the pgx tracelog adapter.
//
// SQL logging is console-formatted; it only runs in local env where a
// human is reading it.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps the application log level onto pgx tracelog
// verbosity so SQL logging follows the global setting.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
