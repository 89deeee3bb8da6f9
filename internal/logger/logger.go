// Package logger configures the application's logging and
// observability.
//
// It uses zerolog for structured logging and optionally integrates
// with New Relic, forwarding logs and traces when a license key is
// configured.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/campwild/campwild/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the optional New Relic application instance.
// When New Relic is not configured, the service exists but holds a nil
// application and every consumer degrades to plain logging.
type LoggerService struct {
	app *newrelic.Application
}

// NewLoggerService initializes New Relic when a license key is
// configured. Without a key it returns a service with a nil
// application rather than an error, so callers can treat APM as
// strictly optional.
func NewLoggerService(cfg *config.ObservabilityConfig) (*LoggerService, error) {
	if cfg.NewRelic.LicenseKey == "" {
		return &LoggerService{}, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.ServiceName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(cfg.NewRelic.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.AppLogForwardingEnabled),
	}
	if cfg.NewRelic.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stderr))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, err
	}

	return &LoggerService{app: app}, nil
}

// GetApplication returns the New Relic application, or nil when APM is
// not configured.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.app
}

// New builds the application logger.
//
// Format "console" produces human-readable output for local work;
// anything else emits JSON. When New Relic log forwarding is active the
// JSON stream is wrapped so log lines are decorated with linking
// metadata and shipped to the agent.
func New(cfg *config.ObservabilityConfig, service *LoggerService) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else if app := service.GetApplication(); app != nil && cfg.NewRelic.AppLogForwardingEnabled {
		w := zerologWriter.New(os.Stdout, app)
		out = &w
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("env", cfg.Environment).
		Logger()
}

// WithTraceContext returns a child logger carrying the transaction's
// trace and span ids, so log lines can be correlated with traces.
func WithTraceContext(l zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return l
	}
	md := txn.GetTraceMetadata()
	return l.With().
		Str("trace.id", md.TraceID).
		Str("span.id", md.SpanID).
		Logger()
}
