package middleware

import (
	"context"
	"os"

	loggerPkg "github.com/campwild/campwild/internal/logger"
	"github.com/campwild/campwild/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerKey is the Echo context key the request-scoped logger is
// stored under.
const LoggerKey = "logger"

// fallbackLogger is returned by GetLogger when the enhancer has not
// run for a request.
var fallbackLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// ContextEnhancer enriches each request with a request-scoped logger
// carrying correlation fields (request_id, method, path, ip, and trace
// metadata when a New Relic transaction exists).
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a ContextEnhancer from the application
// container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns the middleware. The built logger is stored in
// both the Echo context and the request's Go context.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = loggerPkg.WithTraceContext(contextLogger, txn)
			}

			c.Set(LoggerKey, contextLogger)

			ctx := context.WithValue(c.Request().Context(), LoggerKey, contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from the Echo context.
func GetLogger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get(LoggerKey).(zerolog.Logger); ok {
		return &l
	}
	return &fallbackLogger
}
