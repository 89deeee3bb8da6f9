package middleware

import (
	"github.com/campwild/campwild/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// TracingMiddleware provides the New Relic Echo middleware. When no
// application instance is configured it degrades to a pass-through.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

// NewTracingMiddleware constructs a TracingMiddleware; nrApp may be
// nil.
func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// Middleware returns the nrecho middleware, or a no-op when APM is
// disabled.
func (t *TracingMiddleware) Middleware() echo.MiddlewareFunc {
	if t.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(t.nrApp)
}
