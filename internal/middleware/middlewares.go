// Package middleware wires the HTTP middleware stack: request ids,
// request-scoped loggers, request logging, tracing, and the global
// error handler every failure path converges on.
package middleware

import (
	"github.com/campwild/campwild/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups all middleware components used by the HTTP
// server, built once and reused during router setup.
type Middlewares struct {
	// Global holds the request logger, panic recovery, secure headers,
	// and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped
	// logger (request_id, method, path, ip, optional trace metadata).
	ContextEnhancer *ContextEnhancer

	// Tracing provides the New Relic middleware; a no-op when APM is
	// not configured.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components from the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
