package handler

import (
	"time"

	"github.com/campwild/campwild/internal/middleware"
	"github.com/campwild/campwild/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// HandlerFunc is a typed endpoint function: it receives a bound and
// validated request payload and returns a result for the response
// handler, or an error. Req is a pointer type so Bind can populate it.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler defines how a successful handler result is written
// to the HTTP response and which attributes it contributes to tracing.
type ResponseHandler interface {
	Handle(c echo.Context, result interface{}) error
	GetOperation() string
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// ViewResponseHandler renders an HTML template with the handler result
// as template data.
type ViewResponseHandler struct {
	status   int
	template string
}

func (h ViewResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.Render(h.status, h.template, result)
}

func (h ViewResponseHandler) GetOperation() string {
	return "handler_view"
}

func (h ViewResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if txn != nil {
		txn.AddAttribute("view.template", h.template)
	}
}

// RedirectResponseHandler issues a redirect whose location is derived
// from the handler result.
type RedirectResponseHandler struct {
	status   int
	location func(result interface{}) string
}

func (h RedirectResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.Redirect(h.status, h.location(result))
}

func (h RedirectResponseHandler) GetOperation() string {
	return "handler_redirect"
}

func (h RedirectResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if txn != nil && result != nil {
		txn.AddAttribute("redirect.location", h.location(result))
	}
}

// handleRequest is the shared execution pipeline for all endpoints:
// bind + validate, structured logging with timings, tracing
// attributes and error notices, then response writing.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
		}
		return err
	}
	validationDuration := time.Since(validationStart)

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("validation_duration", validationDuration).
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed")

	return responseHandler.Handle(c, result)
}

// HandleView wraps a typed handler whose result is rendered as an HTML
// view. newReq builds a fresh request payload per invocation.
func HandleView[Req validation.Validatable, Res any](
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
	template string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newReq(), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, ViewResponseHandler{status: status, template: template})
	}
}

// HandleRedirect wraps a typed handler whose result determines the
// redirect location.
func HandleRedirect[Req validation.Validatable, Res any](
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
	location func(result interface{}) string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newReq(), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, RedirectResponseHandler{status: status, location: location})
	}
}
