package http

import (
	"errors"
	"log/slog"
	"net/http"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// statusFor maps the error taxonomy to an HTTP status. Authentication is
// checked before authorization so a token failure never reads as 403.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated), errors.Is(err, errs.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidCredentials),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type errorWriter struct {
	metrics *metrics.Registry
	logger  *slog.Logger
}

// write renders err. Internal errors are logged and hidden from the client.
func (w errorWriter) write(c echo.Context, operation string, err error) error {
	status := statusFor(err)
	message := err.Error()

	switch status {
	case http.StatusUnauthorized:
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	case http.StatusForbidden:
		if w.metrics != nil {
			w.metrics.AccessDenied.WithLabelValues(operation).Inc()
		}
	case http.StatusInternalServerError:
		w.logger.ErrorContext(c.Request().Context(), "request failed",
			"event", "request_failed",
			"operation", operation,
			"error", err.Error(),
		)
		message = http.StatusText(http.StatusInternalServerError)
	}

	return c.JSON(status, Error{Code: status, Message: message})
}

// httpErrorHandler renders errors that escape the handlers, such as echo's
// own 404 and 405 and binder failures, in the same body shape.
func httpErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		} else {
			logger.ErrorContext(c.Request().Context(), "unhandled error", "event", "request_failed", "error", err.Error())
		}

		if respErr := c.JSON(status, Error{Code: status, Message: message}); respErr != nil {
			logger.ErrorContext(c.Request().Context(), "writing error response", "error", respErr.Error())
		}
	}
}
