package http

import (
	"errors"
	"net/http"

	"gestion/internal/core/domain/model/order"
	"gestion/internal/core/domain/model/party"
	"gestion/internal/core/domain/services"
	"gestion/internal/generated/servers"
	"gestion/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// classify maps an application error to a status code and a client message.
// Validation errors also return one detail per joined cause.
func classify(err error) (int, string, []string) {
	switch {
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden, err.Error(), nil
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error(), nil
	case errors.Is(err, order.ErrTransitionNotAllowed),
		errors.Is(err, order.ErrFreightLineIsManaged),
		errors.Is(err, party.ErrPartyIsArchived),
		errors.Is(err, services.ErrFreightNotAvailable):
		return http.StatusConflict, err.Error(), nil
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, "validation failed", leafMessages(err)
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg, nil
		}
		return he.Code, http.StatusText(he.Code), nil
	}

	return http.StatusInternalServerError, "internal error", nil
}

func leafMessages(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, leafMessages(e)...)
		}
		return out
	}
	return []string{err.Error()}
}

func errorBody(code int, msg string, details []string) servers.Error {
	body := servers.Error{Code: code, Message: msg}
	if len(details) > 0 {
		body.Details = &details
	}
	return body
}

// ErrorHandler renders every error returned by a handler or middleware as a
// servers.Error. Server errors are logged with the request path.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, details := classify(err)
		if code >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, errorBody(code, msg, details))
		}
		if err != nil {
			logger.Warn("failed to write error response", zap.Error(err))
		}
	}
}
