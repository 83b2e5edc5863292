package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/leadflow/crm/internal/apperrors"
	"github.com/leadflow/crm/internal/validation"
	"github.com/sirupsen/logrus"
)

// ErrorHandler maps domain errors to the response envelope. Validation and
// input errors become 400, unresolved identifiers 404, everything else is
// logged and surfaced as a generic 500.
func ErrorHandler(logger *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "internal server error"

		var invalidInputErr *apperrors.InvalidInputErr
		var notFoundErr *apperrors.NotFoundErr
		var payloadErr *validation.PayloadError
		var httpErr *echo.HTTPError

		switch {
		case errors.As(err, &invalidInputErr):
			code = http.StatusBadRequest
			message = invalidInputErr.Error()
		case errors.As(err, &notFoundErr):
			code = http.StatusNotFound
			message = notFoundErr.Error()
		case errors.As(err, &payloadErr):
			code = http.StatusBadRequest
			message = strings.TrimSpace(payloadErr.Error())
		case errors.As(err, &httpErr):
			code = httpErr.Code
			message = fmt.Sprintf("%v", httpErr.Message)
		default:
			logger.WithError(err).Error("request failed")
		}

		if err := c.JSON(code, &response{Success: false, Message: message}); err != nil {
			logger.WithError(err).Error("failed to write error response")
		}
	}
}
