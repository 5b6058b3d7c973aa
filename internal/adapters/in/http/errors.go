package http

import (
	"errors"
	"net/http"

	"shopfloor/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps domain error kinds onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errs.IsInvalidInput(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrTransitionIsInvalid):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(c echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}
	return c.JSON(code, Error{Code: code, Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
