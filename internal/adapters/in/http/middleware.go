package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

func (s *Server) authorize(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.authorizer(c) {
			return c.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: "Access denied",
			})
		}
		return next(c)
	}
}

func (s *Server) metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		code := c.Response().Status
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
		}
		s.metrics.HTTPDurationSec.
			WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(code)).
			Observe(time.Since(start).Seconds())
		return err
	}
}
