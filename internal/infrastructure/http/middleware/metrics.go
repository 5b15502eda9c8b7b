package middleware

import (
	stdErrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/one-on-one-manager/errors"
	"github.com/johnquangdev/one-on-one-manager/internal/infrastructure/metrics"
)

// Metrics records request count and latency per matched route
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = statusOf(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.RecordHTTPRequest(c.Request().Method, route, status, time.Since(start).Seconds())

			return err
		}
	}
}

// statusOf predicts the status the error handler will render for err
func statusOf(err error) int {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr.HTTPCode
	}
	var httpErr *echo.HTTPError
	if stdErrors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}
