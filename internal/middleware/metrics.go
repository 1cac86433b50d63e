package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/anonto42/bluo/backend/internal/metrics"
	"github.com/labstack/echo/v4"
)

// Metrics records request count and latency labelled by the matched route.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.RecordRequest(c.Request().Method, route, status, time.Since(start))
			return err
		}
	}
}
