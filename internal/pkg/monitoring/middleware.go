package monitoring

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// Middleware creates an echo middleware that records every request.
// Unmatched routes are reported under the route label "unmatched".
func Middleware(metrics *Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)
			metrics.ObserveRequest(c.Request().Method, route, status, time.Since(start))

			return nil
		}
	}
}
