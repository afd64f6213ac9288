package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs HTTP requests. The tenant is logged when present so
// per-tenant traffic can be traced in a multi-tenant deployment.
func RequestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			err := next(c)

			latency := time.Since(start)
			tenant := c.QueryParam("tenantId")
			if tenant == "" {
				tenant = "-"
			}
			log.Printf("[%s] %s %s tenant=%s - %d (%s)",
				req.Method,
				req.RequestURI,
				req.RemoteAddr,
				tenant,
				res.Status,
				latency,
			)

			return err
		}
	}
}
