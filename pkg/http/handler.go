package http

import "github.com/labstack/echo/v4"

// Handler registers its routes on the shared Echo instance. The server
// mounts exactly one handler; route grouping happens inside RegisterRoutes.
type Handler interface {
	RegisterRoutes(e *echo.Echo)
}
