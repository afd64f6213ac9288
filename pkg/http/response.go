package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes a 200 success envelope.
func SuccessResponse(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusOK, SuccessEnvelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// ErrorResponse writes an error envelope with the given status.
func ErrorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorEnvelope{Error: message})
}

// BadRequestResponse writes a 400 error envelope.
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusBadRequest, message)
}

// UnauthorizedResponse writes a 401 error envelope.
func UnauthorizedResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusUnauthorized, message)
}

// NotFoundResponse writes a 404 error envelope.
func NotFoundResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusNotFound, message)
}

// InternalServerErrorResponse writes a 500 error envelope.
func InternalServerErrorResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusInternalServerError, message)
}
