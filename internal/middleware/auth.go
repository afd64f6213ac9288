package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	pkghttp "LogiPulse/pkg/http"
)

const unauthorizedMessage = "Nicht autorisiert"

// BearerAuth validates HMAC-signed bearer tokens on API routes. An empty
// secret disables the check entirely (local development and tests).
func BearerAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return pkghttp.UnauthorizedResponse(c, unauthorizedMessage)
			}

			token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return pkghttp.UnauthorizedResponse(c, unauthorizedMessage)
			}

			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if sub, _ := claims["sub"].(string); sub != "" {
					c.Set("authSubject", sub)
				}
			}
			return next(c)
		}
	}
}
