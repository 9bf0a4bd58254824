// Package middleware provides the request gates applied in front of
// protected routes: bearer-token authentication, role authorization, login
// rate limiting and response caching.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vehicle-registry/internal/auth"
)

// Context keys under which the authenticated identity is stored.
const (
	CtxEmail = "email"
	CtxRole  = "role"
)

// JWTAuth returns an Echo middleware that validates the Bearer token from
// the Authorization header and injects the decoded email and role into the
// request context. Every validation failure maps to 401; the reason is not
// distinguished for the client.
func JWTAuth(codec *auth.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			claims, err := codec.Decode(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}
