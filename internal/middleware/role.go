package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vehicle-registry/internal/model"
)

// RequireRole returns a middleware that rejects authenticated requests whose
// role is outside the allowed set with 403. It assumes JWTAuth already ran
// and stored a model.Role under CtxRole; a missing or mistyped value is
// treated as forbidden. The check is pure and writes no state.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(model.Role)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
