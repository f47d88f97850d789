package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
	"github.com/kachra-seth/engagement-system/internal/core/guard"
)

// RBAC enforces the allowed-role set on an API group. It is the JSON
// rendition of the route guard: a role outside the set gets 403 rather
// than the silent redirect the view routes use.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, _ := c.Get("role").(string)
			role, err := domain.ParseRole(raw)
			if err != nil {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}

			sess := &domain.Session{Role: role}
			if d := guard.Decide(sess, allowedRoles); !d.Allowed {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
