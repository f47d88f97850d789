package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a parseable role
// proves the middleware ran, and every authenticated operation needs the
// subject id.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	raw, _ := c.Get("role").(string)
	role, parseErr := domain.ParseRole(raw)
	if parseErr != nil {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing subject identity")
	}

	return userID, role, nil
}
