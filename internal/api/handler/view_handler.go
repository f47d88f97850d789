package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
	"github.com/kachra-seth/engagement-system/internal/core/guard"
	"github.com/kachra-seth/engagement-system/internal/core/session"
)

// ViewHandler is the navigation surface: it evaluates the route guard for
// a requested view against the current session and either serves the view
// descriptor or redirects. The decision is computed per request, never
// cached.
type ViewHandler struct {
	sessions *session.Store
}

func NewViewHandler(sessions *session.Store) *ViewHandler {
	return &ViewHandler{sessions: sessions}
}

type viewResponse struct {
	View string          `json:"view"`
	Role domain.Role     `json:"role,omitempty"`
	User *domain.Session `json:"user,omitempty"`
}

// Navigate handles GET /views/:view.
//
// @Summary      Resolve a view navigation
// @Tags         views
// @Produce      json
// @Param        view  path  string  true  "View name (login, citizen, staff, admin)"
// @Success      200  {object}  viewResponse
// @Success      303  "redirected to the reachable view"
// @Router       /views/{view} [get]
func (h *ViewHandler) Navigate(c echo.Context) error {
	view := guard.View(c.Param("view"))

	var sess *domain.Session
	if cur, ok := h.sessions.Current(); ok {
		sess = &cur
	}

	decision := guard.Resolve(sess, view)
	if !decision.Allowed {
		// Unauthorized navigation is a silent redirect, never an error.
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/views/%s", decision.Redirect))
	}

	resp := viewResponse{View: string(view)}
	if sess != nil {
		resp.Role = sess.Role
		resp.User = sess
	}
	return c.JSON(http.StatusOK, resp)
}
