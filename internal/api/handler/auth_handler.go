package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kachra-seth/engagement-system/internal/api/metrics"
	"github.com/kachra-seth/engagement-system/internal/core/domain"
	"github.com/kachra-seth/engagement-system/internal/core/guard"
	"github.com/kachra-seth/engagement-system/internal/core/ports"
	"github.com/kachra-seth/engagement-system/internal/core/session"
)

// AuthHandler handles login, logout, and registration.
type AuthHandler struct {
	authService ports.AuthService
	sessions    *session.Store
}

func NewAuthHandler(authService ports.AuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=3"`
	Role     string `json:"role"     validate:"required,role"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token     string          `json:"token,omitempty"`
	Session   *domain.Session `json:"session,omitempty"`
	Dashboard string          `json:"dashboard,omitempty"`
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	account, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, role)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrUserExists):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidRole):
			status = http.StatusBadRequest
		}
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]any{"account": account})
}

// Login authenticates credentials, opens the session, and returns a token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, sess, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		// One generic message for every authentication failure.
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": domain.ErrInvalidCredentials.Error()})
	}

	h.sessions.Login(c.Request().Context(), *sess)
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{
		Token:     token,
		Session:   sess,
		Dashboard: string(guard.Dashboard(sess.Role)),
	})
}

// Logout clears the active session. Idempotent.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Me returns the active session, or 401 when logged out.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess, ok := h.sessions.Current()
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no active session"})
	}
	return c.JSON(http.StatusOK, authResponse{Session: &sess, Dashboard: string(guard.Dashboard(sess.Role))})
}
