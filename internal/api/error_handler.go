package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusUnprocessableEntity, "unknown role"
	case errors.Is(err, domain.ErrInsufficientPoints):
		return http.StatusUnprocessableEntity, "insufficient points"
	case errors.Is(err, domain.ErrUnknownReward):
		return http.StatusNotFound, "unknown reward"
	case errors.Is(err, domain.ErrInvalidBinCode):
		return http.StatusBadRequest, "unrecognised bin code"
	case errors.Is(err, domain.ErrBinAlreadyScanned):
		return http.StatusConflict, "bin already scanned today"
	case errors.Is(err, domain.ErrBinNotFound):
		return http.StatusNotFound, "bin not found"
	case errors.Is(err, domain.ErrStopNotFound):
		return http.StatusNotFound, "route stop not found"
	case errors.Is(err, domain.ErrUnknownCity):
		return http.StatusNotFound, "unknown city"
	case errors.Is(err, context.Canceled):
		// Client went away mid-request; nothing useful to return.
		return http.StatusBadRequest, "request cancelled"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
