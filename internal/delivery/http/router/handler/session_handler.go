// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"ascend/internal/delivery/http/middleware"
	"ascend/internal/delivery/http/response"
	"ascend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignIn hydrates the server-side session for the verified identity. The
// token itself was already checked by the auth middleware.
func (h *SessionHandler) SignIn(c echo.Context) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing verified identity")
	}

	result, err := h.uc.SignIn(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if result.NewUser {
		status = http.StatusCreated
	}

	return response.Success(c, status, result, "Session established")
}

// SignOut discards the server-side session. Repeat sign-out is a no-op.
func (h *SessionHandler) SignOut(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	if err := h.uc.SignOut(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out"}, "Session closed")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
