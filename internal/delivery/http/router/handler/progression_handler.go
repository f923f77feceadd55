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

// ProgressionHandler holds dependencies for the progression overview handler.
type ProgressionHandler struct {
	uc     usecase.ProgressionUsecase
	logger *slog.Logger
}

// NewProgressionHandler is the constructor for ProgressionHandler, injected by Fx.
func NewProgressionHandler(uc usecase.ProgressionUsecase, logger *slog.Logger) *ProgressionHandler {
	return &ProgressionHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetOverview returns the profile with derived rank and attribute scores.
func (h *ProgressionHandler) GetOverview(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	overview, err := h.uc.GetOverview(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, overview, "Progression retrieved")
}
