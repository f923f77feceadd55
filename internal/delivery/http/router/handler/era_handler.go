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

// EraHandler holds dependencies for era-related handlers.
type EraHandler struct {
	uc     usecase.EraUsecase
	logger *slog.Logger
}

// NewEraHandler is the constructor for EraHandler, injected by Fx.
func NewEraHandler(uc usecase.EraUsecase, logger *slog.Logger) *EraHandler {
	return &EraHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListEras returns every era visible to the user, customizations applied and
// annotated with progression status.
func (h *EraHandler) ListEras(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	eras, err := h.uc.ListEras(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, eras, "Eras retrieved")
}

// GetEra resolves a single era with the user's customizations applied.
func (h *EraHandler) GetEra(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	era, err := h.uc.ResolveEra(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, era, "Era retrieved")
}

// UpdateEra edits a user-created era in place, or records a customization
// overlay for a predefined one.
func (h *EraHandler) UpdateEra(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	var input usecase.UpdateEraInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid era input")
	}

	era, err := h.uc.UpdateEra(c.Request().Context(), userID, c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, era, "Era updated")
}

// CreateUserEra adds a user-authored era alongside the predefined arc.
func (h *EraHandler) CreateUserEra(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	var input usecase.CreateUserEraInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid era input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	era, err := h.uc.CreateUserEra(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, era, "Era created")
}

// DeleteUserEra removes a user-created era. Predefined eras cannot be
// deleted.
func (h *EraHandler) DeleteUserEra(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	if err := h.uc.DeleteUserEra(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Era deleted")
}

// StartEra makes the era current if its XP gate is met.
func (h *EraHandler) StartEra(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	era, err := h.uc.StartEra(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, era, "Era started")
}

// CompleteCurrentEra finishes the current era and credits its rewards.
func (h *EraHandler) CompleteCurrentEra(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	era, err := h.uc.CompleteCurrentEra(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, era, "Era completed")
}
