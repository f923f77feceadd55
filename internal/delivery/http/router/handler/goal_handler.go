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

// GoalHandler holds dependencies for goal-related handlers.
type GoalHandler struct {
	uc     usecase.GoalUsecase
	logger *slog.Logger
}

// NewGoalHandler is the constructor for GoalHandler, injected by Fx.
func NewGoalHandler(uc usecase.GoalUsecase, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListGoals returns the user's goals.
func (h *GoalHandler) ListGoals(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	goals, err := h.uc.ListGoals(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, goals, "Goals retrieved")
}

// CreateGoal registers a new goal for the user.
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	var input usecase.CreateGoalInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid goal input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	goal, err := h.uc.CreateGoal(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, goal, "Goal created")
}

// ToggleGoal flips the goal's completion, adjusting XP.
func (h *GoalHandler) ToggleGoal(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	goal, err := h.uc.ToggleGoal(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, goal, "Goal toggled")
}

// DeleteGoal removes the goal without touching earned XP.
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	if err := h.uc.DeleteGoal(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Goal deleted")
}
