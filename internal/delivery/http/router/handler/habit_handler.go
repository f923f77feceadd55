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

// HabitHandler holds dependencies for habit-related handlers.
type HabitHandler struct {
	uc     usecase.HabitUsecase
	logger *slog.Logger
}

// NewHabitHandler is the constructor for HabitHandler, injected by Fx.
func NewHabitHandler(uc usecase.HabitUsecase, logger *slog.Logger) *HabitHandler {
	return &HabitHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListHabits returns the user's habits.
func (h *HabitHandler) ListHabits(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	habits, err := h.uc.ListHabits(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, habits, "Habits retrieved")
}

// CreateHabit registers a new habit for the user.
func (h *HabitHandler) CreateHabit(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	var input usecase.CreateHabitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid habit input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	habit, err := h.uc.CreateHabit(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, habit, "Habit created")
}

// ToggleHabit flips today's completion for the habit, adjusting streak and XP.
func (h *HabitHandler) ToggleHabit(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	habit, err := h.uc.ToggleHabit(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, habit, "Habit toggled")
}

// DeleteHabit removes the habit, revoking today's XP if it was completed.
func (h *HabitHandler) DeleteHabit(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	if err := h.uc.DeleteHabit(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Habit deleted")
}
