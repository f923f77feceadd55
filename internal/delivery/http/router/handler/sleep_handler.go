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

// SleepHandler holds dependencies for sleep-log handlers.
type SleepHandler struct {
	uc     usecase.SleepUsecase
	logger *slog.Logger
}

// NewSleepHandler is the constructor for SleepHandler, injected by Fx.
func NewSleepHandler(uc usecase.SleepUsecase, logger *slog.Logger) *SleepHandler {
	return &SleepHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListSleepLogs returns the user's sleep logs.
func (h *SleepHandler) ListSleepLogs(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	logs, err := h.uc.ListSleepLogs(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, logs, "Sleep logs retrieved")
}

// CreateSleepLog records a sleep entry; duration is computed server-side.
func (h *SleepHandler) CreateSleepLog(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	var input usecase.CreateSleepLogInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sleep log input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	log, err := h.uc.CreateSleepLog(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, log, "Sleep log created")
}

// DeleteSleepLog removes the sleep entry.
func (h *SleepHandler) DeleteSleepLog(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	if err := h.uc.DeleteSleepLog(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Sleep log deleted")
}
