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

// InsightHandler holds dependencies for generative-text handlers.
type InsightHandler struct {
	uc     usecase.InsightUsecase
	logger *slog.Logger
}

// NewInsightHandler is the constructor for InsightHandler, injected by Fx.
func NewInsightHandler(uc usecase.InsightUsecase, logger *slog.Logger) *InsightHandler {
	return &InsightHandler{
		uc:     uc,
		logger: logger,
	}
}

type summarizeHabitsRequest struct {
	Preferences string `json:"preferences"`
}

// SummarizeHabits produces a narrative summary of the user's habits.
func (h *InsightHandler) SummarizeHabits(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	var input summarizeHabitsRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid summary input")
	}

	summary, err := h.uc.SummarizeHabits(c.Request().Context(), userID, input.Preferences)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Summary generated")
}

// GetQuote returns a motivational quote for the requested category.
func (h *InsightHandler) GetQuote(c echo.Context) error {
	category := c.QueryParam("category")

	quote, err := h.uc.GetQuote(c.Request().Context(), category)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"quote": quote, "category": category}, "Quote generated")
}
