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

// SkillHandler holds dependencies for passive-skill handlers.
type SkillHandler struct {
	uc     usecase.SkillUsecase
	logger *slog.Logger
}

// NewSkillHandler is the constructor for SkillHandler, injected by Fx.
func NewSkillHandler(uc usecase.SkillUsecase, logger *slog.Logger) *SkillHandler {
	return &SkillHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListSkills returns the skill tree annotated with unlock status.
func (h *SkillHandler) ListSkills(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	skills, err := h.uc.ListSkills(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, skills, "Skills retrieved")
}

// UnlockSkill spends XP to unlock the skill permanently.
func (h *SkillHandler) UnlockSkill(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing user ID")
	}

	profile, err := h.uc.UnlockSkill(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Skill unlocked")
}
