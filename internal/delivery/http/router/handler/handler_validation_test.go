package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ascend/internal/delivery/http/middleware"
	"ascend/internal/delivery/http/validator"
	"ascend/internal/domain/entity"
	"ascend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stubs embed the usecase interface so only the method under test needs an
// implementation; an unexpected call panics the test.

type stubHabitUC struct {
	usecase.HabitUsecase
	created *usecase.CreateHabitInput
}

func (s *stubHabitUC) CreateHabit(ctx context.Context, userID string, input *usecase.CreateHabitInput) (*entity.Habit, error) {
	s.created = input

	return &entity.Habit{ID: "habit-1", Name: input.Name, Category: input.Category}, nil
}

type stubGoalUC struct {
	usecase.GoalUsecase
	created *usecase.CreateGoalInput
}

func (s *stubGoalUC) CreateGoal(ctx context.Context, userID string, input *usecase.CreateGoalInput) (*entity.Goal, error) {
	s.created = input

	return &entity.Goal{ID: "goal-1", Title: input.Title}, nil
}

type stubSleepUC struct {
	usecase.SleepUsecase
	created *usecase.CreateSleepLogInput
}

func (s *stubSleepUC) CreateSleepLog(ctx context.Context, userID string, input *usecase.CreateSleepLogInput) (*entity.SleepLog, error) {
	s.created = input

	return &entity.SleepLog{ID: "log-1"}, nil
}

type stubEraUC struct {
	usecase.EraUsecase
	created *usecase.CreateUserEraInput
}

func (s *stubEraUC) CreateUserEra(ctx context.Context, userID string, input *usecase.CreateUserEraInput) (*usecase.ResolvedEra, error) {
	s.created = input

	return &usecase.ResolvedEra{Era: entity.Era{ID: "era-1", Name: input.Name}}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRequestContext builds an authenticated echo context for a JSON request.
func newRequestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.Set(middleware.KeyUserID, "user-1")

	return c, rec
}

func TestCreateHabitRejectsEmptyBody(t *testing.T) {
	uc := &stubHabitUC{}
	h := NewHabitHandler(uc, discardLogger())

	c, rec := newRequestContext(t, http.MethodPost, "/api/v1/habits", "")

	require.NoError(t, h.CreateHabit(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Nil(t, uc.created)
}

func TestCreateHabitRejectsMissingCategory(t *testing.T) {
	uc := &stubHabitUC{}
	h := NewHabitHandler(uc, discardLogger())

	c, rec := newRequestContext(t, http.MethodPost, "/api/v1/habits", `{"name":"Leer 30 minutos"}`)

	require.NoError(t, h.CreateHabit(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Nil(t, uc.created)
}

func TestCreateHabitPassesValidInput(t *testing.T) {
	uc := &stubHabitUC{}
	h := NewHabitHandler(uc, discardLogger())

	c, rec := newRequestContext(t, http.MethodPost, "/api/v1/habits",
		`{"name":"Leer 30 minutos","category":"aprendizaje"}`)

	require.NoError(t, h.CreateHabit(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.created)
	assert.Equal(t, "Leer 30 minutos", uc.created.Name)
	assert.Equal(t, "aprendizaje", uc.created.Category)
}

func TestCreateGoalRejectsEmptyBody(t *testing.T) {
	uc := &stubGoalUC{}
	h := NewGoalHandler(uc, discardLogger())

	c, rec := newRequestContext(t, http.MethodPost, "/api/v1/goals", "")

	require.NoError(t, h.CreateGoal(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Nil(t, uc.created)
}

func TestCreateSleepLogRejectsEmptyBody(t *testing.T) {
	uc := &stubSleepUC{}
	h := NewSleepHandler(uc, discardLogger())

	c, rec := newRequestContext(t, http.MethodPost, "/api/v1/sleep-logs", "")

	require.NoError(t, h.CreateSleepLog(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Nil(t, uc.created)
}

func TestCreateSleepLogRejectsMissingTimes(t *testing.T) {
	uc := &stubSleepUC{}
	h := NewSleepHandler(uc, discardLogger())

	c, rec := newRequestContext(t, http.MethodPost, "/api/v1/sleep-logs",
		`{"date":"2026-03-10","quality":"buena"}`)

	require.NoError(t, h.CreateSleepLog(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.created)
}

func TestCreateUserEraRejectsEmptyBody(t *testing.T) {
	uc := &stubEraUC{}
	h := NewEraHandler(uc, discardLogger())

	c, rec := newRequestContext(t, http.MethodPost, "/api/v1/eras", "")

	require.NoError(t, h.CreateUserEra(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Nil(t, uc.created)
}

func TestCreateUserEraPassesValidInput(t *testing.T) {
	uc := &stubEraUC{}
	h := NewEraHandler(uc, discardLogger())

	c, rec := newRequestContext(t, http.MethodPost, "/api/v1/eras",
		`{"name":"La Travesía","description":"Una era propia"}`)

	require.NoError(t, h.CreateUserEra(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.created)
	assert.Equal(t, "La Travesía", uc.created.Name)
}
