package impl

import (
	"context"
	"testing"

	"ascend/internal/domain/entity"
	domainerrors "ascend/internal/domain/errors"
	"ascend/internal/domain/service"
	"ascend/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightService_SummarizeHabits(t *testing.T) {
	sessions := state.NewManager()
	texts := &stubTextService{
		summary: &service.HabitSummary{
			Summary:     "Vas bien con la meditación.",
			Suggestions: []string{"Añade un hábito de lectura."},
		},
	}
	svc := NewInsightService(sessions, texts, testLogger())

	startSession(sessions, "user-1", state.State{
		Profile: entity.UserProfile{ID: "user-1"},
		Habits: []entity.Habit{
			{ID: "h1", Name: "Meditar", Category: "Salud Mental", Completed: true, Streak: 4},
			{ID: "h2", Name: "Correr", Category: "Salud Física", Streak: 0},
		},
	})

	summary, err := svc.SummarizeHabits(context.Background(), "user-1", "prefiero rutinas matutinas")
	require.NoError(t, err)

	assert.Equal(t, "Vas bien con la meditación.", summary.Summary)
	assert.Equal(t, "prefiero rutinas matutinas", texts.lastPrefs)
	assert.Contains(t, texts.lastRawData, "Meditar")
	assert.Contains(t, texts.lastRawData, "completado")
	assert.Contains(t, texts.lastRawData, "racha de 4 días")
}

func TestInsightService_SummarizeHabits_NoHabits(t *testing.T) {
	sessions := state.NewManager()
	texts := &stubTextService{summary: &service.HabitSummary{Summary: "Empieza hoy."}}
	svc := NewInsightService(sessions, texts, testLogger())

	startSession(sessions, "user-1", state.State{Profile: entity.UserProfile{ID: "user-1"}})

	_, err := svc.SummarizeHabits(context.Background(), "user-1", "")
	require.NoError(t, err)
	assert.Equal(t, "Sin hábitos registrados.", texts.lastRawData)
}

func TestInsightService_SummarizeHabits_ServiceDown(t *testing.T) {
	sessions := state.NewManager()
	svc := NewInsightService(sessions, &stubTextService{err: assert.AnError}, testLogger())

	startSession(sessions, "user-1", state.State{Profile: entity.UserProfile{ID: "user-1"}})

	_, err := svc.SummarizeHabits(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, domainerrors.ErrAIServiceUnavailable)
}

func TestInsightService_GetQuote(t *testing.T) {
	svc := NewInsightService(state.NewManager(), &stubTextService{quote: "El que persevera alcanza."}, testLogger())
	ctx := context.Background()

	quote, err := svc.GetQuote(ctx, service.QuoteCategoryDiscipline)
	require.NoError(t, err)
	assert.Equal(t, "El que persevera alcanza.", quote)

	_, err = svc.GetQuote(ctx, "humor")
	assert.ErrorIs(t, err, domainerrors.ErrUnknownQuoteCategory)
}

func TestInsightService_GetQuote_ServiceDown(t *testing.T) {
	svc := NewInsightService(state.NewManager(), &stubTextService{err: assert.AnError}, testLogger())

	_, err := svc.GetQuote(context.Background(), service.QuoteCategorySuccess)
	assert.ErrorIs(t, err, domainerrors.ErrAIServiceUnavailable)
}
