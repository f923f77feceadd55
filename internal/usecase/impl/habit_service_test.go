package impl

import (
	"context"
	"testing"
	"time"

	"ascend/internal/domain/entity"
	domainerrors "ascend/internal/domain/errors"
	"ascend/internal/domain/service"
	"ascend/internal/state"
	"ascend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHabitFixture(t *testing.T, st state.State) (*habitService, *memStore, *capturePublisher, *state.Session) {
	t.Helper()

	store := newMemStore()
	sessions := state.NewManager()
	bus := &capturePublisher{}

	svc := NewHabitService(sessions, &memTxManager{store: store}, bus, testLogger()).(*habitService)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC) }

	session := startSession(sessions, "user-1", st)

	return svc, store, bus, session
}

func TestHabitService_CreateHabit(t *testing.T) {
	svc, store, _, session := newHabitFixture(t, state.State{})

	habit, err := svc.CreateHabit(context.Background(), "user-1", &usecase.CreateHabitInput{Name: "Leer 20 páginas", Category: "Aprendizaje"})
	require.NoError(t, err)

	assert.NotEmpty(t, habit.ID)
	assert.Equal(t, 20, habit.XP, "reward fixed from the category at creation")
	assert.False(t, habit.Completed)
	assert.Zero(t, habit.Streak)

	assert.Len(t, store.habits["user-1"], 1, "persisted remotely")
	assert.Len(t, session.Snapshot().Habits, 1, "appended to session state")
}

func TestHabitService_CreateHabit_UnknownCategory(t *testing.T) {
	svc, store, _, session := newHabitFixture(t, state.State{})

	_, err := svc.CreateHabit(context.Background(), "user-1", &usecase.CreateHabitInput{Name: "Algo", Category: "Inexistente"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownHabitCategory)

	assert.Empty(t, store.habits["user-1"])
	assert.Empty(t, session.Snapshot().Habits)
}

func TestHabitService_ToggleHabit_OnAndOffSameDay(t *testing.T) {
	initial := state.State{
		Profile: entity.UserProfile{ID: "user-1", XP: 10},
		Habits: []entity.Habit{
			{ID: "h1", Name: "Meditar", Category: "Salud Mental", XP: 15, Streak: 3},
		},
	}
	svc, _, bus, session := newHabitFixture(t, initial)
	ctx := context.Background()

	toggled, err := svc.ToggleHabit(ctx, "user-1", "h1")
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.Equal(t, 4, toggled.Streak)
	assert.Equal(t, "2026-03-10", toggled.LastCompletedDate)
	assert.Equal(t, 25, session.Snapshot().Profile.XP)

	// Toggling back off on the same calendar day is an exact inverse.
	reverted, err := svc.ToggleHabit(ctx, "user-1", "h1")
	require.NoError(t, err)
	assert.False(t, reverted.Completed)
	assert.Equal(t, 3, reverted.Streak)
	assert.Equal(t, 10, session.Snapshot().Profile.XP)

	assert.Equal(t, []string{service.EventXPAdjusted, service.EventXPAdjusted}, bus.kinds())
}

func TestHabitService_ToggleHabit_SameDayRecompleteKeepsStreak(t *testing.T) {
	initial := state.State{
		Profile: entity.UserProfile{ID: "user-1", XP: 10},
		Habits: []entity.Habit{
			{ID: "h1", Name: "Meditar", Category: "Salud Mental", XP: 15, Streak: 3},
		},
	}
	svc, _, _, session := newHabitFixture(t, initial)
	ctx := context.Background()

	// On, off, on again within the same day: the day counted once, so the
	// final streak stays at the pre-reversal value while XP re-applies.
	for _, want := range []int{4, 3, 3} {
		toggled, err := svc.ToggleHabit(ctx, "user-1", "h1")
		require.NoError(t, err)
		assert.Equal(t, want, toggled.Streak)
	}

	final := session.Snapshot()
	assert.True(t, final.Habits[0].Completed)
	assert.Equal(t, "2026-03-10", final.Habits[0].LastCompletedDate)
	assert.Equal(t, 25, final.Profile.XP)
}

func TestHabitService_ToggleHabit_StreakNotDoubleCountedSameDay(t *testing.T) {
	initial := state.State{
		Profile: entity.UserProfile{ID: "user-1"},
		Habits: []entity.Habit{
			{ID: "h1", Name: "Correr", Category: "Salud Física", XP: 20, Streak: 5, LastCompletedDate: "2026-03-10"},
		},
	}
	svc, _, _, _ := newHabitFixture(t, initial)

	toggled, err := svc.ToggleHabit(context.Background(), "user-1", "h1")
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.Equal(t, 5, toggled.Streak, "streak unchanged when already completed today")
}

func TestHabitService_ToggleHabit_XPFlooredAtZero(t *testing.T) {
	initial := state.State{
		Profile: entity.UserProfile{ID: "user-1", XP: 5},
		Habits: []entity.Habit{
			{ID: "h1", Name: "Ahorrar", Category: "Finanzas", XP: 15, Completed: true, LastCompletedDate: "2026-03-09", Streak: 1},
		},
	}
	svc, _, _, session := newHabitFixture(t, initial)

	_, err := svc.ToggleHabit(context.Background(), "user-1", "h1")
	require.NoError(t, err)
	assert.Equal(t, 0, session.Snapshot().Profile.XP, "reversal never drives XP negative")
}

func TestHabitService_ToggleHabit_RollbackOnWriteFailure(t *testing.T) {
	initial := state.State{
		Profile: entity.UserProfile{ID: "user-1", XP: 40},
		Habits: []entity.Habit{
			{ID: "h1", Name: "Meditar", Category: "Salud Mental", XP: 15, Streak: 2},
		},
	}
	svc, store, bus, session := newHabitFixture(t, initial)

	before := session.Snapshot()
	store.writeErr = assert.AnError

	_, err := svc.ToggleHabit(context.Background(), "user-1", "h1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRemoteWriteFailed)

	after := session.Snapshot()
	assert.Equal(t, before.Profile.XP, after.Profile.XP)
	assert.Equal(t, before.Habits, after.Habits, "snapshot reinstated exactly")
	assert.Empty(t, bus.kinds(), "no events for a rolled-back mutation")
}

func TestHabitService_ToggleHabit_RankChangeEvent(t *testing.T) {
	initial := state.State{
		Profile: entity.UserProfile{ID: "user-1", XP: 95},
		Habits: []entity.Habit{
			{ID: "h1", Name: "Estudiar", Category: "Aprendizaje", XP: 20},
		},
	}
	svc, _, bus, _ := newHabitFixture(t, initial)

	_, err := svc.ToggleHabit(context.Background(), "user-1", "h1")
	require.NoError(t, err)

	require.Equal(t, []string{service.EventXPAdjusted, service.EventRankChanged}, bus.kinds())
	assert.Equal(t, "Aprendiz", bus.events[1].RankName)
}

func TestHabitService_DeleteHabit_RevokesXPWhenCompleted(t *testing.T) {
	initial := state.State{
		Profile: entity.UserProfile{ID: "user-1", XP: 100},
		Habits: []entity.Habit{
			{ID: "h1", Name: "Meditar", Category: "Salud Mental", XP: 15, Completed: true},
			{ID: "h2", Name: "Leer", Category: "Aprendizaje", XP: 20},
		},
	}
	svc, store, _, session := newHabitFixture(t, initial)
	store.habits["user-1"] = append([]entity.Habit(nil), initial.Habits...)
	ctx := context.Background()

	require.NoError(t, svc.DeleteHabit(ctx, "user-1", "h1"))
	assert.Equal(t, 85, session.Snapshot().Profile.XP, "completed habit's reward revoked")
	assert.Len(t, store.habits["user-1"], 1)

	require.NoError(t, svc.DeleteHabit(ctx, "user-1", "h2"))
	assert.Equal(t, 85, session.Snapshot().Profile.XP, "incomplete habit leaves XP alone")
	assert.Empty(t, store.habits["user-1"])
}

func TestHabitService_NoSession(t *testing.T) {
	svc, _, _, _ := newHabitFixture(t, state.State{})

	_, err := svc.ToggleHabit(context.Background(), "stranger", "h1")
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}
