package impl

import (
	"context"
	"testing"
	"time"

	"ascend/internal/domain/entity"
	domainerrors "ascend/internal/domain/errors"
	"ascend/internal/state"
	"ascend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSleepFixture(t *testing.T, st state.State) (*sleepService, *memStore, *state.Session) {
	t.Helper()

	store := newMemStore()
	sessions := state.NewManager()

	svc := NewSleepService(sessions, &memTxManager{store: store}, testLogger()).(*sleepService)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC) }

	session := startSession(sessions, "user-1", st)

	return svc, store, session
}

func TestSleepDuration(t *testing.T) {
	tests := []struct {
		name       string
		timeToBed  string
		timeWokeUp string
		want       float64
	}{
		{name: "same day", timeToBed: "01:00", timeWokeUp: "08:30", want: 7.5},
		{name: "over midnight", timeToBed: "23:00", timeWokeUp: "07:00", want: 8},
		{name: "wake equals bed rolls a full day", timeToBed: "22:00", timeWokeUp: "22:00", want: 24},
		{name: "wake before bed rolls to next day", timeToBed: "22:30", timeWokeUp: "06:15", want: 7.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SleepDuration(tt.timeToBed, tt.timeWokeUp)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestSleepDuration_InvalidClockTime(t *testing.T) {
	_, err := SleepDuration("25:00", "07:00")
	assert.Error(t, err)

	_, err = SleepDuration("22:00", "mañana")
	assert.Error(t, err)
}

func TestSleepService_CreateSleepLog(t *testing.T) {
	svc, store, session := newSleepFixture(t, state.State{})

	log, err := svc.CreateSleepLog(context.Background(), "user-1", &usecase.CreateSleepLogInput{
		Date:       "2026-03-09",
		TimeToBed:  "23:15",
		TimeWokeUp: "07:00",
		Quality:    "good",
		Notes:      "Noche tranquila",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, log.ID)
	assert.Equal(t, entity.SleepQualityGood, log.Quality)
	assert.InDelta(t, 7.75, log.SleepDurationHours, 0.001)
	assert.Len(t, store.sleepLogs["user-1"], 1)
	assert.Len(t, session.Snapshot().SleepLogs, 1)
}

func TestSleepService_CreateSleepLog_InvalidQuality(t *testing.T) {
	svc, store, _ := newSleepFixture(t, state.State{})

	_, err := svc.CreateSleepLog(context.Background(), "user-1", &usecase.CreateSleepLogInput{
		Date:       "2026-03-09",
		TimeToBed:  "23:00",
		TimeWokeUp: "07:00",
		Quality:    "regular",
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, store.sleepLogs["user-1"])
}

func TestSleepService_DeleteSleepLog_RollbackOnWriteFailure(t *testing.T) {
	initial := state.State{
		Profile: entity.UserProfile{ID: "user-1"},
		SleepLogs: []entity.SleepLog{
			{ID: "s1", Date: "2026-03-08", Quality: entity.SleepQualityFair},
		},
	}
	svc, store, session := newSleepFixture(t, initial)
	store.sleepLogs["user-1"] = append([]entity.SleepLog(nil), initial.SleepLogs...)

	store.writeErr = assert.AnError

	err := svc.DeleteSleepLog(context.Background(), "user-1", "s1")
	require.ErrorIs(t, err, domainerrors.ErrRemoteWriteFailed)

	assert.Len(t, session.Snapshot().SleepLogs, 1, "local removal rolled back")
	assert.Len(t, store.sleepLogs["user-1"], 1)
}

func TestSleepService_DeleteSleepLog(t *testing.T) {
	initial := state.State{
		Profile: entity.UserProfile{ID: "user-1"},
		SleepLogs: []entity.SleepLog{
			{ID: "s1", Date: "2026-03-08", Quality: entity.SleepQualityFair},
		},
	}
	svc, store, session := newSleepFixture(t, initial)
	store.sleepLogs["user-1"] = append([]entity.SleepLog(nil), initial.SleepLogs...)

	require.NoError(t, svc.DeleteSleepLog(context.Background(), "user-1", "s1"))
	assert.Empty(t, session.Snapshot().SleepLogs)
	assert.Empty(t, store.sleepLogs["user-1"])

	err := svc.DeleteSleepLog(context.Background(), "user-1", "s1")
	assert.ErrorIs(t, err, domainerrors.ErrSleepLogNotFound)
}
