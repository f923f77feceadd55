package impl

import (
	"context"
	"testing"
	"time"

	"ascend/internal/domain/entity"
	domainerrors "ascend/internal/domain/errors"
	"ascend/internal/domain/progression"
	"ascend/internal/domain/service"
	"ascend/internal/state"
	"ascend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEraFixture(t *testing.T, st state.State) (*eraService, *memStore, *capturePublisher, *state.Session) {
	t.Helper()

	store := newMemStore()
	sessions := state.NewManager()
	bus := &capturePublisher{}

	svc := NewEraService(sessions, &memTxManager{store: store}, bus, testLogger()).(*eraService)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC) }

	session := startSession(sessions, "user-1", st)

	return svc, store, bus, session
}

func strPtr(s string) *string { return &s }

func TestEraService_Lifecycle(t *testing.T) {
	svc, store, bus, session := newEraFixture(t, state.State{
		Profile: entity.UserProfile{ID: "user-1", XP: 0},
	})
	ctx := context.Background()

	started, err := svc.StartEra(ctx, "user-1", "era-despertar")
	require.NoError(t, err)
	assert.Equal(t, progression.EraStatusCurrent, started.Status)
	require.NotNil(t, started.Era.StartedAt)

	snap := session.Snapshot()
	assert.Equal(t, "era-despertar", snap.Profile.CurrentEraID)
	assert.NotNil(t, snap.Profile.EraCustomizations["era-despertar"].StartedAt,
		"start stamp for a predefined era lives in the overlay")
	assert.Equal(t, snap.Profile.XP, store.profiles["user-1"].XP, "profile persisted")

	completed, err := svc.CompleteCurrentEra(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, progression.EraStatusCompleted, completed.Status)
	require.NotNil(t, completed.Era.CompletedAt)

	snap = session.Snapshot()
	assert.Equal(t, "", snap.Profile.CurrentEraID, "no auto-chaining into the next era")
	assert.Equal(t, 50, snap.Profile.XP, "XP rewards credited on completion")
	assert.Contains(t, snap.Profile.CompletedEraIDs, "era-despertar")

	assert.Equal(t, []string{service.EventEraStarted, service.EventEraCompleted}, bus.kinds())
}

func TestEraService_StartEra_Preconditions(t *testing.T) {
	svc, _, _, _ := newEraFixture(t, state.State{
		Profile: entity.UserProfile{
			ID:              "user-1",
			XP:              50,
			CurrentEraID:    "era-despertar",
			CompletedEraIDs: []string{"era-trascendencia"},
		},
	})
	ctx := context.Background()

	_, err := svc.StartEra(ctx, "user-1", "era-trascendencia")
	assert.ErrorIs(t, err, domainerrors.ErrEraAlreadyCompleted)

	_, err = svc.StartEra(ctx, "user-1", "era-despertar")
	assert.ErrorIs(t, err, domainerrors.ErrEraAlreadyCurrent)

	_, err = svc.StartEra(ctx, "user-1", "era-forja")
	assert.ErrorIs(t, err, domainerrors.ErrEraStartLocked, "XP below the start gate")

	_, err = svc.StartEra(ctx, "user-1", "era-inventada")
	assert.ErrorIs(t, err, domainerrors.ErrEraNotFound)
}

func TestEraService_StartEra_RespectsOverlayGate(t *testing.T) {
	// The user raised the gate of a predefined era via customization; the
	// resolved value decides, not the template.
	raised := 500
	svc, _, _, _ := newEraFixture(t, state.State{
		Profile: entity.UserProfile{
			ID: "user-1",
			XP: 150,
			EraCustomizations: map[string]entity.EraOverlay{
				"era-forja": {XPRequiredToStart: &raised},
			},
		},
	})

	_, err := svc.StartEra(context.Background(), "user-1", "era-forja")
	assert.ErrorIs(t, err, domainerrors.ErrEraStartLocked)
}

func TestEraService_CompleteCurrentEra_NoCurrent(t *testing.T) {
	svc, _, _, _ := newEraFixture(t, state.State{
		Profile: entity.UserProfile{ID: "user-1", XP: 100},
	})

	_, err := svc.CompleteCurrentEra(context.Background(), "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrNoCurrentEra)
}

func TestEraService_CompleteCurrentEra_RollbackOnWriteFailure(t *testing.T) {
	svc, store, bus, session := newEraFixture(t, state.State{
		Profile: entity.UserProfile{ID: "user-1", XP: 120, CurrentEraID: "era-forja"},
	})

	before := session.Snapshot()
	store.writeErr = assert.AnError

	_, err := svc.CompleteCurrentEra(context.Background(), "user-1")
	require.ErrorIs(t, err, domainerrors.ErrRemoteWriteFailed)

	after := session.Snapshot()
	assert.Equal(t, before.Profile.XP, after.Profile.XP)
	assert.Equal(t, "era-forja", after.Profile.CurrentEraID)
	assert.Empty(t, after.Profile.CompletedEraIDs)
	assert.Empty(t, bus.kinds())
}

func TestEraService_UpdateEra_OverlayMergeAndPrune(t *testing.T) {
	svc, _, _, session := newEraFixture(t, state.State{
		Profile: entity.UserProfile{ID: "user-1", XP: 0},
	})
	ctx := context.Background()

	resolved, err := svc.UpdateEra(ctx, "user-1", "era-forja", &usecase.UpdateEraInput{
		Name: strPtr("La Gran Forja"),
		Icon: strPtr("anvil"),
	})
	require.NoError(t, err)
	assert.Equal(t, "La Gran Forja", resolved.Era.Name)
	assert.Equal(t, "anvil", resolved.Era.Theme.Icon)
	assert.Equal(t, "ember", resolved.Era.Theme.ColorToken, "untouched fields keep the template value")

	overlay := session.Snapshot().Profile.EraCustomizations["era-forja"]
	require.NotNil(t, overlay.Name)
	assert.Nil(t, overlay.ColorToken, "only overridden fields are stored")

	// Setting the fields back to the template values prunes the overlay away.
	_, err = svc.UpdateEra(ctx, "user-1", "era-forja", &usecase.UpdateEraInput{
		Name: strPtr("La Forja"),
		Icon: strPtr("hammer"),
	})
	require.NoError(t, err)
	_, exists := session.Snapshot().Profile.EraCustomizations["era-forja"]
	assert.False(t, exists, "empty overlay removed from the profile")
}

func TestEraService_UpdateEra_OverlayIgnoresObjectivesAndRewards(t *testing.T) {
	svc, _, _, _ := newEraFixture(t, state.State{
		Profile: entity.UserProfile{ID: "user-1"},
	})

	resolved, err := svc.UpdateEra(context.Background(), "user-1", "era-forja", &usecase.UpdateEraInput{
		Objectives: []entity.EraObjective{{Description: "Objetivo propio"}},
		Rewards:    []entity.EraReward{{Kind: entity.RewardKindXP, Value: 9999}},
	})
	require.NoError(t, err)

	assert.Len(t, resolved.Era.Objectives, 2, "predefined objectives untouched")
	assert.Equal(t, 175, resolved.Era.XPReward(), "predefined rewards untouched")
}

func TestEraService_UserEra_CreateUpdateDelete(t *testing.T) {
	svc, store, _, session := newEraFixture(t, state.State{
		Profile: entity.UserProfile{ID: "user-1", XP: 0},
	})
	ctx := context.Background()

	created, err := svc.CreateUserEra(ctx, "user-1", &usecase.CreateUserEraInput{
		Name:        "Año del Maratón",
		Description: "Correr 42 kilómetros antes de diciembre.",
	})
	require.NoError(t, err)
	assert.True(t, created.Era.IsUserCreated)
	assert.Empty(t, created.Era.Objectives)
	assert.Equal(t, defaultUserEraXPReward, created.Era.XPReward())
	assert.True(t, created.CanStart, "user eras have no start gate")
	assert.Len(t, store.eras["user-1"], 1)

	eraID := created.Era.ID

	gate := 10
	updated, err := svc.UpdateEra(ctx, "user-1", eraID, &usecase.UpdateEraInput{
		Name:              strPtr("Año del Ultra Maratón"),
		XPRequiredToStart: &gate,
		Objectives:        []entity.EraObjective{{Description: "Completar un medio maratón"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Año del Ultra Maratón", updated.Era.Name)
	assert.Equal(t, 10, updated.Era.XPRequiredToStart)
	require.Len(t, updated.Era.Objectives, 1)
	assert.NotEmpty(t, updated.Era.Objectives[0].ID, "objective IDs assigned when missing")
	assert.Empty(t, session.Snapshot().Profile.EraCustomizations,
		"user era edits never produce overlays")

	require.NoError(t, svc.DeleteUserEra(ctx, "user-1", eraID))
	assert.Empty(t, store.eras["user-1"])

	err = svc.DeleteUserEra(ctx, "user-1", eraID)
	assert.ErrorIs(t, err, domainerrors.ErrEraNotFound)
}

func TestEraService_DeleteUserEra_Predefined(t *testing.T) {
	svc, _, _, _ := newEraFixture(t, state.State{
		Profile: entity.UserProfile{ID: "user-1"},
	})

	err := svc.DeleteUserEra(context.Background(), "user-1", "era-despertar")
	assert.ErrorIs(t, err, domainerrors.ErrEraNotUserCreated)
}

func TestEraService_DeleteUserEra_CurrentClearsPointer(t *testing.T) {
	userEra := entity.Era{ID: "mi-era", Name: "Mi Era", IsUserCreated: true}
	svc, store, _, session := newEraFixture(t, state.State{
		Profile:  entity.UserProfile{ID: "user-1", CurrentEraID: "mi-era"},
		UserEras: []entity.Era{userEra},
	})
	store.eras["user-1"] = []entity.Era{userEra}

	require.NoError(t, svc.DeleteUserEra(context.Background(), "user-1", "mi-era"))

	snap := session.Snapshot()
	assert.Equal(t, "", snap.Profile.CurrentEraID)
	assert.Empty(t, snap.UserEras)
	assert.Equal(t, "", store.profiles["user-1"].CurrentEraID, "pointer cleared in the same batch")
}

func TestEraService_ListEras(t *testing.T) {
	svc, _, _, _ := newEraFixture(t, state.State{
		Profile: entity.UserProfile{
			ID:              "user-1",
			XP:              150,
			CurrentEraID:    "era-forja",
			CompletedEraIDs: []string{"era-despertar"},
		},
		UserEras: []entity.Era{
			{ID: "mi-era", Name: "Mi Era", IsUserCreated: true},
		},
	})

	eras, err := svc.ListEras(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, eras, 6, "five predefined plus one user era")

	byID := map[string]usecase.ResolvedEra{}
	for _, e := range eras {
		byID[e.Era.ID] = e
	}

	assert.Equal(t, progression.EraStatusCompleted, byID["era-despertar"].Status)
	assert.Equal(t, progression.EraStatusCurrent, byID["era-forja"].Status)
	assert.Equal(t, progression.EraStatusLocked, byID["era-ascenso"].Status)
	assert.Equal(t, progression.EraStatusAvailable, byID["mi-era"].Status)
}

func TestEraService_ResolveEra_UserEraWinsOverCatalog(t *testing.T) {
	svc, _, _, _ := newEraFixture(t, state.State{
		Profile: entity.UserProfile{ID: "user-1"},
		UserEras: []entity.Era{
			{ID: "era-forja", Name: "Mi Forja Propia", IsUserCreated: true},
		},
	})

	resolved, err := svc.ResolveEra(context.Background(), "user-1", "era-forja")
	require.NoError(t, err)
	assert.Equal(t, "Mi Forja Propia", resolved.Era.Name)
	assert.True(t, resolved.Era.IsUserCreated)
}
