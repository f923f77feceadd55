package impl

import (
	"context"
	"testing"

	"ascend/internal/domain/catalog"
	"ascend/internal/domain/entity"
	domainerrors "ascend/internal/domain/errors"
	"ascend/internal/domain/service"
	"ascend/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSkillFixture(t *testing.T, st state.State) (*skillService, *memStore, *capturePublisher, *state.Session) {
	t.Helper()

	store := newMemStore()
	sessions := state.NewManager()
	bus := &capturePublisher{}

	svc := NewSkillService(sessions, &memTxManager{store: store}, bus, testLogger()).(*skillService)

	session := startSession(sessions, "user-1", st)

	return svc, store, bus, session
}

func TestSkillService_ListSkills(t *testing.T) {
	svc, _, _, _ := newSkillFixture(t, state.State{
		Profile: entity.UserProfile{ID: "user-1", UnlockedSkillIDs: []string{"skill-enfoque"}},
	})

	statuses, err := svc.ListSkills(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, statuses, len(catalog.Skills()))

	for _, s := range statuses {
		if s.Skill.ID == "skill-enfoque" {
			assert.True(t, s.Unlocked)
		} else {
			assert.False(t, s.Unlocked)
		}
	}
}

func TestSkillService_UnlockSkill(t *testing.T) {
	svc, store, bus, session := newSkillFixture(t, state.State{
		Profile: entity.UserProfile{ID: "user-1", XP: 120},
	})

	profile, err := svc.UnlockSkill(context.Background(), "user-1", "skill-madrugador")
	require.NoError(t, err)

	assert.Equal(t, 70, profile.XP, "cost deducted from XP")
	assert.Contains(t, profile.UnlockedSkillIDs, "skill-madrugador")
	assert.Equal(t, 70, store.profiles["user-1"].XP, "deduction and unlock persisted together")
	assert.Equal(t, 70, session.Snapshot().Profile.XP)

	require.Len(t, bus.events, 1)
	assert.Equal(t, service.EventSkillUnlocked, bus.events[0].Kind)
	assert.Equal(t, -50, bus.events[0].XPDelta)
}

func TestSkillService_UnlockSkill_InsufficientXP(t *testing.T) {
	svc, _, bus, session := newSkillFixture(t, state.State{
		Profile: entity.UserProfile{ID: "user-1", XP: 30},
	})

	_, err := svc.UnlockSkill(context.Background(), "user-1", "skill-madrugador")
	require.ErrorIs(t, err, domainerrors.ErrInsufficientXP)

	snap := session.Snapshot()
	assert.Equal(t, 30, snap.Profile.XP, "rejected before any state change")
	assert.Empty(t, snap.Profile.UnlockedSkillIDs)
	assert.Empty(t, bus.kinds())
}

func TestSkillService_UnlockSkill_AlreadyUnlocked(t *testing.T) {
	svc, _, _, _ := newSkillFixture(t, state.State{
		Profile: entity.UserProfile{ID: "user-1", XP: 500, UnlockedSkillIDs: []string{"skill-madrugador"}},
	})

	_, err := svc.UnlockSkill(context.Background(), "user-1", "skill-madrugador")
	assert.ErrorIs(t, err, domainerrors.ErrSkillAlreadyUnlocked)
}

func TestSkillService_UnlockSkill_Unknown(t *testing.T) {
	svc, _, _, _ := newSkillFixture(t, state.State{
		Profile: entity.UserProfile{ID: "user-1", XP: 500},
	})

	_, err := svc.UnlockSkill(context.Background(), "user-1", "skill-inexistente")
	assert.ErrorIs(t, err, domainerrors.ErrSkillNotFound)
}

func TestSkillService_UnlockSkill_RollbackOnWriteFailure(t *testing.T) {
	svc, store, _, session := newSkillFixture(t, state.State{
		Profile: entity.UserProfile{ID: "user-1", XP: 120},
	})

	store.writeErr = assert.AnError

	_, err := svc.UnlockSkill(context.Background(), "user-1", "skill-madrugador")
	require.ErrorIs(t, err, domainerrors.ErrRemoteWriteFailed)

	snap := session.Snapshot()
	assert.Equal(t, 120, snap.Profile.XP)
	assert.Empty(t, snap.Profile.UnlockedSkillIDs)
}
