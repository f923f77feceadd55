package impl

import (
	"context"
	"log/slog"

	"ascend/internal/domain/catalog"
	"ascend/internal/domain/entity"
	domainerrors "ascend/internal/domain/errors"
	"ascend/internal/domain/repository"
	"ascend/internal/domain/service"
	"ascend/internal/state"
	"ascend/internal/usecase"

	"github.com/pkg/errors"
)

// skillService implements the SkillUsecase interface.
type skillService struct {
	sessions  *state.Manager
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewSkillService is the constructor for skillService.
func NewSkillService(
	sessions *state.Manager,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.SkillUsecase {
	return &skillService{
		sessions:  sessions,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

func (srv *skillService) ListSkills(ctx context.Context, userID string) ([]usecase.SkillStatus, error) {
	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	st := session.Snapshot()

	skills := catalog.Skills()
	statuses := make([]usecase.SkillStatus, 0, len(skills))
	for _, skill := range skills {
		statuses = append(statuses, usecase.SkillStatus{
			Skill:    skill,
			Unlocked: st.Profile.HasUnlockedSkill(skill.ID),
		})
	}

	return statuses, nil
}

// UnlockSkill deducts the skill cost from XP and records the unlock in one
// atomic write. Validation happens before any state is touched, so a
// rejected purchase leaves nothing to roll back.
func (srv *skillService) UnlockSkill(ctx context.Context, userID string, skillID string) (*entity.UserProfile, error) {
	srv.logger.Info("Unlocking skill", "userID", userID, "skillID", skillID)

	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	skill, ok := catalog.SkillByID(skillID)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrSkillNotFound, "skill "+skillID)
	}

	snapshot := session.Snapshot()
	working := snapshot.Clone()

	if working.Profile.HasUnlockedSkill(skillID) {
		return nil, errors.Wrap(domainerrors.ErrSkillAlreadyUnlocked, "skill "+skillID)
	}
	if working.Profile.XP < skill.Cost {
		return nil, errors.Wrap(domainerrors.ErrInsufficientXP, "skill "+skillID)
	}

	previousRank := currentRankName(working.Profile.XP)
	working.Profile.XP = flooredXP(working.Profile.XP - skill.Cost)
	working.Profile.UnlockedSkillIDs = append(working.Profile.UnlockedSkillIDs, skillID)

	err = commitOptimistic(ctx, srv.txManager, session, snapshot, working, func(f repository.RepositoryFactory) error {
		return errors.Wrap(f.Profiles().Save(ctx, &working.Profile), "failed to save profile")
	})
	if err != nil {
		srv.logger.Error("skill unlock rolled back", "userID", userID, "skillID", skillID, "error", err)

		return nil, err
	}

	publishEvent(ctx, srv.publisher, srv.logger, &service.ProgressionEvent{
		Kind:    service.EventSkillUnlocked,
		UserID:  userID,
		SkillID: skillID,
		XPDelta: -skill.Cost,
		XPTotal: working.Profile.XP,
	})
	if rank := currentRankName(working.Profile.XP); rank != previousRank {
		publishEvent(ctx, srv.publisher, srv.logger, &service.ProgressionEvent{
			Kind:     service.EventRankChanged,
			UserID:   userID,
			XPTotal:  working.Profile.XP,
			RankName: rank,
		})
	}

	return &working.Profile, nil
}
