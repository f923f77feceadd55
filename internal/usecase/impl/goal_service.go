package impl

import (
	"context"
	"log/slog"
	"time"

	"ascend/internal/domain/entity"
	domainerrors "ascend/internal/domain/errors"
	"ascend/internal/domain/repository"
	"ascend/internal/domain/service"
	"ascend/internal/state"
	"ascend/internal/usecase"

	"github.com/pkg/errors"
)

// goalXPReward is the fixed reward stamped on every goal at creation.
const goalXPReward = 50

// goalService implements the GoalUsecase interface.
type goalService struct {
	sessions  *state.Manager
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewGoalService is the constructor for goalService.
func NewGoalService(
	sessions *state.Manager,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.GoalUsecase {
	return &goalService{
		sessions:  sessions,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// ListGoals returns the user's goals from session state.
func (srv *goalService) ListGoals(ctx context.Context, userID string) ([]entity.Goal, error) {
	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	return session.Snapshot().Goals, nil
}

// CreateGoal persists a new SMART goal with its reward fixed at creation.
func (srv *goalService) CreateGoal(ctx context.Context, userID string, input *usecase.CreateGoalInput) (*entity.Goal, error) {
	srv.logger.Info("Creating goal", "userID", userID, "title", input.Title)

	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	goal := entity.Goal{
		Title:       input.Title,
		Description: input.Description,
		Measurable:  input.Measurable,
		Achievable:  input.Achievable,
		Relevant:    input.Relevant,
		TimeBound:   input.TimeBound,
		XP:          goalXPReward,
		CreatedAt:   srv.now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.Goals().Create(ctx, userID, &goal), "failed to create goal")
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteWriteFailed.WithDetails(err.Error()), "failed to create goal")
	}

	working := session.Snapshot()
	working.Goals = append(working.Goals, goal)
	session.Replace(working)

	return &goal, nil
}

// ToggleGoal flips a goal's completion, applying or reversing its XP exactly
// once per toggle with the optimistic rollback contract.
func (srv *goalService) ToggleGoal(ctx context.Context, userID string, goalID string) (*entity.Goal, error) {
	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	snapshot := session.Snapshot()
	working := snapshot.Clone()

	idx := findGoal(working.Goals, goalID)
	if idx < 0 {
		return nil, errors.Wrap(domainerrors.ErrGoalNotFound, "goal "+goalID)
	}

	goal := &working.Goals[idx]

	var xpDelta int
	if goal.IsCompleted {
		goal.IsCompleted = false
		xpDelta = -goal.XP
	} else {
		goal.IsCompleted = true
		xpDelta = goal.XP
	}

	previousRank := currentRankName(snapshot.Profile.XP)
	working.Profile.XP = flooredXP(working.Profile.XP + xpDelta)
	working.Profile.UpdatedAt = srv.now()

	err = commitOptimistic(ctx, srv.txManager, session, snapshot, working, func(f repository.RepositoryFactory) error {
		if err := f.Goals().Save(ctx, userID, goal); err != nil {
			return errors.Wrap(err, "failed to save goal")
		}

		return errors.Wrap(f.Profiles().Save(ctx, &working.Profile), "failed to save profile")
	})
	if err != nil {
		srv.logger.Error("goal toggle rolled back", "userID", userID, "goalID", goalID, "error", err)

		return nil, err
	}

	publishEvent(ctx, srv.publisher, srv.logger, &service.ProgressionEvent{
		Kind:    service.EventXPAdjusted,
		UserID:  userID,
		XPDelta: xpDelta,
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

	toggled := working.Goals[idx]

	return &toggled, nil
}

// DeleteGoal removes a goal without touching XP.
func (srv *goalService) DeleteGoal(ctx context.Context, userID string, goalID string) error {
	srv.logger.Info("Deleting goal", "userID", userID, "goalID", goalID)

	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return err
	}

	snapshot := session.Snapshot()
	working := snapshot.Clone()

	idx := findGoal(working.Goals, goalID)
	if idx < 0 {
		return errors.Wrap(domainerrors.ErrGoalNotFound, "goal "+goalID)
	}

	working.Goals = append(working.Goals[:idx], working.Goals[idx+1:]...)

	err = commitOptimistic(ctx, srv.txManager, session, snapshot, working, func(f repository.RepositoryFactory) error {
		return errors.Wrap(f.Goals().Delete(ctx, userID, goalID), "failed to delete goal")
	})
	if err != nil {
		srv.logger.Error("goal delete rolled back", "userID", userID, "goalID", goalID, "error", err)

		return err
	}

	return nil
}

func findGoal(goals []entity.Goal, goalID string) int {
	for i := range goals {
		if goals[i].ID == goalID {
			return i
		}
	}

	return -1
}
