package impl

import (
	"context"
	"log/slog"
	"time"

	"ascend/internal/domain/catalog"
	domainerrors "ascend/internal/domain/errors"
	"ascend/internal/domain/entity"
	"ascend/internal/domain/repository"
	"ascend/internal/domain/service"
	"ascend/internal/state"
	"ascend/internal/usecase"

	"github.com/pkg/errors"
)

// habitService implements the HabitUsecase interface.
type habitService struct {
	sessions  *state.Manager
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewHabitService is the constructor for habitService.
func NewHabitService(
	sessions *state.Manager,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.HabitUsecase {
	return &habitService{
		sessions:  sessions,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// ListHabits returns the user's habits from session state.
func (srv *habitService) ListHabits(ctx context.Context, userID string) ([]entity.Habit, error) {
	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	return session.Snapshot().Habits, nil
}

// CreateHabit persists a new habit with its reward fixed from the category.
func (srv *habitService) CreateHabit(ctx context.Context, userID string, input *usecase.CreateHabitInput) (*entity.Habit, error) {
	srv.logger.Info("Creating habit", "userID", userID, "category", input.Category)

	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	xp, ok := catalog.HabitCategoryXP(input.Category)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrUnknownHabitCategory, "unknown category "+input.Category)
	}

	habit := entity.Habit{
		Name:      input.Name,
		Category:  input.Category,
		XP:        xp,
		CreatedAt: srv.now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.Habits().Create(ctx, userID, &habit), "failed to create habit")
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteWriteFailed.WithDetails(err.Error()), "failed to create habit")
	}

	working := session.Snapshot()
	working.Habits = append(working.Habits, habit)
	session.Replace(working)

	return &habit, nil
}

// ToggleHabit flips a habit's completion, applying the streak rules and the
// XP delta optimistically and rolling both back if the batched write fails.
func (srv *habitService) ToggleHabit(ctx context.Context, userID string, habitID string) (*entity.Habit, error) {
	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	snapshot := session.Snapshot()
	working := snapshot.Clone()

	idx := findHabit(working.Habits, habitID)
	if idx < 0 {
		return nil, errors.Wrap(domainerrors.ErrHabitNotFound, "habit "+habitID)
	}

	habit := &working.Habits[idx]
	today := srv.now().Format(time.DateOnly)

	var xpDelta int
	if habit.Completed {
		habit.Completed = false
		if habit.LastCompletedDate == today && habit.Streak > 0 {
			habit.Streak--
		}
		// LastCompletedDate intentionally stays at today: the day already
		// counted once, so re-completing the same day does not increment
		// the streak again.
		xpDelta = -habit.XP
	} else {
		habit.Completed = true
		if habit.LastCompletedDate != today {
			habit.Streak++
		}
		habit.LastCompletedDate = today
		xpDelta = habit.XP
	}

	previousRank := currentRankName(snapshot.Profile.XP)
	working.Profile.XP = flooredXP(working.Profile.XP + xpDelta)
	working.Profile.UpdatedAt = srv.now()

	err = commitOptimistic(ctx, srv.txManager, session, snapshot, working, func(f repository.RepositoryFactory) error {
		if err := f.Habits().Save(ctx, userID, habit); err != nil {
			return errors.Wrap(err, "failed to save habit")
		}

		return errors.Wrap(f.Profiles().Save(ctx, &working.Profile), "failed to save profile")
	})
	if err != nil {
		srv.logger.Error("habit toggle rolled back", "userID", userID, "habitID", habitID, "error", err)

		return nil, err
	}

	srv.publishProgress(ctx, userID, xpDelta, working.Profile.XP, previousRank)

	toggled := working.Habits[idx]

	return &toggled, nil
}

// DeleteHabit removes a habit. XP already earned stays earned unless the
// habit is deleted while completed, in which case its reward is revoked in
// the same batch.
func (srv *habitService) DeleteHabit(ctx context.Context, userID string, habitID string) error {
	srv.logger.Info("Deleting habit", "userID", userID, "habitID", habitID)

	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return err
	}

	snapshot := session.Snapshot()
	working := snapshot.Clone()

	idx := findHabit(working.Habits, habitID)
	if idx < 0 {
		return errors.Wrap(domainerrors.ErrHabitNotFound, "habit "+habitID)
	}

	var xpDelta int
	if working.Habits[idx].Completed {
		xpDelta = -working.Habits[idx].XP
	}

	previousRank := currentRankName(snapshot.Profile.XP)
	working.Habits = append(working.Habits[:idx], working.Habits[idx+1:]...)
	working.Profile.XP = flooredXP(working.Profile.XP + xpDelta)
	working.Profile.UpdatedAt = srv.now()

	err = commitOptimistic(ctx, srv.txManager, session, snapshot, working, func(f repository.RepositoryFactory) error {
		if err := f.Habits().Delete(ctx, userID, habitID); err != nil {
			return errors.Wrap(err, "failed to delete habit")
		}

		return errors.Wrap(f.Profiles().Save(ctx, &working.Profile), "failed to save profile")
	})
	if err != nil {
		srv.logger.Error("habit delete rolled back", "userID", userID, "habitID", habitID, "error", err)

		return err
	}

	if xpDelta != 0 {
		srv.publishProgress(ctx, userID, xpDelta, working.Profile.XP, previousRank)
	}

	return nil
}

func (srv *habitService) publishProgress(ctx context.Context, userID string, xpDelta, xpTotal int, previousRank string) {
	publishEvent(ctx, srv.publisher, srv.logger, &service.ProgressionEvent{
		Kind:    service.EventXPAdjusted,
		UserID:  userID,
		XPDelta: xpDelta,
		XPTotal: xpTotal,
	})

	if rank := currentRankName(xpTotal); rank != previousRank {
		publishEvent(ctx, srv.publisher, srv.logger, &service.ProgressionEvent{
			Kind:     service.EventRankChanged,
			UserID:   userID,
			XPTotal:  xpTotal,
			RankName: rank,
		})
	}
}

func findHabit(habits []entity.Habit, habitID string) int {
	for i := range habits {
		if habits[i].ID == habitID {
			return i
		}
	}

	return -1
}
