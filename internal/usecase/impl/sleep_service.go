package impl

import (
	"context"
	"log/slog"
	"time"

	domainerrors "ascend/internal/domain/errors"
	"ascend/internal/domain/entity"
	"ascend/internal/domain/repository"
	"ascend/internal/state"
	"ascend/internal/usecase"

	"github.com/pkg/errors"
)

// sleepService implements the SleepUsecase interface.
type sleepService struct {
	sessions  *state.Manager
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewSleepService is the constructor for sleepService.
func NewSleepService(
	sessions *state.Manager,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SleepUsecase {
	return &sleepService{
		sessions:  sessions,
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

// ListSleepLogs returns the user's sleep logs from session state.
func (srv *sleepService) ListSleepLogs(ctx context.Context, userID string) ([]entity.SleepLog, error) {
	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	return session.Snapshot().SleepLogs, nil
}

// CreateSleepLog records one night. The duration is derived from the clock
// times, with the wake time rolled to the next day when it is not after the
// bed time.
func (srv *sleepService) CreateSleepLog(ctx context.Context, userID string, input *usecase.CreateSleepLogInput) (*entity.SleepLog, error) {
	srv.logger.Info("Creating sleep log", "userID", userID, "date", input.Date)

	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	quality := entity.SleepQuality(input.Quality)
	if !quality.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid sleep quality "+input.Quality)
	}

	duration, err := SleepDuration(input.TimeToBed, input.TimeWokeUp)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "invalid sleep times")
	}

	log := entity.SleepLog{
		Date:               input.Date,
		TimeToBed:          input.TimeToBed,
		TimeWokeUp:         input.TimeWokeUp,
		SleepDurationHours: duration,
		Quality:            quality,
		Notes:              input.Notes,
		CreatedAt:          srv.now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.SleepLogs().Create(ctx, userID, &log), "failed to create sleep log")
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteWriteFailed.WithDetails(err.Error()), "failed to create sleep log")
	}

	working := session.Snapshot()
	working.SleepLogs = append(working.SleepLogs, log)
	session.Replace(working)

	return &log, nil
}

// DeleteSleepLog removes a log; the only mutation logs support.
func (srv *sleepService) DeleteSleepLog(ctx context.Context, userID string, logID string) error {
	srv.logger.Info("Deleting sleep log", "userID", userID, "logID", logID)

	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return err
	}

	snapshot := session.Snapshot()
	working := snapshot.Clone()

	idx := -1
	for i := range working.SleepLogs {
		if working.SleepLogs[i].ID == logID {
			idx = i

			break
		}
	}
	if idx < 0 {
		return errors.Wrap(domainerrors.ErrSleepLogNotFound, "sleep log "+logID)
	}

	working.SleepLogs = append(working.SleepLogs[:idx], working.SleepLogs[idx+1:]...)

	err = commitOptimistic(ctx, srv.txManager, session, snapshot, working, func(f repository.RepositoryFactory) error {
		return errors.Wrap(f.SleepLogs().Delete(ctx, userID, logID), "failed to delete sleep log")
	})
	if err != nil {
		srv.logger.Error("sleep log delete rolled back", "userID", userID, "logID", logID, "error", err)

		return err
	}

	return nil
}

// SleepDuration computes hours slept from two HH:MM local clock times,
// rolling the wake time to the next day when it is at or before bed time.
func SleepDuration(timeToBed, timeWokeUp string) (float64, error) {
	bed, err := time.Parse("15:04", timeToBed)
	if err != nil {
		return 0, errors.Wrap(err, "parse time to bed")
	}

	wake, err := time.Parse("15:04", timeWokeUp)
	if err != nil {
		return 0, errors.Wrap(err, "parse time woke up")
	}

	diff := wake.Sub(bed)
	if diff <= 0 {
		diff += 24 * time.Hour
	}

	return diff.Hours(), nil
}
