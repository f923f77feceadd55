// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "ascend/internal/delivery/context"
	"ascend/internal/domain/catalog"
	domainerrors "ascend/internal/domain/errors"
	"ascend/internal/domain/progression"
	"ascend/internal/domain/repository"
	"ascend/internal/domain/service"
	"ascend/internal/state"

	"github.com/pkg/errors"
)

// commitOptimistic is the shared reconciling-mutator step: the optimistically
// computed working state is swapped in before the remote write is issued, and
// the snapshot is restored verbatim if the write fails. The write itself is
// one atomic batch; partial remote application is impossible.
func commitOptimistic(
	ctx context.Context,
	txManager repository.TransactionManager,
	session *state.Session,
	snapshot state.State,
	working state.State,
	write func(repository.RepositoryFactory) error,
) error {
	session.Replace(working)

	if err := txManager.Execute(ctx, write); err != nil {
		session.Restore(snapshot)

		return errors.Wrap(domainerrors.ErrRemoteWriteFailed.WithDetails(err.Error()), "remote write failed")
	}

	return nil
}

// publishEvent sends a progression event and only logs on failure; events
// are advisory and must never fail the mutation that produced them.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.ProgressionEvent) {
	if publisher == nil {
		return
	}

	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	if err := publisher.PublishProgressionEvent(ctx, event); err != nil {
		logger.Warn("failed to publish progression event",
			slog.String("kind", event.Kind),
			slog.String("userID", event.UserID),
			slog.Any("error", err),
		)
	}
}

// flooredXP keeps the XP total non-negative after a reversal.
func flooredXP(xp int) int {
	if xp < 0 {
		return 0
	}

	return xp
}

// currentRankName resolves the rank name for an XP total against the static
// ladder, used to detect rank transitions worth announcing.
func currentRankName(xp int) string {
	return progression.RankFor(xp, catalog.RankLadder()).Current.Name
}

// getSession maps the registry lookup onto the domain error taxonomy.
func getSession(sessions *state.Manager, userID string) (*state.Session, error) {
	session, err := sessions.Get(userID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionNotFound, "no active session")
	}

	return session, nil
}
