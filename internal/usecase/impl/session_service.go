package impl

import (
	"context"
	"log/slog"
	"time"

	"ascend/internal/domain/entity"
	"ascend/internal/domain/repository"
	"ascend/internal/state"
	"ascend/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessions  *state.Manager
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	sessions *state.Manager,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		sessions:  sessions,
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

// SignIn loads or initializes the full state for a verified identity. A
// failed collection load degrades that collection to empty rather than
// failing the sign-in; the failure is kept as a diagnostic on the session.
func (srv *sessionService) SignIn(ctx context.Context, identity *entity.Identity) (*usecase.SignInResult, error) {
	srv.logger.Info("Signing in user", "userID", identity.ID)

	var loaded state.State
	var loadFailures []string
	newUser := false

	profileErr := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profiles := repoFactory.Profiles()

		profile, err := profiles.Find(ctx, identity.ID)
		if err != nil {
			if !errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(err, "failed to load profile")
			}

			fresh := defaultProfile(identity, srv.now())
			if err := profiles.Save(ctx, &fresh); err != nil {
				return errors.Wrap(err, "failed to create profile")
			}
			profile = &fresh
			newUser = true
		}

		loaded.Profile = *profile

		return nil
	})
	if profileErr != nil {
		// Degraded sign-in: the app stays usable on an in-memory default
		// profile that is not persisted until the next successful write.
		srv.logger.Error("profile load failed, using defaults", "userID", identity.ID, "error", profileErr)
		loaded.Profile = defaultProfile(identity, srv.now())
		loadFailures = append(loadFailures, "profile: "+profileErr.Error())
	}

	loadFailures = append(loadFailures, srv.loadCollections(ctx, identity.ID, &loaded)...)

	session := state.NewSession(identity.ID, loaded, loadFailures)
	srv.sessions.Put(session)

	snap := session.Snapshot()
	srv.logger.Debug("user signed in",
		"userID", identity.ID,
		"newUser", newUser,
		"loadFailures", len(loadFailures),
	)

	return &usecase.SignInResult{
		Profile:      &snap.Profile,
		NewUser:      newUser,
		LoadFailures: loadFailures,
	}, nil
}

// SignOut drops the session, resetting all local state for the identity.
func (srv *sessionService) SignOut(ctx context.Context, userID string) error {
	srv.logger.Info("Signing out user", "userID", userID)

	srv.sessions.Drop(userID)

	return nil
}

// loadCollections fills the state's collections, degrading each one to empty
// on failure and reporting the failure string.
func (srv *sessionService) loadCollections(ctx context.Context, userID string, loaded *state.State) []string {
	var failures []string

	if err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		habits, err := f.Habits().List(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list habits")
		}
		loaded.Habits = habits

		return nil
	}); err != nil {
		failures = append(failures, "habits: "+err.Error())
	}

	if err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		goals, err := f.Goals().List(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list goals")
		}
		loaded.Goals = goals

		return nil
	}); err != nil {
		failures = append(failures, "goals: "+err.Error())
	}

	if err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		logs, err := f.SleepLogs().List(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list sleep logs")
		}
		loaded.SleepLogs = logs

		return nil
	}); err != nil {
		failures = append(failures, "sleepLogs: "+err.Error())
	}

	if err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		eras, err := f.Eras().List(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list user eras")
		}
		loaded.UserEras = eras

		return nil
	}); err != nil {
		failures = append(failures, "userEras: "+err.Error())
	}

	return failures
}

// defaultProfile is the state of a brand-new user: zero XP, no era, nothing
// unlocked.
func defaultProfile(identity *entity.Identity, now time.Time) entity.UserProfile {
	return entity.UserProfile{
		ID:                identity.ID,
		DisplayName:       identity.DisplayName,
		Email:             identity.Email,
		AvatarRef:         identity.PhotoRef,
		XP:                0,
		CompletedEraIDs:   []string{},
		EraCustomizations: map[string]entity.EraOverlay{},
		UnlockedSkillIDs:  []string{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
