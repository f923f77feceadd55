package impl

import (
	"context"
	"log/slog"
	"time"

	"ascend/internal/domain/catalog"
	"ascend/internal/domain/entity"
	domainerrors "ascend/internal/domain/errors"
	"ascend/internal/domain/progression"
	"ascend/internal/domain/repository"
	"ascend/internal/domain/service"
	"ascend/internal/state"
	"ascend/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultUserEraXPReward is the single reward a fresh user-created era
// starts with.
const defaultUserEraXPReward = 100

// eraService implements the EraUsecase interface.
type eraService struct {
	sessions  *state.Manager
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewEraService is the constructor for eraService.
func NewEraService(
	sessions *state.Manager,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.EraUsecase {
	return &eraService{
		sessions:  sessions,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// ListEras resolves the predefined catalog (overlays applied) followed by
// the user's own eras.
func (srv *eraService) ListEras(ctx context.Context, userID string) ([]usecase.ResolvedEra, error) {
	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	st := session.Snapshot()

	resolved := make([]usecase.ResolvedEra, 0, len(catalog.Eras())+len(st.UserEras))
	for _, template := range catalog.Eras() {
		era := template
		if overlay, ok := st.Profile.EraCustomizations[template.ID]; ok {
			era = overlay.Apply(template)
		}
		resolved = append(resolved, annotate(era, &st.Profile))
	}
	for _, era := range st.UserEras {
		resolved = append(resolved, annotate(era, &st.Profile))
	}

	return resolved, nil
}

// ResolveEra resolves one era: the user-created document wins, otherwise the
// predefined template with the user's overlay merged over it.
func (srv *eraService) ResolveEra(ctx context.Context, userID string, eraID string) (*usecase.ResolvedEra, error) {
	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	st := session.Snapshot()

	era, ok := resolveEra(&st, eraID)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrEraNotFound, "era "+eraID)
	}

	annotated := annotate(era, &st.Profile)

	return &annotated, nil
}

// UpdateEra edits an era. User-created eras take the fields directly;
// predefined eras get a minimal overlay merged into the profile document.
func (srv *eraService) UpdateEra(ctx context.Context, userID string, eraID string, input *usecase.UpdateEraInput) (*usecase.ResolvedEra, error) {
	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	snapshot := session.Snapshot()
	working := snapshot.Clone()

	if idx := findEra(working.UserEras, eraID); idx >= 0 {
		return srv.updateUserEra(ctx, userID, session, snapshot, working, idx, input)
	}

	template, ok := catalog.EraByID(eraID)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrEraNotFound, "era "+eraID)
	}

	return srv.updateOverlay(ctx, userID, session, snapshot, working, template, input)
}

// updateUserEra writes the fields straight into the live era document.
// Objectives and rewards are re-assigned stable IDs where missing.
func (srv *eraService) updateUserEra(
	ctx context.Context,
	userID string,
	session *state.Session,
	snapshot, working state.State,
	idx int,
	input *usecase.UpdateEraInput,
) (*usecase.ResolvedEra, error) {
	era := &working.UserEras[idx]

	if input.Name != nil {
		era.Name = *input.Name
	}
	if input.Description != nil {
		era.Description = *input.Description
	}
	if input.CompletionDescription != nil {
		era.CompletionDescription = *input.CompletionDescription
	}
	if input.CompletionConditionText != nil {
		era.CompletionConditionText = *input.CompletionConditionText
	}
	if input.SpecialMechanicsText != nil {
		era.SpecialMechanicsText = *input.SpecialMechanicsText
	}
	if input.XPRequiredToStart != nil {
		era.XPRequiredToStart = *input.XPRequiredToStart
	}
	if input.Icon != nil {
		era.Theme.Icon = *input.Icon
	}
	if input.ColorToken != nil {
		era.Theme.ColorToken = *input.ColorToken
	}
	if input.Objectives != nil {
		era.Objectives = withStableObjectiveIDs(input.Objectives)
	}
	if input.Rewards != nil {
		era.Rewards = withStableRewardIDs(input.Rewards)
	}

	err := commitOptimistic(ctx, srv.txManager, session, snapshot, working, func(f repository.RepositoryFactory) error {
		return errors.Wrap(f.Eras().Save(ctx, userID, era), "failed to save era")
	})
	if err != nil {
		srv.logger.Error("era update rolled back", "userID", userID, "eraID", era.ID, "error", err)

		return nil, err
	}

	annotated := annotate(working.UserEras[idx], &working.Profile)

	return &annotated, nil
}

// updateOverlay merges the overlayable fields into the customization record
// for a predefined era. Overrides that match the template base are pruned so
// the stored overlay stays minimal; objectives and rewards are never
// overlayable and are ignored here.
func (srv *eraService) updateOverlay(
	ctx context.Context,
	userID string,
	session *state.Session,
	snapshot, working state.State,
	template entity.Era,
	input *usecase.UpdateEraInput,
) (*usecase.ResolvedEra, error) {
	if working.Profile.EraCustomizations == nil {
		working.Profile.EraCustomizations = map[string]entity.EraOverlay{}
	}

	overlay := working.Profile.EraCustomizations[template.ID]

	overlay.Name = mergeOverride(overlay.Name, input.Name, template.Name)
	overlay.Description = mergeOverride(overlay.Description, input.Description, template.Description)
	overlay.CompletionDescription = mergeOverride(overlay.CompletionDescription, input.CompletionDescription, template.CompletionDescription)
	overlay.CompletionConditionText = mergeOverride(overlay.CompletionConditionText, input.CompletionConditionText, template.CompletionConditionText)
	overlay.SpecialMechanicsText = mergeOverride(overlay.SpecialMechanicsText, input.SpecialMechanicsText, template.SpecialMechanicsText)
	overlay.Icon = mergeOverride(overlay.Icon, input.Icon, template.Theme.Icon)
	overlay.ColorToken = mergeOverride(overlay.ColorToken, input.ColorToken, template.Theme.ColorToken)
	if input.XPRequiredToStart != nil {
		if *input.XPRequiredToStart == template.XPRequiredToStart {
			overlay.XPRequiredToStart = nil
		} else {
			v := *input.XPRequiredToStart
			overlay.XPRequiredToStart = &v
		}
	}

	if overlay.IsEmpty() {
		delete(working.Profile.EraCustomizations, template.ID)
	} else {
		working.Profile.EraCustomizations[template.ID] = overlay
	}
	working.Profile.UpdatedAt = srv.now()

	err := commitOptimistic(ctx, srv.txManager, session, snapshot, working, func(f repository.RepositoryFactory) error {
		return errors.Wrap(f.Profiles().Save(ctx, &working.Profile), "failed to save profile")
	})
	if err != nil {
		srv.logger.Error("era overlay update rolled back", "userID", userID, "eraID", template.ID, "error", err)

		return nil, err
	}

	annotated := annotate(overlay.Apply(template), &working.Profile)

	return &annotated, nil
}

// CreateUserEra allocates a fresh era document: no objectives, one default
// XP reward, no start gate.
func (srv *eraService) CreateUserEra(ctx context.Context, userID string, input *usecase.CreateUserEraInput) (*usecase.ResolvedEra, error) {
	srv.logger.Info("Creating user era", "userID", userID, "name", input.Name)

	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	era := entity.Era{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Objectives:  []entity.EraObjective{},
		Rewards: []entity.EraReward{
			{
				ID:          uuid.NewString(),
				Kind:        entity.RewardKindXP,
				Description: "Recompensa de la era",
				Value:       defaultUserEraXPReward,
			},
		},
		XPRequiredToStart: 0,
		IsUserCreated:     true,
		CreatedAt:         srv.now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.Eras().Create(ctx, userID, &era), "failed to create era")
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteWriteFailed.WithDetails(err.Error()), "failed to create era")
	}

	working := session.Snapshot()
	working.UserEras = append(working.UserEras, era)
	session.Replace(working)

	annotated := annotate(era, &working.Profile)

	return &annotated, nil
}

// DeleteUserEra removes a user-created era; deleting the current era also
// clears the profile's current-era pointer in the same atomic write.
func (srv *eraService) DeleteUserEra(ctx context.Context, userID string, eraID string) error {
	srv.logger.Info("Deleting user era", "userID", userID, "eraID", eraID)

	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return err
	}

	snapshot := session.Snapshot()
	working := snapshot.Clone()

	idx := findEra(working.UserEras, eraID)
	if idx < 0 {
		if _, ok := catalog.EraByID(eraID); ok {
			return errors.Wrap(domainerrors.ErrEraNotUserCreated, "era "+eraID)
		}

		return errors.Wrap(domainerrors.ErrEraNotFound, "era "+eraID)
	}

	working.UserEras = append(working.UserEras[:idx], working.UserEras[idx+1:]...)

	wasCurrent := working.Profile.CurrentEraID == eraID
	if wasCurrent {
		working.Profile.CurrentEraID = ""
		working.Profile.UpdatedAt = srv.now()
	}

	err = commitOptimistic(ctx, srv.txManager, session, snapshot, working, func(f repository.RepositoryFactory) error {
		if err := f.Eras().Delete(ctx, userID, eraID); err != nil {
			return errors.Wrap(err, "failed to delete era")
		}
		if wasCurrent {
			return errors.Wrap(f.Profiles().Save(ctx, &working.Profile), "failed to save profile")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("era delete rolled back", "userID", userID, "eraID", eraID, "error", err)

		return err
	}

	return nil
}

// StartEra makes an era current. Completed eras can never restart, the
// current era cannot start again, and the resolved XP gate must be met.
func (srv *eraService) StartEra(ctx context.Context, userID string, eraID string) (*usecase.ResolvedEra, error) {
	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	snapshot := session.Snapshot()
	working := snapshot.Clone()

	era, ok := resolveEra(&working, eraID)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrEraNotFound, "era "+eraID)
	}

	switch {
	case working.Profile.HasCompletedEra(eraID):
		return nil, errors.Wrap(domainerrors.ErrEraAlreadyCompleted, "era "+eraID)
	case working.Profile.CurrentEraID == eraID:
		return nil, errors.Wrap(domainerrors.ErrEraAlreadyCurrent, "era "+eraID)
	case working.Profile.XP < era.XPRequiredToStart:
		return nil, errors.Wrap(domainerrors.ErrEraStartLocked, "era "+eraID)
	}

	now := srv.now()
	working.Profile.CurrentEraID = eraID
	working.Profile.UpdatedAt = now

	userEraIdx := findEra(working.UserEras, eraID)
	if userEraIdx >= 0 {
		working.UserEras[userEraIdx].StartedAt = &now
	} else {
		if working.Profile.EraCustomizations == nil {
			working.Profile.EraCustomizations = map[string]entity.EraOverlay{}
		}
		overlay := working.Profile.EraCustomizations[eraID]
		overlay.StartedAt = &now
		working.Profile.EraCustomizations[eraID] = overlay
	}

	err = commitOptimistic(ctx, srv.txManager, session, snapshot, working, func(f repository.RepositoryFactory) error {
		if userEraIdx >= 0 {
			if err := f.Eras().Save(ctx, userID, &working.UserEras[userEraIdx]); err != nil {
				return errors.Wrap(err, "failed to save era")
			}
		}

		return errors.Wrap(f.Profiles().Save(ctx, &working.Profile), "failed to save profile")
	})
	if err != nil {
		srv.logger.Error("era start rolled back", "userID", userID, "eraID", eraID, "error", err)

		return nil, err
	}

	publishEvent(ctx, srv.publisher, srv.logger, &service.ProgressionEvent{
		Kind:    service.EventEraStarted,
		UserID:  userID,
		EraID:   eraID,
		XPTotal: working.Profile.XP,
	})

	resolved, _ := resolveEra(&working, eraID)
	annotated := annotate(resolved, &working.Profile)

	return &annotated, nil
}

// CompleteCurrentEra finishes the era in progress: XP rewards are credited,
// the era joins completedEraIds and no era remains current. There is no
// auto-chaining into nextEraId.
func (srv *eraService) CompleteCurrentEra(ctx context.Context, userID string) (*usecase.ResolvedEra, error) {
	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	snapshot := session.Snapshot()
	working := snapshot.Clone()

	eraID := working.Profile.CurrentEraID
	if eraID == "" {
		return nil, errors.Wrap(domainerrors.ErrNoCurrentEra, "no era in progress")
	}

	era, ok := resolveEra(&working, eraID)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrEraNotFound, "era "+eraID)
	}

	now := srv.now()
	reward := era.XPReward()
	previousRank := currentRankName(working.Profile.XP)

	working.Profile.XP = flooredXP(working.Profile.XP + reward)
	working.Profile.CompletedEraIDs = append(working.Profile.CompletedEraIDs, eraID)
	working.Profile.CurrentEraID = ""
	working.Profile.UpdatedAt = now

	userEraIdx := findEra(working.UserEras, eraID)
	if userEraIdx >= 0 {
		working.UserEras[userEraIdx].CompletedAt = &now
	} else {
		if working.Profile.EraCustomizations == nil {
			working.Profile.EraCustomizations = map[string]entity.EraOverlay{}
		}
		overlay := working.Profile.EraCustomizations[eraID]
		overlay.CompletedAt = &now
		working.Profile.EraCustomizations[eraID] = overlay
	}

	err = commitOptimistic(ctx, srv.txManager, session, snapshot, working, func(f repository.RepositoryFactory) error {
		if userEraIdx >= 0 {
			if err := f.Eras().Save(ctx, userID, &working.UserEras[userEraIdx]); err != nil {
				return errors.Wrap(err, "failed to save era")
			}
		}

		return errors.Wrap(f.Profiles().Save(ctx, &working.Profile), "failed to save profile")
	})
	if err != nil {
		srv.logger.Error("era completion rolled back", "userID", userID, "eraID", eraID, "error", err)

		return nil, err
	}

	publishEvent(ctx, srv.publisher, srv.logger, &service.ProgressionEvent{
		Kind:    service.EventEraCompleted,
		UserID:  userID,
		EraID:   eraID,
		XPDelta: reward,
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

	resolved, _ := resolveEra(&working, eraID)
	annotated := annotate(resolved, &working.Profile)

	return &annotated, nil
}

// resolveEra looks the era up in session state: user-created documents win,
// then the predefined template with the profile's overlay applied.
func resolveEra(st *state.State, eraID string) (entity.Era, bool) {
	if idx := findEra(st.UserEras, eraID); idx >= 0 {
		return state.CloneEra(st.UserEras[idx]), true
	}

	template, ok := catalog.EraByID(eraID)
	if !ok {
		return entity.Era{}, false
	}

	if overlay, found := st.Profile.EraCustomizations[eraID]; found {
		return overlay.Apply(template), true
	}

	return template, true
}

func annotate(era entity.Era, profile *entity.UserProfile) usecase.ResolvedEra {
	return usecase.ResolvedEra{
		Era:         era,
		Status:      progression.StatusOf(&era, profile),
		CanStart:    progression.CanStart(&era, profile),
		CanComplete: progression.CanComplete(&era, profile),
	}
}

func findEra(eras []entity.Era, eraID string) int {
	for i := range eras {
		if eras[i].ID == eraID {
			return i
		}
	}

	return -1
}

// withStableObjectiveIDs assigns an ID to every objective that lacks one so
// later edits can address them.
func withStableObjectiveIDs(objectives []entity.EraObjective) []entity.EraObjective {
	out := make([]entity.EraObjective, len(objectives))
	copy(out, objectives)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}

	return out
}

func withStableRewardIDs(rewards []entity.EraReward) []entity.EraReward {
	out := make([]entity.EraReward, len(rewards))
	copy(out, rewards)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}

	return out
}

// mergeOverride folds one incoming partial field into an overlay override.
// A nil input leaves the override alone; an input equal to the template base
// (or empty) prunes it.
func mergeOverride(current, input *string, base string) *string {
	if input == nil {
		return current
	}
	if *input == "" || *input == base {
		return nil
	}
	v := *input

	return &v
}
