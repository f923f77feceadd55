package impl

import (
	"context"
	"log/slog"

	"ascend/internal/domain/catalog"
	"ascend/internal/domain/progression"
	"ascend/internal/state"
	"ascend/internal/usecase"
)

// progressionService implements the ProgressionUsecase interface. It never
// writes anything; rank and attributes are recomputed from the session state
// on every call.
type progressionService struct {
	sessions *state.Manager
	logger   *slog.Logger
}

// NewProgressionService is the constructor for progressionService.
func NewProgressionService(sessions *state.Manager, logger *slog.Logger) usecase.ProgressionUsecase {
	return &progressionService{
		sessions: sessions,
		logger:   logger,
	}
}

func (srv *progressionService) GetOverview(ctx context.Context, userID string) (*usecase.ProgressionOverview, error) {
	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	st := session.Snapshot()

	rank := progression.RankFor(st.Profile.XP, catalog.RankLadder())
	attributes := progression.Attributes(progression.AttributeInputs{
		XP:             st.Profile.XP,
		MaxXPThreshold: catalog.MaxRankThreshold(),
		Habits:         st.Habits,
		Goals:          st.Goals,
		SleepLogs:      st.SleepLogs,
	})

	return &usecase.ProgressionOverview{
		Profile:    &st.Profile,
		Rank:       rank,
		Attributes: attributes,
	}, nil
}
