package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainerrors "ascend/internal/domain/errors"
	"ascend/internal/domain/service"
	"ascend/internal/state"
	"ascend/internal/usecase"

	"github.com/pkg/errors"
)

// insightService implements the InsightUsecase interface. It only reads
// session state and delegates to the text service; a failure here never
// touches progression.
type insightService struct {
	sessions *state.Manager
	texts    service.TextService
	logger   *slog.Logger
}

// NewInsightService is the constructor for insightService.
func NewInsightService(sessions *state.Manager, texts service.TextService, logger *slog.Logger) usecase.InsightUsecase {
	return &insightService{
		sessions: sessions,
		texts:    texts,
		logger:   logger,
	}
}

func (srv *insightService) SummarizeHabits(ctx context.Context, userID string, preferences string) (*service.HabitSummary, error) {
	session, err := getSession(srv.sessions, userID)
	if err != nil {
		return nil, err
	}

	st := session.Snapshot()

	summary, err := srv.texts.SummarizeHabits(ctx, habitReport(&st), preferences)
	if err != nil {
		srv.logger.Warn("habit summarization failed", "userID", userID, "error", err)

		return nil, errors.Wrap(domainerrors.ErrAIServiceUnavailable.WithDetails(err.Error()), "failed to summarize habits")
	}

	return summary, nil
}

func (srv *insightService) GetQuote(ctx context.Context, category string) (string, error) {
	if !service.ValidQuoteCategory(category) {
		return "", errors.Wrap(domainerrors.ErrUnknownQuoteCategory, "category "+category)
	}

	quote, err := srv.texts.GenerateQuote(ctx, category)
	if err != nil {
		srv.logger.Warn("quote generation failed", "category", category, "error", err)

		return "", errors.Wrap(domainerrors.ErrAIServiceUnavailable.WithDetails(err.Error()), "failed to generate quote")
	}

	return quote, nil
}

// habitReport renders the session's habits as a plain-text report for the
// text service prompt.
func habitReport(st *state.State) string {
	if len(st.Habits) == 0 {
		return "Sin hábitos registrados."
	}

	var b strings.Builder
	for _, h := range st.Habits {
		status := "pendiente"
		if h.Completed {
			status = "completado"
		}
		fmt.Fprintf(&b, "- %s (%s): %s, racha de %d días\n", h.Name, h.Category, status, h.Streak)
	}

	return b.String()
}
