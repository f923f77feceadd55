package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"ascend/internal/domain/entity"
	"ascend/internal/domain/repository"
	"ascend/internal/domain/service"
	"ascend/internal/state"
)

// memStore is an in-memory stand-in for the document store. Writes issued
// inside Execute are staged and applied only when the whole batch succeeds,
// mirroring the all-or-nothing commit of the real transaction manager.
type memStore struct {
	mu        sync.Mutex
	profiles  map[string]entity.UserProfile
	habits    map[string][]entity.Habit
	goals     map[string][]entity.Goal
	sleepLogs map[string][]entity.SleepLog
	eras      map[string][]entity.Era

	writeErr error            // injected: every staged write fails
	readErr  map[string]error // injected per collection: "profile", "habits", ...

	nextID int
}

func newMemStore() *memStore {
	return &memStore{
		profiles:  map[string]entity.UserProfile{},
		habits:    map[string][]entity.Habit{},
		goals:     map[string][]entity.Goal{},
		sleepLogs: map[string][]entity.SleepLog{},
		eras:      map[string][]entity.Era{},
		readErr:   map[string]error{},
	}
}

func (s *memStore) allocID() string {
	s.nextID++

	return fmt.Sprintf("doc-%04d", s.nextID)
}

// memTxManager implements repository.TransactionManager over memStore.
type memTxManager struct {
	store *memStore
}

func (m *memTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	factory := &memFactory{store: m.store}
	if err := fn(factory); err != nil {
		return err
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	for _, apply := range factory.staged {
		apply()
	}

	return nil
}

// memFactory stages writes as closures; reads hit the store directly.
type memFactory struct {
	store  *memStore
	staged []func()
}

func (f *memFactory) Profiles() repository.ProfileRepository   { return &memProfileRepo{f} }
func (f *memFactory) Habits() repository.HabitRepository       { return &memHabitRepo{f} }
func (f *memFactory) Goals() repository.GoalRepository         { return &memGoalRepo{f} }
func (f *memFactory) SleepLogs() repository.SleepLogRepository { return &memSleepLogRepo{f} }
func (f *memFactory) Eras() repository.EraRepository           { return &memEraRepo{f} }

func (f *memFactory) stage(apply func()) error {
	if f.store.writeErr != nil {
		return f.store.writeErr
	}
	f.staged = append(f.staged, apply)

	return nil
}

type memProfileRepo struct{ f *memFactory }

func (r *memProfileRepo) Find(ctx context.Context, userID string) (*entity.UserProfile, error) {
	if err := r.f.store.readErr["profile"]; err != nil {
		return nil, err
	}

	r.f.store.mu.Lock()
	defer r.f.store.mu.Unlock()
	profile, ok := r.f.store.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return &profile, nil
}

func (r *memProfileRepo) Save(ctx context.Context, profile *entity.UserProfile) error {
	p := *profile

	return r.f.stage(func() { r.f.store.profiles[p.ID] = p })
}

type memHabitRepo struct{ f *memFactory }

func (r *memHabitRepo) List(ctx context.Context, userID string) ([]entity.Habit, error) {
	if err := r.f.store.readErr["habits"]; err != nil {
		return nil, err
	}

	r.f.store.mu.Lock()
	defer r.f.store.mu.Unlock()

	return append([]entity.Habit(nil), r.f.store.habits[userID]...), nil
}

func (r *memHabitRepo) Create(ctx context.Context, userID string, habit *entity.Habit) error {
	habit.ID = r.f.store.allocID()
	h := *habit

	return r.f.stage(func() { r.f.store.habits[userID] = append(r.f.store.habits[userID], h) })
}

func (r *memHabitRepo) Save(ctx context.Context, userID string, habit *entity.Habit) error {
	h := *habit

	return r.f.stage(func() {
		for i := range r.f.store.habits[userID] {
			if r.f.store.habits[userID][i].ID == h.ID {
				r.f.store.habits[userID][i] = h

				return
			}
		}
	})
}

func (r *memHabitRepo) Delete(ctx context.Context, userID string, habitID string) error {
	return r.f.stage(func() {
		habits := r.f.store.habits[userID]
		for i := range habits {
			if habits[i].ID == habitID {
				r.f.store.habits[userID] = append(habits[:i], habits[i+1:]...)

				return
			}
		}
	})
}

type memGoalRepo struct{ f *memFactory }

func (r *memGoalRepo) List(ctx context.Context, userID string) ([]entity.Goal, error) {
	if err := r.f.store.readErr["goals"]; err != nil {
		return nil, err
	}

	r.f.store.mu.Lock()
	defer r.f.store.mu.Unlock()

	return append([]entity.Goal(nil), r.f.store.goals[userID]...), nil
}

func (r *memGoalRepo) Create(ctx context.Context, userID string, goal *entity.Goal) error {
	goal.ID = r.f.store.allocID()
	g := *goal

	return r.f.stage(func() { r.f.store.goals[userID] = append(r.f.store.goals[userID], g) })
}

func (r *memGoalRepo) Save(ctx context.Context, userID string, goal *entity.Goal) error {
	g := *goal

	return r.f.stage(func() {
		for i := range r.f.store.goals[userID] {
			if r.f.store.goals[userID][i].ID == g.ID {
				r.f.store.goals[userID][i] = g

				return
			}
		}
	})
}

func (r *memGoalRepo) Delete(ctx context.Context, userID string, goalID string) error {
	return r.f.stage(func() {
		goals := r.f.store.goals[userID]
		for i := range goals {
			if goals[i].ID == goalID {
				r.f.store.goals[userID] = append(goals[:i], goals[i+1:]...)

				return
			}
		}
	})
}

type memSleepLogRepo struct{ f *memFactory }

func (r *memSleepLogRepo) List(ctx context.Context, userID string) ([]entity.SleepLog, error) {
	if err := r.f.store.readErr["sleepLogs"]; err != nil {
		return nil, err
	}

	r.f.store.mu.Lock()
	defer r.f.store.mu.Unlock()

	return append([]entity.SleepLog(nil), r.f.store.sleepLogs[userID]...), nil
}

func (r *memSleepLogRepo) Create(ctx context.Context, userID string, log *entity.SleepLog) error {
	log.ID = r.f.store.allocID()
	l := *log

	return r.f.stage(func() { r.f.store.sleepLogs[userID] = append(r.f.store.sleepLogs[userID], l) })
}

func (r *memSleepLogRepo) Delete(ctx context.Context, userID string, logID string) error {
	return r.f.stage(func() {
		logs := r.f.store.sleepLogs[userID]
		for i := range logs {
			if logs[i].ID == logID {
				r.f.store.sleepLogs[userID] = append(logs[:i], logs[i+1:]...)

				return
			}
		}
	})
}

type memEraRepo struct{ f *memFactory }

func (r *memEraRepo) List(ctx context.Context, userID string) ([]entity.Era, error) {
	if err := r.f.store.readErr["eras"]; err != nil {
		return nil, err
	}

	r.f.store.mu.Lock()
	defer r.f.store.mu.Unlock()

	return append([]entity.Era(nil), r.f.store.eras[userID]...), nil
}

func (r *memEraRepo) Create(ctx context.Context, userID string, era *entity.Era) error {
	e := *era

	return r.f.stage(func() { r.f.store.eras[userID] = append(r.f.store.eras[userID], e) })
}

func (r *memEraRepo) Save(ctx context.Context, userID string, era *entity.Era) error {
	e := *era

	return r.f.stage(func() {
		for i := range r.f.store.eras[userID] {
			if r.f.store.eras[userID][i].ID == e.ID {
				r.f.store.eras[userID][i] = e

				return
			}
		}
	})
}

func (r *memEraRepo) Delete(ctx context.Context, userID string, eraID string) error {
	return r.f.stage(func() {
		eras := r.f.store.eras[userID]
		for i := range eras {
			if eras[i].ID == eraID {
				r.f.store.eras[userID] = append(eras[:i], eras[i+1:]...)

				return
			}
		}
	})
}

// capturePublisher records published events for assertions.
type capturePublisher struct {
	mu     sync.Mutex
	events []service.ProgressionEvent
	err    error
}

func (p *capturePublisher) PublishProgressionEvent(ctx context.Context, event *service.ProgressionEvent) error {
	if p.err != nil {
		return p.err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *event)

	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) kinds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	kinds := make([]string, 0, len(p.events))
	for _, e := range p.events {
		kinds = append(kinds, e.Kind)
	}

	return kinds
}

// stubTextService returns canned answers, or fails when err is set.
type stubTextService struct {
	summary     *service.HabitSummary
	quote       string
	err         error
	lastRawData string
	lastPrefs   string
}

func (s *stubTextService) SummarizeHabits(ctx context.Context, rawHabitData string, preferences string) (*service.HabitSummary, error) {
	s.lastRawData = rawHabitData
	s.lastPrefs = preferences
	if s.err != nil {
		return nil, s.err
	}

	return s.summary, nil
}

func (s *stubTextService) GenerateQuote(ctx context.Context, category string) (string, error) {
	if s.err != nil {
		return "", s.err
	}

	return s.quote, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startSession registers a session with the given state, bypassing sign-in.
func startSession(sessions *state.Manager, userID string, st state.State) *state.Session {
	if st.Profile.ID == "" {
		st.Profile.ID = userID
	}
	if st.Profile.EraCustomizations == nil {
		st.Profile.EraCustomizations = map[string]entity.EraOverlay{}
	}

	session := state.NewSession(userID, st, nil)
	sessions.Put(session)

	return session
}
