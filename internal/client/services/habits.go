package services

import (
	"context"
	"slices"
	"sync"

	"github.com/mkorolev/focusdeck/internal/client/models"
	"github.com/mkorolev/focusdeck/internal/common"
	"github.com/mkorolev/focusdeck/internal/logging"
)

type habitAPI interface {
	ListHabits(ctx context.Context, token string, f models.HabitFilter) ([]models.Habit, error)
	CreateHabit(ctx context.Context, token string, in models.HabitCreate) (models.Habit, error)
	UpdateHabit(ctx context.Context, token string, id int, in models.HabitUpdate) (models.Habit, error)
	DeleteHabit(ctx context.Context, token string, id int) error
	CreateHabitEntry(ctx context.Context, token string, habitID int, in models.HabitEntryCreate) (models.HabitEntry, error)
	HabitAnalytics(ctx context.Context, token string, habitID, days int) (models.HabitAnalytics, error)
}

// HabitService owns the habit collection. Same fetch/mutation contract as
// TodoService; logging an entry appends into the matching habit's entry list
// in place without touching its other fields.
type HabitService struct {
	api   habitAPI
	token string
	log   logging.Logger

	opMu sync.Mutex

	mu      sync.Mutex
	filter  models.HabitFilter
	gen     uint64
	habits  []models.Habit
	loading bool
	lastErr string
}

// NewHabitService builds a service for one screen mount.
func NewHabitService(api habitAPI, token string, filter models.HabitFilter, log logging.Logger) *HabitService {
	return &HabitService{api: api, token: token, filter: filter, log: log}
}

// Fetch loads the collection; no-op without a token, last request wins.
func (s *HabitService) Fetch(ctx context.Context) error {
	if s.token == "" {
		return nil
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	filter := s.filter
	s.loading = true
	s.mu.Unlock()

	habits, err := s.api.ListHabits(ctx, s.token, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return nil
	}
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	s.habits = habits
	s.lastErr = ""
	return nil
}

// SetFilter replaces the filter and refetches.
func (s *HabitService) SetFilter(ctx context.Context, f models.HabitFilter) error {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
	return s.Fetch(ctx)
}

// Create posts a new habit and prepends the server's copy.
func (s *HabitService) Create(ctx context.Context, in models.HabitCreate) (models.Habit, error) {
	if s.token == "" {
		return models.Habit{}, common.ErrUnauthorized
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()

	habit, err := s.api.CreateHabit(ctx, s.token, in)
	if err != nil {
		s.setErr(err)
		return models.Habit{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.habits = append([]models.Habit{habit}, s.habits...)
	return habit, nil
}

// Update applies a partial update and replaces the matching local habit,
// pinning the identifier to the requested id.
func (s *HabitService) Update(ctx context.Context, id int, in models.HabitUpdate) (models.Habit, error) {
	if s.token == "" {
		return models.Habit{}, common.ErrUnauthorized
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()

	updated, err := s.api.UpdateHabit(ctx, s.token, id, in)
	if err != nil {
		s.setErr(err)
		return models.Habit{}, err
	}
	updated.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.habits {
		if s.habits[i].ID == id {
			s.habits[i] = updated
			break
		}
	}
	return updated, nil
}

// Delete removes a habit.
func (s *HabitService) Delete(ctx context.Context, id int) error {
	if s.token == "" {
		return common.ErrUnauthorized
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.api.DeleteHabit(ctx, s.token, id); err != nil {
		s.setErr(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.habits = slices.DeleteFunc(s.habits, func(h models.Habit) bool { return h.ID == id })
	return nil
}

// CreateEntry logs one occurrence and appends the stored entry into the
// matching habit's entry list. Other habit fields are left as they were;
// streaks refresh on the next fetch.
func (s *HabitService) CreateEntry(ctx context.Context, habitID int, in models.HabitEntryCreate) (models.HabitEntry, error) {
	if s.token == "" {
		return models.HabitEntry{}, common.ErrUnauthorized
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()

	entry, err := s.api.CreateHabitEntry(ctx, s.token, habitID, in)
	if err != nil {
		s.setErr(err)
		return models.HabitEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.habits {
		if s.habits[i].ID == habitID {
			s.habits[i].Entries = append(s.habits[i].Entries, entry)
			break
		}
	}
	return entry, nil
}

// Analytics fetches per-habit analytics over the last days days.
func (s *HabitService) Analytics(ctx context.Context, habitID, days int) (models.HabitAnalytics, error) {
	if s.token == "" {
		return models.HabitAnalytics{}, common.ErrUnauthorized
	}
	a, err := s.api.HabitAnalytics(ctx, s.token, habitID, days)
	if err != nil {
		s.setErr(err)
		return models.HabitAnalytics{}, err
	}
	return a, nil
}

// Habits returns a copy of the current collection.
func (s *HabitService) Habits() []models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.habits)
}

// Loading reports whether a fetch is in flight.
func (s *HabitService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last failure message, or "" after a clean fetch.
func (s *HabitService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *HabitService) setErr(err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
}
