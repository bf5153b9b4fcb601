package services

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/mkorolev/focusdeck/internal/client/models"
	"github.com/mkorolev/focusdeck/internal/common"
	"github.com/mkorolev/focusdeck/internal/logging"
)

type pomodoroAPI interface {
	ListSessions(ctx context.Context, token string) ([]models.PomodoroSession, error)
	CreateSession(ctx context.Context, token string, in models.PomodoroCreate) (models.PomodoroSession, error)
	UpdateSession(ctx context.Context, token string, id int, in models.PomodoroUpdate) (models.PomodoroSession, error)
	DeleteSession(ctx context.Context, token string, id int) error
	PomodoroAnalytics(ctx context.Context, token string, days int) (models.PomodoroAnalytics, error)
}

// PomodoroService owns the pomodoro session collection. Same contract as
// the other collection services.
type PomodoroService struct {
	api   pomodoroAPI
	token string
	log   logging.Logger

	opMu sync.Mutex

	mu       sync.Mutex
	gen      uint64
	sessions []models.PomodoroSession
	loading  bool
	lastErr  string
}

// NewPomodoroService builds a service for one screen mount.
func NewPomodoroService(api pomodoroAPI, token string, log logging.Logger) *PomodoroService {
	return &PomodoroService{api: api, token: token, log: log}
}

// Fetch loads the collection; no-op without a token, last request wins.
func (s *PomodoroService) Fetch(ctx context.Context) error {
	if s.token == "" {
		return nil
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.mu.Unlock()

	sessions, err := s.api.ListSessions(ctx, s.token)

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
	s.sessions = sessions
	s.lastErr = ""
	return nil
}

// Create posts a new session and prepends the server's copy.
func (s *PomodoroService) Create(ctx context.Context, in models.PomodoroCreate) (models.PomodoroSession, error) {
	if s.token == "" {
		return models.PomodoroSession{}, common.ErrUnauthorized
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()

	sess, err := s.api.CreateSession(ctx, s.token, in)
	if err != nil {
		s.setErr(err)
		return models.PomodoroSession{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append([]models.PomodoroSession{sess}, s.sessions...)
	return sess, nil
}

// Update applies a partial update and replaces the matching local session,
// pinning the identifier to the requested id.
func (s *PomodoroService) Update(ctx context.Context, id int, in models.PomodoroUpdate) (models.PomodoroSession, error) {
	if s.token == "" {
		return models.PomodoroSession{}, common.ErrUnauthorized
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()

	updated, err := s.api.UpdateSession(ctx, s.token, id, in)
	if err != nil {
		s.setErr(err)
		return models.PomodoroSession{}, err
	}
	updated.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			s.sessions[i] = updated
			break
		}
	}
	return updated, nil
}

// Complete marks a session finished as of now.
func (s *PomodoroService) Complete(ctx context.Context, id int) (models.PomodoroSession, error) {
	now := time.Now()
	active := false
	return s.Update(ctx, id, models.PomodoroUpdate{IsActive: &active, CompletedAt: &now})
}

// Delete removes a session.
func (s *PomodoroService) Delete(ctx context.Context, id int) error {
	if s.token == "" {
		return common.ErrUnauthorized
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.api.DeleteSession(ctx, s.token, id); err != nil {
		s.setErr(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = slices.DeleteFunc(s.sessions, func(p models.PomodoroSession) bool { return p.ID == id })
	return nil
}

// Analytics summarizes sessions over the last days days.
func (s *PomodoroService) Analytics(ctx context.Context, days int) (models.PomodoroAnalytics, error) {
	if s.token == "" {
		return models.PomodoroAnalytics{}, common.ErrUnauthorized
	}
	a, err := s.api.PomodoroAnalytics(ctx, s.token, days)
	if err != nil {
		s.setErr(err)
		return models.PomodoroAnalytics{}, err
	}
	return a, nil
}

// Sessions returns a copy of the current collection.
func (s *PomodoroService) Sessions() []models.PomodoroSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.sessions)
}

// Loading reports whether a fetch is in flight.
func (s *PomodoroService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last failure message, or "" after a clean fetch.
func (s *PomodoroService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *PomodoroService) setErr(err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
}
