package services

import (
	"context"
	"sync"

	"github.com/mkorolev/focusdeck/internal/client/models"
	"github.com/mkorolev/focusdeck/internal/logging"
)

type dashboardAPI interface {
	DashboardStats(ctx context.Context, token string) (models.DashboardStats, error)
}

// DashboardService fetches the aggregate stats payload. Read-only: there are
// no mutations, only fetch with the usual last-request-wins rule.
type DashboardService struct {
	api   dashboardAPI
	token string
	log   logging.Logger

	mu      sync.Mutex
	gen     uint64
	stats   *models.DashboardStats
	loading bool
	lastErr string
}

// NewDashboardService builds a service for one screen mount.
func NewDashboardService(api dashboardAPI, token string, log logging.Logger) *DashboardService {
	return &DashboardService{api: api, token: token, log: log}
}

// Fetch loads the stats; no-op without a token.
func (s *DashboardService) Fetch(ctx context.Context) error {
	if s.token == "" {
		return nil
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.mu.Unlock()

	stats, err := s.api.DashboardStats(ctx, s.token)

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
	s.stats = &stats
	s.lastErr = ""
	return nil
}

// Stats returns the last fetched payload, or nil before the first fetch.
func (s *DashboardService) Stats() *models.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats == nil {
		return nil
	}
	st := *s.stats
	return &st
}

// Loading reports whether a fetch is in flight.
func (s *DashboardService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last failure message, or "" after a clean fetch.
func (s *DashboardService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
