// Package session holds the client's authenticated identity: the user
// profile plus bearer token pair, persisted across runs as a single JSON
// blob. The store is the only source of truth for "who is logged in".
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mkorolev/focusdeck/internal/client/models"
	"github.com/mkorolev/focusdeck/internal/filex"
	"github.com/mkorolev/focusdeck/internal/logging"
)

// FileName is the well-known name of the persisted session blob inside the
// state directory.
const FileName = "session.json"

// CurrentUserFetcher resolves a bearer token to the account profile.
// *api.HTTPClient satisfies it.
type CurrentUserFetcher interface {
	CurrentUser(ctx context.Context, token string) (models.User, error)
}

// blob is the on-disk session shape.
type blob struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Store keeps the current session in memory and mirrors it to disk on every
// login/logout. Invariant: token is non-empty exactly when user is non-nil.
type Store struct {
	api  CurrentUserFetcher
	path string
	log  logging.Logger

	mu        sync.RWMutex
	user      *models.User
	token     string
	verifying bool
}

// NewStore builds a store persisting to dir/session.json. The store starts
// in the verifying state; call Restore once at startup to resolve it.
func NewStore(api CurrentUserFetcher, dir string, log logging.Logger) *Store {
	return &Store{
		api:       api,
		path:      filepath.Join(dir, FileName),
		log:       log,
		verifying: true,
	}
}

// Restore loads the persisted session, if any, and re-validates its token
// against the server. Every failure degrades to logged-out: a corrupted or
// expired blob is cleared, never surfaced. Restore is the sole producer of
// the verifying flag; it is false for the rest of the store's lifetime once
// this returns.
func (s *Store) Restore(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.verifying = false
		s.mu.Unlock()
	}()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return // no stored session
	}

	var b blob
	if err := json.Unmarshal(data, &b); err != nil || b.Token == "" {
		s.log.Warn(ctx, "stored session is corrupt, clearing", "path", s.path)
		s.clearFile(ctx)
		return
	}

	user, err := s.api.CurrentUser(ctx, b.Token)
	if err != nil {
		s.log.Warn(ctx, "stored session failed verification, clearing", "err", err)
		s.clearFile(ctx)
		return
	}

	s.mu.Lock()
	s.user = &user
	s.token = b.Token
	s.mu.Unlock()
	s.log.Info(ctx, "session restored", "email", user.Email)
}

// Login unconditionally overwrites the session and persists it. Callers are
// expected to have validated the token already by fetching the current user.
func (s *Store) Login(ctx context.Context, user models.User, token string) error {
	s.mu.Lock()
	s.user = &user
	s.token = token
	s.mu.Unlock()

	if _, err := filex.EnsureDir(filepath.Dir(s.path)); err != nil {
		return err
	}
	data, err := json.Marshal(blob{User: user, Token: token})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Logout clears the in-memory session and the persisted blob.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	s.clearFile(ctx)
}

// Current returns the logged-in user and token, or (nil, "") when logged out.
func (s *Store) Current() (*models.User, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, ""
	}
	u := *s.user
	return &u, s.token
}

// Token returns the bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a user is loaded.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Verifying reports whether startup restoration is still in flight. While
// true, auth-dependent UI must render a neutral loading state.
func (s *Store) Verifying() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.verifying
}

// TokenExpiry parses the bearer token's exp claim without verifying the
// signature. Display only; authorization stays with the server.
func (s *Store) TokenExpiry() (time.Time, bool) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (s *Store) clearFile(ctx context.Context) {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.log.Warn(ctx, "removing session blob", "err", err)
	}
}
