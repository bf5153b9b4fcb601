package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorolev/focusdeck/internal/client/models"
	"github.com/mkorolev/focusdeck/internal/common"
	"github.com/mkorolev/focusdeck/internal/logging"
)

type fakeFetcher struct {
	user models.User
	err  error

	lastToken string
	calls     int
}

func (f *fakeFetcher) CurrentUser(ctx context.Context, token string) (models.User, error) {
	f.calls++
	f.lastToken = token
	return f.user, f.err
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

func writeBlob(t *testing.T, dir string, b blob) {
	t.Helper()
	data, err := json.Marshal(b)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), data, 0o600))
}

func TestRestore_NoBlob_ResolvesLoggedOut(t *testing.T) {
	dir := t.TempDir()
	f := &fakeFetcher{}
	s := NewStore(f, dir, testLogger())

	require.True(t, s.Verifying())
	s.Restore(context.Background())

	assert.False(t, s.Verifying())
	assert.False(t, s.IsAuthenticated())
	assert.Zero(t, f.calls, "no server round-trip without a stored token")
}

func TestRestore_ValidToken_Authenticates(t *testing.T) {
	dir := t.TempDir()
	f := &fakeFetcher{user: models.User{ID: 1, Email: "u@example.com"}}
	s := NewStore(f, dir, testLogger())
	writeBlob(t, dir, blob{User: models.User{ID: 1}, Token: "tok-1"})

	s.Restore(context.Background())

	assert.False(t, s.Verifying())
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tok-1", f.lastToken)

	user, token := s.Current()
	require.NotNil(t, user)
	assert.Equal(t, "u@example.com", user.Email)
	assert.Equal(t, "tok-1", token)
}

func TestRestore_InvalidToken_ClearsBlobAndStaysLoggedOut(t *testing.T) {
	dir := t.TempDir()
	f := &fakeFetcher{err: common.ErrUnauthorized}
	s := NewStore(f, dir, testLogger())
	writeBlob(t, dir, blob{User: models.User{ID: 1}, Token: "expired"})

	s.Restore(context.Background())

	assert.False(t, s.Verifying())
	assert.False(t, s.IsAuthenticated())
	_, err := os.Stat(filepath.Join(dir, FileName))
	assert.True(t, os.IsNotExist(err), "blob must be removed")
}

func TestRestore_MissingToken_TreatedAsCorrupt(t *testing.T) {
	dir := t.TempDir()
	f := &fakeFetcher{}
	s := NewStore(f, dir, testLogger())
	writeBlob(t, dir, blob{User: models.User{ID: 1}})

	s.Restore(context.Background())

	assert.False(t, s.IsAuthenticated())
	assert.Zero(t, f.calls)
	_, err := os.Stat(filepath.Join(dir, FileName))
	assert.True(t, os.IsNotExist(err))
}

func TestRestore_UnreadableJSON_TreatedAsCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{nope"), 0o600))
	s := NewStore(&fakeFetcher{}, dir, testLogger())

	s.Restore(context.Background())

	assert.False(t, s.IsAuthenticated())
	_, err := os.Stat(filepath.Join(dir, FileName))
	assert.True(t, os.IsNotExist(err))
}

func TestLogin_ThenRestore_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	user := models.User{ID: 5, Email: "five@example.com", Username: "five"}
	f := &fakeFetcher{user: user}

	s1 := NewStore(f, dir, testLogger())
	require.NoError(t, s1.Login(context.Background(), user, "tok-5"))
	assert.True(t, s1.IsAuthenticated())

	s2 := NewStore(f, dir, testLogger())
	s2.Restore(context.Background())

	got, token := s2.Current()
	require.NotNil(t, got)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, "tok-5", token)
}

func TestLogout_ClearsMemoryAndBlob(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(&fakeFetcher{}, dir, testLogger())
	require.NoError(t, s.Login(context.Background(), models.User{ID: 1}, "tok"))

	s.Logout(context.Background())

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	_, err := os.Stat(filepath.Join(dir, FileName))
	assert.True(t, os.IsNotExist(err))
}

func TestTokenExpiry_ReadsExpClaim(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(&fakeFetcher{}, dir, testLogger())

	exp := time.Now().Add(30 * time.Minute)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u@example.com",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	require.NoError(t, s.Login(context.Background(), models.User{ID: 1}, signed))

	got, ok := s.TokenExpiry()
	require.True(t, ok)
	assert.WithinDuration(t, exp, got, time.Second)
}

func TestTokenExpiry_OpaqueToken_NotAvailable(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(&fakeFetcher{}, dir, testLogger())
	require.NoError(t, s.Login(context.Background(), models.User{ID: 1}, "not-a-jwt"))

	_, ok := s.TokenExpiry()
	assert.False(t, ok)
}
