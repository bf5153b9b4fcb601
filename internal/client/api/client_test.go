package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorolev/focusdeck/internal/client/models"
	"github.com/mkorolev/focusdeck/internal/common"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, WithRequestIDFunc(func() string { return "test-request-id" }))
}

func TestCurrentUser_SendsBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID, gotPath string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"email":"u@example.com","username":"u","is_admin":false}`))
	})

	user, err := c.CurrentUser(context.Background(), "tok-123")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "test-request-id", gotReqID)
	assert.Equal(t, "/auth/me", gotPath)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "u@example.com", user.Email)
}

func TestDo_StructuredDetailBecomesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	})

	_, err := c.Login(context.Background(), "u@example.com", "wrong", "")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Incorrect email or password", apiErr.Message)
}

func TestDo_UnparsableBodyFallsBackToGenericMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>nope</html>"))
	})

	_, err := c.CurrentUser(context.Background(), "tok")
	require.Error(t, err)
	assert.Equal(t, "HTTP error, status 500", err.Error())
}

func TestDo_TransportFailureWrapsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // force a connection error

	c := New(srv.URL)
	_, err := c.CurrentUser(context.Background(), "tok")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestDo_UnauthorizedMapsToSentinel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	})

	_, err := c.CurrentUser(context.Background(), "expired")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Equal(t, "Could not validate credentials", err.Error())
}

func TestLogin_UnverifiedDetailMapsToSentinel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail":"Please verify your email. OTP sent."}`))
	})

	_, err := c.Login(context.Background(), "new@example.com", "pw", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnverified)
}

func TestTodoQuery_StatusMapping(t *testing.T) {
	tests := []struct {
		status string
		want   string
		set    bool
	}{
		{"completed", "true", true},
		{"pending", "false", true},
		{"", "", false},
		{"all", "", false},
	}

	for _, tc := range tests {
		q := todoQuery(models.TodoFilter{Status: tc.status})
		if tc.set {
			assert.Equal(t, tc.want, q.Get("completed"), "status %q", tc.status)
		} else {
			assert.False(t, q.Has("completed"), "status %q", tc.status)
		}
	}
}

func TestListTodos_FiltersBecomeQueryParams(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.ListTodos(context.Background(), "tok", models.TodoFilter{
		Status:   "pending",
		Priority: "high",
		Search:   "report",
		Category: "Work",
	})
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "completed=false")
	assert.Contains(t, gotQuery, "priority=high")
	assert.Contains(t, gotQuery, "search=report")
	assert.Contains(t, gotQuery, "category=Work")
}

func TestDeleteTodo_AcceptsNoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/todos/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteTodo(context.Background(), "tok", 42))
}

func TestGoogleLogin_PassesCodeAsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/google/callback", r.URL.Path)
		assert.Equal(t, "4/abc", r.URL.Query().Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"bearer"}`))
	})

	tok, err := c.GoogleLogin(context.Background(), "4/abc")
	require.NoError(t, err)
	assert.Equal(t, "tok", tok.AccessToken)
}

func TestErrorUnwrap_PlainErrorHasNoSentinel(t *testing.T) {
	err := &Error{Status: http.StatusBadRequest, Message: "Email already registered"}
	assert.False(t, errors.Is(err, common.ErrUnauthorized))
	assert.False(t, errors.Is(err, common.ErrUnverified))
}
