package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mkorolev/focusdeck/internal/client/models"
)

// ListSessions returns the user's pomodoro sessions.
func (c *HTTPClient) ListSessions(ctx context.Context, token string) ([]models.PomodoroSession, error) {
	var sessions []models.PomodoroSession
	err := c.do(ctx, http.MethodGet, "/pomodoro/", token, nil, nil, &sessions)
	return sessions, err
}

// CreateSession creates a session and returns the server's copy.
func (c *HTTPClient) CreateSession(ctx context.Context, token string, in models.PomodoroCreate) (models.PomodoroSession, error) {
	var s models.PomodoroSession
	err := c.do(ctx, http.MethodPost, "/pomodoro/", token, nil, in, &s)
	return s, err
}

// UpdateSession applies a partial update and returns the server's copy.
func (c *HTTPClient) UpdateSession(ctx context.Context, token string, id int, in models.PomodoroUpdate) (models.PomodoroSession, error) {
	var s models.PomodoroSession
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/pomodoro/%d", id), token, nil, in, &s)
	return s, err
}

// DeleteSession removes a session.
func (c *HTTPClient) DeleteSession(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/pomodoro/%d", id), token, nil, nil, nil)
}

// PomodoroAnalytics summarizes sessions over the last days days.
func (c *HTTPClient) PomodoroAnalytics(ctx context.Context, token string, days int) (models.PomodoroAnalytics, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	var a models.PomodoroAnalytics
	err := c.do(ctx, http.MethodGet, "/pomodoro/analytics", token, q, nil, &a)
	return a, err
}
