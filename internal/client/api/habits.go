package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mkorolev/focusdeck/internal/client/models"
)

func habitQuery(f models.HabitFilter) url.Values {
	q := url.Values{}
	if f.Frequency != "" {
		q.Set("frequency", f.Frequency)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

// ListHabits returns the user's habits with their entries.
func (c *HTTPClient) ListHabits(ctx context.Context, token string, f models.HabitFilter) ([]models.Habit, error) {
	var habits []models.Habit
	err := c.do(ctx, http.MethodGet, "/habits/", token, habitQuery(f), nil, &habits)
	return habits, err
}

// CreateHabit creates a habit and returns the server's copy.
func (c *HTTPClient) CreateHabit(ctx context.Context, token string, in models.HabitCreate) (models.Habit, error) {
	var habit models.Habit
	err := c.do(ctx, http.MethodPost, "/habits/", token, nil, in, &habit)
	return habit, err
}

// UpdateHabit applies a partial update and returns the server's copy.
func (c *HTTPClient) UpdateHabit(ctx context.Context, token string, id int, in models.HabitUpdate) (models.Habit, error) {
	var habit models.Habit
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/habits/%d", id), token, nil, in, &habit)
	return habit, err
}

// DeleteHabit removes a habit and its entries.
func (c *HTTPClient) DeleteHabit(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/habits/%d", id), token, nil, nil, nil)
}

// CreateHabitEntry logs one habit occurrence and returns the stored entry.
func (c *HTTPClient) CreateHabitEntry(ctx context.Context, token string, habitID int, in models.HabitEntryCreate) (models.HabitEntry, error) {
	var entry models.HabitEntry
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/habits/%d/entries", habitID), token, nil, in, &entry)
	return entry, err
}

// HabitAnalytics fetches per-habit analytics over the last days days.
func (c *HTTPClient) HabitAnalytics(ctx context.Context, token string, habitID, days int) (models.HabitAnalytics, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	var a models.HabitAnalytics
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/habits/%d/analytics", habitID), token, q, nil, &a)
	return a, err
}
