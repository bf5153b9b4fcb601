package models

import (
	"math"
	"time"
)

// Habit is a recurring practice with its logged entries.
type Habit struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Frequency   string       `json:"frequency"`
	TargetCount int          `json:"target_count"`
	IsActive    bool         `json:"is_active"`
	StreakCount int          `json:"streak_count"`
	BestStreak  int          `json:"best_streak"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   *time.Time   `json:"updated_at,omitempty"`
	OwnerID     int          `json:"owner_id"`
	Entries     []HabitEntry `json:"entries"`
}

// HabitEntry is one logged occurrence of a habit.
type HabitEntry struct {
	ID             int       `json:"id"`
	HabitID        int       `json:"habit_id"`
	CompletedCount int       `json:"completed_count"`
	Notes          string    `json:"notes,omitempty"`
	Date           time.Time `json:"date"`
}

// HabitCreate is the create-request payload.
type HabitCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Frequency   string `json:"frequency,omitempty"`
	TargetCount int    `json:"target_count,omitempty"`
}

// HabitUpdate carries only the fields to change.
type HabitUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Frequency   *string `json:"frequency,omitempty"`
	TargetCount *int    `json:"target_count,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// HabitEntryCreate logs a habit occurrence. A zero Date means "now"
// (the server fills it in).
type HabitEntryCreate struct {
	CompletedCount int        `json:"completed_count,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	Date           *time.Time `json:"date,omitempty"`
}

// HabitFilter selects a subset of the habit list.
type HabitFilter struct {
	Frequency string
	Search    string
}

// Progress reports today's completion percentage against TargetCount,
// clamped to 100. It is zero when no entries are dated today or when the
// target is not positive. "Today" is the calendar date in now's location;
// entry timestamps arrive in UTC and are converted before comparing, so an
// entry logged this morning counts regardless of the user's zone.
func (h Habit) Progress(now time.Time) int {
	if h.TargetCount <= 0 {
		return 0
	}
	total := 0
	y, m, d := now.Date()
	for _, e := range h.Entries {
		ey, em, ed := e.Date.In(now.Location()).Date()
		if ey == y && em == m && ed == d {
			total += e.CompletedCount
		}
	}
	if total == 0 {
		return 0
	}
	p := int(math.Round(float64(total) / float64(h.TargetCount) * 100))
	if p > 100 {
		p = 100
	}
	return p
}

// HabitAnalytics is the per-habit analytics payload.
type HabitAnalytics struct {
	Days             int     `json:"days"`
	TotalCompletions int     `json:"total_completions"`
	CompletionRate   float64 `json:"completion_rate"`
	CurrentStreak    int     `json:"current_streak"`
	BestStreak       int     `json:"best_streak"`
}
