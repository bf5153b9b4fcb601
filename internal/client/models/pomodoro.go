package models

import "time"

// PomodoroSession is one focus session. Durations are minutes.
type PomodoroSession struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Duration      int        `json:"duration"`
	BreakDuration int        `json:"break_duration"`
	IsActive      bool       `json:"is_active"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
	OwnerID       int        `json:"owner_id"`
}

// PomodoroCreate is the create-request payload.
type PomodoroCreate struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Duration      int    `json:"duration,omitempty"`
	BreakDuration int    `json:"break_duration,omitempty"`
}

// PomodoroUpdate carries only the fields to change.
type PomodoroUpdate struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Duration      *int       `json:"duration,omitempty"`
	BreakDuration *int       `json:"break_duration,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// PomodoroAnalytics summarizes sessions over a date range.
type PomodoroAnalytics struct {
	TotalSessions     int     `json:"total_sessions"`
	CompletedSessions int     `json:"completed_sessions"`
	CompletionRate    float64 `json:"completion_rate"`
	AverageDuration   float64 `json:"average_duration"`
	TotalTime         int     `json:"total_time"`
}
