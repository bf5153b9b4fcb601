package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mkorolev/focusdeck/internal/client/models"
)

// Pomodoros fetches and prints the session history.
func (a *App) Pomodoros(ctx context.Context) error {
	if !a.allowed(requireAuth(a.session)) {
		return nil
	}

	if err := a.pomodoros.Fetch(ctx); err != nil {
		printlnFn("Error:", a.pomodoros.Err())
		return err
	}

	items := a.pomodoros.Sessions()
	if len(items) == 0 {
		printlnFn("No sessions yet. Use 'start' to begin one.")
		return nil
	}
	for _, s := range items {
		state := "active"
		if !s.IsActive {
			state = "finished"
		}
		printlnFn(fmt.Sprintf("#%d %s (%d min, %s)", s.ID, s.Title, s.Duration, state))
	}
	return nil
}

// StartPomodoro creates a session on the server and starts the local
// countdown. When the countdown runs out, the session is marked complete.
func (a *App) StartPomodoro(ctx context.Context) error {
	if !a.allowed(requireAuth(a.session)) {
		return nil
	}
	if a.timer != nil && a.timer.Running() {
		printlnFn("A pomodoro is already running. Use 'stop' or 'pause' first.")
		return nil
	}

	title, err := getSimpleText(a.reader, "What are you working on?", os.Stdout)
	if err != nil {
		return err
	}
	minutes, err := GetInt(a.reader, "Duration in minutes (default 25)", 25, os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	created, err := a.pomodoros.Create(ctx, models.PomodoroCreate{
		Title:    title,
		Duration: minutes,
	})
	if err != nil {
		printlnFn("Error:", a.pomodoros.Err())
		return err
	}

	id := created.ID
	pomodoros := a.pomodoros
	log := a.log
	a.timer = NewCountdown(time.Duration(minutes)*time.Minute, nil, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := pomodoros.Complete(ctx, id); err != nil {
			log.Error(ctx, "completing pomodoro session", "id", id, "error", err)
		}
		printlnFn(fmt.Sprintf("\nPomodoro #%d complete. Take a break!", id))
	})
	a.timer.Start()

	printlnFn(fmt.Sprintf("Started #%d for %d minutes.", id, minutes))
	return nil
}

// PausePomodoro suspends the running countdown.
func (a *App) PausePomodoro(ctx context.Context) error {
	if a.timer == nil || !a.timer.Running() {
		printlnFn("No pomodoro is running.")
		return nil
	}
	a.timer.Pause()
	printlnFn(fmt.Sprintf("Paused with %s left.", a.timer.Remaining().Round(time.Second)))
	return nil
}

// ResumePomodoro continues a paused countdown.
func (a *App) ResumePomodoro(ctx context.Context) error {
	if a.timer == nil {
		printlnFn("No pomodoro to resume.")
		return nil
	}
	if a.timer.Running() {
		printlnFn("Already running.")
		return nil
	}
	a.timer.Resume()
	printlnFn(fmt.Sprintf("Resumed, %s left.", a.timer.Remaining().Round(time.Second)))
	return nil
}

// StopPomodoro abandons the countdown and marks the latest active session
// complete.
func (a *App) StopPomodoro(ctx context.Context) error {
	if !a.allowed(requireAuth(a.session)) {
		return nil
	}
	if a.timer == nil {
		printlnFn("No pomodoro is running.")
		return nil
	}
	a.stopTimer()

	for _, s := range a.pomodoros.Sessions() {
		if s.IsActive {
			if _, err := a.pomodoros.Complete(ctx, s.ID); err != nil {
				printlnFn("Error:", a.pomodoros.Err())
				return err
			}
			break
		}
	}

	printlnFn("Stopped.")
	return nil
}

// PomodoroStats prints focus analytics over a recent window.
func (a *App) PomodoroStats(ctx context.Context) error {
	if !a.allowed(requireAuth(a.session)) {
		return nil
	}

	days, err := GetInt(a.reader, "Window in days (default 7)", 7, os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	stats, err := a.pomodoros.Analytics(ctx, days)
	if err != nil {
		printlnFn("Error:", a.pomodoros.Err())
		return err
	}

	printlnFn(fmt.Sprintf("%d sessions, %d completed (%.0f%%)",
		stats.TotalSessions, stats.CompletedSessions, stats.CompletionRate*100))
	printlnFn(fmt.Sprintf("Total focus time %d min, average session %.1f min",
		stats.TotalTime, stats.AverageDuration))
	return nil
}
