package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mkorolev/focusdeck/internal/client/models"
)

// Habits fetches and prints the habit list with today's progress.
func (a *App) Habits(ctx context.Context) error {
	if !a.allowed(requireAuth(a.session)) {
		return nil
	}

	if err := a.habits.Fetch(ctx); err != nil {
		printlnFn("Error:", a.habits.Err())
		return err
	}

	items := a.habits.Habits()
	if len(items) == 0 {
		printlnFn("No habits yet. Use 'addhabit' to create one.")
		return nil
	}
	now := time.Now()
	for _, h := range items {
		printlnFn(fmt.Sprintf("#%d %s (%s, target %d) today %d%%, streak %d",
			h.ID, h.Name, h.Frequency, h.TargetCount, h.Progress(now), h.StreakCount))
	}
	return nil
}

// AddHabit prompts for habit details and creates it on the server.
func (a *App) AddHabit(ctx context.Context) error {
	if !a.allowed(requireAuth(a.session)) {
		return nil
	}

	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	frequency, err := getSimpleText(a.reader, "Frequency daily/weekly (default daily)", os.Stdout)
	if err != nil {
		return err
	}
	target, err := GetInt(a.reader, "Target count per period (default 1)", 1, os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	created, err := a.habits.Create(ctx, models.HabitCreate{
		Name:        name,
		Description: description,
		Frequency:   frequency,
		TargetCount: target,
	})
	if err != nil {
		printlnFn("Error:", a.habits.Err())
		return err
	}

	printlnFn(fmt.Sprintf("Created #%d %s", created.ID, created.Name))
	return nil
}

// LogHabit records an occurrence of a habit for today.
func (a *App) LogHabit(ctx context.Context) error {
	if !a.allowed(requireAuth(a.session)) {
		return nil
	}

	id, err := GetInt(a.reader, "Habit id", 0, os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	count, err := GetInt(a.reader, "Completed count (default 1)", 1, os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	notes, err := getSimpleText(a.reader, "Notes (optional)", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.habits.CreateEntry(ctx, id, models.HabitEntryCreate{
		CompletedCount: count,
		Notes:          notes,
	}); err != nil {
		printlnFn("Error:", a.habits.Err())
		return err
	}

	printlnFn("Logged.")
	return nil
}

// HabitStats prints per-habit analytics over a recent window.
func (a *App) HabitStats(ctx context.Context) error {
	if !a.allowed(requireAuth(a.session)) {
		return nil
	}

	id, err := GetInt(a.reader, "Habit id", 0, os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	days, err := GetInt(a.reader, "Window in days (default 30)", 30, os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	stats, err := a.habits.Analytics(ctx, id, days)
	if err != nil {
		printlnFn("Error:", a.habits.Err())
		return err
	}

	printlnFn(fmt.Sprintf("Last %d days: %d completions, %.0f%% completion rate",
		stats.Days, stats.TotalCompletions, stats.CompletionRate*100))
	printlnFn(fmt.Sprintf("Streak: %d current, %d best", stats.CurrentStreak, stats.BestStreak))
	return nil
}
