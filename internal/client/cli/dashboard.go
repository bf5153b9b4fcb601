package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Dashboard fetches and prints the aggregate productivity stats.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.allowed(requireAuth(a.session)) {
		return nil
	}

	if err := a.dashboard.Fetch(ctx); err != nil {
		printlnFn("Error:", a.dashboard.Err())
		return err
	}

	stats := a.dashboard.Stats()
	if stats == nil {
		printlnFn("No stats yet.")
		return nil
	}

	printlnFn(fmt.Sprintf("Todos:  %d total, %d done, %d pending (%.0f%%)",
		stats.TodoStats.Total, stats.TodoStats.Completed, stats.TodoStats.Pending,
		stats.TodoStats.CompletionRate*100))
	printlnFn(fmt.Sprintf("Habits: %d total, %d active, avg streak %.1f",
		stats.HabitStats.Total, stats.HabitStats.Active, stats.HabitStats.AverageStreak))

	if len(stats.CategoryDistribution) > 0 {
		printlnFn("By category: " + formatDistribution(stats.CategoryDistribution))
	}
	if len(stats.PriorityDistribution) > 0 {
		printlnFn("By priority: " + formatDistribution(stats.PriorityDistribution))
	}

	if n := len(stats.ProductivityTrend); n > 0 {
		last := stats.ProductivityTrend[n-1]
		printlnFn(fmt.Sprintf("Today: %d todos, %d habit completions",
			last.TodosCompleted, last.HabitsCompleted))
	}
	return nil
}

// Admin is the admin-only surface. The guard checks the restored profile
// directly, so it resolves immediately even mid-restore.
func (a *App) Admin(ctx context.Context) error {
	if requireAdmin(a.session) != Allow {
		printlnFn("Admin access required.")
		return nil
	}

	user, _ := a.session.Current()
	printlnFn(fmt.Sprintf("Admin console (%s, role %s).", user.Email, user.Role))
	return a.Dashboard(ctx)
}

func formatDistribution(dist map[string]int) string {
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, dist[k]))
	}
	return strings.Join(parts, ", ")
}
