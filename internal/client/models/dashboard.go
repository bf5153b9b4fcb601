package models

// TodoStats aggregates the todo collection server-side.
type TodoStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	CompletionRate float64 `json:"completion_rate"`
}

// HabitStats aggregates the habit collection server-side.
type HabitStats struct {
	Total          int     `json:"total"`
	Active         int     `json:"active"`
	CompletionRate float64 `json:"completion_rate"`
	AverageStreak  float64 `json:"average_streak"`
}

// ProductivityPoint is one day on the productivity trend.
type ProductivityPoint struct {
	Date            string `json:"date"`
	TodosCompleted  int    `json:"todos_completed"`
	HabitsCompleted int    `json:"habits_completed"`
}

// HeatmapPoint is one day on the habit heatmap.
type HeatmapPoint struct {
	Date           string `json:"date"`
	CompletedCount int    `json:"completed_count"`
}

// DashboardStats is the aggregate payload of /dashboard/stats.
type DashboardStats struct {
	TodoStats            TodoStats           `json:"todo_stats"`
	HabitStats           HabitStats          `json:"habit_stats"`
	ProductivityTrend    []ProductivityPoint `json:"productivity_trend"`
	CategoryDistribution map[string]int      `json:"category_distribution"`
	PriorityDistribution map[string]int      `json:"priority_distribution"`
	HabitHeatmap         []HeatmapPoint      `json:"habit_heatmap"`
}
