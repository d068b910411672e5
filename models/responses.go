package models

// UserResponse is the account shape returned by auth endpoints.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// DailyStatsResponse summarizes today for the dashboard header.
type DailyStatsResponse struct {
	CompletionRate int `json:"completionRate"`
	CurrentStreak  int `json:"currentStreak"`
	TotalTasks     int `json:"totalTasks"`
	CompletedTasks int `json:"completedTasks"`
}

// MonthStatResponse is one entry of the six-month trend series.
type MonthStatResponse struct {
	Month string `json:"month"`
	Value int    `json:"value"`
}

// StreakStatsResponse carries both streak figures.
type StreakStatsResponse struct {
	CurrentStreak int `json:"currentStreak"`
	BestStreak    int `json:"bestStreak"`
}
