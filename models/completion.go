package models

import "time"

// Completion records that a task was completed on a calendar date.
// The toggle endpoint keeps at most one row per (user, task, date).
type Completion struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID      string    `gorm:"type:varchar(50);index:idx_completions_user_date" json:"-"`
	TaskID      string    `gorm:"type:varchar(50);index" json:"taskId"`
	Date        string    `gorm:"type:varchar(10);index:idx_completions_user_date" json:"date"`
	IsCompleted bool      `json:"isCompleted"`
	CompletedAt time.Time `json:"completedAt"`
}
