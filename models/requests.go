package models

import (
	"fmt"
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var startTimePattern = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateGoalRequest creates a goal.
type CreateGoalRequest struct {
	Title       string `json:"title" binding:"required"`
	Icon        string `json:"icon" binding:"required"`
	Color       string `json:"color" binding:"required"`
	Description string `json:"description"`
}

// UpdateGoalRequest updates a goal's display fields. Nil fields are left unchanged.
type UpdateGoalRequest struct {
	Title       *string `json:"title"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
}

// CreateTaskRequest creates a task under a goal.
type CreateTaskRequest struct {
	GoalID       string   `json:"goalId" binding:"required"`
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	StartTime    string   `json:"startTime" binding:"required"`
	Duration     int      `json:"duration" binding:"required"`
	RepeatType   string   `json:"repeatType" binding:"required"`
	RepeatConfig []string `json:"repeatConfig"`
	StartDate    string   `json:"startDate" binding:"required"`
	EndDate      *string  `json:"endDate"`
	IsActive     *bool    `json:"isActive"`
	Priority     string   `json:"priority" binding:"required"`
}

// Validate checks the fields the recurrence engine does not own: time and
// date formats, date ordering and the priority/duration bounds.
func (r *CreateTaskRequest) Validate() error {
	if r.Duration <= 0 {
		return fmt.Errorf("duration must be a positive number of minutes")
	}
	switch r.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return fmt.Errorf("priority must be one of: low, medium, high")
	}
	if !startTimePattern.MatchString(r.StartTime) {
		return fmt.Errorf("startTime must be a 24-hour HH:mm string")
	}
	if _, err := time.Parse(dateLayout, r.StartDate); err != nil {
		return fmt.Errorf("startDate must be a YYYY-MM-DD string")
	}
	if r.EndDate != nil && *r.EndDate != "" {
		if _, err := time.Parse(dateLayout, *r.EndDate); err != nil {
			return fmt.Errorf("endDate must be a YYYY-MM-DD string")
		}
		// ISO date strings order lexicographically.
		if *r.EndDate < r.StartDate {
			return fmt.Errorf("endDate must not be before startDate")
		}
	}
	return nil
}

// UpdateTaskRequest updates a task. Nil fields are left unchanged.
type UpdateTaskRequest struct {
	GoalID       *string   `json:"goalId"`
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	StartTime    *string   `json:"startTime"`
	Duration     *int      `json:"duration"`
	RepeatType   *string   `json:"repeatType"`
	RepeatConfig *[]string `json:"repeatConfig"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	IsActive     *bool     `json:"isActive"`
	Priority     *string   `json:"priority"`
}

// Apply copies the provided fields onto the task.
func (r *UpdateTaskRequest) Apply(task *Task) {
	if r.GoalID != nil {
		task.GoalID = *r.GoalID
	}
	if r.Title != nil {
		task.Title = *r.Title
	}
	if r.Description != nil {
		task.Description = *r.Description
	}
	if r.StartTime != nil {
		task.StartTime = *r.StartTime
	}
	if r.Duration != nil {
		task.Duration = *r.Duration
	}
	if r.RepeatType != nil {
		task.RepeatType = *r.RepeatType
	}
	if r.RepeatConfig != nil {
		task.RepeatConfig = StringList(*r.RepeatConfig)
	}
	if r.StartDate != nil {
		task.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		task.EndDate = r.EndDate
	}
	if r.IsActive != nil {
		task.IsActive = *r.IsActive
	}
	if r.Priority != nil {
		task.Priority = *r.Priority
	}
}

// ToggleCompletionRequest toggles a completion on or off for a task and date.
type ToggleCompletionRequest struct {
	TaskID string `json:"taskId" binding:"required"`
	Date   string `json:"date" binding:"required"`
}

// UpdateSettingsRequest updates user settings. Nil fields are left unchanged.
type UpdateSettingsRequest struct {
	Theme             *string `json:"theme"`
	AccentColor       *string `json:"accentColor"`
	GlassIntensity    *int    `json:"glassIntensity"`
	TimeFormat24h     *bool   `json:"timeFormat24h"`
	StartWeekOnMonday *bool   `json:"startWeekOnMonday"`
}

// Validate rejects values outside the settings enums.
func (r *UpdateSettingsRequest) Validate() error {
	if r.Theme != nil && *r.Theme != "light" && *r.Theme != "dark" {
		return fmt.Errorf("theme must be either \"light\" or \"dark\"")
	}
	return nil
}

// Apply copies the provided fields onto the settings row.
func (r *UpdateSettingsRequest) Apply(s *UserSettings) {
	if r.Theme != nil {
		s.Theme = *r.Theme
	}
	if r.AccentColor != nil {
		s.AccentColor = *r.AccentColor
	}
	if r.GlassIntensity != nil {
		s.GlassIntensity = *r.GlassIntensity
	}
	if r.TimeFormat24h != nil {
		s.TimeFormat24h = *r.TimeFormat24h
	}
	if r.StartWeekOnMonday != nil {
		s.StartWeekOnMonday = *r.StartWeekOnMonday
	}
}
