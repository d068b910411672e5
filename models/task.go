package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Repeat types accepted by Task.RepeatType.
const (
	RepeatDaily   = "daily"
	RepeatWeekly  = "weekly"
	RepeatMonthly = "monthly"
	RepeatYearly  = "yearly"
)

// Priorities accepted by Task.Priority.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// StringList is stored as a JSON array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("models: cannot scan %T into StringList", value)
}

// Task is a recurring task attached to a goal. RepeatConfig holds the
// per-type recurrence configuration: weekday abbreviations for weekly,
// day-of-month numbers for monthly, "MM-DD" strings for yearly, and is
// ignored for daily tasks. Calendar dates are "YYYY-MM-DD" strings.
type Task struct {
	ID           string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID       string     `gorm:"type:varchar(50);index" json:"-"`
	GoalID       string     `gorm:"type:varchar(50);index" json:"goalId"`
	Title        string     `gorm:"type:varchar(100)" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	StartTime    string     `gorm:"type:varchar(5)" json:"startTime"` // HH:mm
	Duration     int        `json:"duration"`                         // minutes
	RepeatType   string     `gorm:"type:varchar(20)" json:"repeatType"`
	RepeatConfig StringList `gorm:"type:json" json:"repeatConfig"`
	StartDate    string     `gorm:"type:varchar(10)" json:"startDate"`
	EndDate      *string    `gorm:"type:varchar(10)" json:"endDate,omitempty"`
	IsActive     bool       `json:"isActive"`
	Priority     string     `gorm:"type:varchar(10)" json:"priority"`
	CreatedAt    time.Time  `json:"createdAt"`
}
