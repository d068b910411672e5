package analytics

import (
	"time"

	"github.com/ajaychandraavanshi66-eng/Goal-Planner/models"
)

// IsTaskDueOnDate reports whether a task occurs on the given calendar date.
// Dates outside the task's [startDate, endDate] window are never due, and an
// unrecognized repeat type or unparseable rule makes the task never due
// rather than erroring.
func IsTaskDueOnDate(task models.Task, date time.Time) bool {
	day := dayStart(date)

	start, err := ParseDate(task.StartDate)
	if err != nil {
		return false
	}
	if day.Before(start) {
		return false
	}
	if task.EndDate != nil && *task.EndDate != "" {
		end, err := ParseDate(*task.EndDate)
		if err != nil {
			return false
		}
		if day.After(end) {
			return false
		}
	}

	rule, err := ParseRecurrence(task.RepeatType, task.RepeatConfig)
	if err != nil {
		return false
	}
	return rule.OccursOn(day)
}

// DueTasks returns the active tasks due on the given date.
func DueTasks(tasks []models.Task, date time.Time) []models.Task {
	due := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsActive && IsTaskDueOnDate(t, date) {
			due = append(due, t)
		}
	}
	return due
}

// completedTaskIDs collects the tasks with a completed record on a date.
// Duplicate rows for the same task collapse into one entry.
func completedTaskIDs(completions []models.Completion, dateStr string) map[string]bool {
	done := make(map[string]bool)
	for _, c := range completions {
		if c.Date == dateStr && c.IsCompleted {
			done[c.TaskID] = true
		}
	}
	return done
}

// CompletedCount returns how many of the given tasks have a completed
// record on the date.
func CompletedCount(completions []models.Completion, tasks []models.Task, date time.Time) int {
	done := completedTaskIDs(completions, FormatDate(date))
	count := 0
	for _, t := range tasks {
		if done[t.ID] {
			count++
		}
	}
	return count
}

// DayCompletions returns the percentage (0-100) of active due tasks
// completed on the date. A day with nothing scheduled reports 0 so that
// trend series stay well defined.
func DayCompletions(completions []models.Completion, tasks []models.Task, date time.Time) float64 {
	due := DueTasks(tasks, date)
	if len(due) == 0 {
		return 0
	}
	completed := CompletedCount(completions, due, date)
	return float64(completed) / float64(len(due)) * 100
}
