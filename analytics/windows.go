package analytics

import (
	"math"
	"time"

	"github.com/ajaychandraavanshi66-eng/Goal-Planner/models"
)

// goalPerformanceWindow is the trailing window GoalPerformance scores over.
const goalPerformanceWindow = 30

// DayStat is one entry of the weekly completion series.
type DayStat struct {
	Name       string  `json:"name"`
	Completion float64 `json:"completion"`
	Date       string  `json:"date"`
}

// GoalScore is one goal's 30-day performance entry for the chart.
type GoalScore struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// WeeklyStats returns the last 7 days of completion percentages, oldest
// first, ending with today.
func WeeklyStats(completions []models.Completion, tasks []models.Task, today time.Time) []DayStat {
	stats := make([]DayStat, 0, 7)
	for i := 6; i >= 0; i-- {
		day := dayStart(today).AddDate(0, 0, -i)
		stats = append(stats, DayStat{
			Name:       weekdayLabel(day),
			Completion: DayCompletions(completions, tasks, day),
			Date:       FormatDate(day),
		})
	}
	return stats
}

// MonthStats returns the completion percentage across the anchor's calendar
// month, weighting by due-task counts: it divides total completed tasks by
// total due tasks over the month, so busier days influence the result more
// than a plain mean of daily percentages would.
func MonthStats(completions []models.Completion, tasks []models.Task, anchor time.Time) float64 {
	y, m, _ := anchor.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	totalDue, totalDone := 0, 0
	for i := 0; i < daysInMonth; i++ {
		day := first.AddDate(0, 0, i)
		done := completedTaskIDs(completions, FormatDate(day))
		for _, t := range tasks {
			if !t.IsActive || !IsTaskDueOnDate(t, day) {
				continue
			}
			totalDue++
			if done[t.ID] {
				totalDone++
			}
		}
	}
	if totalDue == 0 {
		return 0
	}
	return float64(totalDone) / float64(totalDue) * 100
}

// GoalRecentProgress returns the completion percentage for one goal's tasks
// over the trailing 7 days ending today, weighted by due-task counts. A goal
// with no tasks reports 0.
func GoalRecentProgress(completions []models.Completion, tasks []models.Task, goalID string, today time.Time) float64 {
	goalTasks := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.GoalID == goalID {
			goalTasks = append(goalTasks, t)
		}
	}
	if len(goalTasks) == 0 {
		return 0
	}

	totalDue, totalDone := 0, 0
	for i := 0; i < 7; i++ {
		day := dayStart(today).AddDate(0, 0, -i)
		done := completedTaskIDs(completions, FormatDate(day))
		for _, t := range goalTasks {
			if !IsTaskDueOnDate(t, day) {
				continue
			}
			totalDue++
			if done[t.ID] {
				totalDone++
			}
		}
	}
	if totalDue == 0 {
		return 0
	}
	return float64(totalDone) / float64(totalDue) * 100
}

// GoalPerformance scores each goal over the trailing 30 days ending today.
// Each day contributes completed/due for that goal's active due tasks; a day
// with nothing due contributes a full score, which rewards sparse schedules.
// A goal with no tasks at all scores 0.
func GoalPerformance(goals []models.Goal, tasks []models.Task, completions []models.Completion, today time.Time) []GoalScore {
	scores := make([]GoalScore, 0, len(goals))
	for _, goal := range goals {
		goalTasks := make([]models.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.GoalID == goal.ID {
				goalTasks = append(goalTasks, t)
			}
		}
		if len(goalTasks) == 0 {
			scores = append(scores, GoalScore{Name: goal.Title, Value: 0, Color: goal.Color})
			continue
		}

		total := 0.0
		for i := 0; i < goalPerformanceWindow; i++ {
			day := dayStart(today).AddDate(0, 0, -i)
			done := completedTaskIDs(completions, FormatDate(day))
			due, finished := 0, 0
			for _, t := range goalTasks {
				if !t.IsActive || !IsTaskDueOnDate(t, day) {
					continue
				}
				due++
				if done[t.ID] {
					finished++
				}
			}
			if due > 0 {
				total += float64(finished) / float64(due)
			} else {
				total++
			}
		}
		scores = append(scores, GoalScore{
			Name:  goal.Title,
			Value: int(math.Round(total / goalPerformanceWindow * 100)),
			Color: goal.Color,
		})
	}
	return scores
}
