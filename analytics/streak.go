package analytics

import (
	"time"

	"github.com/ajaychandraavanshi66-eng/Goal-Planner/models"
)

const (
	// maxStreakDays bounds the backward walk. A guard, not a domain limit.
	maxStreakDays = 1000
	// bestStreakLookback is how far back BestStreak scans; older history is
	// invisible to it.
	bestStreakLookback = 365
)

// isDaySuccessful reports whether every active task due on the date has a
// completed record. A day with nothing due counts as successful.
func isDaySuccessful(completions []models.Completion, tasks []models.Task, date time.Time) bool {
	done := completedTaskIDs(completions, FormatDate(date))
	for _, t := range tasks {
		if !t.IsActive || !IsTaskDueOnDate(t, date) {
			continue
		}
		if !done[t.ID] {
			return false
		}
	}
	return true
}

// CurrentStreak counts consecutive successful days walking backward from
// today. An unfinished today does not break the streak: the walk anchors on
// yesterday instead and today can still join once completed.
func CurrentStreak(completions []models.Completion, tasks []models.Task, today time.Time) int {
	current := dayStart(today)
	if !isDaySuccessful(completions, tasks, current) {
		current = current.AddDate(0, 0, -1)
	}

	streak := 0
	for streak < maxStreakDays {
		if !isDaySuccessful(completions, tasks, current) {
			break
		}
		streak++
		current = current.AddDate(0, 0, -1)
	}
	return streak
}

// BestStreak returns the longest run of consecutive successful days within
// the most recent 365 calendar days.
func BestStreak(completions []models.Completion, tasks []models.Task, today time.Time) int {
	best, run := 0, 0
	day := dayStart(today)
	for i := 0; i < bestStreakLookback; i++ {
		if isDaySuccessful(completions, tasks, day) {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
		day = day.AddDate(0, 0, -1)
	}
	return best
}
