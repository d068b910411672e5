package analytics

import (
	"testing"

	"github.com/ajaychandraavanshi66-eng/Goal-Planner/models"
)

func TestCurrentStreakZeroWhenNothingCompleted(t *testing.T) {
	// Task has been due since yesterday and never completed, and the day
	// before it started does not exist in its history window.
	tasks := []models.Task{dailyTask("t1", "g1", "2024-01-09")}
	today := date(t, "2024-01-10")
	if got := CurrentStreak(nil, tasks, today); got != 0 {
		t.Fatalf("expected streak 0, got %d", got)
	}
}

func TestCurrentStreakFiveCompletedDays(t *testing.T) {
	tasks := []models.Task{dailyTask("t1", "g1", "2023-01-01")}
	var completions []models.Completion
	for _, d := range []string{"2024-01-06", "2024-01-07", "2024-01-08", "2024-01-09", "2024-01-10"} {
		completions = append(completions, completedOn("t1", d))
	}
	today := date(t, "2024-01-10")
	if got := CurrentStreak(completions, tasks, today); got != 5 {
		t.Fatalf("expected streak 5, got %d", got)
	}
}

func TestCurrentStreakSurvivesUnfinishedToday(t *testing.T) {
	// Today's tasks are not done yet; the streak anchors on yesterday
	// instead of breaking.
	tasks := []models.Task{dailyTask("t1", "g1", "2023-01-01")}
	var completions []models.Completion
	for _, d := range []string{"2024-01-06", "2024-01-07", "2024-01-08", "2024-01-09"} {
		completions = append(completions, completedOn("t1", d))
	}
	today := date(t, "2024-01-10")
	if got := CurrentStreak(completions, tasks, today); got != 4 {
		t.Fatalf("expected streak 4, got %d", got)
	}
}

func TestCurrentStreakVacuousDaysHitGuard(t *testing.T) {
	// With nothing ever due every day is a vacuous success, so the walk
	// runs until the iteration guard.
	if got := CurrentStreak(nil, nil, date(t, "2024-01-10")); got != 1000 {
		t.Fatalf("expected the 1000-iteration guard, got %d", got)
	}
}

func TestBestStreakBoundedByLookback(t *testing.T) {
	if got := BestStreak(nil, nil, date(t, "2024-01-10")); got != 365 {
		t.Fatalf("expected 365 with an all-successful history, got %d", got)
	}
}

func TestBestStreakTracksLongestRun(t *testing.T) {
	tasks := []models.Task{dailyTask("t1", "g1", "2023-01-01")}
	var completions []models.Completion
	// A 2-day run, a gap on 2024-01-03, then a 7-day run up to today.
	for _, d := range []string{"2024-01-01", "2024-01-02"} {
		completions = append(completions, completedOn("t1", d))
	}
	for _, d := range []string{"2024-01-04", "2024-01-05", "2024-01-06", "2024-01-07", "2024-01-08", "2024-01-09", "2024-01-10"} {
		completions = append(completions, completedOn("t1", d))
	}
	today := date(t, "2024-01-10")
	if got := BestStreak(completions, tasks, today); got != 7 {
		t.Fatalf("expected best streak 7, got %d", got)
	}
	if got := CurrentStreak(completions, tasks, today); got != 7 {
		t.Fatalf("expected current streak 7, got %d", got)
	}
}

func TestStreakVacuousSuccessBridgesGaps(t *testing.T) {
	// Weekly Monday task completed on the last two Mondays: the in-between
	// days have nothing due and count as successful, so the streak spans
	// them.
	tasks := []models.Task{weeklyTask("t1", "g1", "2024-01-01", "Mon")}
	completions := []models.Completion{
		completedOn("t1", "2024-01-01"),
		completedOn("t1", "2024-01-08"),
	}
	today := date(t, "2024-01-10") // Wednesday, nothing due
	got := CurrentStreak(completions, tasks, today)
	if got < 10 {
		t.Fatalf("streak should span vacuous days, got %d", got)
	}
}
