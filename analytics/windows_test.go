package analytics

import (
	"math"
	"reflect"
	"testing"

	"github.com/ajaychandraavanshi66-eng/Goal-Planner/models"
)

func TestWeeklyStatsSeries(t *testing.T) {
	tasks := []models.Task{dailyTask("t1", "g1", "2023-01-01")}
	completions := []models.Completion{completedOn("t1", "2024-01-10")}
	today := date(t, "2024-01-10") // Wednesday

	stats := WeeklyStats(completions, tasks, today)
	if len(stats) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(stats))
	}
	if stats[0].Date != "2024-01-04" || stats[6].Date != "2024-01-10" {
		t.Fatalf("series should run oldest to newest, got %s .. %s", stats[0].Date, stats[6].Date)
	}
	if stats[0].Name != "Thu" || stats[6].Name != "Wed" {
		t.Fatalf("unexpected weekday labels %s .. %s", stats[0].Name, stats[6].Name)
	}
	if stats[6].Completion != 100 {
		t.Fatalf("today should be 100, got %v", stats[6].Completion)
	}
	for i := 0; i < 6; i++ {
		if stats[i].Completion != 0 {
			t.Fatalf("day %s should be 0, got %v", stats[i].Date, stats[i].Completion)
		}
	}
}

func TestMonthStatsTaskCountWeighted(t *testing.T) {
	// A daily task done all 29 days of February 2024 plus a monthly task
	// missed on its single due day: 29 completed out of 30 due. A plain
	// mean of daily percentages would land higher.
	daily := dailyTask("t1", "g1", "2023-01-01")
	monthly := models.Task{
		ID:           "t2",
		GoalID:       "g1",
		RepeatType:   models.RepeatMonthly,
		RepeatConfig: models.StringList{"1"},
		StartDate:    "2023-01-01",
		IsActive:     true,
	}
	var completions []models.Completion
	for i := 1; i <= 29; i++ {
		d := date(t, "2024-02-01").AddDate(0, 0, i-1)
		completions = append(completions, completedOn("t1", FormatDate(d)))
	}

	got := MonthStats(completions, []models.Task{daily, monthly}, date(t, "2024-02-15"))
	want := 29.0 / 30.0 * 100
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("month stats got %v want %v", got, want)
	}
}

func TestMonthStatsEmptyMonth(t *testing.T) {
	tasks := []models.Task{dailyTask("t1", "g1", "2025-01-01")}
	if got := MonthStats(nil, tasks, date(t, "2024-02-15")); got != 0 {
		t.Fatalf("expected 0 for a month with nothing due, got %v", got)
	}
}

func TestGoalRecentProgress(t *testing.T) {
	tasks := []models.Task{
		dailyTask("t1", "g1", "2023-01-01"),
		dailyTask("t2", "g2", "2023-01-01"),
	}
	var completions []models.Completion
	for _, d := range []string{"2024-01-08", "2024-01-09", "2024-01-10"} {
		completions = append(completions, completedOn("t1", d))
	}
	today := date(t, "2024-01-10")

	got := GoalRecentProgress(completions, tasks, "g1", today)
	want := 3.0 / 7.0 * 100
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("goal progress got %v want %v", got, want)
	}
	if got := GoalRecentProgress(completions, tasks, "missing", today); got != 0 {
		t.Fatalf("goal without tasks should report 0, got %v", got)
	}
}

func TestGoalPerformanceZeroTaskGoal(t *testing.T) {
	goals := []models.Goal{{ID: "g1", Title: "Read", Color: "#fff"}}
	scores := GoalPerformance(goals, nil, nil, date(t, "2024-01-10"))
	if len(scores) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(scores))
	}
	if scores[0].Value != 0 {
		t.Fatalf("goal with no tasks should score 0, got %d", scores[0].Value)
	}
	if scores[0].Name != "Read" || scores[0].Color != "#fff" {
		t.Fatalf("entry should carry goal title and color, got %+v", scores[0])
	}
}

func TestGoalPerformanceNeverDueScoresFull(t *testing.T) {
	goals := []models.Goal{{ID: "g1", Title: "Travel", Color: "#0ff"}}
	tasks := []models.Task{dailyTask("t1", "g1", "2030-01-01")}
	scores := GoalPerformance(goals, tasks, nil, date(t, "2024-01-10"))
	if scores[0].Value != 100 {
		t.Fatalf("goal never due in the window should score 100, got %d", scores[0].Value)
	}
}

func TestGoalPerformanceAveragesDailyScores(t *testing.T) {
	goals := []models.Goal{{ID: "g1", Title: "Fitness", Color: "#f00"}}
	tasks := []models.Task{dailyTask("t1", "g1", "2023-01-01")}
	today := date(t, "2024-01-30")
	// Completed on 15 of the trailing 30 days.
	var completions []models.Completion
	for i := 0; i < 15; i++ {
		d := dayStart(today).AddDate(0, 0, -i)
		completions = append(completions, completedOn("t1", FormatDate(d)))
	}

	scores := GoalPerformance(goals, tasks, completions, today)
	if scores[0].Value != 50 {
		t.Fatalf("expected score 50, got %d", scores[0].Value)
	}
}

func TestAggregatorsAreIdempotent(t *testing.T) {
	goals := []models.Goal{{ID: "g1", Title: "Fitness", Color: "#f00"}}
	tasks := []models.Task{
		dailyTask("t1", "g1", "2023-01-01"),
		weeklyTask("t2", "g1", "2023-01-01", "Mon", "Wed"),
	}
	completions := []models.Completion{
		completedOn("t1", "2024-01-08"),
		completedOn("t2", "2024-01-08"),
		completedOn("t1", "2024-01-10"),
	}
	today := date(t, "2024-01-10")

	week1 := WeeklyStats(completions, tasks, today)
	week2 := WeeklyStats(completions, tasks, today)
	if !reflect.DeepEqual(week1, week2) {
		t.Fatal("WeeklyStats drifted between identical calls")
	}

	perf1 := GoalPerformance(goals, tasks, completions, today)
	perf2 := GoalPerformance(goals, tasks, completions, today)
	if !reflect.DeepEqual(perf1, perf2) {
		t.Fatal("GoalPerformance drifted between identical calls")
	}

	if CurrentStreak(completions, tasks, today) != CurrentStreak(completions, tasks, today) {
		t.Fatal("CurrentStreak drifted between identical calls")
	}
}
