package analytics

import (
	"errors"
	"testing"

	"github.com/ajaychandraavanshi66-eng/Goal-Planner/models"
)

func TestParseRecurrenceUnknownType(t *testing.T) {
	_, err := ParseRecurrence("hourly", nil)
	if !errors.Is(err, ErrInvalidRepeatType) {
		t.Fatalf("expected ErrInvalidRepeatType, got %v", err)
	}
}

func TestParseRecurrenceBadConfig(t *testing.T) {
	cases := []struct {
		repeatType string
		config     []string
	}{
		{"weekly", []string{"Monday"}},
		{"weekly", []string{"Mon", "Xyz"}},
		{"monthly", []string{"0"}},
		{"monthly", []string{"32"}},
		{"monthly", []string{"fifteen"}},
		{"yearly", []string{"13-01"}},
		{"yearly", []string{"02-30"}},
		{"yearly", []string{"0102"}},
	}
	for _, tc := range cases {
		if _, err := ParseRecurrence(tc.repeatType, tc.config); !errors.Is(err, ErrInvalidRepeatConfig) {
			t.Fatalf("%s %v: expected ErrInvalidRepeatConfig, got %v", tc.repeatType, tc.config, err)
		}
	}
}

func TestDailyTaskDueWithinWindow(t *testing.T) {
	end := "2024-01-05"
	task := models.Task{
		ID:         "t1",
		RepeatType: models.RepeatDaily,
		StartDate:  "2024-01-01",
		EndDate:    &end,
		IsActive:   true,
	}

	for _, s := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"} {
		if !IsTaskDueOnDate(task, date(t, s)) {
			t.Fatalf("daily task should be due on %s", s)
		}
	}
	if IsTaskDueOnDate(task, date(t, "2023-12-31")) {
		t.Fatal("daily task due before its start date")
	}
	if IsTaskDueOnDate(task, date(t, "2024-01-06")) {
		t.Fatal("daily task due after its end date")
	}
}

func TestWeeklyTaskDueOnConfiguredWeekdays(t *testing.T) {
	task := weeklyTask("t1", "g1", "2024-01-01", "Mon", "Wed")

	// 2024-01-08 is a Monday.
	due := map[string]bool{
		"2024-01-08": true,  // Mon
		"2024-01-09": false, // Tue
		"2024-01-10": true,  // Wed
		"2024-01-11": false, // Thu
		"2024-01-12": false, // Fri
		"2024-01-13": false, // Sat
		"2024-01-14": false, // Sun
	}
	for s, want := range due {
		if got := IsTaskDueOnDate(task, date(t, s)); got != want {
			t.Fatalf("weekly task due on %s: got %v want %v", s, got, want)
		}
	}
}

func TestMonthlyTaskDueOnConfiguredDays(t *testing.T) {
	task := models.Task{
		ID:           "t1",
		RepeatType:   models.RepeatMonthly,
		RepeatConfig: models.StringList{"1", "15"},
		StartDate:    "2024-01-01",
		IsActive:     true,
	}

	if !IsTaskDueOnDate(task, date(t, "2024-02-01")) {
		t.Fatal("monthly task should be due on the 1st")
	}
	if !IsTaskDueOnDate(task, date(t, "2024-03-15")) {
		t.Fatal("monthly task should be due on the 15th")
	}
	if IsTaskDueOnDate(task, date(t, "2024-02-14")) {
		t.Fatal("monthly task due on an unconfigured day")
	}
}

func TestYearlyTaskDueOnConfiguredMonthDays(t *testing.T) {
	task := models.Task{
		ID:           "t1",
		RepeatType:   models.RepeatYearly,
		RepeatConfig: models.StringList{"01-08"},
		StartDate:    "2024-01-01",
		IsActive:     true,
	}

	if !IsTaskDueOnDate(task, date(t, "2024-01-08")) {
		t.Fatal("yearly task should be due on its month-day")
	}
	if !IsTaskDueOnDate(task, date(t, "2025-01-08")) {
		t.Fatal("yearly task should recur the next year")
	}
	if IsTaskDueOnDate(task, date(t, "2024-01-09")) {
		t.Fatal("yearly task due on an unconfigured day")
	}
}

func TestUnrecognizedRepeatTypeNeverDue(t *testing.T) {
	task := models.Task{
		ID:         "t1",
		RepeatType: "fortnightly",
		StartDate:  "2024-01-01",
		IsActive:   true,
	}
	if IsTaskDueOnDate(task, date(t, "2024-01-08")) {
		t.Fatal("unrecognized repeat type should never be due")
	}
}

func TestMalformedTaskDatesNeverDue(t *testing.T) {
	task := models.Task{
		ID:         "t1",
		RepeatType: models.RepeatDaily,
		StartDate:  "garbage",
		IsActive:   true,
	}
	if IsTaskDueOnDate(task, date(t, "2024-01-08")) {
		t.Fatal("task with a malformed start date should never be due")
	}

	badEnd := "not-a-date"
	task.StartDate = "2024-01-01"
	task.EndDate = &badEnd
	if IsTaskDueOnDate(task, date(t, "2024-01-08")) {
		t.Fatal("task with a malformed end date should never be due")
	}
}

func TestParseDateRejectsMalformedInput(t *testing.T) {
	for _, s := range []string{"", "2024-13-01", "01/08/2024", "2024-01-32"} {
		if _, err := ParseDate(s); err == nil {
			t.Fatalf("ParseDate(%q) should fail", s)
		}
	}
}
