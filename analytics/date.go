// Package analytics is the recurrence-and-analytics engine: pure functions
// that decide which tasks are due on a calendar date and aggregate due and
// completed counts into completion rates, streaks and goal scores. Every
// function works on snapshot slices passed by the caller and keeps no state
// between calls.
package analytics

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC-midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("analytics: invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a time as a YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// dayStart truncates a time to its calendar day.
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekdayLabel returns the 3-letter abbreviation ("Mon") for a date's weekday.
func weekdayLabel(t time.Time) string {
	return t.Weekday().String()[:3]
}
