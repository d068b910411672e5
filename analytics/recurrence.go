package analytics

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	ErrInvalidRepeatType   = errors.New("analytics: invalid repeat type")
	ErrInvalidRepeatConfig = errors.New("analytics: invalid repeat config")
)

var weekdayNames = map[string]bool{
	"Sun": true, "Mon": true, "Tue": true, "Wed": true,
	"Thu": true, "Fri": true, "Sat": true,
}

// Recurrence is a task's repeat rule with its configuration decoded per
// type: a weekday set for weekly, a day-of-month set for monthly, an
// "MM-DD" set for yearly. Daily rules carry no configuration.
type Recurrence struct {
	Type      string
	weekdays  map[string]bool
	monthDays map[int]bool
	yearDays  map[string]bool
}

// ParseRecurrence validates a repeat type and its configuration and returns
// the decoded rule. Task create/update goes through this, so bad rules are
// rejected at construction rather than interpreted ad hoc at query time.
func ParseRecurrence(repeatType string, config []string) (Recurrence, error) {
	r := Recurrence{Type: repeatType}
	switch repeatType {
	case "daily":
		return r, nil
	case "weekly":
		r.weekdays = make(map[string]bool, len(config))
		for _, day := range config {
			if !weekdayNames[day] {
				return Recurrence{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalidRepeatConfig, day)
			}
			r.weekdays[day] = true
		}
		return r, nil
	case "monthly":
		r.monthDays = make(map[int]bool, len(config))
		for _, s := range config {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 31 {
				return Recurrence{}, fmt.Errorf("%w: day of month %q", ErrInvalidRepeatConfig, s)
			}
			r.monthDays[n] = true
		}
		return r, nil
	case "yearly":
		r.yearDays = make(map[string]bool, len(config))
		for _, s := range config {
			if _, err := time.Parse("01-02", s); err != nil {
				return Recurrence{}, fmt.Errorf("%w: month-day %q", ErrInvalidRepeatConfig, s)
			}
			r.yearDays[s] = true
		}
		return r, nil
	default:
		return Recurrence{}, fmt.Errorf("%w: %q", ErrInvalidRepeatType, repeatType)
	}
}

// OccursOn reports whether the rule fires on the given calendar day,
// ignoring any start/end window.
func (r Recurrence) OccursOn(date time.Time) bool {
	switch r.Type {
	case "daily":
		return true
	case "weekly":
		return r.weekdays[weekdayLabel(date)]
	case "monthly":
		return r.monthDays[date.Day()]
	case "yearly":
		return r.yearDays[date.Format("01-02")]
	default:
		return false
	}
}
