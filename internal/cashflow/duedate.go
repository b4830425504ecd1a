// Package cashflow implements the month-level cash-flow computations behind
// the dashboard: due-date projection, recurring-income normalization, and
// the headline aggregation. Everything here is a pure function over plain
// snapshots; "today" is always an explicit parameter so callers outside a
// request context (and tests) get deterministic results.
package cashflow

import (
	"fmt"
	"time"
)

// NextOccurrence returns the next calendar occurrence of the given
// day-of-month on or after today. When today's day is already past the
// target day, the occurrence rolls into the next month, and into the next
// year past December. Days 29-31 are clamped to the last day of the target
// month, so a due day of 31 resolves to Feb 28 rather than overflowing
// into March.
func NextOccurrence(dayOfMonth int, today time.Time) time.Time {
	if dayOfMonth < 1 {
		dayOfMonth = 1
	}
	if dayOfMonth > 31 {
		dayOfMonth = 31
	}

	year, month := today.Year(), today.Month()
	if today.Day() > dayOfMonth {
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}

	day := dayOfMonth
	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of whole calendar days from today until due.
// Both arguments are reduced to their calendar dates first, so the result
// does not depend on the time of day.
func DaysUntil(due, today time.Time) int {
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24)
}

// DueLabel formats a due date relative to today for display:
// "Today", "Tomorrow", "In 2 days", "In 3 days", then "Jan 15".
func DueLabel(due, today time.Time) string {
	switch days := DaysUntil(due, today); {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days <= 3:
		return fmt.Sprintf("In %d days", days)
	default:
		return due.Format("Jan 2")
	}
}

func lastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
