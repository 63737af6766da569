// Package schedule filters the job list by date window and free-text search.
package schedule

import (
	"time"

	"github.com/sudsywork/sudsy/internal/model"
)

// startOfDay returns midnight of t's calendar day in t's own location.
// Comparing each date at its own local midnight avoids off-by-one at day
// boundaries; a shared epoch truncation would not.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart returns the most recent Sunday at or before t, at local midnight.
func weekStart(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// InWindow reports whether a job dated jobDate is visible under the given
// window mode relative to now.
//
// ThisWeek is the Sunday-aligned calendar week containing now: inclusive of
// the most recent Sunday, exclusive of the following Sunday. It is not a
// rolling now..now+7d window.
//
// A zero jobDate (absent or unparseable) is excluded from Today and
// ThisWeek but still shows under All.
func InWindow(jobDate time.Time, now time.Time, mode model.WindowMode) bool {
	if mode == model.WindowAll {
		return true
	}

	if jobDate.IsZero() {
		return false
	}

	jobDay := startOfDay(jobDate)

	switch mode {
	case model.WindowToday:
		return jobDay.Equal(startOfDay(now))
	case model.WindowThisWeek:
		start := weekStart(now)
		end := start.AddDate(0, 0, 7)
		return !jobDay.Before(start) && jobDay.Before(end)
	default:
		return false
	}
}
