// Package schedule computes ephemeral training occurrences from shift
// templates and the current session snapshot. Nothing here is ever
// persisted; every view is recomputed from an injected "now" so results
// are reproducible in tests and degrade gracefully when shifts change.
package schedule

import "time"

// OccurrenceDate returns the calendar date of the next occurrence of
// the given weekday at or after now's date, shifted by weeksFromNow
// additional weeks. Weekday comparison uses Go's fixed Sunday-based
// 0-6 mapping. The result is a UTC midnight; time of day is applied
// separately with SlotTime.
func OccurrenceDate(weekday time.Weekday, weeksFromNow int, now time.Time) time.Time {
	days := (int(weekday) - int(now.Weekday()) + 7) % 7
	return midnight(now).AddDate(0, 0, days+7*weeksFromNow)
}

// StartOfWeek returns the Sunday that opens the calendar week
// containing now.
func StartOfWeek(now time.Time) time.Time {
	return midnight(now).AddDate(0, 0, -int(now.Weekday()))
}

// WeekAnchoredDate returns the date of the given weekday within the
// calendar week containing now, shifted by weekOffset weeks. Unlike
// OccurrenceDate the result can lie in the past for offset 0, which
// the admin view needs to decide whether a slot already elapsed this
// week.
func WeekAnchoredDate(weekday time.Weekday, weekOffset int, now time.Time) time.Time {
	return StartOfWeek(now).AddDate(0, 0, int(weekday)+7*weekOffset)
}

// SlotTime combines a calendar date with a shift's start time.
func SlotTime(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayLabel renders a date relative to now: "today", "tomorrow", or the
// weekday name. Locale-specific rendering is a presentation concern.
func DayLabel(date, now time.Time) string {
	today := midnight(now)
	switch {
	case SameDay(date, today):
		return "today"
	case SameDay(date, today.AddDate(0, 0, 1)):
		return "tomorrow"
	default:
		return date.Weekday().String()
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
