package model

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCoach   Role = "coach"
	RoleStudent Role = "student"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleCoach || r == RoleStudent
}

// IsStaff reports whether the role may manage shifts and sessions.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleCoach
}

// Recurrence describes how often a shift produces occurrences.
// Each variant answers for itself whether a candidate date belongs to
// the shift, so the occurrence calculators never branch on the variant.
type Recurrence string

const (
	RecurrenceOneOff   Recurrence = "ONE_OFF"
	RecurrenceWeekly   Recurrence = "WEEKLY"
	RecurrenceBiweekly Recurrence = "BIWEEKLY"
)

func (r Recurrence) IsValid() bool {
	return r == RecurrenceOneOff || r == RecurrenceWeekly || r == RecurrenceBiweekly
}

// AdvanceWeeks returns how many weeks the next-occurrence search jumps
// when a candidate date is already taken by an active or completed session.
func (r Recurrence) AdvanceWeeks() int {
	if r == RecurrenceBiweekly {
		return 2
	}
	return 1
}

// Includes reports whether the given candidate date is an occurrence of
// a shift with this recurrence. anchor is the shift's optional start
// date; weekOffset is the candidate's week offset relative to "now".
//
// Rules:
//   - WEEKLY: every week.
//   - BIWEEKLY with anchor: even whole-week distance from the anchor.
//     Without an anchor the rule cannot be phased, so only the current
//     week (offset 0) is included.
//   - ONE_OFF with anchor: only the anchor date itself. Without an
//     anchor only the current week is included.
func (r Recurrence) Includes(date time.Time, anchor *time.Time, weekOffset int) bool {
	switch r {
	case RecurrenceWeekly:
		return true
	case RecurrenceBiweekly:
		if anchor == nil {
			return weekOffset == 0
		}
		return wholeWeeksBetween(*anchor, date)%2 == 0
	case RecurrenceOneOff:
		if anchor == nil {
			return weekOffset == 0
		}
		return sameCalendarDay(*anchor, date)
	default:
		return false
	}
}

// wholeWeeksBetween counts completed weeks from a to b using calendar
// days, ignoring time of day. Distances are mirrored for candidates
// before the anchor so parity stays stable on both sides.
func wholeWeeksBetween(a, b time.Time) int {
	days := int(midnightUTC(b).Sub(midnightUTC(a)).Hours() / 24)
	weeks := days / 7
	if weeks < 0 {
		weeks = -weeks
	}
	return weeks
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
