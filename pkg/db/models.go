package db

import (
	"fmt"
	"time"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/model"
)

// ManualEntryShiftID marks sessions logged retroactively, with no
// originating shift template.
const ManualEntryShiftID = ""

// Shift is a recurring (or one-off) weekly time-slot template owned by staff.
type Shift struct {
	ID              string
	DayOfWeek       time.Weekday
	StartHour       int
	StartMinute     int
	DurationMinutes int
	CoachID         string
	StudentIDs      []string
	Recurrence      model.Recurrence
	// StartDate anchors BIWEEKLY parity and pins ONE_OFF shifts to a
	// single date. Callers are responsible for keeping its weekday
	// consistent with DayOfWeek; a mismatch produces undefined parity.
	StartDate *time.Time
	ClubName  string
}

// HasStudent reports whether the given member is on the shift roster.
func (s *Shift) HasStudent(userID string) bool {
	for _, id := range s.StudentIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Payment is one attendee's payment state for a session. An absent
// entry means an unpaid default amount.
type Payment struct {
	Paid   bool    `json:"paid"`
	Amount float64 `json:"amount"`
}

// TrainingSession is a concrete, persisted training event: either a
// materialized shift occurrence or a freestanding manual entry.
type TrainingSession struct {
	ID               string
	ShiftID          string // ManualEntryShiftID for manual entries
	Date             time.Time
	IsActive         bool
	Completed        bool
	AttendeeIDs      []string // frozen snapshot, set at finalization
	HiddenForUserIDs []string
	Notes            string
	YoutubeURL       string
	TurmaName        string
	CoachID          string // override of the shift's coach, set on manual entries
	ClubName         string
	SessionCost      float64
	IsCostPaid       bool
	Payments         map[string]Payment
}

// HiddenFor reports whether the session was soft-deleted by the given user.
func (t *TrainingSession) HiddenFor(userID string) bool {
	for _, id := range t.HiddenForUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// HasAttendee reports whether the user is on the frozen attendee list.
func (t *TrainingSession) HasAttendee(userID string) bool {
	for _, id := range t.AttendeeIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ShiftRSVP is a member's stated intention for one shift occurrence.
// Absence of a record means "undecided", not "not attending".
type ShiftRSVP struct {
	ID        string
	ShiftID   string
	UserID    string
	Date      time.Time // calendar date only
	Attending bool
}

// RSVPID derives the composite key that makes RSVP writes idempotent:
// at most one record per (user, shift, date).
func RSVPID(userID, shiftID string, date time.Time) string {
	return fmt.Sprintf("%s_%s_%s", userID, shiftID, date.Format("2006-01-02"))
}
