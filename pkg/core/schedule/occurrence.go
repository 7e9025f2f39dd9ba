package schedule

import (
	"sort"
	"time"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/model"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// MaxAdvanceSteps bounds the next-occurrence search per shift. Each
// step advances one recurrence interval, so the search looks at most
// 20 weeks ahead for a bi-weekly shift before reporting that no
// upcoming occurrence exists. The bound keeps the search terminating
// on adversarial data (every future slot already completed).
const MaxAdvanceSteps = 10

// ScheduleWindowDays is the horizon of the admin schedule view.
const ScheduleWindowDays = 7

// Occurrence is an ephemeral, computed (shift, date) pair: a potential
// or upcoming training instance. Occurrences are never persisted; the
// lifecycle manager consumes one to materialize a TrainingSession.
type Occurrence struct {
	ShiftID         string
	ClubName        string
	CoachID         string
	Date            time.Time
	StartsAt        time.Time
	DurationMinutes int
	WeekOffset      int
	Label           string

	// RSVP enrichment, populated for the member view.
	GoingCount      int
	RosterSize      int
	CallerAttending *bool
}

// NextForMember returns the single next relevant occurrence for a
// member, or nil when the member has no eligible upcoming shift.
// Coaches are matched by shift ownership, students by roster
// membership. Dates already covered by an active or completed session
// are skipped, advancing by the shift's recurrence interval, within
// the MaxAdvanceSteps bound. Candidates are ranked by start time
// ascending.
func NextForMember(memberID string, role model.Role, shifts []db.Shift, sessions []db.TrainingSession, rsvps []db.ShiftRSVP, now time.Time) *Occurrence {
	index := db.SessionsByShiftDay(sessions)

	var best *Occurrence
	for i := range shifts {
		shift := &shifts[i]
		if !memberParticipates(shift, memberID, role) {
			continue
		}
		occ := nextOpenOccurrence(shift, index, now)
		if occ == nil {
			continue
		}
		if best == nil || occurrenceBefore(occ, best) {
			best = occ
		}
	}

	if best == nil {
		return nil
	}

	best.Label = DayLabel(best.Date, now)
	attachIntentions(best, memberID, shifts, rsvps)
	return best
}

// Next7Days computes the organization-wide schedule for administrators:
// every shift occurrence within a hard 7-day window, this week and next
// week only, sorted ascending by start time. Completed occurrences are
// excluded; elapsed slots are excluded unless an active session still
// needs finalizing.
func Next7Days(shifts []db.Shift, sessions []db.TrainingSession, now time.Time) []Occurrence {
	index := db.SessionsByShiftDay(sessions)
	horizon := now.AddDate(0, 0, ScheduleWindowDays)

	var out []Occurrence
	for i := range shifts {
		shift := &shifts[i]
		for offset := 0; offset <= 1; offset++ {
			date := WeekAnchoredDate(shift.DayOfWeek, offset, now)
			if !shift.Recurrence.Includes(date, shift.StartDate, offset) {
				continue
			}

			slot := SlotTime(date, shift.StartHour, shift.StartMinute)
			existing := index[db.ShiftDayKey(shift.ID, date)]
			if existing != nil && existing.Completed {
				continue
			}
			active := existing != nil && existing.IsActive
			// An elapsed slot only stays visible while a session is
			// running, so staff can still finalize it.
			if offset == 0 && !slot.After(now) && !active {
				continue
			}
			if slot.After(horizon) {
				continue
			}

			out = append(out, Occurrence{
				ShiftID:         shift.ID,
				ClubName:        shift.ClubName,
				CoachID:         shift.CoachID,
				Date:            date,
				StartsAt:        slot,
				DurationMinutes: shift.DurationMinutes,
				WeekOffset:      offset,
				Label:           DayLabel(date, now),
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartsAt.Equal(out[j].StartsAt) {
			return out[i].StartsAt.Before(out[j].StartsAt)
		}
		return out[i].ShiftID < out[j].ShiftID
	})
	return out
}

// nextOpenOccurrence finds the first occurrence of a shift with no
// active or completed session, searching forward from now within
// MaxAdvanceSteps recurrence intervals.
func nextOpenOccurrence(shift *db.Shift, index map[string]*db.TrainingSession, now time.Time) *Occurrence {
	offset := 0
	first := SlotTime(OccurrenceDate(shift.DayOfWeek, 0, now), shift.StartHour, shift.StartMinute)
	if !first.After(now) {
		offset = 1
	}

	for step := 0; step < MaxAdvanceSteps; step++ {
		date := OccurrenceDate(shift.DayOfWeek, offset, now)
		if !shift.Recurrence.Includes(date, shift.StartDate, offset) {
			// Not this shift's week (or a one-off on another date):
			// look at the following week.
			offset++
			continue
		}
		if existing := index[db.ShiftDayKey(shift.ID, date)]; existing != nil && (existing.Completed || existing.IsActive) {
			offset += shift.Recurrence.AdvanceWeeks()
			continue
		}
		return &Occurrence{
			ShiftID:         shift.ID,
			ClubName:        shift.ClubName,
			CoachID:         shift.CoachID,
			Date:            date,
			StartsAt:        SlotTime(date, shift.StartHour, shift.StartMinute),
			DurationMinutes: shift.DurationMinutes,
			WeekOffset:      offset,
		}
	}
	return nil
}

func memberParticipates(shift *db.Shift, memberID string, role model.Role) bool {
	if role == model.RoleCoach {
		return shift.CoachID == memberID
	}
	return shift.HasStudent(memberID)
}

func occurrenceBefore(a, b *Occurrence) bool {
	if !a.StartsAt.Equal(b.StartsAt) {
		return a.StartsAt.Before(b.StartsAt)
	}
	return a.ShiftID < b.ShiftID
}

// attachIntentions fills the RSVP-derived fields of an occurrence from
// the live intention snapshot.
func attachIntentions(occ *Occurrence, memberID string, shifts []db.Shift, rsvps []db.ShiftRSVP) {
	if shift := db.FindShift(shifts, occ.ShiftID); shift != nil {
		occ.RosterSize = len(shift.StudentIDs)
	}
	for i := range rsvps {
		r := &rsvps[i]
		if r.ShiftID != occ.ShiftID || !SameDay(r.Date, occ.Date) {
			continue
		}
		if r.Attending {
			occ.GoingCount++
		}
		if r.UserID == memberID {
			attending := r.Attending
			occ.CallerAttending = &attending
		}
	}
}
