package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/schedule"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// AttendanceStore defines the store interface needed by the attendance
// ledger operations.
type AttendanceStore interface {
	GetRSVPs(ctx context.Context) ([]db.ShiftRSVP, error)
	UpsertRSVP(ctx context.Context, rsvp *db.ShiftRSVP) error
	DeleteRSVP(ctx context.Context, id string) error
}

// SetIntention records a member's intention for one shift occurrence.
// The ledger itself only knows upsert and delete; the toggle policy
// lives here: submitting the same boolean the ledger already holds
// deletes the record instead of writing a duplicate, returning the
// member to "undecided". The returned flag reports whether the record
// was removed.
func SetIntention(ctx context.Context, store AttendanceStore, logger *zap.Logger, shiftID, userID string, date time.Time, attending bool) (removed bool, err error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	id := db.RSVPID(userID, shiftID, day)

	rsvps, err := store.GetRSVPs(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to fetch RSVPs: %w", err)
	}

	for i := range rsvps {
		existing := &rsvps[i]
		if existing.ID != id {
			continue
		}
		if existing.Attending == attending {
			if err := store.DeleteRSVP(ctx, id); err != nil {
				return false, fmt.Errorf("failed to withdraw RSVP: %w", err)
			}
			logger.Info("Intention toggled off",
				zap.String("rsvp_id", id),
				zap.Bool("was_attending", attending))
			return true, nil
		}
		break
	}

	rsvp := &db.ShiftRSVP{
		ID:        id,
		ShiftID:   shiftID,
		UserID:    userID,
		Date:      day,
		Attending: attending,
	}
	if err := store.UpsertRSVP(ctx, rsvp); err != nil {
		return false, fmt.Errorf("failed to save RSVP: %w", err)
	}

	logger.Info("Intention recorded",
		zap.String("rsvp_id", id),
		zap.Bool("attending", attending))
	return false, nil
}

// WithdrawIntention deletes a member's record for one occurrence,
// returning them to "undecided".
func WithdrawIntention(ctx context.Context, store AttendanceStore, logger *zap.Logger, shiftID, userID string, date time.Time) error {
	id := db.RSVPID(userID, shiftID, date)
	if err := store.DeleteRSVP(ctx, id); err != nil {
		return fmt.Errorf("failed to withdraw RSVP: %w", err)
	}
	logger.Info("Intention withdrawn", zap.String("rsvp_id", id))
	return nil
}

// IntentionCount is the capacity display for one occurrence.
type IntentionCount struct {
	Going      int
	RosterSize int
}

// CountIntentions tallies attending intentions for a shift occurrence
// against the shift's roster size. Pure over the supplied snapshot.
func CountIntentions(shiftID string, date time.Time, shifts []db.Shift, rsvps []db.ShiftRSVP) IntentionCount {
	count := IntentionCount{}
	if shift := db.FindShift(shifts, shiftID); shift != nil {
		count.RosterSize = len(shift.StudentIDs)
	}
	for i := range rsvps {
		r := &rsvps[i]
		if r.ShiftID == shiftID && r.Attending && schedule.SameDay(r.Date, date) {
			count.Going++
		}
	}
	return count
}
