package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/model"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/schedule"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// StartSessionStore defines the store interface needed by StartSession.
type StartSessionStore interface {
	GetShifts(ctx context.Context) ([]db.Shift, error)
	GetSessions(ctx context.Context) ([]db.TrainingSession, error)
	UpsertSession(ctx context.Context, session *db.TrainingSession) error
}

// StartSession materializes a shift occurrence into an active,
// incomplete session. One-off shifts with an anchor start on the
// anchor date; everything else starts on the current date. At most one
// session may exist per shift and date, so starting fails if an active
// or completed session already covers the slot.
func StartSession(ctx context.Context, store StartSessionStore, logger *zap.Logger, shiftID string, now time.Time) (*db.TrainingSession, error) {
	shifts, err := store.GetShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	shift := db.FindShift(shifts, shiftID)
	if shift == nil {
		return nil, fmt.Errorf("shift %s: %w", shiftID, ErrShiftNotFound)
	}

	date := now
	if shift.Recurrence == model.RecurrenceOneOff && shift.StartDate != nil {
		date = *shift.StartDate
	}
	startsAt := schedule.SlotTime(date, shift.StartHour, shift.StartMinute)

	sessions, err := store.GetSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	for i := range sessions {
		existing := &sessions[i]
		if existing.ShiftID == shiftID && schedule.SameDay(existing.Date, startsAt) && (existing.IsActive || existing.Completed) {
			return nil, fmt.Errorf("shift %s on %s: %w", shiftID, startsAt.Format("2006-01-02"), ErrSlotAlreadyTaken)
		}
	}

	session := &db.TrainingSession{
		ID:          uuid.New().String(),
		ShiftID:     shiftID,
		Date:        startsAt,
		IsActive:    true,
		Completed:   false,
		AttendeeIDs: []string{},
		ClubName:    shift.ClubName,
	}

	if err := store.UpsertSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("Session started",
		zap.String("session_id", session.ID),
		zap.String("shift_id", shiftID),
		zap.Time("date", session.Date))
	return session, nil
}
