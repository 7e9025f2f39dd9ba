package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// ShiftAdminStore defines the store interface needed by shift
// administration.
type ShiftAdminStore interface {
	GetShifts(ctx context.Context) ([]db.Shift, error)
	UpsertShift(ctx context.Context, shift *db.Shift) error
}

// SaveShift validates and persists a shift template. An empty ID means
// a new shift; editing reuses the same upsert path, and all future
// occurrences reflect the edit instantly since occurrences are always
// recomputed from the template.
func SaveShift(ctx context.Context, store ShiftAdminStore, logger *zap.Logger, shift *db.Shift) (*db.Shift, error) {
	if !shift.Recurrence.IsValid() {
		return nil, fmt.Errorf("invalid recurrence %q", shift.Recurrence)
	}
	if shift.DurationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d", shift.DurationMinutes)
	}
	if shift.StartHour < 0 || shift.StartHour > 23 || shift.StartMinute < 0 || shift.StartMinute > 59 {
		return nil, fmt.Errorf("invalid start time %02d:%02d", shift.StartHour, shift.StartMinute)
	}
	if shift.StartDate != nil && shift.StartDate.Weekday() != shift.DayOfWeek {
		// Tolerated, but bi-weekly parity is undefined for mismatched input.
		logger.Warn("Shift start date weekday does not match day of week",
			zap.String("shift_id", shift.ID),
			zap.String("start_date", shift.StartDate.Format("2006-01-02")),
			zap.String("day_of_week", shift.DayOfWeek.String()))
	}

	if shift.ID == "" {
		shift.ID = uuid.New().String()
	}
	if shift.StudentIDs == nil {
		shift.StudentIDs = []string{}
	}

	if err := store.UpsertShift(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to save shift: %w", err)
	}

	logger.Info("Shift saved",
		zap.String("shift_id", shift.ID),
		zap.String("day", shift.DayOfWeek.String()),
		zap.String("recurrence", string(shift.Recurrence)))
	return shift, nil
}

// ListShifts fetches all shift templates.
func ListShifts(ctx context.Context, store ShiftAdminStore, logger *zap.Logger) ([]db.Shift, error) {
	shifts, err := store.GetShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	logger.Debug("Shifts fetched", zap.Int("count", len(shifts)))
	return shifts, nil
}
