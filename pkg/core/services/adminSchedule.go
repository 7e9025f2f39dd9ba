package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/schedule"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// AdminScheduleStore defines the store interface needed by AdminSchedule.
type AdminScheduleStore interface {
	GetShifts(ctx context.Context) ([]db.Shift, error)
	GetSessions(ctx context.Context) ([]db.TrainingSession, error)
}

// AdminSchedule computes the organization-wide 7-day schedule.
// closureRules are optional RRULE strings (already syntax-checked at
// config load); occurrences falling on a closure day are dropped.
func AdminSchedule(ctx context.Context, store AdminScheduleStore, logger *zap.Logger, closureRules []string, now time.Time) ([]schedule.Occurrence, error) {
	shifts, err := store.GetShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	sessions, err := store.GetSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	occurrences := schedule.Next7Days(shifts, sessions, now)

	if len(closureRules) > 0 {
		closed, err := schedule.ClosedDays(closureRules, now, now.AddDate(0, 0, schedule.ScheduleWindowDays))
		if err != nil {
			return nil, fmt.Errorf("failed to expand closure rules: %w", err)
		}
		before := len(occurrences)
		occurrences = schedule.WithoutClosedDays(occurrences, closed)
		if dropped := before - len(occurrences); dropped > 0 {
			logger.Info("Occurrences dropped by closure rules", zap.Int("dropped", dropped))
		}
	}

	logger.Info("Admin schedule computed",
		zap.Int("shifts", len(shifts)),
		zap.Int("occurrences", len(occurrences)))
	return occurrences, nil
}
