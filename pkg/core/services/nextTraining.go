package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/model"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/schedule"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// NextTrainingStore defines the store interface needed by NextTraining.
type NextTrainingStore interface {
	GetShifts(ctx context.Context) ([]db.Shift, error)
	GetSessions(ctx context.Context) ([]db.TrainingSession, error)
	GetRSVPs(ctx context.Context) ([]db.ShiftRSVP, error)
}

// NextTraining fetches a fresh snapshot and computes the member's next
// relevant occurrence. A nil occurrence with a nil error means the
// member has no upcoming training.
func NextTraining(ctx context.Context, store NextTrainingStore, logger *zap.Logger, memberID string, role model.Role, now time.Time) (*schedule.Occurrence, error) {
	logger.Debug("Computing next training",
		zap.String("member_id", memberID),
		zap.String("role", string(role)))

	shifts, err := store.GetShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	sessions, err := store.GetSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	rsvps, err := store.GetRSVPs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch RSVPs: %w", err)
	}

	occ := schedule.NextForMember(memberID, role, shifts, sessions, rsvps, now)
	if occ == nil {
		logger.Info("No upcoming occurrence for member", zap.String("member_id", memberID))
		return nil, nil
	}

	logger.Info("Next training computed",
		zap.String("member_id", memberID),
		zap.String("shift_id", occ.ShiftID),
		zap.Time("starts_at", occ.StartsAt),
		zap.Int("going", occ.GoingCount))
	return occ, nil
}
