package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/model"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// HistoryStore defines the store interface needed by SessionHistory.
type HistoryStore interface {
	GetShifts(ctx context.Context) ([]db.Shift, error)
	GetSessions(ctx context.Context) ([]db.TrainingSession, error)
}

// SessionHistory returns the sessions visible to a caller, newest first.
func SessionHistory(ctx context.Context, store HistoryStore, logger *zap.Logger, callerID string, role model.Role) ([]db.TrainingSession, error) {
	shifts, err := store.GetShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	sessions, err := store.GetSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	visible := VisibleSessions(sessions, shifts, callerID, role)
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].Date.After(visible[j].Date)
	})

	logger.Debug("Session history computed",
		zap.String("caller_id", callerID),
		zap.Int("visible", len(visible)),
		zap.Int("total", len(sessions)))
	return visible, nil
}

// VisibleSessions filters a session snapshot by the history visibility
// rule: a session is visible iff the caller has not hidden it AND the
// caller is an admin, the session's coach, or a listed attendee.
func VisibleSessions(sessions []db.TrainingSession, shifts []db.Shift, callerID string, role model.Role) []db.TrainingSession {
	visible := make([]db.TrainingSession, 0, len(sessions))
	for i := range sessions {
		s := &sessions[i]
		if s.HiddenFor(callerID) {
			continue
		}
		if role == model.RoleAdmin || sessionCoachID(s, shifts) == callerID || s.HasAttendee(callerID) {
			visible = append(visible, *s)
		}
	}
	return visible
}

// sessionCoachID resolves a session's coach: the explicit override if
// set, otherwise the originating shift's coach.
func sessionCoachID(s *db.TrainingSession, shifts []db.Shift) string {
	if s.CoachID != "" {
		return s.CoachID
	}
	if shift := db.FindShift(shifts, s.ShiftID); shift != nil {
		return shift.CoachID
	}
	return ""
}
