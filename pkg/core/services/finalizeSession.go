package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/model"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/schedule"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// FinalizeSessionStore defines the store interface needed by FinalizeSession.
type FinalizeSessionStore interface {
	GetSessions(ctx context.Context) ([]db.TrainingSession, error)
	GetRSVPs(ctx context.Context) ([]db.ShiftRSVP, error)
	UpsertSession(ctx context.Context, session *db.TrainingSession) error
}

// FinalizeSession completes an active session. Admin only. Unless an
// explicit attendee override is supplied, the attendee list is frozen
// from the intentions currently marked attending for the session's
// shift and date; later RSVP changes no longer affect it.
func FinalizeSession(ctx context.Context, store FinalizeSessionStore, logger *zap.Logger, callerRole model.Role, sessionID string, overrideAttendees []string) (*db.TrainingSession, error) {
	if callerRole != model.RoleAdmin {
		return nil, ErrAdminOnly
	}

	sessions, err := store.GetSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	session := db.FindSession(sessions, sessionID)
	if session == nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
	}

	attendees := overrideAttendees
	if attendees == nil {
		rsvps, err := store.GetRSVPs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch RSVPs: %w", err)
		}
		attendees = attendingUserIDs(rsvps, session.ShiftID, session)
	}

	session.IsActive = false
	session.Completed = true
	session.AttendeeIDs = attendees

	if err := store.UpsertSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("Session finalized",
		zap.String("session_id", session.ID),
		zap.Int("attendees", len(session.AttendeeIDs)),
		zap.Bool("override", overrideAttendees != nil))
	return session, nil
}

// attendingUserIDs snapshots the members currently marked attending for
// the session's shift occurrence, sorted for determinism.
func attendingUserIDs(rsvps []db.ShiftRSVP, shiftID string, session *db.TrainingSession) []string {
	ids := []string{}
	for i := range rsvps {
		r := &rsvps[i]
		if r.ShiftID == shiftID && r.Attending && schedule.SameDay(r.Date, session.Date) {
			ids = append(ids, r.UserID)
		}
	}
	sort.Strings(ids)
	return ids
}
