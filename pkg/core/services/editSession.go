package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// SessionPatch carries the descriptive fields staff may change on a
// session at any point in its lifecycle. Nil fields are left untouched.
// Completion freezes only the automatic attendee snapshot, never
// editability.
type SessionPatch struct {
	Notes       *string
	YoutubeURL  *string
	TurmaName   *string
	ClubName    *string
	CoachID     *string
	SessionCost *float64
	IsCostPaid  *bool
	AttendeeIDs *[]string
	// Payments entries are merged per attendee; existing entries not
	// named here are kept.
	Payments map[string]db.Payment
}

// EditSessionStore defines the store interface needed by EditSession.
type EditSessionStore interface {
	GetSessions(ctx context.Context) ([]db.TrainingSession, error)
	UpsertSession(ctx context.Context, session *db.TrainingSession) error
}

// EditSession applies a patch to a session and persists it.
func EditSession(ctx context.Context, store EditSessionStore, logger *zap.Logger, sessionID string, patch SessionPatch) (*db.TrainingSession, error) {
	sessions, err := store.GetSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	session := db.FindSession(sessions, sessionID)
	if session == nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
	}

	applyPatch(session, patch)

	if err := store.UpsertSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("Session edited", zap.String("session_id", session.ID))
	return session, nil
}

func applyPatch(session *db.TrainingSession, patch SessionPatch) {
	if patch.Notes != nil {
		session.Notes = *patch.Notes
	}
	if patch.YoutubeURL != nil {
		session.YoutubeURL = *patch.YoutubeURL
	}
	if patch.TurmaName != nil {
		session.TurmaName = *patch.TurmaName
	}
	if patch.ClubName != nil {
		session.ClubName = *patch.ClubName
	}
	if patch.CoachID != nil {
		session.CoachID = *patch.CoachID
	}
	if patch.SessionCost != nil {
		session.SessionCost = *patch.SessionCost
	}
	if patch.IsCostPaid != nil {
		session.IsCostPaid = *patch.IsCostPaid
	}
	if patch.AttendeeIDs != nil {
		session.AttendeeIDs = *patch.AttendeeIDs
	}
	if len(patch.Payments) > 0 {
		if session.Payments == nil {
			session.Payments = make(map[string]db.Payment, len(patch.Payments))
		}
		for userID, payment := range patch.Payments {
			session.Payments[userID] = payment
		}
	}
}
