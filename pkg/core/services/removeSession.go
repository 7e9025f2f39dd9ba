package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/model"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// HideSessionStore defines the store interface needed by
// HideSessionForCaller.
type HideSessionStore interface {
	GetSessions(ctx context.Context) ([]db.TrainingSession, error)
	UpsertSession(ctx context.Context, session *db.TrainingSession) error
}

// HideSessionForCaller removes a session from the caller's own history
// view without touching anyone else's. Idempotent: hiding an already
// hidden session changes nothing.
func HideSessionForCaller(ctx context.Context, store HideSessionStore, logger *zap.Logger, sessionID, callerID string) (*db.TrainingSession, error) {
	sessions, err := store.GetSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	session := db.FindSession(sessions, sessionID)
	if session == nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
	}

	if session.HiddenFor(callerID) {
		return session, nil
	}
	session.HiddenForUserIDs = append(session.HiddenForUserIDs, callerID)

	if err := store.UpsertSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("Session hidden for user",
		zap.String("session_id", sessionID),
		zap.String("user_id", callerID))
	return session, nil
}

// DeleteSessionStore defines the store interface needed by DeleteSession.
type DeleteSessionStore interface {
	DeleteSession(ctx context.Context, id string) error
}

// DeleteSession removes a session permanently for every viewer. Admin
// only; irreversible, with no soft-delete fallback.
func DeleteSession(ctx context.Context, store DeleteSessionStore, logger *zap.Logger, callerRole model.Role, sessionID string) error {
	if callerRole != model.RoleAdmin {
		return ErrAdminOnly
	}

	if err := store.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	logger.Info("Session deleted globally", zap.String("session_id", sessionID))
	return nil
}
