package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// RetroactiveSessionInput carries the manually supplied fields for a
// training that happened without ever being started in the system.
type RetroactiveSessionInput struct {
	ClubName    string
	TurmaName   string
	CoachID     string
	Date        time.Time
	AttendeeIDs []string
	Notes       string
	YoutubeURL  string
	SessionCost float64
}

// LogRetroactiveStore defines the store interface needed by
// LogRetroactiveSession.
type LogRetroactiveStore interface {
	UpsertSession(ctx context.Context, session *db.TrainingSession) error
}

// LogRetroactiveSession creates a completed session directly from
// manual input, bypassing any shift reference. The attendee list is
// prefilled from the input rather than frozen from RSVPs.
func LogRetroactiveSession(ctx context.Context, store LogRetroactiveStore, logger *zap.Logger, input RetroactiveSessionInput) (*db.TrainingSession, error) {
	attendees := input.AttendeeIDs
	if attendees == nil {
		attendees = []string{}
	}

	session := &db.TrainingSession{
		ID:          uuid.New().String(),
		ShiftID:     db.ManualEntryShiftID,
		Date:        input.Date,
		IsActive:    false,
		Completed:   true,
		AttendeeIDs: attendees,
		Notes:       input.Notes,
		YoutubeURL:  input.YoutubeURL,
		TurmaName:   input.TurmaName,
		CoachID:     input.CoachID,
		ClubName:    input.ClubName,
		SessionCost: input.SessionCost,
	}

	if err := store.UpsertSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("Retroactive session logged",
		zap.String("session_id", session.ID),
		zap.Time("date", session.Date),
		zap.Int("attendees", len(session.AttendeeIDs)))
	return session, nil
}
