package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/model"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

func activeSession(id, shiftID string, date time.Time) db.TrainingSession {
	return db.TrainingSession{
		ID:       id,
		ShiftID:  shiftID,
		Date:     date,
		IsActive: true,
	}
}

func TestFinalizeSession_FreezesAttendeesFromIntentions(t *testing.T) {
	date := time.Date(2024, time.January, 11, 18, 0, 0, 0, time.UTC)
	day := time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC)
	store := &mockStore{
		sessions: []db.TrainingSession{activeSession("sess-1", "shift-1", date)},
		rsvps: []db.ShiftRSVP{
			{ID: "a", ShiftID: "shift-1", UserID: "carla", Date: day, Attending: true},
			{ID: "b", ShiftID: "shift-1", UserID: "ana", Date: day, Attending: true},
			{ID: "c", ShiftID: "shift-1", UserID: "bruno", Date: day, Attending: false},
			{ID: "d", ShiftID: "shift-1", UserID: "dora", Date: day.AddDate(0, 0, 7), Attending: true},
			{ID: "e", ShiftID: "shift-2", UserID: "eva", Date: day, Attending: true},
		},
	}

	session, err := FinalizeSession(testCtx, store, testLogger, model.RoleAdmin, "sess-1", nil)
	require.NoError(t, err)

	assert.False(t, session.IsActive)
	assert.True(t, session.Completed)
	// Sorted, attending-only, same shift and day.
	assert.Equal(t, []string{"ana", "carla"}, session.AttendeeIDs)
	require.Len(t, store.upsertedSessions, 1)
}

func TestFinalizeSession_OverrideBypassesIntentions(t *testing.T) {
	date := time.Date(2024, time.January, 11, 18, 0, 0, 0, time.UTC)
	store := &mockStore{
		sessions: []db.TrainingSession{activeSession("sess-1", "shift-1", date)},
		rsvps: []db.ShiftRSVP{
			{ID: "a", ShiftID: "shift-1", UserID: "ana", Date: date, Attending: true},
		},
	}

	session, err := FinalizeSession(testCtx, store, testLogger, model.RoleAdmin, "sess-1", []string{"zeca"})
	require.NoError(t, err)
	assert.Equal(t, []string{"zeca"}, session.AttendeeIDs)
}

func TestFinalizeSession_EmptyOverrideMeansNoAttendees(t *testing.T) {
	date := time.Date(2024, time.January, 11, 18, 0, 0, 0, time.UTC)
	store := &mockStore{
		sessions: []db.TrainingSession{activeSession("sess-1", "shift-1", date)},
		rsvps: []db.ShiftRSVP{
			{ID: "a", ShiftID: "shift-1", UserID: "ana", Date: date, Attending: true},
		},
	}

	session, err := FinalizeSession(testCtx, store, testLogger, model.RoleAdmin, "sess-1", []string{})
	require.NoError(t, err)
	assert.Empty(t, session.AttendeeIDs)
}

func TestFinalizeSession_AdminOnly(t *testing.T) {
	store := &mockStore{}

	for _, role := range []model.Role{model.RoleCoach, model.RoleStudent} {
		_, err := FinalizeSession(testCtx, store, testLogger, role, "sess-1", nil)
		assert.ErrorIs(t, err, ErrAdminOnly)
	}
	assert.Empty(t, store.upsertedSessions)
}

func TestFinalizeSession_UnknownSession(t *testing.T) {
	store := &mockStore{}

	_, err := FinalizeSession(testCtx, store, testLogger, model.RoleAdmin, "missing", nil)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
