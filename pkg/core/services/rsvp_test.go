package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

var (
	testCtx    = context.Background()
	testLogger = zap.NewNop()
)

func occurrenceDay() time.Time {
	return time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC)
}

func TestSetIntention_RecordsNewIntention(t *testing.T) {
	store := &mockStore{}

	removed, err := SetIntention(testCtx, store, testLogger, "shift-1", "ana", occurrenceDay(), true)
	require.NoError(t, err)
	assert.False(t, removed)

	require.Len(t, store.upsertedRSVPs, 1)
	rsvp := store.upsertedRSVPs[0]
	assert.Equal(t, db.RSVPID("ana", "shift-1", occurrenceDay()), rsvp.ID)
	assert.Equal(t, "shift-1", rsvp.ShiftID)
	assert.Equal(t, "ana", rsvp.UserID)
	assert.True(t, rsvp.Attending)
}

func TestSetIntention_NormalizesDateToMidnight(t *testing.T) {
	store := &mockStore{}
	late := time.Date(2024, time.January, 11, 22, 45, 0, 0, time.UTC)

	_, err := SetIntention(testCtx, store, testLogger, "shift-1", "ana", late, true)
	require.NoError(t, err)

	require.Len(t, store.upsertedRSVPs, 1)
	assert.Equal(t, occurrenceDay(), store.upsertedRSVPs[0].Date)
}

func TestSetIntention_SameBooleanTogglesOff(t *testing.T) {
	id := db.RSVPID("ana", "shift-1", occurrenceDay())
	store := &mockStore{
		rsvps: []db.ShiftRSVP{
			{ID: id, ShiftID: "shift-1", UserID: "ana", Date: occurrenceDay(), Attending: true},
		},
	}

	removed, err := SetIntention(testCtx, store, testLogger, "shift-1", "ana", occurrenceDay(), true)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []string{id}, store.deletedRSVPs)
	assert.Empty(t, store.upsertedRSVPs)
}

func TestSetIntention_OppositeBooleanFlips(t *testing.T) {
	id := db.RSVPID("ana", "shift-1", occurrenceDay())
	store := &mockStore{
		rsvps: []db.ShiftRSVP{
			{ID: id, ShiftID: "shift-1", UserID: "ana", Date: occurrenceDay(), Attending: true},
		},
	}

	removed, err := SetIntention(testCtx, store, testLogger, "shift-1", "ana", occurrenceDay(), false)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Empty(t, store.deletedRSVPs)
	require.Len(t, store.upsertedRSVPs, 1)
	assert.False(t, store.upsertedRSVPs[0].Attending)
}

func TestSetIntention_DistinctOccurrencesAreIndependent(t *testing.T) {
	id := db.RSVPID("ana", "shift-1", occurrenceDay())
	store := &mockStore{
		rsvps: []db.ShiftRSVP{
			{ID: id, ShiftID: "shift-1", UserID: "ana", Date: occurrenceDay(), Attending: true},
		},
	}

	nextWeek := occurrenceDay().AddDate(0, 0, 7)
	removed, err := SetIntention(testCtx, store, testLogger, "shift-1", "ana", nextWeek, true)
	require.NoError(t, err)
	assert.False(t, removed)
	require.Len(t, store.upsertedRSVPs, 1)
	assert.Equal(t, nextWeek, store.upsertedRSVPs[0].Date)
}

func TestSetIntention_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("boom")
	store := &mockStore{getRSVPsErr: storeErr}

	_, err := SetIntention(testCtx, store, testLogger, "shift-1", "ana", occurrenceDay(), true)
	assert.ErrorIs(t, err, storeErr)
}

func TestWithdrawIntention(t *testing.T) {
	store := &mockStore{}

	err := WithdrawIntention(testCtx, store, testLogger, "shift-1", "ana", occurrenceDay())
	require.NoError(t, err)
	assert.Equal(t, []string{db.RSVPID("ana", "shift-1", occurrenceDay())}, store.deletedRSVPs)
}

func TestCountIntentions(t *testing.T) {
	shifts := []db.Shift{
		{ID: "shift-1", StudentIDs: []string{"ana", "bruno", "carla"}},
	}
	rsvps := []db.ShiftRSVP{
		{ID: "a", ShiftID: "shift-1", UserID: "ana", Date: occurrenceDay(), Attending: true},
		{ID: "b", ShiftID: "shift-1", UserID: "bruno", Date: occurrenceDay(), Attending: false},
		{ID: "c", ShiftID: "shift-1", UserID: "carla", Date: occurrenceDay().AddDate(0, 0, 7), Attending: true},
		{ID: "d", ShiftID: "shift-2", UserID: "ana", Date: occurrenceDay(), Attending: true},
	}

	count := CountIntentions("shift-1", occurrenceDay(), shifts, rsvps)
	assert.Equal(t, 1, count.Going)
	assert.Equal(t, 3, count.RosterSize)
}

func TestCountIntentions_UnknownShift(t *testing.T) {
	count := CountIntentions("missing", occurrenceDay(), nil, nil)
	assert.Equal(t, IntentionCount{}, count)
}
