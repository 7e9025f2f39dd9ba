package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/model"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

func scheduleFixture() *mockStore {
	return &mockStore{
		shifts: []db.Shift{
			{
				ID:              "thu",
				DayOfWeek:       time.Thursday,
				StartHour:       18,
				DurationMinutes: 60,
				CoachID:         "coach-1",
				Recurrence:      model.RecurrenceWeekly,
			},
			{
				ID:              "fri",
				DayOfWeek:       time.Friday,
				StartHour:       10,
				DurationMinutes: 60,
				CoachID:         "coach-1",
				Recurrence:      model.RecurrenceWeekly,
			},
		},
	}
}

func TestAdminSchedule_ReturnsWeekOccurrences(t *testing.T) {
	store := scheduleFixture()

	occurrences, err := AdminSchedule(testCtx, store, testLogger, nil, wednesdayNoon)
	require.NoError(t, err)

	require.Len(t, occurrences, 2)
	assert.Equal(t, "thu", occurrences[0].ShiftID)
	assert.Equal(t, "fri", occurrences[1].ShiftID)
}

func TestAdminSchedule_ClosureRulesDropOccurrences(t *testing.T) {
	store := scheduleFixture()

	// Every Thursday is closed.
	rules := []string{"FREQ=WEEKLY;DTSTART=20240101T000000Z;BYDAY=TH"}
	occurrences, err := AdminSchedule(testCtx, store, testLogger, rules, wednesdayNoon)
	require.NoError(t, err)

	require.Len(t, occurrences, 1)
	assert.Equal(t, "fri", occurrences[0].ShiftID)
}

func TestAdminSchedule_InvalidClosureRule(t *testing.T) {
	store := scheduleFixture()

	_, err := AdminSchedule(testCtx, store, testLogger, []string{"not an rrule"}, wednesdayNoon)
	assert.Error(t, err)
}

func TestAdminSchedule_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("boom")
	store := &mockStore{getSessionsErr: storeErr}

	_, err := AdminSchedule(testCtx, store, testLogger, nil, wednesdayNoon)
	assert.ErrorIs(t, err, storeErr)
}
