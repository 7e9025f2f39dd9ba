package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Wednesday afternoon, 2024-01-10.
var testNow = time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOccurrenceDate_WeekdayAndWeekStepProperties(t *testing.T) {
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		for offset := 0; offset < 4; offset++ {
			got := OccurrenceDate(weekday, offset, testNow)
			assert.Equal(t, weekday, got.Weekday(),
				"weekday mismatch for %s offset %d", weekday, offset)
			next := OccurrenceDate(weekday, offset+1, testNow)
			assert.Equal(t, got.AddDate(0, 0, 7), next,
				"offset %d+1 should be exactly 7 days after for %s", offset, weekday)
		}
	}
}

func TestOccurrenceDate_NeverBeforeToday(t *testing.T) {
	today := day(2024, time.January, 10)
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		got := OccurrenceDate(weekday, 0, testNow)
		assert.False(t, got.Before(today), "%s occurrence lies in the past", weekday)
	}
}

func TestOccurrenceDate_SameWeekdayIsToday(t *testing.T) {
	assert.Equal(t, day(2024, time.January, 10), OccurrenceDate(time.Wednesday, 0, testNow))
}

func TestOccurrenceDate_IdempotentForSameNow(t *testing.T) {
	first := OccurrenceDate(time.Friday, 2, testNow)
	second := OccurrenceDate(time.Friday, 2, testNow)
	assert.Equal(t, first, second)
}

func TestStartOfWeek(t *testing.T) {
	assert.Equal(t, day(2024, time.January, 7), StartOfWeek(testNow))

	sunday := time.Date(2024, time.January, 7, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, day(2024, time.January, 7), StartOfWeek(sunday))
}

func TestWeekAnchoredDate_CanLieInThePast(t *testing.T) {
	// Monday of the current calendar week already elapsed.
	monday := WeekAnchoredDate(time.Monday, 0, testNow)
	assert.Equal(t, day(2024, time.January, 8), monday)
	assert.True(t, monday.Before(day(2024, time.January, 10)))

	assert.Equal(t, day(2024, time.January, 15), WeekAnchoredDate(time.Monday, 1, testNow))
}

func TestSlotTime(t *testing.T) {
	slot := SlotTime(day(2024, time.January, 10), 18, 30)
	assert.Equal(t, time.Date(2024, time.January, 10, 18, 30, 0, 0, time.UTC), slot)
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(
		time.Date(2024, time.January, 10, 6, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 10, 23, 0, 0, 0, time.UTC)))
	assert.False(t, SameDay(day(2024, time.January, 10), day(2024, time.January, 11)))
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "today", DayLabel(day(2024, time.January, 10), testNow))
	assert.Equal(t, "tomorrow", DayLabel(day(2024, time.January, 11), testNow))
	assert.Equal(t, "Friday", DayLabel(day(2024, time.January, 12), testNow))
	assert.Equal(t, "Wednesday", DayLabel(day(2024, time.January, 17), testNow))
}
