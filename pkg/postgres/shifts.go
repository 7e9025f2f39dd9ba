package postgres

import (
	"context"
	"time"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/model"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// GetShifts retrieves all shift templates.
func (d *DB) GetShifts(ctx context.Context) ([]db.Shift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, day_of_week, start_hour, start_minute, duration_minutes,
		       coach_id, student_ids, recurrence, start_date, club_name
		FROM shift
	`)
	if err != nil {
		return nil, normalize("get shifts", err)
	}
	defer rows.Close()

	var shifts []db.Shift
	for rows.Next() {
		var s db.Shift
		var dayOfWeek int
		var recurrence string
		var startDate *time.Time
		if err := rows.Scan(&s.ID, &dayOfWeek, &s.StartHour, &s.StartMinute, &s.DurationMinutes,
			&s.CoachID, &s.StudentIDs, &recurrence, &startDate, &s.ClubName); err != nil {
			return nil, normalize("get shifts", err)
		}
		s.DayOfWeek = time.Weekday(dayOfWeek)
		s.Recurrence = model.Recurrence(recurrence)
		s.StartDate = startDate
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, normalize("get shifts", err)
	}
	return shifts, nil
}

// UpsertShift inserts or overwrites a shift template. Last write wins.
func (d *DB) UpsertShift(ctx context.Context, shift *db.Shift) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO shift (id, day_of_week, start_hour, start_minute, duration_minutes,
		                   coach_id, student_ids, recurrence, start_date, club_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			day_of_week = EXCLUDED.day_of_week,
			start_hour = EXCLUDED.start_hour,
			start_minute = EXCLUDED.start_minute,
			duration_minutes = EXCLUDED.duration_minutes,
			coach_id = EXCLUDED.coach_id,
			student_ids = EXCLUDED.student_ids,
			recurrence = EXCLUDED.recurrence,
			start_date = EXCLUDED.start_date,
			club_name = EXCLUDED.club_name
	`, shift.ID, int(shift.DayOfWeek), shift.StartHour, shift.StartMinute, shift.DurationMinutes,
		shift.CoachID, shift.StudentIDs, string(shift.Recurrence), shift.StartDate, shift.ClubName)
	if err != nil {
		return normalize("upsert shift", err)
	}
	return nil
}

// DeleteShift removes a shift template by ID.
func (d *DB) DeleteShift(ctx context.Context, id string) error {
	if _, err := d.pool.Exec(ctx, `DELETE FROM shift WHERE id = $1`, id); err != nil {
		return normalize("delete shift", err)
	}
	return nil
}
