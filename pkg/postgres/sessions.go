package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// GetSessions retrieves all training sessions.
func (d *DB) GetSessions(ctx context.Context) ([]db.TrainingSession, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, shift_id, date, is_active, completed, attendee_ids,
		       hidden_for_user_ids, notes, youtube_url, turma_name, coach_id,
		       club_name, session_cost, is_cost_paid, payments
		FROM training_session
	`)
	if err != nil {
		return nil, normalize("get sessions", err)
	}
	defer rows.Close()

	var sessions []db.TrainingSession
	for rows.Next() {
		var s db.TrainingSession
		var payments []byte
		if err := rows.Scan(&s.ID, &s.ShiftID, &s.Date, &s.IsActive, &s.Completed, &s.AttendeeIDs,
			&s.HiddenForUserIDs, &s.Notes, &s.YoutubeURL, &s.TurmaName, &s.CoachID,
			&s.ClubName, &s.SessionCost, &s.IsCostPaid, &payments); err != nil {
			return nil, normalize("get sessions", err)
		}
		if len(payments) > 0 {
			if err := json.Unmarshal(payments, &s.Payments); err != nil {
				return nil, fmt.Errorf("failed to decode payments for session %s: %w", s.ID, err)
			}
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, normalize("get sessions", err)
	}
	return sessions, nil
}

// UpsertSession inserts or overwrites a session as a single atomic
// write. Last write wins; concurrent edits are not reconciled.
func (d *DB) UpsertSession(ctx context.Context, session *db.TrainingSession) error {
	payments := session.Payments
	if payments == nil {
		payments = map[string]db.Payment{}
	}
	encoded, err := json.Marshal(payments)
	if err != nil {
		return fmt.Errorf("failed to encode payments for session %s: %w", session.ID, err)
	}

	_, err = d.pool.Exec(ctx, `
		INSERT INTO training_session (id, shift_id, date, is_active, completed, attendee_ids,
		                              hidden_for_user_ids, notes, youtube_url, turma_name, coach_id,
		                              club_name, session_cost, is_cost_paid, payments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			shift_id = EXCLUDED.shift_id,
			date = EXCLUDED.date,
			is_active = EXCLUDED.is_active,
			completed = EXCLUDED.completed,
			attendee_ids = EXCLUDED.attendee_ids,
			hidden_for_user_ids = EXCLUDED.hidden_for_user_ids,
			notes = EXCLUDED.notes,
			youtube_url = EXCLUDED.youtube_url,
			turma_name = EXCLUDED.turma_name,
			coach_id = EXCLUDED.coach_id,
			club_name = EXCLUDED.club_name,
			session_cost = EXCLUDED.session_cost,
			is_cost_paid = EXCLUDED.is_cost_paid,
			payments = EXCLUDED.payments
	`, session.ID, session.ShiftID, session.Date, session.IsActive, session.Completed, session.AttendeeIDs,
		session.HiddenForUserIDs, session.Notes, session.YoutubeURL, session.TurmaName, session.CoachID,
		session.ClubName, session.SessionCost, session.IsCostPaid, encoded)
	if err != nil {
		return normalize("upsert session", err)
	}
	return nil
}

// DeleteSession hard-deletes a session by ID. Irreversible.
func (d *DB) DeleteSession(ctx context.Context, id string) error {
	if _, err := d.pool.Exec(ctx, `DELETE FROM training_session WHERE id = $1`, id); err != nil {
		return normalize("delete session", err)
	}
	return nil
}
