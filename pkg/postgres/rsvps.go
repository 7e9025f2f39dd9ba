package postgres

import (
	"context"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// GetRSVPs retrieves all attendance intentions.
func (d *DB) GetRSVPs(ctx context.Context) ([]db.ShiftRSVP, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, shift_id, user_id, date, attending
		FROM shift_rsvp
	`)
	if err != nil {
		return nil, normalize("get rsvps", err)
	}
	defer rows.Close()

	var rsvps []db.ShiftRSVP
	for rows.Next() {
		var r db.ShiftRSVP
		if err := rows.Scan(&r.ID, &r.ShiftID, &r.UserID, &r.Date, &r.Attending); err != nil {
			return nil, normalize("get rsvps", err)
		}
		rsvps = append(rsvps, r)
	}
	if err := rows.Err(); err != nil {
		return nil, normalize("get rsvps", err)
	}
	return rsvps, nil
}

// UpsertRSVP writes an intention keyed by its composite ID, making
// concurrent writes from the same member idempotent.
func (d *DB) UpsertRSVP(ctx context.Context, rsvp *db.ShiftRSVP) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO shift_rsvp (id, shift_id, user_id, date, attending)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET attending = EXCLUDED.attending
	`, rsvp.ID, rsvp.ShiftID, rsvp.UserID, rsvp.Date, rsvp.Attending)
	if err != nil {
		return normalize("upsert rsvp", err)
	}
	return nil
}

// DeleteRSVP removes an intention record entirely; absence means
// "undecided", not "not attending".
func (d *DB) DeleteRSVP(ctx context.Context, id string) error {
	if _, err := d.pool.Exec(ctx, `DELETE FROM shift_rsvp WHERE id = $1`, id); err != nil {
		return normalize("delete rsvp", err)
	}
	return nil
}
