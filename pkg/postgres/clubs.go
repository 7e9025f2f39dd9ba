package postgres

import (
	"context"
)

// GetClubs retrieves the flat list of club names.
func (d *DB) GetClubs(ctx context.Context) ([]string, error) {
	rows, err := d.pool.Query(ctx, `SELECT name FROM club ORDER BY name`)
	if err != nil {
		return nil, normalize("get clubs", err)
	}
	defer rows.Close()

	var clubs []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, normalize("get clubs", err)
		}
		clubs = append(clubs, name)
	}
	if err := rows.Err(); err != nil {
		return nil, normalize("get clubs", err)
	}
	return clubs, nil
}

// AddClub inserts a club name. A duplicate name surfaces as a
// constraint violation.
func (d *DB) AddClub(ctx context.Context, name string) error {
	if _, err := d.pool.Exec(ctx, `INSERT INTO club (name) VALUES ($1)`, name); err != nil {
		return normalize("add club", err)
	}
	return nil
}

// DeleteClub removes a club name.
func (d *DB) DeleteClub(ctx context.Context, name string) error {
	if _, err := d.pool.Exec(ctx, `DELETE FROM club WHERE name = $1`, name); err != nil {
		return normalize("delete club", err)
	}
	return nil
}
