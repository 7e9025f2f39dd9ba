// Package postgres implements the record store over PostgreSQL using
// pgx. Every failure crossing this boundary is normalized to a
// db.StoreError so the core never inspects driver errors.
package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB provides the record store backed by a pgx connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// NewDB opens a connection pool. An empty connection string aborts
// before any network attempt with a configuration-missing error.
func NewDB(ctx context.Context, connString string) (*DB, error) {
	if strings.TrimSpace(connString) == "" {
		return nil, &db.StoreError{
			Kind:    db.KindConfigurationMissing,
			Op:      "connect",
			Message: "database connection string is not configured",
		}
	}

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, normalize("connect", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, normalize("connect", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.pool.Close()
}

// RunMigrations executes all pending SQL migration files in order,
// tracking applied files in a schema_migrations table.
func (d *DB) RunMigrations(ctx context.Context) error {
	_, err := d.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return normalize("migrate", err)
	}

	rows, err := d.pool.Query(ctx, `SELECT filename FROM schema_migrations`)
	if err != nil {
		return normalize("migrate", err)
	}
	applied := make(map[string]bool)
	for rows.Next() {
		var filename string
		if err := rows.Scan(&filename); err != nil {
			rows.Close()
			return normalize("migrate", err)
		}
		applied[filename] = true
	}
	rows.Close()

	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	for _, filename := range sqlFiles {
		if applied[filename] {
			continue
		}

		content, err := fs.ReadFile(migrationsFS, "migrations/"+filename)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", filename, err)
		}

		tx, err := d.pool.Begin(ctx)
		if err != nil {
			return normalize("migrate", err)
		}

		if _, err := tx.Exec(ctx, string(content)); err != nil {
			tx.Rollback(ctx)
			return normalize(fmt.Sprintf("migrate %s", filename), err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (filename) VALUES ($1)`, filename); err != nil {
			tx.Rollback(ctx)
			return normalize(fmt.Sprintf("migrate %s", filename), err)
		}
		if err := tx.Commit(ctx); err != nil {
			return normalize(fmt.Sprintf("migrate %s", filename), err)
		}
	}

	return nil
}

// SQLSTATE classes mapped to the store error taxonomy.
const (
	codeUniqueViolation = "23505"
	codeUndefinedColumn = "42703"
	codeUndefinedTable  = "42P01"
	codeUndefinedObject = "42704"
)

// normalize converts a driver error into the store error taxonomy.
func normalize(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return &db.StoreError{Kind: db.KindNotFound, Op: op, Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return &db.StoreError{
				Kind:    db.KindConstraintViolation,
				Op:      op,
				Message: pgErr.Detail,
				Err:     err,
			}
		case codeUndefinedColumn, codeUndefinedTable, codeUndefinedObject:
			return &db.StoreError{
				Kind:    db.KindSchemaMismatch,
				Op:      op,
				Message: pgErr.Message,
				Err:     err,
			}
		}
	}

	return &db.StoreError{Kind: db.KindTransientNetwork, Op: op, Err: err}
}
