package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/valpere/simpletran/internal/config"
)

const table = "config_values"

// Store keeps option overrides in SQLite. Every read goes to the database.
type Store struct {
	db *sql.DB
	sq sq.StatementBuilderType
}

// Entry is one row of config_values.
type Entry struct {
	Scope     config.Scope
	Path      string
	Value     string
	UpdatedAt time.Time
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := NewWithDB(db)
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

// NewWithDB wraps an already migrated database.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, sq: sq.StatementBuilder}
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS config_values (
		scope TEXT NOT NULL,
		path TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (scope, path)
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Value implements config.Store for the exact scope layer.
func (s *Store) Value(ctx context.Context, path string, scope config.Scope) (string, bool, error) {
	query, args, err := s.sq.Select("value").From(table).
		Where(sq.Eq{"scope": string(scope), "path": path}).
		ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set inserts or replaces the value of path in scope.
func (s *Store) Set(ctx context.Context, scope config.Scope, path, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query, args, err := s.sq.Insert(table).
		Columns("scope", "path", "value", "updated_at").
		Values(string(scope), path, value, now).
		Suffix("ON CONFLICT(scope, path) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

// Unset removes the value of path in scope. It reports whether a row existed.
func (s *Store) Unset(ctx context.Context, scope config.Scope, path string) (bool, error) {
	query, args, err := s.sq.Delete(table).
		Where(sq.Eq{"scope": string(scope), "path": path}).
		ToSql()
	if err != nil {
		return false, err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns all rows whose path starts with pathPrefix, ordered by scope
// and path. An empty prefix lists everything.
func (s *Store) List(ctx context.Context, pathPrefix string) ([]Entry, error) {
	q := s.sq.Select("scope", "path", "value", "updated_at").From(table).OrderBy("scope", "path")
	if pathPrefix != "" {
		q = q.Where(sq.Like{"path": pathPrefix + "%"})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var scope, updated string
		if err := rows.Scan(&scope, &e.Path, &e.Value, &updated); err != nil {
			return nil, err
		}
		e.Scope = config.Scope(scope)
		e.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
