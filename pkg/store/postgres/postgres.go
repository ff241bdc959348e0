// Package postgres persists entities as JSON documents in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"travelrest/pkg/store"
)

var tableName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Repository persists one resource in its own table:
// CREATE TABLE IF NOT EXISTS <table> (id TEXT PRIMARY KEY, body JSONB NOT NULL);
type Repository[T store.Entity] struct {
	db    *sql.DB
	table string
}

// New creates a PostgreSQL repository backed by table.
func New[T store.Entity](db *sql.DB, table string) (*Repository[T], error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &Repository[T]{db: db, table: table}, nil
}

// Migrate creates the backing table if it does not exist yet.
func (r *Repository[T]) Migrate(ctx context.Context) error {
	q := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (id TEXT PRIMARY KEY, body JSONB NOT NULL)", r.table)
	if _, err := r.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("create table %s: %w", r.table, err)
	}
	return nil
}

// Save inserts the entity or replaces the stored document.
func (r *Repository[T]) Save(ctx context.Context, e T) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode %s: %w", e.Key(), err)
	}
	q := fmt.Sprintf("INSERT INTO %s (id,body) VALUES ($1,$2) ON CONFLICT (id) DO UPDATE SET body=EXCLUDED.body", r.table)
	if _, err := r.db.ExecContext(ctx, q, e.Key(), body); err != nil {
		return fmt.Errorf("save %s: %w", e.Key(), err)
	}
	return nil
}

// Get retrieves an entity by ID.
func (r *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	var (
		e    T
		body []byte
	)
	q := fmt.Sprintf("SELECT body FROM %s WHERE id=$1", r.table)
	err := r.db.QueryRowContext(ctx, q, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return e, store.ErrNotFound
	}
	if err != nil {
		return e, fmt.Errorf("get %s: %w", id, err)
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return e, fmt.Errorf("decode %s: %w", id, err)
	}
	return e, nil
}

// List fetches all entities ordered by id.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("SELECT body FROM %s ORDER BY id", r.table))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()
	var out []T
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		var e T
		if err := json.Unmarshal(body, &e); err != nil {
			return nil, fmt.Errorf("decode row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
