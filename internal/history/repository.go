// Package history records past lookups so users can revisit them.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Entry is one recorded lookup.
type Entry struct {
	ID        int64     `db:"id"`
	Query     string    `db:"query"`
	IsChinese bool      `db:"is_chinese"`
	CreatedAt time.Time `db:"created_at"`
}

// Repository defines operations for managing search history.
type Repository interface {
	Record(ctx context.Context, query string, isChinese bool) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
	All(ctx context.Context) ([]Entry, error)
	Clear(ctx context.Context) error
}

// DBRepository implements Repository on SQLite.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Record appends one lookup to the history.
func (r *DBRepository) Record(ctx context.Context, query string, isChinese bool) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO search_history (query, is_chinese) VALUES (?, ?)", query, isChinese)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert search_history) > %w", err)
	}
	return nil
}

// Recent returns the latest lookups, newest first.
func (r *DBRepository) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []Entry
	err := r.db.SelectContext(ctx, &entries,
		"SELECT * FROM search_history ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("db.SelectContext(search_history) > %w", err)
	}
	return entries, nil
}

// All returns the entire history, newest first.
func (r *DBRepository) All(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := r.db.SelectContext(ctx, &entries,
		"SELECT * FROM search_history ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("db.SelectContext(search_history) > %w", err)
	}
	return entries, nil
}

// Clear removes the entire history.
func (r *DBRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM search_history"); err != nil {
		return fmt.Errorf("db.ExecContext(delete search_history) > %w", err)
	}
	return nil
}
