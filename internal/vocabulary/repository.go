// Package vocabulary tracks which words the user already knows, so lookups
// and reviews can skip them.
package vocabulary

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Repository defines operations for managing known-word flags.
type Repository interface {
	MarkKnown(ctx context.Context, word string) error
	MarkUnknown(ctx context.Context, word string) error
	IsKnown(ctx context.Context, word string) (bool, error)
	ListKnown(ctx context.Context) ([]string, error)
}

// DBRepository implements Repository on SQLite.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// MarkKnown flags a word as known. Marking twice is a no-op.
func (r *DBRepository) MarkKnown(ctx context.Context, word string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO known_words (word) VALUES (?) ON CONFLICT(word) DO NOTHING",
		normalize(word))
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert known_words) > %w", err)
	}
	return nil
}

// MarkUnknown removes the known flag from a word.
func (r *DBRepository) MarkUnknown(ctx context.Context, word string) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM known_words WHERE word = ?", normalize(word)); err != nil {
		return fmt.Errorf("db.ExecContext(delete known_words) > %w", err)
	}
	return nil
}

// IsKnown reports whether a word is flagged as known.
func (r *DBRepository) IsKnown(ctx context.Context, word string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM known_words WHERE word = ?", normalize(word))
	if err != nil {
		return false, fmt.Errorf("db.GetContext(known_words) > %w", err)
	}
	return count > 0, nil
}

// ListKnown returns every known word in alphabetical order.
func (r *DBRepository) ListKnown(ctx context.Context) ([]string, error) {
	var words []string
	err := r.db.SelectContext(ctx, &words,
		"SELECT word FROM known_words ORDER BY word")
	if err != nil {
		return nil, fmt.Errorf("db.SelectContext(known_words) > %w", err)
	}
	return words, nil
}

func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
