// Package notebook manages the saved-word notebook: a snapshot of each word
// the user chose to keep, with its pronunciation, translation and a short
// definition.
package notebook

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SavedWord is one notebook entry.
type SavedWord struct {
	ID          int64     `db:"id" yaml:"id"`
	Word        string    `db:"word" yaml:"word"`
	Phonetic    string    `db:"phonetic" yaml:"phonetic,omitempty"`
	Translation string    `db:"translation" yaml:"translation,omitempty"`
	Definition  string    `db:"definition" yaml:"definition,omitempty"`
	CreatedAt   time.Time `db:"created_at" yaml:"created_at"`
}

// Repository defines operations for managing the saved-word notebook.
type Repository interface {
	Save(ctx context.Context, word *SavedWord) error
	FindAll(ctx context.Context) ([]SavedWord, error)
	FindByWord(ctx context.Context, word string) (*SavedWord, error)
	Remove(ctx context.Context, word string) error
}

// DBRepository implements Repository on SQLite.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Save inserts a word, or refreshes its snapshot if it is already saved.
func (r *DBRepository) Save(ctx context.Context, word *SavedWord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notebook_words (word, phonetic, translation, definition)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(word) DO UPDATE SET
			phonetic = excluded.phonetic,
			translation = excluded.translation,
			definition = excluded.definition`,
		word.Word, word.Phonetic, word.Translation, word.Definition)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert notebook_words) > %w", err)
	}
	return nil
}

// FindAll returns all saved words, newest first.
func (r *DBRepository) FindAll(ctx context.Context) ([]SavedWord, error) {
	var words []SavedWord
	err := r.db.SelectContext(ctx, &words,
		"SELECT * FROM notebook_words ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("db.SelectContext(notebook_words) > %w", err)
	}
	return words, nil
}

// FindByWord returns one saved word, or nil if it is not in the notebook.
func (r *DBRepository) FindByWord(ctx context.Context, word string) (*SavedWord, error) {
	var saved SavedWord
	err := r.db.GetContext(ctx, &saved,
		"SELECT * FROM notebook_words WHERE word = ?", word)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(notebook_words) > %w", err)
	}
	return &saved, nil
}

// Remove deletes a word from the notebook.
func (r *DBRepository) Remove(ctx context.Context, word string) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM notebook_words WHERE word = ?", word); err != nil {
		return fmt.Errorf("db.ExecContext(delete notebook_words) > %w", err)
	}
	return nil
}
