package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "in-memory database",
			path: func(t *testing.T) string { return ":memory:" },
		},
		{
			name: "file database with missing parent directory",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nested", "hanlexi.db")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := Open(tt.path(t))
			require.NoError(t, err)
			defer func() {
				_ = db.Close()
			}()

			require.NoError(t, db.Ping())

			// The schema bootstraps all three state tables.
			for _, table := range []string{"search_history", "notebook_words", "known_words"} {
				var count int
				err := db.Get(&count,
					"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table)
				require.NoError(t, err)
				assert.Equal(t, 1, count, "missing table %q", table)
			}
		})
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanlexi.db")

	db, err := Open(path)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO known_words (word) VALUES ('hello')")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Schema creation is idempotent and existing data survives.
	db, err = Open(path)
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM known_words"))
	assert.Equal(t, 1, count)
}
