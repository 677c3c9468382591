// Package testutil provides shared test helpers for config files, databases
// and dictionary fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/hanlexi/hanlexi/internal/database"
	"github.com/hanlexi/hanlexi/internal/dictionary"
)

// SetupTestConfig writes a complete config file under tmpDir with storage
// paths inside it and every provider pointed at baseURL. Returns the path to
// the generated config file.
func SetupTestConfig(t *testing.T, tmpDir, baseURL string) string {
	t.Helper()

	configContent := fmt.Sprintf(`storage:
  database_path: %s
  cache_directory: %s
providers:
  dictionary:
    base_url: %s
    retry_attempts: 0
  translation:
    base_url: %s
  datamuse:
    base_url: %s
    enabled: true
`,
		filepath.Join(tmpDir, "hanlexi.db"),
		filepath.Join(tmpDir, "definitions"),
		baseURL,
		baseURL,
		baseURL,
	)

	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// OpenTestDatabase opens an in-memory database with the full schema applied
// and closes it when the test finishes.
func OpenTestDatabase(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// Entry builds a single-meaning dictionary entry, the smallest shape that
// passes validation.
func Entry(word, partOfSpeech, definition string) dictionary.DictionaryEntry {
	return dictionary.DictionaryEntry{
		Word: word,
		Meanings: []dictionary.Meaning{
			{
				PartOfSpeech: partOfSpeech,
				Definitions:  []dictionary.Definition{{Definition: definition}},
			},
		},
	}
}
