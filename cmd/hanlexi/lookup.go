package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/hanlexi/hanlexi/internal/cli"
	"github.com/hanlexi/hanlexi/internal/dictionary"
	"github.com/hanlexi/hanlexi/internal/history"
	"github.com/hanlexi/hanlexi/internal/lookup"
	"github.com/hanlexi/hanlexi/internal/notebook"
)

// familyTimeout bounds how long a lookup waits for the background
// word-family verification before giving up on it.
const familyTimeout = 15 * time.Second

func newLookupCommand() *cobra.Command {
	var saveToNotebook bool
	command := &cobra.Command{
		Use:   "lookup <word or phrase>",
		Short: "Look up a word or phrase in either English or Chinese",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			service, closeService, err := newLookupService(cfg)
			if err != nil {
				return err
			}
			defer closeService()

			ctx := cmd.Context()
			result, pendingFamily, err := service.Lookup(ctx, query)
			if err != nil {
				return fmt.Errorf("service.Lookup > %w", err)
			}

			renderer := cli.NewRenderer(os.Stdout)
			renderer.RenderResult(result)

			familyCtx, cancel := context.WithTimeout(ctx, familyTimeout)
			defer cancel()
			result.WordFamily = pendingFamily.Await(familyCtx)
			renderer.RenderWordFamily(result.WordFamily)

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := history.NewDBRepository(db).Record(ctx, result.Query, result.IsChinese); err != nil {
				// A failed history write should not fail the lookup itself.
				slog.Warn("failed to record search history", "error", err)
			}

			if saveToNotebook {
				if err := saveResult(ctx, db, result); err != nil {
					return err
				}
			}
			return nil
		},
	}
	command.Flags().BoolVar(&saveToNotebook, "save", false, "Save the result to the notebook")
	return command
}

// saveResult stores the looked-up word with its best translation and first
// definition in the notebook.
func saveResult(ctx context.Context, db *sqlx.DB, result *lookup.Result) error {
	word := result.Query
	if result.IsChinese {
		word = result.Translation.Primary
	}
	saved := &notebook.SavedWord{
		Word:        word,
		Phonetic:    firstPhonetic(result.Entries),
		Translation: result.Translation.Primary,
		Definition:  firstDefinition(result.Entries),
	}
	if result.IsChinese {
		saved.Translation = result.Query
	}
	if err := notebook.NewDBRepository(db).Save(ctx, saved); err != nil {
		return fmt.Errorf("notebook.Save > %w", err)
	}
	return nil
}

func firstDefinition(entries []dictionary.DictionaryEntry) string {
	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			for _, definition := range meaning.Definitions {
				if definition.Definition != "" {
					return definition.Definition
				}
			}
		}
	}
	return ""
}

func firstPhonetic(entries []dictionary.DictionaryEntry) string {
	for _, entry := range entries {
		if phonetic := entry.FirstPhonetic(); phonetic != "" {
			return phonetic
		}
	}
	return ""
}
