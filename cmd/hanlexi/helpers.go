package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hanlexi/hanlexi/internal/config"
	"github.com/hanlexi/hanlexi/internal/database"
	"github.com/hanlexi/hanlexi/internal/dictionary"
	"github.com/hanlexi/hanlexi/internal/dictionary/datamuse"
	"github.com/hanlexi/hanlexi/internal/dictionary/freedict"
	"github.com/hanlexi/hanlexi/internal/dictionary/mymemory"
	"github.com/hanlexi/hanlexi/internal/lookup"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func openDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.Open(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("database.Open > %w", err)
	}
	return db, nil
}

// newLookupService wires the provider clients into a lookup service. The
// returned closer releases the underlying HTTP clients.
func newLookupService(cfg *config.Config) (*lookup.Service, func(), error) {
	definitions := freedict.NewClient(cfg.Providers.Dictionary.BaseURL, cfg.Providers.Dictionary.RetryAttempts)
	translator := mymemory.NewClient(cfg.Providers.Translation.BaseURL, cfg.Providers.Translation.Email)
	cache := dictionary.NewFileCache(cfg.Storage.CacheDirectory)
	provider := dictionary.NewClient(definitions, translator, cache)

	var related lookup.RelatedWordsFetcher
	closeRelated := func() {}
	if cfg.Providers.Datamuse.Enabled {
		client := datamuse.NewClient(cfg.Providers.Datamuse.BaseURL)
		related = client
		closeRelated = func() {
			_ = client.Close()
		}
	}

	closer := func() {
		_ = definitions.Close()
		_ = translator.Close()
		closeRelated()
	}
	return lookup.NewService(provider, related), closer, nil
}
