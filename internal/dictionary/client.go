package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
)

// DefinitionsFetcher fetches dictionary entries from a remote provider.
type DefinitionsFetcher interface {
	GetDefinitions(ctx context.Context, word string) ([]DictionaryEntry, error)
}

// Translator translates text between a language pair.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (Translation, error)
}

// Client is the Provider used by the rest of the program: it composes a
// definitions fetcher and a translator, caching definition payloads on disk.
// Translations are never cached; their quality scores shift over time.
type Client struct {
	definitions DefinitionsFetcher
	translator  Translator
	cache       *FileCache
}

var _ Provider = (*Client)(nil)

// NewClient composes the given fetcher and translator. cache may be nil to
// disable definition caching.
func NewClient(definitions DefinitionsFetcher, translator Translator, cache *FileCache) *Client {
	return &Client{
		definitions: definitions,
		translator:  translator,
		cache:       cache,
	}
}

// GetDefinitions implements Provider, serving from the file cache when the
// word has been looked up before.
func (client *Client) GetDefinitions(ctx context.Context, word string) ([]DictionaryEntry, error) {
	if client.cache == nil {
		return client.definitions.GetDefinitions(ctx, word)
	}

	contents, err := client.cache.Cache(word, func() ([]byte, error) {
		entries, err := client.definitions.GetDefinitions(ctx, word)
		if err != nil {
			return nil, err
		}
		payload, err := json.Marshal(entries)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal > %w", err)
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}

	var entries []DictionaryEntry
	if err := json.Unmarshal(contents, &entries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w: %w", err, ErrDecoding)
	}
	return entries, nil
}

// Translate implements Provider.
func (client *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (Translation, error) {
	return client.translator.Translate(ctx, text, sourceLang, targetLang)
}
