// https://dictionaryapi.dev/
package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/go-playground/validator/v10"
	"resty.dev/v3"

	"github.com/hanlexi/hanlexi/internal/dictionary"
)

const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2"

// Client fetches English definitions from the Free Dictionary API.
type Client struct {
	httpClient       *resty.Client
	validate         *validator.Validate
	maxRetryAttempts uint
}

func NewClient(baseURL string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Accept", "application/json")

	return &Client{
		httpClient:       client,
		validate:         validator.New(),
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetDefinitions looks word up and returns its dictionary entries. The
// response is validated before it is handed to the caller so downstream
// code can assume well-formed entries.
func (client *Client) GetDefinitions(ctx context.Context, word string) ([]dictionary.DictionaryEntry, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, fmt.Errorf("empty word: %w", dictionary.ErrInvalid)
	}

	var entries []dictionary.DictionaryEntry
	if err := retry.Do(
		func() error {
			result, err := client.getDefinitions(ctx, word)
			if err != nil {
				if !isRetryable(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			entries = result
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
	); err != nil {
		return nil, err
	}
	return entries, nil
}

func (client *Client) getDefinitions(ctx context.Context, word string) ([]dictionary.DictionaryEntry, error) {
	res, err := client.httpClient.R().
		SetContext(ctx).
		Get("/entries/en/" + url.PathEscape(word))
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w: %w", err, dictionary.ErrNetwork)
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("no entry for %q: %w", word, dictionary.ErrNotFound)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code %d: %w", res.StatusCode(), dictionary.ErrNetwork)
	}

	var entries []dictionary.DictionaryEntry
	if err := json.Unmarshal(res.Bytes(), &entries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w: %w", err, dictionary.ErrDecoding)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entry for %q: %w", word, dictionary.ErrNotFound)
	}
	for i, entry := range entries {
		if err := client.validate.StructCtx(ctx, entry); err != nil {
			return nil, fmt.Errorf("entry %d failed validation > %w: %w", i, err, dictionary.ErrDecoding)
		}
	}
	return entries, nil
}

// isRetryable reports whether the failure is transient. Only network
// failures are worth retrying; a missing or malformed entry will not
// improve on a second attempt.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	if strings.Contains(errStr, "status code 5") || strings.Contains(errStr, "status code 429") {
		return true
	}
	return false
}
