// https://www.datamuse.com/api/
package datamuse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"resty.dev/v3"

	"github.com/hanlexi/hanlexi/internal/dictionary"
)

const DefaultBaseURL = "https://api.datamuse.com"

// Client fetches word associations from the Datamuse API.
type Client struct {
	httpClient *resty.Client
}

func NewClient(baseURL string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Accept", "application/json")

	return &Client{httpClient: client}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type scoredWord struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// RelatedWords returns up to limit words with meanings close to word,
// strongest association first.
func (client *Client) RelatedWords(ctx context.Context, word string, limit int) ([]string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, fmt.Errorf("empty word: %w", dictionary.ErrInvalid)
	}
	if limit <= 0 {
		limit = 10
	}

	res, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParam("ml", word).
		SetQueryParam("max", strconv.Itoa(limit)).
		Get("/words")
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w: %w", err, dictionary.ErrNetwork)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code %d: %w", res.StatusCode(), dictionary.ErrNetwork)
	}

	var scored []scoredWord
	if err := json.Unmarshal(res.Bytes(), &scored); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w: %w", err, dictionary.ErrDecoding)
	}

	words := make([]string, 0, len(scored))
	for _, s := range scored {
		if s.Word != "" {
			words = append(words, s.Word)
		}
	}
	return words, nil
}
