// https://mymemory.translated.net/doc/spec.php
package mymemory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"resty.dev/v3"

	"github.com/hanlexi/hanlexi/internal/dictionary"
)

const DefaultBaseURL = "https://api.mymemory.translated.net"

// Client translates text through the MyMemory API.
type Client struct {
	httpClient *resty.Client
	email      string
}

// NewClient creates a translation client. A contact email raises the API's
// daily quota and may be empty.
func NewClient(baseURL, email string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		email:      email,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type response struct {
	ResponseData   responseData `json:"responseData"`
	ResponseStatus statusCode   `json:"responseStatus"`
	Matches        []match      `json:"matches"`
}

type responseData struct {
	TranslatedText string `json:"translatedText"`
}

type match struct {
	Translation string  `json:"translation"`
	Quality     quality `json:"quality"`
}

// quality decodes the API's quality field, which arrives as either a JSON
// number or a quoted string depending on the match source.
type quality float64

func (q *quality) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(string(data), `"`)
	if trimmed == "" || trimmed == "null" {
		*q = 0
		return nil
	}
	var value float64
	if err := json.Unmarshal([]byte(trimmed), &value); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	*q = quality(value)
	return nil
}

// statusCode decodes responseStatus, which the API reports as a number on
// success but as a string on some error paths.
type statusCode int

func (s *statusCode) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(string(data), `"`)
	var value int
	if err := json.Unmarshal([]byte(trimmed), &value); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	*s = statusCode(value)
	return nil
}

// Translate translates text between the given language pair, e.g.
// ("hello", "en", "zh-CN").
func (client *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (dictionary.Translation, error) {
	var result dictionary.Translation
	text = strings.TrimSpace(text)
	if text == "" {
		return result, fmt.Errorf("empty text: %w", dictionary.ErrInvalid)
	}

	request := client.httpClient.R().
		SetContext(ctx).
		SetQueryParam("q", text).
		SetQueryParam("langpair", sourceLang+"|"+targetLang)
	if client.email != "" {
		request.SetQueryParam("de", client.email)
	}

	res, err := request.Get("/get")
	if err != nil {
		return result, fmt.Errorf("client.R.Get > %w: %w", err, dictionary.ErrNetwork)
	}
	if res.StatusCode() != http.StatusOK {
		return result, fmt.Errorf("status code %d: %w", res.StatusCode(), dictionary.ErrNetwork)
	}

	var parsed response
	if err := json.Unmarshal(res.Bytes(), &parsed); err != nil {
		return result, fmt.Errorf("json.Unmarshal > %w: %w", err, dictionary.ErrDecoding)
	}
	if parsed.ResponseStatus != http.StatusOK || parsed.ResponseData.TranslatedText == "" {
		return result, fmt.Errorf("no translation for %q: %w", text, dictionary.ErrNotFound)
	}

	result.Primary = parsed.ResponseData.TranslatedText
	for _, m := range parsed.Matches {
		result.Matches = append(result.Matches, dictionary.TranslationMatch{
			Translation: m.Translation,
			Quality:     float64(m.Quality),
		})
	}
	return result, nil
}
