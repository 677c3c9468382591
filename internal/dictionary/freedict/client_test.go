package freedict

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanlexi/hanlexi/internal/dictionary"
)

const helloPayload = `[
	{
		"word": "hello",
		"phonetic": "/həˈloʊ/",
		"phonetics": [{"text": "/həˈloʊ/", "audio": "https://example.com/hello.mp3"}],
		"origin": "early 19th century",
		"meanings": [
			{
				"partOfSpeech": "exclamation",
				"definitions": [
					{"definition": "used as a greeting", "example": "hello there", "synonyms": ["hi"]}
				]
			}
		]
	}
]`

func TestClient_GetDefinitions(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		word       string
		wantErr    error
		wantWord   string
		wantOrigin string
	}{
		{
			name: "successful lookup",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/entries/en/hello", r.URL.Path)
				_, _ = w.Write([]byte(helloPayload))
			},
			word:       "hello",
			wantWord:   "hello",
			wantOrigin: "early 19th century",
		},
		{
			name: "missing entry maps to not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"title": "No Definitions Found"}`))
			},
			word:    "zzqk",
			wantErr: dictionary.ErrNotFound,
		},
		{
			name: "malformed payload maps to decoding",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"unexpected": "shape"}`))
			},
			word:    "hello",
			wantErr: dictionary.ErrDecoding,
		},
		{
			name: "entry missing required fields maps to decoding",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"word": "hello"}]`))
			},
			word:    "hello",
			wantErr: dictionary.ErrDecoding,
		},
		{
			name: "empty array maps to not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[]`))
			},
			word:    "hello",
			wantErr: dictionary.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, 0)
			defer func() {
				_ = client.Close()
			}()

			entries, err := client.GetDefinitions(context.Background(), tt.word)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantWord, entries[0].Word)
			assert.Equal(t, tt.wantOrigin, entries[0].Origin)
			assert.Equal(t, "exclamation", entries[0].DominantPartOfSpeech())
		})
	}
}

func TestClient_GetDefinitions_EmptyWord(t *testing.T) {
	client := NewClient(DefaultBaseURL, 0)
	defer func() {
		_ = client.Close()
	}()

	_, err := client.GetDefinitions(context.Background(), "  ")

	require.ErrorIs(t, err, dictionary.ErrInvalid)
}

func TestClient_GetDefinitions_UnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // Immediately closed: every request fails at transport level.

	client := NewClient(server.URL, 0)
	defer func() {
		_ = client.Close()
	}()

	_, err := client.GetDefinitions(context.Background(), "hello")

	require.ErrorIs(t, err, dictionary.ErrNetwork)
}

func TestClient_GetDefinitions_RetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(helloPayload))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2)
	defer func() {
		_ = client.Close()
	}()

	entries, err := client.GetDefinitions(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	require.Len(t, entries, 1)
}
