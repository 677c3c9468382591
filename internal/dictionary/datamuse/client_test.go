package datamuse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanlexi/hanlexi/internal/dictionary"
)

func TestClient_RelatedWords(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		status  int
		wantErr error
		want    []string
	}{
		{
			name: "returns words strongest first",
			payload: `[
				{"word": "acquire", "score": 52110},
				{"word": "get", "score": 42734},
				{"word": "", "score": 100},
				{"word": "procure", "score": 31001}
			]`,
			status: http.StatusOK,
			want:   []string{"acquire", "get", "procure"},
		},
		{
			name:    "empty result list",
			payload: `[]`,
			status:  http.StatusOK,
			want:    []string{},
		},
		{
			name:    "malformed payload maps to decoding",
			payload: `{"oops": true}`,
			status:  http.StatusOK,
			wantErr: dictionary.ErrDecoding,
		},
		{
			name:    "server error maps to network",
			payload: `[]`,
			status:  http.StatusInternalServerError,
			wantErr: dictionary.ErrNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/words", r.URL.Path)
				assert.Equal(t, "obtain", r.URL.Query().Get("ml"))
				assert.Equal(t, "8", r.URL.Query().Get("max"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			defer func() {
				_ = client.Close()
			}()

			got, err := client.RelatedWords(context.Background(), "obtain", 8)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_RelatedWords_DefaultLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("max"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	defer func() {
		_ = client.Close()
	}()

	_, err := client.RelatedWords(context.Background(), "obtain", 0)

	require.NoError(t, err)
}

func TestClient_RelatedWords_EmptyWord(t *testing.T) {
	client := NewClient(DefaultBaseURL)
	defer func() {
		_ = client.Close()
	}()

	_, err := client.RelatedWords(context.Background(), "  ", 8)

	require.ErrorIs(t, err, dictionary.ErrInvalid)
}
