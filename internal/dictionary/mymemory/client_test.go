package mymemory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanlexi/hanlexi/internal/dictionary"
)

func TestClient_Translate(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		status   int
		wantErr  error
		want     dictionary.Translation
	}{
		{
			name: "successful translation with mixed quality encodings",
			payload: `{
				"responseData": {"translatedText": "你好"},
				"responseStatus": 200,
				"matches": [
					{"translation": "你好", "quality": "74"},
					{"translation": "喂", "quality": 80}
				]
			}`,
			status: http.StatusOK,
			want: dictionary.Translation{
				Primary: "你好",
				Matches: []dictionary.TranslationMatch{
					{Translation: "你好", Quality: 74},
					{Translation: "喂", Quality: 80},
				},
			},
		},
		{
			name: "string response status",
			payload: `{
				"responseData": {"translatedText": "你好"},
				"responseStatus": "200",
				"matches": []
			}`,
			status: http.StatusOK,
			want:   dictionary.Translation{Primary: "你好"},
		},
		{
			name: "empty translation maps to not found",
			payload: `{
				"responseData": {"translatedText": ""},
				"responseStatus": 200,
				"matches": []
			}`,
			status:  http.StatusOK,
			wantErr: dictionary.ErrNotFound,
		},
		{
			name: "error status maps to not found",
			payload: `{
				"responseData": {"translatedText": "INVALID LANGUAGE PAIR"},
				"responseStatus": "403",
				"matches": []
			}`,
			status:  http.StatusOK,
			wantErr: dictionary.ErrNotFound,
		},
		{
			name:    "malformed payload maps to decoding",
			payload: `not json at all`,
			status:  http.StatusOK,
			wantErr: dictionary.ErrDecoding,
		},
		{
			name:    "server error maps to network",
			payload: `{}`,
			status:  http.StatusBadGateway,
			wantErr: dictionary.ErrNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/get", r.URL.Path)
				assert.Equal(t, "hello", r.URL.Query().Get("q"))
				assert.Equal(t, "en|zh-CN", r.URL.Query().Get("langpair"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer server.Close()

			client := NewClient(server.URL, "")
			defer func() {
				_ = client.Close()
			}()

			got, err := client.Translate(context.Background(), "hello", "en", "zh-CN")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Translate_SendsContactEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "someone@example.com", r.URL.Query().Get("de"))
		_, _ = w.Write([]byte(`{
			"responseData": {"translatedText": "你好"},
			"responseStatus": 200,
			"matches": []
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "someone@example.com")
	defer func() {
		_ = client.Close()
	}()

	_, err := client.Translate(context.Background(), "hello", "en", "zh-CN")

	require.NoError(t, err)
}

func TestClient_Translate_EmptyText(t *testing.T) {
	client := NewClient(DefaultBaseURL, "")
	defer func() {
		_ = client.Close()
	}()

	_, err := client.Translate(context.Background(), "", "en", "zh-CN")

	require.ErrorIs(t, err, dictionary.ErrInvalid)
}

func TestQuality_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		want    float64
		wantErr bool
	}{
		{name: "number", json: `85`, want: 85},
		{name: "quoted string", json: `"74"`, want: 74},
		{name: "null", json: `null`, want: 0},
		{name: "empty string", json: `""`, want: 0},
		{name: "garbage", json: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q quality
			err := json.Unmarshal([]byte(tt.json), &q)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, float64(q))
		})
	}
}
