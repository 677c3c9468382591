package dictionary_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hanlexi/hanlexi/internal/dictionary"
	mock_dictionary "github.com/hanlexi/hanlexi/internal/mocks/dictionary"
	"github.com/hanlexi/hanlexi/internal/testutil"
)

func TestClient_GetDefinitions(t *testing.T) {
	entries := []dictionary.DictionaryEntry{
		testutil.Entry("hello", "exclamation", "a greeting"),
	}

	t.Run("second lookup is served from the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_dictionary.NewMockProvider(ctrl)
		provider.EXPECT().GetDefinitions(gomock.Any(), "hello").Return(entries, nil).Times(1)
		cache := dictionary.NewFileCache(filepath.Join(t.TempDir(), "definitions"))
		client := dictionary.NewClient(provider, provider, cache)

		first, err := client.GetDefinitions(context.Background(), "hello")
		require.NoError(t, err)
		second, err := client.GetDefinitions(context.Background(), "hello")
		require.NoError(t, err)

		assert.Equal(t, entries, first)
		assert.Equal(t, entries, second)
	})

	t.Run("nil cache fetches every time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_dictionary.NewMockProvider(ctrl)
		provider.EXPECT().GetDefinitions(gomock.Any(), "hello").Return(entries, nil).Times(2)
		client := dictionary.NewClient(provider, provider, nil)

		_, err := client.GetDefinitions(context.Background(), "hello")
		require.NoError(t, err)
		_, err = client.GetDefinitions(context.Background(), "hello")
		require.NoError(t, err)
	})

	t.Run("fetch errors are not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_dictionary.NewMockProvider(ctrl)
		gomock.InOrder(
			provider.EXPECT().GetDefinitions(gomock.Any(), "hello").Return(nil, dictionary.ErrNotFound),
			provider.EXPECT().GetDefinitions(gomock.Any(), "hello").Return(entries, nil),
		)
		cache := dictionary.NewFileCache(filepath.Join(t.TempDir(), "definitions"))
		client := dictionary.NewClient(provider, provider, cache)

		_, err := client.GetDefinitions(context.Background(), "hello")
		require.ErrorIs(t, err, dictionary.ErrNotFound)

		got, err := client.GetDefinitions(context.Background(), "hello")
		require.NoError(t, err)
		assert.Equal(t, entries, got)
	})
}

func TestClient_Translate(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_dictionary.NewMockProvider(ctrl)
	want := dictionary.Translation{Primary: "你好"}
	provider.EXPECT().Translate(gomock.Any(), "hello", "en", "zh-CN").Return(want, nil)
	client := dictionary.NewClient(provider, provider, nil)

	got, err := client.Translate(context.Background(), "hello", "en", "zh-CN")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
