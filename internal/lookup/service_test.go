package lookup_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hanlexi/hanlexi/internal/dictionary"
	"github.com/hanlexi/hanlexi/internal/lookup"
	mock_dictionary "github.com/hanlexi/hanlexi/internal/mocks/dictionary"
)

func helloEntry() dictionary.DictionaryEntry {
	return dictionary.DictionaryEntry{
		Word:     "hello",
		Phonetic: "/həˈloʊ/",
		Meanings: []dictionary.Meaning{
			{
				PartOfSpeech: "exclamation",
				Definitions: []dictionary.Definition{
					{Definition: "used as a greeting", Example: "hello there"},
				},
				Synonyms: []string{"hi", "greetings"},
			},
		},
	}
}

func TestService_Lookup_EnglishWord(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_dictionary.NewMockProvider(ctrl)

	provider.EXPECT().
		GetDefinitions(gomock.Any(), "hello").
		Return([]dictionary.DictionaryEntry{helloEntry()}, nil)
	provider.EXPECT().
		Translate(gomock.Any(), "hello", "en", "zh-CN").
		Return(dictionary.Translation{Primary: "你好"}, nil)
	// Word-family verification probes arbitrary candidates.
	provider.EXPECT().
		GetDefinitions(gomock.Any(), gomock.Any()).
		Return(nil, dictionary.ErrNotFound).
		AnyTimes()

	service := lookup.NewService(provider, nil)
	result, family, err := service.Lookup(context.Background(), "hello")

	require.NoError(t, err)
	assert.False(t, result.IsPhrase)
	assert.False(t, result.IsChinese)
	require.NotEmpty(t, result.Entries)
	assert.Equal(t, "你好", result.Translation.Primary)
	assert.True(t, result.Usage.HasContent)
	assert.False(t, result.Timestamp.IsZero())

	// Complete the background derivation before the test ends.
	family.Await(context.Background())
}

func TestService_Lookup_PhraseDegradesGracefully(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_dictionary.NewMockProvider(ctrl)

	provider.EXPECT().
		GetDefinitions(gomock.Any(), "piece of cake").
		Return(nil, dictionary.ErrNotFound)
	provider.EXPECT().
		Translate(gomock.Any(), "piece of cake", "en", "zh-CN").
		Return(dictionary.Translation{Primary: "小菜一碟"}, nil)
	provider.EXPECT().
		GetDefinitions(gomock.Any(), gomock.Any()).
		Return(nil, dictionary.ErrNotFound).
		AnyTimes()

	service := lookup.NewService(provider, nil)
	result, family, err := service.Lookup(context.Background(), "piece of cake")

	require.NoError(t, err)
	assert.True(t, result.IsPhrase)
	assert.Empty(t, result.Entries)
	assert.Equal(t, "小菜一碟", result.Translation.Primary)
	assert.False(t, result.Etymology.HasContent)

	got := family.Await(context.Background())
	assert.False(t, got.HasContent)
}

func TestService_Lookup_TranslationNotFoundPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_dictionary.NewMockProvider(ctrl)

	provider.EXPECT().
		GetDefinitions(gomock.Any(), "hello").
		Return([]dictionary.DictionaryEntry{helloEntry()}, nil)
	provider.EXPECT().
		Translate(gomock.Any(), "hello", "en", "zh-CN").
		Return(dictionary.Translation{}, dictionary.ErrNotFound)

	service := lookup.NewService(provider, nil)
	_, _, err := service.Lookup(context.Background(), "hello")

	require.ErrorIs(t, err, dictionary.ErrNotFound)
}

func TestService_Lookup_AlternativesFiltering(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_dictionary.NewMockProvider(ctrl)

	longTranslation := strings.Repeat("x", 60)
	provider.EXPECT().
		GetDefinitions(gomock.Any(), "hello").
		Return([]dictionary.DictionaryEntry{helloEntry()}, nil)
	provider.EXPECT().
		Translate(gomock.Any(), "hello", "en", "zh-CN").
		Return(dictionary.Translation{
			Primary: "Hello",
			Matches: []dictionary.TranslationMatch{
				{Translation: "Hi", Quality: 90},
				{Translation: "Hi", Quality: 60},
				{Translation: longTranslation, Quality: 95},
				{Translation: "Hey", Quality: 51},
				{Translation: "hello", Quality: 99},
				{Translation: "Howdy", Quality: 50},
			},
		}, nil)
	provider.EXPECT().
		GetDefinitions(gomock.Any(), gomock.Any()).
		Return(nil, dictionary.ErrNotFound).
		AnyTimes()

	service := lookup.NewService(provider, nil)
	result, family, err := service.Lookup(context.Background(), "hello")

	require.NoError(t, err)
	// "Hi" once, "Hey" once; the duplicate, the over-length entry, the
	// case-insensitive echo of the primary, and quality <= 50 all dropped.
	assert.Equal(t, []string{"Hi", "Hey"}, result.Translation.Alternatives)

	family.Await(context.Background())
}

func TestService_Lookup_ChineseInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_dictionary.NewMockProvider(ctrl)

	provider.EXPECT().
		Translate(gomock.Any(), "你好", "zh-CN", "en").
		Return(dictionary.Translation{Primary: "hello"}, nil)
	provider.EXPECT().
		GetDefinitions(gomock.Any(), "hello").
		Return([]dictionary.DictionaryEntry{helloEntry()}, nil)
	provider.EXPECT().
		GetDefinitions(gomock.Any(), gomock.Any()).
		Return(nil, dictionary.ErrNotFound).
		AnyTimes()

	service := lookup.NewService(provider, nil)
	result, family, err := service.Lookup(context.Background(), "你好")

	require.NoError(t, err)
	assert.True(t, result.IsChinese)
	assert.Equal(t, "hello", result.Translation.Primary)
	require.NotEmpty(t, result.Entries)
	assert.True(t, result.Usage.HasContent)

	family.Await(context.Background())
}

func TestService_Lookup_EmptyQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_dictionary.NewMockProvider(ctrl)

	service := lookup.NewService(provider, nil)
	_, _, err := service.Lookup(context.Background(), "   ")

	require.ErrorIs(t, err, dictionary.ErrInvalid)
}

func TestService_Lookup_WordFamilyAttachesLater(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_dictionary.NewMockProvider(ctrl)

	provider.EXPECT().
		GetDefinitions(gomock.Any(), "create").
		Return([]dictionary.DictionaryEntry{{
			Word: "create",
			Meanings: []dictionary.Meaning{{
				PartOfSpeech: "verb",
				Definitions:  []dictionary.Definition{{Definition: "to bring into existence"}},
			}},
		}}, nil)
	provider.EXPECT().
		Translate(gomock.Any(), "create", "en", "zh-CN").
		Return(dictionary.Translation{Primary: "创造"}, nil)
	provider.EXPECT().
		GetDefinitions(gomock.Any(), "creation").
		Return([]dictionary.DictionaryEntry{{
			Word: "creation",
			Meanings: []dictionary.Meaning{{
				PartOfSpeech: "noun",
				Definitions:  []dictionary.Definition{{Definition: "the act of creating"}},
			}},
		}}, nil)
	provider.EXPECT().
		GetDefinitions(gomock.Any(), gomock.Any()).
		Return(nil, dictionary.ErrNotFound).
		AnyTimes()

	service := lookup.NewService(provider, nil)
	result, family, err := service.Lookup(context.Background(), "create")

	require.NoError(t, err)
	assert.False(t, result.WordFamily.HasContent, "family is not attached synchronously")

	got := family.Await(context.Background())
	require.True(t, got.HasContent)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "creation", got.Entries[0].Word)
}

func TestContainsHan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "english word", input: "hello", want: false},
		{name: "chinese word", input: "你好", want: true},
		{name: "mixed input", input: "hello 世界", want: true},
		{name: "empty", input: "", want: false},
		{name: "punctuation only", input: "?!", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lookup.ContainsHan(tt.input))
		})
	}
}
