package dictionary

import "context"

//go:generate mockgen -source=provider.go -destination=../mocks/dictionary/mock_provider.go -package=mock_dictionary

// Provider is the external dictionary/translation boundary. Implementations
// must report failures through the package error kinds: ErrNotFound when the
// query has no entry, ErrNetwork on transport failure, ErrDecoding on a
// malformed payload, ErrInvalid on malformed input.
type Provider interface {
	GetDefinitions(ctx context.Context, word string) ([]DictionaryEntry, error)
	Translate(ctx context.Context, text, sourceLang, targetLang string) (Translation, error)
}
