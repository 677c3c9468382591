package dictionary

import "errors"

// Error kinds preserved from the provider boundary through to the caller.
// Adapters wrap transport failures into exactly one of these so consumers
// can branch with errors.Is without knowing the provider.
var (
	// ErrNotFound means the provider has no entry for the query.
	ErrNotFound = errors.New("dictionary: entry not found")
	// ErrNetwork means the provider could not be reached.
	ErrNetwork = errors.New("dictionary: network failure")
	// ErrDecoding means the provider responded with a malformed payload.
	ErrDecoding = errors.New("dictionary: malformed response")
	// ErrInvalid means the input itself was malformed, e.g. an empty query.
	ErrInvalid = errors.New("dictionary: invalid input")
)
