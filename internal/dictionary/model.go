// Package dictionary defines the external provider boundary: the entry and
// translation models the rest of the program consumes, the error kinds
// adapters must produce, and a file cache for definition payloads.
package dictionary

import "strings"

// DictionaryEntry is one dictionary result for a word.
type DictionaryEntry struct {
	Word      string     `json:"word" validate:"required"`
	Phonetic  string     `json:"phonetic,omitempty"`
	Phonetics []Phonetic `json:"phonetics,omitempty"`
	Origin    string     `json:"origin,omitempty"`
	Meanings  []Meaning  `json:"meanings" validate:"required,min=1,dive"`
}

// Phonetic is one pronunciation with an optional audio URL.
type Phonetic struct {
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
}

// Meaning groups the definitions of one part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech" validate:"required"`
	Definitions  []Definition `json:"definitions" validate:"required,min=1"`
	Synonyms     []string     `json:"synonyms,omitempty"`
}

// Definition is a single sense with an optional example sentence.
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
}

// FirstPhonetic returns the first non-empty phonetic text of the entry.
func (e DictionaryEntry) FirstPhonetic() string {
	if e.Phonetic != "" {
		return e.Phonetic
	}
	for _, p := range e.Phonetics {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}

// DominantPartOfSpeech returns the part of speech carrying the most
// definitions, the entry's coarse grammatical category.
func (e DictionaryEntry) DominantPartOfSpeech() string {
	best := ""
	count := 0
	for _, m := range e.Meanings {
		if len(m.Definitions) > count {
			best = m.PartOfSpeech
			count = len(m.Definitions)
		}
	}
	return best
}

// Synonyms collects up to limit distinct synonyms across all meanings and
// definitions, in document order. A non-positive limit collects everything.
func (e DictionaryEntry) Synonyms(limit int) []string {
	seen := make(map[string]struct{})
	var synonyms []string
	add := func(s string) {
		if limit > 0 && len(synonyms) >= limit {
			return
		}
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		synonyms = append(synonyms, s)
	}
	for _, m := range e.Meanings {
		for _, s := range m.Synonyms {
			add(s)
		}
		for _, d := range m.Definitions {
			for _, s := range d.Synonyms {
				add(s)
			}
		}
	}
	return synonyms
}

// Translation is one translation response: the provider's primary rendering
// plus every scored alternative it offered.
type Translation struct {
	Primary string
	Matches []TranslationMatch
}

// TranslationMatch is one alternative translation with the provider's
// confidence score, 0 to 100.
type TranslationMatch struct {
	Translation string
	Quality     float64
}
