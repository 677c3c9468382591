// Package lookup orchestrates one dictionary query: it fans out to the
// definition and translation providers, runs the pure analyzers over the
// result, and derives the word family in the background.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/hanlexi/hanlexi/internal/analysis"
	"github.com/hanlexi/hanlexi/internal/dictionary"
)

const (
	// English definitions are translated into this MyMemory language pair.
	langEnglish = "en"
	langChinese = "zh-CN"

	maxAlternatives      = 5
	minAlternativeScore  = 50
	maxAlternativeLength = 50
	maxSynonymsForUsage  = 10
	maxRelatedWords      = 8
)

// RelatedWordsFetcher supplies optional word associations for a query.
type RelatedWordsFetcher interface {
	RelatedWords(ctx context.Context, word string, limit int) ([]string, error)
}

// Translation is the filtered translation of a query: the provider's primary
// rendering plus up to five distinct, high-confidence alternatives.
type Translation struct {
	Primary      string
	Alternatives []string
}

// Result is the merged outcome of one lookup. WordFamily is attached by
// awaiting the PendingFamily returned alongside it.
type Result struct {
	Query       string
	IsChinese   bool
	IsPhrase    bool
	Entries     []dictionary.DictionaryEntry
	Translation Translation
	Etymology   analysis.EtymologyAnalysis
	Usage       analysis.UsageAnalysis
	Related     []string
	WordFamily  analysis.WordFamilyResult
	Timestamp   time.Time
}

// PendingFamily is the in-flight word-family derivation of a lookup. The
// rest of the result is ready before it completes; callers render first and
// await the family when they want it.
type PendingFamily struct {
	done <-chan analysis.WordFamilyResult
}

// Await blocks until the word family is derived or ctx is cancelled, in
// which case it returns an empty result.
func (p *PendingFamily) Await(ctx context.Context) analysis.WordFamilyResult {
	select {
	case result := <-p.done:
		return result
	case <-ctx.Done():
		return analysis.WordFamilyResult{}
	}
}

// Service composes the external provider with the word-analysis pipeline.
type Service struct {
	provider dictionary.Provider
	related  RelatedWordsFetcher
}

// NewService creates a lookup service. related may be nil to skip word
// associations.
func NewService(provider dictionary.Provider, related RelatedWordsFetcher) *Service {
	return &Service{
		provider: provider,
		related:  related,
	}
}

// Lookup resolves query, routing Chinese-script input through the reverse
// path. The returned PendingFamily completes in the background.
func (s *Service) Lookup(ctx context.Context, query string) (*Result, *PendingFamily, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil, fmt.Errorf("empty query: %w", dictionary.ErrInvalid)
	}
	if ContainsHan(query) {
		return s.lookupChinese(ctx, query)
	}
	return s.lookupEnglish(ctx, query)
}

func (s *Service) lookupEnglish(ctx context.Context, query string) (*Result, *PendingFamily, error) {
	// Definitions, translation and associations are independent; issue all
	// of them before waiting on any.
	type definitionsOutcome struct {
		entries []dictionary.DictionaryEntry
		err     error
	}
	type translationOutcome struct {
		translation dictionary.Translation
		err         error
	}

	definitionsCh := make(chan definitionsOutcome, 1)
	translationCh := make(chan translationOutcome, 1)
	relatedCh := make(chan []string, 1)

	go func() {
		entries, err := s.provider.GetDefinitions(ctx, query)
		definitionsCh <- definitionsOutcome{entries: entries, err: err}
	}()
	go func() {
		translation, err := s.provider.Translate(ctx, query, langEnglish, langChinese)
		translationCh <- translationOutcome{translation: translation, err: err}
	}()
	go func() {
		relatedCh <- s.fetchRelated(ctx, query)
	}()

	definitions := <-definitionsCh
	translation := <-translationCh
	related := <-relatedCh

	result := &Result{
		Query:     query,
		Related:   related,
		Timestamp: time.Now(),
	}

	switch {
	case definitions.err == nil:
		result.Entries = definitions.entries
	case errors.Is(definitions.err, dictionary.ErrNotFound):
		// Soft condition: continue without definitions and flag probable
		// phrases so the caller can render them as such.
		result.IsPhrase = strings.ContainsAny(query, " -")
	default:
		return nil, nil, fmt.Errorf("provider.GetDefinitions > %w", definitions.err)
	}

	// Translation is mandatory for a complete result; every failure kind
	// propagates, NotFound included.
	if translation.err != nil {
		return nil, nil, fmt.Errorf("provider.Translate > %w", translation.err)
	}
	result.Translation = filterTranslation(translation.translation)

	origin := ""
	var synonyms []string
	if len(result.Entries) > 0 {
		origin = result.Entries[0].Origin
		synonyms = result.Entries[0].Synonyms(maxSynonymsForUsage)
	}
	if !strings.ContainsAny(query, " \t") {
		result.Etymology = analysis.AnalyzeEtymology(query, origin)
	}
	result.Usage = analysis.AnalyzeUsage(query, synonyms)

	return result, s.deriveFamily(ctx, query), nil
}

func (s *Service) lookupChinese(ctx context.Context, query string) (*Result, *PendingFamily, error) {
	translation, err := s.provider.Translate(ctx, query, langChinese, langEnglish)
	if err != nil {
		return nil, nil, fmt.Errorf("provider.Translate > %w", err)
	}

	result := &Result{
		Query:       query,
		IsChinese:   true,
		Translation: filterTranslation(translation),
		Timestamp:   time.Now(),
	}

	// Analyze the English rendering when it is a single word; phrases have
	// no morphology to analyze.
	english := strings.ToLower(strings.TrimSpace(translation.Primary))
	if english == "" || strings.ContainsAny(english, " \t") {
		result.IsPhrase = strings.ContainsAny(english, " -")
		return result, emptyFamily(), nil
	}

	entries, err := s.provider.GetDefinitions(ctx, english)
	switch {
	case err == nil:
		result.Entries = entries
	case errors.Is(err, dictionary.ErrNotFound):
		// Keep the translation even when the English side has no entry.
	default:
		return nil, nil, fmt.Errorf("provider.GetDefinitions > %w", err)
	}

	origin := ""
	var synonyms []string
	if len(result.Entries) > 0 {
		origin = result.Entries[0].Origin
		synonyms = result.Entries[0].Synonyms(maxSynonymsForUsage)
	}
	result.Etymology = analysis.AnalyzeEtymology(english, origin)
	result.Usage = analysis.AnalyzeUsage(english, synonyms)
	result.Related = s.fetchRelated(ctx, english)

	return result, s.deriveFamily(ctx, english), nil
}

// deriveFamily starts the word-family derivation in the background.
func (s *Service) deriveFamily(ctx context.Context, word string) *PendingFamily {
	done := make(chan analysis.WordFamilyResult, 1)
	go func() {
		done <- analysis.FetchWordFamily(ctx, word, providerVerifier{provider: s.provider})
	}()
	return &PendingFamily{done: done}
}

func emptyFamily() *PendingFamily {
	done := make(chan analysis.WordFamilyResult, 1)
	done <- analysis.WordFamilyResult{}
	return &PendingFamily{done: done}
}

func (s *Service) fetchRelated(ctx context.Context, word string) []string {
	if s.related == nil || strings.ContainsAny(word, " \t") {
		return nil
	}
	words, err := s.related.RelatedWords(ctx, word, maxRelatedWords)
	if err != nil {
		// Associations are decoration; a failed fetch never fails a lookup.
		return nil
	}
	return words
}

// filterTranslation keeps only distinct, confident, reasonably short
// alternatives: quality above 50, length at most 50, deduplicated
// case-insensitively against the primary and each other, capped at five.
func filterTranslation(translation dictionary.Translation) Translation {
	result := Translation{Primary: translation.Primary}
	seen := map[string]struct{}{
		strings.ToLower(translation.Primary): {},
	}
	for _, match := range translation.Matches {
		if len(result.Alternatives) >= maxAlternatives {
			break
		}
		candidate := strings.TrimSpace(match.Translation)
		if candidate == "" || match.Quality <= minAlternativeScore {
			continue
		}
		if len(candidate) > maxAlternativeLength {
			continue
		}
		key := strings.ToLower(candidate)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result.Alternatives = append(result.Alternatives, candidate)
	}
	return result
}

// ContainsHan reports whether s contains any CJK ideograph, the signal that
// a query is Chinese rather than English.
func ContainsHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// providerVerifier adapts the dictionary provider to the word-family
// verifier contract: a candidate exists when the provider has an entry.
type providerVerifier struct {
	provider dictionary.Provider
}

func (v providerVerifier) Verify(ctx context.Context, candidate string) (*analysis.VerifiedForm, error) {
	entries, err := v.provider.GetDefinitions(ctx, candidate)
	if errors.Is(err, dictionary.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("provider.GetDefinitions > %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &analysis.VerifiedForm{
		Word:         entries[0].Word,
		PartOfSpeech: entries[0].DominantPartOfSpeech(),
	}, nil
}
