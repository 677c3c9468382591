package analysis

import (
	"context"
	"sort"
	"strings"
	"sync"
)

//go:generate mockgen -source=wordfamily.go -destination=../mocks/analysis/mock_verifier.go -package=mock_analysis

// PartOfSpeech is the coarse grammatical category of a word-family form.
type PartOfSpeech string

const (
	PartNoun      PartOfSpeech = "noun"
	PartVerb      PartOfSpeech = "verb"
	PartAdjective PartOfSpeech = "adjective"
	PartAdverb    PartOfSpeech = "adverb"
)

// posPriority fixes the output order of word-family entries.
var posPriority = map[PartOfSpeech]int{
	PartNoun:      0,
	PartVerb:      1,
	PartAdjective: 2,
	PartAdverb:    3,
}

// posIcons label each category for rendering, Chinese dictionary style.
var posIcons = map[PartOfSpeech]string{
	PartNoun:      "名",
	PartVerb:      "动",
	PartAdjective: "形",
	PartAdverb:    "副",
}

// VerifiedForm is a candidate confirmed by the verifier to be a real
// dictionary word, with the dominant part of speech it reported.
type VerifiedForm struct {
	Word         string
	PartOfSpeech string
}

// Verifier confirms whether a candidate string is a real dictionary word.
// A nil result with a nil error means the candidate does not exist.
type Verifier interface {
	Verify(ctx context.Context, candidate string) (*VerifiedForm, error)
}

// WordFamilyEntry is one verified morphological relative of the query word.
type WordFamilyEntry struct {
	Word         string
	PartOfSpeech PartOfSpeech
	Icon         string
	SortOrder    int
}

// WordFamilyResult is the ordered, deduplicated word family of one query.
type WordFamilyResult struct {
	Entries    []WordFamilyEntry
	HasContent bool
}

const (
	maxCandidates   = 20
	maxFamilySize   = 6
	minCategoryFill = 4
)

// FetchWordFamily generates morphological candidates for word, verifies them
// all concurrently through verifier, and returns at most six confirmed forms
// ordered noun, verb, adjective, adverb. Verification failures reject the
// individual candidate and never fail the call; if nothing verifies the
// result is empty. Input containing whitespace short-circuits to empty.
func FetchWordFamily(ctx context.Context, word string, verifier Verifier) WordFamilyResult {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || strings.ContainsAny(word, " \t") {
		return WordFamilyResult{}
	}

	candidates := generateCandidates(word)
	if len(candidates) == 0 {
		return WordFamilyResult{}
	}

	// Fan out one verification per candidate. Each goroutine writes only
	// its own slot, so no locking is needed.
	verified := make([]*VerifiedForm, len(candidates))
	var wg sync.WaitGroup
	for i, candidate := range candidates {
		wg.Add(1)
		go func(i int, candidate string) {
			defer wg.Done()
			form, err := verifier.Verify(ctx, candidate)
			if err != nil {
				return
			}
			verified[i] = form
		}(i, candidate)
	}
	wg.Wait()

	entries := collectFamily(word, candidates, verified)
	return WordFamilyResult{Entries: entries, HasContent: len(entries) > 0}
}

// generateCandidates applies the morphological transformation battery to
// word. Each target suffix produces one candidate spelled by the usual
// rules: silent-e dropping, consonant-y inflection, and final-consonant
// doubling. Base-form recovery handles queries that are themselves derived.
func generateCandidates(word string) []string {
	eStem := word
	hasSilentE := strings.HasSuffix(word, "e") && len(word) > 2
	if hasSilentE {
		eStem = word[:len(word)-1]
	}
	iStem, hasConsonantY := consonantYStem(word)
	if !hasConsonantY {
		iStem = word
	}
	inflected := word
	if doubled, ok := doubleFinalConsonant(word); ok {
		inflected = doubled
	}

	seen := make(map[string]struct{})
	candidates := make([]string, 0, maxCandidates)
	add := func(candidate string) {
		if len(candidates) >= maxCandidates {
			return
		}
		if len(candidate) < 3 || candidate == word {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		candidates = append(candidates, candidate)
	}

	// Verb forms.
	if hasSilentE {
		add(eStem + "ing")
		add(word + "d")
	} else {
		add(inflected + "ing")
		add(iStem + "ed")
	}

	// Noun forms.
	add(eStem + "ion")
	add(eStem + "ation")
	add(word + "ment")
	add(iStem + "ness")
	add(eStem + "ity")
	if hasSilentE {
		add(word + "r")
	} else {
		add(iStem + "er")
	}
	add(eStem + "or")

	// Adjective forms.
	add(eStem + "ive")
	add(eStem + "able")
	add(eStem + "al")
	add(iStem + "ful")
	add(eStem + "ous")

	// Adverb form.
	switch {
	case hasConsonantY:
		add(iStem + "ly")
	case strings.HasSuffix(word, "le"):
		add(eStem + "y")
	default:
		add(word + "ly")
	}

	for _, base := range baseForms(word) {
		add(base)
	}
	return candidates
}

// consonantYStem turns a trailing consonant+y into i (happy -> happi).
func consonantYStem(word string) (string, bool) {
	if len(word) < 3 || !strings.HasSuffix(word, "y") {
		return "", false
	}
	if isVowel(rune(word[len(word)-2])) {
		return "", false
	}
	return word[:len(word)-1] + "i", true
}

// doubleFinalConsonant doubles the last letter after a short-vowel pattern
// (run -> runn), the consonant-vowel-consonant case.
func doubleFinalConsonant(word string) (string, bool) {
	if len(word) < 3 {
		return "", false
	}
	last := rune(word[len(word)-1])
	middle := rune(word[len(word)-2])
	before := rune(word[len(word)-3])
	if isVowel(last) || !isVowel(middle) || isVowel(before) {
		return "", false
	}
	if last == 'w' || last == 'x' || last == 'y' {
		return "", false
	}
	return word + string(last), true
}

// baseForms recovers likely base words when the query itself is a derived
// form, e.g. creation -> create, happily -> happy.
func baseForms(word string) []string {
	var bases []string
	switch {
	case strings.HasSuffix(word, "tion") && len(word) > 6:
		stripped := strings.TrimSuffix(word, "ion")
		bases = append(bases, stripped, stripped+"e")
	case strings.HasSuffix(word, "ive") && len(word) > 5:
		stripped := strings.TrimSuffix(word, "ive")
		bases = append(bases, stripped, stripped+"e")
	case strings.HasSuffix(word, "ness") && len(word) > 5:
		stripped := strings.TrimSuffix(word, "ness")
		bases = append(bases, stripped, restoreY(stripped))
	case strings.HasSuffix(word, "ly") && len(word) > 4:
		stripped := strings.TrimSuffix(word, "ly")
		bases = append(bases, stripped, restoreY(stripped))
	}
	return bases
}

// restoreY undoes the y-to-i spelling change (happi -> happy).
func restoreY(stem string) string {
	if strings.HasSuffix(stem, "i") {
		return stem[:len(stem)-1] + "y"
	}
	return stem
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// collectFamily filters, classifies, orders and truncates verified forms.
func collectFamily(original string, candidates []string, verified []*VerifiedForm) []WordFamilyEntry {
	type classified struct {
		word string
		pos  PartOfSpeech
	}

	seen := make(map[string]struct{})
	byCategory := make(map[PartOfSpeech][]classified)
	for i, form := range verified {
		if form == nil {
			continue
		}
		surface := strings.ToLower(form.Word)
		if surface == "" {
			surface = candidates[i]
		}
		if surface == strings.ToLower(original) {
			continue
		}
		if _, ok := seen[surface]; ok {
			continue
		}
		seen[surface] = struct{}{}
		pos := classifyForm(surface, form.PartOfSpeech)
		byCategory[pos] = append(byCategory[pos], classified{word: surface, pos: pos})
	}

	order := []PartOfSpeech{PartNoun, PartVerb, PartAdjective, PartAdverb}

	// One representative per category first; extras only once the family
	// has reached its minimum fill.
	var picked []classified
	for _, pos := range order {
		if forms := byCategory[pos]; len(forms) > 0 {
			picked = append(picked, forms[0])
		}
	}
	if len(picked) < minCategoryFill {
		for _, pos := range order {
			for _, form := range byCategory[pos][min(1, len(byCategory[pos])):] {
				if len(picked) >= maxFamilySize {
					break
				}
				picked = append(picked, form)
			}
		}
	}
	if len(picked) > maxFamilySize {
		picked = picked[:maxFamilySize]
	}

	entries := make([]WordFamilyEntry, 0, len(picked))
	for _, form := range picked {
		entries = append(entries, WordFamilyEntry{
			Word:         form.word,
			PartOfSpeech: form.pos,
			Icon:         posIcons[form.pos],
			SortOrder:    posPriority[form.pos],
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SortOrder < entries[j].SortOrder
	})
	return entries
}

// classifyForm labels a verified form by ending-pattern heuristics,
// falling back to the verifier's coarse category when the ending is
// ambiguous.
func classifyForm(word, reported string) PartOfSpeech {
	reportedPOS := normalizePOS(reported)
	switch {
	case strings.HasSuffix(word, "ing"), strings.HasSuffix(word, "ed"):
		return PartVerb
	case strings.HasSuffix(word, "ly"):
		return PartAdverb
	case strings.HasSuffix(word, "tion"), strings.HasSuffix(word, "sion"),
		strings.HasSuffix(word, "ment"), strings.HasSuffix(word, "ness"),
		strings.HasSuffix(word, "ity"), strings.HasSuffix(word, "ance"),
		strings.HasSuffix(word, "ence"), strings.HasSuffix(word, "ism"):
		return PartNoun
	case strings.HasSuffix(word, "ive"), strings.HasSuffix(word, "able"),
		strings.HasSuffix(word, "ible"), strings.HasSuffix(word, "ful"),
		strings.HasSuffix(word, "ous"), strings.HasSuffix(word, "ic"),
		strings.HasSuffix(word, "al"), strings.HasSuffix(word, "est"):
		return PartAdjective
	case strings.HasSuffix(word, "er"), strings.HasSuffix(word, "or"):
		// Agent noun (worker) or comparative (faster): trust the verifier.
		if reportedPOS == PartAdjective {
			return PartAdjective
		}
		return PartNoun
	}
	if reportedPOS != "" {
		return reportedPOS
	}
	return PartNoun
}

func normalizePOS(reported string) PartOfSpeech {
	switch strings.ToLower(strings.TrimSpace(reported)) {
	case "noun", "n":
		return PartNoun
	case "verb", "v":
		return PartVerb
	case "adjective", "adj":
		return PartAdjective
	case "adverb", "adv":
		return PartAdverb
	}
	return ""
}
