package analysis

import "strings"

const (
	maxPrefixes = 2
	maxSuffixes = 2

	// A prefix match must leave at least this many characters behind,
	// otherwise short words like "under" would lose their whole body.
	minAfterPrefix = 3
	minAfterSuffix = 1
)

// WordComponent is one identified morpheme at its position in the word.
type WordComponent struct {
	Text    string
	Kind    ComponentKind
	GlossEN string
	GlossZH string
}

// EtymologyAnalysis is the decomposition of a single word into prefix, root
// and suffix components, ordered left to right.
type EtymologyAnalysis struct {
	Components []WordComponent
	Origin     string
	HasContent bool
}

// AnalyzeEtymology decomposes word into at most two prefixes, one root and
// two suffixes by greedy longest-pattern matching over the morpheme tables.
// Multi-word input yields an empty analysis. The function performs no I/O
// and always returns.
func AnalyzeEtymology(word, origin string) EtymologyAnalysis {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || strings.ContainsAny(word, " \t") {
		return EtymologyAnalysis{}
	}

	remaining := word
	var prefixes []WordComponent
	for len(prefixes) < maxPrefixes {
		morpheme, ok := matchPrefix(remaining)
		if !ok {
			break
		}
		prefixes = append(prefixes, WordComponent{
			Text:    morpheme.Pattern,
			Kind:    KindPrefix,
			GlossEN: morpheme.GlossEN,
			GlossZH: morpheme.GlossZH,
		})
		remaining = remaining[len(morpheme.Pattern):]
	}

	// Suffixes come off the post-prefix remainder, outermost first.
	trimmed := remaining
	var suffixes []WordComponent
	for len(suffixes) < maxSuffixes {
		morpheme, ok := matchSuffix(trimmed)
		if !ok {
			break
		}
		suffixes = append(suffixes, WordComponent{
			Text:    morpheme.Pattern,
			Kind:    KindSuffix,
			GlossEN: morpheme.GlossEN,
			GlossZH: morpheme.GlossZH,
		})
		trimmed = trimmed[:len(trimmed)-len(morpheme.Pattern)]
	}

	root, foundRoot := matchRoot(trimmed)
	if !foundRoot {
		root, foundRoot = matchRoot(word)
	}

	components := make([]WordComponent, 0, len(prefixes)+len(suffixes)+1)
	components = append(components, prefixes...)
	if foundRoot {
		components = append(components, WordComponent{
			Text:    root.Pattern,
			Kind:    KindRoot,
			GlossEN: root.GlossEN,
			GlossZH: root.GlossZH,
		})
	}
	// Suffixes were extracted outermost first; word order is innermost first.
	for i := len(suffixes) - 1; i >= 0; i-- {
		components = append(components, suffixes[i])
	}

	return EtymologyAnalysis{
		Components: components,
		Origin:     origin,
		HasContent: len(components) > 0 || origin != "",
	}
}

func matchPrefix(s string) (Morpheme, bool) {
	for _, m := range prefixesByLength {
		if strings.HasPrefix(s, m.Pattern) && len(s)-len(m.Pattern) >= minAfterPrefix {
			return m, true
		}
	}
	return Morpheme{}, false
}

func matchSuffix(s string) (Morpheme, bool) {
	for _, m := range suffixesByLength {
		if strings.HasSuffix(s, m.Pattern) && len(s)-len(m.Pattern) >= minAfterSuffix {
			return m, true
		}
	}
	return Morpheme{}, false
}

func matchRoot(s string) (Morpheme, bool) {
	if s == "" {
		return Morpheme{}, false
	}
	for _, m := range rootsByLength {
		if strings.Contains(s, m.Pattern) {
			return m, true
		}
	}
	return Morpheme{}, false
}
