package analysis

import "strings"

// UsageSuggestion is the fit of one word against one register scenario.
type UsageSuggestion struct {
	Scenario      Scenario
	IsAppropriate bool
	SuggestedWord string
}

// UsageAnalysis holds one suggestion per configured scenario.
type UsageAnalysis struct {
	Suggestions []UsageSuggestion
	HasContent  bool
}

// AnalyzeUsage classifies word against every configured scenario. A word
// fits a scenario when it, or any of its synonyms, appears in the scenario's
// vocabulary. Synonym matches count as appropriate so that near-equivalents
// of register vocabulary are not flagged. Every scenario is always emitted;
// a scenario without a configured substitution leaves SuggestedWord empty.
func AnalyzeUsage(word string, synonyms []string) UsageAnalysis {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return UsageAnalysis{}
	}

	lowered := make([]string, 0, len(synonyms))
	for _, s := range synonyms {
		lowered = append(lowered, strings.ToLower(s))
	}

	suggestions := make([]UsageSuggestion, 0, len(scenarios))
	for _, scenario := range scenarios {
		suggestion := UsageSuggestion{Scenario: scenario}
		if _, ok := scenario.Words[word]; ok {
			suggestion.IsAppropriate = true
		} else {
			for _, synonym := range lowered {
				if _, ok := scenario.Words[synonym]; ok {
					suggestion.IsAppropriate = true
					break
				}
			}
		}
		if !suggestion.IsAppropriate {
			suggestion.SuggestedWord = scenario.Substitutions[word]
		}
		suggestions = append(suggestions, suggestion)
	}

	return UsageAnalysis{Suggestions: suggestions, HasContent: true}
}
