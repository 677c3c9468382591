// Package cli renders lookup results and stored words for the terminal.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hanlexi/hanlexi/internal/analysis"
	"github.com/hanlexi/hanlexi/internal/dictionary"
	"github.com/hanlexi/hanlexi/internal/history"
	"github.com/hanlexi/hanlexi/internal/lookup"
	"github.com/hanlexi/hanlexi/internal/notebook"
)

// Renderer writes formatted lookup output to a single writer.
type Renderer struct {
	writer io.Writer
	bold   *color.Color
	italic *color.Color
	green  *color.Color
	yellow *color.Color
	cyan   *color.Color
}

func NewRenderer(writer io.Writer) *Renderer {
	return &Renderer{
		writer: writer,
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		cyan:   color.New(color.FgCyan),
	}
}

// RenderResult writes everything a lookup produced except the word family,
// which arrives later and is rendered separately.
func (r *Renderer) RenderResult(result *lookup.Result) {
	r.renderHeader(result)
	r.renderTranslation(result.Translation)
	r.renderEntries(result.Entries)
	r.renderEtymology(result.Etymology)
	r.renderUsage(result.Usage)
	r.renderRelated(result.Related)
}

func (r *Renderer) renderHeader(result *lookup.Result) {
	_, _ = r.bold.Fprintf(r.writer, "%s", result.Query)
	if phonetic := firstPhonetic(result); phonetic != "" {
		_, _ = fmt.Fprintf(r.writer, "  %s", phonetic)
	}
	if result.IsPhrase {
		_, _ = r.italic.Fprintf(r.writer, "  (phrase)")
	}
	_, _ = fmt.Fprintln(r.writer)
}

func firstPhonetic(result *lookup.Result) string {
	for _, entry := range result.Entries {
		if phonetic := entry.FirstPhonetic(); phonetic != "" {
			return phonetic
		}
	}
	return ""
}

func (r *Renderer) renderTranslation(translation lookup.Translation) {
	if translation.Primary == "" {
		return
	}
	_, _ = r.green.Fprintf(r.writer, "%s\n", translation.Primary)
	if len(translation.Alternatives) > 0 {
		_, _ = fmt.Fprintf(r.writer, "also: %s\n", strings.Join(translation.Alternatives, ", "))
	}
}

// renderEntries prints each part of speech with its first few senses. Three
// senses per meaning keep even dense entries readable.
func (r *Renderer) renderEntries(entries []dictionary.DictionaryEntry) {
	const maxDefinitions = 3
	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			_, _ = fmt.Fprintln(r.writer)
			_, _ = r.cyan.Fprintf(r.writer, "%s\n", meaning.PartOfSpeech)
			for i, definition := range meaning.Definitions {
				if i >= maxDefinitions {
					break
				}
				_, _ = fmt.Fprintf(r.writer, "  %d. %s\n", i+1, definition.Definition)
				if definition.Example != "" {
					_, _ = r.italic.Fprintf(r.writer, "     %s\n", definition.Example)
				}
			}
		}
	}
}

func (r *Renderer) renderEtymology(etymology analysis.EtymologyAnalysis) {
	if !etymology.HasContent {
		return
	}
	_, _ = fmt.Fprintln(r.writer)
	_, _ = r.bold.Fprintln(r.writer, "Etymology")
	for _, component := range etymology.Components {
		_, _ = fmt.Fprintf(r.writer, "  %-10s %-8s %s / %s\n",
			component.Text, component.Kind, component.GlossEN, component.GlossZH)
	}
	if etymology.Origin != "" {
		_, _ = r.italic.Fprintf(r.writer, "  %s\n", etymology.Origin)
	}
}

func (r *Renderer) renderUsage(usage analysis.UsageAnalysis) {
	if !usage.HasContent {
		return
	}
	_, _ = fmt.Fprintln(r.writer)
	_, _ = r.bold.Fprintln(r.writer, "Usage")
	for _, suggestion := range usage.Suggestions {
		scenario := suggestion.Scenario
		if suggestion.IsAppropriate {
			_, _ = r.green.Fprintf(r.writer, "  %s %s (%s): fits\n",
				scenario.Icon, scenario.Label, scenario.LabelZH)
			continue
		}
		line := fmt.Sprintf("  %s %s (%s): avoid", scenario.Icon, scenario.Label, scenario.LabelZH)
		if suggestion.SuggestedWord != "" {
			line += fmt.Sprintf(", prefer %q", suggestion.SuggestedWord)
		}
		_, _ = r.yellow.Fprintln(r.writer, line)
	}
}

func (r *Renderer) renderRelated(related []string) {
	if len(related) == 0 {
		return
	}
	_, _ = fmt.Fprintln(r.writer)
	_, _ = r.bold.Fprintln(r.writer, "Related")
	_, _ = fmt.Fprintf(r.writer, "  %s\n", strings.Join(related, ", "))
}

// RenderWordFamily writes the verified word family, one form per line.
func (r *Renderer) RenderWordFamily(family analysis.WordFamilyResult) {
	if !family.HasContent {
		return
	}
	_, _ = fmt.Fprintln(r.writer)
	_, _ = r.bold.Fprintln(r.writer, "Word family")
	for _, entry := range family.Entries {
		_, _ = fmt.Fprintf(r.writer, "  %s %s\n", entry.Icon, entry.Word)
	}
}

// RenderHistory writes recorded searches, newest first.
func (r *Renderer) RenderHistory(entries []history.Entry) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(r.writer, "No searches recorded.")
		return
	}
	for _, entry := range entries {
		_, _ = fmt.Fprintf(r.writer, "%s  %s\n",
			entry.CreatedAt.Format("2006-01-02 15:04"), entry.Query)
	}
}

// RenderSavedWords writes notebook contents in saved order.
func (r *Renderer) RenderSavedWords(words []notebook.SavedWord) {
	if len(words) == 0 {
		_, _ = fmt.Fprintln(r.writer, "The notebook is empty.")
		return
	}
	for _, word := range words {
		_, _ = r.bold.Fprintf(r.writer, "%s", word.Word)
		if word.Phonetic != "" {
			_, _ = fmt.Fprintf(r.writer, "  %s", word.Phonetic)
		}
		if word.Translation != "" {
			_, _ = r.green.Fprintf(r.writer, "  %s", word.Translation)
		}
		_, _ = fmt.Fprintln(r.writer)
		if word.Definition != "" {
			_, _ = fmt.Fprintf(r.writer, "  %s\n", word.Definition)
		}
	}
}
