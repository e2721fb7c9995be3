package viewmodel

import (
	"fmt"
	"strings"

	"github.com/five82/decklens/internal/royale"
)

// TabKind identifies an analysis tab.
type TabKind int

const (
	TabStrengths TabKind = iota
	TabWeaknesses
	TabSuggestions
)

// Tone says whether suggested cards go in or out of the deck.
type Tone int

const (
	ToneAdd Tone = iota
	ToneRemove
)

// SuggestionSection is one titled card list of a suggestion.
type SuggestionSection struct {
	Title   string
	Prefix  string
	Tone    Tone
	Entries []string
}

// Item is one entry of an analysis tab.
type Item struct {
	Title       string
	Category    string
	Description string
	Severity    Optional[royale.Severity]
	Sections    []SuggestionSection
}

// Tab is one analysis tab with its items or empty-state message.
type Tab struct {
	Kind  TabKind
	Name  string
	Icon  string
	Items []Item
	Empty string
}

// Count is the number of items on the tab.
func (t Tab) Count() int {
	return len(t.Items)
}

// Label is the tab heading with its item count.
func (t Tab) Label() string {
	return fmt.Sprintf("%s (%d)", t.Name, len(t.Items))
}

// SuggestionSections lists the non-empty card lists of s in display order.
func SuggestionSections(s royale.Suggestion) []SuggestionSection {
	var out []SuggestionSection
	if entries := nonBlank(s.ConsiderAdding); len(entries) > 0 {
		out = append(out, SuggestionSection{Title: "Consider Adding", Prefix: "+ ", Tone: ToneAdd, Entries: entries})
	}
	if entries := nonBlank(s.ConsiderRemoving); len(entries) > 0 {
		out = append(out, SuggestionSection{Title: "Consider Removing", Prefix: "- ", Tone: ToneRemove, Entries: entries})
	}
	if r := strings.TrimSpace(s.ConsiderReplacing); r != "" {
		out = append(out, SuggestionSection{Title: "Consider Replacing", Tone: ToneRemove, Entries: []string{r}})
	}
	if entries := nonBlank(s.WithCheaperAlternatives); len(entries) > 0 {
		out = append(out, SuggestionSection{Title: "With Cheaper Alternatives", Tone: ToneAdd, Entries: entries})
	}
	return out
}

func nonBlank(values []string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// Tabs builds the strengths, weaknesses and suggestions tabs in that order.
func Tabs(a royale.DeckAnalysis) []Tab {
	strengths := Tab{
		Kind:  TabStrengths,
		Name:  "Strengths",
		Icon:  "✓",
		Empty: "No significant strengths identified",
	}
	for _, s := range a.Strengths {
		strengths.Items = append(strengths.Items, Item{Title: s.Title, Category: s.Category, Description: s.Description})
	}

	weaknesses := Tab{
		Kind:  TabWeaknesses,
		Name:  "Weaknesses",
		Icon:  "⚠",
		Empty: "No weaknesses identified - excellent deck!",
	}
	for _, w := range a.Weaknesses {
		item := Item{Title: w.Title, Category: w.Category, Description: w.Description}
		if w.Severity != "" {
			item.Severity = Some(w.Severity)
		}
		weaknesses.Items = append(weaknesses.Items, item)
	}

	suggestions := Tab{
		Kind:  TabSuggestions,
		Name:  "Suggestions",
		Icon:  "*",
		Empty: "No suggestions needed - your deck looks great!",
	}
	for _, s := range a.Suggestions {
		suggestions.Items = append(suggestions.Items, Item{
			Title:       s.Type,
			Description: s.Reason,
			Sections:    SuggestionSections(s),
		})
	}

	return []Tab{strengths, weaknesses, suggestions}
}
