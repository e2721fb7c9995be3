package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/decklens/internal/viewmodel"
)

// renderAnalysis renders the rating line, the tab strip and the items of the
// selected tab.
func (m Model) renderAnalysis(av viewmodel.AnalysisView, width int) string {
	styles := m.theme.Styles()

	head := m.sectionTitle("Deck Analysis")
	if av.Rating != "" {
		head += "   " + styles.MutedText.Render("Rating ") + styles.AccentText.Bold(true).Render(av.Rating)
	}
	avg := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.BucketColor(av.Bucket))).
		Bold(true).
		Render(fmt.Sprintf("%.1f", av.AvgElixir))
	head += "   " + styles.MutedText.Render("Avg Elixir ") + avg

	if len(av.Tabs) == 0 {
		return head
	}

	active := m.dash.tab
	if active < 0 || active >= len(av.Tabs) {
		active = 0
	}

	labels := make([]string, 0, len(av.Tabs))
	for i, tab := range av.Tabs {
		label := fmt.Sprintf(" %d %s %s ", i+1, tab.Icon, tab.Label())
		if i == active {
			labels = append(labels, styles.Selected.Bold(true).Render(label))
		} else {
			labels = append(labels, styles.MutedText.Render(label))
		}
	}

	lines := []string{head, strings.Join(labels, " "), ""}
	lines = append(lines, m.renderTabItems(av.Tabs[active], width))
	return strings.Join(lines, "\n")
}

func (m Model) renderTabItems(tab viewmodel.Tab, width int) string {
	styles := m.theme.Styles()
	if tab.Count() == 0 {
		return styles.MutedText.Render(tab.Empty)
	}

	wrap := lipgloss.NewStyle().Width(maxInt(width-2, 10))
	items := make([]string, 0, len(tab.Items))
	for _, item := range tab.Items {
		var lines []string

		title := styles.Text.Bold(true).Render(item.Title)
		if sev, ok := item.Severity.Get(); ok {
			title += " " + styles.Badge(viewmodel.SeverityColor(sev)).Render(strings.ToUpper(string(sev)))
		}
		if item.Category != "" {
			title += " " + styles.FaintText.Render(titleCase(item.Category))
		}
		lines = append(lines, title)

		if item.Description != "" {
			lines = append(lines, wrap.Render(styles.MutedText.Render(item.Description)))
		}
		for _, section := range item.Sections {
			lines = append(lines, m.renderSuggestionSection(section))
		}
		items = append(items, strings.Join(lines, "\n"))
	}
	return strings.Join(items, "\n\n")
}

func (m Model) renderSuggestionSection(section viewmodel.SuggestionSection) string {
	styles := m.theme.Styles()
	tone := styles.SuccessText
	if section.Tone == viewmodel.ToneRemove {
		tone = styles.DangerText
	}

	lines := []string{"  " + styles.AccentText.Render(section.Title+":")}
	for _, entry := range section.Entries {
		lines = append(lines, "    "+tone.Render(section.Prefix+entry))
	}
	return strings.Join(lines, "\n")
}
