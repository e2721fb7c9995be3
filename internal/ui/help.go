package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

// helpTitles names the groups of keyMap.FullHelp, in order.
var helpTitles = []string{"Views", "Navigation", "", "Search", "Dashboard", "Cards", "Players", "Roast", "General"}

// helpSections builds the overlay content from the key bindings. Groups
// without a title continue the previous section.
func (k keyMap) helpSections() []helpSection {
	var sections []helpSection
	for i, group := range k.FullHelp() {
		title := ""
		if i < len(helpTitles) {
			title = helpTitles[i]
		}
		if title == "" && len(sections) > 0 {
			sections[len(sections)-1].items = append(sections[len(sections)-1].items, helpItems(group)...)
			continue
		}
		sections = append(sections, helpSection{title: title, items: helpItems(group)})
	}
	return sections
}

func helpItems(bindings []key.Binding) []helpItem {
	items := make([]helpItem, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		items = append(items, helpItem{key: h.Key, desc: h.Desc})
	}
	return items
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	sections := m.keys.helpSections()

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)

	// Two columns keep the overlay inside short terminals.
	var columns [2]strings.Builder
	for i, section := range sections {
		col := &columns[i%2]
		col.WriteString(styles.AccentText.Bold(true).Render(section.title))
		col.WriteString("\n")
		for _, item := range section.items {
			col.WriteString(keyStyle.Render(item.key))
			col.WriteString(styles.Text.Render(item.desc))
			col.WriteString("\n")
		}
		col.WriteString("\n")
	}
	colStyle := lipgloss.NewStyle().Width(38)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		colStyle.Render(columns[0].String()),
		colStyle.Render(columns[1].String()),
	))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(84)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
