package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/decklens/internal/royale"
)

// exampleTags are offered on the search screen.
var exampleTags = []string{"#2PP", "#8YC9VY8C"}

const emptyTagMessage = "Please enter a player tag"

// searchState holds the tag entry form.
type searchState struct {
	input textinput.Model
	busy  bool
	err   string
}

func newSearchState(lastTag string) searchState {
	in := textinput.New()
	in.Prompt = "Player tag ❯ "
	in.Placeholder = exampleTags[0]
	in.CharLimit = 20
	in.Width = 24
	if tag := royale.DisplayTag(lastTag); tag != "" {
		in.SetValue(tag)
	}
	in.Focus()
	return searchState{input: in}
}

// handleSearchKey handles keys on the search view. It reports false for keys
// the global handler should see.
func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		model, cmd := m.submitSearch()
		return model, cmd, true

	case key.Matches(msg, m.keys.ExampleOne):
		m.fillExample(exampleTags[0])
		return m, nil, true

	case key.Matches(msg, m.keys.ExampleTwo):
		m.fillExample(exampleTags[1])
		return m, nil, true

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		return m, nil, false

	case key.Matches(msg, m.keys.Escape):
		m.search.input.Reset()
		m.search.err = ""
		return m, nil, true
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return m, cmd, true
}

func (m *Model) fillExample(tag string) {
	m.search.input.SetValue(tag)
	m.search.input.CursorEnd()
	m.search.err = ""
}

// submitSearch validates the entered tag and starts the player lookup. Enter
// is ignored while a lookup is running.
func (m Model) submitSearch() (Model, tea.Cmd) {
	if m.search.busy {
		return m, nil
	}
	raw := strings.TrimSpace(m.search.input.Value())
	if raw == "" {
		m.search.err = emptyTagMessage
		return m, nil
	}
	if m.client == nil {
		m.search.err = "No backend configured"
		return m, nil
	}
	m.search.busy = true
	m.search.err = ""
	return m, tea.Batch(lookupPlayerCmd(m.ctx, m.client, raw), m.spinner.Tick)
}

func (m Model) handlePlayerLookup(msg playerLookupMsg) (tea.Model, tea.Cmd) {
	m.search.busy = false
	if msg.err != nil {
		m.search.err = errorText(msg.err, "Failed to fetch player data")
		m.logger.Info().Err(msg.err).Str("tag", msg.tag).Msg("player lookup failed")
		return m, nil
	}
	return m.openDashboard(msg.tag)
}

func (m Model) renderSearchView() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Logo.Render("decklens"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Look up a Clash Royale player by tag"))
	b.WriteString("\n\n")
	b.WriteString(m.search.input.View())
	b.WriteString("\n\n")

	switch {
	case m.search.busy:
		b.WriteString(m.spinner.View() + " " + styles.InfoText.Render("Looking up player..."))
	case m.search.err != "":
		b.WriteString(styles.DangerText.Render(m.search.err))
	default:
		b.WriteString(styles.FaintText.Render("enter to open the dashboard"))
	}
	b.WriteString("\n\n")

	examples := make([]string, 0, len(exampleTags))
	for i, tag := range exampleTags {
		examples = append(examples, styles.AccentText.Render("f"+string(rune('1'+i)))+" "+styles.Text.Render(tag))
	}
	b.WriteString(styles.MutedText.Render("Try ") + strings.Join(examples, "   "))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}
