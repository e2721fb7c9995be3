package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/decklens/internal/royale"
)

const playersPageSize = 20

// playersState holds the player directory: a paged list, or search results
// when query is set.
type playersState struct {
	page     *royale.PlayerPage
	offset   int
	query    string
	selected int

	loading bool
	loaded  bool
	err     string

	input textinput.Model
}

func newPlayersState() playersState {
	in := textinput.New()
	in.Prompt = "/"
	in.Placeholder = "name or tag"
	in.CharLimit = 40
	return playersState{input: in}
}

func (m Model) loadPlayers(offset int) (tea.Model, tea.Cmd) {
	if m.client == nil {
		m.players.err = "No backend configured"
		return m, nil
	}
	m.players.loading = true
	m.players.err = ""
	m.players.offset = offset
	return m, tea.Batch(loadPlayersCmd(m.ctx, m.client, m.players.query, offset), m.spinner.Tick)
}

func (m *Model) handlePlayersLoaded(msg playersLoadedMsg) {
	if msg.query != m.players.query || (msg.query == "" && msg.offset != m.players.offset) {
		return
	}
	m.players.loading = false
	m.players.loaded = true
	if msg.err != nil {
		m.players.err = errorText(msg.err, "Failed to load players")
		m.players.page = nil
		return
	}
	m.players.page = msg.page
	m.players.selected = 0
}

func (m Model) handlePlayersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := 0
	if m.players.page != nil {
		count = len(m.players.page.Players)
	}

	switch {
	case key.Matches(msg, m.keys.FindPlayer):
		m.players.input.SetValue(m.players.query)
		m.players.input.CursorEnd()
		cmd := m.players.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.NextPage):
		if m.players.query != "" || m.players.page == nil || m.players.loading {
			return m, nil
		}
		next := m.players.offset + playersPageSize
		if next >= m.players.page.Total {
			return m, nil
		}
		return m.loadPlayers(next)

	case key.Matches(msg, m.keys.PrevPage):
		if m.players.query != "" || m.players.offset == 0 || m.players.loading {
			return m, nil
		}
		return m.loadPlayers(maxInt(m.players.offset-playersPageSize, 0))

	case key.Matches(msg, m.keys.Refresh):
		return m.loadPlayers(m.players.offset)

	case key.Matches(msg, m.keys.Up):
		if m.players.selected > 0 {
			m.players.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.players.selected < count-1 {
			m.players.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.players.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.players.selected = maxInt(count-1, 0)
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if count == 0 {
			return m, nil
		}
		return m.openDashboard(m.players.page.Players[m.players.selected].Tag)
	}
	return m, nil
}

// handlePlayerSearchKey edits the directory query. An empty query returns to
// the paged list.
func (m Model) handlePlayerSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.players.input.Blur()
		m.players.query = strings.TrimSpace(m.players.input.Value())
		return m.loadPlayers(0)

	case key.Matches(msg, m.keys.Escape):
		m.players.input.Blur()
		m.players.input.Reset()
		if m.players.query == "" {
			return m, nil
		}
		m.players.query = ""
		return m.loadPlayers(0)
	}

	var cmd tea.Cmd
	m.players.input, cmd = m.players.input.Update(msg)
	return m, cmd
}

func (m Model) renderPlayersView() string {
	styles := m.theme.Styles()
	pad := lipgloss.NewStyle().Padding(0, 2)

	var head string
	switch {
	case m.players.input.Focused():
		head = m.players.input.View()
	case m.players.query != "":
		head = styles.MutedText.Render("Search ") + styles.AccentText.Render(m.players.query)
	default:
		head = styles.MutedText.Render("All players")
	}
	if p := m.players.page; p != nil && len(p.Players) > 0 {
		first := m.players.offset + 1
		last := m.players.offset + len(p.Players)
		head += "   " + styles.FaintText.Render(fmt.Sprintf("%d-%d of %d", first, last, p.Total))
	}

	var body string
	switch {
	case m.players.loading:
		body = m.spinner.View() + " " + styles.InfoText.Render("Loading players...")
	case m.players.err != "":
		body = styles.DangerText.Render(m.players.err)
	case m.players.page == nil:
		body = ""
	case len(m.players.page.Players) == 0:
		body = styles.MutedText.Render("No players found")
	default:
		body = m.renderPlayerRows()
	}
	return pad.Render(head) + "\n\n" + pad.Render(body)
}

func (m Model) renderPlayerRows() string {
	styles := m.theme.Styles()
	players := m.players.page.Players

	// Keep the selection visible when the page is taller than the body.
	visible := maxInt(m.bodyHeight()-4, 1)
	start := 0
	if m.players.selected >= visible {
		start = m.players.selected - visible + 1
	}
	end := start + visible
	if end > len(players) {
		end = len(players)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		p := players[i]
		row := fmt.Sprintf("%s %s %s %s",
			padRight(truncate(p.Name, 22), 22),
			padRight(royale.DisplayTag(p.Tag), 12),
			padRight(fmt.Sprintf("%d trophies", p.Trophies), 15),
			truncate(p.ClanName, 24))
		if i == m.players.selected {
			lines = append(lines, styles.Selected.Render(row))
		} else {
			lines = append(lines, styles.Text.Render(row))
		}
	}
	return strings.Join(lines, "\n")
}
