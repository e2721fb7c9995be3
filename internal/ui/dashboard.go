package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/decklens/internal/dashboard"
	"github.com/five82/decklens/internal/royale"
	"github.com/five82/decklens/internal/state"
	"github.com/five82/decklens/internal/viewmodel"
)

// dashState holds the dashboard view state. The data itself lives in the
// state store.
type dashState struct {
	tag      string
	tab      int
	viewport viewport.Model
}

func newDashState() dashState {
	return dashState{viewport: viewport.New(0, 0)}
}

// openDashboard routes to the dashboard for tag and starts loading it.
func (m Model) openDashboard(tag string) (tea.Model, tea.Cmd) {
	tag = royale.NormalizeTag(tag)
	if tag == "" {
		m.currentView = ViewSearch
		m.search.err = emptyTagMessage
		cmd := m.search.input.Focus()
		return m, cmd
	}

	m.currentView = ViewDashboard
	m.search.input.Blur()
	m.dash.tag = tag
	m.dash.tab = 0
	m.dash.viewport.GotoTop()
	if m.roast.tag != tag {
		m.roast = roastState{tag: tag, intensity: m.roast.intensity}
	}
	if m.prefs.LastTag != tag {
		m.prefs.LastTag = tag
		m.savePrefs()
	}

	seq := m.store.Begin(tag)
	return m, tea.Batch(loadDashboardCmd(m.ctx, m.loader, seq, tag), m.spinner.Tick)
}

func (m *Model) handleDashboardLoaded(msg dashboardLoadedMsg) {
	if !m.store.Finish(msg.seq, msg.result) {
		m.logger.Debug().Uint64("seq", msg.seq).Str("tag", msg.result.Tag).Msg("dropped superseded dashboard result")
		return
	}
	m.refreshDashboard()
}

// refreshDashboard re-renders the dashboard content into its viewport.
func (m *Model) refreshDashboard() {
	snap := m.store.Snapshot()
	if snap.Phase != state.PhaseReady {
		return
	}
	m.dash.viewport.SetContent(m.renderDashboardContent(snap))
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		if m.dash.tag == "" || m.store.Snapshot().Phase == state.PhaseLoading {
			return m, nil
		}
		return m.openDashboard(m.dash.tag)

	case key.Matches(msg, m.keys.Strengths):
		m.selectTab(int(viewmodel.TabStrengths))
		return m, nil

	case key.Matches(msg, m.keys.Weaknesses):
		m.selectTab(int(viewmodel.TabWeaknesses))
		return m, nil

	case key.Matches(msg, m.keys.Suggestions):
		m.selectTab(int(viewmodel.TabSuggestions))
		return m, nil

	case key.Matches(msg, m.keys.Export):
		snap := m.store.Snapshot()
		data, ok := snap.View.Charts.Get()
		if snap.Phase != state.PhaseReady || !ok {
			m.setFlash("No chart data for this player", true)
			return m, nil
		}
		return m, exportChartsCmd(m.chartDir, snap.Tag, data)

	case key.Matches(msg, m.keys.Top):
		m.dash.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.dash.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.dash.viewport, cmd = m.dash.viewport.Update(msg)
	return m, cmd
}

func (m *Model) selectTab(tab int) {
	m.dash.tab = tab
	m.refreshDashboard()
}

func (m Model) renderDashboardView() string {
	styles := m.theme.Styles()
	snap := m.store.Snapshot()

	switch snap.Phase {
	case state.PhaseIdle:
		return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No player selected. Press s to search for a player tag."))
	case state.PhaseLoading:
		return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" "+styles.InfoText.Render("Loading dashboard for "+royale.DisplayTag(snap.Tag)+"..."))
	case state.PhaseFailed:
		return m.renderDashboardError(snap)
	}
	return m.dash.viewport.View()
}

// renderDashboardError shows why the load failed, including the secondary
// lookup failure when both requests failed.
func (m Model) renderDashboardError(snap state.Snapshot) string {
	styles := m.theme.Styles()

	lines := []string{
		styles.DangerText.Render("Could not load " + royale.DisplayTag(snap.Tag)),
		"",
		styles.Text.Render(errorText(snap.Err, "Failed to load player data")),
	}
	var loadErr *dashboard.LoadError
	if errors.As(snap.Err, &loadErr) && loadErr.Lookup != nil {
		lines = append(lines, styles.MutedText.Render("Player lookup: "+errorText(loadErr.Lookup, "request failed")))
	}
	lines = append(lines, "",
		styles.AccentText.Render("esc")+styles.MutedText.Render(" Back to search")+"   "+
			styles.AccentText.Render("R")+styles.MutedText.Render(" Retry"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}

// contentWidth is the usable width inside the dashboard padding.
func (m Model) contentWidth() int {
	return maxInt(m.width-4, 20)
}

// renderDashboardContent renders every resolved section of the dashboard.
func (m Model) renderDashboardContent(snap state.Snapshot) string {
	styles := m.theme.Styles()
	view := snap.View
	width := m.contentWidth()

	var sections []string
	sections = append(sections, styles.AccentText.Bold(true).Render(view.Title))

	if summary, ok := view.Summary.Get(); ok {
		sections = append(sections, m.renderSummary(summary))
	}

	sections = append(sections, m.renderDeckSection(view.Deck, width))

	if support, ok := view.Support.Get(); ok {
		sections = append(sections, m.sectionTitle("Tower Troop")+"\n"+m.renderCardGrid(support, width))
	}
	if fav, ok := view.Favourite.Get(); ok {
		sections = append(sections, m.sectionTitle("Favourite Card")+"\n"+m.renderCardTile(fav))
	}
	if stats, ok := view.Stats.Get(); ok {
		sections = append(sections, m.renderCardStats(stats))
	}

	if av, ok := view.Analysis.Get(); ok {
		sections = append(sections, m.renderAnalysis(av, width))
	} else {
		lines := []string{m.sectionTitle("Deck Analysis"), styles.MutedText.Render(viewmodel.NoAnalysisMessage)}
		if snap.Degraded() {
			lines = append(lines, styles.FaintText.Render("Analysis request failed: "+errorText(snap.AnalysisErr, "unknown error")))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if data, ok := view.Charts.Get(); ok {
		sections = append(sections, m.renderCharts(data, width))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n\n"))
}

func (m Model) sectionTitle(title string) string {
	return m.theme.Styles().Text.Bold(true).Render(title)
}

func (m Model) renderSummary(s viewmodel.Summary) string {
	styles := m.theme.Styles()
	stat := func(label string, value string) string {
		return styles.MutedText.Render(label+" ") + styles.Text.Render(value)
	}

	first := []string{
		styles.AccentText.Render(royale.DisplayTag(s.Tag)),
		stat("Trophies", fmt.Sprintf("%d", s.Trophies)),
		stat("Best", fmt.Sprintf("%d", s.BestTrophies)),
		stat("Level", fmt.Sprintf("%d", s.ExpLevel)),
	}
	if s.Arena != "" {
		first = append(first, stat("Arena", s.Arena))
	}
	if clan, ok := s.Clan.Get(); ok {
		first = append(first, stat("Clan", clan))
	}

	second := []string{
		stat("Wins", fmt.Sprintf("%d", s.Wins)),
		stat("Losses", fmt.Sprintf("%d", s.Losses)),
	}
	if rate, ok := s.WinRate.Get(); ok {
		second = append(second, stat("Win rate", fmt.Sprintf("%.1f%%", rate)))
	}
	second = append(second,
		stat("Three-crown wins", fmt.Sprintf("%d", s.ThreeCrownWins)),
		stat("Battles", fmt.Sprintf("%d", s.BattleCount)),
	)

	return strings.Join(first, "   ") + "\n" + strings.Join(second, "   ")
}

func (m Model) renderDeckSection(deck viewmodel.DeckSection, width int) string {
	styles := m.theme.Styles()

	title := m.sectionTitle(deck.Title)
	if deck.Kind == viewmodel.DeckCurrent {
		avg := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.BucketColor(deck.Bucket))).
			Bold(true).
			Render(fmt.Sprintf("%.1f", deck.AvgElixir))
		title += "   " + styles.MutedText.Render("Avg Elixir ") + avg
	}

	lines := []string{title}
	if deck.Notice != "" {
		lines = append(lines, styles.WarningText.Render(deck.Notice))
	}
	if len(deck.Cards) > 0 {
		lines = append(lines, m.renderCardGrid(viewmodel.SortByPosition(deck.Cards), width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderCardStats(stats viewmodel.CardStats) string {
	styles := m.theme.Styles()
	var parts []string
	add := func(label string, v viewmodel.Optional[int]) {
		if n, ok := v.Get(); ok {
			parts = append(parts, styles.MutedText.Render(label+" ")+styles.Text.Render(fmt.Sprintf("%d", n)))
		}
	}
	add("Challenge cards won", stats.ChallengeCardsWon)
	add("Tournament cards won", stats.TournamentCardsWon)
	add("Clan cards collected", stats.ClanCardsCollected)
	return m.sectionTitle("Card Statistics") + "\n" + strings.Join(parts, "   ")
}
