package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/decklens/internal/royale"
	"github.com/five82/decklens/internal/viewmodel"
)

// Filter cycles for the card catalog. The empty value means all.
var (
	typeFilters   = []royale.CardType{"", royale.CardTypeTroop, royale.CardTypeSpell, royale.CardTypeBuilding}
	rarityFilters = []royale.Rarity{"", royale.RarityCommon, royale.RarityRare, royale.RarityEpic, royale.RarityLegendary, royale.RarityChampion}
)

const mostUsedLimit = 10

// cardsState holds the card catalog view.
type cardsState struct {
	typeIdx   int
	rarityIdx int

	list  *royale.CardList
	stats *royale.CardStatistics

	loading bool
	loaded  bool
	syncing bool
	err     string

	viewport viewport.Model
}

func newCardsState() cardsState {
	return cardsState{viewport: viewport.New(0, 0)}
}

func (c cardsState) filter() royale.CardFilter {
	return royale.CardFilter{Type: typeFilters[c.typeIdx], Rarity: rarityFilters[c.rarityIdx]}
}

func filterLabel(value string) string {
	if value == "" {
		return "All"
	}
	return titleCase(value)
}

func (m Model) loadCards() (tea.Model, tea.Cmd) {
	if m.client == nil {
		m.cards.err = "No backend configured"
		return m, nil
	}
	m.cards.loading = true
	m.cards.err = ""
	return m, tea.Batch(loadCardsCmd(m.ctx, m.client, m.cards.filter()), m.spinner.Tick)
}

func (m *Model) handleCardsLoaded(msg cardsLoadedMsg) {
	// Responses for a filter the user has already cycled past are dropped.
	if msg.filter != m.cards.filter() {
		return
	}
	m.cards.loading = false
	m.cards.loaded = true
	if msg.err != nil {
		m.cards.err = errorText(msg.err, "Failed to load cards")
		m.cards.list = nil
		return
	}
	m.cards.err = ""
	m.cards.list = msg.list
	if msg.statsErr == nil {
		m.cards.stats = msg.stats
	} else {
		m.logger.Debug().Err(msg.statsErr).Msg("card statistics unavailable")
	}
	m.refreshCards()
}

func (m Model) handleCardsSynced(msg cardsSyncedMsg) (tea.Model, tea.Cmd) {
	m.cards.syncing = false
	if msg.err != nil {
		m.setFlash("Card sync failed: "+errorText(msg.err, "request failed"), true)
		return m, nil
	}
	r := msg.result
	if r == nil {
		r = &royale.SyncResult{}
	}
	m.setFlash(fmt.Sprintf("Synced %d new cards, %d updated, %d total", r.Synced, r.Updated, r.Total), false)
	return m.loadCards()
}

func (m Model) handleCardsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.cards.loading && key.Matches(msg, m.keys.CycleType, m.keys.CycleRarity, m.keys.Refresh):
		return m, nil

	case key.Matches(msg, m.keys.CycleType):
		m.cards.typeIdx = (m.cards.typeIdx + 1) % len(typeFilters)
		return m.loadCards()

	case key.Matches(msg, m.keys.CycleRarity):
		m.cards.rarityIdx = (m.cards.rarityIdx + 1) % len(rarityFilters)
		return m.loadCards()

	case key.Matches(msg, m.keys.Refresh):
		return m.loadCards()

	case key.Matches(msg, m.keys.SyncCards):
		if m.cards.syncing || m.client == nil {
			return m, nil
		}
		m.cards.syncing = true
		m.setFlash("Syncing card catalog...", false)
		return m, syncCardsCmd(m.ctx, m.client)

	case key.Matches(msg, m.keys.Top):
		m.cards.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.cards.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.cards.viewport, cmd = m.cards.viewport.Update(msg)
	return m, cmd
}

func (m *Model) refreshCards() {
	if !m.cards.loaded || m.cards.list == nil {
		return
	}
	m.cards.viewport.SetContent(m.renderCardsContent())
}

func (m Model) renderCardsView() string {
	styles := m.theme.Styles()
	f := m.cards.filter()

	bar := styles.MutedText.Render("Type ") + styles.AccentText.Render(filterLabel(string(f.Type))) + "   " +
		styles.MutedText.Render("Rarity ") + styles.AccentText.Render(filterLabel(string(f.Rarity)))
	if m.cards.list != nil {
		bar += "   " + styles.FaintText.Render(fmt.Sprintf("%d cards", m.cards.list.Total))
	}
	bar = lipgloss.NewStyle().Padding(0, 2).Render(bar)

	var body string
	switch {
	case m.cards.loading:
		body = lipgloss.NewStyle().Padding(1, 2).Render(m.spinner.View() + " " + styles.InfoText.Render("Loading cards..."))
	case m.cards.err != "":
		body = lipgloss.NewStyle().Padding(1, 2).Render(styles.DangerText.Render(m.cards.err))
	case m.cards.list == nil:
		body = ""
	default:
		body = m.cards.viewport.View()
	}
	return bar + "\n\n" + body
}

func (m Model) renderCardsContent() string {
	styles := m.theme.Styles()
	cards := viewmodel.FromCatalog(m.cards.list.Cards)

	var lines []string
	if len(cards) == 0 {
		lines = append(lines, styles.MutedText.Render("No cards match this filter"))
	}
	for _, c := range cards {
		lines = append(lines, m.renderCardRow(c))
	}

	if m.cards.stats != nil && len(m.cards.stats.MostUsed) > 0 {
		used := viewmodel.FromCatalog(m.cards.stats.MostUsed)
		if len(used) > mostUsedLimit {
			used = used[:mostUsedLimit]
		}
		lines = append(lines, "", m.sectionTitle("Most Used Cards"))
		for i, c := range used {
			count := 0
			if n, ok := c.Count.Get(); ok {
				count = n
			}
			lines = append(lines, fmt.Sprintf("%s %s %s",
				styles.FaintText.Render(fmt.Sprintf("%2d.", i+1)),
				styles.Text.Render(padRight(truncate(c.Name, 24), 24)),
				styles.MutedText.Render(fmt.Sprintf("%d decks", count))))
		}
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderCardRow(c viewmodel.CardView) string {
	styles := m.theme.Styles()
	elixir := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.BucketColor(viewmodel.ElixirBucket(c.Elixir)))).
		Bold(true).
		Render(fmt.Sprintf("◆%-2d", c.Elixir))
	rarity := lipgloss.NewStyle().
		Foreground(lipgloss.Color(viewmodel.RarityColor(c.Rarity))).
		Render(padRight(titleCase(string(c.Rarity)), 10))

	return strings.Join([]string{
		elixir,
		styles.Text.Render(padRight(truncate(c.Name, 24), 24)),
		rarity,
		styles.MutedText.Render(padRight(titleCase(string(c.Type)), 9)),
		styles.InfoText.Render(capabilityIcons(c)),
	}, " ")
}
