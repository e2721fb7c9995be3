package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/decklens/internal/royale"
	"github.com/five82/decklens/internal/state"
)

// renderHeader renders the status bar: logo, view, player, load phase and
// session indicator.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("decklens", styles.Logo),
		bg.Render(m.currentView.String(), styles.AccentText),
	}

	snap := m.store.Snapshot()
	if snap.Tag != "" {
		parts = append(parts, bg.Render(royale.DisplayTag(snap.Tag), styles.Text))
		phase := snap.Phase.String()
		if snap.Degraded() {
			phase = "degraded"
		}
		parts = append(parts, styles.PhaseStyle(phase).Render(phase))
		if !snap.LastUpdated.IsZero() && snap.Phase != state.PhaseLoading {
			parts = append(parts, bg.Render(snap.LastUpdated.Format("15:04:05"), styles.MutedText))
		}
	}

	if m.busy() {
		parts = append(parts, bg.Render(m.spinner.View(), styles.InfoText))
	}

	parts = append(parts, m.authIndicator(styles, bg))

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// authIndicator shows who is logged in.
func (m Model) authIndicator(styles Styles, bg BgStyle) string {
	if m.client == nil || !m.client.IsAuthenticated() {
		return bg.Render("○ guest", styles.MutedText)
	}
	name := "logged in"
	if m.user != nil && m.user.Username != "" {
		name = m.user.Username
	}
	return bg.Render("● "+name, styles.SuccessText)
}

// renderFlash renders the result line of the last action, if any.
func (m Model) renderFlash() string {
	if m.flash.text == "" {
		return ""
	}
	styles := m.theme.Styles()
	style := styles.InfoText
	if m.flash.isErr {
		style = styles.DangerText
	}
	return lipgloss.NewStyle().Padding(0, 1).Width(m.width).Render(style.Render(truncate(m.flash.text, m.width-2)))
}

// renderCommandBar renders the command hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewDashboard:
		commands = []cmd{
			{"1/2/3", "Tabs"},
			{"j/k", "Scroll"},
			{"x", "Export"},
			{"R", "Reload"},
			{"r", "Roast"},
			{"esc", "Search"},
			{"?", "More"},
		}
	case ViewCards:
		f := m.cards.filter()
		commands = []cmd{
			{"f", filterLabel(string(f.Type))},
			{"m", filterLabel(string(f.Rarity))},
			{"S", "Sync"},
			{"j/k", "Scroll"},
			{"esc", "Search"},
			{"?", "More"},
		}
	case ViewPlayers:
		if m.players.input.Focused() {
			commands = []cmd{{"enter", "Search"}, {"esc", "Clear"}}
		} else {
			commands = []cmd{
				{"/", "Search"},
				{"j/k", "Navigate"},
				{"enter", "Open"},
				{"n/N", "Page"},
				{"esc", "Search"},
				{"?", "More"},
			}
		}
	case ViewRoast:
		commands = []cmd{
			{"i", titleCase(string(m.roast.intensity))},
			{"enter", "Roast"},
			{"esc", "Search"},
			{"?", "More"},
		}
	case ViewLogs:
		commands = []cmd{
			{"R", "Reload"},
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"esc", "Search"},
			{"?", "More"},
		}
	default: // ViewSearch
		commands = []cmd{
			{"enter", "Look up"},
			{"f1/f2", "Examples"},
			{"tab", "Views"},
			{"ctrl+c", "Quit"},
		}
	}

	if m.client != nil && m.client.IsAuthenticated() {
		commands = append(commands, cmd{"O", "Logout"})
	} else if m.currentView != ViewSearch {
		commands = append(commands, cmd{"L", "Login"})
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
