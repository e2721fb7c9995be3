package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/decklens/internal/royale"
)

// roastState holds the roast panel for the active player.
type roastState struct {
	tag       string
	intensity royale.Intensity
	result    *royale.Roast
	loading   bool
	err       string
}

func nextIntensity(current royale.Intensity) royale.Intensity {
	for i, level := range royale.Intensities {
		if level == current {
			return royale.Intensities[(i+1)%len(royale.Intensities)]
		}
	}
	return royale.Intensities[0]
}

func (m Model) handleRoastKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CycleIntensity):
		m.roast.intensity = nextIntensity(m.roast.intensity)
		m.prefs.RoastIntensity = string(m.roast.intensity)
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Refresh):
		if m.roast.loading || m.roast.tag == "" || m.client == nil {
			return m, nil
		}
		m.roast.loading = true
		m.roast.err = ""
		return m, tea.Batch(roastCmd(m.ctx, m.client, m.roast.tag, m.roast.intensity), m.spinner.Tick)
	}
	return m, nil
}

func (m *Model) handleRoast(msg roastMsg) {
	if msg.tag != m.roast.tag {
		return
	}
	m.roast.loading = false
	if msg.err != nil {
		m.roast.err = errorText(msg.err, "Failed to generate roast")
		return
	}
	m.roast.result = msg.roast
}

func (m Model) renderRoastView() string {
	styles := m.theme.Styles()

	if m.roast.tag == "" {
		return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("Search for a player first (s), then come back to roast them."))
	}

	chips := make([]string, 0, len(royale.Intensities))
	for _, level := range royale.Intensities {
		label := " " + titleCase(string(level)) + " "
		if level == m.roast.intensity {
			chips = append(chips, styles.Selected.Bold(true).Render(label))
		} else {
			chips = append(chips, styles.MutedText.Render(label))
		}
	}

	lines := []string{
		m.sectionTitle("Roast " + royale.DisplayTag(m.roast.tag)),
		styles.MutedText.Render("Intensity ") + strings.Join(chips, " "),
		"",
	}

	wrap := lipgloss.NewStyle().Width(maxInt(m.contentWidth()-4, 20))
	switch {
	case m.roast.loading:
		lines = append(lines, m.spinner.View()+" "+styles.InfoText.Render("Sharpening insults..."))
	case m.roast.err != "":
		lines = append(lines, styles.DangerText.Render(m.roast.err))
	case m.roast.result != nil:
		lines = append(lines, wrap.Render(styles.Text.Render(m.roast.result.Roast)))
	default:
		lines = append(lines, styles.FaintText.Render("enter to generate a roast"))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}
