package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/decklens/internal/viewmodel"
)

// tileWidth is the inner width of a card tile.
const tileWidth = 14

// renderCardGrid lays tiles out in as many columns as fit width.
func (m Model) renderCardGrid(cards []viewmodel.CardView, width int) string {
	if len(cards) == 0 {
		return ""
	}
	perRow := maxInt(width/(tileWidth+3), 1)

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		tiles := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			tiles = append(tiles, m.renderCardTile(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCardTile draws a card as a bordered tile. Terminals have no image
// surface, so the tile always shows the initial-glyph placeholder.
func (m Model) renderCardTile(c viewmodel.CardView) string {
	styles := m.theme.Styles()
	rarity := viewmodel.RarityColor(c.Rarity)
	center := lipgloss.NewStyle().Width(tileWidth).Align(lipgloss.Center)

	elixir := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.BucketColor(viewmodel.ElixirBucket(c.Elixir)))).
		Bold(true).
		Render(fmt.Sprintf("◆%d", c.Elixir))
	glyph := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rarity)).
		Bold(true).
		Render(strings.ToUpper(c.Initial()))

	level := ""
	if c.Level > 0 {
		level = fmt.Sprintf("Lv %d", c.Level)
	}
	if c.StarLevel > 0 {
		level += " " + strings.Repeat("★", c.StarLevel)
	}
	if n, ok := c.Count.Get(); ok {
		level += fmt.Sprintf(" ×%d", n)
	}

	lines := []string{
		center.Render(elixir + "  " + glyph),
		center.Render(styles.Text.Bold(true).Render(truncate(c.Name, tileWidth))),
		center.Render(lipgloss.NewStyle().Foreground(lipgloss.Color(rarity)).Render(titleCase(string(c.Rarity)))),
		center.Render(styles.MutedText.Render(strings.TrimSpace(level))),
	}
	if icons := capabilityIcons(c); icons != "" {
		lines = append(lines, center.Render(styles.InfoText.Render(icons)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(rarity)).
		Margin(0, 1, 0, 0).
		Render(strings.Join(lines, "\n"))
}

// capabilityIcons marks what an analysed card does in the deck.
func capabilityIcons(c viewmodel.CardView) string {
	var icons []string
	if c.WinCondition {
		icons = append(icons, "♛")
	}
	if c.AirTargeting {
		icons = append(icons, "⇡")
	}
	if c.SplashDamage {
		icons = append(icons, "✺")
	}
	if c.Tank {
		icons = append(icons, "⛨")
	}
	if c.Spell {
		icons = append(icons, "✧")
	}
	return strings.Join(icons, " ")
}
