package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/decklens/internal/viewmodel"
)

const chartLabelWidth = 16

// renderCharts draws the deck datasets as terminal bar charts.
func (m Model) renderCharts(data viewmodel.ChartData, width int) string {
	styles := m.theme.Styles()

	parts := []string{
		m.sectionTitle("Elixir Cost per Card"),
		m.renderBars(data.Elixir, width, func(c viewmodel.Count) string {
			return m.theme.BucketColor(viewmodel.ElixirBucket(c.Value))
		}),
		"",
		m.sectionTitle("Card Types"),
		m.renderDistribution(data.Types, width),
	}
	if metrics, ok := data.Metrics.Get(); ok {
		parts = append(parts, "",
			m.sectionTitle("Deck Composition"),
			m.renderBars(metrics, width, func(viewmodel.Count) string { return m.theme.Accent }),
		)
	}
	parts = append(parts, "", styles.AccentText.Render("x")+styles.FaintText.Render(" export charts as HTML"))
	return strings.Join(parts, "\n")
}

// renderBars draws one horizontal bar per entry, scaled to the largest value.
func (m Model) renderBars(series []viewmodel.Count, width int, color func(viewmodel.Count) string) string {
	styles := m.theme.Styles()
	if len(series) == 0 {
		return styles.MutedText.Render("No data")
	}

	barWidth := maxInt(width-chartLabelWidth-6, 10)
	peak := viewmodel.Max(series)

	lines := make([]string, 0, len(series))
	for _, c := range series {
		n := 0
		if peak > 0 {
			n = c.Value * barWidth / peak
		}
		if c.Value > 0 && n == 0 {
			n = 1
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(color(c))).Render(strings.Repeat("█", n))
		lines = append(lines,
			styles.MutedText.Render(padRight(truncate(c.Label, chartLabelWidth), chartLabelWidth))+" "+
				bar+" "+styles.Text.Render(fmt.Sprintf("%d", c.Value)))
	}
	return strings.Join(lines, "\n")
}

// renderDistribution draws a single proportional bar with a legend.
func (m Model) renderDistribution(series []viewmodel.Count, width int) string {
	styles := m.theme.Styles()
	total := viewmodel.Sum(series)
	if total == 0 {
		return styles.MutedText.Render("No cards")
	}

	palette := []string{m.theme.Accent, m.theme.Success, m.theme.Warning, m.theme.Info, m.theme.Danger}
	barWidth := maxInt(width-2, 10)

	var bar, legend []string
	used := 0
	for i, c := range series {
		color := lipgloss.Color(palette[i%len(palette)])
		n := c.Value * barWidth / total
		if i == len(series)-1 {
			n = barWidth - used
		}
		used += n
		bar = append(bar, lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", n)))
		legend = append(legend,
			lipgloss.NewStyle().Foreground(color).Render("■")+" "+
				styles.Text.Render(fmt.Sprintf("%s %d (%d%%)", c.Label, c.Value, c.Value*100/total)))
	}
	return strings.Join(bar, "") + "\n" + strings.Join(legend, "   ")
}
