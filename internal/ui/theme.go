package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/decklens/internal/viewmodel"
)

// Theme defines the colours of the UI.
type Theme struct {
	Name string

	Background string // Outermost background, used for modal whitespace
	Surface    string // Header and command bar
	Border     string

	SelectionBg   string
	SelectionText string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// PhaseColors colour the dashboard load badge, keyed by phase name.
	PhaseColors map[string]string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	phaseColors map[string]string
	background  string
	muted       string
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),
		InfoText:    fg(t.Info),

		Header: fg(t.Text).Background(lipgloss.Color(t.Surface)).Padding(0, 1),
		Logo:   fg(t.Warning).Bold(true),
		Selected: fg(t.SelectionText).
			Background(lipgloss.Color(t.SelectionBg)),

		phaseColors: t.PhaseColors,
		background:  t.Background,
		muted:       t.Muted,
	}
}

// PhaseStyle returns the badge style for a dashboard phase name.
func (s Styles) PhaseStyle(phase string) lipgloss.Style {
	color, ok := s.phaseColors[phase]
	if !ok {
		color = s.muted
	}
	return s.Badge(color).Bold(false)
}

// Badge returns a filled badge style in color, used for rarity and severity
// markers whose colours do not change with the theme.
func (s Styles) Badge(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1)
}

// WithBackground returns a copy of Styles with the text styles painted on
// bgColor, for text placed on the header and command bar.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	for _, st := range []*lipgloss.Style{
		&out.Text, &out.MutedText, &out.FaintText, &out.AccentText,
		&out.SuccessText, &out.WarningText, &out.DangerText, &out.InfoText,
		&out.Logo, &out.Selected,
	} {
		*st = st.Background(bg)
	}
	return out
}

// BucketColor returns the theme colour for an elixir bucket.
func (t Theme) BucketColor(b viewmodel.Bucket) string {
	switch b {
	case viewmodel.BucketLow:
		return t.Success
	case viewmodel.BucketMedium:
		return t.Warning
	default:
		return t.Danger
	}
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Arena"}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Arena":    arenaTheme(),
}

// GetTheme returns a theme by name, or Nightfox for unknown names.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[themeOrder[0]]
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func phases(idle, loading, ready, degraded, failed string) map[string]string {
	return map[string]string{
		"idle":     idle,
		"loading":  loading,
		"ready":    ready,
		"degraded": degraded,
		"failed":   failed,
	}
}

func nightfoxTheme() Theme {
	// https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:          "Nightfox",
		Background:    "#131a24",
		Surface:       "#192330",
		Border:        "#39506d",
		SelectionBg:   "#2b3b51",
		SelectionText: "#cdcecf",
		Text:          "#cdcecf",
		Muted:         "#738091",
		Faint:         "#71839b",
		Accent:        "#719cd6",
		Success:       "#81b29a",
		Warning:       "#dbc074",
		Danger:        "#c94f6d",
		Info:          "#63cdcf",
		PhaseColors:   phases("#738091", "#63cdcf", "#81b29a", "#f4a261", "#c94f6d"),
	}
}

func kanagawaTheme() Theme {
	// https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:          "Kanagawa",
		Background:    "#16161D",
		Surface:       "#1F1F28",
		Border:        "#54546D",
		SelectionBg:   "#2D4F67",
		SelectionText: "#DCD7BA",
		Text:          "#DCD7BA",
		Muted:         "#C8C093",
		Faint:         "#727169",
		Accent:        "#7E9CD8",
		Success:       "#98BB6C",
		Warning:       "#E6C384",
		Danger:        "#E46876",
		Info:          "#7FB4CA",
		PhaseColors:   phases("#727169", "#7FB4CA", "#98BB6C", "#E6C384", "#E46876"),
	}
}

// arenaTheme uses the blue and gold of the game's arena banners.
func arenaTheme() Theme {
	return Theme{
		Name:          "Arena",
		Background:    "#0b1630",
		Surface:       "#12244a",
		Border:        "#2c4a86",
		SelectionBg:   "#f5b800",
		SelectionText: "#0b1630",
		Text:          "#eef2ff",
		Muted:         "#9fb3d9",
		Faint:         "#6b80ab",
		Accent:        "#4fa3ff",
		Success:       "#4ade80",
		Warning:       "#f5b800",
		Danger:        "#ff4d5e",
		Info:          "#a855f7",
		PhaseColors:   phases("#6b80ab", "#4fa3ff", "#4ade80", "#f5b800", "#ff4d5e"),
	}
}
