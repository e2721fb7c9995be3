package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding

	// View switching
	ViewSearch    key.Binding
	ViewDashboard key.Binding
	ViewCards     key.Binding
	ViewPlayers   key.Binding
	ViewRoast     key.Binding
	ViewLogs      key.Binding

	// Session
	Login  key.Binding
	Logout key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Search
	ExampleOne key.Binding
	ExampleTwo key.Binding

	// Dashboard
	Refresh     key.Binding
	Strengths   key.Binding
	Weaknesses  key.Binding
	Suggestions key.Binding
	Export      key.Binding

	// Cards
	CycleType   key.Binding
	CycleRarity key.Binding
	SyncCards   key.Binding

	// Players
	FindPlayer key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding

	// Roast
	CycleIntensity key.Binding

	// Forms
	Confirm      key.Binding
	NextField    key.Binding
	ToggleSignup key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Cycle views"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Cycle views (reverse)"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to search"),
		),

		// View switching
		ViewSearch: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Search"),
		),
		ViewDashboard: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Dashboard"),
		),
		ViewCards: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Cards"),
		),
		ViewPlayers: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Players"),
		),
		ViewRoast: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Roast"),
		),
		ViewLogs: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Logs"),
		),

		// Session
		Login: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Log in / register"),
		),
		Logout: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "Log out"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		// Search
		ExampleOne: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "Example "+exampleTags[0]),
		),
		ExampleTwo: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "Example "+exampleTags[1]),
		),

		// Dashboard
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Reload"),
		),
		Strengths: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Strengths"),
		),
		Weaknesses: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Weaknesses"),
		),
		Suggestions: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Suggestions"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Export charts"),
		),

		// Cards
		CycleType: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle type filter"),
		),
		CycleRarity: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Cycle rarity filter"),
		),
		SyncCards: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "Sync catalog"),
		),

		// Players
		FindPlayer: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search players"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "Previous page"),
		),

		// Roast
		CycleIntensity: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Cycle intensity"),
		),

		// Forms
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		ToggleSignup: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "Switch login/register"),
		),
	}
}

// FullHelp returns the key bindings shown in the help overlay, grouped.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Tab, k.ViewSearch, k.ViewDashboard, k.ViewCards, k.ViewPlayers, k.ViewRoast, k.ViewLogs, k.Escape},
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.HalfPageDown, k.HalfPageUp},
		// Search
		{k.ExampleOne, k.ExampleTwo, k.Confirm},
		// Dashboard
		{k.Strengths, k.Weaknesses, k.Suggestions, k.Refresh, k.Export},
		// Cards
		{k.CycleType, k.CycleRarity, k.SyncCards},
		// Players
		{k.FindPlayer, k.NextPage, k.PrevPage},
		// Roast
		{k.CycleIntensity},
		// General
		{k.Login, k.Logout, k.CycleTheme, k.Help, k.Quit},
	}
}
