package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/decklens/internal/logtail"
)

// logTailLines bounds how much of the log file the view reads.
const logTailLines = 400

// logsState holds the tail of the application's own log file.
type logsState struct {
	entries  []logtail.Entry
	loading  bool
	loaded   bool
	err      string
	viewport viewport.Model
}

func newLogsState() logsState {
	return logsState{viewport: viewport.New(0, 0)}
}

func (m Model) loadLogs() (tea.Model, tea.Cmd) {
	if m.logFile == "" {
		m.logs.loaded = true
		m.logs.err = "Logging is disabled"
		return m, nil
	}
	m.logs.loading = true
	return m, readLogsCmd(m.logFile)
}

func (m *Model) handleLogsLoaded(msg logsLoadedMsg) {
	m.logs.loading = false
	m.logs.loaded = true
	if msg.err != nil {
		m.logs.err = msg.err.Error()
		return
	}
	m.logs.err = ""
	m.logs.entries = msg.entries
	m.refreshLogs()
	m.logs.viewport.GotoBottom()
}

func (m *Model) refreshLogs() {
	if !m.logs.loaded || len(m.logs.entries) == 0 {
		return
	}
	lines := make([]string, 0, len(m.logs.entries))
	for _, e := range m.logs.entries {
		lines = append(lines, m.renderLogEntry(e))
	}
	m.logs.viewport.SetContent(lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(lines, "\n")))
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		return m.loadLogs()

	case key.Matches(msg, m.keys.Top):
		m.logs.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.logs.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.logs.viewport, cmd = m.logs.viewport.Update(msg)
	return m, cmd
}

func (m Model) renderLogsView() string {
	styles := m.theme.Styles()

	head := styles.MutedText.Render("Log ") + styles.AccentText.Render(truncateMiddle(m.logFile, 60))
	if m.logs.loaded && m.logs.err == "" {
		head += "   " + styles.FaintText.Render(fmt.Sprintf("%d entries", len(m.logs.entries)))
	}
	head = lipgloss.NewStyle().Padding(0, 2).Render(head)

	var body string
	switch {
	case m.logs.loading:
		body = lipgloss.NewStyle().Padding(1, 2).Render(styles.InfoText.Render("Reading log..."))
	case m.logs.err != "":
		body = lipgloss.NewStyle().Padding(1, 2).Render(styles.DangerText.Render(m.logs.err))
	case len(m.logs.entries) == 0:
		body = lipgloss.NewStyle().Padding(1, 2).Render(styles.MutedText.Render("No log entries yet"))
	default:
		body = m.logs.viewport.View()
	}
	return head + "\n\n" + body
}

func (m Model) renderLogEntry(e logtail.Entry) string {
	styles := m.theme.Styles()
	if e.Level == "" && e.Message == "" {
		return styles.FaintText.Render(e.Raw)
	}

	stamp := e.Time
	if ts, err := time.Parse(time.RFC3339, e.Time); err == nil {
		stamp = ts.Local().Format("15:04:05")
	}

	level := styles.InfoText
	switch e.Level {
	case "debug", "trace":
		level = styles.FaintText
	case "warn":
		level = styles.WarningText
	case "error", "fatal", "panic":
		level = styles.DangerText
	}

	parts := []string{
		styles.FaintText.Render(stamp),
		level.Render(padRight(strings.ToUpper(e.Level), 5)),
	}
	if e.Component != "" {
		parts = append(parts, styles.AccentText.Render("["+e.Component+"]"))
	}
	parts = append(parts, styles.Text.Render(e.Message))
	for _, f := range e.Fields {
		parts = append(parts, styles.MutedText.Render(f.Key+"="+f.Value))
	}
	if e.Err != "" {
		parts = append(parts, styles.DangerText.Render("error="+e.Err))
	}
	return strings.Join(parts, " ")
}
