package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Login form fields.
const (
	fieldUsername = iota
	fieldEmail
	fieldPassword
)

// loginState holds the login/register modal.
type loginState struct {
	open     bool
	register bool
	inputs   [3]textinput.Model
	focus    int
	busy     bool
	err      string
}

func newLoginState() loginState {
	var s loginState
	prompts := [3]string{"Username ", "Email    ", "Password "}
	for i := range s.inputs {
		in := textinput.New()
		in.Prompt = prompts[i]
		in.CharLimit = 64
		in.Width = 28
		s.inputs[i] = in
	}
	s.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	s.inputs[fieldPassword].EchoCharacter = '•'
	return s
}

// fields lists the visible inputs in tab order.
func (s loginState) fields() []int {
	if s.register {
		return []int{fieldUsername, fieldEmail, fieldPassword}
	}
	return []int{fieldUsername, fieldPassword}
}

// focusField focuses the visible field at position pos, wrapping around.
func (s *loginState) focusField(pos int) tea.Cmd {
	fields := s.fields()
	n := len(fields)
	pos = ((pos % n) + n) % n
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	s.focus = pos
	return s.inputs[fields[pos]].Focus()
}

func (m Model) openLogin() (tea.Model, tea.Cmd) {
	m.login.open = true
	m.login.err = ""
	m.login.inputs[fieldPassword].Reset()
	m.search.input.Blur()
	cmd := m.login.focusField(0)
	return m, cmd
}

func (m *Model) closeLogin() tea.Cmd {
	m.login.open = false
	m.login.busy = false
	for i := range m.login.inputs {
		m.login.inputs[i].Blur()
	}
	m.login.inputs[fieldPassword].Reset()
	if m.currentView == ViewSearch {
		return m.search.input.Focus()
	}
	return nil
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		cmd := m.closeLogin()
		return m, cmd

	case key.Matches(msg, m.keys.ToggleSignup):
		m.login.register = !m.login.register
		m.login.err = ""
		cmd := m.login.focusField(0)
		return m, cmd

	case key.Matches(msg, m.keys.ShiftTab), msg.Type == tea.KeyUp:
		cmd := m.login.focusField(m.login.focus - 1)
		return m, cmd

	case key.Matches(msg, m.keys.NextField):
		cmd := m.login.focusField(m.login.focus + 1)
		return m, cmd

	case key.Matches(msg, m.keys.Confirm):
		return m.submitLogin()
	}

	idx := m.login.fields()[m.login.focus]
	var cmd tea.Cmd
	m.login.inputs[idx], cmd = m.login.inputs[idx].Update(msg)
	return m, cmd
}

// submitLogin sends the form. Field validation happens in the client so the
// modal shows the same messages the API layer produces.
func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	if m.login.busy || m.client == nil {
		return m, nil
	}
	m.login.busy = true
	m.login.err = ""
	username := m.login.inputs[fieldUsername].Value()
	email := m.login.inputs[fieldEmail].Value()
	password := m.login.inputs[fieldPassword].Value()
	return m, tea.Batch(authCmd(m.ctx, m.client, m.login.register, username, email, password), m.spinner.Tick)
}

func (m Model) handleAuth(msg authMsg) (tea.Model, tea.Cmd) {
	m.login.busy = false
	if msg.err != nil {
		m.login.err = errorText(msg.err, "Authentication failed")
		return m, nil
	}

	if msg.register {
		m.login.register = false
		m.login.inputs[fieldPassword].Reset()
		m.setFlash("Account created. Log in to continue.", false)
		cmd := m.login.focusField(1)
		return m, cmd
	}

	if msg.resp != nil && msg.resp.User != nil {
		m.user = msg.resp.User
		m.setFlash("Logged in as "+m.user.Username, false)
	} else {
		m.setFlash("Logged in", false)
	}
	cmd := m.closeLogin()
	return m, cmd
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	if m.client == nil || !m.client.IsAuthenticated() {
		m.setFlash("Not logged in", false)
		return m, nil
	}
	if err := m.client.Logout(); err != nil {
		m.setFlash("Logout failed: "+err.Error(), true)
		return m, nil
	}
	m.user = nil
	m.setFlash("Logged out", false)
	return m, nil
}

func (m Model) renderLogin() string {
	styles := m.theme.Styles()

	title := "Log in"
	if m.login.register {
		title = "Create account"
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for _, idx := range m.login.fields() {
		b.WriteString(m.login.inputs[idx].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.login.busy:
		b.WriteString(m.spinner.View() + " " + styles.InfoText.Render("Contacting server..."))
	case m.login.err != "":
		b.WriteString(styles.DangerText.Render(m.login.err))
	}
	b.WriteString("\n\n")

	toggle := "create an account"
	if m.login.register {
		toggle = "log in instead"
	}
	b.WriteString(styles.AccentText.Render("enter") + styles.MutedText.Render(" submit  ") +
		styles.AccentText.Render("tab") + styles.MutedText.Render(" next  ") +
		styles.AccentText.Render("esc") + styles.MutedText.Render(" close"))
	b.WriteString("\n")
	b.WriteString(styles.AccentText.Render("ctrl+r") + styles.MutedText.Render(" "+toggle))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(48)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
