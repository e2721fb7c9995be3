package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/decklens/internal/dashboard"
	"github.com/five82/decklens/internal/prefs"
	"github.com/five82/decklens/internal/royale"
	"github.com/five82/decklens/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewSearch View = iota
	ViewDashboard
	ViewCards
	ViewPlayers
	ViewRoast
	ViewLogs
)

var viewOrder = []View{ViewSearch, ViewDashboard, ViewCards, ViewPlayers, ViewRoast, ViewLogs}

func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewCards:
		return "Cards"
	case ViewPlayers:
		return "Players"
	case ViewRoast:
		return "Roast"
	case ViewLogs:
		return "Logs"
	default:
		return "Search"
	}
}

// requestTimeout bounds every backend call started from the UI.
const requestTimeout = 20 * time.Second

// Options configures the UI.
type Options struct {
	Context    context.Context
	Client     royale.API
	Loader     *dashboard.Loader
	Store      *state.Store
	Logger     zerolog.Logger
	Prefs      prefs.Prefs
	PrefsPath  string
	ChartDir   string
	LogFile    string
	InitialTag string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	client     royale.API
	loader     *dashboard.Loader
	store      *state.Store
	logger     zerolog.Logger
	prefs      prefs.Prefs
	prefsPath  string
	chartDir   string
	logFile    string
	initialTag string

	// UI state
	keys        keyMap
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	spinner     spinner.Model
	flash       flash

	// Per-view state
	search  searchState
	dash    dashState
	cards   cardsState
	players playersState
	roast   roastState
	logs    logsState

	// Session
	login loginState
	user  *royale.User

	// Help overlay
	showHelp bool
}

// flash is the one-line result of the last user action.
type flash struct {
	text  string
	isErr bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	loader := opts.Loader
	if loader == nil {
		loader = dashboard.NewLoader(opts.Client, opts.Logger)
	}

	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.Defaults().Theme
	}

	m := Model{
		ctx:        ctx,
		client:     opts.Client,
		loader:     loader,
		store:      store,
		logger:     opts.Logger.With().Str("component", "ui").Logger(),
		prefs:      p,
		prefsPath:  opts.PrefsPath,
		chartDir:   opts.ChartDir,
		logFile:    opts.LogFile,
		initialTag: royale.NormalizeTag(opts.InitialTag),

		keys:        DefaultKeyMap(),
		theme:       GetTheme(p.Theme),
		currentView: ViewSearch,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),

		search:  newSearchState(p.LastTag),
		dash:    newDashState(),
		cards:   newCardsState(),
		players: newPlayersState(),
		roast:   roastState{intensity: p.Intensity()},
		logs:    newLogsState(),
		login:   newLoginState(),
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if m.initialTag != "" {
		tag := m.initialTag
		cmds = append(cmds, func() tea.Msg { return routeMsg{tag: tag} })
	}
	if m.client != nil && m.client.IsAuthenticated() {
		cmds = append(cmds, currentUserCmd(m.ctx, m.client))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeViewports()
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case routeMsg:
		return m.openDashboard(msg.tag)

	case playerLookupMsg:
		return m.handlePlayerLookup(msg)

	case dashboardLoadedMsg:
		m.handleDashboardLoaded(msg)
		return m, nil

	case chartsExportedMsg:
		if msg.err != nil {
			m.setFlash("Chart export failed: "+msg.err.Error(), true)
		} else {
			m.setFlash("Charts written to "+truncateMiddle(msg.path, 60), false)
		}
		return m, nil

	case cardsLoadedMsg:
		m.handleCardsLoaded(msg)
		return m, nil

	case cardsSyncedMsg:
		return m.handleCardsSynced(msg)

	case playersLoadedMsg:
		m.handlePlayersLoaded(msg)
		return m, nil

	case roastMsg:
		m.handleRoast(msg)
		return m, nil

	case logsLoadedMsg:
		m.handleLogsLoaded(msg)
		return m, nil

	case authMsg:
		return m.handleAuth(msg)

	case userMsg:
		if msg.err == nil {
			m.user = msg.user
		} else {
			m.logger.Debug().Err(msg.err).Msg("current user unavailable")
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.login.open {
		return m.renderLogin()
	}

	return m.renderMain()
}

// renderMain stacks the header, the active view and the command bar.
func (m Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderCommandBar()

	var body string
	switch m.currentView {
	case ViewDashboard:
		body = m.renderDashboardView()
	case ViewCards:
		body = m.renderCardsView()
	case ViewPlayers:
		body = m.renderPlayersView()
	case ViewRoast:
		body = m.renderRoastView()
	case ViewLogs:
		body = m.renderLogsView()
	default:
		body = m.renderSearchView()
	}

	body = lipgloss.NewStyle().
		Width(m.width).
		Height(m.bodyHeight()).
		MaxHeight(m.bodyHeight()).
		Render(body)

	rows := []string{header, body}
	if line := m.renderFlash(); line != "" {
		rows = append(rows, line)
	}
	rows = append(rows, footer)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// bodyHeight is the space between the header and the command bar.
func (m Model) bodyHeight() int {
	h := m.height - 2
	if m.flash.text != "" {
		h--
	}
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) resizeViewports() {
	w, h := m.width, m.bodyHeight()
	m.dash.viewport.Width = w
	m.dash.viewport.Height = h
	m.cards.viewport.Width = w
	m.cards.viewport.Height = maxInt(h-2, 1)
	m.logs.viewport.Width = w
	m.logs.viewport.Height = maxInt(h-2, 1)
	m.refreshDashboard()
	m.refreshCards()
	m.refreshLogs()
}

// busy reports whether any request is in flight, which keeps the spinner
// ticking.
func (m Model) busy() bool {
	return m.search.busy ||
		m.store.Snapshot().Phase == state.PhaseLoading ||
		m.cards.loading ||
		m.players.loading ||
		m.roast.loading ||
		m.login.busy
}

func (m *Model) setFlash(text string, isErr bool) {
	m.flash = flash{text: text, isErr: isErr}
	m.resizeViewports()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.login.open {
		return m.handleLoginKey(msg)
	}

	// Text inputs take every key they do not explicitly hand back.
	switch {
	case m.currentView == ViewSearch:
		if model, cmd, handled := m.handleSearchKey(msg); handled {
			return model, cmd
		}
	case m.currentView == ViewPlayers && m.players.input.Focused():
		return m.handlePlayerSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		m.refreshDashboard()
		m.refreshCards()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		return m.switchView(m.stepView(1))

	case key.Matches(msg, m.keys.ShiftTab):
		return m.switchView(m.stepView(-1))

	case key.Matches(msg, m.keys.Escape):
		return m.switchView(ViewSearch)

	case key.Matches(msg, m.keys.ViewSearch):
		return m.switchView(ViewSearch)

	case key.Matches(msg, m.keys.ViewDashboard):
		return m.switchView(ViewDashboard)

	case key.Matches(msg, m.keys.ViewCards):
		return m.switchView(ViewCards)

	case key.Matches(msg, m.keys.ViewPlayers):
		return m.switchView(ViewPlayers)

	case key.Matches(msg, m.keys.ViewRoast):
		return m.switchView(ViewRoast)

	case key.Matches(msg, m.keys.ViewLogs):
		return m.switchView(ViewLogs)

	case key.Matches(msg, m.keys.Login):
		if m.client != nil && m.client.IsAuthenticated() {
			m.setFlash("Already logged in", false)
			return m, nil
		}
		return m.openLogin()

	case key.Matches(msg, m.keys.Logout):
		return m.logout()
	}

	// View-specific keys
	switch m.currentView {
	case ViewDashboard:
		return m.handleDashboardKey(msg)
	case ViewCards:
		return m.handleCardsKey(msg)
	case ViewPlayers:
		return m.handlePlayersKey(msg)
	case ViewRoast:
		return m.handleRoastKey(msg)
	case ViewLogs:
		return m.handleLogsKey(msg)
	}

	return m, nil
}

// stepView returns the view delta steps away in tab order.
func (m Model) stepView(delta int) View {
	for i, v := range viewOrder {
		if v == m.currentView {
			n := len(viewOrder)
			return viewOrder[((i+delta)%n+n)%n]
		}
	}
	return ViewSearch
}

// switchView activates v and starts whatever first load it needs.
func (m Model) switchView(v View) (tea.Model, tea.Cmd) {
	m.currentView = v
	m.search.input.Blur()

	switch v {
	case ViewSearch:
		cmd := m.search.input.Focus()
		return m, cmd
	case ViewCards:
		if !m.cards.loaded && !m.cards.loading {
			return m.loadCards()
		}
	case ViewPlayers:
		if !m.players.loaded && !m.players.loading {
			return m.loadPlayers(0)
		}
	case ViewRoast:
		if m.roast.tag == "" {
			m.roast.tag = m.activeTag()
		}
	case ViewLogs:
		if !m.logs.loading {
			return m.loadLogs()
		}
	}
	return m, nil
}

// activeTag is the player the dashboard shows, or the last searched one.
func (m Model) activeTag() string {
	if m.dash.tag != "" {
		return m.dash.tag
	}
	return royale.NormalizeTag(m.prefs.LastTag)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := m.prefs
	if err := prefs.Update(m.prefsPath, func(stored *prefs.Prefs) { *stored = p }); err != nil {
		m.logger.Warn().Err(err).Msg("save preferences failed")
	}
}

// errorText returns the message of err, or fallback when err carries none.
func errorText(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var reqErr *royale.RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// Run starts the program and blocks until the user quits.
func Run(opts Options) error {
	program := tea.NewProgram(New(opts), tea.WithContext(contextOrBackground(opts.Context)))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// routeMsg opens the dashboard for tag.
type routeMsg struct {
	tag string
}
