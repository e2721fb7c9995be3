package ui

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/decklens/internal/charts"
	"github.com/five82/decklens/internal/dashboard"
	"github.com/five82/decklens/internal/logtail"
	"github.com/five82/decklens/internal/royale"
	"github.com/five82/decklens/internal/viewmodel"
)

type playerLookupMsg struct {
	tag    string
	player *royale.Player
	err    error
}

type dashboardLoadedMsg struct {
	seq    uint64
	result dashboard.Result
}

type chartsExportedMsg struct {
	path string
	err  error
}

type cardsLoadedMsg struct {
	filter   royale.CardFilter
	list     *royale.CardList
	stats    *royale.CardStatistics
	err      error
	statsErr error
}

type cardsSyncedMsg struct {
	result *royale.SyncResult
	err    error
}

type playersLoadedMsg struct {
	query  string
	offset int
	page   *royale.PlayerPage
	err    error
}

type roastMsg struct {
	tag   string
	roast *royale.Roast
	err   error
}

type authMsg struct {
	register bool
	resp     *royale.AuthResponse
	err      error
}

type logsLoadedMsg struct {
	entries []logtail.Entry
	err     error
}

type userMsg struct {
	user *royale.User
	err  error
}

func lookupPlayerCmd(ctx context.Context, api royale.API, tag string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		player, err := api.GetPlayer(ctx, tag, true)
		return playerLookupMsg{tag: tag, player: player, err: err}
	}
}

func loadDashboardCmd(ctx context.Context, loader *dashboard.Loader, seq uint64, tag string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		return dashboardLoadedMsg{seq: seq, result: loader.Load(ctx, tag)}
	}
}

func exportChartsCmd(dir, tag string, data viewmodel.ChartData) tea.Cmd {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "decklens")
	}
	return func() tea.Msg {
		path, err := charts.Export(dir, tag, data, charts.DefaultChartConfig())
		return chartsExportedMsg{path: path, err: err}
	}
}

func loadCardsCmd(ctx context.Context, api royale.API, filter royale.CardFilter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		msg := cardsLoadedMsg{filter: filter}
		msg.list, msg.err = api.ListCards(ctx, filter)
		if msg.err == nil {
			msg.stats, msg.statsErr = api.CardStatistics(ctx)
		}
		return msg
	}
}

func syncCardsCmd(ctx context.Context, api royale.API) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		result, err := api.SyncCards(ctx)
		return cardsSyncedMsg{result: result, err: err}
	}
}

func loadPlayersCmd(ctx context.Context, api royale.API, query string, offset int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		msg := playersLoadedMsg{query: query, offset: offset}
		if query == "" {
			msg.page, msg.err = api.ListPlayers(ctx, playersPageSize, offset)
		} else {
			msg.page, msg.err = api.SearchPlayers(ctx, query)
		}
		return msg
	}
}

func roastCmd(ctx context.Context, api royale.API, tag string, intensity royale.Intensity) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		roast, err := api.GenerateRoast(ctx, tag, intensity)
		return roastMsg{tag: tag, roast: roast, err: err}
	}
}

func authCmd(ctx context.Context, api royale.API, register bool, username, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		msg := authMsg{register: register}
		if register {
			msg.resp, msg.err = api.Register(ctx, username, email, password)
		} else {
			msg.resp, msg.err = api.Login(ctx, username, password)
		}
		return msg
	}
}

// currentUserCmd fetches the logged-in account, refreshing the access
// credential once when the backend rejects it.
func currentUserCmd(ctx context.Context, api royale.API) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		user, err := api.CurrentUser(ctx)
		var reqErr *royale.RequestError
		if errors.As(err, &reqErr) && reqErr.Status == http.StatusUnauthorized {
			if _, rerr := api.RefreshToken(ctx); rerr == nil {
				user, err = api.CurrentUser(ctx)
			}
		}
		return userMsg{user: user, err: err}
	}
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := logtail.Read(path, logTailLines)
		return logsLoadedMsg{entries: entries, err: err}
	}
}
