package ui

import (
	"context"
	"errors"
	"sync"

	"github.com/five82/decklens/internal/royale"
)

// fakeAPI is an in-memory royale.API. Unset responses fail with errNotStubbed.
type fakeAPI struct {
	mu sync.Mutex

	player     *royale.Player
	playerErr  error
	analysis   *royale.AnalysisResult
	analyzeErr error
	page       *royale.PlayerPage
	cards      *royale.CardList
	stats      *royale.CardStatistics
	roast      *royale.Roast
	loginResp  *royale.AuthResponse
	loginErr   error
	authed     bool

	playerCalls   int
	analyzeCalls  int
	listCalls     int
	searchQueries []string
	cardFilters   []royale.CardFilter
	roastLevels   []royale.Intensity
	logouts       int
}

var errNotStubbed = errors.New("not stubbed")

var _ royale.API = (*fakeAPI)(nil)

func (f *fakeAPI) GetPlayer(_ context.Context, tag string, _ bool) (*royale.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playerCalls++
	if royale.NormalizeTag(tag) == "" {
		return nil, &royale.ValidationError{Field: "tag", Message: "player tag is required"}
	}
	if f.playerErr != nil {
		return nil, f.playerErr
	}
	if f.player == nil {
		return nil, errNotStubbed
	}
	return f.player, nil
}

func (f *fakeAPI) AnalyzeDeck(context.Context, string) (*royale.AnalysisResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.analyzeCalls++
	if f.analyzeErr != nil {
		return nil, f.analyzeErr
	}
	if f.analysis == nil {
		return nil, errNotStubbed
	}
	return f.analysis, nil
}

func (f *fakeAPI) ListPlayers(_ context.Context, limit, offset int) (*royale.PlayerPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.page == nil {
		return nil, errNotStubbed
	}
	page := *f.page
	page.Limit, page.Offset = limit, offset
	return &page, nil
}

func (f *fakeAPI) SearchPlayers(_ context.Context, query string) (*royale.PlayerPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchQueries = append(f.searchQueries, query)
	if f.page == nil {
		return nil, errNotStubbed
	}
	return f.page, nil
}

func (f *fakeAPI) ListCards(_ context.Context, filter royale.CardFilter) (*royale.CardList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cardFilters = append(f.cardFilters, filter)
	if f.cards == nil {
		return nil, errNotStubbed
	}
	return f.cards, nil
}

func (f *fakeAPI) GetCard(context.Context, int) (*royale.Card, error) {
	return nil, errNotStubbed
}

func (f *fakeAPI) CardStatistics(context.Context) (*royale.CardStatistics, error) {
	if f.stats == nil {
		return nil, errNotStubbed
	}
	return f.stats, nil
}

func (f *fakeAPI) SyncCards(context.Context) (*royale.SyncResult, error) {
	return &royale.SyncResult{Synced: 1, Updated: 2, Total: 3}, nil
}

func (f *fakeAPI) GenerateRoast(_ context.Context, _ string, intensity royale.Intensity) (*royale.Roast, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roastLevels = append(f.roastLevels, intensity)
	if f.roast == nil {
		return nil, errNotStubbed
	}
	return f.roast, nil
}

func (f *fakeAPI) Register(context.Context, string, string, string) (*royale.AuthResponse, error) {
	return &royale.AuthResponse{Message: "User registered successfully"}, nil
}

func (f *fakeAPI) Login(context.Context, string, string) (*royale.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.authed = true
	return f.loginResp, nil
}

func (f *fakeAPI) Logout() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts++
	f.authed = false
	return nil
}

func (f *fakeAPI) CurrentUser(context.Context) (*royale.User, error) {
	return &royale.User{Username: "kim"}, nil
}

func (f *fakeAPI) RefreshToken(context.Context) (string, error) {
	return "", royale.ErrNoRefreshToken
}

func (f *fakeAPI) IsAuthenticated() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authed
}
