// Package dashboard loads everything the dashboard view shows for one tag.
package dashboard

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/five82/decklens/internal/royale"
)

// Fetcher is the subset of royale.API the loader needs.
type Fetcher interface {
	AnalyzeDeck(ctx context.Context, tag string) (*royale.AnalysisResult, error)
	GetPlayer(ctx context.Context, tag string, forceRefresh bool) (*royale.Player, error)
}

// Result is the outcome of one load. Player, Deck and Analysis are nil when
// the corresponding data could not be obtained. AnalysisErr stays set after a
// successful fallback lookup.
type Result struct {
	Tag         string
	Player      *royale.Player
	Deck        *royale.Deck
	Analysis    *royale.DeckAnalysis
	AnalysisErr error
	LookupErr   error
}

// Err returns a *LoadError when neither step produced a player.
func (r Result) Err() error {
	if r.AnalysisErr != nil && r.LookupErr != nil {
		return &LoadError{Analysis: r.AnalysisErr, Lookup: r.LookupErr}
	}
	return nil
}

// Degraded reports whether the result came from the plain lookup.
func (r Result) Degraded() bool {
	return r.AnalysisErr != nil && r.LookupErr == nil
}

// LoadError carries both failures of the fallback chain.
type LoadError struct {
	Analysis error
	Lookup   error
}

func (e *LoadError) Error() string {
	return e.Analysis.Error()
}

func (e *LoadError) Unwrap() []error {
	return []error{e.Analysis, e.Lookup}
}

// Loader runs the analysis-then-lookup chain.
type Loader struct {
	api    Fetcher
	logger zerolog.Logger
}

// NewLoader returns a Loader backed by api.
func NewLoader(api Fetcher, logger zerolog.Logger) *Loader {
	return &Loader{api: api, logger: logger.With().Str("component", "dashboard").Logger()}
}

// Load fetches the analysis for tag and falls back to a refreshed player
// lookup when the analysis call fails.
func (l *Loader) Load(ctx context.Context, tag string) Result {
	res := Result{Tag: royale.NormalizeTag(tag)}
	if l == nil || l.api == nil {
		err := errors.New("dashboard loader is not configured")
		res.AnalysisErr, res.LookupErr = err, err
		return res
	}
	log := l.logger.With().Str("tag", res.Tag).Logger()

	analysed, err := l.api.AnalyzeDeck(ctx, res.Tag)
	if err == nil {
		res.Player = analysed.Player
		res.Deck = analysed.Deck
		res.Analysis = analysed.Analysis
		log.Debug().
			Bool("player", res.Player != nil).
			Bool("deck", res.Deck != nil).
			Bool("analysis", res.Analysis != nil).
			Msg("analysis loaded")
		return res
	}
	res.AnalysisErr = err
	log.Warn().Err(err).Msg("analysis failed, falling back to player lookup")

	player, err := l.api.GetPlayer(ctx, res.Tag, true)
	if err != nil {
		res.LookupErr = err
		log.Error().Err(err).Msg("player lookup failed")
		return res
	}
	res.Player = player
	log.Debug().Msg("player loaded without analysis")
	return res
}
