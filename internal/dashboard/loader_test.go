package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/five82/decklens/internal/royale"
)

type fakeFetcher struct {
	analysis    *royale.AnalysisResult
	analysisErr error
	player      *royale.Player
	playerErr   error

	lookups  int
	lastTag  string
	lastForce bool
}

func (f *fakeFetcher) AnalyzeDeck(_ context.Context, tag string) (*royale.AnalysisResult, error) {
	f.lastTag = tag
	return f.analysis, f.analysisErr
}

func (f *fakeFetcher) GetPlayer(_ context.Context, tag string, forceRefresh bool) (*royale.Player, error) {
	f.lookups++
	f.lastTag = tag
	f.lastForce = forceRefresh
	return f.player, f.playerErr
}

func TestLoad_AnalysisSuccessSkipsLookup(t *testing.T) {
	f := &fakeFetcher{analysis: &royale.AnalysisResult{
		Player:   &royale.Player{Name: "Kim"},
		Analysis: &royale.DeckAnalysis{OverallRating: "good"},
	}}
	res := NewLoader(f, zerolog.Nop()).Load(context.Background(), "#2pp")
	if res.Err() != nil || res.Degraded() {
		t.Fatalf("Err/Degraded = %v/%v", res.Err(), res.Degraded())
	}
	if res.Player.Name != "Kim" || res.Analysis == nil || res.Deck != nil {
		t.Fatalf("result = %#v", res)
	}
	if f.lookups != 0 || f.lastTag != "2PP" {
		t.Fatalf("lookups=%d tag=%q", f.lookups, f.lastTag)
	}
}

func TestLoad_FallbackClearsAnalysis(t *testing.T) {
	analysisErr := &royale.RequestError{Status: 500, Message: "Failed to analyze deck"}
	f := &fakeFetcher{analysisErr: analysisErr, player: &royale.Player{Name: "Kim"}}

	res := NewLoader(f, zerolog.Nop()).Load(context.Background(), "2PP")
	if res.Err() != nil {
		t.Fatalf("Err = %v, want nil", res.Err())
	}
	if !res.Degraded() || !errors.Is(res.AnalysisErr, analysisErr) {
		t.Fatalf("Degraded/AnalysisErr = %v/%v", res.Degraded(), res.AnalysisErr)
	}
	if res.Player == nil || res.Analysis != nil || res.Deck != nil {
		t.Fatalf("result = %#v, want player only", res)
	}
	if f.lookups != 1 || !f.lastForce {
		t.Fatalf("lookup count=%d force=%v, want one forced lookup", f.lookups, f.lastForce)
	}
}

func TestLoad_BothFailKeepsBothErrors(t *testing.T) {
	analysisErr := &royale.RequestError{Status: 500, Message: "analysis down"}
	lookupErr := &royale.RequestError{Status: 404, Message: "Player not found"}
	f := &fakeFetcher{analysisErr: analysisErr, playerErr: lookupErr}

	res := NewLoader(f, zerolog.Nop()).Load(context.Background(), "2PP")
	err := res.Err()
	if err == nil {
		t.Fatalf("Err = nil, want LoadError")
	}
	if err.Error() != "analysis down" {
		t.Fatalf("Error() = %q, want analysis message", err.Error())
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.Lookup != lookupErr {
		t.Fatalf("LoadError = %#v", loadErr)
	}
	if !errors.Is(err, analysisErr) || !errors.Is(err, lookupErr) {
		t.Fatalf("both errors should be reachable through errors.Is")
	}
	var reqErr *royale.RequestError
	if !errors.As(err, &reqErr) || reqErr.Status != 500 {
		t.Fatalf("errors.As reached %#v, want the analysis error first", reqErr)
	}
	if res.Player != nil {
		t.Fatalf("player set on total failure")
	}
}

func TestLoad_NilLoader(t *testing.T) {
	var l *Loader
	if l.Load(context.Background(), "2PP").Err() == nil {
		t.Fatalf("nil loader should fail")
	}
}
