package state

import (
	"errors"
	"testing"
	"time"

	"github.com/five82/decklens/internal/dashboard"
	"github.com/five82/decklens/internal/royale"
)

func TestStore_BeginFinishReady(t *testing.T) {
	var s Store
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	if s.Snapshot().Phase != PhaseIdle {
		t.Fatalf("zero store phase = %v, want idle", s.Snapshot().Phase)
	}

	seq := s.Begin("#2pp")
	snap := s.Snapshot()
	if snap.Phase != PhaseLoading || snap.Tag != "2PP" || !snap.StartedAt.Equal(fixed) {
		t.Fatalf("after Begin = %#v", snap)
	}

	ok := s.Finish(seq, dashboard.Result{Player: &royale.Player{Name: "Kim"}})
	if !ok {
		t.Fatalf("Finish returned false for current load")
	}
	snap = s.Snapshot()
	if snap.Phase != PhaseReady || snap.Err != nil {
		t.Fatalf("after Finish phase=%v err=%v", snap.Phase, snap.Err)
	}
	if snap.View.Title != "Kim's Dashboard" || snap.View.Analysis.Present() {
		t.Fatalf("view = %#v", snap.View)
	}
	if snap.Degraded() {
		t.Fatalf("Degraded = true without analysis error")
	}
}

func TestStore_FinishDropsStaleResults(t *testing.T) {
	var s Store
	first := s.Begin("AAA")
	second := s.Begin("BBB")

	if s.Finish(first, dashboard.Result{Player: &royale.Player{Name: "Old"}}) {
		t.Fatalf("stale result applied")
	}
	if snap := s.Snapshot(); snap.Phase != PhaseLoading || snap.Tag != "BBB" {
		t.Fatalf("stale result changed snapshot: %#v", snap)
	}
	if !s.Finish(second, dashboard.Result{Player: &royale.Player{Name: "New"}}) {
		t.Fatalf("current result dropped")
	}
	if s.Finish(second, dashboard.Result{}) {
		t.Fatalf("second Finish for the same load applied")
	}
	if got := s.Snapshot().View.Summary.Value().Name; got != "New" {
		t.Fatalf("summary name = %q, want New", got)
	}
}

func TestStore_FailureAndDegraded(t *testing.T) {
	var s Store
	analysisErr := errors.New("analysis down")

	seq := s.Begin("X")
	s.Finish(seq, dashboard.Result{AnalysisErr: analysisErr, LookupErr: errors.New("not found")})
	snap := s.Snapshot()
	if snap.Phase != PhaseFailed || snap.Err == nil || snap.Err.Error() != "analysis down" {
		t.Fatalf("failed snapshot = %#v", snap)
	}
	var loadErr *dashboard.LoadError
	if !errors.As(snap.Err, &loadErr) || loadErr.Lookup.Error() != "not found" {
		t.Fatalf("Err = %#v, want LoadError with lookup error", snap.Err)
	}

	seq = s.Begin("X")
	s.Finish(seq, dashboard.Result{AnalysisErr: analysisErr, Player: &royale.Player{Name: "Kim"}})
	snap = s.Snapshot()
	if !snap.Degraded() || snap.Err != nil {
		t.Fatalf("degraded snapshot = %#v", snap)
	}
}

func TestStore_ResetInvalidatesInFlight(t *testing.T) {
	var s Store
	seq := s.Begin("X")
	s.Reset()
	if s.Finish(seq, dashboard.Result{Player: &royale.Player{}}) {
		t.Fatalf("result applied after Reset")
	}
	if s.Snapshot().Phase != PhaseIdle || s.Current() == seq {
		t.Fatalf("Reset did not return to idle")
	}
	if PhaseFailed.String() != "failed" || Phase(42).String() != "idle" {
		t.Fatalf("Phase.String mismatch")
	}
}
