package state

import (
	"sync"
	"time"

	"github.com/five82/decklens/internal/dashboard"
	"github.com/five82/decklens/internal/royale"
	"github.com/five82/decklens/internal/viewmodel"
)

// Phase is the lifecycle of the dashboard request.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Snapshot represents the dashboard data available to the UI.
type Snapshot struct {
	Tag         string
	Phase       Phase
	View        viewmodel.Dashboard
	Err         error
	AnalysisErr error
	StartedAt   time.Time
	LastUpdated time.Time
}

// Degraded is true when the dashboard shows a player without its analysis
// because the analysis request failed.
func (s Snapshot) Degraded() bool {
	return s.Phase == PhaseReady && s.AnalysisErr != nil
}

// Store coordinates dashboard loads and the results they produce.
type Store struct {
	mu       sync.RWMutex
	seq      uint64
	snapshot Snapshot
	now      func() time.Time
}

func (s *Store) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// Begin starts a load for tag, discarding whatever the previous load showed.
// The returned sequence number must be passed to Finish.
func (s *Store) Begin(tag string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.snapshot = Snapshot{
		Tag:       royale.NormalizeTag(tag),
		Phase:     PhaseLoading,
		StartedAt: s.clock(),
	}
	return s.seq
}

// Finish applies the result of load seq. Results of superseded loads are
// dropped and Finish reports false.
func (s *Store) Finish(seq uint64, res dashboard.Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq || s.snapshot.Phase != PhaseLoading {
		return false
	}
	s.snapshot.LastUpdated = s.clock()
	s.snapshot.AnalysisErr = res.AnalysisErr
	if err := res.Err(); err != nil {
		s.snapshot.Phase = PhaseFailed
		s.snapshot.Err = err
		return true
	}
	s.snapshot.Phase = PhaseReady
	s.snapshot.View = viewmodel.BuildDashboard(s.snapshot.Tag, res.Player, res.Deck, res.Analysis)
	return true
}

// Current returns the sequence number of the latest load.
func (s *Store) Current() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq
}

// Reset returns the store to idle and invalidates any load in flight.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.snapshot = Snapshot{}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
