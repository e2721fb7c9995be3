// Package session holds the access and refresh credentials of the signed-in
// user and persists them across runs.
package session

import (
	"fmt"
	"sync"
)

// Tokens is the persisted credential pair. Empty strings mean absent.
type Tokens struct {
	Access  string `toml:"access_token"`
	Refresh string `toml:"refresh_token"`
}

// Persister loads and saves Tokens.
type Persister interface {
	Load() (Tokens, error)
	Save(Tokens) error
}

// Store is the credential source handed to the API client. It is safe for
// concurrent use.
type Store struct {
	mu        sync.RWMutex
	tokens    Tokens
	persister Persister
}

// Open reads the persisted credentials. A nil persister keeps credentials in
// memory only.
func Open(p Persister) (*Store, error) {
	s := &Store{persister: p}
	if p == nil {
		return s, nil
	}
	tokens, err := p.Load()
	if err != nil {
		return s, fmt.Errorf("load session: %w", err)
	}
	s.tokens = tokens
	return s, nil
}

// AccessToken returns the short-lived credential, or "".
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.Access
}

// RefreshToken returns the long-lived credential, or "".
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.Refresh
}

// IsAuthenticated reports whether an access credential is held.
func (s *Store) IsAuthenticated() bool {
	return s.AccessToken() != ""
}

// SetTokens replaces both credentials.
func (s *Store) SetTokens(access, refresh string) error {
	return s.update(func(t *Tokens) {
		t.Access = access
		t.Refresh = refresh
	})
}

// SetAccessToken replaces the access credential and keeps the refresh one.
func (s *Store) SetAccessToken(access string) error {
	return s.update(func(t *Tokens) {
		t.Access = access
	})
}

// Clear forgets both credentials.
func (s *Store) Clear() error {
	return s.update(func(t *Tokens) {
		*t = Tokens{}
	})
}

// update persists the result of fn and only then makes it visible. A failed
// save leaves the in-memory credentials unchanged.
func (s *Store) update(fn func(*Tokens)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.tokens
	fn(&next)
	if s.persister != nil {
		if err := s.persister.Save(next); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
	}
	s.tokens = next
	return nil
}
