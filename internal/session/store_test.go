package session

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestStore_LoginRefreshLogout(t *testing.T) {
	p := &MemoryPersister{}
	s, err := Open(p)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if s.IsAuthenticated() {
		t.Fatalf("fresh store is authenticated")
	}

	if err := s.SetTokens("A", "R"); err != nil {
		t.Fatalf("SetTokens returned error: %v", err)
	}
	if !s.IsAuthenticated() || s.AccessToken() != "A" || s.RefreshToken() != "R" {
		t.Fatalf("after SetTokens access=%q refresh=%q", s.AccessToken(), s.RefreshToken())
	}

	if err := s.SetAccessToken("A2"); err != nil {
		t.Fatalf("SetAccessToken returned error: %v", err)
	}
	if s.AccessToken() != "A2" || s.RefreshToken() != "R" {
		t.Fatalf("after SetAccessToken access=%q refresh=%q", s.AccessToken(), s.RefreshToken())
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if s.IsAuthenticated() || s.RefreshToken() != "" {
		t.Fatalf("Clear left credentials behind")
	}
	if p.Saves() != 3 {
		t.Fatalf("saves = %d, want 3", p.Saves())
	}
}

func TestStore_SaveFailureLeavesMemoryUnchanged(t *testing.T) {
	p := &MemoryPersister{}
	s, err := Open(p)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := s.SetTokens("A", "R"); err != nil {
		t.Fatalf("SetTokens returned error: %v", err)
	}

	p.Err = errors.New("disk full")
	if err := s.SetTokens("B", "R2"); err == nil {
		t.Fatalf("SetTokens returned nil error, want save failure")
	}
	if s.AccessToken() != "A" || s.RefreshToken() != "R" {
		t.Fatalf("after failed SetTokens access=%q refresh=%q, want A/R", s.AccessToken(), s.RefreshToken())
	}
	if err := s.SetAccessToken("A2"); err == nil {
		t.Fatalf("SetAccessToken returned nil error, want save failure")
	}
	if s.AccessToken() != "A" {
		t.Fatalf("after failed SetAccessToken access=%q, want A", s.AccessToken())
	}
	if err := s.Clear(); err == nil {
		t.Fatalf("Clear returned nil error, want save failure")
	}
	if !s.IsAuthenticated() {
		t.Fatalf("failed Clear dropped credentials")
	}
}

func TestStore_NilPersister(t *testing.T) {
	s, err := Open(nil)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := s.SetTokens("A", "R"); err != nil {
		t.Fatalf("SetTokens returned error: %v", err)
	}
	if s.AccessToken() != "A" {
		t.Fatalf("AccessToken = %q, want A", s.AccessToken())
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s, _ := Open(&MemoryPersister{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.SetTokens("A", "R")
		}()
		go func() {
			defer wg.Done()
			_ = s.IsAuthenticated()
		}()
	}
	wg.Wait()
}

func TestFilePersister_RoundTripAndPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.toml")
	fp := FilePersister{Path: path}

	tokens, err := fp.Load()
	if err != nil {
		t.Fatalf("Load on missing file returned error: %v", err)
	}
	if tokens != (Tokens{}) {
		t.Fatalf("Load on missing file = %#v, want empty", tokens)
	}

	s, err := Open(fp)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := s.SetTokens("A", "R"); err != nil {
		t.Fatalf("SetTokens returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("session file mode = %o, want 600", perm)
	}

	reopened, err := Open(fp)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if reopened.AccessToken() != "A" || reopened.RefreshToken() != "R" {
		t.Fatalf("reopened tokens = %q/%q", reopened.AccessToken(), reopened.RefreshToken())
	}

	if err := reopened.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("session file still present after Clear: %v", err)
	}
}

func TestFilePersister_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	if err := os.WriteFile(path, []byte("access_token = [unterminated"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := Open(FilePersister{Path: path})
	if err == nil {
		t.Fatalf("Open returned nil error for corrupt file")
	}
	if s == nil || s.IsAuthenticated() {
		t.Fatalf("Open should return an empty usable store on load failure")
	}
}
