package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// FilePersister keeps credentials in a TOML file readable only by the owner.
type FilePersister struct {
	Path string
}

// Load returns empty Tokens when the file does not exist.
func (f FilePersister) Load() (Tokens, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Tokens{}, nil
		}
		return Tokens{}, fmt.Errorf("read session file: %w", err)
	}
	var tokens Tokens
	if err := toml.Unmarshal(data, &tokens); err != nil {
		return Tokens{}, fmt.Errorf("parse session file: %w", err)
	}
	return tokens, nil
}

// Save writes the credentials, removing the file once both are empty.
func (f FilePersister) Save(tokens Tokens) error {
	if tokens == (Tokens{}) {
		if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove session file: %w", err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := toml.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// MemoryPersister keeps the last saved Tokens in memory.
type MemoryPersister struct {
	mu     sync.Mutex
	tokens Tokens
	saves  int
	Err    error
}

func (m *MemoryPersister) Load() (Tokens, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens, nil
}

func (m *MemoryPersister) Save(t Tokens) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.tokens = t
	m.saves++
	return nil
}

// Saves reports how many saves succeeded.
func (m *MemoryPersister) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
