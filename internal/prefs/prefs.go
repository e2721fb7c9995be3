// Package prefs keeps the UI preferences of decklens (theme, last searched
// tag, roast intensity) in ~/.config/decklens/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/decklens/internal/config"
	"github.com/five82/decklens/internal/royale"
)

// Prefs holds user preferences for decklens.
type Prefs struct {
	Theme          string `toml:"theme"`
	LastTag        string `toml:"last_tag,omitempty"`
	RoastIntensity string `toml:"roast_intensity,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/decklens/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, RoastIntensity: string(royale.IntensityFun)}
}

// Intensity returns the stored roast intensity, or fun when it is unknown.
func (p Prefs) Intensity() royale.Intensity {
	level, ok := royale.ParseIntensity(p.RoastIntensity)
	if !ok {
		return royale.IntensityFun
	}
	return level
}

// normalize fills blanks with defaults and canonicalises the tag and
// intensity.
func (p Prefs) normalize() Prefs {
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	p.LastTag = royale.NormalizeTag(p.LastTag)
	p.RoastIntensity = string(p.Intensity())
	return p
}

// Load reads preferences from path (empty for the default path). A missing,
// unreadable or malformed file yields Defaults; preferences never block
// startup, so the error is always nil.
func Load(path string) (Prefs, error) {
	resolved, err := resolve(path)
	if err != nil {
		return Defaults(), nil
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Defaults(), nil
	}
	p := Defaults()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Defaults(), nil
	}
	return p.normalize(), nil
}

// Save writes preferences to path, creating directories as needed. The file
// is replaced through a rename so a crash never leaves it half written.
func Save(path string, p Prefs) error {
	resolved, err := resolve(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p.normalize())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp := resolved + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp, resolved); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// Update loads the stored preferences, applies fn and saves the result.
func Update(path string, fn func(*Prefs)) error {
	p, _ := Load(path)
	fn(&p)
	return Save(path, p)
}

func resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return config.ExpandPath(path)
}
