package ui

import (
	"testing"

	"github.com/five82/decklens/internal/viewmodel"
)

func TestGetThemeFallsBackToNightfox(t *testing.T) {
	if got := GetTheme("nope").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(nope) = %q, want Nightfox", got)
	}
	if got := GetTheme("Arena").Name; got != "Arena" {
		t.Fatalf("GetTheme(Arena) = %q, want Arena", got)
	}
}

func TestNextThemeCycles(t *testing.T) {
	name := ThemeNames()[0]
	seen := map[string]bool{}
	for range ThemeNames() {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != ThemeNames()[0] || len(seen) != len(ThemeNames()) {
		t.Fatalf("cycle ended at %q after visiting %v", name, seen)
	}
	if got := NextTheme("unknown"); got != ThemeNames()[0] {
		t.Fatalf("NextTheme(unknown) = %q", got)
	}
}

func TestBucketColor(t *testing.T) {
	theme := GetTheme("Kanagawa")
	tests := map[viewmodel.Bucket]string{
		viewmodel.BucketLow:    theme.Success,
		viewmodel.BucketMedium: theme.Warning,
		viewmodel.BucketHigh:   theme.Danger,
	}
	for bucket, want := range tests {
		if got := theme.BucketColor(bucket); got != want {
			t.Fatalf("BucketColor(%s) = %q, want %q", bucket, got, want)
		}
	}
}

func TestPhaseStyleKnowsEveryPhase(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()
	for _, phase := range []string{"idle", "loading", "ready", "degraded", "failed"} {
		if _, ok := styles.phaseColors[phase]; !ok {
			t.Fatalf("no colour for phase %q", phase)
		}
	}
}
