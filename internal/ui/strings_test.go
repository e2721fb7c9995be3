package ui

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"Hog Rider", 20, "Hog Rider"},
		{"Mega Minion Army", 10, "Mega Mi..."},
		{"  padded  ", 0, "padded"},
		{"Zap", 2, "Za"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTruncateMiddleKeepsFileName(t *testing.T) {
	got := truncateMiddle("/tmp/decklens/charts/2PP-charts.html", 20)
	if len([]rune(got)) != 20 {
		t.Fatalf("truncateMiddle length = %d, want 20 (%q)", len([]rune(got)), got)
	}
	if !strings.HasSuffix(got, "-charts.html") || !strings.HasPrefix(got, "/tmp/") {
		t.Fatalf("truncateMiddle dropped the file name: %q", got)
	}
}

func TestTitleCase(t *testing.T) {
	for in, want := range map[string]string{
		"legendary":       "Legendary",
		"add_air_defense": "Add Air Defense",
		"WIN condition":   "Win Condition",
		"":                "",
	} {
		if got := titleCase(in); got != want {
			t.Fatalf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Fatalf("padRight = %q", got)
	}
}
