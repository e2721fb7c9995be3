package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestOpen_WritesJSONLinesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "decklens.log")

	h, err := Open(path, zerolog.InfoLevel)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	h.Logger.Debug().Msg("hidden")
	h.Logger.Info().Str("tag", "2PP").Msg("visible")
	if err := h.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("log lines = %d, want 1: %q", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["message"] != "visible" || entry["tag"] != "2PP" {
		t.Fatalf("entry = %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("entry has no timestamp: %v", entry)
	}
	if _, ok := entry["caller"]; !ok {
		t.Fatalf("entry has no caller: %v", entry)
	}
}

func TestOpen_EmptyPathIsDisabled(t *testing.T) {
	h, err := Open("", zerolog.DebugLevel)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if h.Logger.GetLevel() != zerolog.Disabled {
		t.Fatalf("level = %v, want disabled", h.Logger.GetLevel())
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.WarnLevel)
	log.Info().Msg("skip")
	log.Warn().Msg("keep")
	if strings.Contains(buf.String(), "skip") || !strings.Contains(buf.String(), "keep") {
		t.Fatalf("output = %q", buf.String())
	}
}
