package logtail

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		msg := fmt.Sprintf("line %d", i)
		content.WriteString(`{"level":"info","message":"` + msg + `"}` + "\n")
		expectedAll = append(expectedAll, msg)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read returned error: %v", err)
			}
			var got []string
			for _, e := range entries {
				got = append(got, e.Message)
			}
			if strings.Join(got, ",") != strings.Join(tt.expected, ",") {
				t.Fatalf("messages = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "missing.log"), 10)
	if err != nil || entries != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", entries, err)
	}
}

func TestReadSkipsBlankLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "blank.log")
	if err := os.WriteFile(logPath, []byte("\n{\"message\":\"a\"}\n   \n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	entries, err := Read(logPath, 10)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Message != "a" {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestParseZerologLine(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Caller().Str("component", "dashboard").Logger()
	logger.Warn().Err(errors.New("boom")).Str("tag", "2PP").Int("status", 500).Msg("analysis failed")

	entry := Parse(strings.TrimSpace(buf.String()))
	if entry.Level != "warn" || entry.Message != "analysis failed" {
		t.Fatalf("level/message = %q/%q", entry.Level, entry.Message)
	}
	if entry.Component != "dashboard" || entry.Err != "boom" || entry.Time == "" {
		t.Fatalf("entry = %+v", entry)
	}
	want := []Field{{Key: "status", Value: "500"}, {Key: "tag", Value: "2PP"}}
	if len(entry.Fields) != len(want) {
		t.Fatalf("fields = %+v, want %+v", entry.Fields, want)
	}
	for i := range want {
		if entry.Fields[i] != want[i] {
			t.Fatalf("fields = %+v, want %+v", entry.Fields, want)
		}
	}
}

func TestParsePlainLine(t *testing.T) {
	entry := Parse("panic: something broke")
	if entry.Raw != "panic: something broke" || entry.Message != "" || entry.Level != "" {
		t.Fatalf("entry = %+v", entry)
	}
}
