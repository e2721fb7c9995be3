package charts

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/decklens/internal/viewmodel"
)

func sampleData(withMetrics bool) viewmodel.ChartData {
	data := viewmodel.ChartData{
		Elixir: []viewmodel.Count{{Label: "Hog Rider", Value: 4}, {Label: "Zap", Value: 2}},
		Types:  []viewmodel.Count{{Label: "Troop", Value: 1}, {Label: "Spell", Value: 1}},
	}
	if withMetrics {
		data.Metrics = viewmodel.Some([]viewmodel.Count{{Label: "Air Defense", Value: 3}})
	}
	return data
}

func TestRender_IncludesEveryDataset(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "2pp", sampleData(true), DefaultChartConfig()); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"#2PP deck charts", "Elixir Cost Distribution", "Card Types", "Deck Composition", "Hog Rider", "Air Defense"} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered page missing %q", want)
		}
	}
}

func TestRender_SkipsAbsentMetrics(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "2PP", sampleData(false), DefaultChartConfig()); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if strings.Contains(buf.String(), "Deck Composition") {
		t.Fatalf("metrics chart rendered without metrics")
	}
}

func TestExport_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	path, err := Export(dir, "#8yc9vy8c", sampleData(true), DefaultChartConfig())
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if filepath.Base(path) != "8YC9VY8C-charts.html" {
		t.Fatalf("path = %q", path)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("exported file missing or empty: %v", err)
	}

	if _, err := Export(dir, "2PP", viewmodel.ChartData{}, DefaultChartConfig()); err == nil {
		t.Fatalf("Export accepted empty data")
	}
}

func TestWritePage_RemovesFileOnRenderFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2PP-charts.html")
	renderErr := errors.New("render failed")

	err := writePage(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "<html><body>")
		return renderErr
	})
	if !errors.Is(err, renderErr) {
		t.Fatalf("writePage error = %v, want render failure", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("partial chart file left behind: %v", err)
	}

	if err := writePage(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "<html></html>")
		return err
	}); err != nil {
		t.Fatalf("writePage returned error: %v", err)
	}
	if got, err := os.ReadFile(path); err != nil || string(got) != "<html></html>" {
		t.Fatalf("written page = %q, %v", got, err)
	}
}
