// Package charts exports the dashboard chart datasets as a standalone HTML
// page for viewing in a browser.
package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/five82/decklens/internal/royale"
	"github.com/five82/decklens/internal/viewmodel"
)

// ChartConfig holds presentation settings shared by every chart.
type ChartConfig struct {
	Width  string
	Height string
	Theme  string
	Colors []string
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:  "900px",
		Height: "420px",
		Theme:  "light",
		Colors: []string{
			"rgba(255, 99, 132, 0.7)",
			"rgba(54, 162, 235, 0.7)",
			"rgba(255, 206, 86, 0.7)",
			"rgba(75, 192, 192, 0.7)",
			"rgba(153, 102, 255, 0.7)",
			"rgba(255, 159, 64, 0.7)",
			"rgba(199, 199, 199, 0.7)",
			"rgba(83, 102, 255, 0.7)",
		},
	}
}

// Export writes the chart page for tag into dir and returns its path.
func Export(dir, tag string, data viewmodel.ChartData, cfg ChartConfig) (string, error) {
	if len(data.Elixir) == 0 {
		return "", fmt.Errorf("no deck data to chart")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create chart dir: %w", err)
	}

	name := royale.NormalizeTag(tag)
	if name == "" {
		name = "deck"
	}
	path := filepath.Join(dir, name+"-charts.html")

	err := writePage(path, func(w io.Writer) error {
		return Render(w, tag, data, cfg)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// writePage creates path and fills it with render. The file is removed when
// rendering or closing fails.
func writePage(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	if err := render(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("close chart file: %w", err)
	}
	return nil
}

// Render writes the chart page to w.
func Render(w io.Writer, tag string, data viewmodel.ChartData, cfg ChartConfig) error {
	page := components.NewPage()
	page.PageTitle = royale.DisplayTag(tag) + " deck charts"
	page.AddCharts(
		elixirChart(data.Elixir, cfg),
		typeChart(data.Types, cfg),
	)
	if metrics, ok := data.Metrics.Get(); ok {
		page.AddCharts(metricsChart(metrics, cfg))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func globalOpts(cfg ChartConfig, title string, legend bool) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  cfg.Width,
			Height: cfg.Height,
			Theme:  cfg.Theme,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(legend)}),
	}
}

func elixirChart(series []viewmodel.Count, cfg ChartConfig) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(cfg, "Elixir Cost Distribution", false)...)

	labels := make([]string, len(series))
	data := make([]opts.BarData, len(series))
	for i, c := range series {
		labels[i] = c.Label
		data[i] = opts.BarData{
			Value:     c.Value,
			ItemStyle: &opts.ItemStyle{Color: cfg.Colors[i%len(cfg.Colors)]},
		}
	}
	bar.SetXAxis(labels).AddSeries("Elixir Cost", data)
	return bar
}

func typeChart(series []viewmodel.Count, cfg ChartConfig) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(globalOpts(cfg, "Card Types", true)...)

	data := make([]opts.PieData, len(series))
	for i, c := range series {
		data[i] = opts.PieData{Name: c.Label, Value: c.Value}
	}
	pie.AddSeries("Card Count", data)
	return pie
}

func metricsChart(series []viewmodel.Count, cfg ChartConfig) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(cfg, "Deck Composition", false)...)

	labels := make([]string, len(series))
	data := make([]opts.BarData, len(series))
	for i, c := range series {
		labels[i] = c.Label
		data[i] = opts.BarData{Value: c.Value}
	}
	bar.SetXAxis(labels).
		AddSeries("Count", data).
		SetSeriesOptions(charts.WithItemStyleOpts(opts.ItemStyle{Color: "rgba(75, 192, 192, 0.7)"}))
	return bar
}
