package viewmodel

import (
	"strings"

	"github.com/five82/decklens/internal/royale"
)

// Count is one labelled value of a chart series.
type Count struct {
	Label string
	Value int
}

// Max returns the largest value in series, or zero.
func Max(series []Count) int {
	m := 0
	for _, c := range series {
		if c.Value > m {
			m = c.Value
		}
	}
	return m
}

// Sum totals the values in series.
func Sum(series []Count) int {
	total := 0
	for _, c := range series {
		total += c.Value
	}
	return total
}

// TypeTally counts cards per type. Types appear in order of first
// occurrence.
func TypeTally(cards []CardView) []Count {
	var out []Count
	index := map[string]int{}
	for _, c := range cards {
		label := typeLabel(c.Type)
		if i, ok := index[label]; ok {
			out[i].Value++
			continue
		}
		index[label] = len(out)
		out = append(out, Count{Label: label, Value: 1})
	}
	return out
}

func typeLabel(t royale.CardType) string {
	s := strings.TrimSpace(string(t))
	if s == "" {
		return "Unknown"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// MetricSeries is the five-bar composition chart of an analysis.
func MetricSeries(m royale.Metrics) []Count {
	return []Count{
		{Label: "Air Defense", Value: m.AirTargetingCount},
		{Label: "Splash Damage", Value: m.SplashDamageCount},
		{Label: "Win Conditions", Value: m.WinConditionCount},
		{Label: "Spells", Value: m.LightSpellCount + m.HeavySpellCount},
		{Label: "Tanks", Value: m.TankCount},
	}
}

// ElixirSeries is one bar per card in the given order.
func ElixirSeries(cards []CardView) []Count {
	out := make([]Count, 0, len(cards))
	for _, c := range cards {
		out = append(out, Count{Label: c.Name, Value: c.Elixir})
	}
	return out
}
