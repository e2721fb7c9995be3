package viewmodel

import "github.com/five82/decklens/internal/royale"

// Bucket classifies an elixir cost for colouring.
type Bucket string

const (
	BucketLow    Bucket = "low"
	BucketMedium Bucket = "medium"
	BucketHigh   Bucket = "high"
)

// ElixirBucket maps a cost to low (<=2), medium (<=4) or high.
func ElixirBucket(cost int) Bucket {
	return AverageElixirBucket(float64(cost))
}

// AverageElixirBucket applies the ElixirBucket thresholds to an average.
func AverageElixirBucket(avg float64) Bucket {
	switch {
	case avg <= 2:
		return BucketLow
	case avg <= 4:
		return BucketMedium
	default:
		return BucketHigh
	}
}

var rarityColors = map[royale.Rarity]string{
	royale.RarityCommon:    "#A8A8A8",
	royale.RarityRare:      "#FF8C00",
	royale.RarityEpic:      "#9B59B6",
	royale.RarityLegendary: "#FFD700",
	royale.RarityChampion:  "#FF69B4",
}

// RarityColor returns the badge colour for r. Unknown rarities use the
// common colour.
func RarityColor(r royale.Rarity) string {
	if c, ok := rarityColors[r]; ok {
		return c
	}
	return rarityColors[royale.RarityCommon]
}

const severityFallback = "#6b7280"

var severityColors = map[royale.Severity]string{
	royale.SeverityHigh:   "#ef4444",
	royale.SeverityMedium: "#f59e0b",
	royale.SeverityLow:    "#10b981",
}

// SeverityColor returns the badge colour for a weakness severity.
func SeverityColor(s royale.Severity) string {
	if c, ok := severityColors[s]; ok {
		return c
	}
	return severityFallback
}
