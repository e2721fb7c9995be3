package viewmodel

import (
	"github.com/five82/decklens/internal/royale"
)

// Summary is the player header block.
type Summary struct {
	Tag            string
	Name           string
	Trophies       int
	BestTrophies   int
	ExpLevel       int
	Wins           int
	Losses         int
	ThreeCrownWins int
	BattleCount    int
	Arena          string
	Clan           Optional[string]
	WinRate        Optional[float64]
}

// DeckKind says what the deck section shows.
type DeckKind int

const (
	DeckCurrent DeckKind = iota
	DeckCollection
	DeckUnavailable
)

// Deck notices.
const (
	DeckUnavailableNotice = "Deck data not currently available for this player"
	CollectionNotice      = "Since the current deck isn't available, here's the player's complete card collection"
)

// DeckSection is the deck grid, the collection fallback, or a notice.
type DeckSection struct {
	Kind      DeckKind
	Title     string
	Notice    string
	Cards     []CardView
	AvgElixir float64
	Bucket    Bucket
}

// CardStats are the optional card counters of a player.
type CardStats struct {
	ChallengeCardsWon  Optional[int]
	TournamentCardsWon Optional[int]
	ClanCardsCollected Optional[int]
}

// AnalysisView is the analysis block of the dashboard.
type AnalysisView struct {
	Rating    string
	AvgElixir float64
	Bucket    Bucket
	Tabs      []Tab
}

// ChartData carries the datasets plotted for a deck.
type ChartData struct {
	Elixir  []Count
	Types   []Count
	Metrics Optional[[]Count]
}

// Dashboard is every dashboard section resolved once from the payloads.
type Dashboard struct {
	Tag       string
	Title     string
	Summary   Optional[Summary]
	Deck      DeckSection
	Support   Optional[[]CardView]
	Favourite Optional[CardView]
	Stats     Optional[CardStats]
	Analysis  Optional[AnalysisView]
	Charts    Optional[ChartData]
}

// NoAnalysisMessage is shown in place of an absent analysis.
const NoAnalysisMessage = "No analysis available for this player yet."

// BuildDashboard resolves the dashboard for tag. Any of player, deck and
// analysis may be nil.
func BuildDashboard(tag string, player *royale.Player, deck *royale.Deck, analysis *royale.DeckAnalysis) Dashboard {
	d := Dashboard{Tag: royale.DisplayTag(tag)}
	if player != nil && player.Name != "" {
		d.Title = player.Name + "'s Dashboard"
	} else {
		d.Title = d.Tag + "'s Dashboard"
	}

	if player != nil {
		d.Summary = Some(buildSummary(player))
		if support := FromPlayerCards(player.SupportCards); len(support) > 0 {
			d.Support = Some(support)
		}
		if player.FavouriteCard != nil {
			d.Favourite = Some(FromPlayerCard(*player.FavouriteCard))
		}
		d.Stats = buildStats(player)
	}

	d.Deck = buildDeckSection(player, deck, analysis)

	if analysis != nil {
		avg := analysis.AvgElixir()
		if avg == 0 && deck != nil {
			avg = deck.AvgElixir
		}
		d.Analysis = Some(AnalysisView{
			Rating:    analysis.OverallRating,
			AvgElixir: avg,
			Bucket:    AverageElixirBucket(avg),
			Tabs:      Tabs(*analysis),
		})
	}

	if d.Deck.Kind == DeckCurrent {
		charts := ChartData{
			Elixir: ElixirSeries(d.Deck.Cards),
			Types:  TypeTally(d.Deck.Cards),
		}
		if analysis != nil {
			charts.Metrics = Some(MetricSeries(analysis.Metrics))
		}
		d.Charts = Some(charts)
	}
	return d
}

func buildSummary(p *royale.Player) Summary {
	s := Summary{
		Tag:            p.Tag,
		Name:           p.Name,
		Trophies:       p.Trophies,
		BestTrophies:   p.BestTrophies,
		ExpLevel:       p.ExpLevel,
		Wins:           p.Wins,
		Losses:         p.Losses,
		ThreeCrownWins: p.ThreeCrownWins,
		BattleCount:    p.BattleCount,
		Arena:          p.ArenaName,
	}
	if p.ClanName != "" {
		s.Clan = Some(p.ClanName)
	}
	if games := p.Wins + p.Losses; games > 0 {
		s.WinRate = Some(float64(p.Wins) / float64(games) * 100)
	}
	return s
}

func buildStats(p *royale.Player) Optional[CardStats] {
	positive := func(v *int) bool { return v != nil && *v > 0 }
	if !positive(p.ChallengeCardsWon) && !positive(p.TournamentCardsWon) && !positive(p.ClanCardsCollected) {
		return None[CardStats]()
	}
	return Some(CardStats{
		ChallengeCardsWon:  FromPtr(p.ChallengeCardsWon),
		TournamentCardsWon: FromPtr(p.TournamentCardsWon),
		ClanCardsCollected: FromPtr(p.ClanCardsCollected),
	})
}

func buildDeckSection(player *royale.Player, deck *royale.Deck, analysis *royale.DeckAnalysis) DeckSection {
	if cards := CurrentDeck(player, deck); len(cards) > 0 {
		avg := AverageElixir(cards)
		switch {
		case analysis != nil && analysis.AvgElixir() > 0:
			avg = analysis.AvgElixir()
		case deck != nil && deck.AvgElixir > 0:
			avg = deck.AvgElixir
		}
		return DeckSection{
			Kind:      DeckCurrent,
			Title:     "Current Deck",
			Cards:     cards,
			AvgElixir: avg,
			Bucket:    AverageElixirBucket(avg),
		}
	}
	if player != nil && len(player.Cards) > 0 {
		return DeckSection{
			Kind:   DeckCollection,
			Title:  "All Cards Collection",
			Notice: CollectionNotice,
			Cards:  FromPlayerCards(player.Cards),
		}
	}
	return DeckSection{Kind: DeckUnavailable, Title: "Current Deck", Notice: DeckUnavailableNotice}
}
