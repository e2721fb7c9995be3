package viewmodel

import (
	"testing"

	"github.com/five82/decklens/internal/royale"
)

func intPtr(v int) *int { return &v }

func TestSortByPosition_OrdersAndIsStable(t *testing.T) {
	in := []CardView{
		{Name: "two", Position: 2},
		{Name: "zero", Position: 0},
		{Name: "one-a", Position: 1},
		{Name: "one-b", Position: 1},
	}
	got := SortByPosition(in)
	want := []string{"zero", "one-a", "one-b", "two"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("order[%d] = %q, want %q (got %v)", i, got[i].Name, name, got)
		}
	}
	if in[0].Name != "two" {
		t.Fatalf("SortByPosition mutated its input")
	}
}

func TestElixirBucketBoundaries(t *testing.T) {
	cases := map[int]Bucket{
		0: BucketLow,
		1: BucketLow,
		2: BucketLow,
		3: BucketMedium,
		4: BucketMedium,
		5: BucketHigh,
		9: BucketHigh,
	}
	for cost, want := range cases {
		if got := ElixirBucket(cost); got != want {
			t.Fatalf("ElixirBucket(%d) = %q, want %q", cost, got, want)
		}
	}
	if got := AverageElixirBucket(4.1); got != BucketHigh {
		t.Fatalf("AverageElixirBucket(4.1) = %q, want high", got)
	}
	if got := AverageElixirBucket(3.5); got != BucketMedium {
		t.Fatalf("AverageElixirBucket(3.5) = %q, want medium", got)
	}
}

func TestRarityColor(t *testing.T) {
	cases := map[royale.Rarity]string{
		royale.RarityCommon:    "#A8A8A8",
		royale.RarityRare:      "#FF8C00",
		royale.RarityEpic:      "#9B59B6",
		royale.RarityLegendary: "#FFD700",
		royale.RarityChampion:  "#FF69B4",
		"mythic":               "#A8A8A8",
		"":                     "#A8A8A8",
	}
	for r, want := range cases {
		if got := RarityColor(r); got != want {
			t.Fatalf("RarityColor(%q) = %q, want %q", r, got, want)
		}
	}
}

func TestSeverityColor(t *testing.T) {
	cases := map[royale.Severity]string{
		royale.SeverityHigh:   "#ef4444",
		royale.SeverityMedium: "#f59e0b",
		royale.SeverityLow:    "#10b981",
		"critical":            "#6b7280",
	}
	for s, want := range cases {
		if got := SeverityColor(s); got != want {
			t.Fatalf("SeverityColor(%q) = %q, want %q", s, got, want)
		}
	}
}

func TestSuggestionSections_OnlyAdding(t *testing.T) {
	got := SuggestionSections(royale.Suggestion{ConsiderAdding: []string{"X", "Y"}})
	if len(got) != 1 {
		t.Fatalf("sections = %#v, want exactly one", got)
	}
	if got[0].Title != "Consider Adding" || len(got[0].Entries) != 2 {
		t.Fatalf("section = %#v, want Consider Adding with two entries", got[0])
	}
}

func TestSuggestionSections_AllInOrder(t *testing.T) {
	got := SuggestionSections(royale.Suggestion{
		ConsiderAdding:          []string{"Zap"},
		ConsiderRemoving:        []string{"Golem"},
		ConsiderReplacing:       "Rocket",
		WithCheaperAlternatives: []string{"Log"},
	})
	want := []string{"Consider Adding", "Consider Removing", "Consider Replacing", "With Cheaper Alternatives"}
	if len(got) != len(want) {
		t.Fatalf("sections = %d, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Fatalf("section[%d] = %q, want %q", i, got[i].Title, title)
		}
	}
	if len(SuggestionSections(royale.Suggestion{ConsiderAdding: []string{}})) != 0 {
		t.Fatalf("empty list produced a section")
	}
}

func TestTabs_CountsAndEmptyStates(t *testing.T) {
	tabs := Tabs(royale.DeckAnalysis{
		Strengths:  []royale.Strength{{Title: "Air"}, {Title: "Cycle"}},
		Weaknesses: []royale.Weakness{{Title: "Tank", Severity: royale.SeverityHigh}, {Title: "Misc"}},
	})
	if len(tabs) != 3 {
		t.Fatalf("tabs = %d, want 3", len(tabs))
	}
	if tabs[0].Label() != "Strengths (2)" || tabs[1].Label() != "Weaknesses (2)" || tabs[2].Label() != "Suggestions (0)" {
		t.Fatalf("labels = %q %q %q", tabs[0].Label(), tabs[1].Label(), tabs[2].Label())
	}
	if sev, ok := tabs[1].Items[0].Severity.Get(); !ok || sev != royale.SeverityHigh {
		t.Fatalf("severity = %q,%v, want high", sev, ok)
	}
	if tabs[1].Items[1].Severity.Present() {
		t.Fatalf("blank severity should be absent")
	}
	if tabs[2].Empty == "" {
		t.Fatalf("suggestions tab has no empty-state message")
	}
}

func TestTypeTally_FirstOccurrenceOrder(t *testing.T) {
	cards := []CardView{
		{Type: royale.CardTypeSpell},
		{Type: royale.CardTypeTroop},
		{Type: royale.CardTypeSpell},
		{Type: royale.CardTypeBuilding},
		{Type: royale.CardTypeTroop},
		{Type: royale.CardTypeTroop},
	}
	got := TypeTally(cards)
	want := []Count{{"Spell", 2}, {"Troop", 3}, {"Building", 1}}
	if len(got) != len(want) {
		t.Fatalf("TypeTally = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("TypeTally[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if Sum(got) != len(cards) || Max(got) != 3 {
		t.Fatalf("Sum/Max = %d/%d", Sum(got), Max(got))
	}
}

func TestMetricSeries_CombinesSpells(t *testing.T) {
	got := MetricSeries(royale.Metrics{
		AirTargetingCount: 3,
		SplashDamageCount: 2,
		WinConditionCount: 1,
		LightSpellCount:   1,
		HeavySpellCount:   1,
		TankCount:         0,
	})
	want := []Count{{"Air Defense", 3}, {"Splash Damage", 2}, {"Win Conditions", 1}, {"Spells", 2}, {"Tanks", 0}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MetricSeries[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCurrentDeck_PrefersAnalysedDeck(t *testing.T) {
	player := &royale.Player{CurrentDeck: []royale.PlayerCard{{Name: "Knight"}}}
	deck := &royale.Deck{Cards: []royale.DeckCard{
		{Position: 1, Card: &royale.Card{Name: "Hog Rider", ElixirCost: 4}},
		{Position: 0, Card: &royale.Card{Name: "Zap", ElixirCost: 2}},
		{Position: 2},
	}}
	got := CurrentDeck(player, deck)
	if len(got) != 2 || got[0].Name != "Zap" || got[1].Name != "Hog Rider" {
		t.Fatalf("CurrentDeck = %#v", got)
	}

	got = CurrentDeck(player, nil)
	if len(got) != 1 || got[0].Name != "Knight" {
		t.Fatalf("CurrentDeck fallback = %#v", got)
	}
	if CurrentDeck(nil, nil) != nil {
		t.Fatalf("CurrentDeck(nil, nil) should be nil")
	}
}

func TestFromPlayerCard_Optionals(t *testing.T) {
	v := FromPlayerCard(royale.PlayerCard{Name: "Mega Knight", StarLevel: intPtr(2), Count: intPtr(5), Type: royale.CardTypeTroop})
	if v.StarLevel != 2 || v.Count.Value() != 5 || !v.Count.Present() {
		t.Fatalf("FromPlayerCard = %#v", v)
	}
	if v.Initial() != "M" {
		t.Fatalf("Initial = %q, want M", v.Initial())
	}
	if (CardView{}).Initial() != "?" {
		t.Fatalf("Initial of unnamed card should be ?")
	}
	if FromPlayerCard(royale.PlayerCard{}).Count.Present() {
		t.Fatalf("missing count should be absent")
	}
}

func TestBuildDashboard_PlayerWithoutAnalysis(t *testing.T) {
	player := &royale.Player{
		Tag:         "#2PP",
		Name:        "Kim",
		Wins:        3,
		Losses:      1,
		CurrentDeck: []royale.PlayerCard{{Name: "Knight", ElixirCost: 3}, {Name: "Zap", ElixirCost: 2}},
	}
	d := BuildDashboard("2pp", player, nil, nil)
	if d.Title != "Kim's Dashboard" || d.Tag != "#2PP" {
		t.Fatalf("title/tag = %q/%q", d.Title, d.Tag)
	}
	if d.Analysis.Present() {
		t.Fatalf("analysis present without payload")
	}
	summary, ok := d.Summary.Get()
	if !ok || summary.Name != "Kim" {
		t.Fatalf("summary = %#v,%v", summary, ok)
	}
	if rate := summary.WinRate.Value(); rate != 75 {
		t.Fatalf("win rate = %v, want 75", rate)
	}
	if summary.Clan.Present() || d.Support.Present() || d.Favourite.Present() || d.Stats.Present() {
		t.Fatalf("absent sections resolved as present: %#v", d)
	}
	if d.Deck.Kind != DeckCurrent || len(d.Deck.Cards) != 2 || d.Deck.AvgElixir != 2.5 {
		t.Fatalf("deck = %#v", d.Deck)
	}
	charts, ok := d.Charts.Get()
	if !ok || charts.Metrics.Present() || len(charts.Elixir) != 2 {
		t.Fatalf("charts = %#v,%v", charts, ok)
	}
}

func TestBuildDashboard_CollectionAndNotice(t *testing.T) {
	player := &royale.Player{Cards: []royale.PlayerCard{{Name: "Archers"}}}
	d := BuildDashboard("X", player, nil, nil)
	if d.Deck.Kind != DeckCollection || len(d.Deck.Cards) != 1 || d.Charts.Present() {
		t.Fatalf("deck = %#v", d.Deck)
	}
	if d.Title != "#X's Dashboard" {
		t.Fatalf("title = %q", d.Title)
	}

	d = BuildDashboard("X", nil, nil, nil)
	if d.Deck.Kind != DeckUnavailable || d.Deck.Notice != DeckUnavailableNotice || d.Summary.Present() {
		t.Fatalf("empty dashboard = %#v", d)
	}
}

func TestBuildDashboard_FullPayload(t *testing.T) {
	player := &royale.Player{
		Name:               "Kim",
		ClanName:           "Royals",
		SupportCards:       []royale.PlayerCard{{Name: "Tower Princess"}},
		FavouriteCard:      &royale.PlayerCard{Name: "Hog Rider"},
		ChallengeCardsWon:  intPtr(10),
		TournamentCardsWon: intPtr(0),
	}
	deck := &royale.Deck{AvgElixir: 3.1, Cards: []royale.DeckCard{{Card: &royale.Card{Name: "Hog Rider", ElixirCost: 4}}}}
	analysis := &royale.DeckAnalysis{OverallRating: "good", Metrics: royale.Metrics{AvgElixir: 3.1, TankCount: 1}}

	d := BuildDashboard("2PP", player, deck, analysis)
	if !d.Support.Present() || d.Favourite.Value().Name != "Hog Rider" {
		t.Fatalf("support/favourite = %#v / %#v", d.Support, d.Favourite)
	}
	stats, ok := d.Stats.Get()
	if !ok || stats.ChallengeCardsWon.Value() != 10 || !stats.TournamentCardsWon.Present() || stats.ClanCardsCollected.Present() {
		t.Fatalf("stats = %#v,%v", stats, ok)
	}
	a, ok := d.Analysis.Get()
	if !ok || a.Rating != "good" || a.Bucket != BucketMedium || len(a.Tabs) != 3 {
		t.Fatalf("analysis = %#v,%v", a, ok)
	}
	if d.Deck.AvgElixir != 3.1 {
		t.Fatalf("deck avg = %v, want 3.1", d.Deck.AvgElixir)
	}
	if m := d.Charts.Value().Metrics; !m.Present() || len(m.Value()) != 5 {
		t.Fatalf("metrics series = %#v", m)
	}
}
