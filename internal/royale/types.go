package royale

import "strings"

// Rarity is a card tier.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityChampion  Rarity = "champion"
)

// CardType classifies what a card places on the arena.
type CardType string

const (
	CardTypeTroop    CardType = "troop"
	CardTypeSpell    CardType = "spell"
	CardTypeBuilding CardType = "building"
)

// Severity ranks a deck weakness.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Intensity selects how harsh a generated roast is.
type Intensity string

const (
	IntensityFun     Intensity = "fun"
	IntensitySavage  Intensity = "savage"
	IntensityNuclear Intensity = "nuclear"
)

// Intensities lists roast intensities in escalating order.
var Intensities = []Intensity{IntensityFun, IntensitySavage, IntensityNuclear}

// ParseIntensity maps user input onto a known intensity. Empty input is fun.
func ParseIntensity(value string) (Intensity, bool) {
	v := Intensity(strings.ToLower(strings.TrimSpace(value)))
	if v == "" {
		return IntensityFun, true
	}
	for _, known := range Intensities {
		if v == known {
			return v, true
		}
	}
	return "", false
}

// envelope is the wrapper every backend route responds with.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// IconURLs mirrors the icon map embedded in player card payloads.
type IconURLs struct {
	Medium string `json:"medium"`
}

// PlayerCard is a card as embedded in a player payload (deck, collection,
// favourite and support cards).
type PlayerCard struct {
	ID         int      `json:"id"`
	CardID     int      `json:"card_id"`
	Name       string   `json:"name"`
	Level      int      `json:"level"`
	StarLevel  *int     `json:"starLevel,omitempty"`
	MaxLevel   int      `json:"maxLevel"`
	ElixirCost int      `json:"elixirCost"`
	IconURLs   IconURLs `json:"iconUrls"`
	Rarity     Rarity   `json:"rarity"`
	Type       CardType `json:"card_type"`
	Count      *int     `json:"count,omitempty"`
}

// Player mirrors the /players/{tag} payload.
type Player struct {
	Tag            string `json:"player_tag"`
	Name           string `json:"name"`
	Trophies       int    `json:"trophies"`
	BestTrophies   int    `json:"best_trophies"`
	ExpLevel       int    `json:"exp_level"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	ThreeCrownWins int    `json:"three_crown_wins"`
	BattleCount    int    `json:"battle_count"`
	ArenaName      string `json:"arena_name"`
	ClanName       string `json:"clan_name"`
	ClanTag        string `json:"clan_tag"`
	LastFetched    string `json:"last_fetched"`

	CurrentDeck        []PlayerCard `json:"currentDeck"`
	Cards              []PlayerCard `json:"cards"`
	FavouriteCard      *PlayerCard  `json:"currentFavouriteCard"`
	SupportCards       []PlayerCard `json:"currentDeckSupportCards"`
	ChallengeCardsWon  *int         `json:"challengeCardsWon"`
	TournamentCardsWon *int         `json:"tournamentCardsWon"`
	ClanCardsCollected *int         `json:"clanCardsCollected"`
}

// Card mirrors a catalog entry from /cards.
type Card struct {
	ID             int      `json:"id"`
	CardID         int      `json:"card_id"`
	Name           string   `json:"name"`
	MaxLevel       int      `json:"max_level"`
	IconURL        string   `json:"icon_url"`
	ElixirCost     int      `json:"elixir_cost"`
	Rarity         Rarity   `json:"rarity"`
	Type           CardType `json:"card_type"`
	IsWinCondition bool     `json:"is_win_condition"`
	IsAirTargeting bool     `json:"is_air_targeting"`
	IsSplashDamage bool     `json:"is_splash_damage"`
	IsTank         bool     `json:"is_tank"`
	IsSpell        bool     `json:"is_spell"`
	SpellType      string   `json:"spell_type"`
	UsageCount     int      `json:"usage_count,omitempty"`
}

// DeckCard places a catalog card in a deck slot.
type DeckCard struct {
	ID        int   `json:"id"`
	Card      *Card `json:"card"`
	CardLevel int   `json:"card_level"`
	Position  int   `json:"position"`
}

// Deck is an analysed deck as returned alongside an analysis.
type Deck struct {
	ID            int        `json:"id"`
	PlayerID      int        `json:"player_id"`
	Hash          string     `json:"deck_hash"`
	AvgElixir     float64    `json:"avg_elixir"`
	IsCurrentDeck bool       `json:"is_current_deck"`
	Cards         []DeckCard `json:"cards"`
}

// Metrics are the counters the analyzer computes for a deck.
type Metrics struct {
	AvgElixir         float64 `json:"avg_elixir"`
	AirTargetingCount int     `json:"air_targeting_count"`
	SplashDamageCount int     `json:"splash_damage_count"`
	WinConditionCount int     `json:"win_condition_count"`
	LightSpellCount   int     `json:"light_spell_count"`
	HeavySpellCount   int     `json:"heavy_spell_count"`
	TankCount         int     `json:"tank_count"`
}

// Strength is a positive finding.
type Strength struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Weakness is a negative finding with a severity.
type Weakness struct {
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Suggestion is an improvement proposal. Only some of the card lists are set
// on any given suggestion.
type Suggestion struct {
	Type                    string   `json:"type"`
	Reason                  string   `json:"reason"`
	ConsiderAdding          []string `json:"consider_adding,omitempty"`
	ConsiderRemoving        []string `json:"consider_removing,omitempty"`
	ConsiderReplacing       string   `json:"consider_replacing,omitempty"`
	WithCheaperAlternatives []string `json:"with_cheaper_alternatives,omitempty"`
}

// DeckAnalysis is the analyzer output for one deck.
type DeckAnalysis struct {
	ID            int          `json:"id"`
	DeckID        int          `json:"deck_id"`
	OverallRating string       `json:"overall_rating"`
	Metrics       Metrics      `json:"metrics"`
	Strengths     []Strength   `json:"strengths"`
	Weaknesses    []Weakness   `json:"weaknesses"`
	Suggestions   []Suggestion `json:"suggestions"`
	CreatedAt     string       `json:"created_at"`
}

// AvgElixir returns the analysed average elixir cost.
func (a DeckAnalysis) AvgElixir() float64 {
	return a.Metrics.AvgElixir
}

// AnalysisResult is the /players/{tag}/analyze payload. Any field may be
// absent; callers treat that as a partial result.
type AnalysisResult struct {
	Player   *Player       `json:"player"`
	Deck     *Deck         `json:"deck"`
	Analysis *DeckAnalysis `json:"analysis"`
}

// PlayerPage is a page of players from /players or /players/search.
type PlayerPage struct {
	Players []Player `json:"players"`
	Total   int      `json:"total"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
}

// CardList is the /cards payload.
type CardList struct {
	Cards []Card `json:"cards"`
	Total int    `json:"total"`
}

// CardStatistics is the /cards/statistics payload.
type CardStatistics struct {
	MostUsed []Card `json:"most_used_cards"`
}

// SyncResult reports a /cards/sync run.
type SyncResult struct {
	Synced  int `json:"synced"`
	Updated int `json:"updated"`
	Total   int `json:"total"`
}

// Roast is a generated roast for a player.
type Roast struct {
	Player    string    `json:"player"`
	Roast     string    `json:"roast"`
	Intensity Intensity `json:"intensity"`
}

// User is an authenticated account.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// AuthResponse is returned by /auth/register and /auth/login.
type AuthResponse struct {
	Message      string `json:"message"`
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
