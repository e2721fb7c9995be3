package viewmodel

import (
	"sort"

	"github.com/five82/decklens/internal/royale"
)

// CardView is the render shape shared by player cards and analysed deck
// cards.
type CardView struct {
	Name      string
	IconURL   string
	Elixir    int
	Rarity    royale.Rarity
	Type      royale.CardType
	Level     int
	MaxLevel  int
	StarLevel int
	Count     Optional[int]
	Position  int

	WinCondition bool
	AirTargeting bool
	SplashDamage bool
	Tank         bool
	Spell        bool
}

// Initial returns the glyph shown on the placeholder tile.
func (c CardView) Initial() string {
	for _, r := range c.Name {
		return string(r)
	}
	return "?"
}

// FromPlayerCard converts one player payload card. Position is left at zero.
func FromPlayerCard(pc royale.PlayerCard) CardView {
	v := CardView{
		Name:     pc.Name,
		IconURL:  pc.IconURLs.Medium,
		Elixir:   pc.ElixirCost,
		Rarity:   pc.Rarity,
		Type:     pc.Type,
		Level:    pc.Level,
		MaxLevel: pc.MaxLevel,
		Spell:    pc.Type == royale.CardTypeSpell,
	}
	if pc.StarLevel != nil {
		v.StarLevel = *pc.StarLevel
	}
	if pc.Count != nil {
		v.Count = Some(*pc.Count)
	}
	return v
}

// FromPlayerCards converts player payload cards, numbering positions in
// payload order.
func FromPlayerCards(cards []royale.PlayerCard) []CardView {
	if len(cards) == 0 {
		return nil
	}
	out := make([]CardView, 0, len(cards))
	for i, pc := range cards {
		v := FromPlayerCard(pc)
		v.Position = i
		out = append(out, v)
	}
	return out
}

// FromDeckCards converts analysed deck cards. Slots without a card are
// skipped.
func FromDeckCards(cards []royale.DeckCard) []CardView {
	out := make([]CardView, 0, len(cards))
	for _, dc := range cards {
		if dc.Card == nil {
			continue
		}
		c := dc.Card
		out = append(out, CardView{
			Name:         c.Name,
			IconURL:      c.IconURL,
			Elixir:       c.ElixirCost,
			Rarity:       c.Rarity,
			Type:         c.Type,
			Level:        dc.CardLevel,
			MaxLevel:     c.MaxLevel,
			Position:     dc.Position,
			WinCondition: c.IsWinCondition,
			AirTargeting: c.IsAirTargeting,
			SplashDamage: c.IsSplashDamage,
			Tank:         c.IsTank,
			Spell:        c.IsSpell,
		})
	}
	return out
}

// FromCatalog converts catalog cards for the card browser.
func FromCatalog(cards []royale.Card) []CardView {
	out := make([]CardView, 0, len(cards))
	for i, c := range cards {
		v := CardView{
			Name:         c.Name,
			IconURL:      c.IconURL,
			Elixir:       c.ElixirCost,
			Rarity:       c.Rarity,
			Type:         c.Type,
			MaxLevel:     c.MaxLevel,
			Position:     i,
			WinCondition: c.IsWinCondition,
			AirTargeting: c.IsAirTargeting,
			SplashDamage: c.IsSplashDamage,
			Tank:         c.IsTank,
			Spell:        c.IsSpell,
		}
		if c.UsageCount > 0 {
			v.Count = Some(c.UsageCount)
		}
		out = append(out, v)
	}
	return out
}

// SortByPosition returns a copy ordered by ascending Position. Equal
// positions keep their input order.
func SortByPosition(cards []CardView) []CardView {
	out := append([]CardView(nil), cards...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// CurrentDeck prefers the analysed deck and falls back to the deck embedded
// in the player payload. The result is in position order.
func CurrentDeck(player *royale.Player, deck *royale.Deck) []CardView {
	if deck != nil {
		if cards := FromDeckCards(deck.Cards); len(cards) > 0 {
			return SortByPosition(cards)
		}
	}
	if player != nil {
		return FromPlayerCards(player.CurrentDeck)
	}
	return nil
}

// AverageElixir is the mean cost of cards, or zero for an empty slice.
func AverageElixir(cards []CardView) float64 {
	if len(cards) == 0 {
		return 0
	}
	total := 0
	for _, c := range cards {
		total += c.Elixir
	}
	return float64(total) / float64(len(cards))
}
