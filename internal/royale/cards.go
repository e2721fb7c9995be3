package royale

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CardFilter narrows the card catalog. Empty fields are not sent.
type CardFilter struct {
	Type   CardType
	Rarity Rarity
}

// ListCards returns the card catalog.
func (c *Client) ListCards(ctx context.Context, filter CardFilter) (*CardList, error) {
	values := url.Values{}
	if filter.Type != "" {
		values.Set("type", string(filter.Type))
	}
	if filter.Rarity != "" {
		values.Set("rarity", string(filter.Rarity))
	}
	rel := &url.URL{Path: "/cards", RawQuery: values.Encode()}
	return getData[CardList](ctx, c, rel.String(), RequestConfig{})
}

// GetCard fetches one catalog card by its database id.
func (c *Client) GetCard(ctx context.Context, id int) (*Card, error) {
	if id <= 0 {
		return nil, newValidationError("id", "card id must be positive, got %d", id)
	}
	return getData[Card](ctx, c, "/cards/"+strconv.Itoa(id), RequestConfig{})
}

// CardStatistics returns the most used cards across analysed decks.
func (c *Client) CardStatistics(ctx context.Context) (*CardStatistics, error) {
	return getData[CardStatistics](ctx, c, "/cards/statistics", RequestConfig{})
}

// SyncCards asks the backend to refresh its catalog from the game API.
func (c *Client) SyncCards(ctx context.Context) (*SyncResult, error) {
	return getData[SyncResult](ctx, c, "/cards/sync", RequestConfig{Method: http.MethodPost})
}
