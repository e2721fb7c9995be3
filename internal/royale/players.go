package royale

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// GetPlayer fetches a player. forceRefresh asks the backend to bypass its
// copy and re-read the game API.
func (c *Client) GetPlayer(ctx context.Context, tag string, forceRefresh bool) (*Player, error) {
	t, err := requireTag(tag)
	if err != nil {
		return nil, err
	}
	rel := &url.URL{Path: "/players/" + url.PathEscape(t)}
	if forceRefresh {
		rel.RawQuery = url.Values{"refresh": {"true"}}.Encode()
	}
	return getData[Player](ctx, c, rel.String(), RequestConfig{})
}

// AnalyzeDeck fetches the analysis of the player's current deck. A response
// without a data object is reported as an error; missing player, deck or
// analysis fields inside it are not.
func (c *Client) AnalyzeDeck(ctx context.Context, tag string) (*AnalysisResult, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	t, err := requireTag(tag)
	if err != nil {
		return nil, err
	}
	endpoint := "/players/" + url.PathEscape(t) + "/analyze"
	var payload envelope[AnalysisResult]
	if err := c.Do(ctx, endpoint, RequestConfig{}, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		err := &RequestError{Method: "GET", Path: endpoint, Status: 200, Message: "no analysis data returned"}
		c.logger.Warn().Str("tag", t).Msg("analysis response carried no data")
		return nil, err
	}
	return payload.Data, nil
}

// ListPlayers returns one page of known players. A non-positive limit uses
// the default page size and a negative offset starts at zero.
func (c *Client) ListPlayers(ctx context.Context, limit, offset int) (*PlayerPage, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	values := url.Values{}
	values.Set("limit", strconv.Itoa(limit))
	values.Set("offset", strconv.Itoa(offset))
	rel := &url.URL{Path: "/players", RawQuery: values.Encode()}
	page, err := getData[PlayerPage](ctx, c, rel.String(), RequestConfig{})
	if err != nil {
		return nil, err
	}
	if page.Limit == 0 {
		page.Limit = limit
		page.Offset = offset
	}
	return page, nil
}

// SearchPlayers matches players by tag or name.
func (c *Client) SearchPlayers(ctx context.Context, query string) (*PlayerPage, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, newValidationError("query", "search query is required")
	}
	rel := &url.URL{Path: "/players/search", RawQuery: url.Values{"q": {q}}.Encode()}
	return getData[PlayerPage](ctx, c, rel.String(), RequestConfig{})
}
