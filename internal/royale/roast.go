package royale

import (
	"context"
	"net/url"
)

// GenerateRoast asks the backend for a roast of the player's profile. An
// empty intensity means fun.
func (c *Client) GenerateRoast(ctx context.Context, tag string, intensity Intensity) (*Roast, error) {
	t, err := requireTag(tag)
	if err != nil {
		return nil, err
	}
	level, ok := ParseIntensity(string(intensity))
	if !ok {
		return nil, newValidationError("intensity", "unknown roast intensity %q", intensity)
	}
	rel := &url.URL{
		Path:     "/roast/" + url.PathEscape(t),
		RawQuery: url.Values{"intensity": {string(level)}}.Encode(),
	}
	return getData[Roast](ctx, c, rel.String(), RequestConfig{})
}
