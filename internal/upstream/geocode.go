package upstream

import (
	"context"
	"fmt"
	"net/url"
)

// GeocodeResult is one entry of the Google Geocoding API response.
// Geometry is a pointer so a missing geometry block is distinguishable
// from coordinates at 0,0.
type GeocodeResult struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         *struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

type geocodeResponse struct {
	Results []GeocodeResult `json:"results"`
}

// Geocode resolves a free-text place string to the provider's best
// match. Returns ErrNoData when the provider finds nothing.
func (c *Client) Geocode(ctx context.Context, query string) (*GeocodeResult, error) {
	params := url.Values{}
	params.Set("address", query)
	params.Set("key", c.cfg.GeocodeAPIKey)

	var body geocodeResponse
	if err := c.getJSON(ctx, "geocode", c.GeocodeURL+"?"+params.Encode(), nil, &body); err != nil {
		return nil, err
	}
	if len(body.Results) == 0 {
		return nil, fmt.Errorf("geocode %q: %w", query, ErrNoData)
	}
	return &body.Results[0], nil
}
