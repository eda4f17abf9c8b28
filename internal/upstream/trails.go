package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// TrailItem is one entry of the Hiking Project trail response.
type TrailItem struct {
	Name             string  `json:"name"`
	Location         string  `json:"location"`
	Length           float64 `json:"length"`
	Stars            float64 `json:"stars"`
	StarVotes        int     `json:"starVotes"`
	Summary          string  `json:"summary"`
	URL              string  `json:"url"`
	ConditionDetails string  `json:"conditionDetails"`
	ConditionDate    string  `json:"conditionDate"`
}

type trailsResponse struct {
	Trails []TrailItem `json:"trails"`
}

// Trails fetches hiking trails around a coordinate pair.
func (c *Client) Trails(ctx context.Context, lat, lon float64) ([]TrailItem, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("key", c.cfg.TrailAPIKey)

	var body trailsResponse
	if err := c.getJSON(ctx, "trails", c.TrailsURL+"?"+params.Encode(), nil, &body); err != nil {
		return nil, err
	}
	if len(body.Trails) == 0 {
		return nil, fmt.Errorf("trails: %w", ErrNoData)
	}
	return body.Trails, nil
}
