package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// EventItem is one entry of the Eventbrite search response. Name and
// Start are pointers because the provider nests them and may omit them.
type EventItem struct {
	URL  string `json:"url"`
	Name *struct {
		Text string `json:"text"`
	} `json:"name"`
	Summary string `json:"summary"`
	Start   *struct {
		Local string `json:"local"`
	} `json:"start"`
}

type eventsResponse struct {
	Events []EventItem `json:"events"`
}

// Events searches for upcoming events around a coordinate pair.
func (c *Client) Events(ctx context.Context, lat, lon float64) ([]EventItem, error) {
	params := url.Values{}
	params.Set("token", c.cfg.EventbriteAPIKey)
	params.Set("location.latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("location.longitude", strconv.FormatFloat(lon, 'f', -1, 64))

	var body eventsResponse
	if err := c.getJSON(ctx, "events", c.EventsURL+"?"+params.Encode(), nil, &body); err != nil {
		return nil, err
	}
	if len(body.Events) == 0 {
		return nil, fmt.Errorf("events: %w", ErrNoData)
	}
	return body.Events, nil
}
