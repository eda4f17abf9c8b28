package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// BusinessItem is one entry of the Yelp business search response.
// Rating is a pointer: unrated businesses omit the field entirely.
type BusinessItem struct {
	Name     string   `json:"name"`
	ImageURL string   `json:"image_url"`
	Price    string   `json:"price"`
	Rating   *float64 `json:"rating"`
	URL      string   `json:"url"`
}

type businessesResponse struct {
	Businesses []BusinessItem `json:"businesses"`
}

// Businesses searches Yelp for businesses around a coordinate pair.
func (c *Client) Businesses(ctx context.Context, lat, lon float64) ([]BusinessItem, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.cfg.YelpAPIKey)

	var body businessesResponse
	if err := c.getJSON(ctx, "yelp", c.YelpURL+"?"+params.Encode(), header, &body); err != nil {
		return nil, err
	}
	if len(body.Businesses) == 0 {
		return nil, fmt.Errorf("yelp: %w", ErrNoData)
	}
	return body.Businesses, nil
}
