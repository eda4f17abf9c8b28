package upstream

import (
	"context"
	"fmt"
	"net/url"
)

// MovieItem is one entry of the TMDB movie search response.
type MovieItem struct {
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	PosterPath    string  `json:"poster_path"`
	Popularity    float64 `json:"popularity"`
	ReleaseDate   string  `json:"release_date"`
}

type moviesResponse struct {
	Results []MovieItem `json:"results"`
}

// Movies searches TMDB for films matching a city name.
func (c *Client) Movies(ctx context.Context, query string) ([]MovieItem, error) {
	params := url.Values{}
	params.Set("api_key", c.cfg.MovieAPIKey)
	params.Set("language", "en-US")
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("include_adult", "false")

	var body moviesResponse
	if err := c.getJSON(ctx, "movies", c.MoviesURL+"?"+params.Encode(), nil, &body); err != nil {
		return nil, err
	}
	if len(body.Results) == 0 {
		return nil, fmt.Errorf("movies %q: %w", query, ErrNoData)
	}
	return body.Results, nil
}
