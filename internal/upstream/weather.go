package upstream

import (
	"context"
	"fmt"
)

// ForecastDay is one daily entry of the Dark Sky forecast response.
type ForecastDay struct {
	Summary string `json:"summary"`
	Time    int64  `json:"time"`
}

type forecastResponse struct {
	Daily struct {
		Data []ForecastDay `json:"data"`
	} `json:"daily"`
}

// Forecast fetches the daily forecast for a coordinate pair.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) ([]ForecastDay, error) {
	url := fmt.Sprintf("%s/%s/%f,%f", c.WeatherURL, c.cfg.WeatherAPIKey, lat, lon)

	var body forecastResponse
	if err := c.getJSON(ctx, "weather", url, nil, &body); err != nil {
		return nil, err
	}
	if len(body.Daily.Data) == 0 {
		return nil, fmt.Errorf("weather: %w", ErrNoData)
	}
	return body.Daily.Data, nil
}
