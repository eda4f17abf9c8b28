// Package normalize maps decoded provider payloads into storable
// records. Every function here is pure: no I/O, no clock, no store.
// Missing optional fields collapse to documented defaults; only a
// missing primary field (a name, a title, a geometry) is an error.
package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rgvh/city-explorer-api/internal/models"
	"github.com/rgvh/city-explorer-api/internal/upstream"
)

// dayFormat matches the original API contract: a 15-character day
// string such as "Tue Jan 01 2019".
const dayFormat = "Mon Jan 02 2006"

// posterBase prefixes TMDB poster paths into full image URLs.
const posterBase = "https://image.tmdb.org/t/p/original"

// overviewMax caps movie overviews to the column size of the original
// schema.
const overviewMax = 750

// missingField wraps upstream.ErrMalformed with the field that made
// the payload unusable.
func missingField(provider, field string) error {
	return fmt.Errorf("%s: missing %s: %w", provider, field, upstream.ErrMalformed)
}

// IsMalformed reports whether err came from an unmappable payload.
func IsMalformed(err error) bool {
	return errors.Is(err, upstream.ErrMalformed)
}

// Location builds a location record from the search string and the
// provider's best geocode match.
func Location(query string, res *upstream.GeocodeResult) (models.Location, error) {
	if res == nil || res.FormattedAddress == "" {
		return models.Location{}, missingField("geocode", "formatted_address")
	}
	if res.Geometry == nil {
		return models.Location{}, missingField("geocode", "geometry")
	}
	return models.Location{
		SearchQuery:      query,
		FormattedAddress: res.FormattedAddress,
		Latitude:         res.Geometry.Location.Lat,
		Longitude:        res.Geometry.Location.Lng,
	}, nil
}

// Weather builds one forecast record from a daily forecast entry.
func Weather(day upstream.ForecastDay) (models.Weather, error) {
	if day.Summary == "" {
		return models.Weather{}, missingField("weather", "summary")
	}
	return models.Weather{
		Forecast: day.Summary,
		Time:     time.Unix(day.Time, 0).UTC().Format(dayFormat),
	}, nil
}

// Event builds one event record. The event date falls back to an empty
// string when the provider's start time is absent or unparseable.
func Event(item upstream.EventItem) (models.Event, error) {
	if item.Name == nil || item.Name.Text == "" {
		return models.Event{}, missingField("events", "name")
	}

	var eventDate string
	if item.Start != nil && item.Start.Local != "" {
		if t, err := time.Parse("2006-01-02T15:04:05", item.Start.Local); err == nil {
			eventDate = t.Format(dayFormat)
		} else if t, err := time.Parse("2006-01-02", item.Start.Local); err == nil {
			eventDate = t.Format(dayFormat)
		}
	}

	return models.Event{
		Link:      item.URL,
		Name:      item.Name.Text,
		EventDate: eventDate,
		Summary:   item.Summary,
	}, nil
}

// Movie builds one movie record. Overviews are clipped to the stored
// column size; a missing poster path yields an empty image URL.
func Movie(item upstream.MovieItem) (models.Movie, error) {
	if item.OriginalTitle == "" {
		return models.Movie{}, missingField("movies", "original_title")
	}

	overview := item.Overview
	if runes := []rune(overview); len(runes) > overviewMax {
		overview = string(runes[:overviewMax])
	}

	var imageURL string
	if item.PosterPath != "" {
		imageURL = posterBase + item.PosterPath
	}

	return models.Movie{
		Title:        item.OriginalTitle,
		Overview:     overview,
		AverageVotes: item.VoteAverage,
		TotalVotes:   item.VoteCount,
		ImageURL:     imageURL,
		Popularity:   item.Popularity,
		ReleasedOn:   item.ReleaseDate,
	}, nil
}

// Review builds one business-review record. An absent rating stays nil
// and serializes as null.
func Review(item upstream.BusinessItem) (models.Review, error) {
	if item.Name == "" {
		return models.Review{}, missingField("yelp", "name")
	}
	return models.Review{
		Name:     item.Name,
		ImageURL: item.ImageURL,
		Price:    item.Price,
		Rating:   item.Rating,
		URL:      item.URL,
	}, nil
}

// Trail builds one trail record. The provider reports the last
// condition check as a single "date time" string; both halves default
// to empty when absent.
func Trail(item upstream.TrailItem) (models.Trail, error) {
	if item.Name == "" {
		return models.Trail{}, missingField("trails", "name")
	}

	var condDate, condTime string
	if item.ConditionDate != "" {
		parts := strings.SplitN(item.ConditionDate, " ", 2)
		condDate = parts[0]
		if len(parts) > 1 {
			condTime = parts[1]
		}
	}

	return models.Trail{
		Name:          item.Name,
		Location:      item.Location,
		Length:        item.Length,
		Stars:         item.Stars,
		StarVotes:     item.StarVotes,
		Summary:       item.Summary,
		TrailURL:      item.URL,
		Conditions:    item.ConditionDetails,
		ConditionDate: condDate,
		ConditionTime: condTime,
	}, nil
}
