package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/rgvh/city-explorer-api/internal/models"
	"github.com/rgvh/city-explorer-api/internal/upstream"
)

type fakeResolver struct {
	loc     *models.Location
	weather []models.Weather
	movies  []models.Movie
	err     error
}

func (f *fakeResolver) Location(context.Context, string) (*models.Location, error) {
	return f.loc, f.err
}

func (f *fakeResolver) Weather(context.Context, *models.Location) ([]models.Weather, error) {
	return f.weather, f.err
}

func (f *fakeResolver) Events(context.Context, *models.Location) ([]models.Event, error) {
	return nil, f.err
}

func (f *fakeResolver) Movies(context.Context, *models.Location) ([]models.Movie, error) {
	return f.movies, f.err
}

func (f *fakeResolver) Reviews(context.Context, *models.Location) ([]models.Review, error) {
	return nil, f.err
}

func (f *fakeResolver) Trails(context.Context, *models.Location) ([]models.Trail, error) {
	return nil, f.err
}

func testApp(r PlaceResolver) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	SetupRoutes(app, r)
	return app
}

func TestGetLocation(t *testing.T) {
	app := testApp(&fakeResolver{loc: &models.Location{
		SearchQuery:      "Seattle, WA",
		FormattedAddress: "Seattle, WA, USA",
		Latitude:         47.6062,
		Longitude:        -122.3321,
		ID:               3,
	}})

	resp, err := app.Test(httptest.NewRequest("GET", "/location?data=Seattle%2C+WA", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got models.Location
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 3 || got.FormattedAddress != "Seattle, WA, USA" {
		t.Errorf("unexpected body %+v", got)
	}
}

func TestGetLocationMissingParam(t *testing.T) {
	app := testApp(&fakeResolver{})

	resp, err := app.Test(httptest.NewRequest("GET", "/location", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetMoviesNoDataIsEmptyArray(t *testing.T) {
	app := testApp(&fakeResolver{err: fmt.Errorf("movies: %w", upstream.ErrNoData)})

	resp, err := app.Test(httptest.NewRequest("GET", "/movies?data.id=1&data.formatted_address=Nowhere", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200 for empty provider result", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if strings.TrimSpace(string(body)) != "[]" {
		t.Errorf("body = %q, want empty array", body)
	}
}

func TestGetWeatherUpstreamFailureIsGeneric500(t *testing.T) {
	app := testApp(&fakeResolver{err: fmt.Errorf("weather: connection reset by peer: %w", upstream.ErrUnavailable)})

	resp, err := app.Test(httptest.NewRequest("GET", "/weather?data.id=1&data.latitude=47.6&data.longitude=-122.3", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}

	// Internal detail must not leak into the body.
	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(body), "connection reset") {
		t.Errorf("response leaks internal detail: %s", body)
	}
	if !strings.Contains(string(body), "Sorry, something went wrong") {
		t.Errorf("missing generic message: %s", body)
	}
}

func TestGetWeatherMissingID(t *testing.T) {
	app := testApp(&fakeResolver{})

	resp, err := app.Test(httptest.NewRequest("GET", "/weather?data.latitude=47.6&data.longitude=-122.3", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetWeatherSuccess(t *testing.T) {
	rec := models.Weather{Forecast: "Sunny", Time: "Sat Jun 01 2024"}
	rec.LocationID = 1
	app := testApp(&fakeResolver{weather: []models.Weather{rec}})

	resp, err := app.Test(httptest.NewRequest("GET", "/weather?data.id=1&data.latitude=47.6&data.longitude=-122.3", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got []models.Weather
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Forecast != "Sunny" || got[0].LocationID != 1 {
		t.Errorf("unexpected body %+v", got)
	}
}
