package store

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rgvh/city-explorer-api/internal/category"
	"github.com/rgvh/city-explorer-api/internal/database"
	"github.com/rgvh/city-explorer-api/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	db := &database.DB{DB: gdb}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return New(db)
}

func TestLocationRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	loc := &models.Location{
		SearchQuery:      "Seattle, WA",
		FormattedAddress: "Seattle, WA, USA",
		Latitude:         47.6062,
		Longitude:        -122.3321,
	}
	if err := s.InsertLocation(ctx, loc); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if loc.ID == 0 {
		t.Fatal("insert did not assign an id")
	}

	got, err := s.FindLocation(ctx, "Seattle, WA")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil {
		t.Fatal("inserted location not found")
	}
	if got.FormattedAddress != loc.FormattedAddress ||
		got.Latitude != loc.Latitude || got.Longitude != loc.Longitude {
		t.Errorf("round trip mismatch: %+v vs %+v", got, loc)
	}
}

func TestFindLocationAbsent(t *testing.T) {
	s := testStore(t)

	got, err := s.FindLocation(context.Background(), "Atlantis")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for absent location, got %+v", got)
	}
}

func TestInsertLocationRace(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	first := &models.Location{SearchQuery: "Portland, OR", FormattedAddress: "Portland, OR, USA"}
	if err := s.InsertLocation(ctx, first); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	// A concurrent request losing the insert race should end up holding
	// the winner's row, not an error.
	loser := &models.Location{SearchQuery: "Portland, OR", FormattedAddress: "Portland, OR, USA"}
	if err := s.InsertLocation(ctx, loser); err != nil {
		t.Fatalf("conflicting insert should be tolerated: %v", err)
	}
	if loser.ID != first.ID {
		t.Errorf("loser id = %d, want winner id %d", loser.ID, first.ID)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := &models.Weather{Forecast: "Light rain", Time: "Sat Jun 01 2024"}
	rec.Stamp(7, now)

	if err := s.InsertWeather(ctx, rec); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := s.FindWeather(ctx, 7)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("found %d records, want 1", len(got))
	}
	if got[0].Forecast != "Light rain" || got[0].Time != "Sat Jun 01 2024" {
		t.Errorf("round trip mismatch: %+v", got[0])
	}
	if got[0].LocationID != 7 {
		t.Errorf("location_id = %d, want 7", got[0].LocationID)
	}
	if !got[0].Created().Equal(now) {
		t.Errorf("created_at = %v, want %v", got[0].Created(), now)
	}
}

func TestFindRecordsScopedToLocation(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	for _, locID := range []uint{1, 1, 2} {
		rec := &models.Event{Name: "Street Fair", Link: "https://example.com"}
		rec.Stamp(locID, now)
		if err := s.InsertEvent(ctx, rec); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	got, err := s.FindEvents(ctx, 1)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("found %d events for location 1, want 2", len(got))
	}
}

func TestDeleteFor(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	w := &models.Weather{Forecast: "Sunny"}
	w.Stamp(3, now)
	if err := s.InsertWeather(ctx, w); err != nil {
		t.Fatalf("insert weather: %v", err)
	}

	// A sibling category for the same location must survive the delete.
	tr := &models.Trail{Name: "Wildwood"}
	tr.Stamp(3, now)
	if err := s.InsertTrail(ctx, tr); err != nil {
		t.Fatalf("insert trail: %v", err)
	}

	// Same category, other location, must survive too.
	other := &models.Weather{Forecast: "Fog"}
	other.Stamp(4, now)
	if err := s.InsertWeather(ctx, other); err != nil {
		t.Fatalf("insert other weather: %v", err)
	}

	if err := s.DeleteFor(ctx, category.Weather, 3); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if got, _ := s.FindWeather(ctx, 3); len(got) != 0 {
		t.Errorf("weather for location 3 not deleted: %d rows", len(got))
	}
	if got, _ := s.FindWeather(ctx, 4); len(got) != 1 {
		t.Errorf("weather for location 4 should survive, got %d rows", len(got))
	}
	if got, _ := s.FindTrails(ctx, 3); len(got) != 1 {
		t.Errorf("trails for location 3 should survive, got %d rows", len(got))
	}
}
