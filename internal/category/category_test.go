package category

import (
	"testing"
	"time"
)

func TestTTLTable(t *testing.T) {
	cases := []struct {
		cat  Category
		want time.Duration
	}{
		{Weather, 15 * time.Second},
		{Events, 6 * time.Hour},
		{Movies, 30 * 24 * time.Hour},
		{Reviews, 24 * time.Hour},
		{Trails, 7 * 24 * time.Hour},
		{Location, 0},
	}

	for _, tc := range cases {
		if got := tc.cat.TTL(); got != tc.want {
			t.Errorf("%s: TTL = %v, want %v", tc.cat, got, tc.want)
		}
	}
}

func TestFreshBoundary(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// Age exactly equal to the TTL is still fresh.
	atTTL := now.Add(-15 * time.Second)
	if !Weather.Fresh(atTTL, now) {
		t.Error("age == TTL should be fresh")
	}

	// One nanosecond past the TTL is stale.
	pastTTL := now.Add(-15*time.Second - time.Nanosecond)
	if Weather.Fresh(pastTTL, now) {
		t.Error("age > TTL should be stale")
	}

	if !Weather.Fresh(now.Add(-5*time.Second), now) {
		t.Error("young data should be fresh")
	}
	if Weather.Fresh(now.Add(-20*time.Second), now) {
		t.Error("20s old weather (TTL 15s) should be stale")
	}
}

func TestLocationNeverExpires(t *testing.T) {
	now := time.Now()
	if !Location.Fresh(now.Add(-10*365*24*time.Hour), now) {
		t.Error("locations should never expire")
	}
}

func TestEventsCap(t *testing.T) {
	if Events.Cap() != 20 {
		t.Errorf("events cap = %d, want 20", Events.Cap())
	}
	if Weather.Cap() != 0 {
		t.Errorf("weather should be uncapped, got %d", Weather.Cap())
	}
}

func TestTableNames(t *testing.T) {
	for _, c := range All {
		if c.Table() == "" {
			t.Errorf("%s: missing table name", c)
		}
	}
	if Location.Table() != "locations" {
		t.Errorf("location table = %q", Location.Table())
	}
}
