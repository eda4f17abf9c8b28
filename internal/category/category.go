// Package category enumerates the data domains the service aggregates and
// owns the per-category freshness policy. Categories are compile-time
// constants; nothing in this package is derived from user input.
package category

import "time"

type Category int

const (
	Location Category = iota
	Weather
	Events
	Movies
	Reviews
	Trails
)

type spec struct {
	name  string
	table string
	ttl   time.Duration // 0 means the data never expires
	cap   int           // 0 means uncapped
}

var specs = [...]spec{
	Location: {name: "location", table: "locations"},
	Weather:  {name: "weather", table: "weathers", ttl: 15 * time.Second},
	Events:   {name: "events", table: "events", ttl: 6 * time.Hour, cap: 20},
	Movies:   {name: "movies", table: "movies", ttl: 30 * 24 * time.Hour},
	Reviews:  {name: "reviews", table: "reviews", ttl: 24 * time.Hour},
	Trails:   {name: "trails", table: "trails", ttl: 7 * 24 * time.Hour},
}

// All lists every record category that is subject to the freshness policy,
// i.e. everything except Location.
var All = []Category{Weather, Events, Movies, Reviews, Trails}

func (c Category) String() string { return specs[c].name }

// Table returns the backing table name for the category.
func (c Category) Table() string { return specs[c].table }

// TTL returns how long stored records stay servable. Zero means forever.
func (c Category) TTL() time.Duration { return specs[c].ttl }

// Cap returns the maximum number of records a response may carry,
// or 0 when the category is uncapped.
func (c Category) Cap() int { return specs[c].cap }

// Fresh reports whether a record group created at createdAt may still be
// served at now. Age exactly equal to the TTL is still fresh; only
// strictly older data is stale.
func (c Category) Fresh(createdAt, now time.Time) bool {
	ttl := specs[c].ttl
	if ttl == 0 {
		return true
	}
	return now.Sub(createdAt) <= ttl
}
