package models

import "time"

// RecordMeta is embedded by every per-location record model. It carries
// the columns shared by all category tables: the owning location and the
// batch creation timestamp the freshness policy is computed from. All
// records inserted by one upstream fetch share a single CreatedAt so the
// whole group ages together.
type RecordMeta struct {
	LocationID uint      `gorm:"column:location_id;not null;index" json:"location_id"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// Stamp attaches the owning location and the batch timestamp.
func (m *RecordMeta) Stamp(locationID uint, at time.Time) {
	m.LocationID = locationID
	m.CreatedAt = at
}

// Created returns the batch creation timestamp.
func (m RecordMeta) Created() time.Time {
	return m.CreatedAt
}
