package models

// Location represents a geocoded search. One row per distinct search
// string; created on the first lookup and never updated or expired.
type Location struct {
	SearchQuery      string  `gorm:"column:search_query;size:255;not null;uniqueIndex:locations_search_query_key" json:"search_query"`
	FormattedAddress string  `gorm:"column:formatted_address;size:500;not null" json:"formatted_address"`
	Latitude         float64 `gorm:"column:latitude;type:decimal(9,6);not null" json:"latitude"`
	Longitude        float64 `gorm:"column:longitude;type:decimal(10,6);not null" json:"longitude"`
	ID               uint    `gorm:"primaryKey" json:"id"`
}

func (Location) TableName() string {
	return "locations"
}
