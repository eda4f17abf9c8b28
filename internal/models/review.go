package models

// Review is one business-review result near a location. Rating is a
// pointer because the provider omits it for unrated businesses; an
// absent rating serializes as null, not 0.
type Review struct {
	ID       uint     `gorm:"primaryKey" json:"-"`
	Name     string   `gorm:"column:name;size:500;not null" json:"name"`
	ImageURL string   `gorm:"column:image_url;size:500" json:"image_url"`
	Price    string   `gorm:"column:price;size:10" json:"price"`
	Rating   *float64 `gorm:"column:rating" json:"rating"`
	URL      string   `gorm:"column:url;size:500" json:"url"`
	RecordMeta
}

func (Review) TableName() string {
	return "reviews"
}
