package models

// Event is one upcoming event near a location.
type Event struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	Link      string `gorm:"column:link;size:500" json:"link"`
	Name      string `gorm:"column:name;size:500;not null" json:"name"`
	EventDate string `gorm:"column:event_date;size:15" json:"event_date"`
	Summary   string `gorm:"column:summary;type:text" json:"summary"`
	RecordMeta
}

func (Event) TableName() string {
	return "events"
}
