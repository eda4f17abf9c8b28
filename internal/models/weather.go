package models

// Weather is one daily forecast entry for a location.
type Weather struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	Forecast string `gorm:"column:forecast;size:500;not null" json:"forecast"`
	Time     string `gorm:"column:time;size:15" json:"time"`
	RecordMeta
}

func (Weather) TableName() string {
	return "weathers"
}
