package models

// Trail is one hiking trail near a location.
type Trail struct {
	ID            uint    `gorm:"primaryKey" json:"-"`
	Name          string  `gorm:"column:name;size:500;not null" json:"name"`
	Location      string  `gorm:"column:location;size:500" json:"location"`
	Length        float64 `gorm:"column:length" json:"length"`
	Stars         float64 `gorm:"column:stars" json:"stars"`
	StarVotes     int     `gorm:"column:star_votes" json:"star_votes"`
	Summary       string  `gorm:"column:summary;type:text" json:"summary"`
	TrailURL      string  `gorm:"column:trail_url;size:500" json:"trail_url"`
	Conditions    string  `gorm:"column:conditions;type:text" json:"conditions"`
	ConditionDate string  `gorm:"column:condition_date;size:20" json:"condition_date"`
	ConditionTime string  `gorm:"column:condition_time;size:20" json:"condition_time"`
	RecordMeta
}

func (Trail) TableName() string {
	return "trails"
}
