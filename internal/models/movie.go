package models

// Movie is one film result related to a location's city.
type Movie struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	Title        string  `gorm:"column:title;size:500;not null" json:"title"`
	Overview     string  `gorm:"column:overview;type:text" json:"overview"`
	AverageVotes float64 `gorm:"column:average_votes" json:"average_votes"`
	TotalVotes   int     `gorm:"column:total_votes" json:"total_votes"`
	ImageURL     string  `gorm:"column:image_url;size:500" json:"image_url"`
	Popularity   float64 `gorm:"column:popularity" json:"popularity"`
	ReleasedOn   string  `gorm:"column:released_on;size:15" json:"released_on"`
	RecordMeta
}

func (Movie) TableName() string {
	return "movies"
}
