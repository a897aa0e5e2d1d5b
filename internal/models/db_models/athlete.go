package db_models

// Athlete is a competitor. Athletes are shared across events and
// deduplicated at booking time by the exact (Name, Team) pair.
type Athlete struct {
	BaseModel
	Name        string `gorm:"index:idx_athlete_name_team"`
	Team        string `gorm:"index:idx_athlete_name_team"`
	WeightClass string
	Notes       string
}
