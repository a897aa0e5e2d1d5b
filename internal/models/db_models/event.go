package db_models

import "time"

// Event is a competition weekend, e.g. "Regionals 2024".
type Event struct {
	BaseModel
	Name      string
	DateStart time.Time `gorm:"type:date"`
	DateEnd   time.Time `gorm:"type:date"`
	Location  string

	Sessions []Session
}
