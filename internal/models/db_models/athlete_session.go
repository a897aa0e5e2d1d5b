package db_models

import "github.com/google/uuid"

// AthleteSession is a booking: one athlete competing in one session
// under one package. Music fields describe the routine soundtrack for
// video deliverables.
type AthleteSession struct {
	BaseModel
	AthleteID  uuid.UUID `gorm:"type:uuid;index"`
	SessionID  uuid.UUID `gorm:"type:uuid;index"`
	PackageID  uuid.UUID `gorm:"type:uuid"`
	MusicLink  string
	MusicStart string
	MusicEnd   string
	Paid       bool
	Notes      string
}
