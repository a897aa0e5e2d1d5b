package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TimeBlockAM = "AM"
	TimeBlockPM = "PM"
)

// Session is a schedule block within an event, e.g. "Day 1 AM".
// TimeBlock is nil when the block is unspecified.
type Session struct {
	BaseModel
	EventID   uuid.UUID `gorm:"type:uuid;index"`
	Label     string
	Date      time.Time `gorm:"type:date"`
	TimeBlock *string
}
