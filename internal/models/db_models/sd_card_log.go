package db_models

import "github.com/google/uuid"

// SdCardLog records one checkout of a card. ReturnedAt is nil while the
// card is still out; a card has at most one open log at a time.
type SdCardLog struct {
	BaseModel
	SdCardID     uuid.UUID  `gorm:"type:uuid;index"`
	UserID       uuid.UUID  `gorm:"type:uuid;index"`
	EventID      *uuid.UUID `gorm:"type:uuid"`
	SessionID    *uuid.UUID `gorm:"type:uuid"`
	Purpose      string
	CheckedOutAt int64
	ReturnedAt   *int64
}
