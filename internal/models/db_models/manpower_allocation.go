package db_models

import "github.com/google/uuid"

// ManpowerAllocation assigns a staff member to a session in some duty,
// e.g. "shooter" or "editor". Role is free text and duplicates are
// legitimate records, not conflicts.
type ManpowerAllocation struct {
	BaseModel
	EventID   uuid.UUID `gorm:"type:uuid;index"`
	SessionID uuid.UUID `gorm:"type:uuid;index"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Role      string
	Notes     string
}
