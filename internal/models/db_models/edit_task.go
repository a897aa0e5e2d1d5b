package db_models

import "github.com/google/uuid"

type TaskType string

const (
	TaskTypePhotos      TaskType = "photos"
	TaskTypeHighlight   TaskType = "highlight"
	TaskTypeStaticVideo TaskType = "static_video"
)

func (t TaskType) Valid() bool {
	switch t {
	case TaskTypePhotos, TaskTypeHighlight, TaskTypeStaticVideo:
		return true
	}
	return false
}

// Task status stays free text so the team can invent workflow states
// without a migration. Only sent_to_client carries meaning: the
// dashboard counts everything else as pending.
const (
	TaskStatusNotStarted   = "not_started"
	TaskStatusSentToClient = "sent_to_client"
)

// EditTask is one deliverable owed for a booking, assigned to an editor.
type EditTask struct {
	BaseModel
	AthleteSessionID uuid.UUID `gorm:"type:uuid;index"`
	AssignedToUserID uuid.UUID `gorm:"type:uuid;index"`
	Type             TaskType
	Status           string `gorm:"default:not_started"`
	DeliverableLink  string
}
