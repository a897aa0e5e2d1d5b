package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ascendops/internal/models/db_models"
)

type TaskFilter struct {
	EventID   string
	SessionID string
	EditorID  string
	Status    string
}

// TaskRow is one edit task joined with the booking it delivers for and
// the editor it is assigned to.
type TaskRow struct {
	ID               string `gorm:"column:id"`
	AthleteSessionID string `gorm:"column:athlete_session_id"`
	AthleteName      string `gorm:"column:athlete_name"`
	Team             string `gorm:"column:team"`
	SessionLabel     string `gorm:"column:session_label"`
	EventName        string `gorm:"column:event_name"`
	AssigneeID       string `gorm:"column:assignee_id"`
	AssigneeName     string `gorm:"column:assignee_name"`
	Type             string `gorm:"column:type"`
	Status           string `gorm:"column:status"`
	DeliverableLink  string `gorm:"column:deliverable_link"`
	UpdatedAt        int64  `gorm:"column:updated_at"`
}

type EditTaskRepository interface {
	Insert(ctx context.Context, task *db_models.EditTask) error
	FindByID(ctx context.Context, id string) (*db_models.EditTask, error)
	Update(ctx context.Context, task *db_models.EditTask) error
	List(ctx context.Context, f TaskFilter) ([]TaskRow, error)
}

type editTaskRepository struct {
	db *gorm.DB
}

func NewEditTaskRepository(db *gorm.DB) EditTaskRepository {
	return &editTaskRepository{db: db}
}

func (e *editTaskRepository) Insert(ctx context.Context, task *db_models.EditTask) error {
	return e.db.WithContext(ctx).Create(task).Error
}

func (e *editTaskRepository) FindByID(ctx context.Context, id string) (*db_models.EditTask, error) {
	var task db_models.EditTask
	err := e.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (e *editTaskRepository) Update(ctx context.Context, task *db_models.EditTask) error {
	return e.db.WithContext(ctx).Save(task).Error
}

// List returns tasks most-recently-touched first. Filters are
// conjunctive; zero values impose no constraint.
func (e *editTaskRepository) List(ctx context.Context, f TaskFilter) ([]TaskRow, error) {
	q := e.db.WithContext(ctx).
		Table("edit_tasks AS t").
		Select(`t.id, b.id AS athlete_session_id, a.name AS athlete_name, a.team,
			s.label AS session_label, e.name AS event_name,
			u.id AS assignee_id, u.name AS assignee_name,
			t.type, t.status, t.deliverable_link, t.updated_at`).
		Joins("JOIN athlete_sessions b ON b.id = t.athlete_session_id").
		Joins("JOIN athletes a ON a.id = b.athlete_id").
		Joins("JOIN sessions s ON s.id = b.session_id").
		Joins("JOIN events e ON e.id = s.event_id").
		Joins("JOIN users u ON u.id = t.assigned_to_user_id").
		Where("t.deleted_at IS NULL")
	if f.EventID != "" {
		q = q.Where("e.id = ?", f.EventID)
	}
	if f.SessionID != "" {
		q = q.Where("s.id = ?", f.SessionID)
	}
	if f.EditorID != "" {
		q = q.Where("u.id = ?", f.EditorID)
	}
	if f.Status != "" {
		q = q.Where("t.status = ?", f.Status)
	}

	var rows []TaskRow
	err := q.Order("t.updated_at DESC").Scan(&rows).Error
	return rows, err
}
