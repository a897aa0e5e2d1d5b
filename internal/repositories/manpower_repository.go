package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ascendops/internal/models/db_models"
)

type AllocationFilter struct {
	EventID   string
	SessionID string
}

// AllocationRow is one staffing assignment joined with its event,
// session and staff display fields.
type AllocationRow struct {
	ID           string    `gorm:"column:id"`
	EventName    string    `gorm:"column:event_name"`
	SessionLabel string    `gorm:"column:session_label"`
	SessionDate  time.Time `gorm:"column:session_date"`
	UserID       string    `gorm:"column:user_id"`
	UserName     string    `gorm:"column:user_name"`
	Role         string    `gorm:"column:role"`
	Notes        string    `gorm:"column:notes"`
}

type ManpowerRepository interface {
	Insert(ctx context.Context, allocation *db_models.ManpowerAllocation) error
	List(ctx context.Context, f AllocationFilter) ([]AllocationRow, error)
}

type manpowerRepository struct {
	db *gorm.DB
}

func NewManpowerRepository(db *gorm.DB) ManpowerRepository {
	return &manpowerRepository{db: db}
}

func (m *manpowerRepository) Insert(ctx context.Context, allocation *db_models.ManpowerAllocation) error {
	return m.db.WithContext(ctx).Create(allocation).Error
}

func (m *manpowerRepository) List(ctx context.Context, f AllocationFilter) ([]AllocationRow, error) {
	q := m.db.WithContext(ctx).
		Table("manpower_allocations AS ma").
		Select(`ma.id, e.name AS event_name, s.label AS session_label, s.date AS session_date,
			u.id AS user_id, u.name AS user_name, ma.role, ma.notes`).
		Joins("JOIN events e ON e.id = ma.event_id").
		Joins("JOIN sessions s ON s.id = ma.session_id").
		Joins("JOIN users u ON u.id = ma.user_id").
		Where("ma.deleted_at IS NULL")
	if f.EventID != "" {
		q = q.Where("e.id = ?", f.EventID)
	}
	if f.SessionID != "" {
		q = q.Where("s.id = ?", f.SessionID)
	}

	var rows []AllocationRow
	err := q.Order("s.date ASC, s.label ASC").Scan(&rows).Error
	return rows, err
}
