package repositories

import (
	"context"

	"gorm.io/gorm"

	"ascendops/internal/models/db_models"
)

type DashboardRepository interface {
	CountTotalCards(ctx context.Context) (int64, error)
	CountCardsByStatus(ctx context.Context, status db_models.CardStatus) (int64, error)
	// CountPendingTasks counts edit tasks whose status is anything but
	// the given terminal status.
	CountPendingTasks(ctx context.Context, excludeStatus string) (int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (d *dashboardRepository) CountTotalCards(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&db_models.SdCard{}).Count(&count).Error
	return count, err
}

func (d *dashboardRepository) CountCardsByStatus(ctx context.Context, status db_models.CardStatus) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&db_models.SdCard{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (d *dashboardRepository) CountPendingTasks(ctx context.Context, excludeStatus string) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&db_models.EditTask{}).
		Where("status <> ?", excludeStatus).
		Count(&count).Error
	return count, err
}
