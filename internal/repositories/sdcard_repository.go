package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ascendops/internal/models/db_models"
	"ascendops/pkg/utils"
)

// OpenLogRow is one outstanding checkout joined with its card, borrower
// and optional event/session context.
type OpenLogRow struct {
	ID           string `gorm:"column:id"`
	CardID       string `gorm:"column:card_id"`
	CardLabel    string `gorm:"column:card_label"`
	UserName     string `gorm:"column:user_name"`
	EventName    string `gorm:"column:event_name"`
	SessionLabel string `gorm:"column:session_label"`
	Purpose      string `gorm:"column:purpose"`
	CheckedOutAt int64  `gorm:"column:checked_out_at"`
}

type SdCardRepository interface {
	InsertCard(ctx context.Context, card *db_models.SdCard) error
	FindCardByID(ctx context.Context, id string) (*db_models.SdCard, error)
	ListCards(ctx context.Context) ([]db_models.SdCard, error)
	// CheckoutTx flips the card available→checked_out and writes the log
	// in one transaction. The status update is a compare-and-set, so a
	// racing checkout of the same card loses with ErrCardNotAvailable.
	CheckoutTx(ctx context.Context, entry *db_models.SdCardLog) error
	// ReturnTx closes an open log and frees the card. ErrOpenLogNotFound
	// when the log does not exist or was already returned.
	ReturnTx(ctx context.Context, logID string, returnedAt int64) error
	ListOpenLogs(ctx context.Context) ([]OpenLogRow, error)
}

type sdCardRepository struct {
	db *gorm.DB
}

func NewSdCardRepository(db *gorm.DB) SdCardRepository {
	return &sdCardRepository{db: db}
}

func (s *sdCardRepository) InsertCard(ctx context.Context, card *db_models.SdCard) error {
	err := s.db.WithContext(ctx).Create(card).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrCardLabelTaken
	}
	return err
}

func (s *sdCardRepository) FindCardByID(ctx context.Context, id string) (*db_models.SdCard, error) {
	var card db_models.SdCard
	err := s.db.WithContext(ctx).First(&card, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (s *sdCardRepository) ListCards(ctx context.Context) ([]db_models.SdCard, error) {
	var cards []db_models.SdCard
	err := s.db.WithContext(ctx).Order("label ASC").Find(&cards).Error
	return cards, err
}

func (s *sdCardRepository) CheckoutTx(ctx context.Context, entry *db_models.SdCardLog) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.SdCard{}).
			Where("id = ? AND status = ?", entry.SdCardID, db_models.CardStatusAvailable).
			Update("status", db_models.CardStatusCheckedOut)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrCardNotAvailable
		}
		return tx.Create(entry).Error
	})
}

func (s *sdCardRepository) ReturnTx(ctx context.Context, logID string, returnedAt int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry db_models.SdCardLog
		err := tx.Where("id = ? AND returned_at IS NULL", logID).First(&entry).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrOpenLogNotFound
			}
			return err
		}

		res := tx.Model(&db_models.SdCardLog{}).
			Where("id = ? AND returned_at IS NULL", entry.ID).
			Update("returned_at", returnedAt)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrOpenLogNotFound
		}

		return tx.Model(&db_models.SdCard{}).
			Where("id = ?", entry.SdCardID).
			Update("status", db_models.CardStatusAvailable).Error
	})
}

func (s *sdCardRepository) ListOpenLogs(ctx context.Context) ([]OpenLogRow, error) {
	var rows []OpenLogRow
	err := s.db.WithContext(ctx).
		Table("sd_card_logs AS l").
		Select(`l.id, c.id AS card_id, c.label AS card_label, u.name AS user_name,
			COALESCE(e.name, '') AS event_name, COALESCE(s.label, '') AS session_label,
			l.purpose, l.checked_out_at`).
		Joins("JOIN sd_cards c ON c.id = l.sd_card_id").
		Joins("JOIN users u ON u.id = l.user_id").
		Joins("LEFT JOIN events e ON e.id = l.event_id").
		Joins("LEFT JOIN sessions s ON s.id = l.session_id").
		Where("l.returned_at IS NULL AND l.deleted_at IS NULL").
		Order("l.checked_out_at DESC").
		Scan(&rows).Error
	return rows, err
}
