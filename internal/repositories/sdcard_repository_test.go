package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ascendops/internal/models/db_models"
	"ascendops/pkg/utils"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock database: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create GORM instance: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	})
	return gormDB, mock
}

// The checkout flips the card and writes the log inside one transaction.
func TestSdCardRepository_CheckoutTx(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewSdCardRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "sd_cards" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "sd_card_logs"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	entry := &db_models.SdCardLog{
		SdCardID:     uuid.New(),
		UserID:       uuid.New(),
		Purpose:      "floor cam",
		CheckedOutAt: 1709285400,
	}
	err := repo.CheckoutTx(context.Background(), entry)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// When the compare-and-set matches no row the card was not available,
// and the transaction rolls back before any log is written.
func TestSdCardRepository_CheckoutTx_CardTaken(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewSdCardRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "sd_cards" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	entry := &db_models.SdCardLog{
		SdCardID:     uuid.New(),
		UserID:       uuid.New(),
		CheckedOutAt: 1709285400,
	}
	err := repo.CheckoutTx(context.Background(), entry)

	assert.ErrorIs(t, err, utils.ErrCardNotAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSdCardRepository_ReturnTx(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewSdCardRepository(gormDB)

	logID := uuid.New()
	cardID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "sd_card_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sd_card_id", "checked_out_at"}).
			AddRow(logID.String(), cardID.String(), int64(1709285400)))
	mock.ExpectExec(`UPDATE "sd_card_logs" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "sd_cards" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReturnTx(context.Background(), logID.String(), 1709300000)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSdCardRepository_ReturnTx_NoOpenLog(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewSdCardRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "sd_card_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.ReturnTx(context.Background(), uuid.NewString(), 1709300000)

	assert.ErrorIs(t, err, utils.ErrOpenLogNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSdCardRepository_InsertCard_DuplicateLabel(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewSdCardRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "sd_cards"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err := repo.InsertCard(context.Background(), &db_models.SdCard{
		Label:  "SD-01",
		Status: db_models.CardStatusAvailable,
	})

	assert.ErrorIs(t, err, utils.ErrCardLabelTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSdCardRepository_FindCardByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewSdCardRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "sd_cards"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	card, err := repo.FindCardByID(context.Background(), uuid.NewString())

	assert.NoError(t, err)
	assert.Nil(t, card)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSdCardRepository_ListCards(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewSdCardRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "sd_cards"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "label", "capacity_gb", "status"}).
			AddRow(uuid.NewString(), "SD-01", 128, "available").
			AddRow(uuid.NewString(), "SD-02", nil, "checked_out"))

	cards, err := repo.ListCards(context.Background())

	assert.NoError(t, err)
	assert.Len(t, cards, 2)
	assert.Equal(t, "SD-01", cards[0].Label)
	if assert.NotNil(t, cards[0].CapacityGB) {
		assert.Equal(t, 128, *cards[0].CapacityGB)
	}
	assert.Nil(t, cards[1].CapacityGB)
	assert.Equal(t, db_models.CardStatusCheckedOut, cards[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSdCardRepository_ListOpenLogs(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewSdCardRepository(gormDB)

	logID := uuid.NewString()
	cardID := uuid.NewString()
	mock.ExpectQuery(`SELECT .+ FROM "sd_card_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "card_id", "card_label", "user_name", "event_name", "session_label", "purpose", "checked_out_at",
		}).AddRow(logID, cardID, "SD-01", "Sam Chen", "Regionals 2024", "Day 1 AM", "floor cam", int64(1709285400)))

	rows, err := repo.ListOpenLogs(context.Background())

	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, logID, rows[0].ID)
		assert.Equal(t, cardID, rows[0].CardID)
		assert.Equal(t, "SD-01", rows[0].CardLabel)
		assert.Equal(t, "Sam Chen", rows[0].UserName)
		assert.Equal(t, "Regionals 2024", rows[0].EventName)
		assert.Equal(t, "Day 1 AM", rows[0].SessionLabel)
		assert.Equal(t, int64(1709285400), rows[0].CheckedOutAt)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
