package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"ascendops/internal/models/db_models"
)

type BookingFilter struct {
	EventID   string
	SessionID string
}

// BookingRow is one booking joined with its athlete, session, event and
// package display fields.
type BookingRow struct {
	ID           string    `gorm:"column:id"`
	AthleteID    string    `gorm:"column:athlete_id"`
	AthleteName  string    `gorm:"column:athlete_name"`
	Team         string    `gorm:"column:team"`
	WeightClass  string    `gorm:"column:weight_class"`
	SessionID    string    `gorm:"column:session_id"`
	SessionLabel string    `gorm:"column:session_label"`
	SessionDate  time.Time `gorm:"column:session_date"`
	EventName    string    `gorm:"column:event_name"`
	PackageName  string    `gorm:"column:package_name"`
	MusicLink    string    `gorm:"column:music_link"`
	MusicStart   string    `gorm:"column:music_start"`
	MusicEnd     string    `gorm:"column:music_end"`
	Paid         bool      `gorm:"column:paid"`
	Notes        string    `gorm:"column:notes"`
}

type BookingRepository interface {
	FindAthlete(ctx context.Context, name, team string) (*db_models.Athlete, error)
	FindAthleteByID(ctx context.Context, id string) (*db_models.Athlete, error)
	FindBookingByID(ctx context.Context, id string) (*db_models.AthleteSession, error)
	// BookTx resolves the athlete by exact (name, team) inside the same
	// transaction as the booking insert, creating the athlete when no
	// match exists.
	BookTx(ctx context.Context, athlete *db_models.Athlete, booking *db_models.AthleteSession) error
	List(ctx context.Context, f BookingFilter) ([]BookingRow, error)
	ListSessionRoster(ctx context.Context, sessionID string) ([]BookingRow, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (b *bookingRepository) FindAthlete(ctx context.Context, name, team string) (*db_models.Athlete, error) {
	var athlete db_models.Athlete
	err := b.db.WithContext(ctx).Where("name = ? AND team = ?", name, team).First(&athlete).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &athlete, nil
}

func (b *bookingRepository) FindAthleteByID(ctx context.Context, id string) (*db_models.Athlete, error) {
	var athlete db_models.Athlete
	err := b.db.WithContext(ctx).First(&athlete, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &athlete, nil
}

func (b *bookingRepository) FindBookingByID(ctx context.Context, id string) (*db_models.AthleteSession, error) {
	var booking db_models.AthleteSession
	err := b.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (b *bookingRepository) BookTx(ctx context.Context, athlete *db_models.Athlete, booking *db_models.AthleteSession) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.Athlete
		err := tx.Where("name = ? AND team = ?", athlete.Name, athlete.Team).First(&existing).Error
		switch {
		case err == nil:
			booking.AthleteID = existing.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(athlete).Error; err != nil {
				return err
			}
			booking.AthleteID = athlete.ID
		default:
			return err
		}
		return tx.Create(booking).Error
	})
}

func (b *bookingRepository) rows(ctx context.Context) *gorm.DB {
	return b.db.WithContext(ctx).
		Table("athlete_sessions AS b").
		Select(`b.id, a.id AS athlete_id, a.name AS athlete_name, a.team, a.weight_class,
			s.id AS session_id, s.label AS session_label, s.date AS session_date,
			e.name AS event_name, p.name AS package_name,
			b.music_link, b.music_start, b.music_end, b.paid, b.notes`).
		Joins("JOIN athletes a ON a.id = b.athlete_id").
		Joins("JOIN sessions s ON s.id = b.session_id").
		Joins("JOIN events e ON e.id = s.event_id").
		Joins("JOIN packages p ON p.id = b.package_id").
		Where("b.deleted_at IS NULL")
}

func (b *bookingRepository) List(ctx context.Context, f BookingFilter) ([]BookingRow, error) {
	q := b.rows(ctx)
	if f.EventID != "" {
		q = q.Where("e.id = ?", f.EventID)
	}
	if f.SessionID != "" {
		q = q.Where("s.id = ?", f.SessionID)
	}

	var rows []BookingRow
	err := q.Order("s.date ASC, a.name ASC").Scan(&rows).Error
	return rows, err
}

// ListSessionRoster is the run sheet for one session, in athlete order.
func (b *bookingRepository) ListSessionRoster(ctx context.Context, sessionID string) ([]BookingRow, error) {
	var rows []BookingRow
	err := b.rows(ctx).
		Where("s.id = ?", sessionID).
		Order("a.name ASC").
		Scan(&rows).Error
	return rows, err
}
