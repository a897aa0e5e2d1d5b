package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ascendops/internal/models/db_models"
)

type EventRepository interface {
	InsertEvent(ctx context.Context, event *db_models.Event) error
	FindEventByID(ctx context.Context, id string) (*db_models.Event, error)
	FindEventWithSessions(ctx context.Context, id string) (*db_models.Event, error)
	ListEvents(ctx context.Context) ([]db_models.Event, error)
	InsertSession(ctx context.Context, session *db_models.Session) error
	FindSessionByID(ctx context.Context, id string) (*db_models.Session, error)
	ListSessions(ctx context.Context, eventID string) ([]db_models.Session, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (e *eventRepository) InsertEvent(ctx context.Context, event *db_models.Event) error {
	return e.db.WithContext(ctx).Create(event).Error
}

func (e *eventRepository) FindEventByID(ctx context.Context, id string) (*db_models.Event, error) {
	var event db_models.Event
	err := e.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (e *eventRepository) FindEventWithSessions(ctx context.Context, id string) (*db_models.Event, error) {
	var event db_models.Event
	err := e.db.WithContext(ctx).
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC, label ASC")
		}).
		First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// ListEvents returns newest-first so the current weekend tops the list.
func (e *eventRepository) ListEvents(ctx context.Context) ([]db_models.Event, error) {
	var events []db_models.Event
	err := e.db.WithContext(ctx).Order("date_start DESC").Find(&events).Error
	return events, err
}

func (e *eventRepository) InsertSession(ctx context.Context, session *db_models.Session) error {
	return e.db.WithContext(ctx).Create(session).Error
}

func (e *eventRepository) FindSessionByID(ctx context.Context, id string) (*db_models.Session, error) {
	var session db_models.Session
	err := e.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// ListSessions returns sessions in schedule order. An empty eventID
// means all events.
func (e *eventRepository) ListSessions(ctx context.Context, eventID string) ([]db_models.Session, error) {
	q := e.db.WithContext(ctx).Order("date ASC, label ASC")
	if eventID != "" {
		q = q.Where("event_id = ?", eventID)
	}
	var sessions []db_models.Session
	err := q.Find(&sessions).Error
	return sessions, err
}
