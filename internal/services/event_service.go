package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"ascendops/internal/auth"
	"ascendops/internal/models/db_models"
	"ascendops/internal/models/request_models"
	"ascendops/internal/models/response_models"
	"ascendops/internal/repositories"
	"ascendops/pkg/utils"
)

type EventServiceInterface interface {
	CreateEvent(ctx context.Context, actor auth.Actor, request request_models.CreateEventRequest) (*response_models.EventResponse, error)
	ListEvents(ctx context.Context, actor auth.Actor) ([]response_models.EventResponse, error)
	GetEvent(ctx context.Context, actor auth.Actor, eventID string) (*response_models.EventDetailResponse, error)
	CreateSession(ctx context.Context, actor auth.Actor, request request_models.CreateSessionRequest) (*response_models.SessionResponse, error)
	ListSessions(ctx context.Context, actor auth.Actor, eventID string) ([]response_models.SessionResponse, error)
}

type EventService struct {
	eventRepo repositories.EventRepository
}

func NewEventService(eventRepo repositories.EventRepository) EventServiceInterface {
	return &EventService{eventRepo: eventRepo}
}

func (e *EventService) CreateEvent(ctx context.Context, actor auth.Actor, request request_models.CreateEventRequest) (*response_models.EventResponse, error) {
	if err := auth.RequireFounder(actor); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(request.Name)
	if name == "" || request.DateStart == "" || request.DateEnd == "" {
		return nil, fmt.Errorf("%w: name and dates are required", utils.ErrValidation)
	}

	dateStart, err := utils.ParseDate(request.DateStart)
	if err != nil {
		return nil, err
	}
	dateEnd, err := utils.ParseDate(request.DateEnd)
	if err != nil {
		return nil, err
	}

	event := &db_models.Event{
		Name:      name,
		DateStart: dateStart,
		DateEnd:   dateEnd,
		Location:  strings.TrimSpace(request.Location),
	}
	if err := e.eventRepo.InsertEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	resp := toEventResponse(event)
	return &resp, nil
}

func (e *EventService) ListEvents(ctx context.Context, actor auth.Actor) ([]response_models.EventResponse, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	events, err := e.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, toEventResponse(&events[i]))
	}
	return out, nil
}

func (e *EventService) GetEvent(ctx context.Context, actor auth.Actor, eventID string) (*response_models.EventDetailResponse, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(eventID); err != nil {
		return nil, fmt.Errorf("%w: invalid event id", utils.ErrValidation)
	}

	event, err := e.eventRepo.FindEventWithSessions(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if event == nil {
		return nil, fmt.Errorf("event %w", utils.ErrNotFound)
	}

	detail := &response_models.EventDetailResponse{
		EventResponse: toEventResponse(event),
		Sessions:      make([]response_models.SessionResponse, 0, len(event.Sessions)),
	}
	for i := range event.Sessions {
		detail.Sessions = append(detail.Sessions, toSessionResponse(&event.Sessions[i]))
	}
	return detail, nil
}

func (e *EventService) CreateSession(ctx context.Context, actor auth.Actor, request request_models.CreateSessionRequest) (*response_models.SessionResponse, error) {
	if err := auth.RequireFounder(actor); err != nil {
		return nil, err
	}

	label := strings.TrimSpace(request.Label)
	if request.EventID == "" || label == "" || request.Date == "" {
		return nil, fmt.Errorf("%w: event, label and date are required", utils.ErrValidation)
	}

	eventUUID, err := uuid.Parse(request.EventID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event id", utils.ErrValidation)
	}

	var timeBlock *string
	if tb := strings.TrimSpace(request.TimeBlock); tb != "" {
		if tb != db_models.TimeBlockAM && tb != db_models.TimeBlockPM {
			return nil, fmt.Errorf("%w: time block must be AM or PM", utils.ErrValidation)
		}
		timeBlock = &tb
	}

	date, err := utils.ParseDate(request.Date)
	if err != nil {
		return nil, err
	}

	event, err := e.eventRepo.FindEventByID(ctx, request.EventID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if event == nil {
		return nil, fmt.Errorf("event %w", utils.ErrNotFound)
	}

	session := &db_models.Session{
		EventID:   eventUUID,
		Label:     label,
		Date:      date,
		TimeBlock: timeBlock,
	}
	if err := e.eventRepo.InsertSession(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	resp := toSessionResponse(session)
	return &resp, nil
}

func (e *EventService) ListSessions(ctx context.Context, actor auth.Actor, eventID string) ([]response_models.SessionResponse, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	if eventID != "" {
		if _, err := uuid.Parse(eventID); err != nil {
			return nil, fmt.Errorf("%w: invalid event id", utils.ErrValidation)
		}
	}

	sessions, err := e.eventRepo.ListSessions(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, toSessionResponse(&sessions[i]))
	}
	return out, nil
}

func toEventResponse(event *db_models.Event) response_models.EventResponse {
	return response_models.EventResponse{
		ID:        event.ID.String(),
		Name:      event.Name,
		DateStart: utils.FormatDate(event.DateStart),
		DateEnd:   utils.FormatDate(event.DateEnd),
		Location:  event.Location,
	}
}

func toSessionResponse(session *db_models.Session) response_models.SessionResponse {
	return response_models.SessionResponse{
		ID:        session.ID.String(),
		EventID:   session.EventID.String(),
		Label:     session.Label,
		Date:      utils.FormatDate(session.Date),
		TimeBlock: session.TimeBlock,
	}
}
