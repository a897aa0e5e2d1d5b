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

type ManpowerServiceInterface interface {
	Allocate(ctx context.Context, actor auth.Actor, request request_models.AllocationRequest) (*response_models.AllocationResponse, error)
	List(ctx context.Context, actor auth.Actor, filter repositories.AllocationFilter) ([]response_models.AllocationResponse, error)
}

type ManpowerService struct {
	manpowerRepo repositories.ManpowerRepository
	eventRepo    repositories.EventRepository
	userRepo     repositories.UserRepository
}

func NewManpowerService(
	manpowerRepo repositories.ManpowerRepository,
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
) ManpowerServiceInterface {
	return &ManpowerService{
		manpowerRepo: manpowerRepo,
		eventRepo:    eventRepo,
		userRepo:     userRepo,
	}
}

// Allocate records a staffing assignment. Assigning the same user to the
// same session twice is a legitimate double-booking and goes through.
func (m *ManpowerService) Allocate(ctx context.Context, actor auth.Actor, request request_models.AllocationRequest) (*response_models.AllocationResponse, error) {
	if err := auth.RequireFounder(actor); err != nil {
		return nil, err
	}

	role := strings.TrimSpace(request.Role)
	if request.EventID == "" || request.SessionID == "" || request.UserID == "" || role == "" {
		return nil, fmt.Errorf("%w: event, session, user and role are required", utils.ErrValidation)
	}

	eventUUID, err := uuid.Parse(request.EventID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event id", utils.ErrValidation)
	}
	sessionUUID, err := uuid.Parse(request.SessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid session id", utils.ErrValidation)
	}
	userUUID, err := uuid.Parse(request.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", utils.ErrValidation)
	}

	event, err := m.eventRepo.FindEventByID(ctx, request.EventID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if event == nil {
		return nil, fmt.Errorf("event %w", utils.ErrNotFound)
	}

	session, err := m.eventRepo.FindSessionByID(ctx, request.SessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if session == nil {
		return nil, fmt.Errorf("session %w", utils.ErrNotFound)
	}

	user, err := m.userRepo.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %w", utils.ErrNotFound)
	}

	allocation := &db_models.ManpowerAllocation{
		EventID:   eventUUID,
		SessionID: sessionUUID,
		UserID:    userUUID,
		Role:      role,
		Notes:     request.Notes,
	}
	if err := m.manpowerRepo.Insert(ctx, allocation); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.AllocationResponse{
		ID:           allocation.ID.String(),
		EventName:    event.Name,
		SessionLabel: session.Label,
		SessionDate:  utils.FormatDate(session.Date),
		UserID:       user.ID.String(),
		UserName:     user.Name,
		Role:         allocation.Role,
		Notes:        allocation.Notes,
	}, nil
}

func (m *ManpowerService) List(ctx context.Context, actor auth.Actor, filter repositories.AllocationFilter) ([]response_models.AllocationResponse, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	if filter.EventID != "" {
		if _, err := uuid.Parse(filter.EventID); err != nil {
			return nil, fmt.Errorf("%w: invalid event id", utils.ErrValidation)
		}
	}
	if filter.SessionID != "" {
		if _, err := uuid.Parse(filter.SessionID); err != nil {
			return nil, fmt.Errorf("%w: invalid session id", utils.ErrValidation)
		}
	}

	rows, err := m.manpowerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.AllocationResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, response_models.AllocationResponse{
			ID:           row.ID,
			EventName:    row.EventName,
			SessionLabel: row.SessionLabel,
			SessionDate:  utils.FormatDate(row.SessionDate),
			UserID:       row.UserID,
			UserName:     row.UserName,
			Role:         row.Role,
			Notes:        row.Notes,
		})
	}
	return out, nil
}
