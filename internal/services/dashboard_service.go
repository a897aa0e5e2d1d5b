package services

import (
	"context"
	"fmt"

	"ascendops/internal/auth"
	"ascendops/internal/models/db_models"
	"ascendops/internal/models/response_models"
	"ascendops/internal/repositories"
	"ascendops/pkg/utils"
)

type DashboardServiceInterface interface {
	BuildDashboard(ctx context.Context, actor auth.Actor) (*response_models.DashboardResponse, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepository
	eventRepo     repositories.EventRepository
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepository,
	eventRepo repositories.EventRepository,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		eventRepo:     eventRepo,
	}
}

// BuildDashboard assembles the landing snapshot: card fleet counts, edits
// still owed to clients, and the event list newest first.
func (d *DashboardService) BuildDashboard(ctx context.Context, actor auth.Actor) (*response_models.DashboardResponse, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	totalCards, err := d.dashboardRepo.CountTotalCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	inUse, err := d.dashboardRepo.CountCardsByStatus(ctx, db_models.CardStatusCheckedOut)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	pendingEdits, err := d.dashboardRepo.CountPendingTasks(ctx, db_models.TaskStatusSentToClient)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	events, err := d.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	report := &response_models.DashboardResponse{
		TotalSdCards: totalCards,
		SdCardsInUse: inUse,
		PendingEdits: pendingEdits,
		Events:       make([]response_models.EventResponse, 0, len(events)),
	}
	for i := range events {
		report.Events = append(report.Events, toEventResponse(&events[i]))
	}
	return report, nil
}
