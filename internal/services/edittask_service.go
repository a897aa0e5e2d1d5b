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

type EditTaskServiceInterface interface {
	CreateTask(ctx context.Context, actor auth.Actor, request request_models.CreateTaskRequest) (*response_models.EditTaskResponse, error)
	UpdateTask(ctx context.Context, actor auth.Actor, taskID string, request request_models.UpdateTaskRequest) (*response_models.EditTaskResponse, error)
	ListTasks(ctx context.Context, actor auth.Actor, filter repositories.TaskFilter) ([]response_models.EditTaskResponse, error)
}

type EditTaskService struct {
	taskRepo    repositories.EditTaskRepository
	bookingRepo repositories.BookingRepository
	eventRepo   repositories.EventRepository
	userRepo    repositories.UserRepository
}

func NewEditTaskService(
	taskRepo repositories.EditTaskRepository,
	bookingRepo repositories.BookingRepository,
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
) EditTaskServiceInterface {
	return &EditTaskService{
		taskRepo:    taskRepo,
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
	}
}

func (e *EditTaskService) CreateTask(ctx context.Context, actor auth.Actor, request request_models.CreateTaskRequest) (*response_models.EditTaskResponse, error) {
	if err := auth.RequireFounder(actor); err != nil {
		return nil, err
	}

	if request.AthleteSessionID == "" || request.AssignedToUserID == "" || request.Type == "" {
		return nil, fmt.Errorf("%w: booking, assignee and type are required", utils.ErrValidation)
	}

	taskType := db_models.TaskType(request.Type)
	if !taskType.Valid() {
		return nil, fmt.Errorf("%w: unknown edit type", utils.ErrValidation)
	}

	bookingUUID, err := uuid.Parse(request.AthleteSessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking id", utils.ErrValidation)
	}
	assigneeUUID, err := uuid.Parse(request.AssignedToUserID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", utils.ErrValidation)
	}

	booking, err := e.bookingRepo.FindBookingByID(ctx, request.AthleteSessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %w", utils.ErrNotFound)
	}

	assignee, err := e.userRepo.FindByID(ctx, request.AssignedToUserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if assignee == nil {
		return nil, fmt.Errorf("user %w", utils.ErrNotFound)
	}

	task := &db_models.EditTask{
		AthleteSessionID: bookingUUID,
		AssignedToUserID: assigneeUUID,
		Type:             taskType,
		Status:           db_models.TaskStatusNotStarted,
	}
	if err := e.taskRepo.Insert(ctx, task); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return e.buildTaskResponse(ctx, task, booking, assignee)
}

// UpdateTask applies partial updates: empty status or link inputs leave
// the stored values alone, while UpdatedAt refreshes on every call that
// gets this far. Only a founder or the task's assignee may update.
func (e *EditTaskService) UpdateTask(ctx context.Context, actor auth.Actor, taskID string, request request_models.UpdateTaskRequest) (*response_models.EditTaskResponse, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(taskID); err != nil {
		return nil, fmt.Errorf("%w: invalid task id", utils.ErrValidation)
	}

	task, err := e.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if task == nil {
		return nil, fmt.Errorf("edit task %w", utils.ErrNotFound)
	}

	if err := auth.RequireSelfOrFounder(actor, task.AssignedToUserID); err != nil {
		return nil, err
	}

	if status := strings.TrimSpace(request.Status); status != "" {
		task.Status = status
	}
	if link := strings.TrimSpace(request.DeliverableLink); link != "" {
		task.DeliverableLink = link
	}
	if err := e.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return e.buildTaskResponse(ctx, task, nil, nil)
}

func (e *EditTaskService) ListTasks(ctx context.Context, actor auth.Actor, filter repositories.TaskFilter) ([]response_models.EditTaskResponse, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	if err := validateTaskFilter(filter); err != nil {
		return nil, err
	}

	rows, err := e.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.EditTaskResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, response_models.EditTaskResponse{
			ID:               row.ID,
			AthleteSessionID: row.AthleteSessionID,
			AthleteName:      row.AthleteName,
			Team:             row.Team,
			SessionLabel:     row.SessionLabel,
			EventName:        row.EventName,
			AssigneeID:       row.AssigneeID,
			AssigneeName:     row.AssigneeName,
			Type:             row.Type,
			Status:           row.Status,
			DeliverableLink:  row.DeliverableLink,
			UpdatedAt:        utils.FormatUnix(row.UpdatedAt),
		})
	}
	return out, nil
}

// buildTaskResponse assembles the joined display fields for a single
// task. booking and assignee may be passed in when the caller already
// fetched them; nil arguments are looked up here.
func (e *EditTaskService) buildTaskResponse(
	ctx context.Context,
	task *db_models.EditTask,
	booking *db_models.AthleteSession,
	assignee *db_models.User,
) (*response_models.EditTaskResponse, error) {
	var err error

	if booking == nil {
		booking, err = e.bookingRepo.FindBookingByID(ctx, task.AthleteSessionID.String())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
	}
	if assignee == nil {
		assignee, err = e.userRepo.FindByID(ctx, task.AssignedToUserID.String())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
	}

	resp := &response_models.EditTaskResponse{
		ID:               task.ID.String(),
		AthleteSessionID: task.AthleteSessionID.String(),
		Type:             string(task.Type),
		Status:           task.Status,
		DeliverableLink:  task.DeliverableLink,
		UpdatedAt:        utils.FormatUnix(task.UpdatedAt),
	}
	if assignee != nil {
		resp.AssigneeID = assignee.ID.String()
		resp.AssigneeName = assignee.Name
	}

	if booking != nil {
		athlete, err := e.bookingRepo.FindAthleteByID(ctx, booking.AthleteID.String())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if athlete != nil {
			resp.AthleteName = athlete.Name
			resp.Team = athlete.Team
		}
		session, err := e.eventRepo.FindSessionByID(ctx, booking.SessionID.String())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if session != nil {
			resp.SessionLabel = session.Label
			event, err := e.eventRepo.FindEventByID(ctx, session.EventID.String())
			if err != nil {
				return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
			}
			if event != nil {
				resp.EventName = event.Name
			}
		}
	}

	return resp, nil
}

func validateTaskFilter(filter repositories.TaskFilter) error {
	if filter.EventID != "" {
		if _, err := uuid.Parse(filter.EventID); err != nil {
			return fmt.Errorf("%w: invalid event id", utils.ErrValidation)
		}
	}
	if filter.SessionID != "" {
		if _, err := uuid.Parse(filter.SessionID); err != nil {
			return fmt.Errorf("%w: invalid session id", utils.ErrValidation)
		}
	}
	if filter.EditorID != "" {
		if _, err := uuid.Parse(filter.EditorID); err != nil {
			return fmt.Errorf("%w: invalid editor id", utils.ErrValidation)
		}
	}
	return nil
}
