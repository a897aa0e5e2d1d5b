package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ascendops/internal/models/request_models"
	"ascendops/internal/repositories"
	"ascendops/internal/services"
	"ascendops/pkg/middleware"
	"ascendops/pkg/utils"
)

type EditTaskController struct {
	editTaskService services.EditTaskServiceInterface
}

func NewEditTaskController(editTaskService services.EditTaskServiceInterface) *EditTaskController {
	return &EditTaskController{
		editTaskService: editTaskService,
	}
}

// CreateTask godoc
// @Summary Create an edit task
// @Description Assign a deliverable from a booking to an editor, founders only
// @Tags Edit Tasks
// @Accept json
// @Produce json
// @Param request body request_models.CreateTaskRequest true "Task payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /edit-tasks [post]
func (e *EditTaskController) CreateTask(c *gin.Context) {
	var req request_models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := e.editTaskService.CreateTask(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, task, "Task created successfully")
}

// UpdateTask godoc
// @Summary Update an edit task
// @Description Move a task through the pipeline or attach the deliverable link. Assignee or founder only
// @Tags Edit Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body request_models.UpdateTaskRequest true "Update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /edit-tasks/{id} [patch]
func (e *EditTaskController) UpdateTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Task ID is required")
		return
	}

	var req request_models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := e.editTaskService.UpdateTask(c.Request.Context(), middleware.ActorFromContext(c), taskID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, task, "Task updated successfully")
}

// ListTasks godoc
// @Summary List edit tasks
// @Description Fetch the edit pipeline, optionally filtered by event, session, editor or status
// @Tags Edit Tasks
// @Accept json
// @Produce json
// @Param event_id query string false "Event ID filter"
// @Param session_id query string false "Session ID filter"
// @Param editor_id query string false "Assigned editor filter"
// @Param status query string false "Status filter"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /edit-tasks [get]
func (e *EditTaskController) ListTasks(c *gin.Context) {
	filter := repositories.TaskFilter{
		EventID:   c.Query("event_id"),
		SessionID: c.Query("session_id"),
		EditorID:  c.Query("editor_id"),
		Status:    c.Query("status"),
	}

	tasks, err := e.editTaskService.ListTasks(c.Request.Context(), middleware.ActorFromContext(c), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tasks, "Tasks fetched successfully")
}
