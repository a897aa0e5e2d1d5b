package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ascendops/internal/models/request_models"
	"ascendops/internal/services"
	"ascendops/pkg/middleware"
	"ascendops/pkg/utils"
)

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Register a competition weekend, founders only
// @Tags Events
// @Accept json
// @Produce json
// @Param request body request_models.CreateEventRequest true "Event payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events [post]
func (e *EventController) CreateEvent(c *gin.Context) {
	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := e.eventService.CreateEvent(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, event, "Event created successfully")
}

// ListEvents godoc
// @Summary List events
// @Description Fetch all events, most recent first
// @Tags Events
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events [get]
func (e *EventController) ListEvents(c *gin.Context) {
	events, err := e.eventService.ListEvents(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Events fetched successfully")
}

// GetEvent godoc
// @Summary Get event details
// @Description Fetch one event with its sessions
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events/{id} [get]
func (e *EventController) GetEvent(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Event ID is required")
		return
	}

	event, err := e.eventService.GetEvent(c.Request.Context(), middleware.ActorFromContext(c), eventID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event fetched successfully")
}

// CreateSession godoc
// @Summary Create a session
// @Description Add a session day or block to an event, founders only
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body request_models.CreateSessionRequest true "Session payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions [post]
func (e *EventController) CreateSession(c *gin.Context) {
	var req request_models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := e.eventService.CreateSession(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, session, "Session created successfully")
}

// ListSessions godoc
// @Summary List sessions
// @Description Fetch sessions, optionally filtered to one event
// @Tags Sessions
// @Accept json
// @Produce json
// @Param event_id query string false "Event ID filter"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions [get]
func (e *EventController) ListSessions(c *gin.Context) {
	sessions, err := e.eventService.ListSessions(c.Request.Context(), middleware.ActorFromContext(c), c.Query("event_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sessions, "Sessions fetched successfully")
}
