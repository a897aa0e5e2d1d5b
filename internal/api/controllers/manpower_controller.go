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

type ManpowerController struct {
	manpowerService services.ManpowerServiceInterface
}

func NewManpowerController(manpowerService services.ManpowerServiceInterface) *ManpowerController {
	return &ManpowerController{
		manpowerService: manpowerService,
	}
}

// Allocate godoc
// @Summary Assign staff to a session
// @Description Put a staff member on an event session in a working role, founders only
// @Tags Manpower
// @Accept json
// @Produce json
// @Param request body request_models.AllocationRequest true "Allocation payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /manpower [post]
func (m *ManpowerController) Allocate(c *gin.Context) {
	var req request_models.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	allocation, err := m.manpowerService.Allocate(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, allocation, "Allocation created successfully")
}

// ListAllocations godoc
// @Summary List staffing allocations
// @Description Fetch who works what, optionally filtered by event or session
// @Tags Manpower
// @Accept json
// @Produce json
// @Param event_id query string false "Event ID filter"
// @Param session_id query string false "Session ID filter"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /manpower [get]
func (m *ManpowerController) ListAllocations(c *gin.Context) {
	filter := repositories.AllocationFilter{
		EventID:   c.Query("event_id"),
		SessionID: c.Query("session_id"),
	}

	allocations, err := m.manpowerService.List(c.Request.Context(), middleware.ActorFromContext(c), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, allocations, "Allocations fetched successfully")
}
