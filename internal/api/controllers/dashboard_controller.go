package controllers

import (
	"github.com/gin-gonic/gin"

	"ascendops/internal/services"
	"ascendops/pkg/middleware"
	"ascendops/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Get dashboard stats
// @Description Fetch the landing snapshot: SD card counts, pending edits, and the event list
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (d *DashboardController) GetDashboard(c *gin.Context) {
	report, err := d.dashboardService.BuildDashboard(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard data fetched successfully")
}
